package route

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

type RequestIDCtxKeyType string

const (
	RequestIDCtxKey    RequestIDCtxKeyType = "request-id"
	RequestIDHeaderKey string              = "X-Request-ID"
)

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDCtxKey).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

// LogMiddleware tags every request with an id (reusing a valid incoming
// X-Request-ID) and writes one access log line when it's done.
func LogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := func() string {
			incoming := strings.TrimSpace(r.Header.Get(RequestIDHeaderKey))
			if _, err := uuid.Parse(incoming); err == nil {
				return incoming
			}
			return uuid.NewString()
		}()
		w.Header().Set(RequestIDHeaderKey, requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		startTimer := time.Now()
		ctx := context.WithValue(r.Context(), RequestIDCtxKey, requestID)
		next.ServeHTTP(rec, r.WithContext(ctx))

		level := slog.LevelInfo
		if rec.status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		slog.Log(r.Context(), level, "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(startTimer),
			"request_id", requestID,
		)
	})
}
