package route

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"huddle/src-server/model"
)

// request bodies are small JSON documents
const maxBodyBytes = 1 << 20

type ErrorRespBody struct {
	Error   string             `json:"error"`
	Reason  string             `json:"reason,omitempty"`
	Details []model.FieldError `json:"details,omitempty"`
}

type SuccessRespBody struct {
	Success bool `json:"success"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("can't encode response body", "error", err)
	}
}

// writeError maps an error kind to a status: validation, not found and locked
// groups are the client's fault (400), anything else is a 500 that hides the
// cause from the client.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	var validationErr *model.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, ErrorRespBody{
			Error:   msg,
			Details: validationErr.Details,
		})
	case errors.Is(err, model.ErrNotFound), errors.Is(err, model.ErrGroupLocked):
		writeJSON(w, http.StatusBadRequest, ErrorRespBody{
			Error:  msg,
			Reason: err.Error(),
		})
	default:
		slog.Error(msg, "error", err, "path", r.URL.Path, "request_id", RequestID(r.Context()))
		writeJSON(w, http.StatusInternalServerError, ErrorRespBody{Error: msg})
	}
}

// decodeBody turns a malformed body into a *model.ValidationError so it's
// reported like any other invalid input.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &model.ValidationError{Details: []model.FieldError{{
			Rule:    "json",
			Message: "invalid request body: " + err.Error(),
		}}}
	}
	return nil
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
