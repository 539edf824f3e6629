package route

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"huddle/src-server/model"
	"huddle/src-server/utils"
)

const (
	defaultRecentLimit = 10
	maxRecentLimit     = 100
)

type StatsRespBody struct {
	Total      int                       `json:"total"`
	Unassigned int                       `json:"unassigned"`
	ByUserType map[model.UserType]int    `json:"byUserType"`
	ByIndustry map[model.Industry]int    `json:"byIndustry"`
	ByFormat   map[model.EventFormat]int `json:"byFormat"`
}

func Stats(attendees []model.Attendee) StatsRespBody {
	stats := StatsRespBody{
		Total:      len(attendees),
		ByUserType: make(map[model.UserType]int),
		ByIndustry: make(map[model.Industry]int),
		ByFormat:   make(map[model.EventFormat]int),
	}
	for _, a := range attendees {
		stats.ByUserType[a.UserType]++
		stats.ByIndustry[a.Responses.Industry]++
		stats.ByFormat[a.Responses.PreferredFormat]++
		if a.GroupID == nil {
			stats.Unassigned++
		}
	}
	return stats
}

// Recent returns attendees newest first, created at or after since (zero
// time means no cutoff), at most limit of them.
func Recent(attendees []model.Attendee, since time.Time, limit int) []model.Attendee {
	out := make([]model.Attendee, 0, min(limit, len(attendees)))
	for i := len(attendees) - 1; i >= 0 && len(out) < limit; i-- {
		if !since.IsZero() && attendees[i].CreatedAt.Before(since) {
			continue
		}
		out = append(out, attendees[i])
	}
	return out
}

func Dashboard(muxer *http.ServeMux, as *utils.AppState) {
	muxer.HandleFunc("GET /dashboard/stats", func(w http.ResponseWriter, r *http.Request) {
		startTimer := time.Now()
		attendees, err := as.Store.ListAttendees(r.Context())
		utils.Observe(as.MetricChans.DatabaseRead, time.Since(startTimer))
		if err != nil {
			writeError(w, r, err, "Failed to fetch attendees")
			return
		}

		writeJSON(w, http.StatusOK, Stats(attendees))
	})

	// ?limit=N&since=<phrase>, e.g. since=yesterday or since=last monday
	muxer.HandleFunc("GET /dashboard/recent", func(w http.ResponseWriter, r *http.Request) {
		limit := defaultRecentLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				writeJSON(w, http.StatusBadRequest, ErrorRespBody{Error: "Invalid limit"})
				return
			}
			limit = min(n, maxRecentLimit)
		}

		var since time.Time
		if raw := strings.TrimSpace(r.URL.Query().Get("since")); raw != "" {
			result, err := as.When.Parse(raw, time.Now())
			switch {
			case err != nil:
				writeJSON(w, http.StatusBadRequest, ErrorRespBody{Error: "Invalid since", Reason: err.Error()})
				return
			case result == nil:
				writeJSON(w, http.StatusBadRequest, ErrorRespBody{Error: "Invalid since", Reason: "can't find a date in " + strconv.Quote(raw)})
				return
			}
			since = result.Time
		}

		startTimer := time.Now()
		attendees, err := as.Store.ListAttendees(r.Context())
		utils.Observe(as.MetricChans.DatabaseRead, time.Since(startTimer))
		if err != nil {
			writeError(w, r, err, "Failed to fetch attendees")
			return
		}

		writeJSON(w, http.StatusOK, Recent(attendees, since, limit))
	})
}
