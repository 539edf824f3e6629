package route

import (
	"errors"
	"net/http"
	"time"

	"huddle/src-server/metric"
	"huddle/src-server/model"
	"huddle/src-server/utils"
)

func Attendees(muxer *http.ServeMux, as *utils.AppState) {
	// register an attendee from the quiz
	muxer.HandleFunc("POST /attendees", func(w http.ResponseWriter, r *http.Request) {
		var reqBody model.AttendeeInput
		if err := decodeBody(w, r, &reqBody); err != nil {
			writeError(w, r, err, "Invalid attendee data")
			return
		}

		startTimer := time.Now()
		attendee, err := as.Store.CreateAttendee(r.Context(), reqBody)
		utils.Observe(as.MetricChans.DatabaseWrite, time.Since(startTimer))
		if err != nil {
			msg := "Failed to create attendee"
			if errors.Is(err, model.ErrValidation) {
				msg = "Invalid attendee data"
			}
			writeError(w, r, err, msg)
			return
		}
		metric.AttendeesCreated.Inc()

		writeJSON(w, http.StatusOK, attendee)
	})

	// every attendee, oldest first
	muxer.HandleFunc("GET /attendees", func(w http.ResponseWriter, r *http.Request) {
		startTimer := time.Now()
		attendees, err := as.Store.ListAttendees(r.Context())
		utils.Observe(as.MetricChans.DatabaseRead, time.Since(startTimer))
		if err != nil {
			writeError(w, r, err, "Failed to fetch attendees")
			return
		}

		writeJSON(w, http.StatusOK, attendees)
	})
}
