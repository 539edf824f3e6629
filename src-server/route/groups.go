package route

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"huddle/src-server/metric"
	"huddle/src-server/model"
	"huddle/src-server/utils"
)

func Groups(muxer *http.ServeMux, as *utils.AppState) {
	// create a group by hand
	muxer.HandleFunc("POST /groups", func(w http.ResponseWriter, r *http.Request) {
		var reqBody model.GroupInput
		if err := decodeBody(w, r, &reqBody); err != nil {
			writeError(w, r, err, "Invalid group data")
			return
		}

		startTimer := time.Now()
		group, err := as.Store.CreateGroup(r.Context(), reqBody)
		utils.Observe(as.MetricChans.DatabaseWrite, time.Since(startTimer))
		if err != nil {
			msg := "Failed to create group"
			if errors.Is(err, model.ErrValidation) {
				msg = "Invalid group data"
			}
			writeError(w, r, err, msg)
			return
		}
		metric.GroupsCreated.WithLabelValues("manual").Inc()

		writeJSON(w, http.StatusOK, group)
	})

	muxer.HandleFunc("GET /groups", func(w http.ResponseWriter, r *http.Request) {
		startTimer := time.Now()
		groups, err := as.Store.ListGroups(r.Context())
		utils.Observe(as.MetricChans.DatabaseRead, time.Since(startTimer))
		if err != nil {
			writeError(w, r, err, "Failed to fetch groups")
			return
		}

		writeJSON(w, http.StatusOK, groups)
	})

	// preview suggested groups without saving anything
	muxer.HandleFunc("POST /groups/suggest", func(w http.ResponseWriter, r *http.Request) {
		startTimer := time.Now()
		suggestions, err := as.Groups.Preview(r.Context())
		utils.Observe(as.MetricChans.DatabaseRead, time.Since(startTimer))
		if err != nil {
			writeError(w, r, err, "Failed to suggest groups")
			return
		}

		writeJSON(w, http.StatusOK, suggestions)
	})

	// save suggested groups, ?assign=true also moves attendees into them
	muxer.HandleFunc("POST /groups/suggest/apply", func(w http.ResponseWriter, r *http.Request) {
		assign := false
		if raw := r.URL.Query().Get("assign"); raw != "" {
			var err error
			assign, err = strconv.ParseBool(raw)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, ErrorRespBody{Error: "Invalid assign flag"})
				return
			}
		}

		startTimer := time.Now()
		groups, err := as.Groups.Apply(r.Context(), assign)
		utils.Observe(as.MetricChans.DatabaseWrite, time.Since(startTimer))
		metric.GroupsCreated.WithLabelValues("suggestion").Add(float64(len(groups)))
		if err != nil {
			writeError(w, r, err, "Failed to apply group suggestions")
			return
		}

		writeJSON(w, http.StatusOK, groups)
	})

	// members of a group, derived from each attendee's groupId
	muxer.HandleFunc("GET /groups/{groupId}/attendees", func(w http.ResponseWriter, r *http.Request) {
		groupID, ok := pathID(r, "groupId")
		if !ok {
			writeJSON(w, http.StatusBadRequest, ErrorRespBody{Error: "Invalid groupId"})
			return
		}

		startTimer := time.Now()
		members, err := as.Groups.Members(r.Context(), groupID)
		utils.Observe(as.MetricChans.DatabaseRead, time.Since(startTimer))
		if err != nil {
			writeError(w, r, err, "Failed to fetch group attendees")
			return
		}

		writeJSON(w, http.StatusOK, members)
	})

	muxer.HandleFunc("POST /groups/{groupId}/assign/{attendeeId}", func(w http.ResponseWriter, r *http.Request) {
		groupID, okGroup := pathID(r, "groupId")
		attendeeID, okAttendee := pathID(r, "attendeeId")
		if !okGroup || !okAttendee {
			writeJSON(w, http.StatusBadRequest, ErrorRespBody{Error: "Invalid groupId or attendeeId"})
			return
		}

		startTimer := time.Now()
		err := as.Groups.Assign(r.Context(), groupID, attendeeID)
		utils.Observe(as.MetricChans.DatabaseWrite, time.Since(startTimer))
		if err != nil {
			writeError(w, r, err, "Failed to assign attendee to group")
			return
		}
		metric.Assignments.Inc()

		writeJSON(w, http.StatusOK, SuccessRespBody{Success: true})
	})

	muxer.HandleFunc("POST /groups/{groupId}/lock", func(w http.ResponseWriter, r *http.Request) {
		groupID, ok := pathID(r, "groupId")
		if !ok {
			writeJSON(w, http.StatusBadRequest, ErrorRespBody{Error: "Invalid groupId"})
			return
		}

		startTimer := time.Now()
		_, err := as.Groups.Lock(r.Context(), groupID)
		utils.Observe(as.MetricChans.DatabaseWrite, time.Since(startTimer))
		if err != nil {
			writeError(w, r, err, "Failed to lock group")
			return
		}
		metric.GroupsLocked.Inc()

		writeJSON(w, http.StatusOK, SuccessRespBody{Success: true})
	})
}
