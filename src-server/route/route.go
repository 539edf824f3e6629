package route

import (
	"net/http"

	"huddle/src-server/utils"
)

// Mount registers every API route on muxer.
func Mount(muxer *http.ServeMux, as *utils.AppState) {
	Attendees(muxer, as)
	Groups(muxer, as)
	Dashboard(muxer, as)
	Ping(muxer, as)
}
