package route

import (
	"net/http"
	"runtime"
	"time"

	"huddle/src-server/utils"
)

type PingRespBody struct {
	Uptime    string `json:"uptime"`
	GoVersion string `json:"goVersion"`
	Storage   string `json:"storage"`
}

func Ping(muxer *http.ServeMux, as *utils.AppState) {
	muxer.HandleFunc("GET /ping", func(w http.ResponseWriter, r *http.Request) {
		if err := as.Store.Ping(r.Context()); err != nil {
			writeError(w, r, err, "Store unavailable")
			return
		}
		writeJSON(w, http.StatusOK, PingRespBody{
			Uptime:    as.GetUptime().Round(time.Second).String(),
			GoVersion: runtime.Version(),
			Storage:   as.Config.GetStorage(),
		})
	})
}
