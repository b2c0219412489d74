package route

import (
	"net/http"
	"sylcal/src-server/metric"
	"sylcal/src-server/render"
	"sylcal/src-server/utils"
	"time"
)

// Ical serves a parsed line as a single-event .ics file
func Ical(muxer *http.ServeMux, as *utils.AppState) {
	muxer.HandleFunc("POST /ical", func(w http.ResponseWriter, r *http.Request) {
		var req lineRequest
		if err := decodeBody(w, r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.Line = utils.CleanupString(req.Line); req.Line == "" {
			http.Error(w, "line is blank", http.StatusBadRequest)
			return
		}

		startTimer := time.Now()
		event, err := as.Parser.ParseLine(req.Line)
		as.Metric.Observe(metric.EntryLine, startTimer, err)
		if err != nil {
			writeParseError(w, err)
			return
		}
		w.Header().Set("Content-Disposition", `attachment; filename="event.ics"`)
		writeResult(w, render.FormatICS, event)
	})
}
