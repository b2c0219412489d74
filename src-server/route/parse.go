package route

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sylcal/src-server/metric"
	"sylcal/src-server/model"
	"sylcal/src-server/render"
	"sylcal/src-server/utils"
	"time"
)

// largest request body accepted, a single line of text fits easily
const maxBodyBytes = 16 << 10

type lineRequest struct {
	Line string `json:"line"`
}

type delimitedRequest struct {
	Event    string `json:"event"`
	Timezone string `json:"timezone"`
}

func Parse(muxer *http.ServeMux, as *utils.AppState) {
	muxer.HandleFunc("POST /parse", func(w http.ResponseWriter, r *http.Request) {
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
		writeResult(w, render.FormatJSON, event)
	})

	muxer.HandleFunc("POST /parse/delimited", func(w http.ResponseWriter, r *http.Request) {
		var req delimitedRequest
		if err := decodeBody(w, r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		startTimer := time.Now()
		payload, err := as.Parser.ParseDelimited(utils.CleanupString(req.Event), req.Timezone)
		as.Metric.Observe(metric.EntryDelimited, startTimer, err)
		if err != nil {
			writeParseError(w, err)
			return
		}
		writeResult(w, render.FormatJSON, payload)
	})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.New("invalid request body: " + strings.TrimPrefix(err.Error(), "json: "))
	}
	return nil
}

// Parse failures are the caller's input, not ours: 422 with the error text
func writeParseError(w http.ResponseWriter, err error) {
	var parseErr *model.ParseError
	if !errors.As(err, &parseErr) {
		slog.Error("unexpected parse failure", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnprocessableEntity)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error": parseErr.Error(),
		"kind":  metric.Result(err),
	}); err != nil {
		slog.Warn("can't write to response", "where", "route/parse.go", "error", err)
	}
}

// Rendered in full before the status goes out, so a failed render is a 500
// and not a cut-off 200
func writeResult(w http.ResponseWriter, format render.Format, v any) {
	var body bytes.Buffer
	if err := render.Write(&body, format, v); err != nil {
		slog.Error("can't render result", "format", format, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	if _, err := body.WriteTo(w); err != nil {
		slog.Warn("can't write to response", "where", "route/parse.go", "error", err)
	}
}
