package route

import (
	"log/slog"
	"net/http"
	"sylcal/src-server/utils"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitMiddleware rejects requests beyond the configured rate with 429.
// One token bucket is shared by all clients.
func RateLimitMiddleware(as *utils.AppState, next http.Handler) http.Handler {
	limiter := rate.NewLimiter(as.Config.GetRateLimit(), as.Config.GetRateBurst())
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			w.Header().Set("Retry-After", "1")
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func LogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startTimer := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"latency", time.Since(startTimer),
		)
	})
}

// Handler builds the full HTTP surface
func Handler(as *utils.AppState, metrics http.Handler) http.Handler {
	muxer := http.NewServeMux()
	muxer.Handle("GET /metrics", metrics)
	Parse(muxer, as)
	Ical(muxer, as)
	return LogMiddleware(RateLimitMiddleware(as, muxer))
}
