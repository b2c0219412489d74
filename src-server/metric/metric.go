package metric

import (
	"errors"
	"log/slog"
	"sylcal/src-server/model"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	EntryLine      = "line"
	EntryDelimited = "delimited"
)

type Metric struct {
	parseTotal   *prometheus.CounterVec
	parseLatency *prometheus.GaugeVec
}

// Create and register the parse metrics on reg. Registering twice on the same
// registry reuses the collectors already there.
func New(reg prometheus.Registerer) *Metric {
	return &Metric{
		parseTotal: register(reg, "sylcal_parse_total", prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sylcal_parse_total",
			Help: "Number of parse calls by entry point and result",
		}, []string{"entry", "result"})),
		parseLatency: register(reg, "sylcal_parse_latency_microsec", prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "sylcal_parse_latency_microsec",
			Help: "The latency of the last parse call in microseconds",
		}, []string{"entry"})),
	}
}

func register[T prometheus.Collector](reg prometheus.Registerer, name string, collector T) T {
	if err := reg.Register(collector); err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			if existing, ok := alreadyRegistered.ExistingCollector.(T); ok {
				return existing
			}
		}
		slog.Error("can't register metric", "name", name, "error", err)
		return collector
	}
	slog.Debug("metric registered", "name", name)
	return collector
}

// Record one parse call of entry that began at startTimer and ended with err
func (m *Metric) Observe(entry string, startTimer time.Time, err error) {
	m.parseLatency.WithLabelValues(entry).Set(float64(time.Since(startTimer).Microseconds()))
	m.parseTotal.WithLabelValues(entry, Result(err)).Inc()
}

// Label value for the outcome of a parse call
func Result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, model.ErrNoDateFound):
		return "no_date"
	case errors.Is(err, model.ErrMalformedInput):
		return "malformed"
	case errors.Is(err, model.ErrUnresolvableDateTime):
		return "unresolvable"
	case errors.Is(err, model.ErrInvariantViolation):
		return "invariant"
	}
	return "error"
}
