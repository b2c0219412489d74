package utils

import (
	"sylcal/src-server/metric"
	"sylcal/src-server/natural"
	"sylcal/src-server/parser"

	"github.com/prometheus/client_golang/prometheus"
)

type AppState struct {
	Config   *Config
	Resolver natural.Resolver
	Parser   *parser.Parser
	Metric   *metric.Metric
}

func NewAppState() *AppState {
	config := NewConfig()
	LogLevel.Set(config.GetLogLevel())
	return NewAppStateWith(config, natural.NewWhenResolver(), prometheus.DefaultRegisterer)
}

// Build an AppState from explicit parts, used by tests
func NewAppStateWith(config *Config, resolver natural.Resolver, reg prometheus.Registerer) *AppState {
	return &AppState{
		Config:   config,
		Resolver: resolver,
		Parser: parser.New(resolver,
			parser.WithLocation(config.GetLocation()),
			parser.WithDefaultDuration(config.GetDefaultDuration()),
		),
		Metric: metric.New(reg),
	}
}
