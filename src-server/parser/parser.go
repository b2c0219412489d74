// Package parser turns one line of syllabus or schedule text into a
// model.StructuredEvent.
//
// Two entry points exist. ParseLine is heuristic: it segments free text such
// as "Exam 2: March 15, 2–3:30pm, Stevenson 432" by colon and comma position
// and leaves date recognition to a natural.Resolver. ParseDelimited is strict:
// it expects exactly "title, date, start-end, location, notes".
//
// A Parser holds no mutable state; it is safe for concurrent use as long as
// its Resolver is.
package parser

import (
	"log/slog"
	"sylcal/src-server/natural"
	"time"
)

const (
	// Length of an event whose line carries no time range
	DefaultDuration = 90 * time.Minute
	// Zone used when the caller does not name one
	DefaultTimezone = "America/Chicago"
)

type Parser struct {
	resolver        natural.Resolver
	location        *time.Location
	defaultDuration time.Duration
	now             func() time.Time
}

type Option func(*Parser)

// Resolve and emit times in loc instead of DefaultTimezone
func WithLocation(loc *time.Location) Option {
	return func(p *Parser) {
		if loc != nil {
			p.location = loc
		}
	}
}

// Use d as the length of events without a time range
func WithDefaultDuration(d time.Duration) Option {
	return func(p *Parser) {
		if d > 0 {
			p.defaultDuration = d
		}
	}
}

// Use now as the reference clock for relative expressions like "next friday"
func WithNow(now func() time.Time) Option {
	return func(p *Parser) {
		if now != nil {
			p.now = now
		}
	}
}

func New(resolver natural.Resolver, opts ...Option) *Parser {
	p := &Parser{
		resolver:        resolver,
		defaultDuration: DefaultDuration,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.location == nil {
		loc, err := time.LoadLocation(DefaultTimezone)
		if err != nil {
			slog.Warn("can't load default timezone, using UTC", "timezone", DefaultTimezone, "error", err)
			loc = time.UTC
		}
		p.location = loc
	}
	return p
}

func (p *Parser) GetLocation() *time.Location {
	return p.location
}

func (p *Parser) GetDefaultDuration() time.Duration {
	return p.defaultDuration
}

// reference time for one parse call, in loc
func (p *Parser) base(loc *time.Location) time.Time {
	return p.now().In(loc)
}
