package model

import (
	"encoding/json"
	"strings"
	"time"
)

// StructuredEvent is the immutable result of parsing one line of syllabus
// text. Build it with NewStructuredEvent.
type StructuredEvent struct {
	title    string
	start    time.Time
	end      time.Time
	location string
	notes    string
}

// Create a new StructuredEvent. The title is trimmed and must not be empty,
// and end must not be earlier than start.
func NewStructuredEvent(title string, start, end time.Time, location, notes string) (StructuredEvent, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return StructuredEvent{}, NewParseError(ErrInvariantViolation, "title is empty", nil)
	}
	if start.IsZero() || end.IsZero() {
		return StructuredEvent{}, NewParseError(ErrInvariantViolation, "start or end not set", map[string]any{
			"title": title,
		})
	}
	if end.Before(start) {
		return StructuredEvent{}, NewParseError(ErrInvariantViolation, "end is before start", map[string]any{
			"start": start.Format(time.RFC3339),
			"end":   end.Format(time.RFC3339),
		})
	}
	return StructuredEvent{
		title:    title,
		start:    start,
		end:      end,
		location: strings.TrimSpace(location),
		notes:    strings.TrimSpace(notes),
	}, nil
}

func (e StructuredEvent) GetTitle() string {
	return e.title
}

func (e StructuredEvent) GetStart() time.Time {
	return e.start
}

func (e StructuredEvent) GetEnd() time.Time {
	return e.end
}

func (e StructuredEvent) GetLocation() string {
	return e.location
}

func (e StructuredEvent) GetNotes() string {
	return e.notes
}

func (e StructuredEvent) GetDuration() time.Duration {
	return e.end.Sub(e.start)
}

// Wire form of StructuredEvent, timestamps as ISO-8601 text
type structuredEventDoc struct {
	Title         string `json:"title" yaml:"title"`
	StartDatetime string `json:"start_datetime" yaml:"start_datetime"`
	EndDatetime   string `json:"end_datetime" yaml:"end_datetime"`
	Location      string `json:"location" yaml:"location"`
	Notes         string `json:"notes" yaml:"notes"`
}

func (e StructuredEvent) doc() structuredEventDoc {
	return structuredEventDoc{
		Title:         e.title,
		StartDatetime: e.start.Format(time.RFC3339),
		EndDatetime:   e.end.Format(time.RFC3339),
		Location:      e.location,
		Notes:         e.notes,
	}
}

func (e StructuredEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.doc())
}

func (e StructuredEvent) MarshalYAML() (interface{}, error) {
	return e.doc(), nil
}
