package model

import (
	"encoding/json"
	"time"
)

// EventPayload is the result of the delimited parser: an event plus the
// timezone its timestamps were resolved in.
type EventPayload struct {
	StructuredEvent
	timezone string
}

func NewEventPayload(event StructuredEvent, location *time.Location) EventPayload {
	return EventPayload{
		StructuredEvent: event,
		timezone:        location.String(),
	}
}

// Get the IANA name of the payload's timezone
func (p EventPayload) GetTimezone() string {
	return p.timezone
}

type payloadDateTime struct {
	DateTime string `json:"dateTime" yaml:"dateTime"`
	TimeZone string `json:"timeZone" yaml:"timeZone"`
}

// Wire form of EventPayload, same shape as a calendar insert body
type eventPayloadDoc struct {
	Summary     string          `json:"summary" yaml:"summary"`
	Location    string          `json:"location" yaml:"location"`
	Description string          `json:"description" yaml:"description"`
	Start       payloadDateTime `json:"start" yaml:"start"`
	End         payloadDateTime `json:"end" yaml:"end"`
}

func (p EventPayload) doc() eventPayloadDoc {
	return eventPayloadDoc{
		Summary:     p.title,
		Location:    p.location,
		Description: p.notes,
		Start: payloadDateTime{
			DateTime: p.start.Format("2006-01-02T15:04:05"),
			TimeZone: p.timezone,
		},
		End: payloadDateTime{
			DateTime: p.end.Format("2006-01-02T15:04:05"),
			TimeZone: p.timezone,
		},
	}
}

func (p EventPayload) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.doc())
}

func (p EventPayload) MarshalYAML() (interface{}, error) {
	return p.doc(), nil
}
