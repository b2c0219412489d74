// Package ical writes parsed events as an iCalendar (RFC 5545) document that
// any calendar client can import.
package ical

import (
	"errors"
	"fmt"
	"io"
	"sylcal/src-server/model"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

const ProdID = "-//sylcal//syllabus events//EN"

var ErrNoEvents = errors.New("ical: no events to encode")

// Build a calendar holding one VEVENT per event. stamp is written as DTSTAMP.
func NewCalendar(stamp time.Time, events ...model.StructuredEvent) (*ics.Calendar, error) {
	if len(events) == 0 {
		return nil, ErrNoEvents
	}
	cal := ics.NewCalendar()
	cal.SetProductId(ProdID)
	cal.SetMethod(ics.MethodPublish)
	for _, event := range events {
		vevent := cal.AddEvent(uuid.NewString())
		vevent.SetDtStampTime(stamp)
		vevent.SetStartAt(event.GetStart())
		vevent.SetEndAt(event.GetEnd())
		vevent.SetSummary(event.GetTitle())
		if location := event.GetLocation(); location != "" {
			vevent.SetLocation(location)
		}
		if notes := event.GetNotes(); notes != "" {
			vevent.SetDescription(notes)
		}
	}
	return cal, nil
}

// Write events to w as a text/calendar document
func Encode(w io.Writer, events ...model.StructuredEvent) error {
	cal, err := NewCalendar(time.Now(), events...)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("ical.Encode: can't write calendar: %w", err)
	}
	return nil
}
