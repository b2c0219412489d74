package model_test

import (
	"encoding/json"
	"errors"
	"strings"
	"sylcal/src-server/model"
	"testing"
	"time"
)

func TestNewStructuredEvent(t *testing.T) {
	start := time.Date(2026, 3, 15, 14, 0, 0, 0, time.UTC)

	// case: valid event, fields trimmed
	func() {
		event, err := model.NewStructuredEvent("  Exam 2 ", start, start.Add(90*time.Minute), " Stevenson 432 ", "")
		if err != nil {
			t.Fatal(err)
		}
		if event.GetTitle() != "Exam 2" {
			t.Error("title not trimmed", event.GetTitle())
		}
		if event.GetLocation() != "Stevenson 432" {
			t.Error("location not trimmed", event.GetLocation())
		}
		if event.GetDuration() != 90*time.Minute {
			t.Error("unexpected duration", event.GetDuration())
		}
	}()

	// case: blank title
	func() {
		_, err := model.NewStructuredEvent(" \t", start, start, "", "")
		if !errors.Is(err, model.ErrInvariantViolation) {
			t.Error("expected invariant violation, got", err)
		}
	}()

	// case: end before start is rejected, not swapped
	func() {
		_, err := model.NewStructuredEvent("Exam", start, start.Add(-time.Minute), "", "")
		if !errors.Is(err, model.ErrInvariantViolation) {
			t.Error("expected invariant violation, got", err)
		}
	}()

	// case: zero-length event is allowed
	func() {
		if _, err := model.NewStructuredEvent("Deadline", start, start, "", ""); err != nil {
			t.Error(err)
		}
	}()
}

func TestStructuredEventJSON(t *testing.T) {
	loc, err := time.LoadLocation("America/Chicago")
	if err != nil {
		t.Skip("tzdata not available:", err)
	}
	start := time.Date(2026, 4, 3, 10, 0, 0, 0, loc)
	event, err := model.NewStructuredEvent("Lecture", start, start.Add(75*time.Minute), "Room 101", "")
	if err != nil {
		t.Fatal(err)
	}
	raw, err := json.Marshal(event)
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]string
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatal(err)
	}
	if doc["title"] != "Lecture" || doc["location"] != "Room 101" || doc["notes"] != "" {
		t.Error("unexpected document", string(raw))
	}
	if doc["start_datetime"] != "2026-04-03T10:00:00-05:00" {
		t.Error("unexpected start", doc["start_datetime"])
	}
	if doc["end_datetime"] != "2026-04-03T11:15:00-05:00" {
		t.Error("unexpected end", doc["end_datetime"])
	}
}

func TestEventPayloadJSON(t *testing.T) {
	loc, err := time.LoadLocation("America/Chicago")
	if err != nil {
		t.Skip("tzdata not available:", err)
	}
	start := time.Date(2026, 9, 11, 9, 0, 0, 0, loc)
	event, err := model.NewStructuredEvent("Meeting with A", start, start.Add(2*time.Hour), "Office", "Bring documents")
	if err != nil {
		t.Fatal(err)
	}
	payload := model.NewEventPayload(event, loc)
	if payload.GetTimezone() != "America/Chicago" {
		t.Error("unexpected timezone", payload.GetTimezone())
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`"summary":"Meeting with A"`,
		`"description":"Bring documents"`,
		`"start":{"dateTime":"2026-09-11T09:00:00","timeZone":"America/Chicago"}`,
		`"end":{"dateTime":"2026-09-11T11:00:00","timeZone":"America/Chicago"}`,
	} {
		if !strings.Contains(string(raw), want) {
			t.Errorf("payload %s missing %s", raw, want)
		}
	}
}

func TestParseError(t *testing.T) {
	err := error(model.NewParseError(model.ErrMalformedInput, "expected 5 fields", map[string]any{
		"got":   4,
		"input": "a,b,c,d",
	}))
	if !errors.Is(err, model.ErrMalformedInput) {
		t.Error("kind not matched by errors.Is")
	}
	if errors.Is(err, model.ErrNoDateFound) {
		t.Error("matched the wrong kind")
	}
	want := `malformed input: expected 5 fields | got: "4" input: "a,b,c,d"`
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
	var parseErr *model.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatal("errors.As failed")
	}
	if v, ok := parseErr.Arg("got"); !ok || v != 4 {
		t.Error("arg not kept", v)
	}
}
