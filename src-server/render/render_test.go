package render_test

import (
	"strings"
	"sylcal/src-server/model"
	"sylcal/src-server/render"
	"testing"
	"time"
)

func testEvent(t *testing.T) model.StructuredEvent {
	t.Helper()
	start := time.Date(2026, 4, 3, 10, 0, 0, 0, time.UTC)
	event, err := model.NewStructuredEvent("Lecture", start, start.Add(75*time.Minute), "Room 101", "")
	if err != nil {
		t.Fatal(err)
	}
	return event
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]render.Format{"json": render.FormatJSON, " YAML ": render.FormatYAML, "ics": render.FormatICS} {
		got, err := render.ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := render.ParseFormat("xml"); err == nil {
		t.Error("expected an error for xml")
	}
}

func TestWrite(t *testing.T) {
	event := testEvent(t)
	tests := []struct {
		format render.Format
		want   []string
	}{
		{render.FormatJSON, []string{`"title": "Lecture"`, `"start_datetime": "2026-04-03T10:00:00Z"`}},
		{render.FormatYAML, []string{"title: Lecture", "location: Room 101", "start_datetime: ", "2026-04-03T10:00:00Z"}},
		{render.FormatICS, []string{"BEGIN:VEVENT", "SUMMARY:Lecture"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var sb strings.Builder
			if err := render.Write(&sb, tt.format, event); err != nil {
				t.Fatal(err)
			}
			for _, want := range tt.want {
				if !strings.Contains(sb.String(), want) {
					t.Errorf("output missing %q:\n%s", want, sb.String())
				}
			}
		})
	}
}

func TestWriteICSRejectsOtherValues(t *testing.T) {
	var sb strings.Builder
	if err := render.Write(&sb, render.FormatICS, map[string]string{"a": "b"}); err == nil {
		t.Error("expected an error")
	}
}
