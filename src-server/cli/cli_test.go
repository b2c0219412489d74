package cli_test

import (
	"bytes"
	"errors"
	"strings"
	"sylcal/src-server/cli"
	"sylcal/src-server/model"
	"sylcal/src-server/natural"
	"sylcal/src-server/utils"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func testAppState(t *testing.T) func() *utils.AppState {
	t.Helper()
	t.Setenv("TIMEZONE", "UTC")
	resolver := natural.ResolverFunc(func(text string, base time.Time) (natural.Match, bool, error) {
		for _, layout := range []string{"2006-01-02 15:04", "Jan 2 15:04"} {
			if parsed, err := time.ParseInLocation(layout, text, base.Location()); err == nil {
				if parsed.Year() == 0 {
					parsed = parsed.AddDate(base.Year(), 0, 0)
				}
				return natural.Match{Time: parsed, Text: text}, true, nil
			}
		}
		if i := strings.Index(text, "April 3"); i >= 0 {
			return natural.Match{Time: time.Date(base.Year(), 4, 3, 0, 0, 0, 0, base.Location()), Text: "April 3", Index: i}, true, nil
		}
		return natural.Match{}, false, nil
	})
	return func() *utils.AppState {
		return utils.NewAppStateWith(utils.NewConfig(), resolver, prometheus.NewRegistry())
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCommand(testAppState(t))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	out, err := run(t, "parse", "--now", "2026-01-10T09:00:00Z", "Lecture: April 3, 10:00 AM – 11:15 AM, Room 101")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"title": "Lecture"`, `"location": "Room 101"`, `"start_datetime": "2026-04-03T10:00:00Z"`, `"end_datetime": "2026-04-03T11:15:00Z"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
}

func TestParseCommandOutputs(t *testing.T) {
	out, err := run(t, "parse", "-o", "yaml", "--now", "2026-01-10T09:00:00Z", "Lecture: April 3, 10:00 AM – 11:15 AM, Room 101")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "title: Lecture") {
		t.Error("unexpected yaml output", out)
	}

	out, err = run(t, "parse", "-o", "ics", "Lecture: April 3, 10:00 AM – 11:15 AM, Room 101")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "SUMMARY:Lecture") {
		t.Error("unexpected ics output", out)
	}

	if _, err := run(t, "parse", "-o", "xml", "Lecture: April 3"); err == nil {
		t.Error("expected an error for xml output")
	}
}

func TestParseCommandFlags(t *testing.T) {
	if _, err := run(t, "parse", "--now", "yesterday", "Lecture: April 3"); err == nil {
		t.Error("expected an error for a bad --now")
	}
	if _, err := run(t, "parse", "--timezone", "Nowhere/Land", "Lecture: April 3"); err == nil {
		t.Error("expected an error for a bad --timezone")
	}
	if _, err := run(t, "parse"); err == nil {
		t.Error("expected an error without a line")
	}
}

func TestParseCommandNoDate(t *testing.T) {
	_, err := run(t, "parse", "Office hours: TBD, Room 5")
	if !errors.Is(err, model.ErrNoDateFound) {
		t.Error("expected ErrNoDateFound, got", err)
	}
}

func TestDelimitedCommand(t *testing.T) {
	out, err := run(t, "delimited", "--now", "2026-01-10T09:00:00Z", "Meeting with A, Sep 11, 9 - 11 AM, Office, Bring documents")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"summary": "Meeting with A"`, `"description": "Bring documents"`, `"dateTime": "2026-09-11T11:00:00"`, `"timeZone": "UTC"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}

	_, err = run(t, "delimited", "Meeting, Sep 11, 9 - 11 AM, Office")
	if !errors.Is(err, model.ErrMalformedInput) {
		t.Error("expected ErrMalformedInput, got", err)
	}
}

func TestParseCommandUsesAppParser(t *testing.T) {
	t.Setenv("DEFAULT_DURATION", "45m")
	out, err := run(t, "parse", "--now", "2026-01-10T09:00:00Z", "Quiz: April 3, Room 5")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"start_datetime": "2026-04-03T00:00:00Z"`, `"end_datetime": "2026-04-03T00:45:00Z"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
}
