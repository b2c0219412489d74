package parser

import (
	"regexp"
	"strings"
	"sylcal/src-server/model"
	"sylcal/src-server/natural"
	"time"
)

// a tail that is only a year is left over from "September 15, 2024"
var yearPattern = regexp.MustCompile(`^(?:1|2)\d{3}$`)

// ParseLine extracts one event from a line of free text.
//
//   - title: see TitleRule
//   - date: the first expression the resolver finds in the whole line, or
//     model.ErrNoDateFound
//   - time: a "<time>–<time>" range anywhere in the line is resolved on that
//     date; without one the event starts at the resolved date and lasts the
//     default duration
//   - location: the text after the last comma, unless that text is itself a
//     date or time (as in "Project Due: May 1, 11:59 PM") or part of the
//     date expression (as in "Due: September 15, 2024")
//   - notes: always empty
func (p *Parser) ParseLine(line string) (model.StructuredEvent, error) {
	base := p.base(p.location)

	title, _ := ExtractTitle(line)

	anchor, ok, err := p.resolver.Resolve(line, base)
	if err != nil {
		return model.StructuredEvent{}, model.NewParseError(model.ErrNoDateFound, "resolver failed", map[string]any{
			"line":  line,
			"error": err,
		})
	}
	if !ok {
		return model.StructuredEvent{}, model.NewParseError(model.ErrNoDateFound, "no date expression in line", map[string]any{
			"line": line,
		})
	}

	var start, end time.Time
	if timeRange, found := FindTimeRange(line); found {
		startClock, endClock, err := resolveClocks(timeRange.Start, timeRange.End)
		if err != nil {
			return model.StructuredEvent{}, unresolvable("invalid time range", map[string]any{
				"range": timeRange.Text,
				"error": err,
			})
		}
		if start, err = p.resolveOnDate(anchor.Time, startClock, base); err != nil {
			return model.StructuredEvent{}, err
		}
		if end, err = p.resolveOnDate(anchor.Time, endClock, base); err != nil {
			return model.StructuredEvent{}, err
		}
	} else {
		start = truncateMinute(anchor.Time)
		if !hasClock(anchor.Text) {
			start = midnight(anchor.Time)
		}
		end = start.Add(p.defaultDuration)
	}

	return model.NewStructuredEvent(title, start, end, p.extractLocation(line, anchor, base), "")
}

// Resolve "<date> <clock>" with date written as YYYY-MM-DD
func (p *Parser) resolveOnDate(date time.Time, clock string, base time.Time) (time.Time, error) {
	text := date.Format("2006-01-02") + " " + clock
	return p.resolveText(text, base)
}

// Resolve text as a whole. A resolver that understands only part of it
// ("someday 09:00", a date with a year it ignores) would fill the rest from
// base, so that counts as unresolved.

func (p *Parser) resolveText(text string, base time.Time) (time.Time, error) {
	match, ok, err := p.resolver.Resolve(text, base)
	switch {
	case err != nil:
		return time.Time{}, unresolvable("resolver failed", map[string]any{
			"text":  text,
			"error": err,
		})
	case !ok:
		return time.Time{}, unresolvable("no date-time in text", map[string]any{
			"text": text,
		})
	case !covers(text, match):
		return time.Time{}, unresolvable("date-time only partly understood", map[string]any{
			"text":       text,
			"understood": match.Text,
		})
	}
	return truncateMinute(match.Time), nil
}

// Whether match spans text up to surrounding spaces and punctuation
func covers(text string, match natural.Match) bool {
	end := match.Index + len(match.Text)
	if match.Index < 0 || end > len(text) || text[match.Index:end] != match.Text {
		return false
	}
	return strings.Trim(text[:match.Index], " ,.") == "" && strings.Trim(text[end:], " ,.") == ""
}

// The text after the last comma is the location unless it is a date or time
// itself, or belongs to the anchor expression. A single-comma line such as
// "Project Due: May 1, 11:59 PM" thus has no location.
func (p *Parser) extractLocation(line string, anchor natural.Match, base time.Time) string {
	tail := lastCommaTail(line)
	if tail == "" || hasClock(tail) || yearPattern.MatchString(tail) {
		return ""
	}
	if strings.LastIndex(line, ",") < anchor.Index+len(anchor.Text) {
		return ""
	}
	if _, ok, err := p.resolver.Resolve(tail, base); err == nil && ok {
		return ""
	}
	return tail
}

func truncateMinute(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
