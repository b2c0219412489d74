package parser

import (
	"strings"
	"sylcal/src-server/model"
	"time"
)

const delimitedFieldCount = 5

// ParseDelimited parses "title, date, start-end, location, notes".
//
// The string must split into exactly five comma-separated fields and the
// third one must hold a hyphen between start and end time. Both ends are
// resolved as "<date> <time>" in timezone, or in the parser's zone when
// timezone is empty.
func (p *Parser) ParseDelimited(eventStr string, timezone string) (model.EventPayload, error) {
	fields := strings.Split(eventStr, ",")
	if len(fields) != delimitedFieldCount {
		return model.EventPayload{}, malformed("expected 5 comma-separated fields", map[string]any{
			"got":   len(fields),
			"input": eventStr,
		})
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	title, date, timeRange, location, notes := fields[0], fields[1], fields[2], fields[3], fields[4]

	startRaw, endRaw, found := strings.Cut(timeRange, "-")
	if !found {
		return model.EventPayload{}, malformed("time range has no '-' separator", map[string]any{
			"range": timeRange,
		})
	}
	startRaw, endRaw = strings.TrimSpace(startRaw), strings.TrimSpace(endRaw)
	if startRaw == "" || endRaw == "" {
		return model.EventPayload{}, malformed("time range has an empty side", map[string]any{
			"range": timeRange,
		})
	}

	loc := p.location
	if timezone = strings.TrimSpace(timezone); timezone != "" {
		var err error
		if loc, err = time.LoadLocation(timezone); err != nil {
			return model.EventPayload{}, malformed("unknown timezone", map[string]any{
				"timezone": timezone,
				"error":    err,
			})
		}
	}
	base := p.base(loc)

	startText, endText := delimitedClocks(startRaw, endRaw)
	start, err := p.resolveText(date+" "+startText, base)
	if err != nil {
		return model.EventPayload{}, err
	}
	end, err := p.resolveText(date+" "+endText, base)
	if err != nil {
		return model.EventPayload{}, err
	}

	event, err := model.NewStructuredEvent(title, start, end, location, notes)
	if err != nil {
		return model.EventPayload{}, err
	}
	return model.NewEventPayload(event, loc), nil
}

// Normalize both sides to "HH:MM" when they read as clock times. A side that
// does not ("noon") is handed to the resolver as written.
func delimitedClocks(startRaw, endRaw string) (string, string) {
	if start, end, err := resolveClocks(startRaw, endRaw); err == nil {
		return start, end
	}
	startText, endText := startRaw, endRaw
	if c, err := resolveClock(startRaw); err == nil {
		startText = c
	}
	if c, err := resolveClock(endRaw); err == nil {
		endText = c
	}
	return startText, endText
}

func malformed(msg string, args map[string]any) error {
	return model.NewParseError(model.ErrMalformedInput, msg, args)
}
