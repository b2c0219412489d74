package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sylcal/src-server/model"

	"golang.org/x/text/cases"
)

var (
	// <time> – <time>, each side 1-2 digits, optional ':' or '.', up to 2
	// more digits and an optional AM/PM marker. En-dash or hyphen.
	timeRangePattern = regexp.MustCompile(
		`(\d{1,2}[:.]?\d{0,2}\s?(?:AM|PM|am|pm)?)\s*[–-]\s*(\d{1,2}[:.]?\d{0,2}\s?(?:AM|PM|am|pm)?)`,
	)
	// a clock time anywhere in a string: "11:59", "3.30", "2pm", "10 a.m."
	clockInTextPattern = regexp.MustCompile(`(?i)\b\d{1,2}\s*[:.]\s*\d{2}\b|\b\d{1,2}\s?[ap]\.?m\b\.?`)
	// a time of day named in words
	clockWordPattern = regexp.MustCompile(`(?i)\b(noon|midnight|morning|afternoon|evening|tonight|night)\b`)

	bareNumberPattern = regexp.MustCompile(`^\d{3,4}$`)
)

// TimeRange holds the two halves of a "<time>–<time>" expression exactly as
// they appeared in the input.
type TimeRange struct {
	Start string
	End   string
	// the whole matched expression
	Text string
}

// Find the first time range in line. Matches that are part of a longer
// number or date ("2026-03-15", "3/15-3/17") or with a side of more than
// two bare digits ("Room 101-102") are skipped.
func FindTimeRange(line string) (TimeRange, bool) {
	for _, m := range timeRangePattern.FindAllStringSubmatchIndex(line, -1) {
		if m[0] > 0 && strings.ContainsRune("0123456789/-.:", rune(line[m[0]-1])) {
			continue
		}
		if m[1] < len(line) && strings.ContainsRune("0123456789/-", rune(line[m[1]])) {
			continue
		}
		start, end := line[m[2]:m[3]], line[m[4]:m[5]]
		if bareNumber(start) || bareNumber(end) {
			continue
		}
		return TimeRange{Start: start, End: end, Text: line[m[0]:m[1]]}, true
	}
	return TimeRange{}, false
}

// three or four digits with no separator or marker, a room number or year
func bareNumber(side string) bool {
	return bareNumberPattern.MatchString(strings.TrimSpace(side))
}

// Whether s mentions a time of day
func hasClock(s string) bool {
	return clockInTextPattern.MatchString(s) || clockWordPattern.MatchString(s)
}

type meridiem int

const (
	noMeridiem meridiem = iota
	am
	pm
)

func (m meridiem) opposite() meridiem {
	switch m {
	case am:
		return pm
	case pm:
		return am
	}
	return noMeridiem
}

type clock struct {
	hour     int
	minute   int
	meridiem meridiem
}

// Parse "2", "3:30pm", "10.15 AM" into a clock, without applying the
// meridiem yet.
func parseClock(raw string) (clock, error) {
	// a Caser keeps state, one per call
	s := strings.TrimSpace(cases.Fold().String(raw))
	var c clock
	switch {
	case strings.HasSuffix(s, "am"):
		c.meridiem = am
		s = strings.TrimSpace(strings.TrimSuffix(s, "am"))
	case strings.HasSuffix(s, "pm"):
		c.meridiem = pm
		s = strings.TrimSpace(strings.TrimSuffix(s, "pm"))
	}

	hourPart, minutePart := s, ""
	if i := strings.IndexAny(s, ":."); i >= 0 {
		hourPart, minutePart = s[:i], s[i+1:]
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil || hourPart == "" || len(hourPart) > 2 {
		return clock{}, fmt.Errorf("invalid hour in %q", raw)
	}
	c.hour = hour
	if minutePart != "" {
		minute, err := strconv.Atoi(minutePart)
		if err != nil || len(minutePart) > 2 || minute > 59 {
			return clock{}, fmt.Errorf("invalid minute in %q", raw)
		}
		c.minute = minute
	}
	if c.hour > 23 {
		return clock{}, fmt.Errorf("invalid hour in %q", raw)
	}
	return c, nil
}

// Minutes since midnight of c read with meridiem m
func (c clock) minutesWith(m meridiem) (int, error) {
	hour := c.hour
	switch m {
	case am, pm:
		if hour > 12 {
			// already a 24h clock, the marker adds nothing
			if m == am {
				return 0, fmt.Errorf("%d:%02d is not a morning time", hour, c.minute)
			}
			break
		}
		if hour == 0 {
			return 0, fmt.Errorf("hour 0 with AM/PM marker")
		}
		if hour == 12 {
			hour = 0
		}
		if m == pm {
			hour += 12
		}
	}
	return hour*60 + c.minute, nil
}

// Resolve the two halves of a time range to "HH:MM" clocks.
//
// A half without AM/PM takes the other half's marker ("2–3:30pm" is
// 14:00–15:30). If that puts the start after the end, the opposite marker is
// used instead ("11–1pm" is 11:00–13:00, "11am–1" is 11:00–13:00). With no
// marker on either side the halves are read as 24h clocks, and an end that
// would land before the start is moved 12 hours later when it fits the day
// ("9–5" is 09:00–17:00).
func resolveClocks(startRaw, endRaw string) (string, string, error) {
	start, err := parseClock(startRaw)
	if err != nil {
		return "", "", err
	}
	end, err := parseClock(endRaw)
	if err != nil {
		return "", "", err
	}

	startMeridiem, endMeridiem := start.meridiem, end.meridiem
	switch {
	case startMeridiem == noMeridiem && endMeridiem != noMeridiem:
		startMeridiem = pickMeridiem(start, endMeridiem, func(s int) bool {
			e, err := end.minutesWith(endMeridiem)
			return err == nil && s <= e
		})
	case startMeridiem != noMeridiem && endMeridiem == noMeridiem:
		s, err := start.minutesWith(startMeridiem)
		if err != nil {
			return "", "", err
		}
		endMeridiem = pickMeridiem(end, startMeridiem, func(e int) bool {
			return s <= e
		})
	}

	s, err := start.minutesWith(startMeridiem)
	if err != nil {
		return "", "", err
	}
	e, err := end.minutesWith(endMeridiem)
	if err != nil {
		return "", "", err
	}
	if startMeridiem == noMeridiem && endMeridiem == noMeridiem &&
		e < s && end.hour < 12 && e+12*60 >= s {
		e += 12 * 60
	}
	return formatMinutes(s), formatMinutes(e), nil
}

// Use preferred for c unless ok rejects it and the opposite marker is accepted
func pickMeridiem(c clock, preferred meridiem, ok func(minutes int) bool) meridiem {
	if c.hour > 12 || c.hour == 0 {
		return noMeridiem
	}
	if m, err := c.minutesWith(preferred); err == nil && ok(m) {
		return preferred
	}
	if m, err := c.minutesWith(preferred.opposite()); err == nil && ok(m) {
		return preferred.opposite()
	}
	return preferred
}

// Resolve a single time without a partner half
func resolveClock(raw string) (string, error) {
	c, err := parseClock(raw)
	if err != nil {
		return "", err
	}
	m, err := c.minutesWith(c.meridiem)
	if err != nil {
		return "", err
	}
	return formatMinutes(m), nil
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

func unresolvable(msg string, args map[string]any) error {
	return model.NewParseError(model.ErrUnresolvableDateTime, msg, args)
}
