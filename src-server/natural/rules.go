package natural

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/olebedev/when/rules"
	"github.com/olebedev/when/rules/en"
)

/*
	"December 18, 2024"
	"Dec 18 2027"
	"Sept. 1st, 2025"
*/

// MonthDayYear reads a month name, a day and a four-digit year
func MonthDayYear(s rules.Strategy) rules.Rule {
	return &rules.F{
		RegExp: regexp.MustCompile("(?i)(?:\\W|^)" +
			"(" + en.MONTH_OFFSET_PATTERN + ")" +
			"\\s*(0?[1-9]|[12][0-9]|3[01])(?:st|nd|rd|th)?" +
			",?\\s*((?:1|2)[0-9]{3})" +
			"(?:\\W|$)"),
		Applier: func(m *rules.Match, c *rules.Context, o *rules.Options, ref time.Time) (bool, error) {
			if (c.Day != nil || c.Month != nil || c.Year != nil) && s != rules.Override {
				return false, nil
			}
			month, ok := en.MONTH_OFFSET[strings.ToLower(strings.TrimSpace(m.Captures[0]))]
			if !ok {
				return false, nil
			}
			day, _ := strconv.Atoi(m.Captures[1])
			year, _ := strconv.Atoi(m.Captures[2])
			return setDate(c, year, month, day), nil
		},
	}
}

/*
	"3/15"
	"03/15/2026"
	"12/10/26"
*/

// SlashMDY reads US numeric dates, month first. Without a year the date
// falls in the reference year.
func SlashMDY(s rules.Strategy) rules.Rule {
	return &rules.F{
		RegExp: regexp.MustCompile("(?:\\W|^)" +
			"(0?[1-9]|1[0-2])" +
			"/" +
			"(0?[1-9]|[12][0-9]|3[01])" +
			"(?:/([0-9]{4}|[0-9]{2}))?" +
			"(?:\\W|$)"),
		Applier: func(m *rules.Match, c *rules.Context, o *rules.Options, ref time.Time) (bool, error) {
			if (c.Day != nil || c.Month != nil || c.Year != nil) && s != rules.Override {
				return false, nil
			}
			month, _ := strconv.Atoi(m.Captures[0])
			day, _ := strconv.Atoi(m.Captures[1])
			year := ref.Year()
			if m.Captures[2] != "" {
				year, _ = strconv.Atoi(m.Captures[2])
				if len(m.Captures[2]) == 2 {
					year += 2000
				}
			}
			return setDate(c, year, month, day), nil
		},
	}
}

/*
	"2026-03-15"
	"2026/03/15"
*/

// YearMonthDay reads ISO calendar dates. Hyphens are turned into slashes
// by isoDateSlashes before rules run, both are accepted here.
func YearMonthDay(s rules.Strategy) rules.Rule {
	return &rules.F{
		RegExp: regexp.MustCompile("(?:\\W|^)" +
			"((?:1|2)[0-9]{3})" +
			"[/-]" +
			"(0?[1-9]|1[0-2])" +
			"[/-]" +
			"(0?[1-9]|[12][0-9]|3[01])" +
			"(?:\\W|$)"),
		Applier: func(m *rules.Match, c *rules.Context, o *rules.Options, ref time.Time) (bool, error) {
			if (c.Day != nil || c.Month != nil || c.Year != nil) && s != rules.Override {
				return false, nil
			}
			year, _ := strconv.Atoi(m.Captures[0])
			month, _ := strconv.Atoi(m.Captures[1])
			day, _ := strconv.Atoi(m.Captures[2])
			return setDate(c, year, month, day), nil
		},
	}
}

// All rules this package adds on top of en.All
var All = []rules.Rule{
	MonthDayYear(rules.Override),
	SlashMDY(rules.Override),
	YearMonthDay(rules.Override),
}

var isoDatePattern = regexp.MustCompile(`\b((?:1|2)[0-9]{3})-([0-9]{1,2})-([0-9]{1,2})\b`)

// "2026-03-15" would otherwise be read by en.HourMinute as the clock
// "03-15". The rewrite keeps the text length so match offsets still point
// into the caller's string.
func isoDateSlashes(text string) (string, error) {
	return isoDatePattern.ReplaceAllString(text, "$1/$2/$3"), nil
}

// Sets the calendar date on c, false when it does not exist
func setDate(c *rules.Context, year, month, day int) bool {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return false
	}
	c.Year = pointer.ToInt(year)
	c.Month = pointer.ToInt(month)
	c.Day = pointer.ToInt(day)
	return true
}
