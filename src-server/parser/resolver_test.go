package parser_test

import (
	"errors"
	"strings"
	"sylcal/src-server/natural"
	"sylcal/src-server/parser"
	"time"
)

var (
	zone = time.FixedZone("CST", -6*60*60)
	now  = time.Date(2026, 1, 10, 9, 0, 0, 0, zone)
)

// fakeResolver understands the fixed layouts the parser builds
// ("2026-03-15 14:00", "Sep 11 09:00") and otherwise looks up known
// phrases, returning the one that appears first in the text.
func fakeResolver(phrases map[string]time.Time) natural.Resolver {
	return natural.ResolverFunc(func(text string, base time.Time) (natural.Match, bool, error) {
		for _, layout := range []string{"2006-01-02 15:04", "Jan 2 15:04", "January 2 15:04"} {
			t, err := time.ParseInLocation(layout, text, base.Location())
			if err != nil {
				continue
			}
			if t.Year() == 0 {
				t = t.AddDate(base.Year(), 0, 0)
			}
			return natural.Match{Time: t, Text: text}, true, nil
		}
		best := natural.Match{Index: -1}
		for phrase, t := range phrases {
			i := strings.Index(text, phrase)
			if i < 0 || (best.Index >= 0 && i >= best.Index) {
				continue
			}
			best = natural.Match{Time: t, Text: phrase, Index: i}
		}
		return best, best.Index >= 0, nil
	})
}

func failingResolver() natural.Resolver {
	return natural.ResolverFunc(func(string, time.Time) (natural.Match, bool, error) {
		return natural.Match{}, false, errors.New("resolver down")
	})
}

func newParser(resolver natural.Resolver, opts ...parser.Option) *parser.Parser {
	opts = append([]parser.Option{
		parser.WithLocation(zone),
		parser.WithNow(func() time.Time { return now }),
	}, opts...)
	return parser.New(resolver, opts...)
}

// date at the given clock in zone
func at(month time.Month, day, hour, minute int) time.Time {
	return time.Date(2026, month, day, hour, minute, 0, 0, zone)
}
