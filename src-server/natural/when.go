package natural

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules"
	"github.com/olebedev/when/rules/en"
)

// how far apart (in bytes) two rule matches may be and still form one
// expression, enough for "December 18, 2024 at 2:00 PM"
const mergeDistance = 8

// WhenResolver is a Resolver backed by github.com/olebedev/when with the
// English rule set and the date rules of this package (explicit years, ISO
// and US numeric dates). Numeric dates are read month first, so
// common.SlashDMY is left out. Parse calls are serialized, so one
// WhenResolver can be shared between goroutines.
type WhenResolver struct {
	mu     sync.Mutex
	parser *when.Parser
}

func NewWhenResolver() *WhenResolver {
	parser := when.New(&rules.Options{
		Distance:     mergeDistance,
		MatchByOrder: true,
	})
	parser.Use(isoDateSlashes)
	parser.Add(en.All...)
	// added last: an explicit year then overrides en.ExactMonthDate, and on
	// equal offsets the longer "December 18, 2024" sorts after "December 18"
	// and ends the expression
	parser.Add(All...)
	return &WhenResolver{parser: parser}
}

func (r *WhenResolver) Resolve(text string, base time.Time) (Match, bool, error) {
	if strings.TrimSpace(text) == "" {
		return Match{}, false, nil
	}

	r.mu.Lock()
	result, err := r.parser.Parse(text, base)
	r.mu.Unlock()

	if err != nil {
		return Match{}, false, fmt.Errorf("natural.WhenResolver: can't parse %q: %w", text, err)
	}
	if result == nil {
		return Match{}, false, nil
	}
	// middleware keeps lengths, so the span is valid in text
	end := result.Index + len(result.Text)
	if result.Index < 0 || end > len(text) {
		return Match{}, false, fmt.Errorf("natural.WhenResolver: match %q out of range in %q", result.Text, text)
	}
	return Match{
		Time:  result.Time.In(base.Location()),
		Text:  strings.TrimSpace(text[result.Index:end]),
		Index: result.Index,
	}, true, nil
}
