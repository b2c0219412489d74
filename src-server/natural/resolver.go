// Package natural resolves natural-language date/time expressions such as
// "March 15", "next friday at 2pm" or "03/15/2026 14:00" into absolute times.
package natural

import "time"

// A resolved date/time expression
type Match struct {
	// absolute time, in the location of the base time given to Resolve
	Time time.Time
	// the part of the input that produced Time
	Text string
	// byte offset of Text in the input
	Index int
}

// Resolver finds the first date/time expression in text and resolves it
// relative to base. ok is false when the text holds no such expression.
type Resolver interface {
	Resolve(text string, base time.Time) (match Match, ok bool, err error)
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(text string, base time.Time) (Match, bool, error)

func (f ResolverFunc) Resolve(text string, base time.Time) (Match, bool, error) {
	return f(text, base)
}
