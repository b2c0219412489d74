package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNoDateFound          = errors.New("no date found")
	ErrMalformedInput       = errors.New("malformed input")
	ErrUnresolvableDateTime = errors.New("unresolvable date-time")
	ErrInvariantViolation   = errors.New("invariant violation")
)

// ParseError is returned by every parse operation. Kind is one of the Err*
// sentinels above so callers can branch with errors.Is.
type ParseError struct {
	Kind error
	msg  string
	args map[string]any
}

// Create a new parse error of the given kind
func NewParseError(kind error, msg string, args map[string]any) *ParseError {
	if args == nil {
		args = make(map[string]any)
	}
	return &ParseError{
		Kind: kind,
		msg:  msg,
		args: args,
	}
}

func (e *ParseError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.Error())
	sb.WriteString(": ")
	sb.WriteString(e.msg)
	if len(e.args) == 0 {
		return sb.String()
	}
	keys := make([]string, 0, len(e.args))
	for key := range e.args {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	sb.WriteString(" |")
	for _, key := range keys {
		sb.WriteString(fmt.Sprintf(" %s: %q", key, fmt.Sprint(e.args[key])))
	}
	return sb.String()
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

// Get a context value attached to the error
func (e *ParseError) Arg(key string) (any, bool) {
	v, ok := e.args[key]
	return v, ok
}
