package utils

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NFC-normalizes, strips surrounding spaces and collapses inner runs of
// whitespace to a single space
func CleanupString(s string) string {
	s = norm.NFC.String(s)
	return strings.Join(strings.Fields(s), " ")
}
