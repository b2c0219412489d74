package parser

import "strings"

// TitleRule is one positional heuristic for finding an event title. Rules are
// tried in order and the first one that applies wins. They look only at
// punctuation position, not meaning: "Exam 2: March 15" gives "Exam 2"
// because of the colon, not because "Exam 2" reads like a title.
type TitleRule int

const (
	// everything before the first colon
	ColonSplit TitleRule = iota
	// everything before the first comma
	CommaSplit
	// the first whitespace-delimited token
	FirstToken
)

var titleRules = []TitleRule{ColonSplit, CommaSplit, FirstToken}

func (r TitleRule) String() string {
	switch r {
	case ColonSplit:
		return "ColonSplit"
	case CommaSplit:
		return "CommaSplit"
	case FirstToken:
		return "FirstToken"
	}
	return "TitleRule(unknown)"
}

// Apply the rule to line. ok is false when the rule does not apply.
func (r TitleRule) Apply(line string) (title string, ok bool) {
	switch r {
	case ColonSplit:
		if before, _, found := strings.Cut(line, ":"); found {
			return strings.TrimSpace(before), true
		}
	case CommaSplit:
		if before, _, found := strings.Cut(line, ","); found {
			return strings.TrimSpace(before), true
		}
	case FirstToken:
		if fields := strings.Fields(line); len(fields) > 0 {
			return fields[0], true
		}
	}
	return "", false
}

// Extract the title of line with the first applicable rule
func ExtractTitle(line string) (string, TitleRule) {
	for _, rule := range titleRules {
		if title, ok := rule.Apply(line); ok {
			return title, rule
		}
	}
	return "", FirstToken
}

// Text after the last comma of line, trimmed, or "" without a comma
func lastCommaTail(line string) string {
	parts := strings.Split(line, ",")
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[len(parts)-1])
}
