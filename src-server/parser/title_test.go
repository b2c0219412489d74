package parser_test

import (
	"strings"
	"sylcal/src-server/parser"
	"testing"
)

// Titles come from punctuation position only; these cases pin the heuristic.
func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
		rule parser.TitleRule
	}{
		{"colon wins over comma", "Exam 2: March 15, 2–3:30pm, Stevenson 432", "Exam 2", parser.ColonSplit},
		{"first colon only", "Lab: Part 1: setup", "Lab", parser.ColonSplit},
		{"comma without colon", "Midterm, March 3, Hall A", "Midterm", parser.CommaSplit},
		{"first token fallback", "Recital April 4 7pm", "Recital", parser.FirstToken},
		{"surrounding space trimmed", "   Final Exam  : May 1", "Final Exam", parser.ColonSplit},
		{"empty before colon", ": May 1", "", parser.ColonSplit},
		{"blank line", "   ", "", parser.FirstToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rule := parser.ExtractTitle(tt.line)
			if got != tt.want {
				t.Errorf("ExtractTitle() = %q, want %q", got, tt.want)
			}
			if rule != tt.rule {
				t.Errorf("ExtractTitle() rule = %v, want %v", rule, tt.rule)
			}
		})
	}
}

// A title without colon or comma goes through FirstToken on a second pass,
// so single-token titles come back unchanged and every title reaches a fixed
// point after one more pass.
func TestExtractTitleIdempotent(t *testing.T) {
	for _, line := range []string{
		"Exam 2: March 15, 2–3:30pm, Stevenson 432",
		"Lecture: April 3, 10:00 AM – 11:15 AM, Room 101",
		"Project Due: May 1, 11:59 PM",
		"Midterm, March 3, Hall A",
		"Recital April 4 7pm",
	} {
		title, _ := parser.ExtractTitle(line)
		again, _ := parser.ExtractTitle(title)
		if !strings.Contains(title, " ") && again != title {
			t.Errorf("ExtractTitle(%q) = %q, want it unchanged", title, again)
		}
		if fixed, _ := parser.ExtractTitle(again); fixed != again {
			t.Errorf("ExtractTitle(%q) = %q, want a fixed point", again, fixed)
		}
	}
}

func TestTitleRuleApply(t *testing.T) {
	if _, ok := parser.ColonSplit.Apply("no colon here"); ok {
		t.Error("ColonSplit should not apply")
	}
	if _, ok := parser.CommaSplit.Apply("no comma here"); ok {
		t.Error("CommaSplit should not apply")
	}
	if got, ok := parser.FirstToken.Apply("Recital April 4"); !ok || got != "Recital" {
		t.Error("unexpected FirstToken result", got, ok)
	}
	if parser.CommaSplit.String() != "CommaSplit" {
		t.Error("unexpected name", parser.CommaSplit.String())
	}
}
