// Package testutil provides helpers for asserting on rendered frames.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes escape sequences so frames can be compared as text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// Lines strips s and splits it into rows with trailing spaces trimmed.
func Lines(s string) []string {
	lines := strings.Split(StripANSI(s), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}

// MeasureWidth returns the cell width of the widest row of s.
func MeasureWidth(s string) int {
	w := 0
	for line := range strings.SplitSeq(s, "\n") {
		w = max(w, ansi.StringWidth(line))
	}
	return w
}

// FindLine returns the first stripped row containing substr, or "".
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(StripANSI(output), "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// ContainsLine reports whether any row contains substr.
func ContainsLine(output, substr string) bool {
	return FindLine(output, substr) != ""
}
