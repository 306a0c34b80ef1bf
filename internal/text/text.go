// Package text provides pure text/string utility functions.
// Width-sensitive helpers are ANSI-aware so styled strings line up.
// This is a leaf package with zero internal imports.
package text

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// ansiPattern matches ANSI escape sequences for stripping.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// Truncate shortens a string to width visible characters, adding "..." if truncated.
// When truncation occurs, ANSI codes are stripped from the result.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}

	if CountVisibleWidth(s) <= width {
		return s
	}

	runes := []rune(StripANSI(s))
	if width <= 3 {
		return string(runes[:min(width, len(runes))])
	}

	return string(runes[:width-3]) + "..."
}

// PadRight pads a string on the right to the specified visible width.
func PadRight(s string, width int) string {
	visible := CountVisibleWidth(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

// CountVisibleWidth returns the visible width of a string, excluding ANSI codes.
func CountVisibleWidth(s string) int {
	return utf8.RuneCountInString(StripANSI(s))
}

// StripANSI removes all ANSI escape sequences from a string.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// Indent prefixes each non-empty line with the given number of spaces.
func Indent(s string, spaces int) string {
	if s == "" || spaces <= 0 {
		return s
	}

	prefix := strings.Repeat(" ", spaces)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

// LastLines returns at most n trailing non-blank lines of s, joined by newlines.
func LastLines(s string, n int) string {
	if n <= 0 {
		return ""
	}

	var lines []string
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
