// Package util provides text fitting helpers shared by the views and the CLI.
package util

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Ellipsis marks text that was cut to fit.
const Ellipsis = "…"

// TruncateString truncates a string to maxLen runes, adding Ellipsis if truncated.
// It does not account for ANSI escape codes or wide characters. For styled
// terminal output use TruncateANSI.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 1 {
		return Ellipsis
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-1]) + Ellipsis
}

// TruncateANSI truncates a string to maxWidth visual columns, adding Ellipsis
// if truncated. Escape sequences and wide characters are measured correctly.
func TruncateANSI(s string, maxWidth int) string {
	if maxWidth <= 1 {
		return Ellipsis
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	// ansi.Truncate counts the tail in the final width
	return ansi.Truncate(s, maxWidth, Ellipsis)
}

// SingleLine collapses runs of whitespace, newlines included, into one space.
func SingleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// WrapLines wraps s to width columns and keeps at most maxLines lines. When
// lines are dropped the last kept line ends with Ellipsis. maxLines <= 0
// keeps everything.
func WrapLines(s string, width, maxLines int) []string {
	if s == "" {
		return nil
	}
	if width < 1 {
		width = 1
	}
	lines := strings.Split(ansi.Wrap(s, width, ""), "\n")
	if maxLines <= 0 || len(lines) <= maxLines {
		return lines
	}
	lines = lines[:maxLines]
	last := strings.TrimRight(lines[maxLines-1], " ")
	if lipgloss.Width(last)+lipgloss.Width(Ellipsis) > width {
		last = ansi.Truncate(last, width-lipgloss.Width(Ellipsis), "")
	}
	lines[maxLines-1] = last + Ellipsis
	return lines
}
