package util

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"short string unchanged", "hello", 10, "hello"},
		{"exact length unchanged", "hello", 5, "hello"},
		{"long string truncated", "hello world", 8, "hello w…"},
		{"accented runes count once", "Concluídas", 6, "Concl…"},
		{"tiny maxLen returns ellipsis", "hello", 1, "…"},
		{"empty string", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateString(tt.input, tt.maxLen); got != tt.expected {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.expected)
			}
		})
	}
}

func TestTruncateANSI(t *testing.T) {
	red := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	tests := []struct {
		name     string
		input    string
		maxWidth int
		check    func(t *testing.T, result string)
	}{
		{
			name:     "short plain string unchanged",
			input:    "hello",
			maxWidth: 10,
			check: func(t *testing.T, result string) {
				if result != "hello" {
					t.Errorf("expected 'hello', got %q", result)
				}
			},
		},
		{
			name:     "plain string truncated",
			input:    "hello world",
			maxWidth: 8,
			check: func(t *testing.T, result string) {
				if result != "hello w…" {
					t.Errorf("expected 'hello w…', got %q", result)
				}
			},
		},
		{
			name:     "styled string fits visual width",
			input:    red.Render("hello world"),
			maxWidth: 6,
			check: func(t *testing.T, result string) {
				if w := lipgloss.Width(result); w > 6 {
					t.Errorf("result width %d exceeds 6", w)
				}
				if !strings.Contains(result, "…") {
					t.Errorf("expected ellipsis in %q", result)
				}
			},
		},
		{
			name:     "styled string that fits is untouched",
			input:    red.Render("hi"),
			maxWidth: 6,
			check: func(t *testing.T, result string) {
				if result != red.Render("hi") {
					t.Errorf("styled string changed: %q", result)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, TruncateANSI(tt.input, tt.maxWidth))
		})
	}
}

func TestSingleLine(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"one", "one"},
		{"  padded  ", "padded"},
		{"line one\nline two", "line one line two"},
		{"tabs\t\tand   spaces", "tabs and spaces"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := SingleLine(tt.input); got != tt.want {
				t.Errorf("SingleLine(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWrapLines(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		if got := WrapLines("", 10, 2); got != nil {
			t.Errorf("WrapLines(\"\") = %q, want nil", got)
		}
	})

	t.Run("fits on one line", func(t *testing.T) {
		got := WrapLines("short", 10, 2)
		if len(got) != 1 || got[0] != "short" {
			t.Errorf("WrapLines() = %q", got)
		}
	})

	t.Run("every line within width", func(t *testing.T) {
		got := WrapLines("the quick brown fox jumps over the lazy dog", 10, 0)
		if len(got) < 4 {
			t.Fatalf("WrapLines() = %q, want at least 4 lines", got)
		}
		for _, line := range got {
			if w := lipgloss.Width(line); w > 10 {
				t.Errorf("line %q has width %d", line, w)
			}
		}
	})

	t.Run("clamped with ellipsis", func(t *testing.T) {
		got := WrapLines("the quick brown fox jumps over the lazy dog", 10, 2)
		if len(got) != 2 {
			t.Fatalf("WrapLines() = %q, want 2 lines", got)
		}
		if !strings.HasSuffix(got[1], "…") {
			t.Errorf("last line %q should end with ellipsis", got[1])
		}
		if w := lipgloss.Width(got[1]); w > 10 {
			t.Errorf("last line width %d exceeds 10", w)
		}
	})
}
