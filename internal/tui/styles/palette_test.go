package styles

import (
	"slices"
	"testing"
)

func TestValidThemes(t *testing.T) {
	ClearCustomThemes()
	defer ClearCustomThemes()

	themes := ValidThemes()
	for _, name := range []string{"default", "monokai", "dracula", "nord"} {
		if !slices.Contains(themes, name) {
			t.Errorf("ValidThemes() missing %q", name)
		}
	}

	RegisterCustomTheme("mine", &ThemeFile{Name: "Mine", Version: "1"})
	if !slices.Contains(ValidThemes(), "mine") {
		t.Error("ValidThemes() should include registered custom themes")
	}
}

func TestIsValidTheme(t *testing.T) {
	ClearCustomThemes()
	defer ClearCustomThemes()

	tests := []struct {
		name string
		want bool
	}{
		{"default", true},
		{"monokai", true},
		{"dracula", true},
		{"nord", true},
		{"", false},
		{"gruvbox", false},
		{"Default", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidTheme(tt.name); got != tt.want {
				t.Errorf("IsValidTheme(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestGetPalette(t *testing.T) {
	ClearCustomThemes()
	defer ClearCustomThemes()

	tests := []struct {
		name        ThemeName
		wantPrimary string
	}{
		{ThemeDefault, "#A78BFA"},
		{ThemeMonokai, "#F92672"},
		{ThemeDracula, "#BD93F9"},
		{ThemeNord, "#88C0D0"},
		{"unknown", "#A78BFA"},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			if got := GetPalette(tt.name).Primary; string(got) != tt.wantPrimary {
				t.Errorf("GetPalette(%q).Primary = %q, want %q", tt.name, got, tt.wantPrimary)
			}
		})
	}
}

func TestPaletteColorConsistency(t *testing.T) {
	for _, name := range BuiltinThemes() {
		t.Run(name, func(t *testing.T) {
			p := GetPalette(ThemeName(name))
			colors := map[string]string{
				"Primary":          string(p.Primary),
				"Secondary":        string(p.Secondary),
				"Warning":          string(p.Warning),
				"Error":            string(p.Error),
				"Muted":            string(p.Muted),
				"Surface":          string(p.Surface),
				"Text":             string(p.Text),
				"Border":           string(p.Border),
				"ColumnTodo":       string(p.ColumnTodo),
				"ColumnInProgress": string(p.ColumnInProgress),
				"ColumnDone":       string(p.ColumnDone),
			}
			for field, color := range colors {
				if !isValidHexColor(color) {
					t.Errorf("%s = %q is not a hex color", field, color)
				}
			}
		})
	}
}
