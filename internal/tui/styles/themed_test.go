package styles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Iron-Ham/kanban/internal/task"
)

func TestNewThemedStyles(t *testing.T) {
	p := DefaultPalette()
	s := NewThemedStyles(p)

	if s.PrimaryColor != p.Primary {
		t.Errorf("PrimaryColor = %q, want %q", s.PrimaryColor, p.Primary)
	}
	if s.ColumnDoneColor != p.ColumnDone {
		t.Errorf("ColumnDoneColor = %q, want %q", s.ColumnDoneColor, p.ColumnDone)
	}
}

func TestThemedStyles_StatusColor(t *testing.T) {
	s := NewThemedStyles(DefaultPalette())

	tests := []struct {
		status task.Status
		want   string
	}{
		{task.StatusTodo, "#60A5FA"},
		{task.StatusInProgress, "#FBBF24"},
		{task.StatusDone, "#10B981"},
		{task.Status("Arquivada"), "#9CA3AF"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := s.StatusColor(tt.status); string(got) != tt.want {
				t.Errorf("StatusColor(%q) = %q, want %q", tt.status, got, tt.want)
			}
		})
	}
}

func TestThemedStyles_StylesCanRender(t *testing.T) {
	for _, name := range BuiltinThemes() {
		t.Run(name, func(t *testing.T) {
			s := NewThemedStyles(GetPalette(ThemeName(name)))
			for _, style := range []struct {
				field string
				out   string
			}{
				{"Card", s.Card.Render("x")},
				{"CardFocused", s.CardFocused.Render("x")},
				{"Column", s.Column.Render("x")},
				{"Banner", s.Banner.Render("x")},
				{"Dialog", s.Dialog.Render("x")},
				{"HelpKey", s.HelpKey.Render("x")},
			} {
				if style.out == "" {
					t.Errorf("%s rendered nothing", style.field)
				}
			}
		})
	}
}

func TestSetActiveTheme(t *testing.T) {
	defer SetActiveTheme(ThemeDefault)

	SetActiveTheme(ThemeDracula)
	if got := Active().PrimaryColor; got != DraculaPalette().Primary {
		t.Errorf("Active().PrimaryColor = %q, want dracula primary", got)
	}

	SetActiveTheme(ThemeDefault)
	if got := Active().PrimaryColor; got != DefaultPalette().Primary {
		t.Errorf("Active().PrimaryColor = %q, want default primary", got)
	}
}

func TestApplyTheme(t *testing.T) {
	dir := t.TempDir()
	prev := SetThemesDirFunc(func() string { return dir })
	defer SetThemesDirFunc(prev)
	defer ClearCustomThemes()
	defer SetActiveTheme(ThemeDefault)

	yaml := `name: Ocean
version: "1"
colors:
  primary: "#0077BE"
  secondary: "#00A86B"
  warning: "#FFB347"
  error: "#FF6961"
  muted: "#778899"
  surface: "#001F3F"
  text: "#F0F8FF"
  border: "#4682B4"
`
	if err := os.WriteFile(filepath.Join(dir, "ocean.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("builtin", func(t *testing.T) {
		if err := ApplyTheme("nord"); err != nil {
			t.Fatalf("ApplyTheme(nord) error = %v", err)
		}
		if got := Active().PrimaryColor; got != NordPalette().Primary {
			t.Errorf("PrimaryColor = %q, want nord primary", got)
		}
	})

	t.Run("custom", func(t *testing.T) {
		if err := ApplyTheme("ocean"); err != nil {
			t.Fatalf("ApplyTheme(ocean) error = %v", err)
		}
		if got := Active().PrimaryColor; got != "#0077BE" {
			t.Errorf("PrimaryColor = %q, want #0077BE", got)
		}
		if got := Active().ColumnTodoColor; got != "#0077BE" {
			t.Errorf("ColumnTodoColor = %q, want primary fallback", got)
		}
	})

	t.Run("empty name is default", func(t *testing.T) {
		if err := ApplyTheme(""); err != nil {
			t.Fatalf("ApplyTheme(\"\") error = %v", err)
		}
		if got := Active().PrimaryColor; got != DefaultPalette().Primary {
			t.Errorf("PrimaryColor = %q, want default primary", got)
		}
	})

	t.Run("unknown falls back to default", func(t *testing.T) {
		SetActiveTheme(ThemeDracula)
		if err := ApplyTheme("missing"); err == nil {
			t.Error("ApplyTheme(missing) should return an error")
		}
		if got := Active().PrimaryColor; got != DefaultPalette().Primary {
			t.Errorf("PrimaryColor = %q, want default primary", got)
		}
	})
}
