package styles

import (
	"fmt"

	"github.com/Iron-Ham/kanban/internal/task"
	"github.com/charmbracelet/lipgloss"
)

// ThemedStyles contains all the lipgloss styles built from a color palette.
// Styles are regenerated when the theme changes.
type ThemedStyles struct {
	// Colors from the palette
	PrimaryColor   lipgloss.Color
	SecondaryColor lipgloss.Color
	WarningColor   lipgloss.Color
	ErrorColor     lipgloss.Color
	MutedColor     lipgloss.Color
	SurfaceColor   lipgloss.Color
	TextColor      lipgloss.Color
	BorderColor    lipgloss.Color

	ColumnTodoColor       lipgloss.Color
	ColumnInProgressColor lipgloss.Color
	ColumnDoneColor       lipgloss.Color

	// Convenience styles for colors
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	Text      lipgloss.Style

	// Header
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Columns
	Column      lipgloss.Style
	ColumnTitle lipgloss.Style
	ColumnCount lipgloss.Style
	ColumnEmpty lipgloss.Style

	// Cards
	Card                lipgloss.Style
	CardFocused         lipgloss.Style
	CardEditing         lipgloss.Style
	CardTitle           lipgloss.Style
	CardDescription     lipgloss.Style
	CardControl         lipgloss.Style
	CardControlDisabled lipgloss.Style

	// Creation form
	Form        lipgloss.Style
	FormTitle   lipgloss.Style
	FormButton  lipgloss.Style
	FieldLabel  lipgloss.Style
	FieldActive lipgloss.Style

	// Error banner
	Banner     lipgloss.Style
	BannerHint lipgloss.Style

	// Delete confirmation
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style

	// Help bar
	HelpBar  lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Loading screen
	Spinner lipgloss.Style
}

// NewThemedStyles creates a ThemedStyles from the given color palette.
func NewThemedStyles(p *ColorPalette) *ThemedStyles {
	s := &ThemedStyles{
		PrimaryColor:   p.Primary,
		SecondaryColor: p.Secondary,
		WarningColor:   p.Warning,
		ErrorColor:     p.Error,
		MutedColor:     p.Muted,
		SurfaceColor:   p.Surface,
		TextColor:      p.Text,
		BorderColor:    p.Border,

		ColumnTodoColor:       p.ColumnTodo,
		ColumnInProgressColor: p.ColumnInProgress,
		ColumnDoneColor:       p.ColumnDone,
	}

	s.Primary = lipgloss.NewStyle().Foreground(p.Primary)
	s.Secondary = lipgloss.NewStyle().Foreground(p.Secondary)
	s.Warning = lipgloss.NewStyle().Foreground(p.Warning)
	s.Error = lipgloss.NewStyle().Foreground(p.Error)
	s.Muted = lipgloss.NewStyle().Foreground(p.Muted)
	s.Text = lipgloss.NewStyle().Foreground(p.Text)

	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		MarginBottom(1)

	s.Subtitle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)

	s.Column = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	s.ColumnTitle = lipgloss.NewStyle().
		Bold(true).
		MarginBottom(1)

	s.ColumnCount = lipgloss.NewStyle().
		Foreground(p.Muted)

	s.ColumnEmpty = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)

	s.Card = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	s.CardFocused = s.Card.
		Border(lipgloss.ThickBorder()).
		BorderForeground(p.Primary)

	s.CardEditing = s.Card.
		Border(lipgloss.DoubleBorder()).
		BorderForeground(p.Warning)

	s.CardTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text)

	s.CardDescription = lipgloss.NewStyle().
		Foreground(p.Muted)

	s.CardControl = lipgloss.NewStyle().
		Foreground(p.Secondary)

	s.CardControlDisabled = lipgloss.NewStyle().
		Foreground(p.Border).
		Strikethrough(true)

	s.Form = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	s.FormTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	s.FormButton = lipgloss.NewStyle().
		Foreground(p.Surface).
		Background(p.Secondary).
		Padding(0, 1)

	s.FieldLabel = lipgloss.NewStyle().
		Foreground(p.Muted)

	s.FieldActive = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)

	s.Banner = lipgloss.NewStyle().
		Foreground(p.Text).
		Background(p.Error).
		Bold(true).
		Padding(0, 1)

	s.BannerHint = lipgloss.NewStyle().
		Foreground(p.Error).
		Italic(true)

	s.Dialog = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Warning).
		Padding(1, 2)

	s.DialogTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Warning)

	s.HelpBar = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)

	s.HelpKey = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Bold(true)

	s.HelpDesc = lipgloss.NewStyle().
		Foreground(p.Muted)

	s.Spinner = lipgloss.NewStyle().
		Foreground(p.Primary)

	return s
}

// StatusColor returns the heading color of the column holding status.
func (s *ThemedStyles) StatusColor(status task.Status) lipgloss.Color {
	switch status {
	case task.StatusTodo:
		return s.ColumnTodoColor
	case task.StatusInProgress:
		return s.ColumnInProgressColor
	case task.StatusDone:
		return s.ColumnDoneColor
	default:
		return s.MutedColor
	}
}

// activeTheme holds the currently active themed styles.
var activeTheme = NewThemedStyles(DefaultPalette())

// SetActiveTheme rebuilds the active styles from the named palette.
//
// Note: not thread-safe. Call it only from the Bubble Tea event loop or
// before the program starts.
func SetActiveTheme(name ThemeName) {
	activeTheme = NewThemedStyles(GetPalette(name))
}

// Active returns the currently active themed styles.
func Active() *ThemedStyles {
	return activeTheme
}

// ApplyTheme rescans the themes directory and activates name. An unknown
// name activates the default theme and returns an error. Load errors of
// other theme files are ignored.
func ApplyTheme(name string) error {
	ClearCustomThemes()
	_, _ = DiscoverCustomThemes()

	if name == "" {
		name = string(ThemeDefault)
	}
	if !IsValidTheme(name) {
		SetActiveTheme(ThemeDefault)
		return fmt.Errorf("unknown theme %q, using %q", name, ThemeDefault)
	}
	SetActiveTheme(ThemeName(name))
	return nil
}
