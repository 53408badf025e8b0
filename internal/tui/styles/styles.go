// Package styles holds the board's colors, themes and lipgloss styles.
//
// Views read the active styles through [Active]. [ApplyTheme] swaps them
// when the configured theme changes.
package styles

// Layout constants shared by the views.
const (
	// ColumnGap is the number of blank cells between columns
	ColumnGap = 1
	// ChromeHeight is the rows taken by the header and help bar
	ChromeHeight = 4
	// EmptyColumnRows is the minimum height of a column body
	EmptyColumnRows = 3
)

// Markers drawn on cards.
const (
	MarkerFocus   = "▸"
	MarkerBack    = "←"
	MarkerForward = "→"
)
