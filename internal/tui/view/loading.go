package view

import (
	"github.com/Iron-Ham/kanban/internal/locale"
	"github.com/charmbracelet/lipgloss"
)

// Loading renders the spinner and text shown until the first list ends,
// centered in width x height when both are known.
func (r *Renderer) Loading(spinnerView string, width, height int) string {
	line := r.styles.Spinner.Render(spinnerView) + " " + r.styles.Muted.Render(r.text.Text(locale.Loading))
	if width <= 0 || height <= 0 {
		return line
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, line)
}

// Header renders the app title and the number of tasks on the board.
func (r *Renderer) Header(total int) string {
	st := r.styles
	return lipgloss.JoinHorizontal(lipgloss.Top,
		st.Title.Render(r.text.Text(locale.AppTitle)),
		"  ",
		st.Subtitle.Render(r.text.Text(locale.HeaderCount, total)),
	)
}
