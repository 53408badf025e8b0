package tui

import (
	"github.com/Iron-Ham/kanban/internal/task"
	"github.com/Iron-Ham/kanban/internal/tui/styles"
	"github.com/Iron-Ham/kanban/internal/tui/view"
)

// Card and form frames: border plus padding on each side.
const (
	columnFrame = 4
	cardFrame   = 4
)

// fitColumnWidth shrinks the preferred column width until the board fits
// termWidth, stopping at view.MinColumnWidth. An unknown terminal width
// keeps the preference.
func fitColumnWidth(preferred, termWidth int) int {
	w := view.ClampColumnWidth(preferred)
	if termWidth <= 0 || view.BoardWidth(w) <= termWidth {
		return w
	}
	n := len(task.Statuses())
	fit := (termWidth - (n-1)*styles.ColumnGap) / n
	return view.ClampColumnWidth(max(fit, view.MinColumnWidth))
}

// layoutColumnWidth is the column width used for the current window.
func (m Model) layoutColumnWidth() int {
	return fitColumnWidth(m.columnWidth, m.width)
}

// formWidth is the outer width of the creation form: the board width, or
// the terminal width when that is narrower.
func (m Model) formWidth() int {
	w := view.BoardWidth(m.layoutColumnWidth())
	if m.width > 0 && m.width < w {
		w = m.width
	}
	return w
}

// resizeInputs sizes the text fields to their containers.
func (m *Model) resizeInputs() {
	m.form.setWidth(m.formWidth() - columnFrame)
	m.edit.setWidth(m.layoutColumnWidth() - columnFrame - cardFrame)
}
