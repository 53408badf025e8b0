package view

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/kanban/internal/locale"
	"github.com/Iron-Ham/kanban/internal/task"
	"github.com/Iron-Ham/kanban/internal/tui/styles"
	"github.com/Iron-Ham/kanban/internal/util"
	"github.com/charmbracelet/lipgloss"
)

// ColumnState holds what is needed to draw one status column.
type ColumnState struct {
	Status task.Status

	// Tasks are the column's tasks in store order
	Tasks []task.Task

	// Focused marks the column holding the cursor
	Focused bool

	// Cursor is the index of the focused card. Ignored unless Focused.
	Cursor int

	// EditingID is the task being edited, or zero
	EditingID task.ID

	// Edit carries the editor inputs for EditingID
	Edit *EditState

	// Width is the outer width of the column
	Width int
}

// Column renders a status column: its heading, then each card or the empty
// placeholder.
func (r *Renderer) Column(state ColumnState) string {
	st := r.styles
	width := ClampColumnWidth(state.Width)
	inner := width - columnFrame

	label := r.text.StatusLabel(state.Status)
	heading := st.ColumnTitle.Foreground(st.StatusColor(state.Status)).Render(label) +
		" " + st.ColumnCount.Render(fmt.Sprintf("(%d)", len(state.Tasks)))
	parts := []string{util.TruncateANSI(heading, inner)}

	if len(state.Tasks) == 0 {
		empty := st.ColumnEmpty.Render(r.text.Text(locale.ColumnEmpty))
		parts = append(parts, lipgloss.PlaceVertical(styles.EmptyColumnRows, lipgloss.Top, util.TruncateANSI(empty, inner)))
	}

	for i, t := range state.Tasks {
		cs := CardState{
			Task:    t,
			Focused: state.Focused && i == state.Cursor,
			Width:   inner,
		}
		if state.Edit != nil && t.ID == state.EditingID {
			cs.Edit = state.Edit
		}
		parts = append(parts, r.Card(cs))
	}

	box := st.Column
	if state.Focused {
		box = box.BorderForeground(st.PrimaryColor)
	}
	return box.Width(width - 2).Render(strings.Join(parts, "\n"))
}
