package view

import (
	"strings"

	"github.com/Iron-Ham/kanban/internal/task"
	"github.com/Iron-Ham/kanban/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// BoardState holds what is needed to draw the three columns.
type BoardState struct {
	// Columns are the tasks of each status, in task.Statuses() order
	Columns [][]task.Task

	// FocusColumn and FocusRow locate the cursor
	FocusColumn int
	FocusRow    int

	// ShowCursor draws the focus highlight. Off while a modal owns input.
	ShowCursor bool

	// EditingID and Edit describe the card being edited, if any
	EditingID task.ID
	Edit      *EditState

	// ColumnWidth is the outer width of each column
	ColumnWidth int
}

// Board renders the status columns side by side.
func (r *Renderer) Board(state BoardState) string {
	statuses := task.Statuses()
	gap := strings.Repeat(" ", styles.ColumnGap)

	rendered := make([]string, 0, len(statuses)*2)
	for i, status := range statuses {
		var tasks []task.Task
		if i < len(state.Columns) {
			tasks = state.Columns[i]
		}
		if i > 0 {
			rendered = append(rendered, gap)
		}
		rendered = append(rendered, r.Column(ColumnState{
			Status:    status,
			Tasks:     tasks,
			Focused:   state.ShowCursor && i == state.FocusColumn,
			Cursor:    state.FocusRow,
			EditingID: state.EditingID,
			Edit:      state.Edit,
			Width:     state.ColumnWidth,
		}))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// BoardWidth returns the total width of a board drawn with columnWidth.
func BoardWidth(columnWidth int) int {
	n := len(task.Statuses())
	return n*ClampColumnWidth(columnWidth) + (n-1)*styles.ColumnGap
}
