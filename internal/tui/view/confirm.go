package view

import (
	"strings"

	"github.com/Iron-Ham/kanban/internal/locale"
	"github.com/Iron-Ham/kanban/internal/task"
	"github.com/Iron-Ham/kanban/internal/util"
)

// Confirm renders the delete confirmation for t.
func (r *Renderer) Confirm(t task.Task, width int) string {
	st := r.styles
	inner := max(width-8, 10) // border + dialog padding

	answer := st.HelpKey.Render("y") + " " + st.Error.Render(r.text.Text(locale.ConfirmYes)) + "   " +
		st.HelpKey.Render("n") + " " + st.Muted.Render(r.text.Text(locale.ConfirmNo))

	lines := []string{
		st.DialogTitle.Render(r.text.Text(locale.ConfirmDelete)),
		"",
		st.CardTitle.Render(util.TruncateANSI(util.SingleLine(t.Title), inner)),
		"",
		answer,
	}
	return st.Dialog.Render(strings.Join(lines, "\n"))
}
