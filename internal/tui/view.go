package tui

import (
	"strings"

	"github.com/Iron-Ham/kanban/internal/tui/keymap"
	"github.com/Iron-Ham/kanban/internal/tui/view"
)

// View renders the whole screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	r := m.renderer

	if m.store.Loading() {
		return r.Loading(m.spinner.View(), m.width, m.height)
	}

	sections := []string{r.Header(m.store.Len())}

	if banner := r.Banner(m.store.Err(), m.width); banner != "" {
		sections = append(sections, banner)
	}

	if m.mode == keymap.ModeConfirm {
		if t, ok := m.store.Find(m.pendingDelete); ok {
			sections = append(sections, r.Confirm(t, m.formWidth()))
		}
	} else {
		sections = append(sections, r.Form(view.FormState{
			TitleView:          m.form.title.View(),
			DescriptionView:    m.form.description.View(),
			Active:             m.mode == keymap.ModeForm,
			DescriptionFocused: m.form.focus == fieldDescription,
			Width:              m.formWidth(),
		}))
	}

	state := view.BoardState{
		Columns:     m.store.Columns(),
		FocusColumn: m.cursor.col,
		FocusRow:    m.cursor.row,
		ShowCursor:  m.mode == keymap.ModeNormal,
		ColumnWidth: m.layoutColumnWidth(),
	}
	if m.mode == keymap.ModeEdit {
		state.EditingID = m.editID
		state.Edit = &view.EditState{
			TitleView:          m.edit.title.View(),
			DescriptionView:    m.edit.description.View(),
			DescriptionFocused: m.edit.focus == fieldDescription,
		}
	}
	sections = append(sections, r.Board(state))

	sections = append(sections, r.Help(view.HelpState{
		Keymap:   m.keymap,
		Mode:     m.mode,
		Expanded: m.showHelp,
		Width:    m.width,
	}))

	return strings.Join(sections, "\n")
}
