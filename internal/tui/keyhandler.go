package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/kanban/internal/board"
	"github.com/Iron-Ham/kanban/internal/task"
	"github.com/Iron-Ham/kanban/internal/tui/keymap"
	"github.com/Iron-Ham/kanban/internal/tui/msg"
)

// -----------------------------------------------------------------------------
// Main Keypress Handler
// -----------------------------------------------------------------------------

// handleKey routes a key to the handler of the current mode.
func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Nothing but quitting until the first list finishes.
	if m.store.Loading() {
		if cmd, ok := m.keymap.GetBinding(key, keymap.ModeNormal); ok && cmd == keymap.CmdQuit {
			return m.quit()
		}
		return m, nil
	}

	switch m.mode {
	case keymap.ModeForm:
		return m.handleFormKey(key)
	case keymap.ModeEdit:
		return m.handleEditKey(key)
	case keymap.ModeConfirm:
		return m.handleConfirmKey(key)
	default:
		return m.handleNormalKey(key)
	}
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// -----------------------------------------------------------------------------
// Normal Mode
// -----------------------------------------------------------------------------

func (m Model) handleNormalKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok := m.keymap.GetBinding(key, keymap.ModeNormal)
	if !ok {
		return m, nil
	}

	switch cmd {
	case keymap.CmdQuit:
		return m.quit()

	case keymap.CmdPrevColumn:
		m.cursor.col--
		m.clampCursor()
	case keymap.CmdNextColumn:
		m.cursor.col++
		m.clampCursor()
	case keymap.CmdPrevCard:
		m.cursor.row--
		m.clampCursor()
	case keymap.CmdNextCard:
		m.cursor.row++
		m.clampCursor()
	case keymap.CmdFirstCard:
		m.cursor.row = 0
	case keymap.CmdLastCard:
		m.cursor.row = len(m.store.Columns()[m.cursor.col]) - 1
		m.clampCursor()

	case keymap.CmdMoveForward:
		return m.moveFocused(task.Status.Next)
	case keymap.CmdMoveBack:
		return m.moveFocused(task.Status.Prev)

	case keymap.CmdEditCard:
		return m.startEdit()

	case keymap.CmdDeleteCard:
		if t, ok := m.focusedTask(); ok {
			m.pendingDelete = t.ID
			m.enterMode(keymap.ModeConfirm)
		}

	case keymap.CmdNewTask:
		m.enterMode(keymap.ModeForm)
		return m, m.form.focusField(fieldTitle)

	case keymap.CmdReload:
		m.logger.Debug("reload requested")
		return m, msg.LoadTasks(m.ctx, m.svc)

	case keymap.CmdDismissError:
		m.store.ClearError()

	case keymap.CmdToggleHelp:
		m.showHelp = !m.showHelp
	}

	return m, nil
}

// moveFocused moves the focused card one column using step (Status.Next or
// Status.Prev). A card already at the edge stays put without a request.
func (m Model) moveFocused(step func(task.Status) (task.Status, bool)) (tea.Model, tea.Cmd) {
	t, ok := m.focusedTask()
	if !ok {
		return m, nil
	}
	target, ok := step(t.Status)
	if !ok {
		return m, nil
	}

	next, found, err := m.store.PrepareMove(t.ID, target)
	if err != nil {
		m.store.SetError(err)
		return m, nil
	}
	if !found {
		return m, nil
	}
	m.following = t.ID
	return m, msg.MoveTask(m.ctx, m.svc, next)
}

func (m Model) startEdit() (tea.Model, tea.Cmd) {
	t, ok := m.focusedTask()
	if !ok {
		return m, nil
	}
	m.editID = t.ID
	m.edit.setValues(t.Title, t.Description)
	m.enterMode(keymap.ModeEdit)
	return m, m.edit.focusField(fieldTitle)
}

// -----------------------------------------------------------------------------
// Creation Form
// -----------------------------------------------------------------------------

func (m Model) handleFormKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok := m.keymap.GetBinding(key, keymap.ModeForm)
	if !ok {
		return m, m.form.update(key)
	}

	switch cmd {
	case keymap.CmdQuit:
		return m.quit()
	case keymap.CmdCancel:
		m.enterMode(keymap.ModeNormal)
		return m, nil
	case keymap.CmdNextField, keymap.CmdPrevField:
		return m, m.form.toggle()
	case keymap.CmdEnter:
		if m.form.focus == fieldDescription {
			return m, m.form.update(key)
		}
		return m.submitForm()
	case keymap.CmdSubmit:
		return m.submitForm()
	}
	return m, nil
}

// submitForm validates the form and sends the create. The fields stay as
// they are until the service confirms.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	title, desc := m.form.values()
	t, err := board.PrepareCreate(title, desc)
	if err != nil {
		m.store.SetError(err)
		return m, nil
	}
	return m, msg.CreateTask(m.ctx, m.svc, t)
}

// -----------------------------------------------------------------------------
// Card Editor
// -----------------------------------------------------------------------------

func (m Model) handleEditKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok := m.keymap.GetBinding(key, keymap.ModeEdit)
	if !ok {
		return m, m.edit.update(key)
	}

	switch cmd {
	case keymap.CmdQuit:
		return m.quit()
	case keymap.CmdCancel:
		m.stopEdit()
		return m, nil
	case keymap.CmdNextField, keymap.CmdPrevField:
		return m, m.edit.toggle()
	case keymap.CmdEnter:
		if m.edit.focus == fieldDescription {
			return m, m.edit.update(key)
		}
		return m.saveEdit()
	case keymap.CmdSubmit:
		return m.saveEdit()
	}
	return m, nil
}

// saveEdit validates the editor and sends the update. An empty title keeps
// the editor open; otherwise the card returns to display state without
// waiting for the response.
func (m Model) saveEdit() (tea.Model, tea.Cmd) {
	title, desc := m.edit.values()
	next, found, err := m.store.PrepareEdit(m.editID, title, desc)
	if err != nil {
		m.store.SetError(err)
		return m, nil
	}
	m.stopEdit()
	if !found {
		return m, nil
	}
	return m, msg.EditTask(m.ctx, m.svc, next)
}

func (m *Model) stopEdit() {
	m.enterMode(keymap.ModeNormal)
	m.editID = 0
	m.edit.reset()
}

// -----------------------------------------------------------------------------
// Delete Confirmation
// -----------------------------------------------------------------------------

func (m Model) handleConfirmKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok := m.keymap.GetBinding(key, keymap.ModeConfirm)
	if !ok {
		return m, nil
	}

	id := m.pendingDelete
	switch cmd {
	case keymap.CmdQuit:
		return m.quit()
	case keymap.CmdConfirmYes:
		m.pendingDelete = 0
		m.enterMode(keymap.ModeNormal)
		if _, ok := m.store.Find(id); !ok {
			return m, nil
		}
		return m, msg.DeleteTask(m.ctx, m.svc, id)
	case keymap.CmdConfirmNo:
		m.pendingDelete = 0
		m.enterMode(keymap.ModeNormal)
	}
	return m, nil
}
