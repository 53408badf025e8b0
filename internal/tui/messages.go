package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/kanban/internal/errors"
	"github.com/Iron-Ham/kanban/internal/locale"
	"github.com/Iron-Ham/kanban/internal/tui/keymap"
	"github.com/Iron-Ham/kanban/internal/tui/msg"
	"github.com/Iron-Ham/kanban/internal/tui/styles"
	"github.com/Iron-Ham/kanban/internal/tui/view"
)

// Update handles every message of the event loop.
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		return m.handleKey(message)

	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		m.resizeInputs()
		return m, nil

	case spinner.TickMsg:
		if !m.store.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(message)
		return m, cmd

	case msg.TasksLoadedMsg:
		m.store.ResolveList(message.Tasks, message.Err)
		if message.Err != nil {
			m.logFailure("list failed", message.Err)
		} else {
			m.logger.Debug("tasks loaded", "count", len(message.Tasks))
		}
		m.clampCursor()
		return m, nil

	case msg.TaskCreatedMsg:
		m.store.ResolveCreate(message.Task, message.Err)
		if message.Err != nil {
			m.logFailure("create failed", message.Err)
			return m, nil
		}
		m.logger.Debug("task created", "id", message.Task.ID)
		m.form.reset()
		m.clampCursor()
		return m, nil

	case msg.TaskUpdatedMsg:
		m.store.ResolveUpdate(message.Task, message.Err)
		if message.Err != nil {
			m.logFailure("update failed", message.Err, "id", message.ID)
		} else {
			m.logger.Debug("task updated", "id", message.ID, "status", message.Task.Status)
		}
		if message.ID == m.following {
			m.following = 0
			if message.Err == nil && m.focusTask(message.ID) {
				return m, nil
			}
		}
		m.clampCursor()
		return m, nil

	case msg.TaskDeletedMsg:
		m.store.ResolveDelete(message.ID, message.Err)
		if message.Err != nil {
			m.logFailure("delete failed", message.Err, "id", message.ID)
		} else {
			m.logger.Debug("task deleted", "id", message.ID)
		}
		m.clampCursor()
		return m, nil

	case msg.ConfigChangedMsg:
		m.applyConfig(message)
		if m.configChanges == nil {
			return m, nil
		}
		return m, msg.WaitForConfigChange(m.configChanges)
	}

	return m, nil
}

// logFailure records a failed service call. Rejected input is a warning,
// anything else an error.
func (m *Model) logFailure(message string, err error, args ...any) {
	args = append(args, "error", err)
	if errors.GetSeverity(err) < errors.SeverityError {
		m.logger.Warn(message, args...)
		return
	}
	m.logger.Error(message, args...)
}

// applyConfig re-reads the theme and language after a config file edit.
func (m *Model) applyConfig(change msg.ConfigChangedMsg) {
	if err := styles.ApplyTheme(change.Theme); err != nil {
		m.logger.Warn("theme not applied", "theme", change.Theme, "error", err)
	}
	if change.Language != "" {
		m.text = locale.New(change.Language)
		m.form.setPlaceholders(m.text)
		m.edit.setPlaceholders(m.text)
	}
	m.renderer = view.NewRenderer(styles.Active(), m.text)
	m.logger.Info("config reloaded", "theme", change.Theme, "language", m.text.Tag().String())
}

// enterMode switches input mode, releasing the text fields the old mode
// owned.
func (m *Model) enterMode(mode keymap.Mode) {
	switch m.mode {
	case keymap.ModeForm:
		m.form.blur()
	case keymap.ModeEdit:
		m.edit.blur()
	}
	m.mode = mode
}
