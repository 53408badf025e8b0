package msg

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/kanban/internal/board"
	"github.com/Iron-Ham/kanban/internal/task"
)

// LoadTasks returns a command that fetches every task.
func LoadTasks(ctx context.Context, svc board.Service) tea.Cmd {
	return func() tea.Msg {
		tasks, err := svc.List(ctx)
		return TasksLoadedMsg{Tasks: tasks, Err: err}
	}
}

// CreateTask returns a command that submits t.
func CreateTask(ctx context.Context, svc board.Service, t task.Task) tea.Cmd {
	return func() tea.Msg {
		created, err := svc.Create(ctx, t)
		return TaskCreatedMsg{Task: created, Err: err}
	}
}

// MoveTask returns a command that stores t, a status change of an existing
// task. Failures are reported as move failures.
func MoveTask(ctx context.Context, svc board.Service, t task.Task) tea.Cmd {
	return func() tea.Msg {
		updated, err := svc.Update(ctx, t)
		if err != nil {
			err = board.MoveError(err)
		}
		return TaskUpdatedMsg{ID: t.ID, Task: updated, Err: err}
	}
}

// EditTask returns a command that stores t, a content change of an existing
// task.
func EditTask(ctx context.Context, svc board.Service, t task.Task) tea.Cmd {
	return func() tea.Msg {
		updated, err := svc.Update(ctx, t)
		return TaskUpdatedMsg{ID: t.ID, Task: updated, Err: err}
	}
}

// DeleteTask returns a command that removes id.
func DeleteTask(ctx context.Context, svc board.Service, id task.ID) tea.Cmd {
	return func() tea.Msg {
		err := svc.Delete(ctx, id)
		return TaskDeletedMsg{ID: id, Err: err}
	}
}

// WaitForConfigChange returns a command that blocks until the next config
// change arrives on ch. The model re-issues it after each change. A closed
// channel ends the wait with a nil message.
func WaitForConfigChange(ch <-chan ConfigChangedMsg) tea.Cmd {
	return func() tea.Msg {
		change, ok := <-ch
		if !ok {
			return nil
		}
		return change
	}
}
