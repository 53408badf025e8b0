package msg

import (
	"github.com/Iron-Ham/kanban/internal/task"
)

// TasksLoadedMsg carries the result of a full fetch.
type TasksLoadedMsg struct {
	Tasks []task.Task
	Err   error
}

// TaskCreatedMsg carries the result of a create.
type TaskCreatedMsg struct {
	Task task.Task
	Err  error
}

// TaskUpdatedMsg carries the result of a move or an edit.
type TaskUpdatedMsg struct {
	ID   task.ID
	Task task.Task
	Err  error
}

// TaskDeletedMsg carries the result of a delete.
type TaskDeletedMsg struct {
	ID  task.ID
	Err error
}

// ConfigChangedMsg signals that the config file was rewritten and the
// look of the board should be re-read.
type ConfigChangedMsg struct {
	Theme    string
	Language string
}
