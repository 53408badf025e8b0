// Package task defines the task record exchanged with the remote task
// service and the rules that govern its status transitions.
package task

import (
	"strings"

	"github.com/Iron-Ham/kanban/internal/errors"
)

// ID is the server-assigned task identifier. The client never creates or
// changes one.
type ID int64

// Status is one of the three board columns. The values are the literals the
// service stores and are the same regardless of the display language.
type Status string

const (
	StatusTodo       Status = "A Fazer"
	StatusInProgress Status = "Em Progresso"
	StatusDone       Status = "Concluídas"
)

// Statuses returns the board columns in display order.
func Statuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone}
}

// Valid reports whether s is one of the known column values.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Index returns the column position of s, or -1 when s is unknown.
func (s Status) Index() int {
	for i, st := range Statuses() {
		if st == s {
			return i
		}
	}
	return -1
}

// Next returns the status one step forward and false when s is already Done
// or unknown.
func (s Status) Next() (Status, bool) {
	return s.step(1)
}

// Prev returns the status one step back and false when s is already To Do
// or unknown.
func (s Status) Prev() (Status, bool) {
	return s.step(-1)
}

func (s Status) step(delta int) (Status, bool) {
	i := s.Index()
	all := Statuses()
	if i < 0 || i+delta < 0 || i+delta >= len(all) {
		return s, false
	}
	return all[i+delta], true
}

// CanMoveTo reports whether target is exactly one step away from s.
func (s Status) CanMoveTo(target Status) bool {
	if next, ok := s.Next(); ok && next == target {
		return true
	}
	if prev, ok := s.Prev(); ok && prev == target {
		return true
	}
	return false
}

// Task is a single card on the board.
type Task struct {
	ID          ID     `json:"id,omitempty"`
	Title       string `json:"titulo"`
	Description string `json:"descricao,omitempty"`
	Status      Status `json:"status"`
}

// New returns a task ready to be created: no id and status To Do.
func New(title, description string) Task {
	return Task{
		Title:       title,
		Description: description,
		Status:      StatusTodo,
	}
}

// WithStatus returns a copy of t with the status replaced.
func (t Task) WithStatus(s Status) Task {
	t.Status = s
	return t
}

// WithContent returns a copy of t with title and description replaced.
func (t Task) WithContent(title, description string) Task {
	t.Title = title
	t.Description = description
	return t
}

// ValidateTitle returns a validation error when title is blank.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.NewValidationError("title is required").
			WithField("title").
			WithCause(errors.ErrTitleRequired)
	}
	return nil
}
