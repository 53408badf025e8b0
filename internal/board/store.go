// Package board keeps the client's mirror of the remote task collection and
// the rules for reconciling it with service responses.
//
// The Store is only ever changed by a successful response: a failed call
// leaves the collection as it was and records the failure in the single
// error slot. Nothing is applied optimistically.
package board

import (
	"slices"

	"github.com/Iron-Ham/kanban/internal/task"
)

// Store is the in-memory mirror of the service's tasks, in the order the
// service returned them with newly created tasks appended.
// It is not safe for concurrent use; the UI event loop owns it.
type Store struct {
	tasks   []task.Task
	loading bool
	err     error
}

// NewStore returns an empty store waiting for its first load.
func NewStore() *Store {
	return &Store{loading: true}
}

// Tasks returns a copy of the collection.
func (s *Store) Tasks() []task.Task {
	return slices.Clone(s.tasks)
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Loading reports whether the first list has not resolved yet.
func (s *Store) Loading() bool {
	return s.loading
}

// Err returns the current error, or nil.
func (s *Store) Err() error {
	return s.err
}

// SetError replaces the current error. A nil err clears it.
func (s *Store) SetError(err error) {
	s.err = err
}

// ClearError dismisses the current error.
func (s *Store) ClearError() {
	s.err = nil
}

// Find returns the task with id.
func (s *Store) Find(id task.ID) (task.Task, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i], true
	}
	return task.Task{}, false
}

// Column returns the tasks whose status is status, in store order.
func (s *Store) Column(status task.Status) []task.Task {
	var out []task.Task
	for _, t := range s.tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// Columns returns every board column in display order.
func (s *Store) Columns() [][]task.Task {
	statuses := task.Statuses()
	cols := make([][]task.Task, len(statuses))
	for i, st := range statuses {
		cols[i] = s.Column(st)
	}
	return cols
}

func (s *Store) indexOf(id task.ID) int {
	return slices.IndexFunc(s.tasks, func(t task.Task) bool { return t.ID == id })
}

// ResolveList reconciles the result of a full fetch. Loading ends either
// way; on failure the previous collection is kept.
func (s *Store) ResolveList(tasks []task.Task, err error) {
	s.loading = false
	if err != nil {
		s.err = err
		return
	}
	s.tasks = slices.Clone(tasks)
	if s.tasks == nil {
		s.tasks = []task.Task{}
	}
}

// ResolveCreate appends the stored record on success.
func (s *Store) ResolveCreate(created task.Task, err error) {
	if err != nil {
		s.err = err
		return
	}
	s.tasks = append(s.tasks, created)
	s.err = nil
}

// ResolveUpdate replaces the record with the same id on success. A record
// no longer present (deleted meanwhile) is not re-added.
func (s *Store) ResolveUpdate(updated task.Task, err error) {
	if err != nil {
		s.err = err
		return
	}
	if i := s.indexOf(updated.ID); i >= 0 {
		s.tasks[i] = updated
	}
	s.err = nil
}

// ResolveDelete removes the record with id on success.
func (s *Store) ResolveDelete(id task.ID, err error) {
	if err != nil {
		s.err = err
		return
	}
	s.tasks = slices.DeleteFunc(s.tasks, func(t task.Task) bool { return t.ID == id })
	s.err = nil
}
