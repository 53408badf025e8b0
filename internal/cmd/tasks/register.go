// Package tasks provides the one-shot commands that read and change the task
// collection without opening the board.
package tasks

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/kanban/internal/board"
	"github.com/Iron-Ham/kanban/internal/cmd/cmdutil"
	"github.com/Iron-Ham/kanban/internal/errors"
	"github.com/Iron-Ham/kanban/internal/task"
)

// Register adds all task commands to the given parent command.
func Register(parent *cobra.Command) {
	parent.AddCommand(
		newListCmd(),
		newAddCmd(),
		newMoveCmd(),
		newEditCmd(),
		newRemoveCmd(),
	)
}

// session is a loaded board for one command run.
type session struct {
	env    *cmdutil.Env
	syncer *board.Syncer
}

// open builds the command environment. When load is set the collection is
// fetched first, which every operation on an existing task needs.
func open(ctx context.Context, cmd *cobra.Command, load bool) (*session, error) {
	env, err := cmdutil.Setup(cmd)
	if err != nil {
		return nil, err
	}
	s := &session{
		env:    env,
		syncer: board.NewSyncer(env.Client, board.NewStore(), env.Logger),
	}
	if load {
		if err := s.syncer.Load(ctx); err != nil {
			env.Close()
			return nil, err
		}
	}
	return s, nil
}

func (s *session) close() {
	s.env.Close()
}

// find returns the loaded task id, or a NotFoundError.
func (s *session) find(id task.ID) (task.Task, error) {
	t, ok := s.syncer.Store().Find(id)
	if !ok {
		return task.Task{}, errors.NewNotFoundError("task", strconv.FormatInt(int64(id), 10))
	}
	return t, nil
}

// parseID parses a task id argument.
func parseID(arg string) (task.ID, error) {
	n, err := strconv.ParseInt(strings.TrimPrefix(arg, "#"), 10, 64)
	if err != nil || n <= 0 {
		return 0, errors.NewValidationError(fmt.Sprintf("invalid task id %q", arg)).
			WithField("id").
			WithValue(arg).
			WithCause(errors.ErrInvalidInput)
	}
	return task.ID(n), nil
}

// statusAliases maps the short names accepted on the command line to the
// column they name.
var statusAliases = map[string]task.Status{
	"todo":        task.StatusTodo,
	"to-do":       task.StatusTodo,
	"doing":       task.StatusInProgress,
	"progress":    task.StatusInProgress,
	"in-progress": task.StatusInProgress,
	"done":        task.StatusDone,
}

// resolveStatus turns a status argument into a column. "next" and "prev"
// are relative to current; every other form names a column directly.
func resolveStatus(arg string, current task.Status) (task.Status, error) {
	key := strings.ToLower(strings.TrimSpace(arg))
	switch key {
	case "next", "forward":
		if s, ok := current.Next(); ok {
			return s, nil
		}
		return "", invalidStatus(arg, "task is already in the last column")
	case "prev", "back":
		if s, ok := current.Prev(); ok {
			return s, nil
		}
		return "", invalidStatus(arg, "task is already in the first column")
	}
	if s, ok := statusAliases[key]; ok {
		return s, nil
	}
	if s := task.Status(arg); s.Valid() {
		return s, nil
	}
	return "", invalidStatus(arg, "expected todo, doing, done, next or prev")
}

func invalidStatus(arg, reason string) error {
	return errors.NewValidationError(fmt.Sprintf("invalid status %q: %s", arg, reason)).
		WithField("status").
		WithValue(arg).
		WithCause(errors.ErrInvalidStatus)
}
