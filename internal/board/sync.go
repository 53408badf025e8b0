package board

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Iron-Ham/kanban/internal/errors"
	"github.com/Iron-Ham/kanban/internal/logging"
	"github.com/Iron-Ham/kanban/internal/task"
)

// Service is the remote task collection. *api.Client implements it.
type Service interface {
	// List returns every task in service order.
	List(ctx context.Context) ([]task.Task, error)

	// Create stores a task without an id and returns it with one.
	Create(ctx context.Context, t task.Task) (task.Task, error)

	// Update replaces the task with t.ID and returns the stored record.
	Update(ctx context.Context, t task.Task) (task.Task, error)

	// Delete removes the task with id.
	Delete(ctx context.Context, id task.ID) error
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) (bool, error)

// Confirm calls f.
func (f ConfirmFunc) Confirm(prompt string) (bool, error) { return f(prompt) }

// PrepareCreate validates input and builds the record to submit. New tasks
// always start in To Do.
func PrepareCreate(title, description string) (task.Task, error) {
	if err := task.ValidateTitle(title); err != nil {
		return task.Task{}, err
	}
	return task.New(title, description), nil
}

// PrepareMove builds the full replacement that moves id to status. It
// returns false when id is not in the store, in which case nothing should
// be sent. Skipping a column is rejected.
func (s *Store) PrepareMove(id task.ID, status task.Status) (task.Task, bool, error) {
	current, ok := s.Find(id)
	if !ok {
		return task.Task{}, false, nil
	}
	if !current.Status.CanMoveTo(status) {
		return task.Task{}, true, errors.NewValidationError(
			fmt.Sprintf("cannot move from %q to %q", current.Status, status)).
			WithField("status").
			WithValue(status).
			WithCause(errors.ErrInvalidStatus)
	}
	return current.WithStatus(status), true, nil
}

// PrepareEdit builds the full replacement that changes the content of id
// and keeps its status. It returns false when id is not in the store.
func (s *Store) PrepareEdit(id task.ID, title, description string) (task.Task, bool, error) {
	current, ok := s.Find(id)
	if !ok {
		return task.Task{}, false, nil
	}
	if err := task.ValidateTitle(title); err != nil {
		return task.Task{}, true, err
	}
	return current.WithContent(title, description), true, nil
}

// MoveError attributes an update failure to a move.
func MoveError(err error) error {
	var reqErr *errors.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.WithOp(errors.OpMove)
	}
	return err
}

// Syncer runs board operations to completion against a Service and
// reconciles the Store. It blocks for the duration of each request.
type Syncer struct {
	svc    Service
	store  *Store
	logger *logging.Logger
}

// NewSyncer returns a Syncer over svc and store. A nil logger discards.
func NewSyncer(svc Service, store *Store, logger *logging.Logger) *Syncer {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Syncer{svc: svc, store: store, logger: logger.WithComponent("board")}
}

// Store returns the store the Syncer reconciles.
func (s *Syncer) Store() *Store {
	return s.store
}

// Load replaces the collection with the service's.
func (s *Syncer) Load(ctx context.Context) error {
	tasks, err := s.svc.List(ctx)
	s.store.ResolveList(tasks, err)
	if err != nil {
		return err
	}
	s.logger.Debug("loaded tasks", "count", len(tasks))
	return nil
}

// Create validates and submits a new task. An invalid title sets the error
// and sends nothing.
func (s *Syncer) Create(ctx context.Context, title, description string) (task.Task, error) {
	t, err := PrepareCreate(title, description)
	if err != nil {
		s.store.SetError(err)
		return task.Task{}, err
	}
	created, err := s.svc.Create(ctx, t)
	s.store.ResolveCreate(created, err)
	if err != nil {
		return task.Task{}, err
	}
	s.logger.Info("created task", "id", int64(created.ID))
	return created, nil
}

// UpdateStatus moves id to status. An id not in the store is a silent
// no-op and returns false.
func (s *Syncer) UpdateStatus(ctx context.Context, id task.ID, status task.Status) (task.Task, bool, error) {
	t, ok, err := s.store.PrepareMove(id, status)
	if !ok {
		return task.Task{}, false, nil
	}
	if err != nil {
		s.store.SetError(err)
		return task.Task{}, true, err
	}
	updated, err := s.svc.Update(ctx, t)
	if err != nil {
		err = MoveError(err)
	}
	s.store.ResolveUpdate(updated, err)
	if err != nil {
		return task.Task{}, true, err
	}
	s.logger.Info("moved task", "id", int64(id), "status", string(status))
	return updated, true, nil
}

// EditContent replaces the title and description of id. An id not in the
// store is a silent no-op and returns false.
func (s *Syncer) EditContent(ctx context.Context, id task.ID, title, description string) (task.Task, bool, error) {
	t, ok, err := s.store.PrepareEdit(id, title, description)
	if !ok {
		return task.Task{}, false, nil
	}
	if err != nil {
		s.store.SetError(err)
		return task.Task{}, true, err
	}
	updated, err := s.svc.Update(ctx, t)
	s.store.ResolveUpdate(updated, err)
	if err != nil {
		return task.Task{}, true, err
	}
	s.logger.Info("edited task", "id", int64(id))
	return updated, true, nil
}

// Delete removes id after confirm agrees. A declined confirmation sends
// nothing and returns ErrCanceled.
func (s *Syncer) Delete(ctx context.Context, id task.ID, confirm Confirmer, prompt string) error {
	ok, err := confirm.Confirm(prompt)
	if err != nil {
		return fmt.Errorf("confirm delete of task %s: %w", strconv.FormatInt(int64(id), 10), err)
	}
	if !ok {
		return errors.ErrCanceled
	}
	err = s.svc.Delete(ctx, id)
	s.store.ResolveDelete(id, err)
	if err != nil {
		return err
	}
	s.logger.Info("deleted task", "id", int64(id))
	return nil
}
