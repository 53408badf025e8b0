// Package tui implements the interactive board on top of Bubble Tea.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// App wraps the Bubbletea program
type App struct {
	ctx     context.Context
	program *tea.Program
	model   Model
}

// New creates a new TUI application
func New(ctx context.Context, opts Options) *App {
	if ctx == nil {
		ctx = context.Background()
	}
	return &App{
		ctx:   ctx,
		model: NewModel(ctx, opts),
	}
}

// Run starts the TUI application and blocks until the user quits or ctx
// is canceled. Cancellation is a normal exit.
func (a *App) Run() error {
	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
		tea.WithContext(a.ctx),
	)

	_, err := a.program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && a.ctx.Err() != nil {
		return nil
	}
	return err
}

// Run is shorthand for New(ctx, opts).Run().
func Run(ctx context.Context, opts Options) error {
	return New(ctx, opts).Run()
}
