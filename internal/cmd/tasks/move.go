package tasks

import (
	"github.com/spf13/cobra"

	"github.com/Iron-Ham/kanban/internal/cmd/cmdutil"
	"github.com/Iron-Ham/kanban/internal/locale"
)

func newMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "move <id> <status>",
		Aliases: []string{"mv"},
		Short:   "Move a task one column",
		Long: `Move a task to the neighboring column.

The status is next, prev, or the column itself: todo, doing, done, or the
literal column value ("A Fazer", "Em Progresso", "Concluídas"). Tasks
move one column at a time.

Examples:
  kanban move 3 next
  kanban move 3 done`,
		Args: cobra.ExactArgs(2),
		RunE: runMove,
	}
}

func runMove(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	s, err := open(cmd.Context(), cmd, true)
	if err != nil {
		return err
	}
	defer s.close()

	current, err := s.find(id)
	if err != nil {
		return err
	}
	target, err := resolveStatus(args[1], current.Status)
	if err != nil {
		return err
	}
	if _, _, err := s.syncer.UpdateStatus(cmd.Context(), id, target); err != nil {
		return err
	}
	cmdutil.Println(cmd, s.env.Text.Text(locale.CLITaskUpdated, int64(id)))
	return nil
}
