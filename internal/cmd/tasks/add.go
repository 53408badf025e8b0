package tasks

import (
	"github.com/spf13/cobra"

	"github.com/Iron-Ham/kanban/internal/cmd/cmdutil"
	"github.com/Iron-Ham/kanban/internal/locale"
)

func newAddCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:     "add <title...>",
		Aliases: []string{"new"},
		Short:   "Create a task in the To Do column",
		Long: `Create a task. New tasks always start in the first column.

Examples:
  kanban add Comprar pão
  kanban add "Revisar PR" -d "branch feature/login"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, joinArgs(args), description)
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "Task description")
	return cmd
}

func runAdd(cmd *cobra.Command, title, description string) error {
	s, err := open(cmd.Context(), cmd, false)
	if err != nil {
		return err
	}
	defer s.close()

	created, err := s.syncer.Create(cmd.Context(), title, description)
	if err != nil {
		return err
	}
	cmdutil.Println(cmd, s.env.Text.Text(locale.CLITaskCreated, int64(created.ID)))
	return nil
}
