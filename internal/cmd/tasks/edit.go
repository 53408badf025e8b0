package tasks

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/kanban/internal/cmd/cmdutil"
	"github.com/Iron-Ham/kanban/internal/locale"
)

func newEditCmd() *cobra.Command {
	var title, description string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the title or description of a task",
		Long: `Change the title and/or description of a task. Fields that are not
given keep their current value; the task stays in its column.

Examples:
  kanban edit 3 --title "Novo título"
  kanban edit 3 -d ""`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			titleSet := cmd.Flags().Changed("title")
			descSet := cmd.Flags().Changed("description")
			if !titleSet && !descSet {
				return fmt.Errorf("nothing to change: pass --title and/or --description")
			}
			return runEdit(cmd, args[0], edit{
				title:          title,
				titleSet:       titleSet,
				description:    description,
				descriptionSet: descSet,
			})
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New description (empty clears it)")
	return cmd
}

// edit holds the fields given on the command line.
type edit struct {
	title          string
	titleSet       bool
	description    string
	descriptionSet bool
}

func runEdit(cmd *cobra.Command, arg string, e edit) error {
	id, err := parseID(arg)
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
	title, description := current.Title, current.Description
	if e.titleSet {
		title = e.title
	}
	if e.descriptionSet {
		description = e.description
	}

	if _, _, err := s.syncer.EditContent(cmd.Context(), id, title, description); err != nil {
		return err
	}
	cmdutil.Println(cmd, s.env.Text.Text(locale.CLITaskUpdated, int64(id)))
	return nil
}
