package tasks

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/kanban/internal/cmd/cmdutil"
	"github.com/Iron-Ham/kanban/internal/locale"
	"github.com/Iron-Ham/kanban/internal/task"
	"github.com/Iron-Ham/kanban/internal/util"
)

// Output formats of the list command.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// descriptionWidth caps the description shown under each task in text output.
const descriptionWidth = 72

func newListCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks grouped by column",
		Long: `List every task of the service grouped by column.

Examples:
  kanban list
  kanban list -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, format)
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", formatText, "Output format (text, json, yaml)")
	return cmd
}

func runList(cmd *cobra.Command, format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("unknown output format %q (want %s, %s or %s)", format, formatText, formatJSON, formatYAML)
	}

	s, err := open(cmd.Context(), cmd, true)
	if err != nil {
		return err
	}
	defer s.close()

	tasks := s.syncer.Store().Tasks()
	switch format {
	case formatJSON:
		return writeJSON(cmd, tasks)
	case formatYAML:
		return writeYAML(cmd, tasks)
	}

	if len(tasks) == 0 {
		cmdutil.Println(cmd, s.env.Text.Text(locale.CLINoTasks))
		return nil
	}
	writeColumns(cmd, s.env.Text, s.syncer.Store().Columns())
	return nil
}

// writeColumns prints each column heading followed by its tasks.
func writeColumns(cmd *cobra.Command, tr *locale.Translator, columns [][]task.Task) {
	for i, status := range task.Statuses() {
		if i > 0 {
			cmdutil.Println(cmd)
		}
		col := columns[i]
		cmdutil.Printf(cmd, "%s (%d)\n", tr.StatusLabel(status), len(col))
		if len(col) == 0 {
			cmdutil.Printf(cmd, "  %s\n", tr.Text(locale.ColumnEmpty))
			continue
		}
		for _, t := range col {
			cmdutil.Printf(cmd, "  #%-4d %s\n", t.ID, util.SingleLine(t.Title))
			if t.Description != "" {
				cmdutil.Printf(cmd, "        %s\n", util.TruncateString(util.SingleLine(t.Description), descriptionWidth))
			}
		}
	}
}

// writeJSON prints tasks in the service's wire format.
func writeJSON(cmd *cobra.Command, tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(tasks)
}

// yamlTask is the YAML shape of a task. Keys follow the wire names.
type yamlTask struct {
	ID          int64  `yaml:"id"`
	Title       string `yaml:"titulo"`
	Description string `yaml:"descricao,omitempty"`
	Status      string `yaml:"status"`
}

func writeYAML(cmd *cobra.Command, tasks []task.Task) error {
	out := make([]yamlTask, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, yamlTask{
			ID:          int64(t.ID),
			Title:       t.Title,
			Description: t.Description,
			Status:      string(t.Status),
		})
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// joinArgs joins positional words into one title, so quoting is optional.
func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
