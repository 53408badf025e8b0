package tasks

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Iron-Ham/kanban/internal/board"
	"github.com/Iron-Ham/kanban/internal/cmd/cmdutil"
	"github.com/Iron-Ham/kanban/internal/errors"
	"github.com/Iron-Ham/kanban/internal/locale"
)

// stdinIsTerminal reports whether the command reads from an interactive
// terminal. Replaced in tests.
var stdinIsTerminal = func(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// errNotInteractive is returned when a delete needs confirmation but there
// is nobody to ask.
var errNotInteractive = errors.New("refusing to delete without confirmation: stdin is not a terminal (use --yes)")

func newRemoveCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a task",
		Long: `Delete a task after asking for confirmation.

The confirmation is skipped only with --yes. Without it the command must run
in an interactive terminal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd, args[0], yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without asking")
	return cmd
}

func runRemove(cmd *cobra.Command, arg string, yes bool) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	s, err := open(cmd.Context(), cmd, true)
	if err != nil {
		return err
	}
	defer s.close()

	if _, err := s.find(id); err != nil {
		return err
	}

	if !yes && !stdinIsTerminal(cmd) {
		return errNotInteractive
	}

	var confirm board.Confirmer = board.ConfirmFunc(func(string) (bool, error) { return true, nil })
	if !yes {
		confirm = promptConfirmer(cmd.InOrStdin(), cmd.ErrOrStderr())
	}
	prompt := s.env.Text.Text(locale.ConfirmDelete) + " " + s.env.Text.Text(locale.CLIConfirmPromptSuffix) + " "

	err = s.syncer.Delete(cmd.Context(), id, confirm, prompt)
	if errors.Is(err, errors.ErrCanceled) {
		cmdutil.Println(cmd, s.env.Text.Text(locale.CLIDeleteDeclined))
		return nil
	}
	if err != nil {
		return err
	}
	cmdutil.Println(cmd, s.env.Text.Text(locale.CLITaskDeleted, int64(id)))
	return nil
}

// promptConfirmer writes the prompt to out and reads one answer line from
// in. Only an explicit yes in either language agrees.
func promptConfirmer(in io.Reader, out io.Writer) board.Confirmer {
	return board.ConfirmFunc(func(prompt string) (bool, error) {
		if _, err := fmt.Fprint(out, prompt); err != nil {
			return false, err
		}
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && err != io.EOF {
			return false, err
		}
		return isYes(line), nil
	})
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "s", "sim":
		return true
	}
	return false
}
