// Package cmd wires the kanban command tree.
package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/kanban/internal/cmd/cmdutil"
	cfgcmd "github.com/Iron-Ham/kanban/internal/cmd/config"
	"github.com/Iron-Ham/kanban/internal/cmd/tasks"
	"github.com/Iron-Ham/kanban/internal/config"
	"github.com/Iron-Ham/kanban/internal/errors"
	"github.com/Iron-Ham/kanban/internal/locale"
)

// NewRootCmd builds the kanban command tree. Running it without a
// subcommand opens the board.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kanban",
		Short: "Kanban board for a REST task service",
		Long: `kanban shows the tasks of a REST task service as a three column board
(A Fazer, Em Progresso, Concluídas) and lets you create, move, edit and
delete them from the terminal.

Run without arguments to open the interactive board. The list, add, move,
edit and rm subcommands do the same work from scripts.`,
		Version:           cmdutil.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: initConfig,
		RunE:              runBoard,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.config/kanban/config.yaml)")
	flags.String("base-url", "", "address of the task service (overrides api.base_url)")
	flags.String("lang", "", "interface language: pt-BR, en (overrides tui.language)")

	rootCmd.AddCommand(newBoardCmd(), newLogsCmd())
	tasks.Register(rootCmd)
	cfgcmd.Register(rootCmd)
	return rootCmd
}

// Execute runs the command tree and prints a failure on stderr in the
// configured language.
func Execute(ctx context.Context) error {
	return execute(ctx, NewRootCmd())
}

func execute(ctx context.Context, root *cobra.Command) error {
	err := root.ExecuteContext(ctx)
	if err != nil {
		text := locale.New(viper.GetString("tui.language"))
		fmt.Fprintln(root.ErrOrStderr(), "Error: "+text.ErrorMessage(err))
	}
	return err
}

// flagKeys maps global flags to the configuration keys they override.
var flagKeys = map[string]string{
	"config":   "config",
	"base-url": "api.base_url",
	"lang":     "tui.language",
}

func initConfig(cmd *cobra.Command, args []string) error {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	flags := cmd.Root().PersistentFlags()
	for name, key := range flagKeys {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			return errors.Wrapf(err, "binding --%s", name)
		}
	}

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("KANBAN")
	// Replace dots with underscores for nested keys in env vars
	// e.g., KANBAN_API_BASE_URL for api.base_url
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing config file is fine; a broken one is not
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return errors.Wrap(err, "reading config file")
		}
	}
	return nil
}
