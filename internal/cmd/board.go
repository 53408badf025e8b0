package cmd

import (
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/kanban/internal/cmd/cmdutil"
	"github.com/Iron-Ham/kanban/internal/config"
	"github.com/Iron-Ham/kanban/internal/logging"
	"github.com/Iron-Ham/kanban/internal/tui"
	"github.com/Iron-Ham/kanban/internal/tui/msg"
	"github.com/Iron-Ham/kanban/internal/tui/styles"
)

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the interactive board (default)",
		Long: `Open the interactive board.

The board loads every task on start and shows them in three columns. Press
? inside the board for the key bindings. Edits to the theme or language in
the config file are applied while the board is open.`,
		Args: cobra.NoArgs,
		RunE: runBoard,
	}
}

func runBoard(cmd *cobra.Command, args []string) error {
	env, err := cmdutil.Setup(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	if err := styles.ApplyTheme(env.Config.TUI.Theme); err != nil {
		env.Logger.Warn("theme not applied", "theme", env.Config.TUI.Theme, "error", err.Error())
	}
	env.Logger.Info("opening board", "base_url", env.Client.BaseURL())

	return tui.Run(cmd.Context(), tui.Options{
		Service:       env.Client,
		Logger:        env.Logger,
		Language:      env.Config.TUI.Language,
		ColumnWidth:   env.Config.TUI.ColumnWidth,
		ConfigChanges: watchConfig(env.Logger),
	})
}

// watchConfig reports theme and language edits of the config file in use.
// It returns nil when no config file was read.
func watchConfig(logger *logging.Logger) <-chan msg.ConfigChangedMsg {
	if viper.ConfigFileUsed() == "" {
		return nil
	}
	changes := make(chan msg.ConfigChangedMsg, 1)
	viper.OnConfigChange(configChangeHandler(changes, logger))
	viper.WatchConfig()
	return changes
}

// configChangeHandler validates the re-read config and queues its look. Only
// the latest change is kept when the board has not consumed the previous one.
func configChangeHandler(changes chan msg.ConfigChangedMsg, logger *logging.Logger) func(fsnotify.Event) {
	return func(e fsnotify.Event) {
		cfg, err := config.Load()
		if err != nil {
			logger.Warn("ignoring invalid config edit", "file", e.Name, "error", err.Error())
			return
		}
		change := msg.ConfigChangedMsg{Theme: cfg.TUI.Theme, Language: cfg.TUI.Language}
		logger.Debug("config changed", "file", e.Name, "theme", change.Theme, "language", change.Language)

		for {
			select {
			case changes <- change:
				return
			default:
			}
			// Drop the stale pending change
			select {
			case <-changes:
			default:
			}
		}
	}
}
