// Package cmdutil builds the dependencies shared by the kanban commands: the
// loaded configuration, the debug logger, the task service client and the
// translator for user-facing output.
package cmdutil

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/kanban/internal/api"
	"github.com/Iron-Ham/kanban/internal/config"
	"github.com/Iron-Ham/kanban/internal/locale"
	"github.com/Iron-Ham/kanban/internal/logging"
)

// Version is reported in the User-Agent header. Set at build time.
var Version = "dev"

// Env is what a command needs to talk to the task service.
type Env struct {
	Config *config.Config
	Logger *logging.Logger
	Client *api.Client
	Text   *locale.Translator
}

// Setup loads the configuration and builds an Env. The caller must Close it.
func Setup(cmd *cobra.Command) (*Env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := CreateLogger(cfg, cmd.ErrOrStderr())
	client, err := NewClient(cfg, logger)
	if err != nil {
		_ = logger.Close()
		return nil, err
	}

	return &Env{
		Config: cfg,
		Logger: logger.With("command", cmd.Name()),
		Client: client,
		Text:   locale.New(cfg.TUI.Language),
	}, nil
}

// Close flushes the log file.
func (e *Env) Close() {
	if e.Logger != nil {
		_ = e.Logger.Close()
	}
}

// Println writes a line to the command's output.
func Println(cmd *cobra.Command, a ...any) {
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), a...)
}

// Printf writes formatted text to the command's output.
func Printf(cmd *cobra.Command, format string, a ...any) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), format, a...)
}

// CreateLogger creates the debug logger under config.StateDir if logging is
// enabled. A logger that cannot be opened is reported on warn and replaced
// by a NopLogger so the command still runs.
func CreateLogger(cfg *config.Config, warn io.Writer) *logging.Logger {
	if !cfg.Logging.Enabled {
		return logging.NopLogger()
	}

	dir := config.StateDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		_, _ = fmt.Fprintf(warn, "Warning: failed to create log directory: %v\n", err)
		return logging.NopLogger()
	}

	rotation := logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	}
	logger, err := logging.NewLogger(dir, cfg.Logging.Level, rotation)
	if err != nil {
		_, _ = fmt.Fprintf(warn, "Warning: failed to create logger: %v\n", err)
		return logging.NopLogger()
	}
	return logger
}

// NewClient returns a task service client configured from cfg.
func NewClient(cfg *config.Config, logger *logging.Logger) (*api.Client, error) {
	opts := []api.ClientOption{api.WithLogger(logger)}
	if cfg.API.Timeout > 0 {
		opts = append(opts, api.WithTimeout(cfg.API.Timeout))
	}
	ua := cfg.API.UserAgent
	if ua == "" {
		ua = "kanban/" + Version
	}
	opts = append(opts, api.WithUserAgent(ua))

	client, err := api.NewClient(cfg.API.BaseURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid api.base_url: %w", err)
	}
	return client, nil
}
