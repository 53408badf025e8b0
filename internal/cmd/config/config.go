// Package config provides CLI commands for managing kanban configuration.
package config

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	appconfig "github.com/Iron-Ham/kanban/internal/config"
	"github.com/Iron-Ham/kanban/internal/tui/styles"
)

// Wrapper functions for exec to allow testing
var execLookPath = exec.LookPath
var execCommand = exec.Command

// Register adds all config-related commands to the given parent command.
func Register(parent *cobra.Command) {
	parent.AddCommand(newConfigCmd())
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "View or modify kanban configuration",
		Long: `View or modify kanban configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
		RunE: runConfigShow,
	}

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show current configuration",
			RunE:  runConfigShow,
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Set a configuration value",
			Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  kanban config set api.base_url http://tasks.local:8080
  kanban config set tui.language en
  kanban config set tui.theme dracula

Valid keys:
  api.base_url        - Address of the task service
  api.timeout         - Request timeout, e.g. 5s (0 = none)
  api.user_agent      - User-Agent header sent with each request
  tui.theme           - Color theme (built-in or custom)
  tui.language        - Interface language: pt-BR, en
  tui.column_width    - Preferred column width (20-80)
  logging.enabled     - Write the debug log (true/false)
  logging.level       - Log level: debug, info, warn, error
  logging.max_size_mb - Rotate the debug log after this many MB
  logging.max_backups - Rotated log files to keep`,
			Args: cobra.ExactArgs(2),
			RunE: runConfigSet,
		},
		&cobra.Command{
			Use:   "init",
			Short: "Create a default config file",
			Long:  `Create a default config file at ~/.config/kanban/config.yaml with all available options.`,
			RunE:  runConfigInit,
		},
		&cobra.Command{
			Use:   "path",
			Short: "Show the config file path",
			RunE:  runConfigPath,
		},
		&cobra.Command{
			Use:   "edit",
			Short: "Open config file in your editor",
			Long: `Open the config file in your preferred editor.

Uses $EDITOR environment variable, or falls back to common editors (vim, nano, vi).
If no config file exists, creates one with default values first. A running
board picks up the saved theme and language.`,
			RunE: runConfigEdit,
		},
		&cobra.Command{
			Use:   "reset [key]",
			Short: "Reset configuration to defaults",
			Long: `Reset configuration values to their defaults.

Without arguments, resets all configuration to defaults.
With a key argument, resets only that specific key.

Examples:
  kanban config reset               # Reset all to defaults
  kanban config reset tui.language  # Reset only tui.language`,
			Args: cobra.MaximumNArgs(1),
			RunE: runConfigReset,
		},
		newThemeCmd(),
	)
	return configCmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := appconfig.Get()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out)

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Config file: (none - using defaults)\n")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "api:")
	fmt.Fprintf(out, "  base_url: %s\n", cfg.API.BaseURL)
	fmt.Fprintf(out, "  timeout: %s\n", cfg.API.Timeout)
	fmt.Fprintf(out, "  user_agent: %s\n", cfg.API.UserAgent)

	fmt.Fprintln(out, "tui:")
	fmt.Fprintf(out, "  theme: %s\n", cfg.TUI.Theme)
	fmt.Fprintf(out, "  language: %s\n", cfg.TUI.Language)
	fmt.Fprintf(out, "  column_width: %d\n", cfg.TUI.ColumnWidth)

	fmt.Fprintln(out, "logging:")
	fmt.Fprintf(out, "  enabled: %v\n", cfg.Logging.Enabled)
	fmt.Fprintf(out, "  level: %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  max_size_mb: %d\n", cfg.Logging.MaxSizeMB)
	fmt.Fprintf(out, "  max_backups: %d\n", cfg.Logging.MaxBackups)

	return nil
}

// keyTypes gives the value kind of every settable key.
var keyTypes = map[string]string{
	"api.base_url":        "string",
	"api.timeout":         "duration",
	"api.user_agent":      "string",
	"tui.theme":           "theme",
	"tui.language":        "language",
	"tui.column_width":    "int",
	"logging.enabled":     "bool",
	"logging.level":       "level",
	"logging.max_size_mb": "int",
	"logging.max_backups": "int",
}

func unknownKeyError(key string) error {
	return fmt.Errorf("unknown configuration key: %s\nRun 'kanban config set --help' to see valid keys", key)
}

// parseValue converts value to the type of key.
func parseValue(key, value string) (any, error) {
	if !appconfig.IsKnownKey(key) {
		return nil, unknownKeyError(key)
	}
	keyType := keyTypes[key]

	switch keyType {
	case "language":
		if !slices.Contains(appconfig.ValidLanguages(), value) {
			return nil, fmt.Errorf("invalid value for %s: %s\nValid options: %s",
				key, value, strings.Join(appconfig.ValidLanguages(), ", "))
		}
		return value, nil
	case "level":
		if !slices.Contains(appconfig.ValidLogLevels(), value) {
			return nil, fmt.Errorf("invalid value for %s: %s\nValid options: %s",
				key, value, strings.Join(appconfig.ValidLogLevels(), ", "))
		}
		return value, nil
	case "theme":
		// Discover custom themes first
		_, _ = styles.DiscoverCustomThemes()
		if !styles.IsValidTheme(value) {
			return nil, fmt.Errorf("invalid theme: %s\nValid options: %s",
				value, strings.Join(styles.ValidThemes(), ", "))
		}
		return value, nil
	case "bool":
		if value != "true" && value != "false" {
			return nil, fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		return value == "true", nil
	case "int":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected integer", key)
		}
		if intVal < 0 {
			return nil, fmt.Errorf("invalid value for %s: must be non-negative", key)
		}
		return intVal, nil
	case "duration":
		d, err := time.ParseDuration(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected a duration such as 5s or 1m", key)
		}
		return d.String(), nil
	}
	return value, nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	typedValue, err := parseValue(key, args[1])
	if err != nil {
		return err
	}

	previous := viper.Get(key)
	viper.Set(key, typedValue)

	// Reject values that the loaded config would not accept
	if _, err := appconfig.Load(); err != nil {
		viper.Set(key, previous)
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	configFile, err := writeConfig()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(cmd.OutOrStdout(), "Config saved to %s\n", configFile)
	return nil
}

// targetFile is the file written by set and reset: the file in use, or the
// default location.
func targetFile() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	return appconfig.ConfigFile()
}

// writeConfig saves every known key to targetFile.
func writeConfig() (string, error) {
	configFile := targetFile()
	if err := os.MkdirAll(filepath.Dir(configFile), 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	// Write only configuration keys, not bound flags
	out := viper.New()
	for _, key := range appconfig.Keys() {
		out.Set(key, viper.Get(key))
	}
	if err := out.WriteConfigAs(configFile); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return configFile, nil
}

// defaultConfigContent is the commented file written by init.
const defaultConfigContent = `# kanban configuration

# Task service
api:
  # Address of the REST task service
  base_url: http://localhost:8080
  # Request timeout (0 = wait for the transport)
  timeout: 0s
  # User-Agent header; empty sends kanban/<version>
  user_agent: ""

# Terminal board
tui:
  # Color theme: default, monokai, dracula, nord or a custom theme name
  theme: default
  # Interface language: pt-BR or en
  language: pt-BR
  # Preferred column width (20-80); columns shrink to fit narrow terminals
  column_width: 34

# Debug log, written under $XDG_STATE_HOME/kanban
logging:
  enabled: true
  # debug, info, warn or error
  level: info
  # Rotate after this many megabytes
  max_size_mb: 5
  # Rotated files to keep
  max_backups: 2
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configFile := appconfig.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'kanban config set' to modify values", configFile)
	}

	if err := os.MkdirAll(appconfig.ConfigDir(), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configFile, []byte(defaultConfigContent), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", configFile)
	fmt.Fprintln(cmd.OutOrStdout(), "Edit this file to customize the board.")
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", appconfig.ConfigFile())
	}

	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", appconfig.ConfigFile())
	fmt.Fprintf(out, "  2. ./config.yaml (current directory)\n")
	fmt.Fprintln(out, "\nEnvironment variables: KANBAN_* (e.g., KANBAN_API_BASE_URL)")
	return nil
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	configFile := targetFile()

	// Check if config file exists, if not create it
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		fmt.Fprintf(cmd.OutOrStdout(), "Config file doesn't exist, creating with defaults...\n")
		if err := runConfigInit(cmd, args); err != nil {
			return err
		}
		configFile = appconfig.ConfigFile()
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		for _, e := range []string{"vim", "nano", "vi"} {
			if _, err := execLookPath(e); err == nil {
				editor = e
				break
			}
		}
	}
	if editor == "" {
		return fmt.Errorf("no editor found. Set $EDITOR environment variable")
	}

	editorCmd := execCommand(editor, configFile)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("editor exited with error: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config file saved: %s\n", configFile)
	return nil
}

// defaultValues maps every key to its default, in the form written to disk.
func defaultValues() map[string]any {
	d := appconfig.Default()
	return map[string]any{
		"api.base_url":        d.API.BaseURL,
		"api.timeout":         d.API.Timeout.String(),
		"api.user_agent":      d.API.UserAgent,
		"tui.theme":           d.TUI.Theme,
		"tui.language":        d.TUI.Language,
		"tui.column_width":    d.TUI.ColumnWidth,
		"logging.enabled":     d.Logging.Enabled,
		"logging.level":       d.Logging.Level,
		"logging.max_size_mb": d.Logging.MaxSizeMB,
		"logging.max_backups": d.Logging.MaxBackups,
	}
}

func runConfigReset(cmd *cobra.Command, args []string) error {
	defaults := defaultValues()
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		for key, value := range defaults {
			viper.Set(key, value)
		}
		fmt.Fprintln(out, "Reset all configuration to defaults.")
	} else {
		key := args[0]
		if !appconfig.IsKnownKey(key) {
			return unknownKeyError(key)
		}
		value := defaults[key]
		viper.Set(key, value)
		fmt.Fprintf(out, "Reset %s to default: %v\n", key, value)
	}

	configFile, err := writeConfig()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Config saved to %s\n", configFile)
	return nil
}
