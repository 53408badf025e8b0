package config

import (
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete kanban configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig controls how the client talks to the task service
type APIConfig struct {
	// BaseURL is the address of the task service (default: "http://localhost:8080")
	BaseURL string `mapstructure:"base_url"`
	// Timeout bounds each request. 0 means no client-side timeout.
	Timeout time.Duration `mapstructure:"timeout"`
	// UserAgent overrides the User-Agent header sent with every request
	UserAgent string `mapstructure:"user_agent"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is a builtin palette name or the name of a YAML file in ThemesDir()
	// Builtin: "default", "monokai", "dracula", "nord"
	Theme string `mapstructure:"theme"`
	// Language selects the UI message catalog: "pt-BR" (default) or "en"
	Language string `mapstructure:"language"`
	// ColumnWidth is the width of each board column in cells (default: 34, min: 20, max: 80)
	ColumnWidth int `mapstructure:"column_width"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation (default: 5)
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of backup log files to keep (default: 2)
	MaxBackups int `mapstructure:"max_backups"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:   "http://localhost:8080",
			Timeout:   0,
			UserAgent: "",
		},
		TUI: TUIConfig{
			Theme:       "default",
			Language:    "pt-BR",
			ColumnWidth: 34,
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			MaxSizeMB:  5,
			MaxBackups: 2,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// API defaults
	viper.SetDefault("api.base_url", defaults.API.BaseURL)
	viper.SetDefault("api.timeout", defaults.API.Timeout)
	viper.SetDefault("api.user_agent", defaults.API.UserAgent)

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.language", defaults.TUI.Language)
	viper.SetDefault("tui.column_width", defaults.TUI.ColumnWidth)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}

// Keys returns every configuration key in a stable order.
func Keys() []string {
	return []string{
		"api.base_url",
		"api.timeout",
		"api.user_agent",
		"tui.theme",
		"tui.language",
		"tui.column_width",
		"logging.enabled",
		"logging.level",
		"logging.max_size_mb",
		"logging.max_backups",
	}
}

// IsKnownKey reports whether key is one of Keys().
func IsKnownKey(key string) bool {
	return slices.Contains(Keys(), key)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "kanban")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".kanban"
	}
	return filepath.Join(home, ".config", "kanban")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ThemesDir returns the directory searched for custom theme files
func ThemesDir() string {
	return filepath.Join(ConfigDir(), "themes")
}

// StateDir returns the directory holding the debug log
func StateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "kanban")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".kanban"
	}
	return filepath.Join(home, ".local", "state", "kanban")
}
