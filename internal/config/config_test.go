package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	if cfg.API.BaseURL != "http://localhost:8080" {
		t.Errorf("API.BaseURL = %q, want %q", cfg.API.BaseURL, "http://localhost:8080")
	}
	if cfg.API.Timeout != 0 {
		t.Errorf("API.Timeout = %v, want 0", cfg.API.Timeout)
	}

	if cfg.TUI.Theme != "default" {
		t.Errorf("TUI.Theme = %q, want %q", cfg.TUI.Theme, "default")
	}
	if cfg.TUI.Language != "pt-BR" {
		t.Errorf("TUI.Language = %q, want %q", cfg.TUI.Language, "pt-BR")
	}
	if cfg.TUI.ColumnWidth != 34 {
		t.Errorf("TUI.ColumnWidth = %d, want 34", cfg.TUI.ColumnWidth)
	}

	if !cfg.Logging.Enabled {
		t.Error("Logging.Enabled should be true by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestKeys(t *testing.T) {
	keys := Keys()
	if len(keys) != 11 {
		t.Errorf("Keys() length = %d, want 11", len(keys))
	}

	tests := []struct {
		key   string
		known bool
	}{
		{"api.base_url", true},
		{"tui.column_width", true},
		{"logging.max_backups", true},
		{"api", false},
		{"tui.sidebar_width", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := IsKnownKey(tt.key); got != tt.known {
				t.Errorf("IsKnownKey(%q) = %v, want %v", tt.key, got, tt.known)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	t.Run("with XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		if got := ConfigDir(); got != "/custom/config/kanban" {
			t.Errorf("ConfigDir() = %q, want %q", got, "/custom/config/kanban")
		}
		if got := ThemesDir(); got != "/custom/config/kanban/themes" {
			t.Errorf("ThemesDir() = %q", got)
		}
	})

	t.Run("without XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, _ := os.UserHomeDir()
		want := filepath.Join(home, ".config", "kanban")
		if got := ConfigDir(); got != want {
			t.Errorf("ConfigDir() = %q, want %q", got, want)
		}
	})
}

func TestConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	want := "/custom/config/kanban/config.yaml"
	if got := ConfigFile(); got != want {
		t.Errorf("ConfigFile() = %q, want %q", got, want)
	}
}

func TestStateDir(t *testing.T) {
	t.Run("with XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "/custom/state")
		if got := StateDir(); got != "/custom/state/kanban" {
			t.Errorf("StateDir() = %q, want %q", got, "/custom/state/kanban")
		}
	})

	t.Run("without XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "")
		home, _ := os.UserHomeDir()
		want := filepath.Join(home, ".local", "state", "kanban")
		if got := StateDir(); got != want {
			t.Errorf("StateDir() = %q, want %q", got, want)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		viper.Reset()
		defer viper.Reset()
		SetDefaults()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.API.BaseURL != Default().API.BaseURL {
			t.Errorf("API.BaseURL = %q", cfg.API.BaseURL)
		}
	})

	t.Run("reads yaml file with duration", func(t *testing.T) {
		viper.Reset()
		defer viper.Reset()
		SetDefaults()

		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "api:\n  base_url: https://tasks.example.com\n  timeout: 5s\ntui:\n  language: en\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			t.Fatalf("ReadInConfig() error = %v", err)
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.API.BaseURL != "https://tasks.example.com" {
			t.Errorf("API.BaseURL = %q", cfg.API.BaseURL)
		}
		if cfg.API.Timeout != 5*time.Second {
			t.Errorf("API.Timeout = %v, want 5s", cfg.API.Timeout)
		}
		if cfg.TUI.Language != "en" {
			t.Errorf("TUI.Language = %q, want en", cfg.TUI.Language)
		}
		if cfg.TUI.ColumnWidth != 34 {
			t.Errorf("TUI.ColumnWidth = %d, want default 34", cfg.TUI.ColumnWidth)
		}
	})

	t.Run("invalid value is rejected", func(t *testing.T) {
		viper.Reset()
		defer viper.Reset()
		SetDefaults()
		viper.Set("tui.column_width", 5)

		if _, err := Load(); err == nil {
			t.Fatal("Load() should fail for tui.column_width = 5")
		}
	})
}

func TestGet_FallsBackToDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	SetDefaults()
	viper.Set("logging.level", "chatty")

	cfg := Get()
	if cfg.Logging.Level != "info" {
		t.Errorf("Get().Logging.Level = %q, want default %q", cfg.Logging.Level, "info")
	}
}
