package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ThemeConfig holds color overrides for TUI rendering.
type ThemeConfig struct {
	Preset        string `mapstructure:"preset"`
	Primary       string `mapstructure:"primary"`
	Secondary     string `mapstructure:"secondary"`
	Accent        string `mapstructure:"accent"`
	Muted         string `mapstructure:"muted"`
	Danger        string `mapstructure:"danger"`
	Background    string `mapstructure:"background"`
	MarkdownStyle string `mapstructure:"markdown_style"`
}

// Config holds the application configuration.
type Config struct {
	BaseURL      string      `mapstructure:"base_url"`
	StateDir     string      `mapstructure:"state_dir"`
	DefaultColor string      `mapstructure:"default_color"`
	Editor       string      `mapstructure:"editor"`
	Assist       bool        `mapstructure:"assist"`
	Theme        ThemeConfig `mapstructure:"theme"`
}

// DefaultStateDir returns the default state directory (~/.filterctl/).
func DefaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".filterctl")
	}
	return filepath.Join(home, ".filterctl")
}

// Load reads configuration from file, environment variables, and defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("base_url", "http://localhost:8080")
	v.SetDefault("state_dir", DefaultStateDir())
	v.SetDefault("default_color", "#ff9900")
	v.SetDefault("editor", "")
	v.SetDefault("assist", false)
	v.SetDefault("theme.preset", "")

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// XDG support
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "filterctl"))
		}
		v.AddConfigPath(DefaultStateDir())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// Environment variables: FILTERCTL_BASE_URL, FILTERCTL_STATE_DIR, etc.
	v.SetEnvPrefix("FILTERCTL")
	v.AutomaticEnv()

	// Read config file (ignore not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if configPath != "" {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
