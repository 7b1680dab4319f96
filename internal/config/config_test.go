package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "http://localhost:8080" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.DefaultColor != "#ff9900" {
		t.Errorf("DefaultColor = %q", cfg.DefaultColor)
	}
	if cfg.Assist {
		t.Error("assist should default to false")
	}
	if cfg.StateDir == "" {
		t.Error("StateDir should have a default")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
base_url = "https://filter.example.com"
default_color = "#4682B4"
assist = true

[theme]
preset = "default-light"
accent = "#FFD700"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "https://filter.example.com" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.DefaultColor != "#4682B4" {
		t.Errorf("DefaultColor = %q", cfg.DefaultColor)
	}
	if !cfg.Assist {
		t.Error("assist should be true")
	}
	if cfg.Theme.Preset != "default-light" || cfg.Theme.Accent != "#FFD700" {
		t.Errorf("theme = %+v", cfg.Theme)
	}
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("FILTERCTL_BASE_URL", "https://env.example.com")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "https://env.example.com" {
		t.Errorf("BaseURL = %q, want env override", cfg.BaseURL)
	}
}
