package ui

import (
	"testing"

	"github.com/filter-today/filterctl/internal/config"
)

func TestResolveThemeDefaultDark(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{Preset: "default-dark"})

	if string(theme.Primary) == "" {
		t.Error("expected primary color to be set")
	}
	if theme.MarkdownStyle != "dark" {
		t.Errorf("expected markdown_style 'dark', got %q", theme.MarkdownStyle)
	}
}

func TestResolveThemeEmptyPresetFallsBack(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{})
	if theme.MarkdownStyle != "dark" {
		t.Errorf("expected fallback to dark, got %q", theme.MarkdownStyle)
	}
}

func TestResolveThemeUnknownPresetFallsBack(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{Preset: "nonexistent"})
	if theme.MarkdownStyle != "dark" {
		t.Errorf("expected fallback to dark, got %q", theme.MarkdownStyle)
	}
}

func TestResolveThemeOverrides(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{
		Preset:  "default-dark",
		Primary: "#FF0000",
		Danger:  "#AA0000",
	})

	if string(theme.Primary) != "#FF0000" {
		t.Errorf("expected primary '#FF0000', got %q", string(theme.Primary))
	}
	if string(theme.Danger) != "#AA0000" {
		t.Errorf("expected danger '#AA0000', got %q", string(theme.Danger))
	}
}

func TestResolveThemeAllPresets(t *testing.T) {
	cases := []struct {
		preset        string
		markdownStyle string
	}{
		{"default-dark", "dark"},
		{"default-light", "light"},
		{"dracula", "dark"},
		{"catppuccin-mocha", "dark"},
		{"gruvbox-dark", "dark"},
	}
	for _, tc := range cases {
		theme := ResolveTheme(config.ThemeConfig{Preset: tc.preset})
		if theme.MarkdownStyle != tc.markdownStyle {
			t.Errorf("%s: markdown_style = %q, want %q", tc.preset, theme.MarkdownStyle, tc.markdownStyle)
		}
	}
}
