package tui

import (
	"slices"

	"github.com/charmbracelet/huh"
)

// themeConstructors maps config theme names to huh themes.
var themeConstructors = map[string]func() *huh.Theme{
	"cuppa":      cuppaTheme,
	"base":       huh.ThemeBase,
	"base16":     huh.ThemeBase16,
	"catppuccin": huh.ThemeCatppuccin,
	"charm":      huh.ThemeCharm,
	"dracula":    huh.ThemeDracula,
}

// ValidThemes lists the accepted values of the "theme" config key.
var ValidThemes = []string{"cuppa", "base", "base16", "catppuccin", "charm", "dracula"}

// IsValidTheme reports whether name is a known theme. Names are case-sensitive.
func IsValidTheme(name string) bool {
	return slices.Contains(ValidThemes, name)
}

// GetTheme returns the named theme, or nil for unknown names.
func GetTheme(name string) *huh.Theme {
	if ctor, ok := themeConstructors[name]; ok {
		return ctor()
	}
	return nil
}
