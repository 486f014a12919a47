package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Roast palette used by the default theme.
var (
	cuppaRoastPrimary   = lipgloss.AdaptiveColor{Light: "#7c4a1e", Dark: "#d4a373"}
	cuppaRoastBright    = lipgloss.AdaptiveColor{Light: "#9c6644", Dark: "#e9c46a"}
	cuppaTextStrong     = lipgloss.AdaptiveColor{Light: "#1c1917", Dark: "#fafaf9"}
	cuppaTextMuted      = lipgloss.AdaptiveColor{Light: "#78716c", Dark: "#a8a29e"}
	cuppaBorderFocused  = lipgloss.AdaptiveColor{Light: "#9c6644", Dark: "#d4a373"}
	cuppaButtonBg       = lipgloss.AdaptiveColor{Light: "#7c4a1e", Dark: "#d4a373"}
	cuppaButtonText     = lipgloss.AdaptiveColor{Light: "#fafaf9", Dark: "#1c1917"}
	cuppaButtonBgFaded  = lipgloss.AdaptiveColor{Light: "#e7e5e4", Dark: "#44403c"}
	cuppaButtonTextFade = lipgloss.AdaptiveColor{Light: "#57534e", Dark: "#d6d3d1"}
)

// currentTheme holds the configured theme. nil means cuppaTheme.
var currentTheme *huh.Theme

// SetTheme sets the current theme by name.
// Empty or unknown names select the cuppa theme.
func SetTheme(name string) {
	currentTheme = GetTheme(name)
}

func currentThemeOrDefault() *huh.Theme {
	if currentTheme == nil {
		return cuppaTheme()
	}
	return currentTheme
}

// resetTheme resets the current theme to the default (cuppa).
func resetTheme() {
	currentTheme = nil
}

func cuppaTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(cuppaBorderFocused)
	t.Focused.Title = t.Focused.Title.Foreground(cuppaRoastPrimary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(cuppaTextMuted)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(cuppaRoastBright)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(cuppaRoastBright)
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(cuppaTextStrong)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(cuppaRoastBright)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(cuppaRoastPrimary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(cuppaButtonText).
		Background(cuppaButtonBg).
		Bold(true).
		Padding(0, 1)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(cuppaButtonTextFade).
		Background(cuppaButtonBgFaded).
		Padding(0, 1)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())

	return t
}
