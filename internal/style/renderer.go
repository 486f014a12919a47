package style

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// NewRenderer returns a renderer for prompt output written to w.
//
// Prompts are captured by the shell through a pipe, so the renderer assumes a
// terminal and derives the color profile from the environment (TERM,
// COLORTERM, NO_COLOR). noColor forces plain text.
func NewRenderer(w io.Writer, noColor bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w, termenv.WithTTY(true))
	// Avoid querying the terminal for its background color.
	r.SetHasDarkBackground(true)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// NewRendererWithProfile returns a renderer pinned to the given profile.
func NewRendererWithProfile(w io.Writer, profile termenv.Profile) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetHasDarkBackground(true)
	r.SetColorProfile(profile)
	return r
}
