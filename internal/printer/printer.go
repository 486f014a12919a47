// Package printer styles the human-facing output of cuppa's commands.
// Prompt segments are styled by the style package instead.
package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	renderer = lipgloss.DefaultRenderer()

	faintStyle   lipgloss.Style
	boldStyle    lipgloss.Style
	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
	warningStyle lipgloss.Style
)

func init() {
	buildStyles()
}

func buildStyles() {
	faintStyle = renderer.NewStyle().Faint(true)
	boldStyle = renderer.NewStyle().Bold(true)
	successStyle = renderer.NewStyle().Foreground(lipgloss.Color("2")) // Green
	errorStyle = renderer.NewStyle().Foreground(lipgloss.Color("1"))   // Red
	warningStyle = renderer.NewStyle().Foreground(lipgloss.Color("3")) // Yellow
}

// SetNoColor disables (or re-enables) colored console output.
func SetNoColor(noColor bool) {
	renderer = lipgloss.NewRenderer(os.Stdout)
	if noColor {
		renderer.SetColorProfile(termenv.Ascii)
	}
	buildStyles()
}

// Faint returns text with faint styling.
func Faint(text string) string {
	return faintStyle.Render(text)
}

// Bold returns text with bold styling.
func Bold(text string) string {
	return boldStyle.Render(text)
}

// Success returns text with success (green) styling.
func Success(text string) string {
	return successStyle.Render(text)
}

// Error returns text with error (red) styling.
func Error(text string) string {
	return errorStyle.Render(text)
}

// Warning returns text with warning (yellow) styling.
func Warning(text string) string {
	return warningStyle.Render(text)
}

// Status is the outcome of a single check.
type Status int

const (
	StatusOK Status = iota
	StatusWarn
	StatusFail
)

// Mark returns the styled marker for s.
func (s Status) Mark() string {
	switch s {
	case StatusWarn:
		return Warning("!")
	case StatusFail:
		return Error("✗")
	default:
		return Success("✓")
	}
}

// PrintStatus writes an indented "<mark> msg" line to w.
func PrintStatus(w io.Writer, s Status, msg string) {
	_, _ = fmt.Fprintf(w, "  %s %s\n", s.Mark(), msg)
}

// PrintSuccessTo writes text with success styling to w.
func PrintSuccessTo(w io.Writer, text string) {
	_, _ = fmt.Fprintln(w, Success(text))
}

// PrintErrorTo writes text with error styling to w.
func PrintErrorTo(w io.Writer, text string) {
	_, _ = fmt.Fprintln(w, Error(text))
}
