// Package style turns prompt style specifiers such as "red bold" or
// "fg:#c0ffee bg:238 italic" into lipgloss styles.
package style

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ErrEmptyStyle is returned for a blank style specifier.
var ErrEmptyStyle = errors.New("empty style")

// namedColors maps color names to ANSI color indexes.
var namedColors = map[string]string{
	"black":          "0",
	"red":            "1",
	"green":          "2",
	"yellow":         "3",
	"blue":           "4",
	"purple":         "5",
	"cyan":           "6",
	"white":          "7",
	"bright-black":   "8",
	"bright-red":     "9",
	"bright-green":   "10",
	"bright-yellow":  "11",
	"bright-blue":    "12",
	"bright-purple":  "13",
	"bright-cyan":    "14",
	"bright-white":   "15",
	"magenta":        "5",
	"bright-magenta": "13",
}

// Parse builds a style from r for the given specifier. Tokens are separated
// by whitespace and matched case-insensitively; "none" resets everything
// parsed so far.
func Parse(r *lipgloss.Renderer, desc string) (lipgloss.Style, error) {
	tokens := strings.Fields(strings.ToLower(desc))
	if len(tokens) == 0 {
		return lipgloss.Style{}, ErrEmptyStyle
	}

	s := r.NewStyle()
	for _, tok := range tokens {
		switch tok {
		case "bold":
			s = s.Bold(true)
		case "italic":
			s = s.Italic(true)
		case "underline":
			s = s.Underline(true)
		case "dimmed":
			s = s.Faint(true)
		case "inverted":
			s = s.Reverse(true)
		case "blink":
			s = s.Blink(true)
		case "strikethrough":
			s = s.Strikethrough(true)
		case "none":
			s = r.NewStyle()
		default:
			var err error
			s, err = applyColor(s, tok)
			if err != nil {
				return lipgloss.Style{}, fmt.Errorf("invalid style %q: %w", desc, err)
			}
		}
	}

	return s, nil
}

// applyColor handles "fg:<color>", "bg:<color>" and bare colors.
func applyColor(s lipgloss.Style, tok string) (lipgloss.Style, error) {
	target, value, found := strings.Cut(tok, ":")
	if !found {
		target, value = "fg", tok
	}

	c, err := ParseColor(value)
	if err != nil {
		return s, err
	}

	switch target {
	case "fg":
		return s.Foreground(c), nil
	case "bg":
		return s.Background(c), nil
	default:
		return s, fmt.Errorf("unknown color target %q", target)
	}
}

// ParseColor accepts a color name, an ANSI index (0-255) or "#rrggbb".
func ParseColor(value string) (lipgloss.Color, error) {
	if idx, ok := namedColors[value]; ok {
		return lipgloss.Color(idx), nil
	}

	if strings.HasPrefix(value, "#") {
		if !isHexColor(value) {
			return "", fmt.Errorf("invalid hex color %q", value)
		}
		return lipgloss.Color(value), nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return "", fmt.Errorf("unknown style token %q", value)
	}
	if n < 0 || n > 255 {
		return "", fmt.Errorf("color index %d out of range 0-255", n)
	}
	return lipgloss.Color(strconv.Itoa(n)), nil
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}
