// Package segment assembles styled prompt modules out of named text segments.
package segment

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Segment is one named piece of a module's output.
type Segment struct {
	Name  string
	Value string
}

// Module is a named, styled group of segments rendered as one unit.
type Module struct {
	Name     string
	style    *lipgloss.Style
	segments []Segment
}

// NewModule creates an empty module.
func NewModule(name string) *Module {
	return &Module{Name: name}
}

// SetStyle sets the style applied to every segment.
func (m *Module) SetStyle(s lipgloss.Style) {
	m.style = &s
}

// NewSegment appends a segment and returns it.
func (m *Module) NewSegment(name, value string) Segment {
	seg := Segment{Name: name, Value: value}
	m.segments = append(m.segments, seg)
	return seg
}

// Segments returns a copy of the module's segments in insertion order.
func (m *Module) Segments() []Segment {
	out := make([]Segment, len(m.segments))
	copy(out, m.segments)
	return out
}

// Value returns the value of the named segment.
func (m *Module) Value(name string) (string, bool) {
	for _, s := range m.segments {
		if s.Name == name {
			return s.Value, true
		}
	}
	return "", false
}

// IsEmpty reports whether the module would render nothing.
func (m *Module) IsEmpty() bool {
	for _, s := range m.segments {
		if s.Value != "" {
			return false
		}
	}
	return true
}

// Text returns the concatenated segment values without styling.
func (m *Module) Text() string {
	var sb strings.Builder
	for _, s := range m.segments {
		sb.WriteString(s.Value)
	}
	return sb.String()
}

// String renders the module with its style.
func (m *Module) String() string {
	if m.IsEmpty() {
		return ""
	}
	text := m.Text()
	if m.style == nil {
		return text
	}
	return m.style.Render(text)
}
