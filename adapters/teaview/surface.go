// Package teaview implements the platform adapter for bubbletea-based
// terminal UIs. A Surface is the real renderable view; a Frame is the
// host-generated wrapper the composition layer injects around it.
package teaview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Surface is a concrete renderable view. The host program owns its
// lifetime; the binding layer only ever sees it as an opaque view handle.
type Surface struct {
	id     string
	lines  []string
	width  int
	height int
	loaded bool
	style  lipgloss.Style
}

// NewSurface creates a surface with the given identity.
func NewSurface(id string) *Surface {
	return &Surface{
		id:    id,
		style: lipgloss.NewStyle(),
	}
}

// ID returns the surface's identity.
func (s *Surface) ID() string {
	return s.id
}

// SetLines replaces the surface's content.
func (s *Surface) SetLines(lines ...string) {
	s.lines = lines
}

// SetSize updates the surface's dimensions.
func (s *Surface) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Size returns the surface's current dimensions.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// Loaded reports whether the surface has rendered at least once.
func (s *Surface) Loaded() bool {
	return s.loaded
}

// Render produces the surface's visual representation.
func (s *Surface) Render() string {
	st := s.style
	if s.width > 0 {
		st = st.Width(s.width)
	}
	return st.Render(strings.Join(s.lines, "\n"))
}

// Frame is a host-injected container around a Surface, adding a border
// and title. The binding layer strips it during normalization.
type Frame struct {
	content *Surface
	title   string
}

// NewFrame wraps content in a generated container.
func NewFrame(content *Surface, title string) *Frame {
	return &Frame{content: content, title: title}
}

// Content returns the wrapped surface.
func (f *Frame) Content() *Surface {
	return f.content
}

// Title returns the frame's title.
func (f *Frame) Title() string {
	return f.title
}

// Render draws the wrapped surface inside a rounded border.
func (f *Frame) Render() string {
	body := ""
	if f.content != nil {
		body = f.content.Render()
	}
	st := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if f.title != "" {
		return st.Render(f.title + "\n" + body)
	}
	return st.Render(body)
}
