package demo

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/seam/adapters/teaview"
	"go.trai.ch/seam/ports"
	"go.trai.ch/seam/ui/style"
)

const surfaceBorderWidth = 4

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(style.Teal)

// Model is the demo's bubbletea model. It hosts a row of screens, binds a
// framed surface to each of them, and drives the platform adapter's load
// and layout-settle pumps from the update loop.
type Model struct {
	adapter *teaview.Adapter
	screens []*Screen
	logger  ports.Logger

	selected int
	width    int
	height   int
	loaded   bool
}

// NewModel binds one surface per screen and activates the first screen.
// The remaining screens stay inactive, so their ready notifications are
// held back until the user tabs over to them.
func NewModel(adapter *teaview.Adapter, logger ports.Logger, screens ...*Screen) (*Model, error) {
	m := &Model{
		adapter: adapter,
		screens: screens,
		logger:  logger,
	}

	if len(screens) > 0 {
		screens[0].Activate()
	}
	for _, s := range screens {
		surface := teaview.NewSurface(s.Name())
		frame := teaview.NewFrame(surface, s.Name())
		if err := s.Binder().AttachView(frame, ""); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Selected returns the index of the screen on display.
func (m *Model) Selected() int {
	return m.selected
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.selectNext()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeSurfaces()

		first := !m.loaded
		m.loaded = true
		for _, s := range m.screens {
			surface, ok := s.Surface()
			if !ok {
				continue
			}
			if first {
				m.adapter.NotifyLoaded(surface)
			}
			m.adapter.NotifyLayoutSettled(surface)
		}

	case MsgSettings:
		for _, s := range m.screens {
			s.Binder().ConfigureCache(msg.Settings.Cache.Enabled)
		}
		m.logger.Info("settings reloaded", "cache", msg.Settings.Cache.Enabled)
	}

	return m, nil
}

// View renders the screens side by side.
func (m *Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	panes := make([]string, 0, len(m.screens)+1)
	panes = append(panes, titleStyle.Render("SEAM")+"\n")
	row := make([]string, 0, len(m.screens))
	for i, s := range m.screens {
		row = append(row, m.renderScreen(i, s))
	}
	panes = append(panes, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	return lipgloss.JoinVertical(lipgloss.Left, panes...)
}

func (m *Model) selectNext() {
	if len(m.screens) < 2 {
		return
	}
	m.screens[m.selected].Deactivate()
	m.selected = (m.selected + 1) % len(m.screens)
	m.screens[m.selected].Activate()

	// Activation may have scheduled fresh layout-settle work.
	if surface, ok := m.screens[m.selected].Surface(); ok {
		m.adapter.NotifyLayoutSettled(surface)
	}
}

func (m *Model) resizeSurfaces() {
	if len(m.screens) == 0 {
		return
	}
	paneWidth := m.width/len(m.screens) - surfaceBorderWidth
	if paneWidth < 1 {
		paneWidth = 1
	}
	for _, s := range m.screens {
		if surface, ok := s.Surface(); ok {
			surface.SetSize(paneWidth, m.height-surfaceBorderWidth)
		}
	}
}

func (m *Model) renderScreen(index int, s *Screen) string {
	v, ok := s.Binder().View("")
	if !ok {
		return ""
	}
	frame, ok := v.(*teaview.Frame)
	if !ok {
		return ""
	}
	rendered := frame.Render()
	if index == m.selected {
		return lipgloss.NewStyle().Foreground(style.Teal).Render(rendered)
	}
	return rendered
}

func statusLines(s *Screen) []string {
	state := "inactive"
	if s.IsActive() {
		state = "active"
	}
	return []string{
		fmt.Sprintf("%s %s", style.Dot, state),
		fmt.Sprintf("loaded: %d", s.loadedCount),
		fmt.Sprintf("ready: %d", s.readyCount),
	}
}
