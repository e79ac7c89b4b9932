package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"marquee/internal/frame"
)

// ModelConfig wires the frame stream into the UI.
type ModelConfig struct {
	Frames    <-chan frame.Frame
	ThemeName string
	// Cancel is called once when the user asks to quit.
	Cancel context.CancelFunc
}

// Model shows whatever frame the animation driver produced last.
type Model struct {
	frames       <-chan frame.Frame
	cancel       context.CancelFunc
	theme        Theme
	keys         keyMap
	current      frame.Frame
	windowWidth  int
	windowHeight int
	cancelled    bool
	closed       bool
}

type keyMap struct {
	Quit  key.Binding
	Theme key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q", "esc"),
			key.WithHelp("q", "quit"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "next theme"),
		),
	}
}

type frameMsg frame.Frame
type streamClosedMsg struct{}

// NewModel returns a configured Bubble Tea model.
func NewModel(cfg ModelConfig) Model {
	cancel := cfg.Cancel
	if cancel == nil {
		cancel = func() {}
	}
	return Model{
		frames: cfg.Frames,
		cancel: cancel,
		theme:  ThemeByName(cfg.ThemeName),
		keys:   defaultKeys(),
	}
}

func (m Model) Init() tea.Cmd {
	return m.listen()
}

func (m Model) listen() tea.Cmd {
	if m.frames == nil {
		return nil
	}
	return func() tea.Msg {
		f, ok := <-m.frames
		if !ok {
			return streamClosedMsg{}
		}
		return frameMsg(f)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			if !m.cancelled {
				m.cancelled = true
				m.cancel()
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Theme):
			m.theme = ThemeByName(nextTheme(m.theme.Name))
		}
	case frameMsg:
		m.current = frame.Frame(msg)
		return m, m.listen()
	case streamClosedMsg:
		m.closed = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	if len(m.current.Rows) == 0 {
		return ""
	}
	lines := make([]string, len(m.current.Rows))
	for i, row := range m.current.Rows {
		style := m.theme.Canvas.Foreground(lipgloss.Color(row.Color.Hex()))
		lines[i] = style.Render(row.Text)
	}
	return m.constrainToWindow(strings.Join(lines, "\n"))
}

// constrainToWindow drops rows that a resize made taller than the window.
func (m Model) constrainToWindow(view string) string {
	if m.windowHeight <= 0 {
		return view
	}
	lines := strings.Split(view, "\n")
	if len(lines) > m.windowHeight {
		lines = lines[:m.windowHeight]
	}
	return strings.Join(lines, "\n")
}

// Cancelled reports whether the user quit before the animation finished.
func (m Model) Cancelled() bool {
	return m.cancelled
}
