package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/poggle/internal/board"
	"github.com/san-kum/poggle/internal/config"
	"github.com/san-kum/poggle/internal/layout"
)

const (
	stateMenu = iota
	stateSim
)

// Setup is called on every board the menu builds, before it is hosted.
type Setup func(*board.Board)

// Menu lets the user pick a layout, then hosts it in a Model.
type Menu struct {
	state         int
	cfg           *config.Config
	layouts       []string
	cursor        int
	setup         Setup
	width, height int
	live          Model
	err           error
}

func NewMenu(cfg *config.Config, setup Setup) *Menu {
	names := layout.Names()
	if len(cfg.Pegs) > 0 {
		names = append(names, config.CustomLayout)
	}
	m := &Menu{state: stateMenu, cfg: cfg, layouts: names, setup: setup}
	for i, name := range names {
		if name == cfg.Layout {
			m.cursor = i
		}
	}
	return m
}

func (m Menu) Init() tea.Cmd { return nil }

func (m Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
	}
	if m.state == stateSim {
		live, cmd := m.live.Update(msg)
		m.live = live.(Model)
		return m, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.layouts)-1 {
			m.cursor++
		}
	case "enter", " ":
		cmd, err := m.start(m.layouts[m.cursor])
		if err != nil {
			m.err = err
			return m, nil
		}
		return m, cmd
	}
	return m, nil
}

func (m *Menu) start(name string) (tea.Cmd, error) {
	cfg := *m.cfg
	cfg.Layout = name

	pegs, err := cfg.BuildPegs()
	if err != nil {
		return nil, err
	}
	params, err := cfg.Params()
	if err != nil {
		return nil, err
	}
	b, err := board.New(pegs, params)
	if err != nil {
		return nil, err
	}
	if m.setup != nil {
		m.setup(b)
	}

	live, err := NewModel(b, &cfg, name)
	if err != nil {
		return nil, err
	}
	if m.width > 0 && m.height > 0 {
		sized, _ := live.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		live = sized.(Model)
	}
	m.live, m.state, m.err = live, stateSim, nil
	return live.Init(), nil
}

func (m Menu) View() string {
	if m.state == stateSim {
		return m.live.View()
	}

	var b strings.Builder
	h, sub := lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true), lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	key := lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
	b.WriteString("\n\n    " + h.Render("POGGLE") + "\n    " + sub.Render("pegs, gravity and a lot of bouncing") + "\n    " + sub.Render("─────────────────────────") + "\n\n")
	for i, name := range m.layouts {
		desc := layout.Describe(name)
		if name == config.CustomLayout {
			desc = fmt.Sprintf("%d pegs from the config file", len(m.cfg.Pegs))
		}
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true).Render("▸"), lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true).Render(fmt.Sprintf("%-10s", name)), lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff")).Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", lipgloss.NewStyle().Foreground(lipgloss.Color("#555566")).Render(fmt.Sprintf("  %-10s", name)), lipgloss.NewStyle().Foreground(lipgloss.Color("#444455")).Render(desc)))
		}
	}
	if m.err != nil {
		b.WriteString("\n    " + StatusAlert.Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n    " + key.Render("j/k") + sub.Render(" navigate  ") + key.Render("enter") + sub.Render(" play  ") + key.Render("q") + sub.Render(" quit") + "\n")
	return b.String()
}

// RunMenu starts the layout picker full screen.
func RunMenu(cfg *config.Config, setup Setup) error {
	_, err := tea.NewProgram(NewMenu(cfg, setup), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
