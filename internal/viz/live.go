package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/poggle/internal/board"
	"github.com/san-kum/poggle/internal/clock"
	"github.com/san-kum/poggle/internal/config"
	"github.com/san-kum/poggle/internal/geom"
	"github.com/san-kum/poggle/internal/metrics"
	"github.com/san-kum/poggle/internal/pinball"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 600
	minWidth        = 20
	minHeight       = 8
)

type TickMsg time.Time

// Model hosts a board in the terminal. The board is stepped on the
// bubbletea goroutine only.
type Model struct {
	board      *board.Board
	clock      *clock.Clock
	name       string
	launch     float32
	theme      Theme
	canvas     *Canvas
	running    bool
	showEnergy bool
	showHelp   bool

	dragging  bool
	dragStart geom.Vec
	dragEnd   geom.Vec

	energyHistory []float64
	poolHistory   []float64
}

// NewModel wraps b, pacing it with the rates in cfg.
func NewModel(b *board.Board, cfg *config.Config, name string) (Model, error) {
	clk, err := clock.New(cfg.UpdatesPerSecond, cfg.FramesPerSecond)
	if err != nil {
		return Model{}, err
	}
	return Model{
		board:         b,
		clock:         clk,
		name:          name,
		launch:        cfg.LaunchScale,
		theme:         ThemeClassic,
		canvas:        NewCanvas(width, height),
		running:       true,
		energyHistory: make([]float64, 0, historyCapacity),
		poolHistory:   make([]float64, 0, historyCapacity),
	}, nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.clock.FrameDelta(), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.board.Reset()
			m.energyHistory = m.energyHistory[:0]
			m.poolHistory = m.poolHistory[:0]
		case "c":
			m.board.Clear()
		case "e":
			m.showEnergy = !m.showEnergy
		case "s":
			p := m.board.Params()
			m.board.Shoot(geom.Vec{X: p.Width / 2, Y: 2 * p.BallRadius}, geom.Vec{})
		case "t":
			m.theme = m.theme.next()
		case "?":
			m.showHelp = !m.showHelp
		}
		m.draw()
	case tea.MouseMsg:
		m.mouse(msg)
		m.draw()
	case tea.WindowSizeMsg:
		w := msg.Width - statsWidth - 6
		h := msg.Height - 3
		if w < minWidth {
			w = minWidth
		}
		if h < minHeight {
			h = minHeight
		}
		m.canvas = NewCanvas(w, h)
		m.draw()
	case TickMsg:
		ticks, render := m.clock.Advance(time.Time(msg))
		if m.running {
			for i := 0; i < ticks; i++ {
				m.board.Step(m.clock.UpdateDelta())
			}
		}
		if render {
			m.record()
			m.draw()
		}
		return m, m.tick()
	}
	return m, nil
}

// mouse turns a left-button drag into a shot: the ball starts where the
// drag began and flies opposite to the drag.
func (m *Model) mouse(msg tea.MouseMsg) {
	if m.showHelp {
		return
	}
	pos, inside := m.toWorld(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !inside {
			return
		}
		m.dragging = true
		m.dragStart, m.dragEnd = pos, pos
	case tea.MouseActionMotion:
		if m.dragging && inside {
			m.dragEnd = pos
		}
	case tea.MouseActionRelease:
		if !m.dragging {
			return
		}
		if inside {
			m.dragEnd = pos
		}
		m.dragging = false
		m.board.Shoot(m.dragStart, m.dragStart.Sub(m.dragEnd).Mul(m.launch))
	}
}

// toWorld maps a terminal cell to the centre of the playfield area it
// covers.
func (m Model) toWorld(x, y int) (geom.Vec, bool) {
	col := x - canvasStyle.GetPaddingLeft()
	row := y - canvasStyle.GetPaddingTop()
	if col < 0 || row < 0 || col >= m.canvas.Width || row >= m.canvas.Height {
		return geom.Vec{}, false
	}
	p := m.board.Params()
	return geom.Vec{
		X: (float32(col) + 0.5) / float32(m.canvas.Width) * p.Width,
		Y: (float32(row) + 0.5) / float32(m.canvas.Height) * p.Height,
	}, true
}

// toDots maps a playfield point to canvas sub-pixels.
func (m Model) toDots(v geom.Vec) (int, int) {
	p := m.board.Params()
	return int(v.X / p.Width * float32(m.canvas.SubWidth())), int(v.Y / p.Height * float32(m.canvas.SubHeight()))
}

func (m Model) scale(r float32) int {
	return int(r/m.board.Params().Width*float32(m.canvas.SubWidth()) + 0.5)
}

func (m *Model) record() {
	snap := m.board.Snapshot()
	energy := 0.0
	for _, b := range snap.Balls {
		energy += metrics.Total(b, snap.Params)
	}
	m.energyHistory = appendCapped(m.energyHistory, energy)
	m.poolHistory = appendCapped(m.poolHistory, float64(len(snap.Balls)))
}

func appendCapped(h []float64, v float64) []float64 {
	if len(h) >= historyCapacity {
		copy(h, h[1:])
		h = h[:len(h)-1]
	}
	return append(h, v)
}

func pegPen(p pinball.Peg) Pen {
	if p.IsHit {
		return PenHit
	}
	switch p.Type {
	case pinball.Target:
		return PenTarget
	case pinball.PointBoost:
		return PenPointBoost
	case pinball.PowerUp:
		return PenPowerUp
	}
	return PenStandard
}

func (m *Model) draw() {
	snap := m.board.Snapshot()
	m.canvas.Clear()

	for _, p := range snap.Pegs {
		x, y := m.toDots(p.Pos())
		m.canvas.SetPen(pegPen(p))
		m.canvas.FillCircle(x, y, m.scale(p.Body.Radius()))
	}

	r := m.scale(snap.Params.BallRadius)
	for i, b := range snap.Balls {
		x, y := m.toDots(b.Pos)
		if snap.Anomalous[i] {
			m.canvas.SetPen(PenAnomaly)
		} else {
			m.canvas.SetPen(PenBall)
		}
		m.canvas.DrawCircle(x, y, r)
	}

	if m.dragging {
		x0, y0 := m.toDots(m.dragStart)
		x1, y1 := m.toDots(m.dragEnd)
		m.canvas.SetPen(PenGuide)
		m.canvas.DrawLine(x0, y0, x1, y1)
	}
}

func (m Model) View() string {
	snap := m.board.Snapshot()
	stats := m.board.Stats()

	canvasView := canvasStyle.Render(m.canvas.Render(m.theme.Pens()))

	var s strings.Builder
	s.WriteString(headerStyle.Foreground(m.theme.Accent).Render(strings.ToUpper(m.name)) + "\n")

	status := StatusRunning.Render("RUNNING")
	if !m.running {
		status = StatusPaused.Render("PAUSED")
	}
	s.WriteString(status + "\n\n")

	if m.showEnergy && len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Energy"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	anomalies := 0
	for _, a := range snap.Anomalous {
		if a {
			anomalies++
		}
	}

	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Time", fmt.Sprintf("%.2fs", snap.Elapsed.Seconds()))
	row("Tick", fmt.Sprintf("%d", snap.Tick))
	row("Balls", fmt.Sprintf("%d  %s", len(snap.Balls), Sparkline(m.poolHistory, 12)))
	hitRatio := 0.0
	if len(snap.Pegs) > 0 {
		hitRatio = float64(snap.HitCount()) / float64(len(snap.Pegs))
	}
	row("Hit", fmt.Sprintf("%d/%d ", snap.HitCount(), len(snap.Pegs))+ProgressBar(hitRatio, 10))
	row("Launched", fmt.Sprintf("%d", stats.Launched))
	row("Bounces", fmt.Sprintf("%d (+%d wall)", stats.Bounces, stats.WallBounces))
	row("Rounds", fmt.Sprintf("%d", stats.Rounds))
	if anomalies > 0 {
		s.WriteString(labelStyle.Render("Anomalies") + StatusAlert.Render(fmt.Sprintf("%d", anomalies)) + "\n")
	} else {
		row("Anomalies", "0")
	}
	row("Physics", fmt.Sprintf("%s / %s", snap.Params.Reflection, snap.Params.Scan))
	row("Theme", m.theme.Name)

	s.WriteString(helpStyle.Render("\n─────────────────────\nDrag:Shoot S:Drop SP:Pause\nR:Reset C:Clear E:Energy\nT:Theme ?:Help Q:Quit"))
	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Drag     - Aim and shoot a ball     ║
║  S        - Drop a ball from the top ║
║  Space    - Pause/Resume             ║
║  R        - Reset board              ║
║  C        - Clear balls              ║
║  E        - Toggle energy chart      ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// Run hosts m full screen with mouse reporting.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
