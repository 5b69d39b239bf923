// Package gui hosts a board in a raylib window.
package gui

import (
	"fmt"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/poggle/internal/board"
	"github.com/san-kum/poggle/internal/clock"
	"github.com/san-kum/poggle/internal/config"
	"github.com/san-kum/poggle/internal/geom"
	"github.com/san-kum/poggle/internal/metrics"
)

const maxTelemetry = 400

type App struct {
	Board      *board.Board
	Clock      *clock.Clock
	Name       string
	Launch     float32
	Running    bool
	ShowEnergy bool

	// Telemetry is total ball energy per frame.
	Telemetry []float64

	dragging  bool
	dragStart geom.Vec
	dragEnd   geom.Vec
	fps       int32
}

func NewApp(b *board.Board, cfg *config.Config, name string) (*App, error) {
	clk, err := clock.New(cfg.UpdatesPerSecond, cfg.FramesPerSecond)
	if err != nil {
		return nil, err
	}
	return &App{
		Board:      b,
		Clock:      clk,
		Name:       name,
		Launch:     cfg.LaunchScale,
		Running:    true,
		ShowEnergy: true,
		Telemetry:  make([]float64, 0, maxTelemetry),
		fps:        int32(cfg.FramesPerSecond),
	}, nil
}

// initWindow opens a window the size of the playfield so screen pixels are
// board units.
func (a *App) initWindow() {
	p := a.Board.Params()
	rl.InitWindow(int32(p.Width), int32(p.Height), "poggle :: "+a.Name)
	rl.SetTargetFPS(a.fps)
	rl.SetExitKey(0)
}

// Run opens the window and blocks until it is closed.
func Run(b *board.Board, cfg *config.Config, name string) error {
	app, err := NewApp(b, cfg, name)
	if err != nil {
		return err
	}
	app.initWindow()
	defer rl.CloseWindow()
	log.Printf("[GUI] window open, layout=%s pegs=%d", name, b.NumPegs())
	app.RunLoop()
	return nil
}

// RunLoop draws once per raylib frame and runs however many fixed ticks the
// clock says are due in between.
func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if a.Update() {
			return
		}
		ticks, _ := a.Clock.Advance(time.Now())
		if a.Running {
			for i := 0; i < ticks; i++ {
				a.Board.Step(a.Clock.UpdateDelta())
			}
		}
		a.record()
		a.Draw()
	}
}

// Update handles input. It reports true when the user asked to quit.
func (a *App) Update() bool {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		return true
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.Board.Reset()
		a.Telemetry = a.Telemetry[:0]
	}
	if rl.IsKeyPressed(rl.KeyC) {
		a.Board.Clear()
	}
	if rl.IsKeyPressed(rl.KeyE) {
		a.ShowEnergy = !a.ShowEnergy
	}
	if rl.IsKeyPressed(rl.KeyS) {
		p := a.Board.Params()
		a.Board.Shoot(geom.Vec{X: p.Width / 2, Y: 2 * p.BallRadius}, geom.Vec{})
	}

	m := rl.GetMousePosition()
	mouse := geom.Vec{X: m.X, Y: m.Y}
	switch {
	case rl.IsMouseButtonPressed(rl.MouseLeftButton):
		a.dragging = true
		a.dragStart, a.dragEnd = mouse, mouse
	case a.dragging && rl.IsMouseButtonReleased(rl.MouseLeftButton):
		a.dragging = false
		a.dragEnd = mouse
		a.Board.Shoot(a.dragStart, a.dragStart.Sub(a.dragEnd).Mul(a.Launch))
	case a.dragging:
		a.dragEnd = mouse
	}
	return false
}

func (a *App) record() {
	snap := a.Board.Snapshot()
	energy := 0.0
	for _, b := range snap.Balls {
		energy += metrics.Total(b, snap.Params)
	}
	if len(a.Telemetry) >= maxTelemetry {
		copy(a.Telemetry, a.Telemetry[1:])
		a.Telemetry = a.Telemetry[:len(a.Telemetry)-1]
	}
	a.Telemetry = append(a.Telemetry, energy)
}

func (a *App) Draw() {
	snap := a.Board.Snapshot()

	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	drawPegs(snap)
	drawBalls(snap)
	if a.dragging {
		drawGuide(a.dragStart, a.dragEnd)
	}
	a.DrawHUD()

	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	p := a.Board.Params()
	stats := a.Board.Stats()
	w, h := int32(p.Width), int32(p.Height)

	rl.DrawText("poggle", 30, 30, 24, ColSelect)
	rl.DrawText(":: "+a.Name, 130, 36, 16, ColText)

	status := "RUNNING"
	col := ColSelect
	if !a.Running {
		status = "PAUSED"
		col = ColTextDim
	}
	rl.DrawText(status, w-130, 30, 16, col)

	snap := a.Board.Snapshot()
	rl.DrawText(fmt.Sprintf("balls %d  hit %d/%d  bounces %d  rounds %d",
		len(snap.Balls), snap.HitCount(), len(snap.Pegs), stats.Bounces, stats.Rounds), 30, 60, 14, ColText)

	if a.ShowEnergy {
		a.DrawTelemetry(30, h-140, 400, 60)
	}

	rl.DrawText("[DRAG] SHOOT  [S] DROP  [SPACE] PAUSE  [R] RESET  [C] CLEAR  [E] ENERGY  [Q] QUIT", w-720, h-40, 14, ColTextDim)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), 30, h-40, 14, ColTextDim)
}

func (a *App) DrawTelemetry(x, y, width, height int32) {
	if len(a.Telemetry) < 2 {
		return
	}

	minVal, maxVal := a.Telemetry[0], a.Telemetry[0]
	for _, v := range a.Telemetry {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	points := make([]rl.Vector2, len(a.Telemetry))
	for i, val := range a.Telemetry {
		px := float32(x) + (float32(i)/float32(len(a.Telemetry)))*float32(width)
		norm := (val - minVal) / (maxVal - minVal)
		py := float32(y+height) - float32(norm)*float32(height)
		points[i] = rl.NewVector2(px, py)
	}

	rl.DrawLineStrip(points, ColAccent)
	rl.DrawText(fmt.Sprintf("E: %.2e", a.Telemetry[len(a.Telemetry)-1]), x+width+10, y+height-10, 14, ColText)
}
