package board

import (
	"fmt"
	"time"

	"github.com/san-kum/poggle/internal/collision"
	"github.com/san-kum/poggle/internal/geom"
	"github.com/san-kum/poggle/internal/metrics"
	"github.com/san-kum/poggle/internal/pinball"
)

// Stats are running counters for the lifetime of a board.
type Stats struct {
	Launched    int `json:"launched"`
	Drained     int `json:"drained"`
	Bounces     int `json:"bounces"`
	WallBounces int `json:"wall_bounces"`
	// Rounds counts the times the pool emptied with at least one peg hit.
	Rounds int `json:"rounds"`
}

type Board struct {
	params    pinball.Params
	response  collision.Response
	tolerance float64
	balls     []pinball.Ball
	pegs      []pinball.Peg
	tick      uint64
	elapsed   time.Duration
	stats     Stats
	metrics   []pinball.Metric
	observers []pinball.Observer
}

// New builds a board over a copy of pegs with every hit flag cleared. Pegs
// must be circles with a positive radius.
func New(pegs []pinball.Peg, params pinball.Params) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	field := make([]pinball.Peg, len(pegs))
	for i, p := range pegs {
		if r := p.Body.Radius(); r <= 0 {
			return nil, fmt.Errorf("%w: peg %d has radius %g", pinball.ErrInvalidParams, i, r)
		}
		p.IsHit = false
		field[i] = p
	}

	return &Board{
		params:    params,
		response:  collision.ResponseFor(params),
		tolerance: metrics.DefaultTolerance,
		pegs:      field,
		metrics:   make([]pinball.Metric, 0),
		observers: make([]pinball.Observer, 0),
	}, nil
}

func (b *Board) AddMetric(m pinball.Metric)     { b.metrics = append(b.metrics, m) }
func (b *Board) AddObserver(o pinball.Observer) { b.observers = append(b.observers, o) }

// SetAnomalyTolerance changes the relative energy gain tolerated before a
// ball is flagged in snapshots.
func (b *Board) SetAnomalyTolerance(tol float64) { b.tolerance = tol }

func (b *Board) Params() pinball.Params { return b.params }
func (b *Board) Stats() Stats           { return b.stats }
func (b *Board) Tick() uint64           { return b.tick }
func (b *Board) Elapsed() time.Duration { return b.elapsed }
func (b *Board) NumBalls() int          { return len(b.balls) }
func (b *Board) NumPegs() int           { return len(b.pegs) }

// Shoot adds a ball at origin. Neither argument is validated.
func (b *Board) Shoot(origin, velocity geom.Vec) {
	b.balls = append(b.balls, pinball.NewBall(origin, velocity))
	b.stats.Launched++
}

// Clear drops every ball in flight. Peg hit flags reset on the next Step.
func (b *Board) Clear() {
	b.balls = b.balls[:0]
}

// Reset starts a fresh round: no balls, no hit pegs, counters kept.
func (b *Board) Reset() {
	b.Clear()
	b.resetPegs()
}

// Metrics returns the current value of every registered metric by name.
func (b *Board) Metrics() map[string]float64 {
	out := make(map[string]float64, len(b.metrics))
	for _, m := range b.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

// Snapshot copies the settled board state.
func (b *Board) Snapshot() pinball.Snapshot {
	balls := make([]pinball.Ball, len(b.balls))
	copy(balls, b.balls)
	pegs := make([]pinball.Peg, len(b.pegs))
	copy(pegs, b.pegs)

	flags := make([]bool, len(balls))
	for i, ball := range balls {
		flags[i] = metrics.Anomalous(ball, b.params, b.tolerance)
	}

	return pinball.Snapshot{
		Tick:      b.tick,
		Elapsed:   b.elapsed,
		Params:    b.params,
		Balls:     balls,
		Pegs:      pegs,
		Anomalous: flags,
	}
}

func (b *Board) resetPegs() bool {
	hit := false
	for i := range b.pegs {
		if b.pegs[i].IsHit {
			hit = true
		}
		b.pegs[i].IsHit = false
	}
	return hit
}
