package board

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/san-kum/poggle/internal/geom"
	"github.com/san-kum/poggle/internal/metrics"
)

// Shot is a scheduled launch for headless runs.
type Shot struct {
	Tick     uint64
	Origin   geom.Vec
	Velocity geom.Vec
}

// Volley spreads count shots from origin, one every `every` ticks, with
// launch angles drawn uniformly from angle ± spread/2 (radians, 0 = +x,
// pi/2 = straight down).
func Volley(origin geom.Vec, speed, angle, spread float32, count, every int, seed int64) []Shot {
	rng := rand.New(rand.NewSource(seed))
	shots := make([]Shot, count)
	for i := range shots {
		a := angle + (rng.Float32()-0.5)*spread
		shots[i] = Shot{
			Tick:     uint64(i * every),
			Origin:   origin,
			Velocity: geom.NewPolar(a, speed).Point(),
		}
	}
	return shots
}

type RunConfig struct {
	Ticks int
	Dt    time.Duration
	Shots []Shot
	// StopWhenEmpty ends the run once every shot is fired and the pool drains.
	StopWhenEmpty bool
}

// Sample is one row of a run trace.
type Sample struct {
	Tick      uint64  `json:"tick"`
	Time      float64 `json:"time"`
	Balls     int     `json:"balls"`
	Hits      int     `json:"hits"`
	Energy    float64 `json:"energy"`
	Anomalies int     `json:"anomalies"`
}

type Result struct {
	Samples    []Sample           `json:"samples"`
	Stats      Stats              `json:"stats"`
	Metrics    map[string]float64 `json:"metrics"`
	TicksTaken int                `json:"ticks"`
}

func (c RunConfig) validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %v", c.Dt)
	}
	if c.Ticks <= 0 {
		return fmt.Errorf("ticks must be positive, got %d", c.Ticks)
	}
	return nil
}

// Run steps the board headlessly, firing scheduled shots and sampling one
// trace row per tick.
func (b *Board) Run(ctx context.Context, cfg RunConfig) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	shots := make([]Shot, len(cfg.Shots))
	copy(shots, cfg.Shots)
	sort.SliceStable(shots, func(i, j int) bool { return shots[i].Tick < shots[j].Tick })

	for _, m := range b.metrics {
		m.Reset()
	}

	result := &Result{
		Samples: make([]Sample, 0, cfg.Ticks),
		Metrics: make(map[string]float64),
	}

	start := b.tick
	next := 0
	for i := 0; i < cfg.Ticks; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		for next < len(shots) && shots[next].Tick <= b.tick-start {
			b.Shoot(shots[next].Origin, shots[next].Velocity)
			next++
		}

		b.Step(cfg.Dt)
		result.TicksTaken++
		result.Samples = append(result.Samples, b.sample())

		if cfg.StopWhenEmpty && next == len(shots) && len(b.balls) == 0 {
			break
		}
	}

	result.Stats = b.stats
	for k, v := range b.Metrics() {
		result.Metrics[k] = v
	}
	return result, nil
}

func (b *Board) sample() Sample {
	s := Sample{
		Tick:  b.tick,
		Time:  b.elapsed.Seconds(),
		Balls: len(b.balls),
	}
	for _, p := range b.pegs {
		if p.IsHit {
			s.Hits++
		}
	}
	for _, ball := range b.balls {
		s.Energy += metrics.Total(ball, b.params)
		if metrics.Anomalous(ball, b.params, b.tolerance) {
			s.Anomalies++
		}
	}
	return s
}
