package board

import (
	"time"

	"github.com/san-kum/poggle/internal/collision"
	"github.com/san-kum/poggle/internal/geom"
	"github.com/san-kum/poggle/internal/pinball"
)

// Step advances the board by exactly dt. The caller is responsible for a
// fixed cadence.
func (b *Board) Step(dt time.Duration) {
	b.advance(float32(dt.Seconds()), dt)
}

// StepSeconds is Step for callers that already hold dt in seconds.
func (b *Board) StepSeconds(dt float32) {
	b.advance(dt, time.Duration(float64(dt)*float64(time.Second)))
}

func (b *Board) advance(dt float32, d time.Duration) {
	p := b.params
	floor := p.Height + p.BallRadius
	half := p.BallRadius / 2

	kept := b.balls[:0]
	for i := range b.balls {
		ball := b.balls[i]

		if ball.Pos.Y > floor {
			b.stats.Drained++
			continue
		}

		// Semi-implicit Euler.
		ball.Velocity = ball.Velocity.Add(p.Gravity.Mul(dt))
		ball.Pos = ball.Pos.Add(ball.Velocity.Mul(dt))

		if idx, hit, ok := b.scan(ball, dt); ok {
			collision.Resolve(&ball, &b.pegs[idx], hit, dt, b.response)
			b.stats.Bounces++
		}

		// Reflective side walls, no position clamp.
		if ball.Pos.X < half || ball.Pos.X > p.Width-half {
			ball.Velocity.X = -ball.Velocity.X
			b.stats.WallBounces++
		}

		kept = append(kept, ball)
	}
	for i := len(kept); i < len(b.balls); i++ {
		b.balls[i] = pinball.Ball{}
	}
	b.balls = kept

	if len(b.balls) == 0 && b.resetPegs() {
		b.stats.Rounds++
	}

	b.tick++
	b.elapsed += d
	b.notify()
}

// scan picks the peg the ball bounces off this tick, if any.
func (b *Board) scan(ball pinball.Ball, dt float32) (int, geom.Vec, bool) {
	r := b.params.BallRadius

	if b.params.Scan == pinball.ScanEarliest {
		best := -1
		var bestHit collision.Impact
		for i := range b.pegs {
			hit, ok := collision.Sweep(ball.Pos, ball.Velocity, r, b.pegs[i].Body, dt)
			if ok && (best < 0 || hit.Distance < bestHit.Distance) {
				best, bestHit = i, hit
			}
		}
		return best, bestHit.Point, best >= 0
	}

	for i := range b.pegs {
		if hit, ok := collision.Predict(ball.Pos, ball.Velocity, r, b.pegs[i].Body, dt); ok {
			return i, hit, true
		}
	}
	return -1, geom.Vec{}, false
}

func (b *Board) notify() {
	if len(b.metrics) == 0 && len(b.observers) == 0 {
		return
	}
	snap := b.Snapshot()
	for _, m := range b.metrics {
		m.Observe(snap)
	}
	for _, o := range b.observers {
		o.OnStep(snap)
	}
}
