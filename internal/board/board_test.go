package board_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/poggle/internal/board"
	"github.com/san-kum/poggle/internal/geom"
	"github.com/san-kum/poggle/internal/pinball"
	"github.com/san-kum/poggle/internal/shape"
)

const tick = time.Second / 60

func weightless() pinball.Params {
	p := pinball.DefaultParams()
	p.Gravity = geom.Vec{}
	return p
}

func hitFlags(b *board.Board) []bool {
	snap := b.Snapshot()
	flags := make([]bool, len(snap.Pegs))
	for i, p := range snap.Pegs {
		flags[i] = p.IsHit
	}
	return flags
}

var _ = Describe("Board", func() {
	Describe("New", func() {
		It("rejects invalid parameters", func() {
			p := pinball.DefaultParams()
			p.Elasticity = 1.5
			_, err := board.New(nil, p)
			Expect(err).To(MatchError(pinball.ErrInvalidParams))
		})

		It("rejects pegs without a radius", func() {
			pegs := []pinball.Peg{pinball.NewPeg(geom.Vec{X: 10}, 0, pinball.Standard)}
			_, err := board.New(pegs, pinball.DefaultParams())
			Expect(err).To(MatchError(pinball.ErrInvalidParams))
		})

		It("fails loudly on non-circular pegs", func() {
			pegs := []pinball.Peg{{Body: shape.Body{Shape: shape.Polygon{}}}}
			Expect(func() { board.New(pegs, pinball.DefaultParams()) }).To(PanicWith(BeAssignableToTypeOf(&shape.UnsupportedError{})))
		})

		It("copies the layout and clears hit flags", func() {
			pegs := []pinball.Peg{pinball.NewPeg(geom.Vec{X: 10, Y: 10}, 5, pinball.Target)}
			pegs[0].IsHit = true

			b, err := board.New(pegs, pinball.DefaultParams())
			Expect(err).NotTo(HaveOccurred())
			Expect(hitFlags(b)).To(Equal([]bool{false}))

			pegs[0].Body.Pos = geom.Vec{X: 999}
			Expect(b.Snapshot().Pegs[0].Pos()).To(Equal(geom.Vec{X: 10, Y: 10}))
		})

		It("starts with an empty pool", func() {
			b, err := board.New(nil, pinball.DefaultParams())
			Expect(err).NotTo(HaveOccurred())
			Expect(b.NumBalls()).To(BeZero())
		})
	})

	Describe("Shoot and Snapshot", func() {
		It("appends balls and returns independent copies", func() {
			b, _ := board.New(nil, pinball.DefaultParams())
			b.Shoot(geom.Vec{X: 100, Y: 50}, geom.Vec{X: 10})
			b.Shoot(geom.Vec{X: 200, Y: 50}, geom.Vec{X: -10})

			snap := b.Snapshot()
			Expect(snap.Balls).To(HaveLen(2))
			Expect(snap.Anomalous).To(HaveLen(2))
			Expect(snap.Balls[0].Start).To(Equal(geom.Vec{X: 100, Y: 50}))

			snap.Balls[0].Pos = geom.Vec{X: -1}
			Expect(b.Snapshot().Balls[0].Pos).To(Equal(geom.Vec{X: 100, Y: 50}))
			Expect(b.Stats().Launched).To(Equal(2))
		})
	})

	Describe("Step", func() {
		var b *board.Board

		Context("ball lifecycle", func() {
			BeforeEach(func() {
				b, _ = board.New([]pinball.Peg{pinball.NewPeg(geom.Vec{X: 640, Y: 400}, 6, pinball.Standard)}, pinball.DefaultParams())
			})

			It("drops a ball below the playfield", func() {
				p := b.Params()
				b.Shoot(geom.Vec{X: 100, Y: p.Height + p.BallRadius + 1}, geom.Vec{})
				b.Step(tick)

				Expect(b.NumBalls()).To(BeZero())
				Expect(b.Stats().Drained).To(Equal(1))
			})

			It("removes a ball on the tick after it crosses the floor", func() {
				p := b.Params()
				b.Shoot(geom.Vec{X: 100, Y: p.Height + p.BallRadius - 1}, geom.Vec{Y: 600})

				b.Step(tick)
				Expect(b.Snapshot().Balls[0].Pos.Y).To(BeNumerically(">", p.Height+p.BallRadius))

				b.Step(tick)
				Expect(b.NumBalls()).To(BeZero())
			})

			It("keeps a ball inside the playfield", func() {
				b.Shoot(geom.Vec{X: 100, Y: 100}, geom.Vec{})
				b.Step(tick)
				Expect(b.NumBalls()).To(Equal(1))
				Expect(b.Snapshot().Balls[0].Velocity.Y).To(BeNumerically(">", 0))
			})
		})

		Context("side walls", func() {
			BeforeEach(func() {
				b, _ = board.New(nil, weightless())
			})

			It("flips vx at the left wall without removing the ball", func() {
				b.Shoot(geom.Vec{X: 2, Y: 100}, geom.Vec{X: -10})
				b.Step(tick)

				snap := b.Snapshot()
				Expect(snap.Balls).To(HaveLen(1))
				Expect(snap.Balls[0].Velocity.X).To(BeNumerically("==", 10))
				Expect(b.Stats().WallBounces).To(Equal(1))
			})

			It("flips vx at the right wall", func() {
				p := b.Params()
				b.Shoot(geom.Vec{X: p.Width - 1, Y: 100}, geom.Vec{X: 10})
				b.Step(tick)
				Expect(b.Snapshot().Balls[0].Velocity.X).To(BeNumerically("==", -10))
			})

			It("leaves balls between the walls alone", func() {
				b.Shoot(geom.Vec{X: 500, Y: 100}, geom.Vec{X: -10})
				b.Step(tick)
				Expect(b.Snapshot().Balls[0].Velocity.X).To(BeNumerically("==", -10))
			})
		})

		Context("peg collisions", func() {
			It("bounces a falling ball off a peg and marks it hit", func() {
				b, _ = board.New([]pinball.Peg{pinball.NewPeg(geom.Vec{X: 100, Y: 130}, 5, pinball.Standard)}, weightless())
				b.Shoot(geom.Vec{X: 100, Y: 100}, geom.Vec{Y: 600})
				b.Step(tick)

				snap := b.Snapshot()
				ball := snap.Balls[0]
				Expect(snap.Pegs[0].IsHit).To(BeTrue())
				Expect(float64(ball.Velocity.Y)).To(BeNumerically("~", -540, 1e-2))
				Expect(float64(ball.Velocity.X)).To(BeNumerically("~", 0, 1e-3))
				// Contact at 117 with 10 - 7 = 3 of travel left upwards.
				Expect(float64(ball.Pos.Y)).To(BeNumerically("~", 114, 1e-2))
				Expect(b.Stats().Bounces).To(Equal(1))
			})

			It("resolves only the first colliding peg in list order", func() {
				far := pinball.NewPeg(geom.Vec{X: 100, Y: 130}, 5, pinball.Standard)
				near := pinball.NewPeg(geom.Vec{X: 100, Y: 125}, 5, pinball.Target)
				b, _ = board.New([]pinball.Peg{far, near}, weightless())
				b.Shoot(geom.Vec{X: 100, Y: 100}, geom.Vec{Y: 600})
				b.Step(tick)

				Expect(hitFlags(b)).To(Equal([]bool{true, false}))
				Expect(b.Stats().Bounces).To(Equal(1))
			})

			It("resolves the nearest impact when scanning for the earliest", func() {
				p := weightless()
				p.Scan = pinball.ScanEarliest
				far := pinball.NewPeg(geom.Vec{X: 100, Y: 130}, 5, pinball.Standard)
				near := pinball.NewPeg(geom.Vec{X: 100, Y: 125}, 5, pinball.Target)
				b, _ = board.New([]pinball.Peg{far, near}, p)
				b.Shoot(geom.Vec{X: 100, Y: 100}, geom.Vec{Y: 600})
				b.Step(tick)

				Expect(hitFlags(b)).To(Equal([]bool{false, true}))
			})
		})

		Context("round reset", func() {
			It("clears every hit flag once the pool empties", func() {
				b, _ = board.New([]pinball.Peg{
					pinball.NewPeg(geom.Vec{X: 100, Y: 130}, 5, pinball.Standard),
					pinball.NewPeg(geom.Vec{X: 400, Y: 130}, 5, pinball.PointBoost),
				}, weightless())
				b.Shoot(geom.Vec{X: 100, Y: 100}, geom.Vec{Y: 600})
				b.Step(tick)
				Expect(hitFlags(b)).To(Equal([]bool{true, false}))

				b.Clear()
				b.Step(tick)
				Expect(hitFlags(b)).To(Equal([]bool{false, false}))
				Expect(b.Stats().Rounds).To(Equal(1))
			})

			It("keeps hit flags while any ball is in play", func() {
				b, _ = board.New([]pinball.Peg{pinball.NewPeg(geom.Vec{X: 100, Y: 130}, 5, pinball.Standard)}, weightless())
				b.Shoot(geom.Vec{X: 100, Y: 100}, geom.Vec{Y: 600})
				b.Shoot(geom.Vec{X: 600, Y: 100}, geom.Vec{})
				for i := 0; i < 5; i++ {
					b.Step(tick)
				}
				Expect(hitFlags(b)).To(Equal([]bool{true}))
			})

			It("resets flags immediately on Reset", func() {
				b, _ = board.New([]pinball.Peg{pinball.NewPeg(geom.Vec{X: 100, Y: 130}, 5, pinball.Standard)}, weightless())
				b.Shoot(geom.Vec{X: 100, Y: 100}, geom.Vec{Y: 600})
				b.Step(tick)
				b.Reset()
				Expect(b.NumBalls()).To(BeZero())
				Expect(hitFlags(b)).To(Equal([]bool{false}))
			})
		})

		It("counts ticks and simulated time", func() {
			b, _ = board.New(nil, pinball.DefaultParams())
			for i := 0; i < 60; i++ {
				b.Step(tick)
			}
			Expect(b.Tick()).To(Equal(uint64(60)))
			Expect(b.Elapsed()).To(Equal(60 * tick))
		})

		It("notifies observers with settled snapshots", func() {
			b, _ = board.New(nil, pinball.DefaultParams())
			var seen []uint64
			b.AddObserver(pinball.ObserverFunc(func(s pinball.Snapshot) {
				seen = append(seen, s.Tick)
			}))
			b.Step(tick)
			b.Step(tick)
			Expect(seen).To(Equal([]uint64{1, 2}))
		})
	})
})
