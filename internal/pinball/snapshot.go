package pinball

import "time"

// Snapshot is a settled, read-only copy of a board after a tick. Renderers
// and metrics consume it; mutating it has no effect on the board.
type Snapshot struct {
	Tick    uint64
	Elapsed time.Duration
	Params  Params
	Balls   []Ball
	Pegs    []Peg
	// Anomalous[i] is set when Balls[i] has more total energy than it was
	// launched with.
	Anomalous []bool
}

// HitCount returns the number of pegs currently marked hit.
func (s Snapshot) HitCount() int {
	n := 0
	for _, p := range s.Pegs {
		if p.IsHit {
			n++
		}
	}
	return n
}

type Metric interface {
	Name() string
	Observe(s Snapshot)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(s Snapshot)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Snapshot)

func (f ObserverFunc) OnStep(s Snapshot) { f(s) }
