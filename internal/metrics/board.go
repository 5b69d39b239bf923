package metrics

import "github.com/san-kum/poggle/internal/pinball"

// HitRatio is the largest fraction of pegs hit at once during a round.
type HitRatio struct {
	name string
	max  float64
}

func NewHitRatio() *HitRatio {
	return &HitRatio{name: "hit_ratio"}
}

func (h *HitRatio) Name() string { return h.name }

func (h *HitRatio) Observe(s pinball.Snapshot) {
	if len(s.Pegs) == 0 {
		return
	}
	r := float64(s.HitCount()) / float64(len(s.Pegs))
	if r > h.max {
		h.max = r
	}
}

func (h *HitRatio) Value() float64 { return h.max }
func (h *HitRatio) Reset()         { h.max = 0 }

// PoolSize is the mean number of balls in play per observed tick.
type PoolSize struct {
	name    string
	total   int
	samples int
}

func NewPoolSize() *PoolSize {
	return &PoolSize{name: "mean_pool"}
}

func (p *PoolSize) Name() string { return p.name }

func (p *PoolSize) Observe(s pinball.Snapshot) {
	p.total += len(s.Balls)
	p.samples++
}

func (p *PoolSize) Value() float64 {
	if p.samples == 0 {
		return 0
	}
	return float64(p.total) / float64(p.samples)
}

func (p *PoolSize) Reset() {
	p.total = 0
	p.samples = 0
}

// Defaults is the metric set the CLI reports for a run.
func Defaults() []pinball.Metric {
	return []pinball.Metric{
		NewEnergyDrift(),
		NewAnomalyCount(),
		NewHitRatio(),
		NewPoolSize(),
	}
}
