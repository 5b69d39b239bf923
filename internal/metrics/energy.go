package metrics

import (
	"math"

	"github.com/san-kum/poggle/internal/geom"
	"github.com/san-kum/poggle/internal/pinball"
)

// DefaultTolerance is the relative energy gain over launch energy that is
// attributed to float rounding rather than an anomaly.
const DefaultTolerance = 1e-4

// Kinetic is the per-unit-mass kinetic energy |v|^2 / 2.
func Kinetic(v geom.Vec) float64 {
	return v.LengthSquared() / 2
}

// Potential is the per-unit-mass potential energy of a ball at pos,
// measured from the bottom of the playfield.
func Potential(pos geom.Vec, p pinball.Params) float64 {
	return float64(p.Height-pos.Y) * float64(p.Gravity.Y)
}

func Total(b pinball.Ball, p pinball.Params) float64 {
	return Kinetic(b.Velocity) + Potential(b.Pos, p)
}

// LaunchTotal is the total energy the ball had when it was shot.
func LaunchTotal(b pinball.Ball, p pinball.Params) float64 {
	return Kinetic(b.Launch) + Potential(b.Start, p)
}

// Anomalous reports whether b carries more energy than it was launched
// with, beyond a relative tolerance.
func Anomalous(b pinball.Ball, p pinball.Params, tolerance float64) bool {
	launch := LaunchTotal(b, p)
	return Total(b, p) > launch+tolerance*math.Max(math.Abs(launch), 1)
}

// Gain is the relative excess of current over launch energy; negative when
// the ball has lost energy.
func Gain(b pinball.Ball, p pinball.Params) float64 {
	launch := LaunchTotal(b, p)
	if launch == 0 {
		return 0
	}
	return (Total(b, p) - launch) / math.Abs(launch)
}

// EnergyDrift tracks the largest relative energy gain seen on any ball.
type EnergyDrift struct {
	name     string
	maxDrift float64
	samples  int
}

func NewEnergyDrift() *EnergyDrift {
	return &EnergyDrift{name: "energy_drift"}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(s pinball.Snapshot) {
	for _, b := range s.Balls {
		g := Gain(b, s.Params)
		if e.samples == 0 || g > e.maxDrift {
			e.maxDrift = g
		}
		e.samples++
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.maxDrift = 0
	e.samples = 0
}

// AnomalyCount counts ball-ticks flagged as energy anomalies.
type AnomalyCount struct {
	name  string
	count int
}

func NewAnomalyCount() *AnomalyCount {
	return &AnomalyCount{name: "anomalies"}
}

func (a *AnomalyCount) Name() string { return a.name }

func (a *AnomalyCount) Observe(s pinball.Snapshot) {
	for _, flagged := range s.Anomalous {
		if flagged {
			a.count++
		}
	}
}

func (a *AnomalyCount) Value() float64 { return float64(a.count) }
func (a *AnomalyCount) Reset()         { a.count = 0 }
