package pinball

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/poggle/internal/geom"
)

type ReflectionMode int

const (
	// ReflectLegacy adds twice the absolute normal component of velocity
	// along the outward normal. It can gain speed before the elasticity
	// rescale, and the energy diagnostics exist to surface that.
	ReflectLegacy ReflectionMode = iota
	// ReflectMirror is the textbook reflection v' = v - 2(v.n)n.
	ReflectMirror
)

func (m ReflectionMode) String() string {
	switch m {
	case ReflectLegacy:
		return "legacy"
	case ReflectMirror:
		return "mirror"
	}
	return fmt.Sprintf("reflection(%d)", int(m))
}

func ParseReflectionMode(s string) (ReflectionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "legacy":
		return ReflectLegacy, nil
	case "mirror":
		return ReflectMirror, nil
	}
	return ReflectLegacy, fmt.Errorf("%w: reflection %q", ErrUnknownMode, s)
}

type ScanMode int

const (
	// ScanFirst resolves the first peg in list order that reports a
	// collision.
	ScanFirst ScanMode = iota
	// ScanEarliest runs the predictor against every peg and resolves the
	// impact closest along the sweep.
	ScanEarliest
)

func (m ScanMode) String() string {
	switch m {
	case ScanFirst:
		return "first"
	case ScanEarliest:
		return "earliest"
	}
	return fmt.Sprintf("scan(%d)", int(m))
}

func ParseScanMode(s string) (ScanMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "first":
		return ScanFirst, nil
	case "earliest":
		return ScanEarliest, nil
	}
	return ScanFirst, fmt.Errorf("%w: scan %q", ErrUnknownMode, s)
}

const (
	DefaultWidth      = 1280
	DefaultHeight     = 800
	DefaultGravity    = 400
	DefaultBallRadius = 8
	DefaultElasticity = 0.9
)

// Params are the per-board physical constants. Coordinates are screen
// space: y grows downwards, so gravity has a positive Y.
type Params struct {
	Width      float32
	Height     float32
	Gravity    geom.Vec
	BallRadius float32
	Elasticity float32
	Reflection ReflectionMode
	Scan       ScanMode
}

func DefaultParams() Params {
	return Params{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Gravity:    geom.Vec{Y: DefaultGravity},
		BallRadius: DefaultBallRadius,
		Elasticity: DefaultElasticity,
	}
}

func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: playfield must be positive, got %gx%g", ErrInvalidParams, p.Width, p.Height)
	}
	if p.BallRadius <= 0 {
		return fmt.Errorf("%w: ball radius must be positive, got %g", ErrInvalidParams, p.BallRadius)
	}
	if !(p.Elasticity > 0 && p.Elasticity <= 1) {
		return fmt.Errorf("%w: elasticity must be in (0, 1], got %g", ErrInvalidParams, p.Elasticity)
	}
	if !p.Gravity.IsFinite() || math.IsNaN(float64(p.Width)) || math.IsNaN(float64(p.Height)) {
		return fmt.Errorf("%w: non-finite constant", ErrInvalidParams)
	}
	return nil
}
