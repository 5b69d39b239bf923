package pinball

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/poggle/internal/geom"
)

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	if err := p.Validate(); err != nil {
		t.Fatalf("default params invalid: %v", err)
	}
	if p.Reflection != ReflectLegacy || p.Scan != ScanFirst {
		t.Error("defaults should keep legacy reflection and first-hit scanning")
	}
}

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero width", func(p *Params) { p.Width = 0 }},
		{"negative height", func(p *Params) { p.Height = -1 }},
		{"zero radius", func(p *Params) { p.BallRadius = 0 }},
		{"zero elasticity", func(p *Params) { p.Elasticity = 0 }},
		{"elasticity above one", func(p *Params) { p.Elasticity = 1.01 }},
		{"NaN gravity", func(p *Params) { p.Gravity = geom.Vec{Y: float32(math.NaN())} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			err := p.Validate()
			if !errors.Is(err, ErrInvalidParams) {
				t.Errorf("expected ErrInvalidParams, got %v", err)
			}
		})
	}

	p := DefaultParams()
	p.Elasticity = 1
	if err := p.Validate(); err != nil {
		t.Errorf("elasticity 1 should be valid: %v", err)
	}
}

func TestParseModes(t *testing.T) {
	if m, err := ParseReflectionMode("Mirror"); err != nil || m != ReflectMirror {
		t.Errorf("ParseReflectionMode(Mirror) = %v, %v", m, err)
	}
	if m, err := ParseScanMode(""); err != nil || m != ScanFirst {
		t.Errorf("ParseScanMode(\"\") = %v, %v", m, err)
	}
	if _, err := ParseScanMode("random"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
	if ReflectMirror.String() != "mirror" || ScanEarliest.String() != "earliest" {
		t.Error("mode names do not round trip")
	}
}

func TestParsePegType(t *testing.T) {
	for pt, name := range pegTypeNames {
		got, err := ParsePegType(name)
		if err != nil || got != pt {
			t.Errorf("ParsePegType(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := ParsePegType("bumper"); !errors.Is(err, ErrUnknownPegType) {
		t.Errorf("expected ErrUnknownPegType, got %v", err)
	}
	if k, err := ParsePowerUp("fireball"); err != nil || k != Fireball {
		t.Errorf("ParsePowerUp(fireball) = %v, %v", k, err)
	}
	if Zen.String() != "zen" {
		t.Errorf("Zen.String() = %q", Zen.String())
	}
}

func TestNewBall(t *testing.T) {
	b := NewBall(geom.Vec{X: 1, Y: 2}, geom.Vec{X: 3, Y: 4})
	if b.Start != b.Pos || b.Launch != b.Velocity {
		t.Error("NewBall should record launch point and velocity")
	}
}
