package pinball

import (
	"fmt"
	"strings"

	"github.com/san-kum/poggle/internal/geom"
	"github.com/san-kum/poggle/internal/shape"
)

type PegType int

const (
	Standard PegType = iota
	Target
	PointBoost
	PowerUp
)

var pegTypeNames = map[PegType]string{
	Standard:   "standard",
	Target:     "target",
	PointBoost: "point_boost",
	PowerUp:    "power_up",
}

func (t PegType) String() string {
	if name, ok := pegTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("peg_type(%d)", int(t))
}

func ParsePegType(s string) (PegType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Standard, nil
	}
	for t, name := range pegTypeNames {
		if name == s {
			return t, nil
		}
	}
	return Standard, fmt.Errorf("%w: %q", ErrUnknownPegType, s)
}

// PowerUpKind is only meaningful on pegs of type PowerUp.
type PowerUpKind int

const (
	SuperGuide PowerUpKind = iota
	MultiBall
	Pyramid
	Explosion
	SpookyBall
	MagicWheel
	Flippers
	Fireball
	FlowerPower
	Zen
)

var powerUpNames = []string{
	"super_guide", "multi_ball", "pyramid", "explosion", "spooky_ball",
	"magic_wheel", "flippers", "fireball", "flower_power", "zen",
}

// NumPowerUps is the number of PowerUpKind values.
const NumPowerUps = 10

func (k PowerUpKind) String() string {
	if k >= 0 && int(k) < len(powerUpNames) {
		return powerUpNames[k]
	}
	return fmt.Sprintf("power_up(%d)", int(k))
}

func ParsePowerUp(s string) (PowerUpKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SuperGuide, nil
	}
	for i, name := range powerUpNames {
		if name == s {
			return PowerUpKind(i), nil
		}
	}
	return SuperGuide, fmt.Errorf("%w: power-up %q", ErrUnknownPegType, s)
}

// Peg is a static obstacle. Only IsHit changes after board setup.
type Peg struct {
	Body    shape.Body
	IsHit   bool
	Type    PegType
	PowerUp PowerUpKind
}

func NewPeg(pos geom.Vec, radius float32, t PegType) Peg {
	return Peg{Body: shape.NewCircle(pos, radius), Type: t}
}

func (p Peg) Pos() geom.Vec { return p.Body.Pos }

// Ball is a moving circle. Start and Launch record where and how fast it
// was shot and never change afterwards.
type Ball struct {
	Pos      geom.Vec
	Velocity geom.Vec
	Start    geom.Vec
	Launch   geom.Vec
}

func NewBall(origin, velocity geom.Vec) Ball {
	return Ball{Pos: origin, Velocity: velocity, Start: origin, Launch: velocity}
}
