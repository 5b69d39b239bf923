// Package clock schedules fixed-rate physics ticks and variable-rate
// frames from one loop.
package clock

import (
	"fmt"
	"time"
)

// DefaultMaxCatchUp bounds the ticks a single Advance may report after a
// stall.
const DefaultMaxCatchUp = 8

type Clock struct {
	update time.Duration
	frame  time.Duration

	nextUpdate time.Time
	nextFrame  time.Time
	started    bool

	// MaxCatchUp caps the ticks returned by one Advance. Ticks beyond it
	// are dropped and the schedule restarts from now.
	MaxCatchUp int

	ticks   uint64
	frames  uint64
	dropped uint64
}

func New(updatesPerSecond, framesPerSecond int) (*Clock, error) {
	if updatesPerSecond <= 0 || framesPerSecond <= 0 {
		return nil, fmt.Errorf("clock: rates must be positive, got %d/%d", updatesPerSecond, framesPerSecond)
	}
	return &Clock{
		update:     time.Second / time.Duration(updatesPerSecond),
		frame:      time.Second / time.Duration(framesPerSecond),
		MaxCatchUp: DefaultMaxCatchUp,
	}, nil
}

// Start anchors both schedules at now. Advance calls it on first use.
func (c *Clock) Start(now time.Time) {
	c.nextUpdate = now
	c.nextFrame = now
	c.started = true
}

// Advance reports how many ticks are due at now and whether a frame is due.
// Callers run the ticks before rendering.
func (c *Clock) Advance(now time.Time) (ticks int, render bool) {
	if !c.started {
		c.Start(now)
	}

	for !now.Before(c.nextUpdate) && ticks < c.MaxCatchUp {
		ticks++
		c.nextUpdate = c.nextUpdate.Add(c.update)
	}
	if !now.Before(c.nextUpdate) {
		behind := now.Sub(c.nextUpdate)/c.update + 1
		c.dropped += uint64(behind)
		c.nextUpdate = now.Add(c.update)
	}
	c.ticks += uint64(ticks)

	if !now.Before(c.nextFrame) {
		render = true
		c.frames++
		c.nextFrame = c.nextFrame.Add(c.frame)
		if !now.Before(c.nextFrame) {
			c.nextFrame = now.Add(c.frame)
		}
	}
	return ticks, render
}

// Next is the earliest time either schedule is due.
func (c *Clock) Next() time.Time {
	if c.nextFrame.Before(c.nextUpdate) {
		return c.nextFrame
	}
	return c.nextUpdate
}

func (c *Clock) UpdateDelta() time.Duration { return c.update }
func (c *Clock) FrameDelta() time.Duration  { return c.frame }
func (c *Clock) Ticks() uint64              { return c.ticks }
func (c *Clock) Frames() uint64             { return c.frames }
func (c *Clock) Dropped() uint64            { return c.dropped }
