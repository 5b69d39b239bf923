// Package board owns a round of play: the peg field, the pool of balls in
// flight, and the fixed-tick stepper that moves them.
//
// A host drives a [Board] through four calls:
//
//	b, _ := board.New(pegs, params)
//	b.Shoot(origin, velocity)
//	b.Step(tick)          // once per fixed tick
//	snap := b.Snapshot()  // settled, read-only view for rendering
//
// # Thread Safety
//
// A Board is NOT safe for concurrent use. Hosts must sequence Step and
// Snapshot on one goroutine.
package board
