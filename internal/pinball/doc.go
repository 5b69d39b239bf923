// Package pinball defines the shared vocabulary of the board simulation.
//
// The package holds the value types every other package agrees on:
//
//   - [Ball]: a moving circle under gravity
//   - [Peg]: a static circular obstacle with a hit flag and a type
//   - [Params]: playfield geometry and physical constants
//   - [ReflectionMode] and [ScanMode]: collision response variants
//
// It has no behaviour beyond validation; stepping lives in package board,
// collision math in package collision.
package pinball
