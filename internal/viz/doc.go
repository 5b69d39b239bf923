// Package viz hosts a board in the terminal.
//
// The package implements the interactive TUI using the Bubble Tea framework:
//
//   - [Menu]: layout picker that builds a board and hands it to a [Model]
//   - [Model]: fixed-tick host that steps the board and renders it
//   - [Canvas]: Braille-based pixel canvas with per-cell tint
//
// # Controls
//
//	Drag  - Aim and shoot: the ball starts where the drag began and flies
//	        opposite to the drag, scaled by launch_scale
//	S     - Drop a ball from the top centre
//	Space - Pause/Resume
//	R     - Reset board
//	C     - Clear balls
//	E     - Toggle energy chart
//	T     - Cycle color themes
//	?     - Show help overlay
package viz
