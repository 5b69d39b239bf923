// Package layout generates peg fields for a playfield.
//
// Every generator is deterministic: the same name and Spec always produce
// the same pegs in the same order, which matters because the stepper
// resolves collisions in list order.
package layout
