// Package collision implements swept circle-versus-circle collision for
// balls against static pegs.
//
// [Predict] finds the first point of contact of a moving ball with a peg
// within one tick by intersecting the ball's path line with the peg circle
// grown by the ball radius. [Resolve] bounces the ball off that point.
// Neither function keeps state; the stepper in package board decides which
// pegs to test and in what order.
package collision
