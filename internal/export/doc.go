// Package export renders board snapshots as SVG.
package export
