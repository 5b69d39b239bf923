package pinball

import "errors"

// Domain errors for board setup.
var (
	// ErrInvalidParams indicates a physical constant or playfield dimension
	// outside its valid range.
	ErrInvalidParams = errors.New("pinball: invalid board parameters")

	// ErrUnknownLayout indicates a peg layout name with no generator.
	ErrUnknownLayout = errors.New("pinball: unknown peg layout")

	// ErrUnknownPegType indicates a peg type name that does not parse.
	ErrUnknownPegType = errors.New("pinball: unknown peg type")

	// ErrUnknownMode indicates a reflection or scan mode name that does not
	// parse.
	ErrUnknownMode = errors.New("pinball: unknown mode")
)
