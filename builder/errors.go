package builder

import "errors"

var (
	// ErrTooFewNodes indicates n is below the minimum the requested
	// topology needs (Path ≥ 2, Cycle ≥ 3, Star ≥ 2, Complete ≥ 1).
	ErrTooFewNodes = errors.New("builder: too few nodes for requested topology")

	// ErrNilOption indicates a nil Option was supplied.
	ErrNilOption = errors.New("builder: nil option")
)
