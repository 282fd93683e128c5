package board

import "errors"

var (
	// ErrOutOfBounds is returned when a coordinate falls outside the grid.
	// Coordinates are never wrapped or clamped.
	ErrOutOfBounds = errors.New("board: coordinate out of bounds")

	// ErrBadDimensions is returned when rows or cols are not positive.
	ErrBadDimensions = errors.New("board: rows and cols must be positive")

	// ErrSameCell is returned when the default start and end coincide.
	ErrSameCell = errors.New("board: start and end must differ")

	// ErrBadMode is returned for an unknown paint mode.
	ErrBadMode = errors.New("board: unknown paint mode")
)
