package arrowgrid

import "errors"

var (
	// ErrInvalidDimensions indicates rows or cols outside [1, MaxDimension].
	ErrInvalidDimensions = errors.New("arrowgrid: invalid maze dimensions")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("arrowgrid: all rows must have the same length")
	// ErrInvalidColor indicates a color letter other than 'R' or 'B'.
	ErrInvalidColor = errors.New("arrowgrid: invalid arrow color")
	// ErrOutOfBounds indicates a vertex outside the grid.
	ErrOutOfBounds = errors.New("arrowgrid: vertex out of bounds")
)
