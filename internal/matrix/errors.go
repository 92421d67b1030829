package matrix

import "errors"

// Sentinel errors returned by the matrix package. Callers match them with
// errors.Is; returned errors carry the offending dimensions or indices in
// their message via fmt.Errorf wrapping.
var (
	// ErrCellOutOfBounds is returned when an accessed (row, column) pair is
	// outside the matrix dimensions.
	ErrCellOutOfBounds = errors.New("matrix: cell out of bounds")

	// ErrDimensionMismatch is returned when two matrices combined elementwise
	// have different dimensions, when the inner dimensions of a matrix product
	// disagree, or when a slice length does not match the requested dimensions.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrDimensionsTooLarge is returned when rows*columns would overflow the
	// maximum int value.
	ErrDimensionsTooLarge = errors.New("matrix: dimensions too large")

	// ErrInvalidDimensions is returned when requested rows or columns are not
	// strictly positive. A zero-dimensioned matrix is not constructible.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")
)
