package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Matrix is a dense 2-dimensional container with rows*cols elements of type T
// stored in row-major order.
//
// Rows and columns are zero-indexed: the top left element is at (0, 0) and the
// bottom right element at (rows-1, cols-1). Both dimensions are strictly
// positive, enforced by every constructor, so len(data) == rows*cols > 0 holds
// for the lifetime of the matrix.
type Matrix[T Element] struct {
	rows int
	cols int
	data []T // flat backing storage, row-major
}

// checkedLen validates the dimensions and returns rows*cols.
// Non-positive dimensions yield ErrInvalidDimensions; a product overflowing
// int yields ErrDimensionsTooLarge.
func checkedLen(rows, cols int) (int, error) {
	if rows <= 0 || cols <= 0 {
		return 0, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions)
	}
	if rows > math.MaxInt/cols {
		return 0, fmt.Errorf("%dx%d: %w", rows, cols, ErrDimensionsTooLarge)
	}
	return rows * cols, nil
}

// New creates a rows x cols matrix with every element set to fill.
func New[T Element](rows, cols int, fill T) (*Matrix[T], error) {
	length, err := checkedLen(rows, cols)
	if err != nil {
		return nil, err
	}

	data := make([]T, length)
	if fill != *new(T) {
		for i := range data {
			data[i] = fill
		}
	}
	return &Matrix[T]{rows: rows, cols: cols, data: data}, nil
}

// FromSlice creates a rows x cols matrix from a row-major slice.
// The slice is copied; its length must be exactly rows*cols or
// ErrDimensionMismatch is returned.
//
// Example:
//
//	m, err := matrix.FromSlice(2, 3, []int{0, 1, 2, 3, 4, 5})
//	// [0   1   2]
//	// [3   4   5]
func FromSlice[T Element](rows, cols int, data []T) (*Matrix[T], error) {
	length, err := checkedLen(rows, cols)
	if err != nil {
		return nil, err
	}
	if length != len(data) {
		return nil, fmt.Errorf("%dx%d matrix from %d elements: %w", rows, cols, len(data), ErrDimensionMismatch)
	}

	copied := make([]T, length)
	copy(copied, data)
	return &Matrix[T]{rows: rows, cols: cols, data: copied}, nil
}

// FromRandom creates a rows x cols matrix with every element drawn
// independently from src.
func FromRandom[T Element](rows, cols int, src Source[T]) (*Matrix[T], error) {
	length, err := checkedLen(rows, cols)
	if err != nil {
		return nil, err
	}

	data := make([]T, length)
	for i := range data {
		data[i] = src()
	}
	return &Matrix[T]{rows: rows, cols: cols, data: data}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Matrix[T]) Rows() int {
	return m.rows
}

// Cols returns the number of columns in the matrix.
func (m *Matrix[T]) Cols() int {
	return m.cols
}

// Get returns the element at (row, col), or ErrCellOutOfBounds if the cell is
// not part of the matrix.
func (m *Matrix[T]) Get(row, col int) (T, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		var zero T
		return zero, fmt.Errorf("cell (%d,%d) of %dx%d matrix: %w", row, col, m.rows, m.cols, ErrCellOutOfBounds)
	}
	return m.data[row*m.cols+col], nil
}

// GetUnchecked returns the element at (row, col) without validating the
// indices.
//
// The caller must guarantee 0 <= row < Rows() and 0 <= col < Cols(); passing
// indices outside the matrix reads the wrong cell or panics. Never use it on
// untrusted indices — use Get instead. It exists so loops that have already
// established shape compatibility can skip redundant bounds checks.
func (m *Matrix[T]) GetUnchecked(row, col int) T {
	return m.data[row*m.cols+col]
}

// AsSlice returns the row-major backing slice of the matrix: for an m x n
// matrix, the first n elements are the first row, the next n the second row,
// and so on.
//
// The slice is a view, not a copy. Callers must treat it as read-only.
func (m *Matrix[T]) AsSlice() []T {
	return m.data
}

// Clone returns a deep copy of the matrix.
func (m *Matrix[T]) Clone() *Matrix[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)
	return &Matrix[T]{rows: m.rows, cols: m.cols, data: data}
}

// Map returns a new matrix of the same dimensions with f applied to every
// element in row-major order. The receiver is not modified.
//
// Example:
//
//	celsius, _ := matrix.FromSlice(2, 3, []float64{0, 10, 25, 50, 75, 100})
//	kelvin := celsius.Map(func(c float64) float64 { return c + 273.15 })
func (m *Matrix[T]) Map(f func(T) T) *Matrix[T] {
	data := make([]T, len(m.data))
	for i, v := range m.data {
		data[i] = f(v)
	}
	return &Matrix[T]{rows: m.rows, cols: m.cols, data: data}
}

// MapInPlace applies f to every element of the matrix in row-major order,
// replacing each element with the result.
func (m *Matrix[T]) MapInPlace(f func(T) T) {
	for i, v := range m.data {
		m.data[i] = f(v)
	}
}

// Transpose returns the cols x rows matrix with result[j][i] == m[i][j].
//
// Example:
//
//	m, _ := matrix.FromSlice(2, 3, []int{0, 1, 2, 3, 4, 5})
//	t := m.Transpose()
//	// [0   3]
//	// [1   4]
//	// [2   5]
func (m *Matrix[T]) Transpose() *Matrix[T] {
	data := make([]T, len(m.data))
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			data[col*m.rows+row] = m.data[row*m.cols+col]
		}
	}
	return &Matrix[T]{rows: m.cols, cols: m.rows, data: data}
}

// Equal reports whether both matrices have the same dimensions and exactly
// equal elements. There is no tolerance for floating-point types.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i, v := range m.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// String renders the matrix as one bracketed line per row, with every column
// left-aligned to its widest value and columns separated by three spaces:
//
//	[0.25   1.33    -0.1]
//	[1      -2.73   1.2 ]
//
// The rendering is a diagnostic convenience, not a persisted format.
func (m *Matrix[T]) String() string {
	// Each column is padded to the width of its widest value.
	widths := make([]int, m.cols)
	for col := 0; col < m.cols; col++ {
		for row := 0; row < m.rows; row++ {
			if w := len(fmt.Sprintf("%v", m.data[row*m.cols+col])); w > widths[col] {
				widths[col] = w
			}
		}
	}

	rows := make([]string, m.rows)
	values := make([]string, m.cols)
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			values[col] = fmt.Sprintf("%-*v", widths[col], m.data[row*m.cols+col])
		}
		rows[row] = "[" + strings.Join(values, "   ") + "]"
	}
	return strings.Join(rows, "\n")
}
