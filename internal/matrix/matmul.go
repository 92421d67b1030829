package matrix

import "fmt"

// MatMul returns the matrix product of m and other.
//
// The number of columns of m must equal the number of rows of other, or
// ErrDimensionMismatch is returned. The result is a Rows() x other.Cols()
// matrix; ErrDimensionsTooLarge is returned if that size would overflow int.
//
// Each result cell is the dot product of a row of m and a column of other,
// summed in ascending index order. The implementation is the naive triple
// loop, without blocking or parallelism.
//
// Example:
//
//	a, _ := matrix.FromSlice(2, 3, []int{1, 2, 3, 4, 5, 6})
//	b, _ := matrix.FromSlice(3, 2, []int{7, 8, 9, 10, 11, 12})
//	c, _ := a.MatMul(b)
//	// [58    64 ]
//	// [139   154]
func (m *Matrix[T]) MatMul(other *Matrix[T]) (*Matrix[T], error) {
	if m.cols != other.rows {
		return nil, fmt.Errorf("MatMul: %dx%d by %dx%d: %w", m.rows, m.cols, other.rows, other.cols, ErrDimensionMismatch)
	}

	// The operands fit in memory but their product may still exceed the
	// maximum length, e.g. a tall column vector times a long row vector.
	length, err := checkedLen(m.rows, other.cols)
	if err != nil {
		return nil, err
	}

	data := make([]T, length)
	for row := 0; row < m.rows; row++ {
		for col := 0; col < other.cols; col++ {
			sum := m.GetUnchecked(row, 0) * other.GetUnchecked(0, col)
			for k := 1; k < m.cols; k++ {
				sum += m.GetUnchecked(row, k) * other.GetUnchecked(k, col)
			}
			data[row*other.cols+col] = sum
		}
	}
	return &Matrix[T]{rows: m.rows, cols: other.cols, data: data}, nil
}
