package matrix

import "fmt"

// Elementwise arithmetic between matrices and scalars. Every binary operation
// comes in four variants: matrix op matrix (checked), matrix op scalar,
// and the two in-place counterparts. The matrix-matrix variants require equal
// dimensions and return ErrDimensionMismatch otherwise; the scalar variants
// cannot fail.

// checkSameShape returns ErrDimensionMismatch unless both matrices have the
// same dimensions.
func (m *Matrix[T]) checkSameShape(other *Matrix[T], op string) error {
	if m.rows != other.rows || m.cols != other.cols {
		return fmt.Errorf("%s: %dx%d vs %dx%d: %w", op, m.rows, m.cols, other.rows, other.cols, ErrDimensionMismatch)
	}
	return nil
}

// zip applies f to corresponding elements of m and other, returning a new
// matrix of the same dimensions.
func (m *Matrix[T]) zip(other *Matrix[T], op string, f func(a, b T) T) (*Matrix[T], error) {
	if err := m.checkSameShape(other, op); err != nil {
		return nil, err
	}
	data := make([]T, len(m.data))
	for i, v := range m.data {
		data[i] = f(v, other.data[i])
	}
	return &Matrix[T]{rows: m.rows, cols: m.cols, data: data}, nil
}

// zipInPlace applies f to corresponding elements of m and other, storing the
// results in m.
func (m *Matrix[T]) zipInPlace(other *Matrix[T], op string, f func(a, b T) T) error {
	if err := m.checkSameShape(other, op); err != nil {
		return err
	}
	for i, v := range m.data {
		m.data[i] = f(v, other.data[i])
	}
	return nil
}

// zipScalar applies f between every element of m and s, returning a new
// matrix.
func (m *Matrix[T]) zipScalar(s T, f func(a, b T) T) *Matrix[T] {
	data := make([]T, len(m.data))
	for i, v := range m.data {
		data[i] = f(v, s)
	}
	return &Matrix[T]{rows: m.rows, cols: m.cols, data: data}
}

// zipScalarInPlace applies f between every element of m and s, storing the
// results in m.
func (m *Matrix[T]) zipScalarInPlace(s T, f func(a, b T) T) {
	for i, v := range m.data {
		m.data[i] = f(v, s)
	}
}

// Add returns the elementwise sum of m and other.
func (m *Matrix[T]) Add(other *Matrix[T]) (*Matrix[T], error) {
	return m.zip(other, "Add", func(a, b T) T { return a + b })
}

// Sub returns the elementwise difference of m and other.
func (m *Matrix[T]) Sub(other *Matrix[T]) (*Matrix[T], error) {
	return m.zip(other, "Sub", func(a, b T) T { return a - b })
}

// Mul returns the elementwise (Hadamard) product of m and other.
// For the matrix product, see MatMul.
func (m *Matrix[T]) Mul(other *Matrix[T]) (*Matrix[T], error) {
	return m.zip(other, "Mul", func(a, b T) T { return a * b })
}

// Div returns the elementwise quotient of m and other.
func (m *Matrix[T]) Div(other *Matrix[T]) (*Matrix[T], error) {
	return m.zip(other, "Div", func(a, b T) T { return a / b })
}

// AddScalar returns a new matrix with s added to every element.
func (m *Matrix[T]) AddScalar(s T) *Matrix[T] {
	return m.zipScalar(s, func(a, b T) T { return a + b })
}

// SubScalar returns a new matrix with s subtracted from every element.
func (m *Matrix[T]) SubScalar(s T) *Matrix[T] {
	return m.zipScalar(s, func(a, b T) T { return a - b })
}

// MulScalar returns a new matrix with every element multiplied by s.
func (m *Matrix[T]) MulScalar(s T) *Matrix[T] {
	return m.zipScalar(s, func(a, b T) T { return a * b })
}

// DivScalar returns a new matrix with every element divided by s.
func (m *Matrix[T]) DivScalar(s T) *Matrix[T] {
	return m.zipScalar(s, func(a, b T) T { return a / b })
}

// AddInPlace adds other to m elementwise, storing the result in m.
// m is left unchanged if the dimensions differ.
func (m *Matrix[T]) AddInPlace(other *Matrix[T]) error {
	return m.zipInPlace(other, "AddInPlace", func(a, b T) T { return a + b })
}

// SubInPlace subtracts other from m elementwise, storing the result in m.
// m is left unchanged if the dimensions differ.
func (m *Matrix[T]) SubInPlace(other *Matrix[T]) error {
	return m.zipInPlace(other, "SubInPlace", func(a, b T) T { return a - b })
}

// MulInPlace multiplies m by other elementwise, storing the result in m.
// m is left unchanged if the dimensions differ.
func (m *Matrix[T]) MulInPlace(other *Matrix[T]) error {
	return m.zipInPlace(other, "MulInPlace", func(a, b T) T { return a * b })
}

// DivInPlace divides m by other elementwise, storing the result in m.
// m is left unchanged if the dimensions differ.
func (m *Matrix[T]) DivInPlace(other *Matrix[T]) error {
	return m.zipInPlace(other, "DivInPlace", func(a, b T) T { return a / b })
}

// AddScalarInPlace adds s to every element of m.
func (m *Matrix[T]) AddScalarInPlace(s T) {
	m.zipScalarInPlace(s, func(a, b T) T { return a + b })
}

// SubScalarInPlace subtracts s from every element of m.
func (m *Matrix[T]) SubScalarInPlace(s T) {
	m.zipScalarInPlace(s, func(a, b T) T { return a - b })
}

// MulScalarInPlace multiplies every element of m by s.
func (m *Matrix[T]) MulScalarInPlace(s T) {
	m.zipScalarInPlace(s, func(a, b T) T { return a * b })
}

// DivScalarInPlace divides every element of m by s.
func (m *Matrix[T]) DivScalarInPlace(s T) {
	m.zipScalarInPlace(s, func(a, b T) T { return a / b })
}

// Neg returns a new matrix with every element negated.
func (m *Matrix[T]) Neg() *Matrix[T] {
	return m.Map(func(v T) T { return -v })
}
