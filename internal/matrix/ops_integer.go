package matrix

// Remainder, bitwise and shift operations. Go defines these operators only for
// integer types, so they are package-level functions constrained on Integer
// rather than methods on Matrix, which is parameterized over the wider Element
// constraint.

// Rem returns the elementwise remainder of a divided by b.
func Rem[T Integer](a, b *Matrix[T]) (*Matrix[T], error) {
	return a.zip(b, "Rem", func(x, y T) T { return x % y })
}

// And returns the elementwise bitwise AND of a and b.
func And[T Integer](a, b *Matrix[T]) (*Matrix[T], error) {
	return a.zip(b, "And", func(x, y T) T { return x & y })
}

// Or returns the elementwise bitwise OR of a and b.
func Or[T Integer](a, b *Matrix[T]) (*Matrix[T], error) {
	return a.zip(b, "Or", func(x, y T) T { return x | y })
}

// Xor returns the elementwise bitwise XOR of a and b.
func Xor[T Integer](a, b *Matrix[T]) (*Matrix[T], error) {
	return a.zip(b, "Xor", func(x, y T) T { return x ^ y })
}

// Shl returns a with every element shifted left by the corresponding element
// of b.
func Shl[T Integer](a, b *Matrix[T]) (*Matrix[T], error) {
	return a.zip(b, "Shl", func(x, y T) T { return x << y })
}

// Shr returns a with every element shifted right by the corresponding element
// of b.
func Shr[T Integer](a, b *Matrix[T]) (*Matrix[T], error) {
	return a.zip(b, "Shr", func(x, y T) T { return x >> y })
}

// RemScalar returns the remainder of every element of m divided by s.
func RemScalar[T Integer](m *Matrix[T], s T) *Matrix[T] {
	return m.zipScalar(s, func(x, y T) T { return x % y })
}

// AndScalar returns the bitwise AND of every element of m with s.
func AndScalar[T Integer](m *Matrix[T], s T) *Matrix[T] {
	return m.zipScalar(s, func(x, y T) T { return x & y })
}

// OrScalar returns the bitwise OR of every element of m with s.
func OrScalar[T Integer](m *Matrix[T], s T) *Matrix[T] {
	return m.zipScalar(s, func(x, y T) T { return x | y })
}

// XorScalar returns the bitwise XOR of every element of m with s.
func XorScalar[T Integer](m *Matrix[T], s T) *Matrix[T] {
	return m.zipScalar(s, func(x, y T) T { return x ^ y })
}

// ShlScalar returns m with every element shifted left by s.
func ShlScalar[T Integer](m *Matrix[T], s T) *Matrix[T] {
	return m.zipScalar(s, func(x, y T) T { return x << y })
}

// ShrScalar returns m with every element shifted right by s.
func ShrScalar[T Integer](m *Matrix[T], s T) *Matrix[T] {
	return m.zipScalar(s, func(x, y T) T { return x >> y })
}

// RemInPlace stores the elementwise remainder of a divided by b in a.
func RemInPlace[T Integer](a, b *Matrix[T]) error {
	return a.zipInPlace(b, "RemInPlace", func(x, y T) T { return x % y })
}

// AndInPlace stores the elementwise bitwise AND of a and b in a.
func AndInPlace[T Integer](a, b *Matrix[T]) error {
	return a.zipInPlace(b, "AndInPlace", func(x, y T) T { return x & y })
}

// OrInPlace stores the elementwise bitwise OR of a and b in a.
func OrInPlace[T Integer](a, b *Matrix[T]) error {
	return a.zipInPlace(b, "OrInPlace", func(x, y T) T { return x | y })
}

// XorInPlace stores the elementwise bitwise XOR of a and b in a.
func XorInPlace[T Integer](a, b *Matrix[T]) error {
	return a.zipInPlace(b, "XorInPlace", func(x, y T) T { return x ^ y })
}

// ShlInPlace shifts every element of a left by the corresponding element of b.
func ShlInPlace[T Integer](a, b *Matrix[T]) error {
	return a.zipInPlace(b, "ShlInPlace", func(x, y T) T { return x << y })
}

// ShrInPlace shifts every element of a right by the corresponding element of b.
func ShrInPlace[T Integer](a, b *Matrix[T]) error {
	return a.zipInPlace(b, "ShrInPlace", func(x, y T) T { return x >> y })
}

// RemScalarInPlace replaces every element of m with its remainder divided by s.
func RemScalarInPlace[T Integer](m *Matrix[T], s T) {
	m.zipScalarInPlace(s, func(x, y T) T { return x % y })
}

// AndScalarInPlace replaces every element of m with its bitwise AND with s.
func AndScalarInPlace[T Integer](m *Matrix[T], s T) {
	m.zipScalarInPlace(s, func(x, y T) T { return x & y })
}

// OrScalarInPlace replaces every element of m with its bitwise OR with s.
func OrScalarInPlace[T Integer](m *Matrix[T], s T) {
	m.zipScalarInPlace(s, func(x, y T) T { return x | y })
}

// XorScalarInPlace replaces every element of m with its bitwise XOR with s.
func XorScalarInPlace[T Integer](m *Matrix[T], s T) {
	m.zipScalarInPlace(s, func(x, y T) T { return x ^ y })
}

// ShlScalarInPlace shifts every element of m left by s.
func ShlScalarInPlace[T Integer](m *Matrix[T], s T) {
	m.zipScalarInPlace(s, func(x, y T) T { return x << y })
}

// ShrScalarInPlace shifts every element of m right by s.
func ShrScalarInPlace[T Integer](m *Matrix[T], s T) {
	m.zipScalarInPlace(s, func(x, y T) T { return x >> y })
}

// Not returns a new matrix with every element bitwise-complemented.
func Not[T Integer](m *Matrix[T]) *Matrix[T] {
	return m.Map(func(v T) T { return ^v })
}
