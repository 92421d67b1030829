// Package matrix provides the core dense matrix type and operations for the
// Reural library.
package matrix

// Element is a constraint for supported matrix element types.
// It covers every type the arithmetic operations (+, -, *, /, unary minus) and
// exact equality are defined for.
type Element interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Integer is the subset of Element the remainder, bitwise and shift operations
// are defined for. Go defines %, &, |, ^, << and >> only for integer types, so
// the integer-only operations are constrained separately instead of forcing the
// whole matrix API onto integers.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Source produces independent pseudo-random values of the element type.
// It is the injected capability used by FromRandom; the matrix package makes no
// assumption about its distribution.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	src := matrix.Source[float64](rng.Float64)
type Source[T Element] func() T
