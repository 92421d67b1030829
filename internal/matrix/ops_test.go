package matrix

import (
	"errors"
	"testing"
)

func TestElementwiseOperators(t *testing.T) {
	a := mustFromSlice(t, 2, 2, []int{8, 6, 4, 9})
	b := mustFromSlice(t, 2, 2, []int{2, 3, 4, 3})

	tests := []struct {
		name     string
		op       func(x, y *Matrix[int]) (*Matrix[int], error)
		expected []int
	}{
		{"Add", (*Matrix[int]).Add, []int{10, 9, 8, 12}},
		{"Sub", (*Matrix[int]).Sub, []int{6, 3, 0, 6}},
		{"Mul", (*Matrix[int]).Mul, []int{16, 18, 16, 27}},
		{"Div", (*Matrix[int]).Div, []int{4, 2, 1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.op(a, b)
			if err != nil {
				t.Fatalf("%s failed: %v", tt.name, err)
			}
			assertDims(t, result, 2, 2)
			assertSliceEqual(t, tt.expected, result.AsSlice(), tt.name)

			// Operands must be untouched.
			assertSliceEqual(t, []int{8, 6, 4, 9}, a.AsSlice(), "left operand")
			assertSliceEqual(t, []int{2, 3, 4, 3}, b.AsSlice(), "right operand")
		})
	}
}

func TestElementwiseOperatorsDimensionMismatch(t *testing.T) {
	a := mustFromSlice(t, 2, 2, []int{8, 6, 4, 9})
	b := mustFromSlice(t, 1, 4, []int{2, 3, 4, 3})

	ops := map[string]func(x, y *Matrix[int]) (*Matrix[int], error){
		"Add": (*Matrix[int]).Add,
		"Sub": (*Matrix[int]).Sub,
		"Mul": (*Matrix[int]).Mul,
		"Div": (*Matrix[int]).Div,
	}

	for name, op := range ops {
		if _, err := op(a, b); !errors.Is(err, ErrDimensionMismatch) {
			t.Errorf("%s(2x2, 1x4) = %v, want ErrDimensionMismatch", name, err)
		}
	}
}

func TestScalarOperators(t *testing.T) {
	m := mustFromSlice(t, 2, 2, []float64{8, 6, 4, 10})

	tests := []struct {
		name     string
		result   *Matrix[float64]
		expected []float64
	}{
		{"AddScalar", m.AddScalar(2), []float64{10, 8, 6, 12}},
		{"SubScalar", m.SubScalar(2), []float64{6, 4, 2, 8}},
		{"MulScalar", m.MulScalar(2), []float64{16, 12, 8, 20}},
		{"DivScalar", m.DivScalar(2), []float64{4, 3, 2, 5}},
	}

	for _, tt := range tests {
		assertSliceEqual(t, tt.expected, tt.result.AsSlice(), tt.name)
	}
	assertSliceEqual(t, []float64{8, 6, 4, 10}, m.AsSlice(), "receiver unchanged")
}

func TestInPlaceOperators(t *testing.T) {
	b := mustFromSlice(t, 2, 2, []int{2, 3, 4, 5})

	tests := []struct {
		name     string
		op       func(x, y *Matrix[int]) error
		expected []int
	}{
		{"AddInPlace", (*Matrix[int]).AddInPlace, []int{10, 9, 8, 15}},
		{"SubInPlace", (*Matrix[int]).SubInPlace, []int{6, 3, 0, 5}},
		{"MulInPlace", (*Matrix[int]).MulInPlace, []int{16, 18, 16, 50}},
		{"DivInPlace", (*Matrix[int]).DivInPlace, []int{4, 2, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustFromSlice(t, 2, 2, []int{8, 6, 4, 10})
			if err := tt.op(a, b); err != nil {
				t.Fatalf("%s failed: %v", tt.name, err)
			}
			assertSliceEqual(t, tt.expected, a.AsSlice(), tt.name)
		})
	}
}

func TestInPlaceOperatorsDimensionMismatch(t *testing.T) {
	a := mustFromSlice(t, 2, 2, []int{8, 6, 4, 10})
	b := mustFromSlice(t, 2, 3, []int{1, 2, 3, 4, 5, 6})

	if err := a.AddInPlace(b); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("AddInPlace(2x2, 2x3) = %v, want ErrDimensionMismatch", err)
	}
	// A failed in-place operation must not modify the receiver.
	assertSliceEqual(t, []int{8, 6, 4, 10}, a.AsSlice(), "receiver after failed AddInPlace")
}

func TestScalarInPlaceOperators(t *testing.T) {
	m := mustFromSlice(t, 1, 4, []int{8, 6, 4, 10})

	m.AddScalarInPlace(2)
	assertSliceEqual(t, []int{10, 8, 6, 12}, m.AsSlice(), "AddScalarInPlace")

	m.SubScalarInPlace(4)
	assertSliceEqual(t, []int{6, 4, 2, 8}, m.AsSlice(), "SubScalarInPlace")

	m.MulScalarInPlace(3)
	assertSliceEqual(t, []int{18, 12, 6, 24}, m.AsSlice(), "MulScalarInPlace")

	m.DivScalarInPlace(6)
	assertSliceEqual(t, []int{3, 2, 1, 4}, m.AsSlice(), "DivScalarInPlace")
}

func TestNeg(t *testing.T) {
	m := mustFromSlice(t, 1, 3, []float64{1.5, -2, 0})
	assertSliceEqual(t, []float64{-1.5, 2, 0}, m.Neg().AsSlice(), "Neg")
	assertSliceEqual(t, []float64{1.5, -2, 0}, m.AsSlice(), "receiver unchanged")
}
