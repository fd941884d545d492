package safemath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float performs IEEE-754 arithmetic in T and rejects any result that is
// infinite or NaN. Inputs are not inspected: a non-finite operand always
// yields a non-finite result, which is caught on the way out. Division by
// zero needs no separate check for the same reason.
type Float[T constraints.Float] struct{}

func (Float[T]) Category() Category { return FloatingPoint }

func (Float[T]) Add(a, b T) (T, error) {
	return finite(OpAdd, a+b, a, b)
}

func (Float[T]) Subtract(a, b T) (T, error) {
	return finite(OpSubtract, a-b, a, b)
}

func (Float[T]) Multiply(a, b T) (T, error) {
	return finite(OpMultiply, a*b, a, b)
}

func (Float[T]) Divide(a, b T) (T, error) {
	return finite(OpDivide, a/b, a, b)
}

func finite[T constraints.Float](op Op, r, a, b T) (T, error) {
	// Widening to float64 preserves infinities and NaN.
	f := float64(r)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return fail(op, ErrNonFinite, a, b)
	}
	return r, nil
}
