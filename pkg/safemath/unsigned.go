package safemath

import "golang.org/x/exp/constraints"

// Unsigned checks arithmetic on unsigned integers, where underflow means
// going below zero.
type Unsigned[T constraints.Unsigned] struct{}

func (Unsigned[T]) Category() Category { return UnsignedIntegral }

func (Unsigned[T]) Add(a, b T) (T, error) {
	if a > unsignedMax[T]()-b {
		return fail(OpAdd, ErrOverflow, a, b)
	}
	return a + b, nil
}

func (Unsigned[T]) Subtract(a, b T) (T, error) {
	if a < b {
		return fail(OpSubtract, ErrUnderflow, a, b)
	}
	return a - b, nil
}

func (Unsigned[T]) Multiply(a, b T) (T, error) {
	if b != 0 && a > unsignedMax[T]()/b {
		return fail(OpMultiply, ErrOverflow, a, b)
	}
	return a * b, nil
}

func (Unsigned[T]) Divide(a, b T) (T, error) {
	if b == 0 {
		return fail(OpDivide, ErrDivisionByZero, a, b)
	}
	return a / b, nil
}
