package safemath

import "golang.org/x/exp/constraints"

// Signed checks arithmetic on signed integers against [MIN, MAX] of T.
// No intermediate result is computed outside that range, so the checks
// hold for int64 where no wider type exists.
type Signed[T constraints.Signed] struct{}

func (Signed[T]) Category() Category { return SignedIntegral }

func (Signed[T]) Add(a, b T) (T, error) {
	lo, hi := signedLimits[T]()
	if b > 0 && a > hi-b {
		return fail(OpAdd, ErrOverflow, a, b)
	}
	if b < 0 && a < lo-b {
		return fail(OpAdd, ErrUnderflow, a, b)
	}
	return a + b, nil
}

func (Signed[T]) Subtract(a, b T) (T, error) {
	lo, hi := signedLimits[T]()
	if b > 0 && a < lo+b {
		return fail(OpSubtract, ErrUnderflow, a, b)
	}
	if b < 0 && a > hi+b {
		return fail(OpSubtract, ErrOverflow, a, b)
	}
	return a - b, nil
}

// Multiply bounds each sign combination by a division against MIN or MAX.
// A zero operand never trips a bound.
func (Signed[T]) Multiply(a, b T) (T, error) {
	lo, hi := signedLimits[T]()
	switch {
	case a > 0 && b > 0:
		if a > hi/b {
			return fail(OpMultiply, ErrOverflow, a, b)
		}
	case a > 0 && b < 0:
		if b < lo/a {
			return fail(OpMultiply, ErrUnderflow, a, b)
		}
	case a < 0 && b > 0:
		if a < lo/b {
			return fail(OpMultiply, ErrUnderflow, a, b)
		}
	case a < 0 && b < 0:
		if b < hi/a {
			return fail(OpMultiply, ErrOverflow, a, b)
		}
	}
	return a * b, nil
}

// Divide truncates toward zero. MIN / -1 is the only quotient that does
// not fit.
func (Signed[T]) Divide(a, b T) (T, error) {
	if b == 0 {
		return fail(OpDivide, ErrDivisionByZero, a, b)
	}
	lo, _ := signedLimits[T]()
	if a == lo && b == -1 {
		return fail(OpDivide, ErrOverflow, a, b)
	}
	return a / b, nil
}
