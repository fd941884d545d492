// Package safemath provides checked Add, Subtract, Multiply and Divide for
// signed integers, unsigned integers and floating point numbers. Each
// operation either returns the exact (or, for floats, correctly rounded and
// finite) result or an error matching one of ErrOverflow, ErrUnderflow,
// ErrDivisionByZero and ErrNonFinite.
//
// The checking rules are chosen by a category capability type instead of
// by inspecting values at run time:
//
//	v, err := safemath.Add[safemath.Signed[int8]](int8(120), 10) // ErrOverflow
//	v, err := safemath.Unsigned[uint32]{}.Subtract(5, 10)  // ErrUnderflow
//
// Types outside constraints.Signed, constraints.Unsigned and
// constraints.Float cannot instantiate a capability and fail to compile.
package safemath

import "github.com/cockroachdb/errors"

// Category is the numeric category whose overflow rules apply to a type.
type Category uint8

const (
	SignedIntegral Category = iota + 1
	UnsignedIntegral
	FloatingPoint
)

func (c Category) String() string {
	switch c {
	case SignedIntegral:
		return "signed integral"
	case UnsignedIntegral:
		return "unsigned integral"
	case FloatingPoint:
		return "floating point"
	default:
		return "unknown"
	}
}

// Arithmetic is implemented by Signed, Unsigned and Float.
type Arithmetic[T any] interface {
	Category() Category
	Add(a, b T) (T, error)
	Subtract(a, b T) (T, error)
	Multiply(a, b T) (T, error)
	Divide(a, b T) (T, error)
}

var (
	_ Arithmetic[int64]   = Signed[int64]{}
	_ Arithmetic[uint64]  = Unsigned[uint64]{}
	_ Arithmetic[float64] = Float[float64]{}
)

func Add[A Arithmetic[T], T any](a, b T) (T, error) {
	var ar A
	return ar.Add(a, b)
}

func Subtract[A Arithmetic[T], T any](a, b T) (T, error) {
	var ar A
	return ar.Subtract(a, b)
}

func Multiply[A Arithmetic[T], T any](a, b T) (T, error) {
	var ar A
	return ar.Multiply(a, b)
}

func Divide[A Arithmetic[T], T any](a, b T) (T, error) {
	var ar A
	return ar.Divide(a, b)
}

// Apply runs op with the capability A. It is the entry point for callers
// that pick the operation at run time.
func Apply[A Arithmetic[T], T any](op Op, a, b T) (T, error) {
	switch op {
	case OpAdd:
		return Add[A](a, b)
	case OpSubtract:
		return Subtract[A](a, b)
	case OpMultiply:
		return Multiply[A](a, b)
	case OpDivide:
		return Divide[A](a, b)
	}
	var zero T
	return zero, errors.Wrapf(ErrUnknownOp, "%q", op)
}
