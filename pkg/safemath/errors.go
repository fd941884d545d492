package safemath

import (
	"github.com/cockroachdb/errors"
)

var (
	ErrOverflow       = errors.New("overflow")
	ErrUnderflow      = errors.New("underflow")
	ErrDivisionByZero = errors.New("division by zero")
	ErrNonFinite      = errors.New("non-finite number")
)

// Kind classifies the failure of a checked operation.
type Kind uint8

const (
	NoFailure Kind = iota
	Overflow
	Underflow
	DivisionByZero
	NonFinite
	Unknown
)

func (k Kind) String() string {
	switch k {
	case NoFailure:
		return "ok"
	case Overflow:
		return "overflow"
	case Underflow:
		return "underflow"
	case DivisionByZero:
		return "division by zero"
	case NonFinite:
		return "non-finite"
	default:
		return "unknown"
	}
}

// KindOf reports which failure err carries. A nil error is NoFailure, an
// error not produced by this package is Unknown.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return NoFailure
	case errors.Is(err, ErrOverflow):
		return Overflow
	case errors.Is(err, ErrUnderflow):
		return Underflow
	case errors.Is(err, ErrDivisionByZero):
		return DivisionByZero
	case errors.Is(err, ErrNonFinite):
		return NonFinite
	default:
		return Unknown
	}
}

// Op names one of the four checked operations.
type Op string

const (
	OpAdd      Op = "add"
	OpSubtract Op = "sub"
	OpMultiply Op = "mul"
	OpDivide   Op = "div"
)

var ErrUnknownOp = errors.New("unknown operation")

// ParseOp accepts both the short and the long spelling of an operation.
func ParseOp(s string) (Op, error) {
	switch s {
	case "add", "+":
		return OpAdd, nil
	case "sub", "subtract", "-":
		return OpSubtract, nil
	case "mul", "multiply", "*":
		return OpMultiply, nil
	case "div", "divide", "/":
		return OpDivide, nil
	}
	return "", errors.Wrapf(ErrUnknownOp, "%q", s)
}

func fail[T any](op Op, cause error, a, b T) (T, error) {
	var zero T
	return zero, errors.Wrapf(cause, "%s(%v, %v)", op, a, b)
}
