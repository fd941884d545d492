// Package calc evaluates checked operations on operands given as text, for
// the numeric type named by the caller.
package calc

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/eigerco/safemath/pkg/log"
	"github.com/eigerco/safemath/pkg/safemath"
)

var (
	ErrUnknownType    = errors.New("unknown numeric type")
	ErrInvalidOperand = errors.New("invalid operand")
)

// Result of one evaluation. Err holds the arithmetic failure, if any, and
// Kind its classification.
type Result struct {
	Type  string
	Op    safemath.Op
	A, B  string
	Value string
	Kind  safemath.Kind
	Err   error
}

func (r Result) String() string {
	out := r.Value
	if r.Err != nil {
		out = r.Kind.String()
	}
	return fmt.Sprintf("%s %s %s %s = %s", r.Type, r.Op, r.A, r.B, out)
}

type runner func(op safemath.Op, a, b string) (value string, err error)

// Every entry binds a type name to its capability at compile time.
var runners = map[string]runner{
	"int":     signed[int](strconv.IntSize),
	"int8":    signed[int8](8),
	"int16":   signed[int16](16),
	"int32":   signed[int32](32),
	"int64":   signed[int64](64),
	"uint":    unsigned[uint](strconv.IntSize),
	"uint8":   unsigned[uint8](8),
	"uint16":  unsigned[uint16](16),
	"uint32":  unsigned[uint32](32),
	"uint64":  unsigned[uint64](64),
	"uintptr": unsigned[uintptr](strconv.IntSize),
	"float32": float[float32](32),
	"float64": float[float64](64),
}

// Types lists the supported type names in sorted order.
func Types() []string {
	names := make([]string, 0, len(runners))
	for name := range runners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Evaluate parses a and b as typeName and applies op to them. The returned
// error is non-nil only for bad input; arithmetic failures are reported in
// the Result.
func Evaluate(typeName string, op safemath.Op, a, b string) (Result, error) {
	run, ok := runners[typeName]
	if !ok {
		return Result{}, errors.Wrapf(ErrUnknownType, "%q", typeName)
	}

	value, err := run(op, a, b)
	if err != nil && (errors.Is(err, ErrInvalidOperand) || errors.Is(err, safemath.ErrUnknownOp)) {
		return Result{}, err
	}

	res := Result{Type: typeName, Op: op, A: a, B: b, Value: value, Kind: safemath.KindOf(err), Err: err}
	log.Calc.Debug().
		Str("type", typeName).
		Str("op", string(op)).
		Str("a", a).
		Str("b", b).
		Str("result", value).
		Stringer("kind", res.Kind).
		Msg("evaluated")
	return res, nil
}

func signed[T int | int8 | int16 | int32 | int64](bitSize int) runner {
	return newRunner[safemath.Signed[T]](func(s string) (T, error) {
		v, err := strconv.ParseInt(s, 0, bitSize)
		return T(v), err
	}, func(v T) string {
		return strconv.FormatInt(int64(v), 10)
	})
}

func unsigned[T uint | uint8 | uint16 | uint32 | uint64 | uintptr](bitSize int) runner {
	return newRunner[safemath.Unsigned[T]](func(s string) (T, error) {
		v, err := strconv.ParseUint(s, 0, bitSize)
		return T(v), err
	}, func(v T) string {
		return strconv.FormatUint(uint64(v), 10)
	})
}

func float[T float32 | float64](bitSize int) runner {
	return newRunner[safemath.Float[T]](func(s string) (T, error) {
		v, err := strconv.ParseFloat(s, bitSize)
		return T(v), err
	}, func(v T) string {
		return strconv.FormatFloat(float64(v), 'g', -1, bitSize)
	})
}

func newRunner[A safemath.Arithmetic[T], T any](parse func(string) (T, error), format func(T) string) runner {
	return func(op safemath.Op, a, b string) (string, error) {
		x, err := parse(a)
		if err != nil {
			return "", errors.Wrapf(ErrInvalidOperand, "%q: %v", a, err)
		}
		y, err := parse(b)
		if err != nil {
			return "", errors.Wrapf(ErrInvalidOperand, "%q: %v", b, err)
		}
		v, err := safemath.Apply[A](op, x, y)
		if err != nil {
			return "", err
		}
		return format(v), nil
	}
}
