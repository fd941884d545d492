package safemath

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// signedLimits returns the representable range of T. Two's complement:
// the top bit alone is MIN and its complement is MAX.
func signedLimits[T constraints.Signed]() (lo, hi T) {
	var zero T
	lo = T(1) << (8*unsafe.Sizeof(zero) - 1)
	return lo, ^lo
}

func unsignedMax[T constraints.Unsigned]() T {
	return ^T(0)
}
