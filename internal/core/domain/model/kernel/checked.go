package kernel

import (
	"errors"
	"math"
	"math/bits"
)

// ErrArithmeticOverflow is returned by the checked arithmetic helpers when a
// result does not fit its type. Counters, reputation updates and fee
// computation must fail with this error rather than wrap or saturate.
var ErrArithmeticOverflow = errors.New("arithmetic overflow")

// CheckedAddU8 returns a+b or ErrArithmeticOverflow.
func CheckedAddU8(a, b uint8) (uint8, error) {
	if a > math.MaxUint8-b {
		return 0, ErrArithmeticOverflow
	}
	return a + b, nil
}

// CheckedAddU32 returns a+b or ErrArithmeticOverflow.
func CheckedAddU32(a, b uint32) (uint32, error) {
	if a > math.MaxUint32-b {
		return 0, ErrArithmeticOverflow
	}
	return a + b, nil
}

// CheckedAddU64 returns a+b or ErrArithmeticOverflow.
func CheckedAddU64(a, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, ErrArithmeticOverflow
	}
	return a + b, nil
}

// CheckedMulDiv returns floor(a*b/div) computed over a 128-bit intermediate,
// so a*b alone never overflows. It fails with ErrArithmeticOverflow when the
// quotient does not fit in 64 bits, and treats division by zero the same way.
func CheckedMulDiv(a, b, div uint64) (uint64, error) {
	if div == 0 {
		return 0, ErrArithmeticOverflow
	}
	hi, lo := bits.Mul64(a, b)
	if hi >= div {
		return 0, ErrArithmeticOverflow
	}
	quo, _ := bits.Div64(hi, lo, div)
	return quo, nil
}
