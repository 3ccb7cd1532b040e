package rangesum

import (
	"math/big"
)

// Float64Prec is the precision of an IEEE 754 binary64 (float64) value, in
// bits, including the implicit leading bit of the mantissa.
const Float64Prec = 53

// maxExactFactor64 is MaxExactFactor(Float64Prec), i.e. 94906265.
var maxExactFactor64 = MaxExactFactor(Float64Prec)

// MaxExactInt returns 2**prec, the upper bound of the contiguous range of
// integers that a binary floating point format with the given precision can
// represent exactly. For float64, that is 9007199254740992.
//
// If the precision is zero or exceeds [big.MaxPrec], a panic will occur.
func MaxExactInt(prec uint) *big.Int {
	checkPrec(prec)
	return new(big.Int).Lsh(big.NewInt(1), prec)
}

// MaxExactFactor returns floor(sqrt(2**prec)), the largest integer that may be
// multiplied by any integer no greater than itself, without the product
// exceeding [MaxExactInt].
//
// If the precision is zero or exceeds [big.MaxPrec], a panic will occur.
func MaxExactFactor(prec uint) *big.Int {
	v := MaxExactInt(prec)
	return v.Sqrt(v)
}

func checkPrec(prec uint) {
	if prec == 0 {
		panic(`rangesum: precision must not be zero`)
	}
	if prec > big.MaxPrec {
		panic(`rangesum: precision exceeds maximum`)
	}
}
