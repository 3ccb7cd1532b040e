package rangesum

import (
	"math/big"
)

var ratTwo = big.NewRat(2, 1)

// halfProduct returns a*b/2, where a*b must be even, and both operands must
// be non-negative. If large is false, both operands must fit within
// MaxExactFactor(Float64Prec), and the result is evaluated as a float64.
func halfProduct(a, b *big.Int, large bool) *big.Int {
	if !large {
		v := float64(a.Int64()) * float64(b.Int64()) / 2
		return new(big.Int).SetInt64(int64(v))
	}
	z := new(big.Rat).SetInt(a)
	z.Mul(z, new(big.Rat).SetInt(b))
	z.Quo(z, ratTwo)
	return truncRat(nil, z)
}

// truncRat assigns to target the integer part of rat, truncated towards
// zero. Nil values for target are allowed, and will result in a new
// [math/big.Int].
func truncRat(target *big.Int, rat *big.Rat) *big.Int {
	if target == nil {
		target = new(big.Int)
	}
	if rat.IsInt() {
		return target.Set(rat.Num())
	}
	return target.Quo(rat.Num(), rat.Denom())
}
