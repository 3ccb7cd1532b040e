// Package rangesum computes sums of consecutive natural numbers, in constant
// time, using the closed form of the arithmetic series.
//
// Results are always exact. Operands small enough that their product is an
// exactly representable float64 are evaluated natively, everything else falls
// back to [math/big.Rat] arithmetic. See [Strategy] for how "small enough" is
// decided.
//
// In this package natural numbers include 0.
package rangesum
