package rangesum

import (
	"fmt"
	"math"
	"math/big"
)

// Strategy selects how operands are classified as "large", i.e. too large to
// safely evaluate the closed form using float64 arithmetic.
//
// Every strategy produces exact results. They differ only in how often the
// (slower) exact path is taken.
type Strategy int

const (
	// StrategyExactBound classifies an operand as large if it exceeds
	// MaxExactFactor(Float64Prec). The product of two operands that are
	// both within that bound is no greater than 2**53, and is therefore
	// exact as a float64. This is the default.
	StrategyExactBound Strategy = iota

	// StrategyEmpirical classifies an operand n as large unless
	// float64(n) == sqrt(float64(n)*float64(n)/2) holds exactly.
	//
	// The identity only holds for 0, meaning that every positive operand
	// takes the exact path.
	StrategyEmpirical
)

var strategyNames = [...]string{
	StrategyExactBound: `exact-bound`,
	StrategyEmpirical:  `empirical`,
}

// ParseStrategy is the inverse of [Strategy.String].
func ParseStrategy(s string) (Strategy, error) {
	for i, name := range strategyNames {
		if s == name {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf(`rangesum: unknown strategy: %q`, s)
}

// String implements fmt.Stringer.
func (s Strategy) String() string {
	if s.valid() {
		return strategyNames[s]
	}
	return fmt.Sprintf(`Strategy(%d)`, int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, fmt.Errorf(`rangesum: unknown strategy: %d`, int(s))
	}
	return []byte(strategyNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(b []byte) error {
	v, err := ParseStrategy(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// IsLarge reports whether n is too large for its square to be safely
// evaluated using float64 arithmetic. It panics if n is nil, or if s is not a
// known strategy.
func (s Strategy) IsLarge(n *big.Int) bool {
	switch s {
	case StrategyExactBound:
		return n.CmpAbs(maxExactFactor64) > 0
	case StrategyEmpirical:
		f, _ := new(big.Float).SetInt(n).Float64()
		return math.IsInf(f, 0) || f != math.Sqrt(f*f/2)
	default:
		panic(fmt.Sprintf(`rangesum: unknown strategy: %d`, int(s)))
	}
}

// isLargeProduct classifies the product a*b, using only the larger operand.
func (s Strategy) isLargeProduct(a, b *big.Int) bool {
	if b.Cmp(a) > 0 {
		a = b
	}
	return s.IsLarge(a)
}

func (s Strategy) valid() bool {
	return s >= 0 && int(s) < len(strategyNames)
}
