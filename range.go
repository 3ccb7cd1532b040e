package rangesum

import (
	"math/big"
)

// Range is an inclusive range of natural numbers, with Lo <= Hi.
type Range struct {
	Lo *big.Int
	Hi *big.Int
}

// NewRange validates m and n as per [Natural], and returns the range between
// them, in either order.
func NewRange(m, n any) (Range, error) {
	lo, err := natural(argM, m)
	if err != nil {
		return Range{}, err
	}
	hi, err := natural(argN, n)
	if err != nil {
		return Range{}, err
	}
	if lo.Cmp(hi) > 0 {
		lo, hi = hi, lo
	}
	return Range{Lo: lo, Hi: hi}, nil
}

// Len returns the number of integers in the range, hi - lo + 1.
func (x Range) Len() *big.Int {
	v := new(big.Int).Sub(x.Hi, x.Lo)
	return v.Add(v, bigOne)
}

// Contains reports whether v lies within the range.
func (x Range) Contains(v *big.Int) bool {
	return v != nil && x.Lo.Cmp(v) <= 0 && v.Cmp(x.Hi) <= 0
}

// String returns the range as "[lo, hi]".
func (x Range) String() string {
	if x.Lo == nil || x.Hi == nil {
		return strNil
	}
	b := append(make([]byte, 0, 16), '[')
	b = x.Lo.Append(b, 10)
	b = append(b, ',', ' ')
	b = x.Hi.Append(b, 10)
	b = append(b, ']')
	return string(b)
}

var bigOne = big.NewInt(1)

// ParseRange parses m and n as per [ParseNatural], and returns the range
// between them, in either order.
func ParseRange(m, n string) (Range, error) {
	lo, err := parseNatural(argM, m)
	if err != nil {
		return Range{}, err
	}
	hi, err := parseNatural(argN, n)
	if err != nil {
		return Range{}, err
	}
	if lo.Cmp(hi) > 0 {
		lo, hi = hi, lo
	}
	return Range{Lo: lo, Hi: hi}, nil
}
