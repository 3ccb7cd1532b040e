package rangesum

import (
	"math/big"
	"strings"

	"golang.org/x/exp/constraints"
)

const (
	argN = `n`
	argM = `m`
)

// Natural validates that v is a natural number, returning a copy of it.
//
// Only exact integer kinds are accepted: the built-in integer types, and
// (non-nil) *[math/big.Int]. Floating point values are rejected even if they
// happen to be integral, as are negative values. All failures are a
// *[PreconditionError].
func Natural(v any) (*big.Int, error) {
	return natural(argN, v)
}

// NaturalOf is the statically typed equivalent of [Natural].
func NaturalOf[T constraints.Integer](v T) (*big.Int, error) {
	return naturalOf(argN, v)
}

// ParseNatural parses a base 10 natural number, with an optional leading
// "+". Fractions, exponents, and any other formatting are rejected.
func ParseNatural(s string) (*big.Int, error) {
	return parseNatural(argN, s)
}

func natural(arg string, v any) (*big.Int, error) {
	switch v := v.(type) {
	case int:
		return naturalOf(arg, v)
	case int8:
		return naturalOf(arg, v)
	case int16:
		return naturalOf(arg, v)
	case int32:
		return naturalOf(arg, v)
	case int64:
		return naturalOf(arg, v)
	case uint:
		return naturalOf(arg, v)
	case uint8:
		return naturalOf(arg, v)
	case uint16:
		return naturalOf(arg, v)
	case uint32:
		return naturalOf(arg, v)
	case uint64:
		return naturalOf(arg, v)
	case uintptr:
		return naturalOf(arg, v)
	case *big.Int:
		if v == nil {
			return nil, &PreconditionError{Arg: arg, Value: v, Reason: `nil value`}
		}
		if v.Sign() < 0 {
			return nil, &PreconditionError{Arg: arg, Value: v, Reason: `negative value`}
		}
		return new(big.Int).Set(v), nil
	default:
		return nil, &PreconditionError{Arg: arg, Value: v, Reason: `not an exact integer`}
	}
}

func naturalOf[T constraints.Integer](arg string, v T) (*big.Int, error) {
	if v < 0 {
		return nil, &PreconditionError{Arg: arg, Value: v, Reason: `negative value`}
	}
	return new(big.Int).SetUint64(uint64(v)), nil
}

func parseNatural(arg string, s string) (*big.Int, error) {
	digits := strings.TrimPrefix(s, `+`)
	if digits == `` {
		return nil, &PreconditionError{Arg: arg, Value: s, Reason: `not an exact integer`}
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			if digits[i] == '-' && i == 0 {
				return nil, &PreconditionError{Arg: arg, Value: s, Reason: `negative value`}
			}
			return nil, &PreconditionError{Arg: arg, Value: s, Reason: `not an exact integer`}
		}
	}
	v, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		// note: unreachable
		return nil, &PreconditionError{Arg: arg, Value: s, Reason: `not an exact integer`}
	}
	return v, nil
}
