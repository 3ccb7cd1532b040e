package rangesum

import (
	"math/big"

	"github.com/joeycumines/logiface"
)

// Summer computes sums of consecutive natural numbers. It holds no mutable
// state, and is safe for concurrent use.
type Summer struct {
	logger   *logiface.Logger[logiface.Event]
	strategy Strategy
}

var defaultSummer = &Summer{strategy: StrategyExactBound}

// New initializes a new Summer, see also [Option].
func New(opts ...Option) (*Summer, error) {
	cfg, err := resolveSummerOptions(opts)
	if err != nil {
		return nil, err
	}
	return &Summer{
		logger:   cfg.logger,
		strategy: cfg.strategy,
	}, nil
}

// Strategy returns the configured Strategy.
func (x *Summer) Strategy() Strategy {
	return x.strategy
}

// SumFrom1ToN returns 1 + 2 + ... + n, or 0 if n is 0, evaluated as
// n * (n + 1) / 2. The value of n must be accepted by [Natural], otherwise a
// *[PreconditionError] is returned.
func (x *Summer) SumFrom1ToN(n any) (*big.Int, error) {
	v, err := natural(argN, n)
	if err != nil {
		return nil, err
	}
	return x.sumFrom1ToN(v).Sum, nil
}

// SumFromMToN returns the sum of all integers from min(m, n) to max(m, n),
// inclusive, evaluated as (hi - lo + 1) * (hi + lo) / 2. Both m and n must be
// accepted by [Natural], otherwise a *[PreconditionError] is returned.
func (x *Summer) SumFromMToN(m, n any) (*big.Int, error) {
	r, err := NewRange(m, n)
	if err != nil {
		return nil, err
	}
	return x.sumRange(r).Sum, nil
}

// Sum behaves like [Summer.SumFromMToN], but returns the normalized range
// and the evaluation path, in addition to the sum.
func (x *Summer) Sum(m, n any) (*Result, error) {
	r, err := NewRange(m, n)
	if err != nil {
		return nil, err
	}
	return x.sumRange(r), nil
}

// SumTo behaves like [Summer.SumFrom1ToN], but returns a Result. The range of
// the result is [0, n], which has the same sum as [1, n].
func (x *Summer) SumTo(n any) (*Result, error) {
	v, err := natural(argN, n)
	if err != nil {
		return nil, err
	}
	return x.sumFrom1ToN(v), nil
}

func (x *Summer) sumFrom1ToN(n *big.Int) *Result {
	next := new(big.Int).Add(n, bigOne)
	large := x.strategy.isLargeProduct(n, next)
	sum := halfProduct(n, next, large)
	x.logger.Trace().
		Str(`op`, `sum_from_1_to_n`).
		Stringer(`n`, n).
		Bool(`rational`, large).
		Stringer(`sum`, sum).
		Log(`computed range sum`)
	return &Result{
		Range:    Range{Lo: new(big.Int), Hi: n},
		Sum:      sum,
		Rational: large,
		Strategy: x.strategy,
	}
}

func (x *Summer) sumRange(r Range) *Result {
	count := r.Len()
	total := new(big.Int).Add(r.Hi, r.Lo)
	large := x.strategy.isLargeProduct(total, count)
	sum := halfProduct(count, total, large)
	x.logger.Trace().
		Str(`op`, `sum_from_m_to_n`).
		Stringer(`lo`, r.Lo).
		Stringer(`hi`, r.Hi).
		Bool(`rational`, large).
		Stringer(`sum`, sum).
		Log(`computed range sum`)
	return &Result{
		Range:    r,
		Sum:      sum,
		Rational: large,
		Strategy: x.strategy,
	}
}

// SumFrom1ToN is [Summer.SumFrom1ToN] using the default configuration.
func SumFrom1ToN(n any) (*big.Int, error) {
	return defaultSummer.SumFrom1ToN(n)
}

// SumFromMToN is [Summer.SumFromMToN] using the default configuration.
func SumFromMToN(m, n any) (*big.Int, error) {
	return defaultSummer.SumFromMToN(m, n)
}

// MustSumFrom1ToN is like [SumFrom1ToN], but panics with the
// *[PreconditionError] if n is invalid.
func MustSumFrom1ToN(n any) *big.Int {
	v, err := SumFrom1ToN(n)
	if err != nil {
		panic(err)
	}
	return v
}

// MustSumFromMToN is like [SumFromMToN], but panics with the
// *[PreconditionError] if m or n are invalid.
func MustSumFromMToN(m, n any) *big.Int {
	v, err := SumFromMToN(m, n)
	if err != nil {
		panic(err)
	}
	return v
}
