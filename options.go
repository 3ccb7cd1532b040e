package rangesum

import (
	"fmt"

	"github.com/joeycumines/logiface"
)

// summerOptions holds configuration options for Summer creation.
type summerOptions struct {
	logger   *logiface.Logger[logiface.Event]
	strategy Strategy
}

// Option configures a Summer instance.
type Option interface {
	applySummer(*summerOptions) error
}

// optionImpl implements Option.
type optionImpl struct {
	applySummerFunc func(*summerOptions) error
}

func (o *optionImpl) applySummer(opts *summerOptions) error {
	return o.applySummerFunc(opts)
}

// WithStrategy sets the Strategy used to decide between the float64 and
// exact evaluation paths. Defaults to StrategyExactBound.
func WithStrategy(strategy Strategy) Option {
	return &optionImpl{func(opts *summerOptions) error {
		if !strategy.valid() {
			return fmt.Errorf(`rangesum: unknown strategy: %d`, int(strategy))
		}
		opts.strategy = strategy
		return nil
	}}
}

// WithLogger sets a logger, which receives a trace level event for every
// computed sum. A nil logger disables logging (the default).
func WithLogger(logger *logiface.Logger[logiface.Event]) Option {
	return &optionImpl{func(opts *summerOptions) error {
		opts.logger = logger
		return nil
	}}
}

// resolveSummerOptions applies Option instances to summerOptions.
func resolveSummerOptions(opts []Option) (*summerOptions, error) {
	cfg := &summerOptions{
		strategy: StrategyExactBound,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.applySummer(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
