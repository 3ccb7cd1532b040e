// Package cli implements the rangesum command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/joeycumines/go-rangesum"
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
	"github.com/spf13/cobra"
)

// Environment variables, used when the corresponding flag is not set.
const (
	EnvStrategy = `RANGESUM_STRATEGY`
	EnvLogLevel = `RANGESUM_LOG_LEVEL`
)

const defaultLogLevel = `warning`

// RootOptions holds global flags for all commands, and the state resolved
// from them, prior to running any command.
type RootOptions struct {
	Strategy string
	LogLevel string
	JSON     bool

	summer *rangesum.Summer
	logger *logiface.Logger[*stumpy.Event]
}

// NewRootCommand creates the root command for the rangesum CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "rangesum [flags] [M] N",
		Short: "Sum consecutive natural numbers",
		Long: "Computes 1 + 2 + ... + N, or M + ... + N (in either order), exactly,\n" +
			"for natural numbers of any magnitude.",
		Args:          validateArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSum(cmd, opts, args)
		},
	}

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, `invalid flags`, err)
	})

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.Strategy, "strategy", rangesum.StrategyExactBound.String(), "magnitude classification strategy (exact-bound|empirical), or $"+EnvStrategy)
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", defaultLogLevel, "log level (disabled|emerg|alert|crit|err|warning|notice|info|debug|trace), or $"+EnvLogLevel)
	cmd.PersistentFlags().BoolVar(&opts.JSON, "json", false, "output one JSON object per result")

	// Add subcommands
	cmd.AddCommand(NewBatchCommand(opts))

	return cmd
}

func validateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(1, 2)(cmd, args); err != nil {
		return WrapExitError(ExitCommandError, `invalid arguments`, err)
	}
	return nil
}

// resolve applies environment defaults, then validates the flags, and
// initializes the logger and summer.
func (x *RootOptions) resolve(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if v, ok := os.LookupEnv(EnvStrategy); ok && !flags.Changed("strategy") {
		x.Strategy = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && !flags.Changed("log-level") {
		x.LogLevel = v
	}

	strategy, err := rangesum.ParseStrategy(x.Strategy)
	if err != nil {
		return WrapExitError(ExitCommandError, `invalid strategy`, err)
	}

	level, err := parseLevel(x.LogLevel)
	if err != nil {
		return WrapExitError(ExitCommandError, `invalid log level`, err)
	}

	x.logger = newLogger(cmd.ErrOrStderr(), level)

	x.summer, err = rangesum.New(
		rangesum.WithStrategy(strategy),
		rangesum.WithLogger(x.logger.Logger()),
	)
	if err != nil {
		// note: unreachable (the strategy was parsed)
		return fmt.Errorf(`failed to initialize summer: %w`, err)
	}

	x.logger.Debug().
		Stringer(`strategy`, strategy).
		Stringer(`log_level`, level).
		Log(`resolved options`)

	return nil
}

func runSum(cmd *cobra.Command, opts *RootOptions, args []string) error {
	q, err := parseQuery(args)
	if err != nil {
		return WrapExitError(ExitCommandError, `invalid arguments`, err)
	}
	result, err := q.eval(opts.summer)
	if err != nil {
		return WrapExitError(ExitCommandError, `invalid arguments`, err)
	}
	return writeResult(cmd.OutOrStdout(), opts.JSON, result)
}
