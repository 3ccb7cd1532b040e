package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/joeycumines/go-rangesum"
	"github.com/joeycumines/logiface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExitCode(t *testing.T) {
	_, precondition := rangesum.SumFrom1ToN(-1)
	require.Error(t, precondition)

	for _, tt := range [...]struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain", errors.New(`boom`), ExitFailure},
		{"precondition", precondition, ExitCommandError},
		{"wrapped precondition", fmt.Errorf(`wrapped: %w`, precondition), ExitCommandError},
		{"exit error", WrapExitError(ExitFailure, `io`, precondition), ExitFailure},
		{"wrapped exit error", fmt.Errorf(`wrapped: %w`, &ExitError{Code: 7, Message: `x`}), 7},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetExitCode(tt.err))
		})
	}
}

func TestExitError(t *testing.T) {
	err := WrapExitError(ExitCommandError, `invalid arguments`, errors.New(`cause`))
	assert.EqualError(t, err, `invalid arguments: cause`)
	assert.EqualError(t, &ExitError{Message: `just a message`}, `just a message`)
	assert.Nil(t, (&ExitError{}).Unwrap())

	_, cause := rangesum.ParseNatural(`-1`)
	require.Error(t, cause)
	err = WrapExitError(ExitCommandError, `line 3`, cause)
	assert.EqualError(t, err, `line 3: precondition violation: n: negative value: "-1"`)
	assert.ErrorIs(t, err, rangesum.ErrPreconditionViolation)
}

func TestParseLevel(t *testing.T) {
	for _, level := range [...]logiface.Level{
		logiface.LevelDisabled,
		logiface.LevelEmergency,
		logiface.LevelError,
		logiface.LevelWarning,
		logiface.LevelInformational,
		logiface.LevelDebug,
		logiface.LevelTrace,
	} {
		got, err := parseLevel(level.String())
		require.NoError(t, err)
		assert.Equal(t, level, got)
	}
	_, err := parseLevel(`verbose`)
	assert.EqualError(t, err, `unknown log level: "verbose"`)
}
