package cli

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/joeycumines/go-rangesum"
	"github.com/joeycumines/go-utilpkg/jsonenc"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Unexpected failure (e.g. I/O errors)
	ExitCommandError = 2 // Invalid input (flags, arguments, or precondition violations)
)

// errPrefix is shared by the CLI's diagnostics and the errors of the rangesum
// package, and is written at most once per message.
const errPrefix = `rangesum: `

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Err     error  // Underlying error (optional)
	Message string // Error message
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Message + `: ` + strings.TrimPrefix(e.Err.Error(), errPrefix)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error. Precondition violations
// map to ExitCommandError, and other errors that are not an ExitError map to
// ExitFailure.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if errors.Is(err, rangesum.ErrPreconditionViolation) {
		return ExitCommandError
	}
	return ExitFailure
}

func writeResult(w io.Writer, asJSON bool, result *rangesum.Result) error {
	var b []byte
	if asJSON {
		var err error
		b, err = json.Marshal(result)
		if err != nil {
			return err
		}
	} else {
		b = result.Sum.Append(b, 10)
	}
	b = append(b, '\n')
	_, err := w.Write(b)
	return err
}

// writeLineError writes a failed batch line, in the same format as
// successful results.
func writeLineError(w io.Writer, asJSON bool, line int, err error) error {
	var b []byte
	if asJSON {
		b = append(b, `{"line":`...)
		b = strconv.AppendInt(b, int64(line), 10)
		b = append(b, `,"error":`...)
		b = jsonenc.AppendString(b, err.Error())
		b = append(b, '}')
	} else {
		b = append(b, `line `...)
		b = strconv.AppendInt(b, int64(line), 10)
		b = append(b, `: error: `...)
		b = append(b, err.Error()...)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
