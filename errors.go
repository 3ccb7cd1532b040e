package rangesum

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrPreconditionViolation is the sentinel matched by every input validation
// failure, via [errors.Is].
var ErrPreconditionViolation = errors.New(`rangesum: precondition violation`)

// PreconditionError describes an input that is not a natural number. It
// indicates caller misuse, and no partial result accompanies it.
type PreconditionError struct {
	// Value is the rejected input, as provided.
	Value any
	// Arg names the rejected argument, e.g. "m" or "n".
	Arg string
	// Reason is a short description of why Value was rejected.
	Reason string
}

// Error implements the error interface.
func (e *PreconditionError) Error() string {
	return `rangesum: precondition violation: ` + e.Arg + `: ` + e.Reason + `: ` + formatValue(e.Value)
}

// Unwrap returns [ErrPreconditionViolation].
func (e *PreconditionError) Unwrap() error {
	return ErrPreconditionViolation
}

func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return strNil
	case *big.Int:
		if v == nil {
			return strNil
		}
		return v.String()
	case string:
		return fmt.Sprintf(`%q`, v)
	default:
		return fmt.Sprintf(`%v (%T)`, v, v)
	}
}
