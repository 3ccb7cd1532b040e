package cli

import (
	"fmt"
	"io"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

func newLogger(w io.Writer, level logiface.Level) *logiface.Logger[*stumpy.Event] {
	return stumpy.L.New(
		stumpy.L.WithStumpy(stumpy.WithWriter(w)),
		stumpy.L.WithLevel(level),
	)
}

// parseLevel is the inverse of logiface.Level.String, for the named levels.
func parseLevel(s string) (logiface.Level, error) {
	for level := logiface.LevelDisabled; level <= logiface.LevelTrace; level++ {
		if level.String() == s {
			return level, nil
		}
	}
	return logiface.LevelDisabled, fmt.Errorf(`unknown log level: %q`, s)
}
