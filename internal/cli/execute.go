package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Execute runs the CLI with the given arguments and streams, returning the
// exit code. Errors are written to stderr.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "%s%s\n", errPrefix, strings.TrimPrefix(err.Error(), errPrefix))
	}
	return GetExitCode(err)
}
