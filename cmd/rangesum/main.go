// Command rangesum sums consecutive natural numbers, exactly, in constant
// time.
//
// Usage:
//
//	rangesum [flags] [M] N
//	rangesum batch [flags] < queries.txt
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/joeycumines/go-rangesum/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
