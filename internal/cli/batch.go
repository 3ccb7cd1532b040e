package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/joeycumines/go-rangesum"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// maxLineSize bounds the length of a single batch line, which limits the
// magnitude of the inputs to roughly a megabyte of digits.
const maxLineSize = 1 << 20

// batchWindowPerWorker is the number of queries read per unit of
// concurrency, before the window is evaluated and written.
const batchWindowPerWorker = 64

// BatchOptions holds flags for the batch command.
type BatchOptions struct {
	*RootOptions
	Concurrency int
	KeepGoing   bool
}

// NewBatchCommand creates the batch command, which evaluates one query per
// line of input.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BatchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Sum one query per line of stdin",
		Long: "Reads queries from stdin, one per line, each either \"N\" or \"M N\".\n" +
			"Blank lines and lines starting with # are skipped. Results are\n" +
			"written in input order, as each window of queries completes.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Concurrency < 1 {
				return WrapExitError(ExitCommandError, `invalid flags`, fmt.Errorf(`concurrency must be positive: %d`, opts.Concurrency))
			}
			return runBatch(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVar(&opts.Concurrency, "concurrency", runtime.GOMAXPROCS(0), "maximum number of queries evaluated concurrently")
	cmd.Flags().BoolVar(&opts.KeepGoing, "keep-going", false, "report invalid lines in the output, instead of stopping")

	return cmd
}

type batchLine struct {
	err    error
	result *rangesum.Result
	query  query
	line   int
}

func runBatch(ctx context.Context, opts *BatchOptions, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		reader  = newBatchReader(in)
		w       = bufio.NewWriter(out)
		window  = opts.Concurrency * batchWindowPerWorker
		lines   = make([]batchLine, 0, window)
		queries int
		failed  int
	)
	for {
		var err error
		lines, err = reader.read(lines[:0], window)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			break
		}

		if err := evalBatch(ctx, opts, lines); err != nil {
			return err
		}

		for i := range lines {
			l := &lines[i]
			if l.err != nil {
				failed++
				opts.logger.Warning().
					Int(`line`, l.line).
					Err(l.err).
					Log(`invalid batch line`)
				err = writeLineError(w, opts.JSON, l.line, l.err)
			} else {
				err = writeResult(w, opts.JSON, l.result)
			}
			if err != nil {
				return err
			}
		}
		if err := w.Flush(); err != nil {
			return err
		}
		queries += len(lines)

		if len(lines) < window {
			break
		}
	}

	opts.logger.Info().
		Int(`queries`, queries).
		Int(`failed`, failed).
		Log(`batch complete`)

	return nil
}

// evalBatch evaluates a window of lines concurrently, storing each result (or
// error) on its line.
func evalBatch(ctx context.Context, opts *BatchOptions, lines []batchLine) error {
	if !opts.KeepGoing {
		for _, l := range lines {
			if l.err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf(`line %d`, l.line), l.err)
			}
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)
	for i := range lines {
		if lines[i].err != nil {
			continue
		}
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			l := &lines[i]
			l.result, l.err = l.query.eval(opts.summer)
			if l.err != nil && !opts.KeepGoing {
				return WrapExitError(ExitCommandError, fmt.Sprintf(`line %d`, l.line), l.err)
			}
			return nil
		})
	}
	return g.Wait()
}

// batchReader reads queries from input, one window at a time.
type batchReader struct {
	scanner *bufio.Scanner
	line    int
}

func newBatchReader(in io.Reader) *batchReader {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	return &batchReader{scanner: scanner}
}

// read appends up to limit queries to lines, recording (rather than
// returning) errors that are specific to a line. Fewer than limit queries
// are returned only at the end of the input.
func (x *batchReader) read(lines []batchLine, limit int) ([]batchLine, error) {
	for len(lines) < limit && x.scanner.Scan() {
		x.line++
		text := strings.TrimSpace(x.scanner.Text())
		if text == `` || strings.HasPrefix(text, `#`) {
			continue
		}
		q, err := parseQuery(strings.Fields(text))
		lines = append(lines, batchLine{line: x.line, query: q, err: err})
	}
	if err := x.scanner.Err(); err != nil {
		return nil, fmt.Errorf(`failed to read batch: %w`, err)
	}
	return lines, nil
}
