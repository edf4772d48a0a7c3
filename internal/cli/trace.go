package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/iburimskiy/sort-visualization/internal/driver"
	"github.com/iburimskiy/sort-visualization/internal/sorting"
	"github.com/iburimskiy/sort-visualization/internal/trace"
)

// DefaultTraceLimit bounds a trace so a runaway engine cannot loop forever.
const DefaultTraceLimit = 100000

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	*RootOptions
	Format   string
	Limit    int
	Summary  bool
	Realtime bool
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Print a run tick by tick",
		Long: `Run one algorithm headless and print the state after every tick:
phase, values, per-bar categories (U unsorted, C comparing, M marker,
P pivot, S sorted) and the comparison and swap counters.

With --summary only the final counters are printed. --realtime paces a
summary run at --interval instead of finishing it immediately; the counts
are the same either way.

Examples:
  sortviz trace --algorithm bubble --values "5, 3, 8, 1"
  sortviz trace -a quick -n 40 --seed 7 --summary
  sortviz trace -a merge --values "5 3 8 1" --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "text", "output format (json|text)")
	cmd.Flags().IntVar(&opts.Limit, "limit", DefaultTraceLimit, "maximum ticks before giving up (0 = no limit)")
	cmd.Flags().BoolVar(&opts.Summary, "summary", false, "print only the final counters")
	cmd.Flags().BoolVar(&opts.Realtime, "realtime", false, "pace a --summary run at the tick interval")

	return cmd
}

// TraceSummary is the outcome of a run.
type TraceSummary struct {
	Run         string `json:"run,omitempty"`
	Algorithm   string `json:"algorithm"`
	Size        int    `json:"size"`
	Ticks       int    `json:"ticks"`
	Comparisons int    `json:"comparisons"`
	Swaps       int    `json:"swaps"`
	Complexity  string `json:"complexity"`

	// Render updates the sink received, including the reset push.
	ValueUpdates    int `json:"value_updates"`
	CategoryUpdates int `json:"category_updates"`
}

func runTrace(opts *TraceOptions, cmd *cobra.Command) error {
	cfg, algo, values, err := resolve(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	rec := &trace.Recorder{}
	e, err := sorting.New(algo, rec)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to build engine", err)
	}
	out := cmd.OutOrStdout()

	if opts.Summary {
		d := driver.New(e,
			driver.WithBounds(cfg.MinInterval, cfg.MaxInterval),
			driver.WithInterval(cfg.Interval),
		)
		return runSummary(opts, cmd, d, rec, values)
	}

	frames, err := trace.Record(e, values, opts.Limit)
	if err != nil && len(frames) == 0 {
		return WrapExitError(ExitCommandError, "invalid values", err)
	}
	if opts.Format == "json" {
		if werr := trace.WriteJSON(out, frames); werr != nil {
			return WrapExitError(ExitCommandError, "failed to write trace", werr)
		}
	} else {
		if werr := trace.WriteText(out, frames); werr != nil {
			return WrapExitError(ExitCommandError, "failed to write trace", werr)
		}
		last := frames[len(frames)-1]
		writeSummary(out, TraceSummary{
			Algorithm:   algo.String(),
			Size:        len(values),
			Ticks:       last.Tick,
			Comparisons: last.Counts.Comparisons,
			Swaps:       last.Counts.Swaps,
			Complexity:  sorting.Complexity(algo.String()),

			ValueUpdates:    rec.Count(trace.ValueEvent),
			CategoryUpdates: rec.Count(trace.CategoryEvent),
		})
	}
	return traceFailure(err)
}

func runSummary(opts *TraceOptions, cmd *cobra.Command, d *driver.Driver, rec *trace.Recorder, values []float64) error {
	run, err := d.Start(values)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid values", err)
	}
	if opts.Realtime {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err = d.Loop(ctx)
		if errors.Is(err, context.Canceled) {
			return WrapExitError(ExitFailure, "interrupted", err)
		}
	} else {
		err = d.Finish()
	}

	counts := d.Counts()
	s := TraceSummary{
		Run:         run.ID,
		Algorithm:   run.Algorithm,
		Size:        run.Size,
		Ticks:       d.Ticks(),
		Comparisons: counts.Comparisons,
		Swaps:       counts.Swaps,
		Complexity:  sorting.Complexity(run.Algorithm),

		ValueUpdates:    rec.Count(trace.ValueEvent),
		CategoryUpdates: rec.Count(trace.CategoryEvent),
	}
	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		if werr := writeJSON(out, s); werr != nil {
			return WrapExitError(ExitCommandError, "failed to write summary", werr)
		}
	} else {
		writeSummary(out, s)
	}
	return traceFailure(err)
}

// traceFailure maps a run error to an exit error.
func traceFailure(err error) error {
	if err == nil {
		return nil
	}
	var limitErr *trace.LimitError
	if errors.As(err, &limitErr) {
		return WrapExitError(ExitFailure, "run did not finish", err)
	}
	if sorting.IsInvariantError(err) {
		return WrapExitError(ExitFailure, "run failed", err)
	}
	return WrapExitError(ExitCommandError, "trace failed", err)
}

func writeSummary(w io.Writer, s TraceSummary) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "%s: %d bars, %d ticks, %d comparisons, %d swaps (%s)\n",
		s.Algorithm, s.Size, s.Ticks, s.Comparisons, s.Swaps, s.Complexity)
	p.Fprintf(w, "render updates: %d values, %d categories\n", s.ValueUpdates, s.CategoryUpdates)
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
