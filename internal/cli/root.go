package cli

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/sort-visualization/internal/config"
	"github.com/iburimskiy/sort-visualization/internal/sorting"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	ConfigPath string
	Algorithm  string
	Values     string
	Size       int
	Seed       int64
	Interval   time.Duration
	Mute       bool
}

// Launcher opens a front-end on a resolved configuration and blocks until
// the user closes it.
type Launcher func(cfg config.Config, algo sorting.Algorithm, values []float64) error

// Launchers are the interactive front-ends. They are injected so this
// package stays free of window-system dependencies.
type Launchers struct {
	GUI Launcher
	TUI Launcher
}

// NewRootCommand creates the root command. Without a subcommand it opens the
// GUI.
func NewRootCommand(launchers Launchers) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "sortviz",
		Short: "Step-by-step sorting algorithm visualizer",
		Long: `Animate bubble, selection, insertion, merge and quick sort one
comparison or write at a time, with live comparison and swap counters.

Examples:
  sortviz
  sortviz --algorithm quick --values "5, 3, 8, 1"
  sortviz tui --size 30 --interval 50ms
  sortviz trace --algorithm merge --values "5 3 8 1" --format json
  sortviz config --seed 7 > run.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cmd.ErrOrStderr(), opts.Verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return launch(opts, cmd, launchers.GUI, "gui")
		},
	}

	// Global flags
	flags := cmd.PersistentFlags()
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "path to a YAML config file")
	flags.StringVarP(&opts.Algorithm, "algorithm", "a", "", "algorithm (bubble|selection|insertion|merge|quick)")
	flags.StringVar(&opts.Values, "values", "", "comma-separated values to sort instead of a random array")
	flags.IntVarP(&opts.Size, "size", "n", sorting.DefaultSize, "number of random bars")
	flags.Int64Var(&opts.Seed, "seed", 0, "random seed (0 picks one from the clock)")
	flags.DurationVarP(&opts.Interval, "interval", "i", 0, "time between ticks, e.g. 200ms")
	flags.BoolVar(&opts.Mute, "mute", false, "disable tones")

	cmd.AddCommand(NewGUICommand(opts, launchers.GUI))
	cmd.AddCommand(NewTUICommand(opts, launchers.TUI))
	cmd.AddCommand(NewTraceCommand(opts))
	cmd.AddCommand(NewComplexityCommand(opts))
	cmd.AddCommand(NewConfigCommand(opts))

	return cmd
}

func setupLogging(w io.Writer, verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// resolve merges the config file, explicit flags and the random generator
// into what a front-end starts with. Flags win over the file only when set.
func resolve(opts *RootOptions, cmd *cobra.Command) (config.Config, sorting.Algorithm, []float64, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, 0, nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}

	flags := cmd.Flags()
	if flags.Changed("algorithm") {
		cfg.Algorithm = opts.Algorithm
	}
	if flags.Changed("size") {
		cfg.Size = opts.Size
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.Seed
	}
	if flags.Changed("interval") {
		cfg.Interval = opts.Interval
	}
	if flags.Changed("mute") {
		cfg.Sound = !opts.Mute
	}
	if flags.Changed("values") {
		values, err := sorting.ParseValues(opts.Values)
		if err != nil {
			return config.Config{}, 0, nil, WrapExitError(ExitCommandError, "invalid --values", err)
		}
		cfg.Values = values
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, 0, nil, WrapExitError(ExitCommandError, "invalid settings", err)
	}

	algo, err := sorting.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return config.Config{}, 0, nil, WrapExitError(ExitCommandError, fmt.Sprintf("invalid algorithm %q", cfg.Algorithm), err)
	}

	values := cfg.Values
	if values == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		values = sorting.Random(rand.New(rand.NewSource(seed)), cfg.Size, cfg.MaxValue)
		slog.Debug("random array", "seed", seed, "size", cfg.Size, "max", cfg.MaxValue)
	}
	return cfg, algo, values, nil
}

// launch resolves the settings and hands them to a front-end.
func launch(opts *RootOptions, cmd *cobra.Command, l Launcher, name string) error {
	if l == nil {
		return NewExitError(ExitCommandError, fmt.Sprintf("%s front-end is not available in this build", name))
	}
	cfg, algo, values, err := resolve(opts, cmd)
	if err != nil {
		return err
	}
	slog.Info("opening front-end", "ui", name, "algorithm", algo, "size", len(values))
	if err := l(cfg, algo, values); err != nil {
		return WrapExitError(ExitFailure, fmt.Sprintf("%s exited with an error", name), err)
	}
	return nil
}
