// Package driver schedules a sorting engine in time.
//
// A Driver calls Advance at most once per interval, one call at a time, and
// never between a Reset and the end of that Reset. The interval is pure
// metadata: changing it while a run is in flight never skips, repeats or
// reorders a tick.
package driver

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iburimskiy/sort-visualization/internal/sorting"
)

const (
	DefaultInterval = 200 * time.Millisecond
	MinInterval     = 10 * time.Millisecond
	MaxInterval     = 1000 * time.Millisecond

	// maxTicksPerUpdate caps catch-up work after a long frame.
	maxTicksPerUpdate = 64
)

// State is the lifecycle of the current run.
type State int

const (
	Idle State = iota
	Running
	Paused
	Finished
	Failed
)

var stateNames = [...]string{"idle", "running", "paused", "finished", "failed"}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Run identifies one sort from Start until it finishes or is replaced.
type Run struct {
	ID        string
	Algorithm string
	Size      int
	Started   time.Time
}

// Driver owns an engine and ticks it. All methods are safe for concurrent
// use; ticks are serialized.
type Driver struct {
	mu sync.Mutex

	engine   sorting.Engine
	interval time.Duration
	fastest  time.Duration
	slowest  time.Duration
	pending  time.Duration
	state    State
	run      Run
	ticks    int

	newID  func() string
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Driver.
type Option func(*Driver)

// WithInterval sets the starting interval (clamped to the bounds).
func WithInterval(d time.Duration) Option {
	return func(dr *Driver) { dr.interval = d }
}

// WithBounds overrides MinInterval and MaxInterval.
func WithBounds(fastest, slowest time.Duration) Option {
	return func(dr *Driver) { dr.fastest, dr.slowest = fastest, slowest }
}

// WithIDGenerator replaces the UUIDv7 run ID generator (for tests).
func WithIDGenerator(f func() string) Option {
	return func(dr *Driver) { dr.newID = f }
}

// WithClock replaces time.Now for run timestamps.
func WithClock(now func() time.Time) Option {
	return func(dr *Driver) { dr.now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(dr *Driver) { dr.logger = l }
}

// New returns an idle driver for e.
func New(e sorting.Engine, opts ...Option) *Driver {
	d := &Driver{
		engine:   e,
		interval: DefaultInterval,
		fastest:  MinInterval,
		slowest:  MaxInterval,
		newID:    func() string { return uuid.Must(uuid.NewV7()).String() },
		now:      time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.slowest < d.fastest {
		d.fastest, d.slowest = d.slowest, d.fastest
	}
	d.interval = d.clamp(d.interval)
	return d
}

func (d *Driver) clamp(iv time.Duration) time.Duration {
	if iv < d.fastest {
		return d.fastest
	}
	if iv > d.slowest {
		return d.slowest
	}
	return iv
}

// Engine returns the engine being driven.
func (d *Driver) Engine() sorting.Engine {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.engine
}

// SetEngine swaps the engine. Any run in flight is cancelled and the new
// engine is loaded with the current values.
func (d *Driver) SetEngine(e sorting.Engine) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	values := d.engine.Values()
	if err := e.Reset(values); err != nil {
		return err
	}
	d.engine = e
	d.cancelLocked()
	return nil
}

// Load resets the engine with values without starting a run. Invalid input
// leaves both the driver and the engine untouched.
func (d *Driver) Load(values []float64) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.engine.Reset(values); err != nil {
		return err
	}
	d.cancelLocked()
	return nil
}

// Start cancels any run in flight, resets the engine with values and begins
// a new run. Invalid input leaves everything as it was.
func (d *Driver) Start(values []float64) (Run, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.engine.Reset(values); err != nil {
		return Run{}, err
	}
	d.cancelLocked()
	d.run = Run{
		ID:        d.newID(),
		Algorithm: d.engine.Name(),
		Size:      len(values),
		Started:   d.now(),
	}
	d.state = Running
	d.logger.Info("run started",
		"run", d.run.ID,
		"algorithm", d.run.Algorithm,
		"size", d.run.Size,
		"interval", d.interval,
	)
	d.settleLocked()
	return d.run, nil
}

// Restart starts a new run over the engine's current values.
func (d *Driver) Restart() (Run, error) {
	return d.Start(d.Engine().Values())
}

func (d *Driver) cancelLocked() {
	if d.state == Running || d.state == Paused {
		d.logger.Debug("run cancelled", "run", d.run.ID, "ticks", d.ticks)
	}
	d.state = Idle
	d.run = Run{}
	d.ticks = 0
	d.pending = 0
}

// Stop abandons the current run. The engine keeps its state.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == Running || d.state == Paused {
		d.logger.Info("run stopped", "run", d.run.ID, "ticks", d.ticks)
		d.state = Idle
		d.pending = 0
	}
}

func (d *Driver) Pause() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == Running {
		d.state = Paused
	}
}

func (d *Driver) Resume() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == Paused {
		d.state = Running
		d.pending = 0
	}
}

// TogglePause flips between Running and Paused.
func (d *Driver) TogglePause() {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch d.state {
	case Running:
		d.state = Paused
	case Paused:
		d.state = Running
		d.pending = 0
	}
}

// SetInterval changes the tick interval, clamped to the bounds. It touches
// nothing but the interval.
func (d *Driver) SetInterval(iv time.Duration) time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.interval = d.clamp(iv)
	return d.interval
}

func (d *Driver) Interval() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.interval
}

// SetSpeed maps s in [0, 1] onto the interval range, 1 being the fastest.
func (d *Driver) SetSpeed(s float64) time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	s = clamp01(s)
	span := float64(d.slowest - d.fastest)
	d.interval = d.clamp(d.slowest - time.Duration(s*span))
	return d.interval
}

// Speed is the inverse of SetSpeed.
func (d *Driver) Speed() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.slowest == d.fastest {
		return 1
	}
	return float64(d.slowest-d.interval) / float64(d.slowest-d.fastest)
}

func (d *Driver) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Current returns the handle of the latest run; the zero Run before any
// Start.
func (d *Driver) Current() Run {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.run
}

// Ticks returns the number of Advance calls made in the current run.
func (d *Driver) Ticks() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ticks
}

func (d *Driver) Counts() sorting.Counts {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.engine.Counts()
}

// Err returns the engine error that failed the run, if any.
func (d *Driver) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.engine.Err()
}

// Update feeds elapsed wall time to a running driver and performs one tick
// per whole interval accumulated, in order. It returns the ticks performed.
func (d *Driver) Update(elapsed time.Duration) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != Running {
		return 0
	}
	d.pending += elapsed
	n := 0
	for d.pending >= d.interval && d.state == Running {
		if n == maxTicksPerUpdate {
			d.pending = 0
			break
		}
		d.pending -= d.interval
		d.tickLocked()
		n++
	}
	return n
}

// Step performs exactly one tick of a running or paused run, regardless of
// time. It reports whether a tick happened.
func (d *Driver) Step() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != Running && d.state != Paused {
		return false
	}
	d.tickLocked()
	return true
}

// Finish ticks the current run to the end without any timing.
func (d *Driver) Finish() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for d.state == Running || d.state == Paused {
		d.tickLocked()
	}
	return d.engine.Err()
}

func (d *Driver) tickLocked() {
	d.engine.Advance()
	d.ticks++
	d.logger.Debug("tick", "run", d.run.ID, "tick", d.ticks, "phase", d.engine.Phase())
	d.settleLocked()
}

// settleLocked moves a finished engine into a terminal state.
func (d *Driver) settleLocked() {
	if !d.engine.Done() {
		return
	}
	counts := d.engine.Counts()
	if err := d.engine.Err(); err != nil {
		d.state = Failed
		d.logger.Error("run failed", "run", d.run.ID, "ticks", d.ticks, "error", err)
		return
	}
	d.state = Finished
	d.logger.Info("run finished",
		"run", d.run.ID,
		"ticks", d.ticks,
		"comparisons", counts.Comparisons,
		"swaps", counts.Swaps,
		"elapsed", d.now().Sub(d.run.Started),
	)
}

// Loop ticks the driver in real time until the run ends or ctx is done.
// Interval changes are picked up after the next tick.
func (d *Driver) Loop(ctx context.Context) error {
	current := d.Interval()
	ticker := time.NewTicker(current)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.Stop()
			return ctx.Err()
		case <-ticker.C:
			d.mu.Lock()
			if d.state == Running {
				d.tickLocked()
			}
			state, iv := d.state, d.interval
			d.mu.Unlock()

			switch state {
			case Finished, Idle:
				return nil
			case Failed:
				return d.Err()
			}
			if iv != current {
				current = iv
				ticker.Reset(current)
			}
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
