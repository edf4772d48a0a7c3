package sorting

import (
	"fmt"
	"log/slog"
)

// Engine is a resumable, single-step sorting state machine.
//
// Hosts must not call Advance concurrently with itself or with Reset. Calling
// Reset mid-run discards the previous run entirely.
type Engine interface {
	// Reset starts a new run over a copy of values. An empty slice is valid
	// and yields a run that is already done. Non-finite values are rejected
	// with an *InputError and the engine is left as it was.
	Reset(values []float64) error
	// Advance performs one unit of work. It is a no-op once Done.
	Advance()
	Done() bool
	// Err is non-nil when the run ended on an invariant violation.
	Err() error
	Counts() Counts
	Name() string
	// Phase names the state the next Advance will execute.
	Phase() string
	Values() []float64
	Categories() []Category
}

// machine carries what every engine shares: the store and the terminal flags.
type machine struct {
	name  string
	store *Store
	done  bool
	err   error
}

func newMachine(name string, sink Sink) machine {
	return machine{name: name, store: NewStore(sink)}
}

func (m *machine) Name() string           { return m.name }
func (m *machine) Done() bool             { return m.done }
func (m *machine) Err() error             { return m.err }
func (m *machine) Counts() Counts         { return m.store.Counts() }
func (m *machine) Values() []float64      { return m.store.Values() }
func (m *machine) Categories() []Category { return m.store.Categories() }

// begin loads values into the store. Zero-length input is done immediately.
func (m *machine) begin(values []float64) error {
	if err := m.store.Reset(values); err != nil {
		return err
	}
	m.done = len(values) == 0
	m.err = nil
	return nil
}

// finish marks every element Sorted and freezes the run.
func (m *machine) finish() {
	m.store.PaintAll(Sorted)
	m.done = true
}

// verify scans the array once. An out-of-order array terminates the run with
// an *InvariantError, logged as a fatal internal error.
func (m *machine) verify() {
	if at := m.store.firstDescent(); at >= 0 {
		m.err = &InvariantError{Code: ErrCodeNotSorted, Algorithm: m.name, Index: at}
		m.done = true
		slog.Error("internal error: sort finished out of order",
			"algorithm", m.name,
			"index", at,
			"counts", fmt.Sprintf("%+v", m.store.Counts()),
		)
		return
	}
	m.finish()
}
