package trace

import "github.com/iburimskiy/sort-visualization/internal/sorting"

// EventKind tells value pushes from category pushes.
type EventKind uint8

const (
	ValueEvent EventKind = iota
	CategoryEvent
	ResetEvent
)

// Event is one update received by a Recorder.
type Event struct {
	Kind     EventKind
	Index    int
	Value    float64
	Category sorting.Category
}

// Recorder is a sorting.Sink that keeps every update in arrival order.
type Recorder struct {
	Events []Event
}

func (r *Recorder) Reset(n int) {
	r.Events = append(r.Events, Event{Kind: ResetEvent, Index: n})
}

func (r *Recorder) ValueChanged(index int, value float64) {
	r.Events = append(r.Events, Event{Kind: ValueEvent, Index: index, Value: value})
}

func (r *Recorder) CategoryChanged(index int, category sorting.Category) {
	r.Events = append(r.Events, Event{Kind: CategoryEvent, Index: index, Category: category})
}

// Clear drops recorded events.
func (r *Recorder) Clear() { r.Events = r.Events[:0] }

// Count returns how many events of kind were recorded.
func (r *Recorder) Count(kind EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Replay applies recorded updates to values and categories, the way a
// renderer mirroring the store would.
func (r *Recorder) Replay() ([]float64, []sorting.Category) {
	var values []float64
	var cats []sorting.Category
	for _, e := range r.Events {
		switch e.Kind {
		case ResetEvent:
			values = make([]float64, e.Index)
			cats = make([]sorting.Category, e.Index)
		case ValueEvent:
			if e.Index < len(values) {
				values[e.Index] = e.Value
			}
		case CategoryEvent:
			if e.Index < len(cats) {
				cats[e.Index] = e.Category
			}
		}
	}
	return values, cats
}
