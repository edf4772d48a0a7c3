package sorting

import "math"

// Store is the working array of a run plus its instrumentation. It is owned by
// exactly one engine; every mutation is pushed to the sink before the mutating
// call returns.
type Store struct {
	values     []float64
	categories []Category
	counts     Counts
	sink       Sink
}

// NewStore returns an empty store pushing to sink. A nil sink discards updates.
func NewStore(sink Sink) *Store {
	if sink == nil {
		sink = NopSink{}
	}
	return &Store{sink: sink}
}

// Reset replaces the contents with values, colors every element Unsorted and
// zeroes both counters. The store is left untouched if any value is not
// finite.
func (s *Store) Reset(values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return newNonFiniteError(i, v)
		}
	}

	s.values = append(s.values[:0], values...)
	if cap(s.categories) < len(values) {
		s.categories = make([]Category, len(values))
	}
	s.categories = s.categories[:len(values)]
	s.counts = Counts{}

	if r, ok := s.sink.(Resetter); ok {
		r.Reset(len(values))
	}
	for i, v := range s.values {
		s.categories[i] = Unsorted
		s.sink.ValueChanged(i, v)
		s.sink.CategoryChanged(i, Unsorted)
	}
	return nil
}

func (s *Store) Len() int { return len(s.values) }

func (s *Store) inRange(i int) bool { return i >= 0 && i < len(s.values) }

// Value returns the value at i, or 0 when i is out of range.
func (s *Store) Value(i int) float64 {
	if !s.inRange(i) {
		return 0
	}
	return s.values[i]
}

// Category returns the category at i, or Unsorted when i is out of range.
func (s *Store) Category(i int) Category {
	if !s.inRange(i) {
		return Unsorted
	}
	return s.categories[i]
}

// Values returns a copy of the current values.
func (s *Store) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}

// Categories returns a copy of the current categories.
func (s *Store) Categories() []Category {
	out := make([]Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *Store) Counts() Counts { return s.counts }

// Compare records one comparison.
func (s *Store) Compare() { s.counts.Comparisons++ }

// Swap exchanges the values at a and b and counts one swap. Out-of-range
// indices and a == b are ignored.
func (s *Store) Swap(a, b int) {
	if a == b || !s.inRange(a) || !s.inRange(b) {
		return
	}
	s.values[a], s.values[b] = s.values[b], s.values[a]
	s.counts.Swaps++
	s.sink.ValueChanged(a, s.values[a])
	s.sink.ValueChanged(b, s.values[b])
}

// Write stores v at i. A swap is counted only when the slot held a different
// value, so rewriting an element in place is free.
func (s *Store) Write(i int, v float64) {
	if !s.inRange(i) {
		return
	}
	if s.values[i] != v {
		s.counts.Swaps++
	}
	s.values[i] = v
	s.sink.ValueChanged(i, v)
}

// SetCategory recolors i. Only actual changes reach the sink.
func (s *Store) SetCategory(i int, c Category) {
	if !s.inRange(i) || s.categories[i] == c {
		return
	}
	s.categories[i] = c
	s.sink.CategoryChanged(i, c)
}

// Paint recolors the half-open range [from, to), clipped to the array.
func (s *Store) Paint(from, to int, c Category) {
	if from < 0 {
		from = 0
	}
	if to > len(s.values) {
		to = len(s.values)
	}
	for i := from; i < to; i++ {
		s.SetCategory(i, c)
	}
}

// PaintAll recolors every element.
func (s *Store) PaintAll(c Category) { s.Paint(0, len(s.values), c) }

// firstDescent returns the first index i with value[i-1] > value[i], or -1
// when the array is ascending.
func (s *Store) firstDescent() int {
	for i := 1; i < len(s.values); i++ {
		if s.values[i-1] > s.values[i] {
			return i
		}
	}
	return -1
}
