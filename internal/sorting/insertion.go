package sorting

type insertionPhase uint8

const (
	insertionInit insertionPhase = iota
	insertionSelectKey
	insertionShift
	insertionDone
)

var insertionPhaseNames = [...]string{"init", "select-key", "shift-compare", "done"}

// insertionRun: i is the first unsorted index, j the key's current position.
type insertionRun struct {
	phase insertionPhase
	i, j  int
}

// Insertion is the insertion sort engine. The key sinks left one adjacent
// exchange per tick and stops at the first neighbour that is not larger.
type Insertion struct {
	machine
	run insertionRun
}

func NewInsertion(sink Sink) *Insertion {
	return &Insertion{machine: newMachine(InsertionSort.String(), sink)}
}

func (s *Insertion) Reset(values []float64) error {
	if err := s.begin(values); err != nil {
		return err
	}
	s.run = insertionRun{}
	return nil
}

func (s *Insertion) Phase() string { return insertionPhaseNames[s.run.phase] }

func (s *Insertion) Advance() {
	if s.done {
		return
	}
	n := s.store.Len()
	r := &s.run

	switch r.phase {
	case insertionInit:
		s.store.SetCategory(0, Sorted)
		s.store.Paint(1, n, Unsorted)
		r.i = 1
		r.phase = insertionSelectKey

	case insertionSelectKey:
		if r.i >= n {
			r.phase = insertionDone
			return
		}
		s.store.Paint(0, r.i, Sorted)
		s.store.Paint(r.i, n, Unsorted)
		s.store.SetCategory(r.i, Marker)
		r.j = r.i
		r.phase = insertionShift

	case insertionShift:
		for k := 0; k < r.i; k++ {
			if k != r.j && k != r.j-1 {
				s.store.SetCategory(k, Sorted)
			}
		}
		s.store.SetCategory(r.j, Marker)
		if r.j > 0 {
			s.store.SetCategory(r.j-1, Pivot)
			s.store.Compare()
			if s.store.Value(r.j-1) > s.store.Value(r.j) {
				s.store.Swap(r.j-1, r.j)
				r.j--
				return
			}
		}
		s.store.Paint(0, r.i+1, Sorted)
		r.i++
		if r.i >= n {
			r.phase = insertionDone
		} else {
			r.phase = insertionSelectKey
		}

	case insertionDone:
		s.finish()
	}
}
