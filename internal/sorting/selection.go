package sorting

type selectionPhase uint8

const (
	selectionInit selectionPhase = iota
	selectionFindMin
	selectionSwap
	selectionDone
)

var selectionPhaseNames = [...]string{"init", "find-min", "swap", "done"}

// selectionRun tracks the sorted prefix boundary i and the scan cursor j.
// When a smaller element turns up, i and j trade roles until the exchange is
// performed on the next tick.
type selectionRun struct {
	phase selectionPhase
	i, j  int
}

// Selection is the selection sort engine. Position i always holds the
// smallest value scanned so far; a smaller candidate is exchanged into it
// immediately.
type Selection struct {
	machine
	run selectionRun
}

func NewSelection(sink Sink) *Selection {
	return &Selection{machine: newMachine(SelectionSort.String(), sink)}
}

func (s *Selection) Reset(values []float64) error {
	if err := s.begin(values); err != nil {
		return err
	}
	s.run = selectionRun{}
	return nil
}

func (s *Selection) Phase() string { return selectionPhaseNames[s.run.phase] }

func (s *Selection) Advance() {
	if s.done {
		return
	}
	n := s.store.Len()
	r := &s.run

	switch r.phase {
	case selectionInit:
		r.i, r.j = 0, 1
		r.phase = selectionFindMin

	case selectionFindMin:
		if r.i >= n-1 {
			r.phase = selectionDone
			return
		}
		s.store.Paint(0, r.i, Sorted)
		s.store.Paint(r.i, n, Unsorted)
		s.store.SetCategory(r.i, Comparing)
		s.store.SetCategory(r.j, Comparing)
		s.store.Compare()
		if s.store.Value(r.j) < s.store.Value(r.i) {
			s.store.SetCategory(r.j, Marker)
			r.i, r.j = r.j, r.i
			r.phase = selectionSwap
			return
		}
		s.step()

	case selectionSwap:
		s.store.Swap(r.i, r.j)
		r.i, r.j = r.j, r.i
		s.step()
		if r.phase == selectionSwap {
			r.phase = selectionFindMin
		}

	case selectionDone:
		s.finish()
	}
}

// step moves the scan cursor; past the end, slot i is final and the boundary
// moves right.
func (s *Selection) step() {
	n := s.store.Len()
	r := &s.run
	r.j++
	if r.j < n {
		return
	}
	s.store.SetCategory(r.i, Sorted)
	r.i++
	r.j = r.i + 1
	if r.j >= n {
		r.phase = selectionDone
	}
}
