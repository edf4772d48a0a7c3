package sorting

type quickPhase uint8

const (
	quickNextRange quickPhase = iota
	quickPartition
	quickDone
)

var quickPhaseNames = [...]string{"next-range", "partition", "done"}

// span is an inclusive index range awaiting partitioning.
type span struct{ lo, hi int }

// quickRun replaces the recursion of quick sort with a FIFO work-list of
// pending ranges plus the cursors of the one partition in progress.
type quickRun struct {
	phase  quickPhase
	work   []span
	lo, hi int
	pivot  float64
	i, j   int
}

// Quick is the quick sort engine: Lomuto partition, rightmost element as the
// pivot. Already sorted input degrades to quadratic work.
type Quick struct {
	machine
	run quickRun
}

func NewQuick(sink Sink) *Quick {
	return &Quick{machine: newMachine(QuickSort.String(), sink)}
}

func (q *Quick) Reset(values []float64) error {
	if err := q.begin(values); err != nil {
		return err
	}
	work := q.run.work[:0]
	if len(values) > 0 {
		work = append(work, span{0, len(values) - 1})
	}
	q.run = quickRun{work: work}
	return nil
}

func (q *Quick) Phase() string { return quickPhaseNames[q.run.phase] }

// Pending returns the number of ranges still waiting in the work-list.
func (q *Quick) Pending() int { return len(q.run.work) }

func (q *Quick) Advance() {
	if q.done {
		return
	}
	n := q.store.Len()
	r := &q.run

	switch r.phase {
	case quickNextRange:
		if len(r.work) == 0 {
			r.phase = quickDone
			return
		}
		next := r.work[0]
		r.work = append(r.work[:0], r.work[1:]...)
		r.lo, r.hi = next.lo, next.hi
		if r.lo >= r.hi {
			if r.lo == r.hi {
				q.store.SetCategory(r.lo, Sorted)
			}
			return
		}
		q.store.Paint(0, r.lo, Sorted)
		q.store.Paint(r.lo, r.hi+1, Unsorted)
		q.store.Paint(r.hi+1, n, Sorted)
		r.pivot = q.store.Value(r.hi)
		q.store.SetCategory(r.hi, Pivot)
		r.i, r.j = r.lo-1, r.lo
		r.phase = quickPartition

	case quickPartition:
		if r.j >= r.hi {
			r.i++
			q.store.Swap(r.i, r.hi)
			q.store.SetCategory(r.i, Sorted)
			if r.i-1 > r.lo {
				r.work = append(r.work, span{r.lo, r.i - 1})
			}
			if r.i+1 < r.hi {
				r.work = append(r.work, span{r.i + 1, r.hi})
			}
			r.phase = quickNextRange
			return
		}
		for k := r.lo; k <= r.hi; k++ {
			switch {
			case k == r.hi:
				q.store.SetCategory(k, Pivot)
			case k == r.j:
				q.store.SetCategory(k, Marker)
			case k <= r.i:
				q.store.SetCategory(k, Comparing)
			default:
				q.store.SetCategory(k, Unsorted)
			}
		}
		q.store.Compare()
		if q.store.Value(r.j) < r.pivot {
			r.i++
			q.store.Swap(r.i, r.j)
		}
		r.j++

	case quickDone:
		q.verify()
	}
}
