package sorting

type mergePhase uint8

const (
	mergeNextSize mergePhase = iota
	mergeNextRun
	mergeStep
	mergeVerify
)

var mergePhaseNames = [...]string{"next-size", "next-run", "merge-step", "verify"}

// mergeRun is the flattened state of a bottom-up merge sort. Two adjacent
// runs [leftStart, rightStart) and [rightStart, end] are merged from temp back
// into the store one element per tick.
type mergeRun struct {
	phase      mergePhase
	runSize    int
	leftStart  int
	rightStart int
	end        int
	leftIdx    int
	rightIdx   int
	destIdx    int
	temp       []float64
}

// Merge is the bottom-up merge sort engine. Ties take the left run first, so
// the sort is stable.
type Merge struct {
	machine
	run mergeRun
}

func NewMerge(sink Sink) *Merge {
	return &Merge{machine: newMachine(MergeSort.String(), sink)}
}

func (m *Merge) Reset(values []float64) error {
	if err := m.begin(values); err != nil {
		return err
	}
	temp := m.run.temp
	if cap(temp) < len(values) {
		temp = make([]float64, len(values))
	}
	m.run = mergeRun{runSize: 1, temp: temp[:len(values)]}
	return nil
}

func (m *Merge) Phase() string { return mergePhaseNames[m.run.phase] }

func (m *Merge) Advance() {
	if m.done {
		return
	}
	n := m.store.Len()
	r := &m.run

	switch r.phase {
	case mergeNextSize:
		if r.runSize >= n {
			r.phase = mergeVerify
			return
		}
		r.leftStart = 0
		r.phase = mergeNextRun

	case mergeNextRun:
		if r.leftStart >= n-1 {
			r.runSize *= 2
			r.phase = mergeNextSize
			return
		}
		r.rightStart = min(r.leftStart+r.runSize, n)
		r.end = min(r.leftStart+2*r.runSize-1, n-1)

		m.store.Paint(0, r.leftStart, Unsorted)
		m.store.Paint(r.leftStart, r.rightStart, Comparing)
		m.store.Paint(r.rightStart, r.end+1, Marker)
		m.store.Paint(r.end+1, n, Unsorted)

		for k := r.leftStart; k <= r.end; k++ {
			r.temp[k] = m.store.Value(k)
		}
		r.leftIdx, r.rightIdx, r.destIdx = r.leftStart, r.rightStart, r.leftStart
		r.phase = mergeStep

	case mergeStep:
		if r.destIdx > r.end {
			r.leftStart += 2 * r.runSize
			r.phase = mergeNextRun
			return
		}
		leftLive := r.leftIdx < r.rightStart
		rightLive := r.rightIdx <= r.end
		if leftLive && rightLive {
			m.store.Compare()
		}
		var v float64
		if leftLive && (!rightLive || r.temp[r.leftIdx] <= r.temp[r.rightIdx]) {
			v = r.temp[r.leftIdx]
			r.leftIdx++
		} else {
			v = r.temp[r.rightIdx]
			r.rightIdx++
		}
		m.store.Write(r.destIdx, v)
		m.store.SetCategory(r.destIdx, Sorted)
		r.destIdx++

	case mergeVerify:
		m.verify()
	}
}
