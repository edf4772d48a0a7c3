package sorting

type bubblePhase uint8

const (
	bubbleInit bubblePhase = iota
	bubbleCompare
	bubbleSwap
	bubbleDone
)

var bubblePhaseNames = [...]string{"init", "compare", "swap", "done"}

// bubbleRun is the run context: i counts completed passes, j is the inner
// cursor.
type bubbleRun struct {
	phase bubblePhase
	i, j  int
}

// Bubble is the bubble sort engine. Equal neighbours are never swapped.
type Bubble struct {
	machine
	run bubbleRun
}

func NewBubble(sink Sink) *Bubble {
	return &Bubble{machine: newMachine(BubbleSort.String(), sink)}
}

func (b *Bubble) Reset(values []float64) error {
	if err := b.begin(values); err != nil {
		return err
	}
	b.run = bubbleRun{}
	return nil
}

func (b *Bubble) Phase() string { return bubblePhaseNames[b.run.phase] }

func (b *Bubble) Advance() {
	if b.done {
		return
	}
	n := b.store.Len()
	r := &b.run

	switch r.phase {
	case bubbleInit:
		r.i, r.j = 0, 0
		r.phase = bubbleCompare

	case bubbleCompare:
		if r.i >= n-1 {
			r.phase = bubbleDone
			return
		}
		b.store.Paint(0, n-r.i, Unsorted)
		b.store.SetCategory(r.j, Comparing)
		b.store.SetCategory(r.j+1, Comparing)
		b.store.Compare()
		if b.store.Value(r.j) > b.store.Value(r.j+1) {
			r.phase = bubbleSwap
			return
		}
		b.step()

	case bubbleSwap:
		b.store.Swap(r.j, r.j+1)
		b.step()
		r.phase = bubbleCompare

	case bubbleDone:
		b.finish()
	}
}

// step advances j and rolls over to the next pass at the end of the unsorted
// region, whose last slot is then final.
func (b *Bubble) step() {
	n := b.store.Len()
	r := &b.run
	r.j++
	if r.j >= n-r.i-1 {
		b.store.SetCategory(n-r.i-1, Sorted)
		r.i++
		r.j = 0
	}
}
