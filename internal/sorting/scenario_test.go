package sorting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBubble_FiveThreeEightOne(t *testing.T) {
	b := NewBubble(nil)
	require.NoError(t, b.Reset([]float64{5, 3, 8, 1}))
	ticks := runToEnd(t, b, 100)

	assert.Equal(t, []float64{1, 3, 5, 8}, b.Values())
	assert.Equal(t, 6, b.Counts().Comparisons)
	// One swap per inversion: (5,3) (5,1) (3,1) (8,1).
	assert.Equal(t, 4, b.Counts().Swaps)
	assert.Equal(t, 13, ticks)
}

func TestCounts_FiveThreeEightOne(t *testing.T) {
	cases := []struct {
		algo Algorithm
		want Counts
	}{
		{BubbleSort, Counts{Comparisons: 6, Swaps: 4}},
		{SelectionSort, Counts{Comparisons: 6, Swaps: 4}},
		{InsertionSort, Counts{Comparisons: 5, Swaps: 4}},
		{MergeSort, Counts{Comparisons: 5, Swaps: 7}},
		{QuickSort, Counts{Comparisons: 5, Swaps: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.algo.String(), func(t *testing.T) {
			e, err := New(tc.algo, nil)
			require.NoError(t, err)
			require.NoError(t, e.Reset([]float64{5, 3, 8, 1}))
			runToEnd(t, e, 100)
			assert.Equal(t, tc.want, e.Counts())
		})
	}
}

func TestBubble_StableOnTies(t *testing.T) {
	b := NewBubble(nil)
	require.NoError(t, b.Reset([]float64{1, 1}))
	runToEnd(t, b, 10)
	assert.Equal(t, Counts{Comparisons: 1}, b.Counts())
}

func TestBubble_HighlightsPair(t *testing.T) {
	b := NewBubble(nil)
	require.NoError(t, b.Reset([]float64{2, 1, 3}))
	b.Advance() // init
	b.Advance() // compare 0,1

	assert.Equal(t, "swap", b.Phase())
	assert.Equal(t, []Category{Comparing, Comparing, Unsorted}, b.Categories())
	assert.Equal(t, 1, b.Counts().Comparisons)
	assert.Zero(t, b.Counts().Swaps)

	b.Advance()
	assert.Equal(t, []float64{1, 2, 3}, b.Values())
	assert.Equal(t, 1, b.Counts().Swaps)
}

func TestSelection_MarksNewMinimum(t *testing.T) {
	s := NewSelection(nil)
	require.NoError(t, s.Reset([]float64{4, 1, 3}))
	s.Advance() // init
	s.Advance() // 1 < 4

	assert.Equal(t, "swap", s.Phase())
	assert.Equal(t, Marker, s.Categories()[1])
	assert.Equal(t, []float64{4, 1, 3}, s.Values())

	s.Advance()
	assert.Equal(t, []float64{1, 4, 3}, s.Values())
	assert.Equal(t, "find-min", s.Phase())
	assert.Equal(t, 0, s.run.i, "index roles are restored after the exchange")
	assert.Equal(t, 2, s.run.j)
}

func TestInsertion_ShiftsKeyLeft(t *testing.T) {
	s := NewInsertion(nil)
	require.NoError(t, s.Reset([]float64{3, 2, 1}))
	s.Advance() // init
	assert.Equal(t, []Category{Sorted, Unsorted, Unsorted}, s.Categories())

	s.Advance() // select key 1
	assert.Equal(t, Marker, s.Categories()[1])

	s.Advance() // 3 > 2, shift
	assert.Equal(t, []float64{2, 3, 1}, s.Values())
	assert.Equal(t, "shift-compare", s.Phase())
	assert.Equal(t, 0, s.run.j)

	s.Advance() // j == 0, key placed
	assert.Equal(t, "select-key", s.Phase())
	assert.Equal(t, 2, s.run.i)
	assert.Equal(t, 1, s.Counts().Comparisons)
}

func TestInsertion_SortedInputIsLinear(t *testing.T) {
	s := NewInsertion(nil)
	require.NoError(t, s.Reset([]float64{1, 2, 3, 4, 5}))
	runToEnd(t, s, 100)
	assert.Equal(t, Counts{Comparisons: 4}, s.Counts())
}

func TestMerge_ColorsRuns(t *testing.T) {
	m := NewMerge(nil)
	require.NoError(t, m.Reset([]float64{4, 3, 2, 1}))
	m.Advance() // next-size
	m.Advance() // next-run: [0] with [1]

	assert.Equal(t, "merge-step", m.Phase())
	assert.Equal(t, []Category{Comparing, Marker, Unsorted, Unsorted}, m.Categories())

	m.Advance()
	assert.Equal(t, []float64{3, 3, 2, 1}, m.Values(), "first write takes the right run head")
	assert.Equal(t, Sorted, m.Categories()[0])
	assert.Equal(t, Counts{Comparisons: 1, Swaps: 1}, m.Counts())
}

func TestMerge_WriteCountsOnlyDisplacement(t *testing.T) {
	m := NewMerge(nil)
	require.NoError(t, m.Reset([]float64{1, 2, 3, 4, 5, 6, 7}))
	runToEnd(t, m, 200)
	assert.Zero(t, m.Counts().Swaps)
	assert.Positive(t, m.Counts().Comparisons)
}

func TestMerge_VerifyFailureIsFatal(t *testing.T) {
	m := NewMerge(nil)
	require.NoError(t, m.Reset([]float64{2, 1}))
	m.run.phase = mergeVerify

	m.Advance()
	require.True(t, m.Done())
	require.Error(t, m.Err())
	assert.True(t, IsInvariantError(m.Err()))

	var ie *InvariantError
	require.ErrorAs(t, m.Err(), &ie)
	assert.Equal(t, ErrCodeNotSorted, ie.Code)
	assert.Equal(t, "Merge Sort", ie.Algorithm)
	assert.Equal(t, 1, ie.Index)

	m.Advance()
	assert.Equal(t, []float64{2, 1}, m.Values(), "no retry after the failure")
}

func TestQuick_PartitionHighlights(t *testing.T) {
	q := NewQuick(nil)
	require.NoError(t, q.Reset([]float64{5, 3, 8, 1}))
	assert.Equal(t, 1, q.Pending())

	q.Advance() // pop (0,3)
	assert.Equal(t, 0, q.Pending())
	assert.Equal(t, "partition", q.Phase())
	assert.Equal(t, Pivot, q.Categories()[3])

	q.Advance() // compare 5 with pivot 1
	assert.Equal(t, []Category{Marker, Unsorted, Unsorted, Pivot}, q.Categories())
	assert.Equal(t, 1, q.Counts().Comparisons)
}

func TestQuick_WorkListIsFIFO(t *testing.T) {
	q := NewQuick(nil)
	require.NoError(t, q.Reset([]float64{1, 9, 8, 5, 2, 7, 3}))
	q.Advance() // pop the full range
	for q.Phase() == "partition" {
		q.Advance()
	}
	// Pivot 3 lands at index 2; both sides are queued left first.
	require.Equal(t, 2, q.Pending())
	assert.Equal(t, span{0, 1}, q.run.work[0])
	assert.Equal(t, span{3, 6}, q.run.work[1])
}

func TestQuick_VerifyFailureIsFatal(t *testing.T) {
	q := NewQuick(nil)
	require.NoError(t, q.Reset([]float64{3, 1, 2}))
	q.run.work = q.run.work[:0]

	q.Advance() // empty work-list
	assert.Equal(t, "done", q.Phase())
	q.Advance()

	assert.True(t, q.Done())
	assert.True(t, IsInvariantError(q.Err()))
}
