package sorting

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Reset(t *testing.T) {
	s := NewStore(nil)
	require.NoError(t, s.Reset([]float64{3, 1, 2}))
	s.Compare()
	s.Swap(0, 1)
	s.SetCategory(2, Sorted)

	require.NoError(t, s.Reset([]float64{7, 8}))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []float64{7, 8}, s.Values())
	assert.Equal(t, []Category{Unsorted, Unsorted}, s.Categories())
	assert.Equal(t, Counts{}, s.Counts())
}

func TestStore_ResetCopiesInput(t *testing.T) {
	input := []float64{2, 1}
	s := NewStore(nil)
	require.NoError(t, s.Reset(input))
	s.Swap(0, 1)
	assert.Equal(t, []float64{2, 1}, input)
}

func TestStore_ResetRejectsNonFinite(t *testing.T) {
	s := NewStore(nil)
	require.NoError(t, s.Reset([]float64{1, 2}))

	err := s.Reset([]float64{0, math.Inf(-1)})
	require.Error(t, err)

	var ie *InputError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, ErrCodeInvalidInput, ie.Code)
	assert.Equal(t, 1, ie.Index)
	assert.Equal(t, []float64{1, 2}, s.Values(), "store untouched")
}

func TestStore_SwapIgnoresBadIndices(t *testing.T) {
	s := NewStore(nil)
	require.NoError(t, s.Reset([]float64{1, 2}))

	s.Swap(0, 2)
	s.Swap(-1, 1)
	s.Swap(1, 1)
	assert.Equal(t, []float64{1, 2}, s.Values())
	assert.Zero(t, s.Counts().Swaps)

	s.Swap(1, 0)
	assert.Equal(t, []float64{2, 1}, s.Values())
	assert.Equal(t, 1, s.Counts().Swaps)
}

func TestStore_Write(t *testing.T) {
	s := NewStore(nil)
	require.NoError(t, s.Reset([]float64{1, 2}))

	s.Write(0, 1)
	assert.Zero(t, s.Counts().Swaps, "same value is not a displacement")
	s.Write(0, 5)
	assert.Equal(t, 1, s.Counts().Swaps)
	s.Write(9, 5)
	assert.Equal(t, []float64{5, 2}, s.Values())
}

func TestStore_PaintClips(t *testing.T) {
	s := NewStore(nil)
	require.NoError(t, s.Reset([]float64{1, 2, 3}))
	s.Paint(-4, 2, Pivot)
	assert.Equal(t, []Category{Pivot, Pivot, Unsorted}, s.Categories())
	s.Paint(1, 99, Sorted)
	assert.Equal(t, []Category{Pivot, Sorted, Sorted}, s.Categories())
	assert.Equal(t, Unsorted, s.Category(42))
	assert.Zero(t, s.Value(-1))
}

func TestStore_FirstDescent(t *testing.T) {
	s := NewStore(nil)
	require.NoError(t, s.Reset([]float64{1, 2, 2, 5}))
	assert.Equal(t, -1, s.firstDescent())
	require.NoError(t, s.Reset([]float64{1, 3, 2}))
	assert.Equal(t, 2, s.firstDescent())
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "pivot", Pivot.String())
	assert.Equal(t, "unknown", Category(99).String())
	assert.Len(t, Categories(), 5)
}
