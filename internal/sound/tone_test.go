package sound

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/sort-visualization/internal/sorting"
)

const rate = beep.SampleRate(8000)

func newTestTone(queue int) *Tone {
	return NewTone(rate, 10*time.Millisecond, queue, 200, 800, 0.5)
}

func TestTone_ResetPushesAreSilent(t *testing.T) {
	tone := newTestTone(8)
	s := sorting.NewStore(tone)
	require.NoError(t, s.Reset([]float64{3, 1, 2}))
	assert.Zero(t, tone.Pending())

	s.Swap(0, 1)
	assert.Equal(t, 2, tone.Pending())
}

func TestTone_StreamPlaysAndDrains(t *testing.T) {
	tone := newTestTone(8)
	tone.Reset(2)
	tone.ValueChanged(0, 10)
	tone.ValueChanged(1, 5)
	tone.ValueChanged(0, 5)
	require.Equal(t, 1, tone.Pending())

	samples := make([][2]float64, 200)
	n, ok := tone.Stream(samples)
	assert.Equal(t, 200, n)
	assert.True(t, ok)
	assert.Zero(t, tone.Pending())

	var peak float64
	for _, s := range samples[:80] {
		assert.Equal(t, s[0], s[1])
		peak = math.Max(peak, math.Abs(s[0]))
	}
	assert.Greater(t, peak, 0.0)
	assert.LessOrEqual(t, peak, 0.5)
	assert.Equal(t, [2]float64{}, samples[199], "silence after the blip")
	assert.NoError(t, tone.Err())
}

func TestTone_PitchFollowsValue(t *testing.T) {
	tone := newTestTone(8)
	tone.top = 100
	assert.Equal(t, 200.0, tone.pitch(0))
	assert.Equal(t, 500.0, tone.pitch(50))
	assert.Equal(t, 800.0, tone.pitch(-100))

	tone.top = 0
	assert.Equal(t, 200.0, tone.pitch(7))
}

func TestTone_QueueDropsOldest(t *testing.T) {
	tone := newTestTone(2)
	for i := 0; i < 5; i++ {
		tone.ValueChanged(-1, float64(i))
	}
	assert.Equal(t, 2, tone.Pending())
	assert.Equal(t, 3, tone.Dropped())

	f, ok := tone.pop()
	require.True(t, ok)
	assert.Equal(t, 800.0, f, "3 was the largest value seen when it was queued")
}

func TestTone_Muted(t *testing.T) {
	tone := newTestTone(4)
	tone.ValueChanged(-1, 1)
	tone.SetMuted(true)
	assert.True(t, tone.Muted())
	assert.Zero(t, tone.Pending())

	tone.ValueChanged(-1, 2)
	assert.Zero(t, tone.Pending())

	samples := make([][2]float64, 16)
	tone.Stream(samples)
	for _, s := range samples {
		assert.Equal(t, [2]float64{}, s)
	}
}
