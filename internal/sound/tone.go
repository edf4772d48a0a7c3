// Package sound turns array writes into short tones.
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"

	"github.com/iburimskiy/sort-visualization/internal/sorting"
)

// Tone is both a sorting.Sink and a beep.Streamer. Every value change queues
// a blip whose pitch follows the value; the audio callback drains the queue.
// The initial values pushed by a reset are recorded silently.
type Tone struct {
	mu sync.Mutex

	low, high float64
	volume    float64
	blipLen   int
	rate      float64

	// pending is a ring buffer of queued frequencies.
	pending   []float64
	head      int
	size      int
	current   float64
	pos       int
	phase     float64
	muted     bool
	seen      []bool
	top       float64
	dropCount int
}

// NewTone returns a tone generator for sample rate sr with room for
// queueSize pending blips; the oldest blip is dropped when the queue is full.
func NewTone(sr beep.SampleRate, blip time.Duration, queueSize int, low, high, volume float64) *Tone {
	if queueSize < 1 {
		queueSize = 1
	}
	n := sr.N(blip)
	if n < 1 {
		n = 1
	}
	return &Tone{
		low:     low,
		high:    high,
		volume:  volume,
		blipLen: n,
		rate:    float64(sr),
		pending: make([]float64, queueSize),
	}
}

func (t *Tone) Reset(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.head, t.size = 0, 0
	t.current, t.pos = 0, 0
	t.top = 0
	if cap(t.seen) < n {
		t.seen = make([]bool, n)
	}
	t.seen = t.seen[:n]
	for i := range t.seen {
		t.seen[i] = false
	}
}

func (t *Tone) ValueChanged(index int, value float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if math.Abs(value) > t.top {
		t.top = math.Abs(value)
	}
	if index >= 0 && index < len(t.seen) && !t.seen[index] {
		t.seen[index] = true
		return
	}
	if t.muted {
		return
	}
	t.push(t.pitch(value))
}

func (t *Tone) CategoryChanged(int, sorting.Category) {}

// pitch maps |value| linearly onto [low, high] relative to the largest
// magnitude seen this run.
func (t *Tone) pitch(value float64) float64 {
	if t.top == 0 {
		return t.low
	}
	r := math.Abs(value) / t.top
	return t.low + (t.high-t.low)*r
}

func (t *Tone) push(freq float64) {
	if t.size == len(t.pending) {
		t.head = (t.head + 1) % len(t.pending)
		t.size--
		t.dropCount++
	}
	t.pending[(t.head+t.size)%len(t.pending)] = freq
	t.size++
}

func (t *Tone) pop() (float64, bool) {
	if t.size == 0 {
		return 0, false
	}
	f := t.pending[t.head]
	t.head = (t.head + 1) % len(t.pending)
	t.size--
	return f, true
}

// Stream never ends; it writes silence while nothing is queued.
func (t *Tone) Stream(samples [][2]float64) (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range samples {
		if t.current == 0 || t.pos >= t.blipLen {
			f, ok := t.pop()
			if !ok {
				t.current = 0
				samples[i] = [2]float64{}
				continue
			}
			t.current, t.pos = f, 0
		}
		env := 1 - float64(t.pos)/float64(t.blipLen)
		v := math.Sin(t.phase) * t.volume * env
		t.phase += 2 * math.Pi * t.current / t.rate
		if t.phase > 2*math.Pi {
			t.phase -= 2 * math.Pi
		}
		t.pos++
		samples[i] = [2]float64{v, v}
	}
	return len(samples), true
}

func (t *Tone) Err() error { return nil }

// SetMuted silences the generator and drops anything queued.
func (t *Tone) SetMuted(muted bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.muted = muted
	if muted {
		t.head, t.size, t.current = 0, 0, 0
	}
}

func (t *Tone) Muted() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.muted
}

// Pending returns the number of queued blips.
func (t *Tone) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.size
}

// Dropped returns how many blips were discarded because the queue was full.
func (t *Tone) Dropped() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dropCount
}
