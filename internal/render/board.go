// Package render mirrors an engine's array for drawing.
//
// Board is the sorting.Sink shared by the front-ends: it receives value and
// category pushes and lays the bars out in a rectangle. It knows nothing about
// any particular drawing library.
package render

import (
	"image/color"
	"math"
	"strconv"
	"sync"

	"github.com/iburimskiy/sort-visualization/internal/sorting"
)

// Palette is the legend: one color per category.
var Palette = map[sorting.Category]color.RGBA{
	sorting.Unsorted:  {R: 220, G: 60, B: 60, A: 255},
	sorting.Comparing: {R: 60, G: 110, B: 230, A: 255},
	sorting.Marker:    {R: 218, G: 112, B: 214, A: 255},
	sorting.Pivot:     {R: 240, G: 190, B: 40, A: 255},
	sorting.Sorted:    {R: 60, G: 190, B: 90, A: 255},
}

// Bar is one laid-out element.
type Bar struct {
	X, Y, W, H float64
	Value      float64
	Label      string
	Category   sorting.Category
}

// Board holds the mirrored values and categories.
type Board struct {
	mu         sync.RWMutex
	values     []float64
	categories []sorting.Category
}

func NewBoard() *Board {
	return &Board{}
}

func (b *Board) Reset(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.values = make([]float64, n)
	b.categories = make([]sorting.Category, n)
}

func (b *Board) ValueChanged(index int, value float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if index >= 0 && index < len(b.values) {
		b.values[index] = value
	}
}

func (b *Board) CategoryChanged(index int, category sorting.Category) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if index >= 0 && index < len(b.categories) {
		b.categories[index] = category
	}
}

func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.values)
}

// Snapshot copies the mirrored state.
func (b *Board) Snapshot() ([]float64, []sorting.Category) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	values := append([]float64(nil), b.values...)
	cats := append([]sorting.Category(nil), b.categories...)
	return values, cats
}

// Layout places the bars inside the rectangle (x, y, w, h): bottoms on the
// baseline, heights proportional to |value| against the largest magnitude,
// the row centered horizontally. maxWidth caps the bar width and gapRatio is
// the share of each slot left empty.
func (b *Board) Layout(x, y, w, h, maxWidth, gapRatio float64) []Bar {
	values, cats := b.Snapshot()
	n := len(values)
	if n == 0 || w <= 0 || h <= 0 {
		return nil
	}

	top := 0.0
	for _, v := range values {
		top = math.Max(top, math.Abs(v))
	}

	slot := w / float64(n)
	barW := slot * (1 - gapRatio)
	if maxWidth > 0 && barW > maxWidth {
		barW = maxWidth
		slot = maxWidth / (1 - gapRatio)
	}
	left := x + (w-slot*float64(n))/2

	bars := make([]Bar, n)
	for i, v := range values {
		bh := 0.0
		if top > 0 {
			bh = math.Abs(v) / top * h
		}
		if bh < 2 {
			bh = 2
		}
		bars[i] = Bar{
			X:        left + float64(i)*slot + (slot-barW)/2,
			Y:        y + h - bh,
			W:        barW,
			H:        bh,
			Value:    v,
			Label:    strconv.FormatFloat(v, 'f', -1, 64),
			Category: cats[i],
		}
	}
	return bars
}
