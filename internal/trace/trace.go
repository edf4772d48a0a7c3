// Package trace records engine runs tick by tick.
//
// A Frame is the observable state after one Advance. Frames are what the
// golden tests compare and what the trace command prints, so the text form is
// kept stable: one line per tick.
package trace

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iburimskiy/sort-visualization/internal/sorting"
)

// Frame is the state of an engine after Tick advances. Tick 0 is the state
// right after Reset.
type Frame struct {
	Tick       int                `json:"tick"`
	Phase      string             `json:"phase"`
	Values     []float64          `json:"values"`
	Categories []sorting.Category `json:"-"`
	Marks      string             `json:"categories"`
	Counts     sorting.Counts     `json:"counts"`
	Done       bool               `json:"done"`
}

// LimitError is returned when a run does not finish within the tick limit.
type LimitError struct {
	Algorithm string
	Limit     int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("%s did not finish within %d ticks", e.Algorithm, e.Limit)
}

var letters = map[sorting.Category]byte{
	sorting.Unsorted:  'U',
	sorting.Comparing: 'C',
	sorting.Marker:    'M',
	sorting.Pivot:     'P',
	sorting.Sorted:    'S',
}

// Letters renders categories one letter each (U, C, M, P, S).
func Letters(cats []sorting.Category) string {
	b := make([]byte, len(cats))
	for i, c := range cats {
		l, ok := letters[c]
		if !ok {
			l = '?'
		}
		b[i] = l
	}
	return string(b)
}

// Capture snapshots e.
func Capture(e sorting.Engine, tick int) Frame {
	cats := e.Categories()
	return Frame{
		Tick:       tick,
		Phase:      e.Phase(),
		Values:     e.Values(),
		Categories: cats,
		Marks:      Letters(cats),
		Counts:     e.Counts(),
		Done:       e.Done(),
	}
}

// Record resets e with values and advances it to completion, capturing a
// frame per tick. A limit <= 0 means no limit. The returned error is the
// input error from Reset, a *LimitError, or the engine's own Err.
func Record(e sorting.Engine, values []float64, limit int) ([]Frame, error) {
	if err := e.Reset(values); err != nil {
		return nil, err
	}
	frames := []Frame{Capture(e, 0)}
	for tick := 1; !e.Done(); tick++ {
		if limit > 0 && tick > limit {
			return frames, &LimitError{Algorithm: e.Name(), Limit: limit}
		}
		e.Advance()
		frames = append(frames, Capture(e, tick))
	}
	return frames, e.Err()
}

func formatValues(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// WriteText writes one line per frame.
func WriteText(w io.Writer, frames []Frame) error {
	for _, f := range frames {
		_, err := fmt.Fprintf(w, "%03d %-13s %s %s cmp=%d swp=%d\n",
			f.Tick, f.Phase, formatValues(f.Values), f.Marks, f.Counts.Comparisons, f.Counts.Swaps)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes frames as an indented JSON array.
func WriteJSON(w io.Writer, frames []Frame) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(frames)
}
