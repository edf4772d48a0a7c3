// Package input loads arrays from files picked by the user.
//
// Text files (.txt, .csv and anything else not recognized as audio) hold
// numbers separated by commas or whitespace. Audio files are reduced to
// their loudness envelope: one bar per segment.
package input

import (
	"fmt"
	"os"

	"github.com/iburimskiy/sort-visualization/internal/sorting"
	"github.com/iburimskiy/sort-visualization/internal/sound"
)

// Filter describes a group of file patterns for an open dialog.
type Filter struct {
	Name     string
	Patterns []string
}

// Filters lists what Load understands, most common first.
var Filters = []Filter{
	{Name: "Numbers", Patterns: []string{"*.txt", "*.csv"}},
	{Name: "Audio", Patterns: []string{"*.wav", "*.mp3", "*.flac"}},
}

// Load reads an array from path. Audio files yield n bars in [0, limit).
func Load(path string, n, limit int) ([]float64, error) {
	if sound.IsAudio(path) {
		s, _, err := sound.Open(path)
		if err != nil {
			return nil, err
		}
		defer s.Close()
		return sound.Envelope(s, n, limit)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read values: %w", err)
	}
	return sorting.ParseValues(string(data))
}
