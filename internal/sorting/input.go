package sorting

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
)

const (
	// DefaultSize is the bar count of a freshly randomized array.
	DefaultSize = 15
	// DefaultMax bounds randomized values: each lies in [0, DefaultMax).
	DefaultMax = 250
)

// ParseValues reads numbers separated by commas and/or whitespace.
// Blank input yields an empty slice. Any token that is not a finite number
// fails the whole parse.
func ParseValues(text string) ([]float64, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	values := make([]float64, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &InputError{
				Code:    ErrCodeInvalidInput,
				Index:   i,
				Token:   f,
				Message: "use comma-separated numbers",
			}
		}
		values = append(values, v)
	}
	return values, nil
}

// FormatValues renders values the way ParseValues reads them.
func FormatValues(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ", ")
}

// Random returns n whole numbers drawn uniformly from [0, limit).
func Random(rng *rand.Rand, n, limit int) []float64 {
	if n < 0 {
		n = 0
	}
	if limit < 1 {
		limit = 1
	}
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(rng.Intn(limit))
	}
	return values
}
