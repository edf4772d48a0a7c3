package sorting

import "strings"

// Algorithm identifies one of the five engines.
type Algorithm int

const (
	BubbleSort Algorithm = iota
	SelectionSort
	InsertionSort
	MergeSort
	QuickSort
)

var algorithmNames = [...]string{
	BubbleSort:    "Bubble Sort",
	SelectionSort: "Selection Sort",
	InsertionSort: "Insertion Sort",
	MergeSort:     "Merge Sort",
	QuickSort:     "Quick Sort",
}

func (a Algorithm) String() string {
	if a >= 0 && int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}
	return "Unknown"
}

// Algorithms returns every algorithm in menu order.
func Algorithms() []Algorithm {
	return []Algorithm{BubbleSort, SelectionSort, InsertionSort, MergeSort, QuickSort}
}

// Next cycles through the menu.
func (a Algorithm) Next() Algorithm {
	return Algorithm((int(a) + 1) % len(algorithmNames))
}

// ParseAlgorithm accepts a display name ("Quick Sort") or a short key
// ("quick", "quicksort"), case-insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, " ", "")
	key = strings.TrimSuffix(key, "sort")
	for _, a := range Algorithms() {
		if strings.ToLower(strings.TrimSuffix(strings.ReplaceAll(a.String(), " ", ""), "Sort")) == key {
			return a, nil
		}
	}
	return 0, &InputError{
		Code:    ErrCodeUnknownAlgorithm,
		Index:   -1,
		Token:   name,
		Message: "unknown algorithm",
	}
}

// New builds the engine for a. A nil sink discards updates.
func New(a Algorithm, sink Sink) (Engine, error) {
	switch a {
	case BubbleSort:
		return NewBubble(sink), nil
	case SelectionSort:
		return NewSelection(sink), nil
	case InsertionSort:
		return NewInsertion(sink), nil
	case MergeSort:
		return NewMerge(sink), nil
	case QuickSort:
		return NewQuick(sink), nil
	}
	return nil, &InputError{
		Code:    ErrCodeUnknownAlgorithm,
		Index:   int(a),
		Message: "unknown algorithm",
	}
}

var complexity = map[string]string{
	"Bubble Sort":    "O(n²)/O(1)",
	"Selection Sort": "O(n²)/O(1)",
	"Insertion Sort": "O(n²)/O(1), best O(n)",
	"Merge Sort":     "O(n log n)/O(n)",
	"Quick Sort":     "O(n log n) avg, O(n²) worst/O(log n)",
}

// Complexity returns "time/space" for a display name, or "" if unknown.
func Complexity(name string) string {
	return complexity[name]
}
