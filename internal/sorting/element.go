package sorting

// Category is the visual state of one element. It has no effect on ordering.
type Category uint8

const (
	Unsorted Category = iota
	Comparing
	Marker
	Pivot
	Sorted
)

var categoryNames = [...]string{"unsorted", "comparing", "marker", "pivot", "sorted"}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

// Categories lists every category in legend order.
func Categories() []Category {
	return []Category{Unsorted, Comparing, Marker, Pivot, Sorted}
}

// Element is one bar: a value plus its visual category.
type Element struct {
	Value    float64
	Category Category
}

// Counts is the instrumentation of a run.
type Counts struct {
	Comparisons int `json:"comparisons"`
	Swaps       int `json:"swaps"`
}

// Sink receives every value and category change, synchronously, from within
// Advance or Reset.
type Sink interface {
	ValueChanged(index int, value float64)
	CategoryChanged(index int, category Category)
}

// NopSink discards all updates.
type NopSink struct{}

func (NopSink) ValueChanged(int, float64)     {}
func (NopSink) CategoryChanged(int, Category) {}

// MultiSink fans updates out to several sinks in order.
type MultiSink []Sink

func (m MultiSink) ValueChanged(index int, value float64) {
	for _, s := range m {
		s.ValueChanged(index, value)
	}
}

func (m MultiSink) CategoryChanged(index int, category Category) {
	for _, s := range m {
		s.CategoryChanged(index, category)
	}
}

// Resetter is implemented by sinks that track the array length. Reset is
// called before the full array is pushed at the start of a run.
type Resetter interface {
	Reset(n int)
}

func (m MultiSink) Reset(n int) {
	for _, s := range m {
		if r, ok := s.(Resetter); ok {
			r.Reset(n)
		}
	}
}
