package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceText(t *testing.T) {
	out, _, err := execute(t, Launchers{}, "trace", "--algorithm", "bubble", "--values", "5, 3, 8, 1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 16) // ticks 0..13 plus two summary lines
	assert.True(t, strings.HasPrefix(lines[0], "000 init"))
	assert.Equal(t, "013 done          [1 3 5 8] SSSS cmp=6 swp=4", lines[13])
	assert.Equal(t, "Bubble Sort: 4 bars, 13 ticks, 6 comparisons, 4 swaps (O(n²)/O(1))", lines[14])
	assert.True(t, strings.HasPrefix(lines[15], "render updates: "))
}

func TestTraceJSON(t *testing.T) {
	out, _, err := execute(t, Launchers{}, "trace", "-a", "quick", "--values", "5 3 8 1", "--format", "json")
	require.NoError(t, err)

	var frames []struct {
		Tick       int       `json:"tick"`
		Phase      string    `json:"phase"`
		Values     []float64 `json:"values"`
		Categories string    `json:"categories"`
		Done       bool      `json:"done"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &frames))
	require.Len(t, frames, 12)
	last := frames[len(frames)-1]
	assert.True(t, last.Done)
	assert.Equal(t, []float64{1, 3, 5, 8}, last.Values)
	assert.Equal(t, "SSSS", last.Categories)
}

func TestTraceSummary(t *testing.T) {
	out, _, err := execute(t, Launchers{}, "trace", "-a", "merge", "--values", "5,3,8,1", "--summary", "--format", "json")
	require.NoError(t, err)

	var s TraceSummary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.NotEmpty(t, s.Run)
	assert.Equal(t, "Merge Sort", s.Algorithm)
	assert.Equal(t, 4, s.Size)
	assert.Equal(t, 5, s.Comparisons)
	assert.Equal(t, 7, s.Swaps)
	assert.Equal(t, "O(n log n)/O(n)", s.Complexity)
	// 4 reset pushes plus one push per merge write
	assert.Equal(t, 4+8, s.ValueUpdates)
	assert.Positive(t, s.CategoryUpdates)
}

func TestTraceSummaryRealtimeMatchesInstant(t *testing.T) {
	args := []string{"trace", "-a", "selection", "--values", "5 3 8 1", "--summary", "--format", "json"}
	instant, _, err := execute(t, Launchers{}, args...)
	require.NoError(t, err)
	paced, _, err := execute(t, Launchers{}, append(args, "--realtime", "--interval", "10ms")...)
	require.NoError(t, err)

	var a, b TraceSummary
	require.NoError(t, json.Unmarshal([]byte(instant), &a))
	require.NoError(t, json.Unmarshal([]byte(paced), &b))
	assert.Equal(t, a.Ticks, b.Ticks)
	assert.Equal(t, a.Comparisons, b.Comparisons)
	assert.Equal(t, a.Swaps, b.Swaps)
	assert.NotEqual(t, a.Run, b.Run, "every run gets its own ID")
}

func TestTraceLimit(t *testing.T) {
	out, _, err := execute(t, Launchers{}, "trace", "-a", "bubble", "--values", "5 3 8 1", "--limit", "3")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "did not finish within 3 ticks")
	assert.True(t, strings.HasPrefix(out, "000 init"))
}

func TestTraceInvalidFormat(t *testing.T) {
	_, _, err := execute(t, Launchers{}, "trace", "--format", "xml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "invalid format")
}

func TestTraceEmptyArray(t *testing.T) {
	out, _, err := execute(t, Launchers{}, "trace", "-a", "insertion", "--values", "")
	require.NoError(t, err)
	assert.Contains(t, out, "Insertion Sort: 0 bars, 0 ticks, 0 comparisons, 0 swaps")
}

func TestComplexityCommand(t *testing.T) {
	out, _, err := execute(t, Launchers{}, "complexity")
	require.NoError(t, err)
	assert.Contains(t, out, "ALGORITHM")
	assert.Contains(t, out, "Quick Sort")
	assert.Contains(t, out, "O(n log n) avg, O(n²) worst/O(log n)")

	out, _, err = execute(t, Launchers{}, "complexity", "--format", "json")
	require.NoError(t, err)
	var entries []ComplexityEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 5)
	assert.Equal(t, ComplexityEntry{Algorithm: "Bubble Sort", Complexity: "O(n²)/O(1)"}, entries[0])
}
