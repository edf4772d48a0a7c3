package tui

import (
	"log/slog"
	"math"
	"math/rand"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/sort-visualization/internal/config"
	"github.com/iburimskiy/sort-visualization/internal/driver"
	"github.com/iburimskiy/sort-visualization/internal/sorting"
)

func newTestModel(t *testing.T, algo sorting.Algorithm, values []float64) Model {
	t.Helper()
	m, err := NewModel(config.Default(), algo, values, rand.New(rand.NewSource(1)), slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok)
	return updated, cmd
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelStartsRun(t *testing.T) {
	m := newTestModel(t, sorting.BubbleSort, []float64{5, 3, 8, 1})
	assert.Equal(t, driver.Running, m.driver.State())
	assert.NotNil(t, m.Init())
}

func TestNewModelRejectsNonFinite(t *testing.T) {
	_, err := NewModel(config.Default(), sorting.BubbleSort, []float64{1, math.NaN()}, rand.New(rand.NewSource(1)), slog.New(slog.DiscardHandler))
	require.Error(t, err)
	assert.True(t, sorting.IsInputError(err))
}

func TestTicksRunToCompletion(t *testing.T) {
	m := newTestModel(t, sorting.BubbleSort, []float64{5, 3, 8, 1})
	for i := 0; i < 13; i++ {
		var cmd tea.Cmd
		m, cmd = send(t, m, tickMsg(time.Now()))
		assert.NotNil(t, cmd, "ticks keep coming")
	}
	assert.Equal(t, driver.Finished, m.driver.State())

	values, cats := m.board.Snapshot()
	assert.Equal(t, []float64{1, 3, 5, 8}, values)
	for _, c := range cats {
		assert.Equal(t, sorting.Sorted, c)
	}
	assert.Equal(t, sorting.Counts{Comparisons: 6, Swaps: 4}, m.driver.Counts())
}

func TestPauseAndStep(t *testing.T) {
	m := newTestModel(t, sorting.SelectionSort, []float64{5, 3, 8, 1})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, driver.Paused, m.driver.State())

	m, _ = send(t, m, tickMsg(time.Now()))
	assert.Equal(t, 0, m.driver.Ticks(), "paused runs ignore the timer")

	m, _ = send(t, m, key("n"))
	assert.Equal(t, 1, m.driver.Ticks())
	assert.Equal(t, driver.Paused, m.driver.State())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, driver.Running, m.driver.State())
}

func TestStepStartsPausedRunWhenIdle(t *testing.T) {
	m := newTestModel(t, sorting.InsertionSort, []float64{2, 1})
	m, _ = send(t, m, key("r"))
	assert.Equal(t, driver.Idle, m.driver.State())

	m, _ = send(t, m, key("n"))
	assert.Equal(t, driver.Paused, m.driver.State())
	assert.Equal(t, 1, m.driver.Ticks())
}

func TestRandomize(t *testing.T) {
	m := newTestModel(t, sorting.BubbleSort, []float64{5, 3, 8, 1})
	m, _ = send(t, m, key("r"))

	values, _ := m.board.Snapshot()
	assert.Len(t, values, config.Default().Size)
	for _, v := range values {
		assert.Less(t, v, float64(config.Default().MaxValue))
	}
	assert.Equal(t, driver.Idle, m.driver.State())
}

func TestNextAlgorithmKeepsValues(t *testing.T) {
	m := newTestModel(t, sorting.QuickSort, []float64{5, 3, 8, 1})
	m, _ = send(t, m, key("a"))

	assert.Equal(t, sorting.BubbleSort, m.algo)
	assert.Equal(t, "Bubble Sort", m.driver.Engine().Name())
	assert.Equal(t, driver.Idle, m.driver.State())
	values, _ := m.board.Snapshot()
	assert.Equal(t, []float64{5, 3, 8, 1}, values)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, driver.Running, m.driver.State())
}

func TestSpeedKeys(t *testing.T) {
	m := newTestModel(t, sorting.BubbleSort, []float64{5, 3, 8, 1})
	before := m.driver.Interval()

	m, _ = send(t, m, key("+"))
	faster := m.driver.Interval()
	assert.Less(t, faster, before)
	assert.Equal(t, driver.Running, m.driver.State(), "speed changes do not restart")

	m, _ = send(t, m, key("-"))
	m, _ = send(t, m, key("-"))
	assert.Greater(t, m.driver.Interval(), before)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, sorting.BubbleSort, []float64{5, 3, 8, 1})
	m, cmd := send(t, m, key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, driver.Idle, m.driver.State())
}

func TestView(t *testing.T) {
	m := newTestModel(t, sorting.MergeSort, []float64{5, 3, 8, 1})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})

	view := m.View()
	assert.Contains(t, view, "Merge Sort")
	assert.Contains(t, view, "O(n log n)/O(n)")
	assert.Contains(t, view, "running")
	assert.Contains(t, view, "comparisons 0")
	assert.Contains(t, view, "█")
	for _, label := range []string{"5", "3", "8", "1"} {
		assert.Contains(t, view, label)
	}
}

func TestViewEmptyArray(t *testing.T) {
	m := newTestModel(t, sorting.QuickSort, []float64{})
	assert.Equal(t, driver.Finished, m.driver.State())
	assert.NotContains(t, m.View(), "█")
}
