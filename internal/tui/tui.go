package tui

import (
	"log/slog"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iburimskiy/sort-visualization/internal/config"
	"github.com/iburimskiy/sort-visualization/internal/sorting"
)

// Run opens the terminal front-end and blocks until the user quits.
// Driver logs are dropped while the alternate screen is active.
func Run(cfg config.Config, algo sorting.Algorithm, values []float64) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m, err := NewModel(cfg, algo, values, rand.New(rand.NewSource(seed)), slog.New(slog.DiscardHandler))
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
