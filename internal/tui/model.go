// Package tui is the terminal front-end: horizontal bars colored by
// category, driven one tick per timer message.
package tui

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/iburimskiy/sort-visualization/internal/config"
	"github.com/iburimskiy/sort-visualization/internal/driver"
	"github.com/iburimskiy/sort-visualization/internal/render"
	"github.com/iburimskiy/sort-visualization/internal/sorting"
)

const (
	defaultWidth = 80
	labelWidth   = 6
	speedStep    = 0.05
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(labelWidth).Align(lipgloss.Right)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).MarginTop(1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)

	barStyles = paletteStyles()
)

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B))
}

func paletteStyles() map[sorting.Category]lipgloss.Style {
	styles := make(map[sorting.Category]lipgloss.Style, len(render.Palette))
	for c, rgba := range render.Palette {
		styles[c] = lipgloss.NewStyle().Foreground(hex(rgba))
	}
	return styles
}

type tickMsg time.Time

// Model is the bubbletea model. The driver and board are shared pointers, so
// copies of Model see the same run.
type Model struct {
	driver  *driver.Driver
	board   *render.Board
	algo    sorting.Algorithm
	rng     *rand.Rand
	size    int
	limit   int
	width   int
	notice  string
	printer *message.Printer
}

// NewModel builds the model and starts a run over values.
func NewModel(cfg config.Config, algo sorting.Algorithm, values []float64, rng *rand.Rand, logger *slog.Logger) (Model, error) {
	board := render.NewBoard()
	e, err := sorting.New(algo, board)
	if err != nil {
		return Model{}, err
	}
	d := driver.New(e,
		driver.WithBounds(cfg.MinInterval, cfg.MaxInterval),
		driver.WithInterval(cfg.Interval),
		driver.WithLogger(logger),
	)
	if _, err := d.Start(values); err != nil {
		return Model{}, err
	}
	return Model{
		driver:  d,
		board:   board,
		algo:    algo,
		rng:     rng,
		size:    cfg.Size,
		limit:   cfg.MaxValue,
		width:   defaultWidth,
		printer: message.NewPrinter(language.English),
	}, nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.driver.Interval(), func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles keys and advances the run once per tick message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tickMsg:
		if m.driver.State() == driver.Running {
			m.driver.Step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.driver.Stop()
		return m, tea.Quit
	case " ", "space", "p":
		switch m.driver.State() {
		case driver.Running, driver.Paused:
			m.driver.TogglePause()
		default:
			m.restart()
		}
	case "enter", "s":
		m.restart()
	case "n":
		if st := m.driver.State(); st != driver.Running && st != driver.Paused {
			m.restart()
			m.driver.Pause()
		}
		m.driver.Step()
	case "r":
		values := sorting.Random(m.rng, m.size, m.limit)
		if err := m.driver.Load(values); err != nil {
			m.notice = err.Error()
		}
	case "a":
		m.algo = m.algo.Next()
		e, err := sorting.New(m.algo, m.board)
		if err == nil {
			err = m.driver.SetEngine(e)
		}
		if err != nil {
			m.notice = err.Error()
		}
	case "+", "=", "right":
		m.driver.SetSpeed(m.driver.Speed() + speedStep)
	case "-", "_", "left":
		m.driver.SetSpeed(m.driver.Speed() - speedStep)
	}
	return m, nil
}

func (m *Model) restart() {
	if _, err := m.driver.Restart(); err != nil {
		m.notice = err.Error()
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%s  %s", m.algo, sorting.Complexity(m.algo.String()))))
	b.WriteString("\n\n")

	barArea := m.width - labelWidth - 2
	if barArea < 1 {
		barArea = 1
	}
	n := m.board.Len()
	for _, bar := range m.board.Layout(0, 0, float64(n), float64(barArea), 0, 0) {
		length := int(math.Round(bar.H))
		b.WriteString(labelStyle.Render(bar.Label))
		b.WriteString(" ")
		b.WriteString(barStyles[bar.Category].Render(strings.Repeat("█", length)))
		b.WriteString("\n")
	}

	counts := m.driver.Counts()
	status := m.printer.Sprintf("%s  %s/tick  comparisons %d  swaps %d",
		m.driver.State(), m.driver.Interval(), counts.Comparisons, counts.Swaps)
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")

	if err := m.driver.Err(); err != nil {
		b.WriteString(errorStyle.Render("internal error: " + err.Error()))
		b.WriteString("\n")
	} else if m.notice != "" {
		b.WriteString(errorStyle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("space pause • n step • enter sort • r randomize • a algorithm • +/- speed • q quit"))
	return b.String()
}
