// Package game is the ebiten front-end: a toolbar of buttons, a speed
// slider and the bars of the array being sorted.
package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/sort-visualization/internal/config"
	"github.com/iburimskiy/sort-visualization/internal/driver"
	"github.com/iburimskiy/sort-visualization/internal/render"
	"github.com/iburimskiy/sort-visualization/internal/sorting"
	"github.com/iburimskiy/sort-visualization/internal/sound"
)

const keySpeedStep = 0.05

// Game implements ebiten.Game. The driver is advanced from Update, so the
// engine only ever runs on the game loop goroutine.
type Game struct {
	cfg    config.Config
	driver *driver.Driver
	board  *render.Board
	tone   *sound.Tone
	sink   sorting.Sink
	algo   sorting.Algorithm
	rng    *rand.Rand

	buttons []*button
	slider  slider

	audioOK  bool
	notice   string
	lastErr  error
	reported bool
}

// New builds the game with values loaded and no run started.
func New(cfg config.Config, algo sorting.Algorithm, values []float64) (*Game, error) {
	board := render.NewBoard()
	tone := sound.NewTone(beep.SampleRate(config.SampleRate), config.ToneDuration, config.ToneQueue,
		config.ToneLowHz, config.ToneHighHz, config.ToneVolume)
	sink := sorting.MultiSink{board, tone}

	e, err := sorting.New(algo, sink)
	if err != nil {
		return nil, err
	}
	d := driver.New(e,
		driver.WithBounds(cfg.MinInterval, cfg.MaxInterval),
		driver.WithInterval(cfg.Interval),
	)
	if err := d.Load(values); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		cfg:    cfg,
		driver: d,
		board:  board,
		tone:   tone,
		sink:   sink,
		algo:   algo,
		rng:    rand.New(rand.NewSource(seed)),
		slider: newSlider(),
	}
	g.buttons = g.newButtons()
	layoutButtons(g.buttons)

	tone.SetMuted(!cfg.Sound)
	if err := startAudio(tone); err != nil {
		slog.Warn("audio unavailable, tones disabled", "error", err)
		tone.SetMuted(true)
	} else {
		g.audioOK = true
	}
	return g, nil
}

func (g *Game) newButtons() []*button {
	running := func() bool {
		st := g.driver.State()
		return st == driver.Running || st == driver.Paused
	}
	return []*button{
		{label: fixed("Randomize"), key: ebiten.KeyR, action: g.randomize},
		{label: fixed("Custom..."), key: ebiten.KeyC, action: g.enterValues},
		{label: fixed("Open..."), key: ebiten.KeyO, action: g.openValues},
		{label: fixed("Sort"), key: ebiten.KeyEnter, action: g.start},
		{
			label: func() string {
				if g.driver.State() == driver.Paused {
					return "Resume"
				}
				return "Pause"
			},
			key:      ebiten.KeySpace,
			action:   g.togglePause,
			disabled: func() bool { return !running() },
		},
		{label: fixed("Step"), key: ebiten.KeyN, action: g.step},
		{label: func() string { return g.algo.String() }, key: ebiten.KeyA, action: g.nextAlgorithm},
		{
			label: func() string {
				if g.tone.Muted() {
					return "Sound: off"
				}
				return "Sound: on"
			},
			key:      ebiten.KeyM,
			action:   g.toggleSound,
			disabled: func() bool { return !g.audioOK },
		},
	}
}

func fixed(s string) func() string {
	return func() string { return s }
}

func (g *Game) Update() error {
	mouseX, mouseY := ebiten.CursorPosition()

	for _, b := range g.buttons {
		if !b.update(mouseX, mouseY) {
			continue
		}
		if err := b.action(); err != nil {
			g.lastErr = err
			slog.Error("action failed", "button", b.label(), "error", err)
		}
	}

	if s, ok := g.slider.update(mouseX, mouseY); ok {
		g.driver.SetSpeed(s)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.driver.SetSpeed(g.driver.Speed() + keySpeedStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.driver.SetSpeed(g.driver.Speed() - keySpeedStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.driver.Stop()
		return ebiten.Termination
	}

	g.driver.Update(time.Second / time.Duration(ebiten.TPS()))
	g.reportFailure()
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// reportFailure shows an invariant violation once per run.
func (g *Game) reportFailure() {
	if g.reported || g.driver.State() != driver.Failed {
		return
	}
	g.reported = true
	g.lastErr = g.driver.Err()
	showError("Sort failed", fmt.Sprintf("Internal error: %v", g.lastErr))
}

// load replaces the array. Invalid input keeps the previous one.
func (g *Game) load(values []float64) error {
	if err := g.driver.Load(values); err != nil {
		g.notice = invalidInputNotice(err)
		return nil
	}
	g.notice = ""
	g.lastErr = nil
	return nil
}

func (g *Game) randomize() error {
	return g.load(sorting.Random(g.rng, g.cfg.Size, g.cfg.MaxValue))
}

func (g *Game) enterValues() error {
	current, _ := g.board.Snapshot()
	text, ok, err := askValues(sorting.FormatValues(current))
	if err != nil || !ok {
		return err
	}
	values, err := sorting.ParseValues(text)
	if err != nil {
		g.notice = invalidInputNotice(err)
		return nil
	}
	return g.load(values)
}

func (g *Game) openValues() error {
	values, ok, err := pickValues(g.cfg.Size, g.cfg.MaxValue)
	if err != nil {
		if sorting.IsInputError(err) {
			g.notice = invalidInputNotice(err)
			return nil
		}
		return err
	}
	if !ok {
		return nil
	}
	return g.load(values)
}

func (g *Game) start() error {
	if _, err := g.driver.Restart(); err != nil {
		return err
	}
	g.reported = false
	g.lastErr = nil
	g.notice = ""
	return nil
}

func (g *Game) togglePause() error {
	g.driver.TogglePause()
	return nil
}

// step advances a single tick, starting a paused run when none is active.
func (g *Game) step() error {
	if st := g.driver.State(); st != driver.Running && st != driver.Paused {
		if err := g.start(); err != nil {
			return err
		}
		g.driver.Pause()
	}
	g.driver.Step()
	return nil
}

func (g *Game) nextAlgorithm() error {
	algo := g.algo.Next()
	e, err := sorting.New(algo, g.sink)
	if err != nil {
		return err
	}
	if err := g.driver.SetEngine(e); err != nil {
		return err
	}
	g.algo = algo
	g.lastErr = nil
	return nil
}

func (g *Game) toggleSound() error {
	g.tone.SetMuted(!g.tone.Muted())
	return nil
}

func invalidInputNotice(err error) string {
	var inputErr *sorting.InputError
	if errors.As(err, &inputErr) && inputErr.Token != "" {
		return fmt.Sprintf("Invalid input %q: use comma-separated numbers", inputErr.Token)
	}
	return "Invalid input: use comma-separated numbers"
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.Config, algo sorting.Algorithm, values []float64) error {
	g, err := New(cfg, algo, values)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Sorting Visualizer - Enter: sort, Space: pause, N: step, A: algorithm, Esc/Q: quit")

	err = ebiten.RunGame(g)
	slog.Debug("tone queue at exit", "pending", g.tone.Pending(), "dropped", g.tone.Dropped())
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
