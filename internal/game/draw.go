package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/sort-visualization/internal/config"
	"github.com/iburimskiy/sort-visualization/internal/driver"
	"github.com/iburimskiy/sort-visualization/internal/render"
	"github.com/iburimskiy/sort-visualization/internal/sorting"
)

// Debug font cell size.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

var (
	backgroundColor = color.RGBA{R: 18, G: 20, B: 28, A: 255}
	trackColor      = color.RGBA{R: 40, G: 46, B: 60, A: 255}
	fillColor       = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	knobColor       = color.RGBA{R: 200, G: 210, B: 230, A: 255}
	borderColor     = color.RGBA{R: 150, G: 170, B: 200, A: 255}
	errorColor      = color.RGBA{R: 230, G: 80, B: 80, A: 255}

	asciiSafe = strings.NewReplacer("²", "^2")
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for _, b := range g.buttons {
		drawButton(screen, b)
	}
	g.drawSlider(screen)
	g.drawBars(screen)
	drawLegend(screen)
	g.drawStatus(screen)
}

func drawButton(screen *ebiten.Image, b *button) {
	var bgColor color.Color
	switch {
	case !b.enabled():
		bgColor = color.RGBA{R: 50, G: 55, B: 65, A: 255}
	case b.pressed:
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	case b.hovered:
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	default:
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	}
	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bgColor, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 2, borderColor, false)

	text := b.label()
	textX := b.x + (b.w-len(text)*glyphWidth)/2
	textY := b.y + (b.h-glyphHeight)/2
	ebitenutil.DebugPrintAt(screen, text, textX, textY)
}

func (g *Game) drawSlider(screen *ebiten.Image) {
	s := g.slider
	speed := g.driver.Speed()
	vector.DrawFilledRect(screen, float32(s.x), float32(s.y), float32(s.w), float32(s.h), trackColor, false)
	vector.DrawFilledRect(screen, float32(s.x), float32(s.y), float32(float64(s.w)*speed), float32(s.h), fillColor, false)

	knobX := float32(float64(s.x) + float64(s.w)*speed)
	knobY := float32(s.y) + float32(s.h)/2
	radius := float32(7)
	if s.hovered || s.dragging {
		radius = 8
	}
	vector.DrawFilledCircle(screen, knobX, knobY, radius, knobColor, true)

	label := fmt.Sprintf("Speed: %s per step", formatInterval(g.driver.Interval()))
	ebitenutil.DebugPrintAt(screen, label, s.x+s.w+16, s.y-4)
}

func (g *Game) drawBars(screen *ebiten.Image) {
	const margin = 20
	labelRow := glyphHeight + 4
	x := float64(margin)
	y := float64(config.BarAreaTop)
	w := float64(config.WindowWidth - 2*margin)
	h := float64(config.BarAreaBottom-config.BarAreaTop) - float64(labelRow)

	for _, bar := range g.board.Layout(x, y, w, h, config.BarMaxWidth, config.BarGapRatio) {
		vector.DrawFilledRect(screen, float32(bar.X), float32(bar.Y), float32(bar.W), float32(bar.H), render.Palette[bar.Category], false)
		if labelW := len(bar.Label) * glyphWidth; labelW <= int(bar.W)+4 {
			lx := int(bar.X+bar.W/2) - labelW/2
			ebitenutil.DebugPrintAt(screen, bar.Label, lx, int(y+h)+2)
		}
	}
}

func drawLegend(screen *ebiten.Image) {
	const swatch = 12
	x := 20
	y := config.WindowHeight - 30
	for _, c := range sorting.Categories() {
		vector.DrawFilledRect(screen, float32(x), float32(y), swatch, swatch, render.Palette[c], false)
		name := c.String()
		ebitenutil.DebugPrintAt(screen, name, x+swatch+6, y-3)
		x += swatch + 6 + len(name)*glyphWidth + 24
	}
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	counts := g.driver.Counts()
	status := fmt.Sprintf("%s  %s  |  Comparisons: %s  Swaps: %s  |  %s",
		g.algo, asciiSafe.Replace(sorting.Complexity(g.algo.String())),
		formatCount(counts.Comparisons), formatCount(counts.Swaps), stateLabel(g.driver.State()))
	ebitenutil.DebugPrintAt(screen, status, 12, 12)

	msg := g.notice
	if g.lastErr != nil {
		msg = "Error: " + g.lastErr.Error()
	}
	if msg != "" {
		y := config.WindowHeight - 30
		x := config.WindowWidth - 20 - len(msg)*glyphWidth
		vector.DrawFilledRect(screen, float32(x-4), float32(y-4), float32(len(msg)*glyphWidth+8), glyphHeight+6, errorColor, false)
		ebitenutil.DebugPrintAt(screen, msg, x, y-2)
	}
}

func stateLabel(s driver.State) string {
	switch s {
	case driver.Running:
		return "Sorting..."
	case driver.Paused:
		return "Paused"
	case driver.Finished:
		return "Sorted"
	case driver.Failed:
		return "Failed"
	}
	return "Ready"
}
