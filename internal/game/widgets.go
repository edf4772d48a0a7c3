package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/sort-visualization/internal/config"
)

// button is a clickable rectangle with a keyboard shortcut.
type button struct {
	label    func() string
	key      ebiten.Key
	x, y     int
	w, h     int
	action   func() error
	hovered  bool
	pressed  bool
	disabled func() bool
}

func (b *button) contains(mx, my int) bool {
	return mx >= b.x && mx <= b.x+b.w && my >= b.y && my <= b.y+b.h
}

func (b *button) enabled() bool {
	return b.disabled == nil || !b.disabled()
}

// update tracks hover/press state and reports whether the button fired this
// frame, by click release or by its key.
func (b *button) update(mx, my int) bool {
	b.hovered = b.contains(mx, my)
	if !b.enabled() {
		b.pressed = false
		return false
	}
	if b.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		b.pressed = true
	}
	fired := false
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		fired = b.pressed && b.hovered
		b.pressed = false
	}
	if inpututil.IsKeyJustPressed(b.key) {
		fired = true
	}
	return fired
}

// layoutButtons places buttons left to right on the toolbar row.
func layoutButtons(buttons []*button) {
	x := config.ButtonX
	for _, b := range buttons {
		b.x, b.y = x, config.ButtonY
		b.w, b.h = config.ButtonWidth, config.ButtonHeight
		x += config.ButtonWidth + config.ButtonGap
	}
}

// slider is the speed control: the knob position is the driver speed in
// [0, 1], right being faster.
type slider struct {
	x, y, w, h int
	dragging   bool
	hovered    bool
}

func newSlider() slider {
	return slider{x: config.SliderX, y: config.SliderY, w: config.SliderWidth, h: config.SliderHeight}
}

func (s *slider) contains(mx, my int) bool {
	const grab = 8
	return mx >= s.x-grab && mx <= s.x+s.w+grab && my >= s.y-grab && my <= s.y+s.h+grab
}

// update returns the knob position and true while the knob is being dragged.
// Positions past either end are left to Driver.SetSpeed to clamp.
func (s *slider) update(mx, my int) (float64, bool) {
	s.hovered = s.contains(mx, my)
	if s.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.dragging = true
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		s.dragging = false
	}
	if !s.dragging {
		return 0, false
	}
	return float64(mx-s.x) / float64(s.w), true
}
