package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyMap = []struct {
	key Key
	eb  ebiten.Key
}{
	{KeyEscape, ebiten.KeyEscape},
	{KeyEnter, ebiten.KeyEnter},
	{KeySpace, ebiten.KeySpace},
	{KeyLeft, ebiten.KeyArrowLeft},
	{KeyRight, ebiten.KeyArrowRight},
	{KeyUp, ebiten.KeyArrowUp},
	{KeyDown, ebiten.KeyArrowDown},
	{KeyF3, ebiten.KeyF3},
	{KeyR, ebiten.KeyR},
}

var buttonMap = []struct {
	button MouseButton
	eb     ebiten.MouseButton
}{
	{MouseLeft, ebiten.MouseButtonLeft},
	{MouseRight, ebiten.MouseButtonRight},
}

// Poller converts ebiten's per-frame input state into events. It must be
// called from ebiten's Update.
type Poller struct {
	lastX, lastY int
	events       []Event
}

func NewPoller() *Poller {
	return &Poller{}
}

// Poll returns the events of the current frame. The slice is reused by the
// next call.
func (p *Poller) Poll() []Event {
	p.events = p.events[:0]

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	if mx != p.lastX || my != p.lastY {
		p.events = append(p.events, Event{Kind: MouseMoved, X: x, Y: y})
		p.lastX, p.lastY = mx, my
	}

	for _, k := range keyMap {
		if inpututil.IsKeyJustPressed(k.eb) {
			p.events = append(p.events, Event{Kind: KeyPressed, Key: k.key, X: x, Y: y})
		}
		if inpututil.IsKeyJustReleased(k.eb) {
			p.events = append(p.events, Event{Kind: KeyReleased, Key: k.key, X: x, Y: y})
		}
	}

	for _, b := range buttonMap {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			p.events = append(p.events, Event{Kind: MousePressed, Button: b.button, X: x, Y: y})
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			p.events = append(p.events, Event{Kind: MouseReleased, Button: b.button, X: x, Y: y})
		}
	}

	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		id := ids[0]
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight) {
			p.events = append(p.events, Event{Kind: KeyPressed, Key: KeyEscape, X: x, Y: y})
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom) {
			p.events = append(p.events, Event{Kind: KeyPressed, Key: KeyEnter, X: x, Y: y})
		}
	}

	return p.events
}
