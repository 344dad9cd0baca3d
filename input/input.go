// Package input turns polled device state into discrete events that the
// layer stack routes top to bottom.
package input

type Kind int

const (
	KeyPressed Kind = iota + 1
	KeyReleased
	MouseMoved
	MousePressed
	MouseReleased
)

type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeySpace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyF3
	KeyR
)

var keyNames = map[Key]string{
	KeyEscape: "Escape",
	KeyEnter:  "Enter",
	KeySpace:  "Space",
	KeyLeft:   "Left",
	KeyRight:  "Right",
	KeyUp:     "Up",
	KeyDown:   "Down",
	KeyF3:     "F3",
	KeyR:      "R",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
)

// Event is one input occurrence. X and Y carry the cursor position for
// every kind.
type Event struct {
	Kind   Kind
	Key    Key
	Button MouseButton
	X, Y   float64
}

func (e Event) IsKeyPress(k Key) bool {
	return e.Kind == KeyPressed && e.Key == k
}

func (e Event) IsClick() bool {
	return e.Kind == MousePressed && e.Button == MouseLeft
}
