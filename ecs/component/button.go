package component

// Button is a clickable rectangle centered on the entity's transform.
type Button struct {
	Action  string  `json:"action"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Hovered bool    `json:"-"`
}

// Contains reports whether (px, py) falls inside the button centered at
// (cx, cy).
func (b Button) Contains(cx, cy, px, py float64) bool {
	return px >= cx-b.Width/2 && px <= cx+b.Width/2 &&
		py >= cy-b.Height/2 && py <= cy+b.Height/2
}

var ButtonComponent = NewComponent[Button]()
