package component

// Animation binds an entity to a clip of the animation container. The
// playback cursor lives here so it survives container reloads.
type Animation struct {
	Clip    string  `json:"clip"`
	Playing bool    `json:"playing"`
	Frame   int     `json:"-"`
	Timer   float64 `json:"-"`
}

var AnimationComponent = NewComponent[Animation]()
