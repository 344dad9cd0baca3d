package layer

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// fader tweens a layer's opacity. A zero duration jumps straight to the
// target on the next update.
type fader struct {
	tween   *gween.Tween
	to      float64
	instant bool
}

func (f *fader) start(from, to, seconds float64) {
	f.to = to
	if seconds <= 0 {
		f.tween, f.instant = nil, true
		return
	}
	f.instant = false
	f.tween = gween.New(float32(from), float32(to), float32(seconds), ease.InOutSine)
}

func (f *fader) active() bool {
	return f.tween != nil || f.instant
}

func (f *fader) stop() {
	f.tween, f.instant = nil, false
}

// update advances the tween and returns the current value. done is true on
// the frame the tween finishes.
func (f *fader) update(dt float64) (value float64, done bool) {
	if f.instant {
		f.instant = false
		return f.to, true
	}
	if f.tween == nil {
		return f.to, false
	}
	v, finished := f.tween.Update(float32(dt))
	if finished {
		f.tween = nil
		return f.to, true
	}
	return float64(v), false
}
