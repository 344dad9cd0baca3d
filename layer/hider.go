package layer

import (
	"github.com/milk9111/shroomydoomy/ecs"
	"github.com/milk9111/shroomydoomy/ecs/component"
)

// Scale is the size remembered for a member while it is hidden.
type Scale struct {
	X, Y float64
}

func (s Scale) zero() bool {
	return s.X == 0 && s.Y == 0
}

// Hider collapses and restores a member's visible size.
type Hider interface {
	Capture(w *ecs.World, e ecs.Entity) (Scale, bool)
	Hide(w *ecs.World, e ecs.Entity)
	Show(w *ecs.World, e ecs.Entity, s Scale)
}

// ScaleHider hides entities by zeroing their Transform scale.
type ScaleHider struct{}

func (ScaleHider) Capture(w *ecs.World, e ecs.Entity) (Scale, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return Scale{}, false
	}
	return Scale{X: t.ScaleX, Y: t.ScaleY}, true
}

func (ScaleHider) Hide(w *ecs.World, e ecs.Entity) {
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.ScaleX, t.ScaleY = 0, 0
	}
}

func (ScaleHider) Show(w *ecs.World, e ecs.Entity, s Scale) {
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.ScaleX, t.ScaleY = s.X, s.Y
	}
}

// FontHider hides text by zeroing the font scale and leaves the transform
// alone.
type FontHider struct{}

func (FontHider) Capture(w *ecs.World, e ecs.Entity) (Scale, bool) {
	f, ok := ecs.Get(w, e, component.FontComponent.Kind())
	if !ok {
		return Scale{}, false
	}
	return Scale{X: f.Scale, Y: f.Scale}, true
}

func (FontHider) Hide(w *ecs.World, e ecs.Entity) {
	if f, ok := ecs.Get(w, e, component.FontComponent.Kind()); ok {
		f.Scale = 0
	}
}

func (FontHider) Show(w *ecs.World, e ecs.Entity, s Scale) {
	if f, ok := ecs.Get(w, e, component.FontComponent.Kind()); ok {
		f.Scale = s.X
	}
}
