package layer

import (
	"math"

	"github.com/milk9111/shroomydoomy/ecs"
	"github.com/milk9111/shroomydoomy/ecs/component"
	"github.com/milk9111/shroomydoomy/input"
)

// moveEpsilon is the per-frame distance below which a body counts as idle.
const moveEpsilon = 0.01

type movement struct {
	x, y   float64
	moving bool
}

// Game draws gameplay objects. It keeps rotations in [0, 2π) and plays the
// animation of dynamic bodies only while they move.
type Game struct {
	*Base
	motion map[ecs.Entity]movement
}

func NewGame(ctx *Context) *Game {
	l := &Game{
		Base: newBase(ctx, Options{
			Name:    NameGame,
			Filter:  ByCategory(component.CategoryGame),
			Visible: true,
		}),
		motion: map[ecs.Entity]movement{},
	}
	l.draw = func(e ecs.Entity) { l.drawSpriteWith(e, l.tintHovered) }
	l.onRemove = func(e ecs.Entity) { delete(l.motion, e) }
	return l
}

func (l *Game) OnAttach() {
	clear(l.motion)
	l.Base.OnAttach()
}

func (l *Game) OnUpdate(dt float64) {
	l.updateVisibility()
	if !l.visible {
		return
	}
	w := l.ctx.World
	for _, e := range l.members {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		t.Rotation = wrapAngle(t.Rotation)
		l.track(e, t)
	}
}

func (l *Game) track(e ecs.Entity, t *component.Transform) {
	w := l.ctx.World
	body, ok := ecs.Get(w, e, component.RigidBodyComponent.Kind())
	if !ok || body.Static {
		return
	}
	prev, seen := l.motion[e]
	m := movement{x: t.X, y: t.Y}
	if seen {
		m.moving = math.Hypot(t.X-prev.x, t.Y-prev.y) > moveEpsilon
	}
	l.motion[e] = m
	if a, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
		a.Playing = m.moving
	}
}

// Moving reports whether e moved during the last update.
func (l *Game) Moving(e ecs.Entity) bool {
	return l.motion[e].moving
}

func (l *Game) HandleInput(ev input.Event) bool {
	return l.handleButtons(ev)
}

func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
