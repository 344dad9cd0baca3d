package layer

import (
	"github.com/milk9111/shroomydoomy/ecs"
	"github.com/milk9111/shroomydoomy/ecs/component"
	"github.com/milk9111/shroomydoomy/input"
	"github.com/milk9111/shroomydoomy/render"
)

const SoundClick = "sfx_click"

var hoverTint = component.Color{R: 1.2, G: 1.2, B: 0.8, A: 1}

// hover marks the member buttons under the cursor.
func (b *Base) hover(x, y float64) {
	w := b.ctx.World
	for _, e := range b.members {
		btn, ok := ecs.Get(w, e, component.ButtonComponent.Kind())
		if !ok {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		btn.Hovered = ok && !t.Hidden() && btn.Contains(t.X, t.Y, x, y)
	}
}

// buttonAt returns the topmost visible member button containing (x, y).
func (b *Base) buttonAt(x, y float64) (*component.Button, bool) {
	w := b.ctx.World
	for i := len(b.members) - 1; i >= 0; i-- {
		e := b.members[i]
		btn, ok := ecs.Get(w, e, component.ButtonComponent.Kind())
		if !ok {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok || t.Hidden() {
			continue
		}
		if btn.Contains(t.X, t.Y, x, y) {
			return btn, true
		}
	}
	return nil, false
}

// handleButtons updates hover state and dispatches the action of a clicked
// button. It reports whether a button consumed the event.
func (b *Base) handleButtons(ev input.Event) bool {
	if !b.visible {
		return false
	}
	switch ev.Kind {
	case input.MouseMoved:
		b.hover(ev.X, ev.Y)
	case input.MousePressed:
		if !ev.IsClick() {
			return false
		}
		btn, ok := b.buttonAt(ev.X, ev.Y)
		if !ok || btn.Action == "" {
			return false
		}
		b.ctx.Audio.PlaySound(SoundClick)
		b.ctx.Actions.Dispatch(btn.Action)
		return true
	}
	return false
}

// tintHovered brightens hovered buttons.
func (b *Base) tintHovered(e ecs.Entity, q *render.Quad) bool {
	if btn, ok := ecs.Get(b.ctx.World, e, component.ButtonComponent.Kind()); ok && btn.Hovered {
		q.Color = q.Color.Mul(hoverTint)
	}
	return true
}
