package layer

import (
	"github.com/milk9111/shroomydoomy/ecs"
	"github.com/milk9111/shroomydoomy/ecs/component"
	"github.com/milk9111/shroomydoomy/ecs/event"
	"github.com/milk9111/shroomydoomy/render"
)

// Font renders every entity carrying a Font component, whatever its
// category. Hiding zeroes the font scale rather than the transform.
type Font struct {
	*Base
}

func NewFont(ctx *Context) *Font {
	l := &Font{Base: newBase(ctx, Options{
		Name:      NameFont,
		Filter:    HasFont,
		Hider:     FontHider{},
		Visible:   true,
		Bootstrap: []component.Kind{component.FontComponent.Kind()},
		Spawned:   []event.EventID{event.FontSpawned},
		Deleted:   []event.EventID{event.FontDeleted, event.ObjectDeleted},
	})}
	l.draw = l.drawText
	return l
}

func (l *Font) drawText(e ecs.Entity) {
	w := l.ctx.World
	f, ok := ecs.Get(w, e, component.FontComponent.Kind())
	if !ok {
		l.warnMissing(e, "Font")
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		l.warnMissing(e, "Transform")
		return
	}
	scale := f.Scale * t.ScaleX
	if scale == 0 || f.Text == "" {
		return
	}
	l.ctx.Renderer.RenderText(render.Text{
		X:     t.X,
		Y:     t.Y,
		Scale: scale,
		Text:  f.Text,
		Face:  f.Face,
		Color: render.WithAlpha(f.Color, l.opacity),
	})
}
