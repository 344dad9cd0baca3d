package layer

import (
	"github.com/milk9111/shroomydoomy/ecs"
	"github.com/milk9111/shroomydoomy/ecs/component"
	"github.com/milk9111/shroomydoomy/render"
)

// Utils draws editor and gameplay gizmos. Its members are templates: the
// first one with a material is stamped over every highlighted tile.
type Utils struct {
	*Base
}

func NewUtils(ctx *Context) *Utils {
	l := &Utils{Base: newBase(ctx, Options{
		Name:    NameUtils,
		Filter:  ByCategory(component.CategoryUtils),
		Visible: true,
	})}
	l.draw = func(ecs.Entity) {}
	return l
}

func (l *Utils) OnRender() {
	if !l.visible {
		return
	}
	tmpl, ok := l.template()
	if !ok {
		return
	}
	w := l.ctx.World
	r := l.ctx.Renderer
	r.BeginBatch()
	ecs.ForEach2(w, component.TileComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, tile *component.Tile, t *component.Transform) {
		if !tile.Highlighted || t.Hidden() {
			return
		}
		q := render.QuadFor(*t, tmpl, l.opacity)
		r.DrawQuad(q)
	})
	r.EndBatch()
	r.Flush()
}

func (l *Utils) template() (component.Material, bool) {
	for _, e := range l.members {
		if m, ok := ecs.Get(l.ctx.World, e, component.MaterialComponent.Kind()); ok {
			return *m, true
		}
	}
	return component.Material{}, false
}
