package layer

import (
	"github.com/milk9111/shroomydoomy/ecs"
	"github.com/milk9111/shroomydoomy/ecs/component"
	"github.com/milk9111/shroomydoomy/render"
)

// Environment draws level terrain. Tiles stay invisible until the level
// activates them.
type Environment struct {
	*Base
}

func NewEnvironment(ctx *Context) *Environment {
	l := &Environment{Base: newBase(ctx, Options{
		Name:    NameEnvironment,
		Filter:  ByCategory(component.CategoryEnvironment),
		Visible: true,
	})}
	l.draw = func(e ecs.Entity) { l.drawSpriteWith(e, l.activeTile) }
	return l
}

func (l *Environment) activeTile(e ecs.Entity, _ *render.Quad) bool {
	tile, ok := ecs.Get(l.ctx.World, e, component.TileComponent.Kind())
	return !ok || tile.Active
}
