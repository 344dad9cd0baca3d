package layer

import (
	"math"

	"github.com/milk9111/shroomydoomy/ecs"
	"github.com/milk9111/shroomydoomy/ecs/component"
	"github.com/milk9111/shroomydoomy/render"
)

// ParallaxSpeed is the scroll speed, in pixels per second, of the second
// background member. Each further member scrolls one step faster; the first
// stays put.
const ParallaxSpeed = 12.0

type Background struct {
	*Base
	scroll float64
}

func NewBackground(ctx *Context) *Background {
	l := &Background{Base: newBase(ctx, Options{
		Name:    NameBackground,
		Filter:  ByCategory(component.CategoryBackground),
		Visible: true,
	})}
	return l
}

func (l *Background) OnUpdate(dt float64) {
	l.updateVisibility()
	if !l.visible {
		return
	}
	l.scroll = math.Mod(l.scroll+dt*ParallaxSpeed, l.ctx.Width*16)
}

func (l *Background) OnRender() {
	if !l.visible {
		return
	}
	r := l.ctx.Renderer
	r.BeginBatch()
	for i, e := range l.members {
		depth := float64(i)
		l.drawSpriteWith(e, func(_ ecs.Entity, q *render.Quad) bool {
			q.X = wrap(q.X-l.scroll*depth, l.ctx.Width)
			return true
		})
	}
	r.EndBatch()
	r.Flush()
}

// wrap folds x into [0, width).
func wrap(x, width float64) float64 {
	if width <= 0 {
		return x
	}
	x = math.Mod(x, width)
	if x < 0 {
		x += width
	}
	return x
}
