package layer

import (
	"github.com/milk9111/shroomydoomy/ecs"
	"github.com/milk9111/shroomydoomy/ecs/component"
	"github.com/milk9111/shroomydoomy/input"
)

// UI draws the in-level HUD and its buttons.
type UI struct {
	*Base
}

func NewUI(ctx *Context) *UI {
	l := &UI{Base: newBase(ctx, Options{
		Name:    NameUI,
		Filter:  ByCategory(component.CategoryUI),
		Visible: true,
	})}
	l.draw = func(e ecs.Entity) { l.drawSpriteWith(e, l.tintHovered) }
	return l
}

func (l *UI) HandleInput(ev input.Event) bool {
	return l.handleButtons(ev)
}
