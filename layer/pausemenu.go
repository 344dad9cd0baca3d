package layer

import (
	"github.com/milk9111/shroomydoomy/ecs"
	"github.com/milk9111/shroomydoomy/ecs/component"
	"github.com/milk9111/shroomydoomy/input"
)

// PauseMenu listens for Escape on every frame and dispatches
// ActionTogglePause; whether the game may pause is up to the receiver.
// While visible it is modal.
type PauseMenu struct {
	*Base
}

func NewPauseMenu(ctx *Context) *PauseMenu {
	l := &PauseMenu{Base: newBase(ctx, Options{
		Name:   NamePauseMenu,
		Filter: ByCategory(component.CategoryPauseMenu),
	})}
	l.draw = func(e ecs.Entity) { l.drawSpriteWith(e, l.tintHovered) }
	return l
}

func (l *PauseMenu) HandleInput(ev input.Event) bool {
	if ev.IsKeyPress(input.KeyEscape) {
		l.ctx.Actions.Dispatch(ActionTogglePause)
		return true
	}
	if !l.visible {
		return false
	}
	l.handleButtons(ev)
	return true
}
