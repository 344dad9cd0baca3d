package layer

import (
	"github.com/milk9111/shroomydoomy/ecs"
	"github.com/milk9111/shroomydoomy/ecs/component"
	"github.com/milk9111/shroomydoomy/input"
)

// MainMenu is the title screen. While visible it swallows all input.
type MainMenu struct {
	*Base
}

func NewMainMenu(ctx *Context) *MainMenu {
	l := &MainMenu{Base: newBase(ctx, Options{
		Name:    NameMainMenu,
		Filter:  ByCategory(component.CategoryMainMenu),
		Visible: true,
	})}
	l.draw = func(e ecs.Entity) { l.drawSpriteWith(e, l.tintHovered) }
	return l
}

func (l *MainMenu) HandleInput(ev input.Event) bool {
	if !l.visible {
		return false
	}
	if ev.IsKeyPress(input.KeyEnter) {
		l.ctx.Audio.PlaySound(SoundClick)
		l.ctx.Actions.Dispatch(ActionPlay)
		return true
	}
	l.handleButtons(ev)
	return true
}
