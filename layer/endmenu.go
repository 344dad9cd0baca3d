package layer

import (
	"github.com/milk9111/shroomydoomy/ecs"
	"github.com/milk9111/shroomydoomy/ecs/component"
	"github.com/milk9111/shroomydoomy/input"
)

// EndMenu fades in over the finished game.
type EndMenu struct {
	*Base
	fade fader
}

func NewEndMenu(ctx *Context) *EndMenu {
	l := &EndMenu{Base: newBase(ctx, Options{
		Name:   NameEndMenu,
		Filter: ByCategory(component.CategoryEndMenu),
	})}
	l.draw = func(e ecs.Entity) { l.drawSpriteWith(e, l.tintHovered) }
	return l
}

func (l *EndMenu) OnUpdate(dt float64) {
	hidden, shown := l.updateVisibility()
	switch {
	case shown:
		l.SetOpacity(0)
		l.fade.start(0, 1, l.ctx.Timings.EndMenuFade)
	case hidden:
		l.fade.stop()
	}
	if l.visible && l.fade.active() {
		v, _ := l.fade.update(dt)
		l.SetOpacity(v)
	}
}

func (l *EndMenu) HandleInput(ev input.Event) bool {
	if !l.visible {
		return false
	}
	if ev.IsKeyPress(input.KeyEnter) {
		l.ctx.Audio.PlaySound(SoundClick)
		l.ctx.Actions.Dispatch(ActionRestart)
		return true
	}
	l.handleButtons(ev)
	return true
}
