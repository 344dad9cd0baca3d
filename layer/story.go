package layer

import (
	"github.com/milk9111/shroomydoomy/ecs"
	"github.com/milk9111/shroomydoomy/ecs/component"
	"github.com/milk9111/shroomydoomy/input"
)

type storyPhase int

const (
	storyIdle storyPhase = iota
	storyFadeIn
	storyHold
	storyFadeOut
)

// Story plays its panels one at a time: each fades in, holds, and fades
// out. After the last panel the layer hides itself and dispatches
// ActionStoryDone. Enter, Space or a click skips to the next panel.
type Story struct {
	*Base
	phase storyPhase
	panel int
	timer float64
	fade  fader
}

func NewStory(ctx *Context) *Story {
	l := &Story{Base: newBase(ctx, Options{
		Name:   NameStory,
		Filter: ByCategory(component.CategoryStory),
	})}
	l.draw = l.drawPanel
	return l
}

func (l *Story) OnUpdate(dt float64) {
	if hidden, _ := l.updateVisibility(); hidden {
		l.phase = storyIdle
		l.fade.stop()
	}
	if !l.visible {
		return
	}
	if l.phase == storyIdle {
		l.begin()
	}

	timings := l.ctx.Timings
	switch l.phase {
	case storyFadeIn:
		v, done := l.fade.update(dt)
		l.SetOpacity(v)
		if done {
			l.phase = storyHold
			l.timer = 0
		}
	case storyHold:
		l.timer += dt
		if l.timer >= timings.StoryHold {
			l.phase = storyFadeOut
			l.fade.start(1, 0, timings.StoryFade)
		}
	case storyFadeOut:
		v, done := l.fade.update(dt)
		l.SetOpacity(v)
		if done {
			l.next()
		}
	}
}

// Panel is the index of the panel on screen.
func (l *Story) Panel() int {
	return l.panel
}

func (l *Story) begin() {
	l.panel = -1
	l.next()
}

func (l *Story) next() {
	l.panel++
	if l.panel >= len(l.members) {
		l.finish()
		return
	}
	l.phase = storyFadeIn
	l.timer = 0
	l.SetOpacity(0)
	l.fade.start(0, 1, l.ctx.Timings.StoryFade)
}

func (l *Story) finish() {
	l.phase = storyIdle
	l.fade.stop()
	l.SetOpacity(1)
	l.SetVisible(false)
	l.ctx.Actions.Dispatch(ActionStoryDone)
}

func (l *Story) drawPanel(e ecs.Entity) {
	if l.panel < 0 || l.panel >= len(l.members) || l.members[l.panel] != e {
		return
	}
	l.drawSprite(e)
}

func (l *Story) HandleInput(ev input.Event) bool {
	if !l.visible {
		return false
	}
	if l.phase != storyIdle && (ev.IsKeyPress(input.KeyEnter) || ev.IsKeyPress(input.KeySpace) || ev.IsClick()) {
		l.next()
	}
	return true
}
