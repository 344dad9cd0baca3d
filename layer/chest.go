package layer

import (
	"github.com/milk9111/shroomydoomy/ecs/component"
)

const SoundChest = "sfx_chest"

type chestPhase int

const (
	chestIdle chestPhase = iota
	chestFadeIn
	chestHold
	chestFadeOut
)

// ChestOverlay flashes a reward glow: it fades in, holds, fades out and
// then hides itself.
type ChestOverlay struct {
	*Base
	phase chestPhase
	timer float64
	fade  fader
}

func NewChestOverlay(ctx *Context) *ChestOverlay {
	return &ChestOverlay{Base: newBase(ctx, Options{
		Name:   NameChestOverlay,
		Filter: ByCategory(component.CategoryChestOverlay),
	})}
}

// Open starts the overlay. Opening while it plays restarts it.
func (l *ChestOverlay) Open() {
	if l.visible && l.phase != chestIdle {
		l.start()
		return
	}
	l.SetVisible(true)
}

func (l *ChestOverlay) Playing() bool {
	return l.phase != chestIdle
}

func (l *ChestOverlay) start() {
	l.ctx.Audio.PlaySound(SoundChest)
	l.phase = chestFadeIn
	l.timer = 0
	l.SetOpacity(0)
	l.fade.start(0, 1, l.ctx.Timings.ChestFade)
}

func (l *ChestOverlay) OnUpdate(dt float64) {
	if hidden, _ := l.updateVisibility(); hidden {
		l.phase = chestIdle
		l.fade.stop()
	}
	if !l.visible {
		return
	}
	if l.phase == chestIdle {
		l.start()
	}

	switch l.phase {
	case chestFadeIn:
		v, done := l.fade.update(dt)
		l.SetOpacity(v)
		if done {
			l.phase = chestHold
		}
	case chestHold:
		l.timer += dt
		if l.timer >= l.ctx.Timings.ChestHold {
			l.phase = chestFadeOut
			l.fade.start(1, 0, l.ctx.Timings.ChestFade)
		}
	case chestFadeOut:
		v, done := l.fade.update(dt)
		l.SetOpacity(v)
		if done {
			l.phase = chestIdle
			l.SetOpacity(1)
			l.SetVisible(false)
		}
	}
}
