package layer

import (
	"fmt"

	"github.com/milk9111/shroomydoomy/ecs/component"
	"github.com/milk9111/shroomydoomy/input"
	"github.com/milk9111/shroomydoomy/render"
)

const fpsSampleSeconds = 0.5

// FPS shows the measured frame rate. F3 toggles it.
type FPS struct {
	*Base
	elapsed float64
	frames  int
	fps     float64
}

func NewFPS(ctx *Context) *FPS {
	ctx = ctx.withDefaults()
	return &FPS{Base: newBase(ctx, Options{
		Name:    NameFPS,
		Visible: ctx.ShowFPS,
	})}
}

func (l *FPS) OnUpdate(dt float64) {
	l.updateVisibility()
	l.elapsed += dt
	l.frames++
	if l.elapsed >= fpsSampleSeconds {
		l.fps = float64(l.frames) / l.elapsed
		l.elapsed, l.frames = 0, 0
	}
}

func (l *FPS) FPS() float64 {
	return l.fps
}

func (l *FPS) OnRender() {
	if !l.visible {
		return
	}
	r := l.ctx.Renderer
	r.BeginBatch()
	r.RenderText(render.Text{
		X:     8,
		Y:     16,
		Scale: 1,
		Text:  fmt.Sprintf("FPS: %.0f", l.fps),
		Face:  "small",
		Color: render.WithAlpha(component.White, l.opacity),
	})
	r.EndBatch()
	r.Flush()
}

func (l *FPS) HandleInput(ev input.Event) bool {
	if ev.IsKeyPress(input.KeyF3) {
		l.SetVisible(!l.visible)
		return true
	}
	return false
}
