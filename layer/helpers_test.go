package layer

import (
	"testing"

	"github.com/milk9111/shroomydoomy/audio"
	"github.com/milk9111/shroomydoomy/ecs"
	"github.com/milk9111/shroomydoomy/ecs/component"
	"github.com/milk9111/shroomydoomy/ecs/event"
	"github.com/milk9111/shroomydoomy/render"
	"go.uber.org/zap"
)

type recordingRenderer struct {
	render.Nop
	quads   []render.Quad
	texts   []render.Text
	batches int
	flushes int
}

func (r *recordingRenderer) BeginBatch()              { r.batches++ }
func (r *recordingRenderer) DrawQuad(q render.Quad)   { r.quads = append(r.quads, q) }
func (r *recordingRenderer) RenderText(t render.Text) { r.texts = append(r.texts, t) }
func (r *recordingRenderer) Flush()                   { r.flushes++ }

func (r *recordingRenderer) reset() {
	r.quads, r.texts = nil, nil
}

type recordingAudio struct {
	audio.Nop
	sounds []string
}

func (a *recordingAudio) PlaySound(key string) {
	a.sounds = append(a.sounds, key)
}

type fixture struct {
	ctx      *Context
	renderer *recordingRenderer
	audio    *recordingAudio
	actions  []string
}

func newFixture(t *testing.T, log *zap.Logger) *fixture {
	t.Helper()
	if log == nil {
		log = zap.NewNop()
	}
	f := &fixture{renderer: &recordingRenderer{}, audio: &recordingAudio{}}
	timings := Timings{StoryHold: 1, ChestHold: 0.5}
	f.ctx = &Context{
		World:    ecs.NewWorld(),
		Events:   event.NewSubject(log),
		Renderer: f.renderer,
		Audio:    f.audio,
		Actions:  ActionFunc(func(a string) { f.actions = append(f.actions, a) }),
		Log:      log,
		Timings:  &timings,
	}
	return f
}

// spawn creates a typed sprite at (10, 20) and announces it.
func (f *fixture) spawn(t *testing.T, name string, sx, sy float64) ecs.Entity {
	t.Helper()
	w := f.ctx.World
	e := ecs.CreateEntity(w)
	ot := component.ParseObjectType(name)
	must(t, ecs.Add(w, e, component.ObjectTypeComponent.Kind(), &ot))
	must(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: 10, Y: 20, ScaleX: sx, ScaleY: sy}))
	uvMin, uvMax := component.FullUV()
	must(t, ecs.Add(w, e, component.MaterialComponent.Kind(), &component.Material{
		Texture: "tex",
		UVMin:   uvMin,
		UVMax:   uvMax,
		Color:   component.White,
		Tint:    component.White,
	}))
	f.ctx.Events.Notify(event.Spawn{Entity: e})
	return e
}

func (f *fixture) destroy(e ecs.Entity) {
	f.ctx.Events.Notify(event.Delete{Entity: e})
	ecs.DestroyEntity(f.ctx.World, e)
}

func (f *fixture) transform(t *testing.T, e ecs.Entity) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(f.ctx.World, e, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no transform", e)
	}
	return tr
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
