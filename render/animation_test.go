package render

import (
	"testing"

	"github.com/milk9111/shroomydoomy/ecs"
	"github.com/milk9111/shroomydoomy/ecs/component"
)

type recordingRenderer struct {
	Nop
	quads []Quad
}

func (r *recordingRenderer) DrawQuad(q Quad) { r.quads = append(r.quads, q) }

const testClips = `{"clips": {
	"walk": {"texture": "sheet", "fps": 10, "loop": true, "frames": [
		{"uv_min": {"u": 0, "v": 0}, "uv_max": {"u": 0.5, "v": 1}},
		{"uv_min": {"u": 0.5, "v": 0}, "uv_max": {"u": 1, "v": 1}}
	]},
	"open": {"texture": "chest", "fps": 10, "loop": false, "frames": [
		{"uv_min": {"u": 0, "v": 0}, "uv_max": {"u": 0.5, "v": 1}},
		{"uv_min": {"u": 0.5, "v": 0}, "uv_max": {"u": 1, "v": 1}}
	]}
}}`

func newAnimated(t *testing.T, w *ecs.World, clip string, playing bool) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: 1, Y: 2, ScaleX: 1, ScaleY: 1}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{Clip: clip, Playing: playing}); err != nil {
		t.Fatal(err)
	}
	return e
}

func TestParseAnimations(t *testing.T) {
	tests := []struct {
		name    string
		blob    string
		wantErr bool
	}{
		{"valid", testClips, false},
		{"no_frames", `{"clips": {"x": {"texture": "t", "fps": 1, "frames": []}}}`, true},
		{"zero_fps", `{"clips": {"x": {"texture": "t", "fps": 0, "frames": [{}]}}}`, true},
		{"bad_json", `{`, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseAnimations([]byte(tc.blob))
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseAnimations err=%v wantErr=%v", err, tc.wantErr)
			}
		})
	}
}

func TestAnimationContainerClaims(t *testing.T) {
	w := ecs.NewWorld()
	playing := newAnimated(t, w, "walk", true)
	stopped := newAnimated(t, w, "walk", false)
	unknown := newAnimated(t, w, "missing", true)

	defs, err := ParseAnimations([]byte(testClips))
	if err != nil {
		t.Fatal(err)
	}
	c := NewAnimationContainer(w, nil)
	c.Reload(defs)

	if !c.Claims(playing) {
		t.Fatalf("expected playing entity to be claimed")
	}
	if c.Claims(stopped) || c.Claims(unknown) {
		t.Fatalf("only playing entities with known clips are claimed")
	}

	ecs.DestroyEntity(w, playing)
	c.Update(0.01)
	if c.Claims(playing) {
		t.Fatalf("destroyed entity should be released on update")
	}
}

func TestAnimationContainerAdvance(t *testing.T) {
	w := ecs.NewWorld()
	loop := newAnimated(t, w, "walk", true)
	once := newAnimated(t, w, "open", true)

	defs, _ := ParseAnimations([]byte(testClips))
	c := NewAnimationContainer(w, nil)
	c.Reload(defs)

	c.Update(0.25)
	la := ecs.MustGet(w, loop, component.AnimationComponent.Kind())
	if la.Frame != 0 && la.Frame != 1 {
		t.Fatalf("looping frame out of range: %d", la.Frame)
	}
	if !la.Playing {
		t.Fatalf("looping animation should keep playing")
	}

	oa := ecs.MustGet(w, once, component.AnimationComponent.Kind())
	if oa.Frame != 1 || oa.Playing {
		t.Fatalf("one-shot should stop on its last frame, got frame=%d playing=%v", oa.Frame, oa.Playing)
	}

	r := &recordingRenderer{}
	c.Draw(r, once, 0.5)
	if len(r.quads) != 1 {
		t.Fatalf("expected one quad, got %d", len(r.quads))
	}
	q := r.quads[0]
	if q.Texture != "chest" || q.UVMin.U != 0.5 || q.Color.A != 0.5 {
		t.Fatalf("unexpected quad %+v", q)
	}
}
