package script

import (
	"errors"
	"testing"

	"github.com/milk9111/shroomydoomy/ecs"
	"github.com/milk9111/shroomydoomy/ecs/component"
	"github.com/milk9111/shroomydoomy/prefabs"
)

const counterScript = `
init := func(self, state) {
	state.calls = 0
	self.x = 100.0
}

update := func(self, state, dt) {
	state.calls = state.calls + 1
	self.x = self.x + dt
}

end := func(self, state) {
	self.y = -1.0
}
`

func sources(m map[string]string) SourceFunc {
	return func(behavior string) ([]byte, error) {
		src, ok := m[behavior]
		if !ok {
			return nil, errors.New("no such behaviour")
		}
		return []byte(src), nil
	}
}

func newScripted(t *testing.T, w *ecs.World, behavior string, active bool) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.ScriptComponent.Kind(), &component.Script{Behavior: behavior, Active: active}); err != nil {
		t.Fatal(err)
	}
	return e
}

func TestRuntimeLifecycle(t *testing.T) {
	w := ecs.NewWorld()
	active := newScripted(t, w, "counter", true)
	inactive := newScripted(t, w, "counter", false)

	rt := NewRuntime(w, sources(map[string]string{"counter": counterScript}), nil)
	rt.InitializeBehaviorComponents()
	rt.Init()

	at := ecs.MustGet(w, active, component.TransformComponent.Kind())
	if at.X != 100 {
		t.Fatalf("init should set x=100, got %v", at.X)
	}
	it := ecs.MustGet(w, inactive, component.TransformComponent.Kind())
	if it.X != 0 {
		t.Fatalf("inactive script must not run, got x=%v", it.X)
	}

	rt.Update(0.5)
	rt.Update(0.5)
	if at.X != 101 {
		t.Fatalf("expected x=101 after two updates, got %v", at.X)
	}

	rt.End()
	if at.Y != -1 {
		t.Fatalf("end should run for initialized scripts, got y=%v", at.Y)
	}
	s := ecs.MustGet(w, active, component.ScriptComponent.Kind())
	if s.Instance != nil {
		t.Fatalf("End should unbind instances")
	}

	rt.Update(1)
	if at.X != 101 {
		t.Fatalf("unbound scripts must not update")
	}
}

func TestRuntimeLateActivation(t *testing.T) {
	w := ecs.NewWorld()
	e := newScripted(t, w, "counter", false)
	rt := NewRuntime(w, sources(map[string]string{"counter": counterScript}), nil)
	rt.InitializeBehaviorComponents()
	rt.Init()

	ecs.MustGet(w, e, component.ScriptComponent.Kind()).Active = true
	rt.Update(1)
	if got := ecs.MustGet(w, e, component.TransformComponent.Kind()).X; got != 101 {
		t.Fatalf("late activation should init then update, got x=%v", got)
	}
}

func TestRuntimeBadBehaviour(t *testing.T) {
	w := ecs.NewWorld()
	missing := newScripted(t, w, "missing", true)
	broken := newScripted(t, w, "broken", true)
	rt := NewRuntime(w, sources(map[string]string{"broken": "init := func("}), nil)
	rt.InitializeBehaviorComponents()
	rt.Init()
	rt.Update(1)

	for _, e := range []ecs.Entity{missing, broken} {
		if ecs.MustGet(w, e, component.ScriptComponent.Kind()).Instance != nil {
			t.Fatalf("entity %s should stay unbound", e)
		}
	}
}

func TestShippedBehavioursCompile(t *testing.T) {
	w := ecs.NewWorld()
	ents := []ecs.Entity{
		newScripted(t, w, "bob", true),
		newScripted(t, w, "spin", true),
		newScripted(t, w, "player", true),
	}
	rt := NewRuntime(w, prefabs.LoadScript, nil)
	rt.InitializeBehaviorComponents()
	for _, e := range ents {
		if ecs.MustGet(w, e, component.ScriptComponent.Kind()).Instance == nil {
			t.Fatalf("shipped behaviour for %s failed to compile", e)
		}
	}
	rt.Init()
	rt.Update(0.1)

	spin := ecs.MustGet(w, ents[1], component.TransformComponent.Kind())
	if spin.Rotation <= 0 {
		t.Fatalf("spin behaviour should rotate, got %v", spin.Rotation)
	}
	rt.End()
}
