package engine

import (
	"testing"

	"github.com/milk9111/shroomydoomy/ecs"
	"github.com/milk9111/shroomydoomy/ecs/component"
	"github.com/milk9111/shroomydoomy/layer"
)

func TestHotReload(t *testing.T) {
	tests := []struct {
		path     string
		replaced bool
	}{
		{"levels/tutorial.json", true},
		{"levels/level2.json", false},
		{"levels/animations.json", false},
		{"prefabs/scripts/bob.tengo", false},
		{"README.md", false},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			e, _ := newTestEngine(t, Tutorial, true, nil)
			step(t, e)
			before, ok := e.Factory().FindByType("Tutorial_Game_Mushroom")
			if !ok {
				t.Fatalf("mushroom missing")
			}

			if err := e.HotReload(tc.path); err != nil {
				t.Fatalf("hot reload: %v", err)
			}

			after, ok := e.Factory().FindByType("Tutorial_Game_Mushroom")
			if !ok {
				t.Fatalf("mushroom missing after reload")
			}
			if got := after != before; got != tc.replaced {
				t.Fatalf("replaced = %v, want %v", got, tc.replaced)
			}
			s, ok := ecs.Get(e.World(), after, component.ScriptComponent.Kind())
			if !ok || s.Instance == nil {
				t.Fatalf("mushroom script not bound after reload")
			}
		})
	}
}

func TestHotReloadCommonKeepsLevel(t *testing.T) {
	e, _ := newTestEngine(t, Tutorial, true, nil)
	play, _ := e.Factory().FindByType("MainMenu_Play")
	mushroom, _ := e.Factory().FindByType("Tutorial_Game_Mushroom")

	if err := e.HotReload("levels/common.json"); err != nil {
		t.Fatalf("hot reload: %v", err)
	}
	if ecs.IsAlive(e.World(), play) {
		t.Fatalf("common object not replaced")
	}
	if _, ok := e.Factory().FindByType("MainMenu_Play"); !ok {
		t.Fatalf("common object not reloaded")
	}
	if !ecs.IsAlive(e.World(), mushroom) {
		t.Fatalf("level object destroyed by a common reload")
	}
}

func TestHotReloadKeepsPause(t *testing.T) {
	e, _ := newTestEngine(t, Tutorial, true, nil)
	step(t, e)
	e.Dispatch(layer.ActionTogglePause)

	if err := e.HotReload("tutorial.json"); err != nil {
		t.Fatalf("hot reload: %v", err)
	}
	if e.Mode() != ModePaused || !visible(t, e, layer.NamePauseMenu) {
		t.Fatalf("pause lost across reload: mode=%v", e.Mode())
	}
	mushroom, _ := e.Factory().FindByType("Tutorial_Game_Mushroom")
	tr, _ := ecs.Get(e.World(), mushroom, component.TransformComponent.Kind())
	if tr.ScaleX != 0 {
		t.Fatalf("reloaded game objects should stay collapsed while paused")
	}

	e.Dispatch(layer.ActionTogglePause)
	if tr.ScaleX == 0 {
		t.Fatalf("resume should restore reloaded objects")
	}
}
