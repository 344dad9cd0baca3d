package engine

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/milk9111/shroomydoomy/ecs"
	"github.com/milk9111/shroomydoomy/ecs/component"
	"github.com/milk9111/shroomydoomy/ecs/entity"
	"github.com/milk9111/shroomydoomy/layer"
)

func savedScale(t *testing.T, doc entity.Document, typ string) float64 {
	t.Helper()
	for _, rec := range doc.Objects {
		if rec.Type != typ {
			continue
		}
		var tr struct {
			ScaleX float64 `json:"scale_x"`
		}
		if err := json.Unmarshal(rec.Components["transform"], &tr); err != nil {
			t.Fatalf("decode transform of %s: %v", typ, err)
		}
		return tr.ScaleX
	}
	t.Fatalf("%s not saved", typ)
	return 0
}

func TestSaveObjectsRestoresHiddenLayers(t *testing.T) {
	e, _ := newTestEngine(t, Tutorial, false, nil)
	step(t, e)

	panel, ok := e.Factory().FindByType("Story_Panel_1")
	if !ok {
		t.Fatalf("story panel missing")
	}
	tr, _ := ecs.Get(e.World(), panel, component.TransformComponent.Kind())
	if tr.ScaleX != 0 {
		t.Fatalf("hidden story panel should be collapsed before saving")
	}

	var buf bytes.Buffer
	if err := e.SaveObjects(&buf, ""); err != nil {
		t.Fatalf("save: %v", err)
	}
	var doc entity.Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("decode saved document: %v", err)
	}
	if got := savedScale(t, doc, "Story_Panel_1"); got == 0 {
		t.Fatalf("saved a collapsed scale for a hidden layer member")
	}
	for _, rec := range doc.Objects {
		if rec.Level != "" {
			t.Fatalf("level object %s saved with the shared objects", rec.Type)
		}
	}
	if tr.ScaleX != 0 {
		t.Fatalf("hidden layer members should be collapsed again after saving")
	}

	buf.Reset()
	if err := e.SaveObjects(&buf, Tutorial.Prefix()); err != nil {
		t.Fatalf("save level: %v", err)
	}
	doc = entity.Document{}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("decode saved level: %v", err)
	}
	if savedScale(t, doc, "Tutorial_Game_Mushroom") == 0 {
		t.Fatalf("mushroom saved collapsed")
	}
}

func pausedEngine(t *testing.T) (*Engine, ecs.Entity, component.Transform) {
	t.Helper()
	e, _ := newTestEngine(t, Tutorial, true, nil)
	step(t, e)
	mushroom, ok := e.Factory().FindByType("Tutorial_Game_Mushroom")
	if !ok {
		t.Fatalf("mushroom missing")
	}
	tr, _ := ecs.Get(e.World(), mushroom, component.TransformComponent.Kind())
	tr.ScaleX, tr.ScaleY = 2, 1.5
	authored := *tr

	e.Dispatch(layer.ActionTogglePause)
	step(t, e)
	if e.Mode() != ModePaused {
		t.Fatalf("mode = %v, want paused", e.Mode())
	}
	if !tr.Hidden() {
		t.Fatalf("paused mushroom should be collapsed: %+v", *tr)
	}
	return e, mushroom, authored
}

func TestSaveObjectsWhilePaused(t *testing.T) {
	e, mushroom, authored := pausedEngine(t)

	var buf bytes.Buffer
	if err := e.SaveObjects(&buf, Tutorial.Prefix()); err != nil {
		t.Fatalf("save: %v", err)
	}
	var doc entity.Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("decode saved level: %v", err)
	}
	if got := savedScale(t, doc, "Tutorial_Game_Mushroom"); got != authored.ScaleX {
		t.Fatalf("saved scale_x = %v, want %v", got, authored.ScaleX)
	}

	tr, _ := ecs.Get(e.World(), mushroom, component.TransformComponent.Kind())
	if !tr.Hidden() {
		t.Fatalf("paused members should be collapsed again after saving: %+v", *tr)
	}

	e.Dispatch(layer.ActionTogglePause)
	step(t, e)
	if tr.ScaleX != authored.ScaleX || tr.ScaleY != authored.ScaleY {
		t.Fatalf("resumed at %v,%v want %v,%v", tr.ScaleX, tr.ScaleY, authored.ScaleX, authored.ScaleY)
	}
}

func TestDuplicateWhilePaused(t *testing.T) {
	e, mushroom, authored := pausedEngine(t)

	rec, err := e.CopyObject(mushroom)
	if err != nil {
		t.Fatalf("copy: %v", err)
	}
	var copied struct {
		ScaleX float64 `json:"scale_x"`
	}
	if err := json.Unmarshal(rec.Components["transform"], &copied); err != nil {
		t.Fatalf("decode copied transform: %v", err)
	}
	if copied.ScaleX != authored.ScaleX {
		t.Fatalf("copied scale_x = %v, want %v", copied.ScaleX, authored.ScaleX)
	}

	dup, err := e.DuplicateObject(mushroom)
	if err != nil {
		t.Fatalf("duplicate: %v", err)
	}
	if tr, _ := ecs.Get(e.World(), mushroom, component.TransformComponent.Kind()); !tr.Hidden() {
		t.Fatalf("source should stay collapsed after duplicating: %+v", *tr)
	}
	step(t, e)
	tr, _ := ecs.Get(e.World(), dup, component.TransformComponent.Kind())
	if !tr.Hidden() {
		t.Fatalf("duplicate made while paused is drawn over the pause menu: %+v", *tr)
	}

	e.Dispatch(layer.ActionTogglePause)
	step(t, e)
	if tr.ScaleX != authored.ScaleX || tr.ScaleY != authored.ScaleY {
		t.Fatalf("duplicate resumed at %v,%v want %v,%v", tr.ScaleX, tr.ScaleY, authored.ScaleX, authored.ScaleY)
	}
}

func TestMoveObject(t *testing.T) {
	e, _ := newTestEngine(t, Tutorial, true, nil)
	l, _ := e.Stack().Find(layer.NameGame)
	members := *l.ObjectContainer()
	if len(members) < 2 {
		t.Fatalf("need at least two game objects, got %d", len(members))
	}
	first, second := members[0], members[1]

	tests := []struct {
		name  string
		layer string
		index int
		delta int
		moved bool
		err   bool
	}{
		{"down", layer.NameGame, 0, 1, true, false},
		{"past_start", layer.NameGame, 0, -1, false, false},
		{"past_end", layer.NameGame, len(members) - 1, 1, false, false},
		{"no_op", layer.NameGame, 0, 0, false, false},
		{"unknown_layer", "Nope", 0, 1, false, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			moved, err := e.MoveObject(tc.layer, tc.index, tc.delta)
			if (err != nil) != tc.err {
				t.Fatalf("err = %v", err)
			}
			if moved != tc.moved {
				t.Fatalf("moved = %v, want %v", moved, tc.moved)
			}
		})
	}

	got := *l.ObjectContainer()
	if got[0] != second || got[1] != first {
		t.Fatalf("members not swapped: %v", got[:2])
	}
}
