package main

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/shroomydoomy/config"
	"github.com/milk9111/shroomydoomy/ecs"
	"github.com/milk9111/shroomydoomy/ecs/component"
	"github.com/milk9111/shroomydoomy/engine"
	"github.com/milk9111/shroomydoomy/input"
	"github.com/milk9111/shroomydoomy/layer"
	"github.com/milk9111/shroomydoomy/levels"
	"github.com/milk9111/shroomydoomy/prefabs"
	"github.com/milk9111/shroomydoomy/render/screen"
	"go.uber.org/zap"
)

// saveEcho is how long watcher events for a file the editor just wrote are
// ignored.
const saveEcho = 500 * time.Millisecond

// duplicateOffset keeps a duplicate from hiding exactly under its source.
const duplicateOffset = 16

// EditorGame runs the engine with an editing panel on top.
type EditorGame struct {
	engine   *engine.Engine
	renderer *screen.Renderer
	source   *levels.Source
	watcher  *prefabs.Watcher
	clip     *Clipboard
	cfg      *config.Config
	log      *zap.Logger

	ui      *EditorUI
	input   *input.Poller
	lastSig string
	written map[string]time.Time
}

func NewEditorGame(eng *engine.Engine, renderer *screen.Renderer, source *levels.Source, watcher *prefabs.Watcher, clip *Clipboard, cfg *config.Config, log *zap.Logger) *EditorGame {
	g := &EditorGame{
		engine:   eng,
		renderer: renderer,
		source:   source,
		watcher:  watcher,
		clip:     clip,
		cfg:      cfg,
		log:      log,
		input:    input.NewPoller(),
		written:  map[string]time.Time{},
	}

	layers := NewLayerPanel()
	layers.selected = layer.NameGame
	layers.onSelect = func(string) {
		g.ui.Objects.Select(-1)
		g.refresh(true)
	}
	layers.onToggle = g.toggleLayer

	objects := NewObjectPanel()
	objects.onMove = g.moveObject
	objects.onDuplicate = g.duplicate
	objects.onDelete = g.delete
	objects.onCopy = g.copy

	g.ui = BuildEditorUI(layers, objects, EditorActions{
		Paste:  g.paste,
		Save:   g.save,
		Reload: g.reload,
		Pause:  func() { g.engine.Dispatch(layer.ActionTogglePause) },
	})
	g.refresh(true)
	return g
}

func (g *EditorGame) Update() error {
	g.ui.UI.Update()
	g.applyFileChanges()

	var events []input.Event
	for _, ev := range g.input.Poll() {
		// The panel owns the mouse while the cursor is over it.
		if ev.Kind != input.KeyPressed && ev.Kind != input.KeyReleased && ev.X < panelWidth {
			continue
		}
		events = append(events, ev)
	}

	err := g.engine.Update(1.0/float64(ebiten.TPS()), events)
	if errors.Is(err, engine.ErrQuit) {
		return ebiten.Termination
	}
	g.refresh(false)
	return err
}

func (g *EditorGame) Draw(screenImg *ebiten.Image) {
	g.renderer.SetTarget(screenImg)
	g.engine.Draw()
	if g.cfg.Debug.Physics {
		ps := g.engine.Physics()
		screen.DrawPhysicsDebug(ps.Space(), ps.Bodies(), screenImg)
	}
	g.ui.UI.Draw(screenImg)
}

func (g *EditorGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func (g *EditorGame) status(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	g.ui.SetStatus(msg)
	g.log.Info(msg)
}

func (g *EditorGame) applyFileChanges() {
	if g.watcher == nil {
		return
	}
	for _, path := range g.watcher.Drain() {
		if at, ok := g.written[path]; ok && time.Since(at) < saveEcho {
			continue
		}
		if err := g.engine.HotReload(path); err != nil {
			g.log.Warn("hot reload", zap.String("path", path), zap.Error(err))
			g.status("reload %s failed", path)
			continue
		}
		g.status("reloaded %s", path)
		g.refresh(true)
	}
}

// refresh repopulates the lists when the stack or the selected layer
// changed since the last call.
func (g *EditorGame) refresh(force bool) {
	stack := g.engine.Stack()
	layers := make([]LayerEntry, 0, stack.Len())
	var members []ecs.Entity
	for i, l := range stack.Layers() {
		layers = append(layers, LayerEntry{Index: i, Name: l.Name(), Visible: l.IsVisible(), Members: len(*l.ObjectContainer())})
		if l.Name() == g.ui.Layers.Selected() {
			members = *l.ObjectContainer()
		}
	}

	sig := fmt.Sprint(layers, members)
	if !force && sig == g.lastSig {
		return
	}
	g.lastSig = sig

	objects := make([]ObjectEntry, 0, len(members))
	for i, e := range members {
		objects = append(objects, ObjectEntry{Index: i, Entity: e, Type: g.engine.Factory().GetEntityType(e)})
	}
	g.ui.Layers.SetLayers(layers)
	g.ui.Objects.SetObjects(objects)
}

func (g *EditorGame) toggleLayer(name string) {
	l, ok := g.engine.Stack().Find(name)
	if !ok {
		return
	}
	l.SetVisible(!l.IsVisible())
	g.status("%s visible: %v", name, l.IsVisible())
}

func (g *EditorGame) moveObject(index, delta int) {
	moved, err := g.engine.MoveObject(g.ui.Layers.Selected(), index, delta)
	if err != nil {
		g.status("move: %v", err)
		return
	}
	if moved {
		g.ui.Objects.Select(index + delta)
		g.refresh(true)
	}
}

func (g *EditorGame) duplicate(src ecs.Entity) {
	e, err := g.engine.DuplicateObject(src)
	if err != nil {
		g.status("duplicate: %v", err)
		return
	}
	if t, ok := ecs.Get(g.engine.World(), e, component.TransformComponent.Kind()); ok {
		t.X += duplicateOffset
		t.Y += duplicateOffset
	}
	g.status("duplicated %s", g.engine.Factory().GetEntityType(e))
}

func (g *EditorGame) delete(e ecs.Entity) {
	typ := g.engine.Factory().GetEntityType(e)
	if g.engine.Factory().DestroyGameObject(e) {
		g.status("deleted %s", typ)
	}
}

func (g *EditorGame) copy(e ecs.Entity) {
	rec, err := g.engine.CopyObject(e)
	if err != nil {
		g.status("copy: %v", err)
		return
	}
	if err := g.clip.Put(rec); err != nil {
		g.status("copy: %v", err)
		return
	}
	g.status("copied %s", rec.Type)
}

func (g *EditorGame) paste() {
	rec, err := g.clip.Get()
	if err != nil {
		g.status("paste: %v", err)
		return
	}
	e, err := g.engine.Factory().SpawnRecord(rec)
	if err != nil {
		g.status("paste: %v", err)
		return
	}
	g.status("pasted %s", g.engine.Factory().GetEntityType(e))
}

// save writes the current level and the shared objects back to the level
// directory.
func (g *EditorGame) save() {
	lvl := g.engine.Levels().GetCurrLevel()
	files := []struct {
		name   string
		prefix string
	}{
		{lvl.DataFile(), lvl.Prefix()},
		{levels.CommonFile, ""},
	}
	for _, f := range files {
		var buf bytes.Buffer
		if err := g.engine.SaveObjects(&buf, f.prefix); err != nil {
			g.status("save %s: %v", f.name, err)
			return
		}
		if err := g.source.Write(f.name, buf.Bytes()); err != nil {
			g.status("save %s: %v", f.name, err)
			return
		}
		g.written[g.source.Path(f.name)] = time.Now()
	}
	g.status("saved %s", lvl)
}

func (g *EditorGame) reload() {
	lvl := g.engine.Levels().GetCurrLevel()
	if err := g.engine.HotReload(lvl.DataFile()); err != nil {
		g.status("reload %s: %v", lvl, err)
		return
	}
	g.status("reloaded %s", lvl)
	g.refresh(true)
}
