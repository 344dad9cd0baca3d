package engine

import (
	"errors"
	"fmt"

	"github.com/milk9111/shroomydoomy/audio"
	"github.com/milk9111/shroomydoomy/ecs"
	"github.com/milk9111/shroomydoomy/ecs/component"
	"github.com/milk9111/shroomydoomy/ecs/entity"
	"github.com/milk9111/shroomydoomy/ecs/event"
	"github.com/milk9111/shroomydoomy/layer"
	"github.com/milk9111/shroomydoomy/levels"
	"github.com/milk9111/shroomydoomy/render"
	"go.uber.org/zap"
)

// Scripts is the behaviour subsystem restarted around a level change.
type Scripts interface {
	End()
	InitializeBehaviorComponents()
	Init()
}

// Animations is rebound after a level change.
type Animations interface {
	Reload(defs *render.AnimationDefs)
}

// crossCutting layers are forced visible before the stack is rebuilt and
// hidden again once the new level is up.
var crossCutting = []string{
	layer.NamePauseMenu,
	layer.NameMainMenu,
	layer.NameStory,
	layer.NameChestOverlay,
}

// gameplay layers get their scripts and tiles activated and are shown after
// the rebuild.
var gameplay = []string{
	layer.NameGame,
	layer.NameBackground,
	layer.NameFont,
	layer.NameEnvironment,
	layer.NamePauseMenu,
	layer.NameUI,
}

// TransitionReport summarizes one level change. Err joins every step that
// failed; a failing step does not stop the ones after it.
type TransitionReport struct {
	From, To  Level
	Destroyed int
	Loaded    int
	Err       error
}

type ManagerDeps struct {
	Factory    *entity.Factory
	Data       entity.DataReader
	Stack      *layer.Stack
	Build      func(*layer.Stack)
	Scripts    Scripts
	Animations Animations
	Audio      audio.Player
	Log        *zap.Logger
	// FadeSeconds is the music cross-fade on a level change.
	FadeSeconds float64
}

// LevelManager swaps the level-scoped objects of one level for another and
// rebuilds the layer stack around them.
type LevelManager struct {
	factory *entity.Factory
	data    entity.DataReader
	stack   *layer.Stack
	build   func(*layer.Stack)
	scripts Scripts
	anims   Animations
	audio   audio.Player
	log     *zap.Logger
	fade    float64

	curr     Level
	animDefs *render.AnimationDefs
}

func NewLevelManager(deps ManagerDeps, start Level) *LevelManager {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if deps.Audio == nil {
		deps.Audio = audio.Nop{}
	}
	return &LevelManager{
		factory: deps.Factory,
		data:    deps.Data,
		stack:   deps.Stack,
		build:   deps.Build,
		scripts: deps.Scripts,
		anims:   deps.Animations,
		audio:   deps.Audio,
		log:     deps.Log,
		fade:    deps.FadeSeconds,
		curr:    start,
	}
}

func (m *LevelManager) GetCurrLevel() Level {
	return m.curr
}

func (m *LevelManager) TutorialToLevel1() TransitionReport { return m.run(Tutorial, Level1, true) }
func (m *LevelManager) Level1ToLevel2() TransitionReport   { return m.run(Level1, Level2, true) }
func (m *LevelManager) Level1ToTutorial() TransitionReport { return m.run(Level1, Tutorial, true) }
func (m *LevelManager) Level2ToLevel1() TransitionReport   { return m.run(Level2, Level1, true) }
func (m *LevelManager) Level2ToTutorial() TransitionReport { return m.run(Level2, Tutorial, true) }
func (m *LevelManager) TutorialToLevel2() TransitionReport { return m.run(Tutorial, Level2, true) }

// Transition leaves the current level for to.
func (m *LevelManager) Transition(to Level) TransitionReport {
	return m.run(m.curr, to, true)
}

// ReloadCurrLevel replaces the current level's objects with fresh copies.
func (m *LevelManager) ReloadCurrLevel() TransitionReport {
	return m.run(m.curr, m.curr, true)
}

// Enter loads level without destroying anything first. It is used once at
// startup.
func (m *LevelManager) Enter(level Level) TransitionReport {
	return m.run(level, level, false)
}

func (m *LevelManager) run(from, to Level, destroy bool) TransitionReport {
	rep := TransitionReport{From: from, To: to}
	log := m.log.With(zap.Stringer("from", from), zap.Stringer("to", to))
	if from != m.curr && destroy {
		log.Warn("transition source is not the current level", zap.Stringer("current", m.curr))
	}
	var errs []error
	fail := func(step string, err error) {
		log.Warn("level transition step failed", zap.String("step", step), zap.Error(err))
		errs = append(errs, fmt.Errorf("%s: %w", step, err))
	}

	// Behaviours first so no script sees a half-destroyed level.
	if m.scripts != nil {
		m.scripts.End()
	}

	if destroy {
		rep.Destroyed = m.destroyLevel(from)
	}

	if blob, err := m.data.Read(to.DataFile()); err != nil {
		fail("read level", err)
	} else {
		ents, err := m.factory.LoadHelper(blob)
		rep.Loaded = len(ents)
		if err != nil {
			fail("load level", err)
		}
	}

	// Restore collapsed members so the rebuilt layers snapshot real scales.
	for _, name := range crossCutting {
		if l, ok := m.stack.Find(name); ok {
			l.SetVisible(true)
		}
	}
	for _, l := range m.stack.Layers() {
		l.ShowObjects()
	}

	m.stack.Reinitialize(m.build)

	w := m.factory.World()
	for _, name := range gameplay {
		l, ok := m.stack.Find(name)
		if !ok {
			fail("activate", fmt.Errorf("layer %s missing", name))
			continue
		}
		for _, e := range *l.ObjectContainer() {
			activate(w, e)
		}
		l.SetVisible(true)
	}

	// Animations before scripts; bindings refer to the new entities.
	if m.anims != nil {
		defs, err := m.loadAnimations()
		if err != nil {
			fail("load animations", err)
		}
		m.anims.Reload(defs)
	}

	if m.scripts != nil {
		m.scripts.InitializeBehaviorComponents()
		m.scripts.Init()
	}

	for _, name := range crossCutting {
		if l, ok := m.stack.Find(name); ok {
			l.SetVisible(false)
		}
	}

	m.curr = to

	m.audio.TransitionMusic(to.Track(), m.fade)
	m.factory.Events().Notify(event.LevelChange{From: int(from), To: int(to)})

	rep.Err = errors.Join(errs...)
	log.Info("level transition finished",
		zap.Int("destroyed", rep.Destroyed),
		zap.Int("loaded", rep.Loaded),
		zap.Bool("partial", rep.Err != nil),
	)
	return rep
}

// destroyLevel destroys every live object tagged with level.
func (m *LevelManager) destroyLevel(level Level) int {
	n := 0
	prefix := level.Prefix()
	for _, obj := range m.factory.GetAllGameObjects() {
		ot, ok := m.factory.GetObjectType(obj.Entity)
		if !ok || ot.Level != prefix {
			continue
		}
		if m.factory.DestroyGameObject(obj.Entity) {
			n++
		}
	}
	return n
}

// ReloadAnimations reads the animation definitions again and rebinds them.
// On failure the last good definitions stay bound.
func (m *LevelManager) ReloadAnimations() error {
	defs, err := m.loadAnimations()
	if m.anims != nil {
		m.anims.Reload(defs)
	}
	return err
}

func (m *LevelManager) loadAnimations() (*render.AnimationDefs, error) {
	blob, err := m.data.Read(levels.AnimationsFile)
	if err != nil {
		return m.animDefs, err
	}
	defs, err := render.ParseAnimations(blob)
	if err != nil {
		return m.animDefs, err
	}
	m.animDefs = defs
	return defs, nil
}

func activate(w *ecs.World, e ecs.Entity) {
	if s, ok := ecs.Get(w, e, component.ScriptComponent.Kind()); ok {
		s.Active = true
	}
	if t, ok := ecs.Get(w, e, component.TileComponent.Kind()); ok {
		t.Active = true
	}
}
