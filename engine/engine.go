// Package engine wires the registry, event bus, layer stack and level state
// machine into a frame-driven game loop that does not depend on a graphics
// backend.
package engine

import (
	"errors"
	"fmt"

	"github.com/milk9111/shroomydoomy/audio"
	"github.com/milk9111/shroomydoomy/config"
	"github.com/milk9111/shroomydoomy/ecs"
	"github.com/milk9111/shroomydoomy/ecs/entity"
	"github.com/milk9111/shroomydoomy/ecs/event"
	"github.com/milk9111/shroomydoomy/ecs/system"
	"github.com/milk9111/shroomydoomy/input"
	"github.com/milk9111/shroomydoomy/layer"
	"github.com/milk9111/shroomydoomy/levels"
	"github.com/milk9111/shroomydoomy/prefabs"
	"github.com/milk9111/shroomydoomy/render"
	"github.com/milk9111/shroomydoomy/script"
	"go.uber.org/zap"
)

// ErrQuit is returned by Update once the player asked to quit.
var ErrQuit = errors.New("engine: quit requested")

// Music keys outside the levels.
const (
	TrackMenu = "music_menu"
	TrackEnd  = "music_end"
)

type Mode int

const (
	ModeMenu Mode = iota
	ModeStory
	ModePlaying
	ModePaused
	ModeEnd
)

var modeNames = [...]string{"menu", "story", "playing", "paused", "end"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// pausedLayers are collapsed while the pause menu is up.
var pausedLayers = []string{
	layer.NameEnvironment,
	layer.NameGame,
	layer.NameUI,
	layer.NameFont,
}

type Options struct {
	Config   *config.Config
	Log      *zap.Logger
	Renderer render.Renderer
	Audio    audio.Player
	// Data defaults to the level source configured in Config.
	Data entity.DataReader
	// Scripts defaults to the shipped behaviour scripts.
	Scripts script.SourceFunc
	Start   Level
	// SkipMenu starts in the level instead of the title screen.
	SkipMenu bool
}

type pendingTransition struct {
	to   Level
	then Mode
}

// Engine owns every subsystem of a running game.
type Engine struct {
	cfg *config.Config
	log *zap.Logger

	world    *ecs.World
	events   *event.Subject
	factory  *entity.Factory
	data     entity.DataReader
	anims    *render.AnimationContainer
	scripts  *script.Runtime
	physics  *system.PhysicsSystem
	tiles    *system.TileOccupancySystem
	systems  *ecs.Scheduler
	audio    audio.Player
	ctx      *layer.Context
	stack    *layer.Stack
	build    func(*layer.Stack)
	levels   *LevelManager
	observer *event.Observer

	mode    Mode
	pending *pendingTransition
	quit    bool
	// start is where a restart from the end screen begins.
	start     Level
	storyNext Level
}

func New(opts Options) (*Engine, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Renderer == nil {
		opts.Renderer = render.Nop{}
	}
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Data == nil {
		opts.Data = levels.NewSource(cfg.Levels.Dir)
	}
	if opts.Scripts == nil {
		opts.Scripts = prefabs.LoadScript
	}

	storyNext := opts.Start
	if cfg.Levels.StoryNext != "" {
		lvl, err := ParseLevel(cfg.Levels.StoryNext)
		if err != nil {
			return nil, fmt.Errorf("story_next: %w", err)
		}
		storyNext = lvl
	}

	e := &Engine{
		cfg:       cfg,
		log:       log,
		world:     ecs.NewWorld(),
		data:      opts.Data,
		audio:     opts.Audio,
		stack:     layer.NewStack(),
		start:     opts.Start,
		storyNext: storyNext,
	}
	e.events = event.NewSubject(log.Named("events"))
	e.factory = entity.NewFactory(e.world, e.events, e.data, log.Named("factory"))
	e.anims = render.NewAnimationContainer(e.world, log.Named("animation"))
	e.scripts = script.NewRuntime(e.world, opts.Scripts, log.Named("script"))

	e.physics = system.NewPhysicsSystem(e.world, system.DefaultGravity, log.Named("physics"))
	e.physics.Attach(e.events)
	e.tiles = system.NewTileOccupancySystem(e.world)
	e.tiles.Attach(e.events)
	e.systems = ecs.NewScheduler(
		ecs.SystemFunc(func(_ *ecs.World, dt float64) { e.scripts.Update(dt) }),
		e.physics,
		e.tiles,
		system.NewAnimationSystem(e.anims),
	)

	e.observer = event.NewObserver("engine")
	e.observer.Handle(event.LevelChanged, func(msg event.Message) {
		if lc, ok := msg.(event.LevelChange); ok {
			e.log.Debug("level changed", zap.Stringer("from", Level(lc.From)), zap.Stringer("to", Level(lc.To)))
		}
	})
	e.events.Register(event.LevelChanged, e.observer)

	e.ctx = &layer.Context{
		World:      e.world,
		Events:     e.events,
		Renderer:   opts.Renderer,
		Animations: e.anims,
		Audio:      e.audio,
		Actions:    e,
		Log:        log.Named("layer"),
		ShowFPS:    cfg.Debug.ShowFPS,
		Width:      float64(cfg.Window.Width),
		Height:     float64(cfg.Window.Height),
	}
	e.build = LayerBuilder(e.ctx)
	e.levels = NewLevelManager(ManagerDeps{
		Factory:     e.factory,
		Data:        e.data,
		Stack:       e.stack,
		Build:       e.build,
		Scripts:     e.scripts,
		Animations:  e.anims,
		Audio:       e.audio,
		Log:         log.Named("levels"),
		FadeSeconds: cfg.Audio.FadeSeconds,
	}, opts.Start)

	if ents, err := e.factory.LoadGameObject(levels.CommonFile); err != nil {
		if len(ents) == 0 {
			return nil, fmt.Errorf("load common objects: %w", err)
		}
		log.Warn("common objects partially loaded", zap.Error(err))
	}

	if rep := e.levels.Enter(opts.Start); rep.Err != nil {
		log.Warn("start level partially loaded", zap.Stringer("level", opts.Start), zap.Error(rep.Err))
	}
	if opts.SkipMenu {
		e.mode = ModePlaying
	} else {
		e.showMenu()
	}
	return e, nil
}

func (e *Engine) World() *ecs.World              { return e.world }
func (e *Engine) Events() *event.Subject         { return e.events }
func (e *Engine) Factory() *entity.Factory       { return e.factory }
func (e *Engine) Stack() *layer.Stack            { return e.stack }
func (e *Engine) Levels() *LevelManager          { return e.levels }
func (e *Engine) Physics() *system.PhysicsSystem { return e.physics }
func (e *Engine) Mode() Mode                     { return e.mode }

// Rebuild reconstructs the layer stack from the current registry.
func (e *Engine) Rebuild() {
	e.stack.Reinitialize(e.build)
}

// RequestTransition schedules a level change for the start of the next
// Update. A later request in the same frame replaces an earlier one.
func (e *Engine) RequestTransition(to Level) {
	e.pending = &pendingTransition{to: to, then: ModePlaying}
}

// Update advances one frame: pending level change, input, scripts and
// systems, audio and layers, in that order.
func (e *Engine) Update(dt float64, events []input.Event) error {
	if p := e.pending; p != nil {
		e.pending = nil
		if rep := e.levels.Transition(p.to); rep.Err != nil {
			e.log.Warn("level transition partially applied", zap.Error(rep.Err))
		}
		e.mode = p.then
		if p.then == ModeMenu {
			e.showMenu()
		}
	}

	for _, ev := range events {
		e.stack.HandleEvent(ev)
	}
	if e.mode == ModePlaying {
		e.systems.Update(e.world, dt)
	}
	e.audio.Update(dt)
	e.stack.Update(dt)

	if e.quit {
		return ErrQuit
	}
	return nil
}

// Draw renders the visible layers bottom to top.
func (e *Engine) Draw() {
	e.stack.Render()
}

func (e *Engine) findLayer(name string) (layer.Layer, bool) {
	l, ok := e.stack.Find(name)
	if !ok {
		e.log.Warn("layer not found", zap.String("layer", name))
	}
	return l, ok
}

func (e *Engine) setVisible(name string, visible bool) {
	if l, ok := e.findLayer(name); ok {
		l.SetVisible(visible)
	}
}

func (e *Engine) showMenu() {
	e.mode = ModeMenu
	e.setVisible(layer.NameMainMenu, true)
	e.audio.TransitionMusic(TrackMenu, e.cfg.Audio.FadeSeconds)
}

func (e *Engine) pause() {
	for _, name := range pausedLayers {
		if l, ok := e.findLayer(name); ok {
			l.UpdateOriginalScale()
			l.HideObjects()
		}
	}
	e.setVisible(layer.NamePauseMenu, true)
	e.audio.PauseAll()
	e.mode = ModePaused
	e.events.Notify(event.Signal{ID: event.GamePaused})
}

func (e *Engine) resume() {
	for _, name := range pausedLayers {
		if l, ok := e.findLayer(name); ok {
			l.ShowObjects()
		}
	}
	e.setVisible(layer.NamePauseMenu, false)
	e.audio.ResumeAll()
	e.mode = ModePlaying
	e.events.Notify(event.Signal{ID: event.GameResumed})
}

func (e *Engine) finish() {
	e.mode = ModeEnd
	e.setVisible(layer.NameEndMenu, true)
	e.audio.TransitionMusic(TrackEnd, e.cfg.Audio.FadeSeconds)
}
