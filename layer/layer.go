// Package layer composes the scene from named layers. Each layer owns the
// entities of one category, keeps its membership in sync through the event
// bus, and hides or shows its members when its visibility flips.
package layer

import (
	"github.com/milk9111/shroomydoomy/audio"
	"github.com/milk9111/shroomydoomy/ecs"
	"github.com/milk9111/shroomydoomy/ecs/event"
	"github.com/milk9111/shroomydoomy/input"
	"github.com/milk9111/shroomydoomy/render"
	"go.uber.org/zap"
)

// Canonical layer names, in stack order.
const (
	NameUtils        = "Utils"
	NameBackground   = "Background"
	NameEnvironment  = "Environment"
	NameGame         = "Game"
	NameUI           = "UI"
	NameFont         = "Font"
	NameMainMenu     = "MainMenu"
	NameStory        = "Story"
	NameEndMenu      = "EndMenu"
	NamePauseMenu    = "PauseMenu"
	NameFPS          = "FPS"
	NameChestOverlay = "ChestOverlay"
)

type Layer interface {
	Name() string

	OnAttach()
	OnDetach()
	OnUpdate(dt float64)
	OnRender()
	// HandleInput reports whether the event was consumed.
	HandleInput(ev input.Event) bool

	IsVisible() bool
	SetVisible(visible bool)
	Opacity() float64
	SetOpacity(opacity float64)

	// HideObjects and ShowObjects apply zero or original scale to every
	// member without touching the visibility bookkeeping.
	HideObjects()
	ShowObjects()
	// Collapsed reports whether HideObjects ran more recently than
	// ShowObjects.
	Collapsed() bool
	UpdateOriginalScale()

	// ObjectContainer exposes the live membership for tools that reorder
	// or clear it.
	ObjectContainer() *[]ecs.Entity
}

// Actions receives the named actions triggered by buttons and timed layers.
type Actions interface {
	Dispatch(action string)
}

type ActionFunc func(action string)

func (f ActionFunc) Dispatch(action string) {
	if f != nil {
		f(action)
	}
}

// Action names dispatched by the built-in layers.
const (
	ActionPlay        = "play"
	ActionRestart     = "restart"
	ActionTogglePause = "toggle_pause"
	ActionStoryDone   = "story_done"
)

// Timings holds the durations, in seconds, of the timed overlays.
type Timings struct {
	StoryHold   float64
	StoryFade   float64
	EndMenuFade float64
	ChestFade   float64
	ChestHold   float64
}

func DefaultTimings() Timings {
	return Timings{
		StoryHold:   3,
		StoryFade:   0.5,
		EndMenuFade: 1,
		ChestFade:   0.4,
		ChestHold:   1.2,
	}
}

// Context carries the collaborators every layer needs. It is built once by
// the engine and shared by all layers. World and Events are required; the
// other collaborators fall back to no-op implementations.
type Context struct {
	World      *ecs.World
	Events     *event.Subject
	Renderer   render.Renderer
	Animations *render.AnimationContainer
	Audio      audio.Player
	Actions    Actions
	Log        *zap.Logger
	Timings    *Timings
	// ShowFPS sets the initial visibility of the FPS counter.
	ShowFPS bool

	Width, Height float64
}

func (c *Context) withDefaults() *Context {
	out := *c
	if out.Log == nil {
		out.Log = zap.NewNop()
	}
	if out.Renderer == nil {
		out.Renderer = render.Nop{}
	}
	if out.Audio == nil {
		out.Audio = audio.Nop{}
	}
	if out.Actions == nil {
		out.Actions = ActionFunc(nil)
	}
	if out.Timings == nil {
		t := DefaultTimings()
		out.Timings = &t
	}
	if out.Width == 0 {
		out.Width = 800
	}
	if out.Height == 0 {
		out.Height = 600
	}
	return &out
}
