// Package script runs tengo behaviour scripts attached to entities through
// the Script component.
//
// A behaviour script defines three functions:
//
//	init := func(self, state) {}
//	update := func(self, state, dt) {}
//	end := func(self, state) {}
//
// self is a map with id, x, y, rotation, scale_x and scale_y; changes to the
// transform keys are written back after each call. state persists between
// calls for the same entity until End.
package script

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/shroomydoomy/ecs"
	"github.com/milk9111/shroomydoomy/ecs/component"
	"go.uber.org/zap"
)

const dispatchScript = `
if __phase == "init" {
	init(__self, __state)
} else if __phase == "update" {
	update(__self, __state, __dt)
} else if __phase == "end" {
	end(__self, __state)
}
`

// SourceFunc returns the source of a behaviour.
type SourceFunc func(behavior string) ([]byte, error)

type instance struct {
	behavior    string
	compiled    *tengo.Compiled
	state       *tengo.Map
	initialized bool
}

type Runtime struct {
	world  *ecs.World
	source SourceFunc
	log    *zap.Logger

	templates map[string]*tengo.Compiled
}

func NewRuntime(w *ecs.World, source SourceFunc, log *zap.Logger) *Runtime {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runtime{
		world:     w,
		source:    source,
		log:       log,
		templates: map[string]*tengo.Compiled{},
	}
}

// InitializeBehaviorComponents binds a fresh script instance to every Script
// component. Behaviours that fail to compile are logged and left unbound.
func (r *Runtime) InitializeBehaviorComponents() {
	bound := 0
	ecs.ForEach(r.world, component.ScriptComponent.Kind(), func(e ecs.Entity, s *component.Script) {
		s.Instance = nil
		if s.Behavior == "" {
			return
		}
		tmpl, err := r.template(s.Behavior)
		if err != nil {
			r.log.Warn("compile behaviour", zap.Stringer("entity", e), zap.String("behavior", s.Behavior), zap.Error(err))
			return
		}
		s.Instance = &instance{
			behavior: s.Behavior,
			compiled: tmpl.Clone(),
			state:    &tengo.Map{Value: map[string]tengo.Object{}},
		}
		bound++
	})
	r.log.Debug("behaviours bound", zap.Int("count", bound))
}

// Invalidate drops the compiled behaviour so the next bind recompiles it.
// An empty name drops every behaviour.
func (r *Runtime) Invalidate(behavior string) {
	if behavior == "" {
		r.templates = map[string]*tengo.Compiled{}
		return
	}
	delete(r.templates, behavior)
}

func (r *Runtime) template(behavior string) (*tengo.Compiled, error) {
	if c, ok := r.templates[behavior]; ok {
		return c, nil
	}
	if r.source == nil {
		return nil, fmt.Errorf("script: no source for %q", behavior)
	}
	src, err := r.source(behavior)
	if err != nil {
		return nil, fmt.Errorf("script: load %q: %w", behavior, err)
	}

	s := tengo.NewScript(append(append([]byte{}, src...), []byte("\n"+dispatchScript)...))
	_ = s.Add("__phase", "")
	_ = s.Add("__self", map[string]any{})
	_ = s.Add("__state", map[string]any{})
	_ = s.Add("__dt", 0.0)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %q: %w", behavior, err)
	}
	r.templates[behavior] = compiled
	return compiled, nil
}

// Init runs init for every active, bound script.
func (r *Runtime) Init() {
	r.each(func(e ecs.Entity, s *component.Script, inst *instance) {
		if !s.Active || inst.initialized {
			return
		}
		if r.run(e, inst, "init", 0) {
			inst.initialized = true
		}
	})
}

// Update runs update for every active script, initializing late joiners
// first.
func (r *Runtime) Update(dt float64) {
	r.each(func(e ecs.Entity, s *component.Script, inst *instance) {
		if !s.Active {
			return
		}
		if !inst.initialized {
			if !r.run(e, inst, "init", 0) {
				return
			}
			inst.initialized = true
		}
		r.run(e, inst, "update", dt)
	})
}

// End runs end for every initialized script and unbinds all instances.
func (r *Runtime) End() {
	r.each(func(e ecs.Entity, s *component.Script, inst *instance) {
		if inst.initialized {
			r.run(e, inst, "end", 0)
		}
		s.Instance = nil
	})
}

func (r *Runtime) each(fn func(ecs.Entity, *component.Script, *instance)) {
	for _, e := range ecs.Query(r.world, component.ScriptComponent.Kind()) {
		s, ok := ecs.Get(r.world, e, component.ScriptComponent.Kind())
		if !ok {
			continue
		}
		inst, ok := s.Instance.(*instance)
		if !ok || inst == nil {
			continue
		}
		fn(e, s, inst)
	}
}

func (r *Runtime) run(e ecs.Entity, inst *instance, phase string, dt float64) bool {
	t, ok := ecs.Get(r.world, e, component.TransformComponent.Kind())
	if !ok {
		r.log.Warn("scripted entity has no transform", zap.Stringer("entity", e), zap.String("behavior", inst.behavior))
		return false
	}

	self := map[string]any{
		"id":       int64(e.ID()),
		"x":        t.X,
		"y":        t.Y,
		"rotation": t.Rotation,
		"scale_x":  t.ScaleX,
		"scale_y":  t.ScaleY,
	}

	c := inst.compiled
	for name, v := range map[string]any{"__phase": phase, "__self": self, "__state": inst.state, "__dt": dt} {
		if err := c.Set(name, v); err != nil {
			r.log.Warn("script set", zap.String("name", name), zap.Error(err))
			return false
		}
	}
	if err := c.Run(); err != nil {
		r.log.Warn("script error",
			zap.Stringer("entity", e),
			zap.String("behavior", inst.behavior),
			zap.String("phase", phase),
			zap.Error(err))
		return false
	}

	out := c.Get("__self").Map()
	t.X = number(out["x"], t.X)
	t.Y = number(out["y"], t.Y)
	t.Rotation = number(out["rotation"], t.Rotation)
	t.ScaleX = number(out["scale_x"], t.ScaleX)
	t.ScaleY = number(out["scale_y"], t.ScaleY)
	return true
}

func number(v any, fallback float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	default:
		return fallback
	}
}
