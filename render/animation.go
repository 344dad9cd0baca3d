package render

import (
	"encoding/json"
	"fmt"

	"github.com/milk9111/shroomydoomy/ecs"
	"github.com/milk9111/shroomydoomy/ecs/component"
	"go.uber.org/zap"
)

type Frame struct {
	UVMin component.UV `json:"uv_min"`
	UVMax component.UV `json:"uv_max"`
}

type Clip struct {
	Texture string  `json:"texture"`
	FPS     float64 `json:"fps"`
	Loop    bool    `json:"loop"`
	Frames  []Frame `json:"frames"`
}

type AnimationDefs struct {
	Clips map[string]Clip `json:"clips"`
}

func ParseAnimations(blob []byte) (*AnimationDefs, error) {
	var defs AnimationDefs
	if err := json.Unmarshal(blob, &defs); err != nil {
		return nil, fmt.Errorf("render: parse animations: %w", err)
	}
	for name, clip := range defs.Clips {
		if len(clip.Frames) == 0 {
			return nil, fmt.Errorf("render: clip %q has no frames", name)
		}
		if clip.FPS <= 0 {
			return nil, fmt.Errorf("render: clip %q has fps %v", name, clip.FPS)
		}
	}
	return &defs, nil
}

// AnimationContainer owns the sprite animations bound to entities. While an
// entity is claimed, layers draw it through the container instead of its
// static material.
type AnimationContainer struct {
	world *ecs.World
	log   *zap.Logger
	clips map[string]Clip
	bound map[ecs.Entity]string
}

func NewAnimationContainer(w *ecs.World, log *zap.Logger) *AnimationContainer {
	if log == nil {
		log = zap.NewNop()
	}
	return &AnimationContainer{
		world: w,
		log:   log,
		clips: map[string]Clip{},
		bound: map[ecs.Entity]string{},
	}
}

// Reload replaces the clip set and rebinds every entity carrying a playing
// Animation whose clip exists. Previous bindings are dropped.
func (c *AnimationContainer) Reload(defs *AnimationDefs) {
	c.clips = map[string]Clip{}
	if defs != nil {
		for name, clip := range defs.Clips {
			c.clips[name] = clip
		}
	}
	c.bound = map[ecs.Entity]string{}

	ecs.ForEach(c.world, component.AnimationComponent.Kind(), func(e ecs.Entity, a *component.Animation) {
		if !a.Playing {
			return
		}
		if _, ok := c.clips[a.Clip]; !ok {
			c.log.Warn("animation clip not found", zap.Stringer("entity", e), zap.String("clip", a.Clip))
			return
		}
		a.Frame, a.Timer = 0, 0
		c.bound[e] = a.Clip
	})
	c.log.Debug("animations reloaded", zap.Int("clips", len(c.clips)), zap.Int("bound", len(c.bound)))
}

func (c *AnimationContainer) Claims(e ecs.Entity) bool {
	if c == nil {
		return false
	}
	_, ok := c.bound[e]
	return ok
}

func (c *AnimationContainer) Bound() int {
	return len(c.bound)
}

// Update advances every bound animation. Bindings whose entity died or lost
// its Animation are released.
func (c *AnimationContainer) Update(dt float64) {
	for e, name := range c.bound {
		a, ok := ecs.Get(c.world, e, component.AnimationComponent.Kind())
		if !ok || !ecs.IsAlive(c.world, e) {
			delete(c.bound, e)
			continue
		}
		if !a.Playing {
			continue
		}
		clip := c.clips[name]
		a.Timer += dt
		step := 1 / clip.FPS
		for a.Timer >= step {
			a.Timer -= step
			a.Frame++
			if a.Frame >= len(clip.Frames) {
				if clip.Loop {
					a.Frame = 0
				} else {
					a.Frame = len(clip.Frames) - 1
					a.Playing = false
					a.Timer = 0
					break
				}
			}
		}
	}
}

// Draw renders the current frame of a claimed entity.
func (c *AnimationContainer) Draw(r Renderer, e ecs.Entity, opacity float64) {
	name, ok := c.bound[e]
	if !ok {
		return
	}
	t, ok := ecs.Get(c.world, e, component.TransformComponent.Kind())
	if !ok {
		c.log.Warn("animated entity has no transform", zap.Stringer("entity", e))
		return
	}
	a, _ := ecs.Get(c.world, e, component.AnimationComponent.Kind())
	clip := c.clips[name]
	frame := clip.Frames[0]
	if a != nil && a.Frame < len(clip.Frames) {
		frame = clip.Frames[a.Frame]
	}

	col := component.White
	if m, ok := ecs.Get(c.world, e, component.MaterialComponent.Kind()); ok {
		col = m.Final()
	}
	r.DrawQuad(Quad{
		X:        t.X,
		Y:        t.Y,
		ScaleX:   t.ScaleX,
		ScaleY:   t.ScaleY,
		Rotation: t.Rotation,
		Texture:  clip.Texture,
		UVMin:    frame.UVMin,
		UVMax:    frame.UVMax,
		Color:    WithAlpha(col, opacity),
	})
}
