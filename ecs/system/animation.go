package system

import (
	"github.com/milk9111/shroomydoomy/ecs"
	"github.com/milk9111/shroomydoomy/render"
)

// AnimationSystem advances the sprite animations owned by a container.
type AnimationSystem struct {
	container *render.AnimationContainer
}

func NewAnimationSystem(c *render.AnimationContainer) *AnimationSystem {
	return &AnimationSystem{container: c}
}

func (a *AnimationSystem) Update(_ *ecs.World, dt float64) {
	if a == nil || a.container == nil {
		return
	}
	a.container.Update(dt)
}
