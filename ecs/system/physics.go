package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/shroomydoomy/ecs"
	"github.com/milk9111/shroomydoomy/ecs/component"
	"github.com/milk9111/shroomydoomy/ecs/event"
	"go.uber.org/zap"
)

const DefaultGravity = 900.0

// PhysicsSystem mirrors RigidBody components into a chipmunk space. Bodies
// are created when a RigidBody is announced and removed when the component
// or its entity goes away; dynamic bodies write their position back to the
// entity's Transform every step.
type PhysicsSystem struct {
	world    *ecs.World
	space    *cp.Space
	observer *event.Observer
	bodies   map[ecs.Entity]*bodyInfo
	log      *zap.Logger
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

func NewPhysicsSystem(w *ecs.World, gravity float64, log *zap.Logger) *PhysicsSystem {
	if log == nil {
		log = zap.NewNop()
	}
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravity})

	ps := &PhysicsSystem{
		world:  w,
		space:  space,
		bodies: make(map[ecs.Entity]*bodyInfo),
		log:    log,
	}
	ps.observer = event.NewObserver("physics")
	ps.observer.Handle(event.RigidBodySpawned, func(m event.Message) {
		if msg, ok := m.(event.BodySpawn); ok {
			ps.addBody(msg.Entity)
		}
	})
	ps.observer.Handle(event.RigidBodyDeleted, func(m event.Message) {
		if msg, ok := m.(event.BodyDelete); ok {
			ps.removeBody(msg.Entity)
		}
	})
	ps.observer.Handle(event.ObjectDeleted, func(m event.Message) {
		if msg, ok := m.(event.Delete); ok {
			ps.removeBody(msg.Entity)
		}
	})
	return ps
}

func (ps *PhysicsSystem) Space() *cp.Space {
	return ps.space
}

// Attach subscribes the system to body and object lifecycle events and
// picks up bodies that already exist.
func (ps *PhysicsSystem) Attach(events *event.Subject) {
	events.Register(event.RigidBodySpawned, ps.observer)
	events.Register(event.RigidBodyDeleted, ps.observer)
	events.Register(event.ObjectDeleted, ps.observer)
	for _, e := range ecs.Query(ps.world, component.RigidBodyComponent.Kind()) {
		ps.addBody(e)
	}
}

func (ps *PhysicsSystem) Detach(events *event.Subject) {
	events.UnregisterAll(ps.observer)
}

// Bodies reports how many entities currently own a body.
func (ps *PhysicsSystem) Bodies() int {
	return len(ps.bodies)
}

func (ps *PhysicsSystem) Update(w *ecs.World, dt float64) {
	if dt <= 0 {
		return
	}
	ps.space.Step(dt)

	for e, info := range ps.bodies {
		if info.static {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pos := info.body.Position()
		t.X, t.Y = pos.X, pos.Y
		t.Rotation = info.body.Angle()
	}
}

func (ps *PhysicsSystem) addBody(e ecs.Entity) {
	if _, ok := ps.bodies[e]; ok {
		return
	}
	rb, ok := ecs.Get(ps.world, e, component.RigidBodyComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(ps.world, e, component.TransformComponent.Kind())
	if !ok {
		ps.log.Warn("rigid body without transform", zap.Stringer("entity", e))
		return
	}
	if rb.Width <= 0 || rb.Height <= 0 {
		ps.log.Warn("rigid body has no size", zap.Stringer("entity", e))
		return
	}

	var body *cp.Body
	static := rb.Static || rb.Mass <= 0
	if static {
		body = cp.NewStaticBody()
	} else {
		body = cp.NewBody(rb.Mass, cp.MomentForBox(rb.Mass, rb.Width, rb.Height))
	}
	body.SetPosition(cp.Vector{X: t.X, Y: t.Y})
	body.SetAngle(t.Rotation)

	shape := cp.NewBox(body, rb.Width, rb.Height, 0)
	shape.SetFriction(rb.Friction)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	rb.Body, rb.Shape = body, shape
	ps.bodies[e] = &bodyInfo{body: body, shape: shape, static: static}
}

func (ps *PhysicsSystem) removeBody(e ecs.Entity) {
	info, ok := ps.bodies[e]
	if !ok {
		return
	}
	ps.space.RemoveShape(info.shape)
	ps.space.RemoveBody(info.body)
	delete(ps.bodies, e)

	if rb, ok := ecs.Get(ps.world, e, component.RigidBodyComponent.Kind()); ok {
		rb.Body, rb.Shape = nil, nil
	}
}
