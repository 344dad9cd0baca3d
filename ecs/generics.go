package ecs

import (
	"fmt"

	"github.com/milk9111/shroomydoomy/ecs/component"
)

func CreateEntity(w *World) Entity {
	return w.CreateEntity()
}

func DestroyEntity(w *World, e Entity) bool {
	return w.DestroyEntity(e)
}

func IsAlive(w *World, e Entity) bool {
	return w.IsAlive(e)
}

// Entities returns a snapshot of every live entity in slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if value == nil {
		return component.ErrNilComponent
	}
	return w.AddComponent(e, kind, value)
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return w.RemoveComponent(e, kind)
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return w.HasComponent(e, kind)
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	value, ok := w.GetComponent(e, kind)
	if !ok {
		return nil, false
	}
	cast, ok := value.(*T)
	if !ok {
		return nil, false
	}
	return cast, true
}

// MustGet returns the component or panics. Accessing a component that was
// never added is a contract violation; callers check Has first.
func MustGet[T any](w *World, e Entity, kind component.ComponentKind[T]) *T {
	v, ok := Get(w, e, kind)
	if !ok {
		panic(fmt.Sprintf("ecs: entity %s has no %s component", e, kind.Name()))
	}
	return v
}

// ForEach visits every entity holding kind in the store's dense order. The
// id list is copied first, so fn may destroy entities or remove components.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	store := w.store(kind.ID(), false)
	if store == nil {
		return
	}
	ids := append([]entityID(nil), store.denseEntities...)
	for _, id := range ids {
		e, ok := w.entities.entity(id)
		if !ok {
			continue
		}
		if v, ok := store.Get(id).(*T); ok {
			fn(e, v)
		}
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range w.Query(ka, kb) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

// First returns the first entity holding kind.
func First(w *World, kind component.Kind) (Entity, bool) {
	return w.First(kind)
}

// Query returns a snapshot of entities holding every kind.
func Query(w *World, kinds ...component.Kind) []Entity {
	return w.Query(kinds...)
}
