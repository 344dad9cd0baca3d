package engine

import (
	"fmt"
	"io"

	"github.com/milk9111/shroomydoomy/ecs"
	"github.com/milk9111/shroomydoomy/ecs/entity"
	"github.com/milk9111/shroomydoomy/layer"
)

// SaveObjects writes every object tagged with levelPrefix to w. An empty
// prefix saves the shared objects.
func (e *Engine) SaveObjects(w io.Writer, levelPrefix string) error {
	return e.withMembersShown(func() error {
		return e.factory.SaveGameObjects(w, levelPrefix)
	})
}

// DuplicateObject copies src with its authored scale. A copy made while
// its layer is collapsed joins the layer collapsed.
func (e *Engine) DuplicateObject(src ecs.Entity) (ecs.Entity, error) {
	var dup ecs.Entity
	err := e.withMembersShown(func() error {
		var err error
		dup, err = e.factory.DuplicateGameObject(src)
		return err
	})
	return dup, err
}

// CopyObject marshals e with its authored scale.
func (e *Engine) CopyObject(obj ecs.Entity) (entity.Record, error) {
	var rec entity.Record
	err := e.withMembersShown(func() error {
		var err error
		rec, err = e.factory.MarshalObject(obj)
		return err
	})
	return rec, err
}

// withMembersShown runs fn with every collapsed layer, hidden or paused,
// restored to its original scales, and collapses those layers again after.
func (e *Engine) withMembersShown(fn func() error) error {
	var collapsed []layer.Layer
	for _, l := range e.stack.Layers() {
		if l.Collapsed() {
			l.ShowObjects()
			collapsed = append(collapsed, l)
		}
	}
	defer func() {
		for _, l := range collapsed {
			l.HideObjects()
		}
	}()
	return fn()
}

// MoveObject moves the member at index of the named layer by delta places,
// changing its draw order. It reports whether anything moved.
func (e *Engine) MoveObject(layerName string, index, delta int) (bool, error) {
	l, ok := e.stack.Find(layerName)
	if !ok {
		return false, fmt.Errorf("engine: no layer %q", layerName)
	}
	members := l.ObjectContainer()
	to := index + delta
	if index < 0 || index >= len(*members) || to < 0 || to >= len(*members) || delta == 0 {
		return false, nil
	}
	m := *members
	m[index], m[to] = m[to], m[index]
	return true, nil
}
