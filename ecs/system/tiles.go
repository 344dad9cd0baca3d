package system

import (
	"github.com/milk9111/shroomydoomy/ecs"
	"github.com/milk9111/shroomydoomy/ecs/component"
	"github.com/milk9111/shroomydoomy/ecs/event"
)

// TileSize is the edge length of an unscaled tile in pixels.
const TileSize = 64.0

// TileOccupancySystem records which game object stands on each active tile
// and highlights occupied walkable tiles. Occupants are cleared as soon as
// their entity is deleted so no tile refers to a dead entity.
type TileOccupancySystem struct {
	world    *ecs.World
	observer *event.Observer
}

func NewTileOccupancySystem(w *ecs.World) *TileOccupancySystem {
	ts := &TileOccupancySystem{world: w}
	ts.observer = event.NewObserver("tiles")
	ts.observer.Handle(event.ObjectDeleted, func(m event.Message) {
		if msg, ok := m.(event.Delete); ok {
			ts.release(msg.Entity)
		}
	})
	return ts
}

func (ts *TileOccupancySystem) Attach(events *event.Subject) {
	events.Register(event.ObjectDeleted, ts.observer)
}

func (ts *TileOccupancySystem) Detach(events *event.Subject) {
	events.UnregisterAll(ts.observer)
}

func (ts *TileOccupancySystem) release(e ecs.Entity) {
	ecs.ForEach(ts.world, component.TileComponent.Kind(), func(_ ecs.Entity, tile *component.Tile) {
		if tile.Occupant == uint64(e) {
			tile.Occupant = 0
			tile.Highlighted = false
		}
	})
}

func (ts *TileOccupancySystem) Update(w *ecs.World, _ float64) {
	occupants := ecs.Query(w, component.ObjectTypeComponent.Kind(), component.TransformComponent.Kind())

	ecs.ForEach2(w, component.TileComponent.Kind(), component.TransformComponent.Kind(), func(te ecs.Entity, tile *component.Tile, tt *component.Transform) {
		if !tile.Active {
			return
		}
		tile.Occupant = 0
		half := TileSize * tt.ScaleX / 2
		for _, e := range occupants {
			if e == te || ecs.Has(w, e, component.TileComponent.Kind()) {
				continue
			}
			ot := ecs.MustGet(w, e, component.ObjectTypeComponent.Kind())
			if ot.Category != component.CategoryGame {
				continue
			}
			t := ecs.MustGet(w, e, component.TransformComponent.Kind())
			if t.Hidden() {
				continue
			}
			if t.X >= tt.X-half && t.X < tt.X+half && t.Y >= tt.Y-TileSize && t.Y < tt.Y {
				tile.Occupant = uint64(e)
				break
			}
		}
		tile.Highlighted = tile.Occupant != 0 && tile.Walkable
	})
}
