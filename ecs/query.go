package ecs

import (
	"sort"

	"github.com/milk9111/shroomydoomy/ecs/component"
)

// IntersectEntities returns entity ids present in both sets.
func IntersectEntities(a, b *SparseSet) []entityID {
	if a == nil || b == nil {
		return nil
	}
	// iterate smaller set
	if len(a.denseEntities) > len(b.denseEntities) {
		a, b = b, a
	}
	out := make([]entityID, 0, len(a.denseEntities))
	for _, id := range a.denseEntities {
		if b.Has(id) {
			out = append(out, id)
		}
	}
	return out
}

// Query returns a snapshot of the entities holding every kind, sorted by
// slot id so callers see a deterministic order. Later mutation of the world
// does not affect the returned slice.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	stores := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		if k == nil {
			return nil
		}
		s := w.store(k.ID(), false)
		if s == nil || s.Len() == 0 {
			return nil
		}
		stores = append(stores, s)
	}
	sort.Slice(stores, func(i, j int) bool { return stores[i].Len() < stores[j].Len() })

	ids := append([]entityID(nil), stores[0].denseEntities...)
	if len(stores) > 1 {
		ids = IntersectEntities(stores[0], stores[1])
		for _, s := range stores[2:] {
			kept := ids[:0]
			for _, id := range ids {
				if s.Has(id) {
					kept = append(kept, id)
				}
			}
			ids = kept
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		if e, ok := w.entities.entity(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns the lowest-id entity holding kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	ents := w.Query(kind)
	if len(ents) == 0 {
		return Nil, false
	}
	return ents[0], true
}
