package ecs

import "strconv"

// Entity is an opaque handle: the low 32 bits are the slot id, the high 32
// bits the slot generation. A destroyed entity's handle never becomes alive
// again because its slot generation moves on.
type Entity uint64

// Nil is never returned by CreateEntity.
const Nil Entity = 0

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

// ID returns the slot id of the entity, stable for the entity's lifetime.
func (e Entity) ID() uint32 {
	return uint32(e.id())
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e.id()), 10) + "v" + strconv.FormatUint(uint64(e.generation()), 10)
}
