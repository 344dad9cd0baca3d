// Package event routes engine events from emitters to per-layer observers.
//
// Dispatch is synchronous: Subject.Notify returns only after every observer
// registered for the message's EventID has run. Messages are values and are
// dropped once dispatch returns; observers must copy what they need.
package event

import (
	"fmt"

	"github.com/milk9111/shroomydoomy/ecs"
)

type EventID int

const (
	ObjectSpawned EventID = iota + 1
	ObjectDeleted
	FontSpawned
	FontDeleted
	RigidBodySpawned
	RigidBodyDeleted
	LevelChanged
	GamePaused
	GameResumed
)

var eventNames = map[EventID]string{
	ObjectSpawned:    "ObjectSpawned",
	ObjectDeleted:    "ObjectDeleted",
	FontSpawned:      "FontSpawned",
	FontDeleted:      "FontDeleted",
	RigidBodySpawned: "RigidBodySpawned",
	RigidBodyDeleted: "RigidBodyDeleted",
	LevelChanged:     "LevelChanged",
	GamePaused:       "GamePaused",
	GameResumed:      "GameResumed",
}

func (id EventID) String() string {
	if name, ok := eventNames[id]; ok {
		return name
	}
	return fmt.Sprintf("EventID(%d)", int(id))
}

// Message is the closed set of event payloads. Handlers switch on the
// concrete type; a payload of the wrong type is ignored.
type Message interface {
	EventID() EventID
	message()
}

// Spawn announces a new game object.
type Spawn struct{ Entity ecs.Entity }

// Delete announces a game object about to be destroyed. The entity is
// still alive while observers run.
type Delete struct{ Entity ecs.Entity }

// FontSpawn announces a Font component added to Entity.
type FontSpawn struct{ Entity ecs.Entity }

// FontDelete announces a Font component removed from Entity.
type FontDelete struct{ Entity ecs.Entity }

// BodySpawn announces a RigidBody component added to Entity.
type BodySpawn struct{ Entity ecs.Entity }

// BodyDelete announces a RigidBody component removed from Entity.
type BodyDelete struct{ Entity ecs.Entity }

// LevelChange is emitted once a level transition has completed.
type LevelChange struct{ From, To int }

// Signal is a payload-free event such as GamePaused.
type Signal struct{ ID EventID }

func (Spawn) EventID() EventID       { return ObjectSpawned }
func (Delete) EventID() EventID      { return ObjectDeleted }
func (FontSpawn) EventID() EventID   { return FontSpawned }
func (FontDelete) EventID() EventID  { return FontDeleted }
func (BodySpawn) EventID() EventID   { return RigidBodySpawned }
func (BodyDelete) EventID() EventID  { return RigidBodyDeleted }
func (LevelChange) EventID() EventID { return LevelChanged }
func (s Signal) EventID() EventID    { return s.ID }

func (Spawn) message()       {}
func (Delete) message()      {}
func (FontSpawn) message()   {}
func (FontDelete) message()  {}
func (BodySpawn) message()   {}
func (BodyDelete) message()  {}
func (LevelChange) message() {}
func (Signal) message()      {}

// EntityOf extracts the entity carried by entity-scoped messages.
func EntityOf(msg Message) (ecs.Entity, bool) {
	switch m := msg.(type) {
	case Spawn:
		return m.Entity, true
	case Delete:
		return m.Entity, true
	case FontSpawn:
		return m.Entity, true
	case FontDelete:
		return m.Entity, true
	case BodySpawn:
		return m.Entity, true
	case BodyDelete:
		return m.Entity, true
	default:
		return ecs.Nil, false
	}
}
