package event

import (
	"slices"

	"go.uber.org/zap"
)

// Subject maps each EventID to the observers registered for it, in
// registration order. Unregistering keeps the relative order of the rest,
// so delivery order only changes when an observer re-registers.
type Subject struct {
	observers map[EventID][]*Observer
	log       *zap.Logger
}

func NewSubject(log *zap.Logger) *Subject {
	if log == nil {
		log = zap.NewNop()
	}
	return &Subject{
		observers: make(map[EventID][]*Observer),
		log:       log,
	}
}

// Register subscribes o to id. Registering the same observer twice for one
// id is a no-op.
func (s *Subject) Register(id EventID, o *Observer) {
	if s == nil || o == nil {
		return
	}
	if slices.Contains(s.observers[id], o) {
		return
	}
	s.observers[id] = append(s.observers[id], o)
}

// Unregister removes o from id.
func (s *Subject) Unregister(id EventID, o *Observer) {
	if s == nil || o == nil {
		return
	}
	list := s.observers[id]
	idx := slices.Index(list, o)
	if idx < 0 {
		return
	}
	list = slices.Delete(list, idx, idx+1)
	if len(list) == 0 {
		delete(s.observers, id)
		return
	}
	s.observers[id] = list
}

// UnregisterAll removes o from every EventID.
func (s *Subject) UnregisterAll(o *Observer) {
	if s == nil || o == nil {
		return
	}
	for id := range s.observers {
		s.Unregister(id, o)
	}
}

// Notify delivers msg to every observer registered for its EventID before
// returning. The observer list is snapshotted first: a handler that
// registers or unregisters for the event being dispatched affects the next
// Notify, not this one.
func (s *Subject) Notify(msg Message) {
	if s == nil || msg == nil {
		return
	}
	id := msg.EventID()
	list := s.observers[id]
	if len(list) == 0 {
		return
	}
	snapshot := slices.Clone(list)
	s.log.Debug("notify", zap.Stringer("event", id), zap.Int("observers", len(snapshot)))
	for _, o := range snapshot {
		o.Notify(msg)
	}
}

// Count returns how many observers are registered for id.
func (s *Subject) Count(id EventID) int {
	if s == nil {
		return 0
	}
	return len(s.observers[id])
}
