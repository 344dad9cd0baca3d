package entity

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/milk9111/shroomydoomy/ecs"
	"github.com/milk9111/shroomydoomy/ecs/component"
	"github.com/milk9111/shroomydoomy/ecs/event"
	"github.com/milk9111/shroomydoomy/prefabs"
	"go.uber.org/zap"
)

var (
	ErrUnknownPrefab = errors.New("entity: unknown prefab")
	ErrNotFound      = errors.New("entity: game object not found")
)

// Document is the persisted form of a level file.
type Document struct {
	Objects []Record `json:"objects"`
}

// Record is one persisted game object.
type Record struct {
	Type       string                     `json:"type"`
	Level      string                     `json:"level,omitempty"`
	Category   component.Category         `json:"category,omitempty"`
	Components map[string]json.RawMessage `json:"components"`
}

// Object pairs a live entity with its type name.
type Object struct {
	Entity ecs.Entity
	Type   string
}

// DataReader resolves level data by file name.
type DataReader interface {
	Read(name string) ([]byte, error)
}

// Factory creates, destroys and persists game objects. Every lifecycle
// change is announced on the subject so layers can keep their membership in
// sync with the registry.
type Factory struct {
	world  *ecs.World
	events *event.Subject
	data   DataReader
	log    *zap.Logger

	origin map[ecs.Entity]string
}

func NewFactory(w *ecs.World, events *event.Subject, data DataReader, log *zap.Logger) *Factory {
	if log == nil {
		log = zap.NewNop()
	}
	if events == nil {
		events = event.NewSubject(log)
	}
	return &Factory{
		world:  w,
		events: events,
		data:   data,
		log:    log,
		origin: make(map[ecs.Entity]string),
	}
}

func (f *Factory) World() *ecs.World {
	return f.world
}

func (f *Factory) Events() *event.Subject {
	return f.events
}

// GetAllGameObjects returns every live object, ordered by slot.
func (f *Factory) GetAllGameObjects() []Object {
	ents := ecs.Query(f.world, component.ObjectTypeComponent.Kind())
	out := make([]Object, 0, len(ents))
	for _, e := range ents {
		ot, ok := ecs.Get(f.world, e, component.ObjectTypeComponent.Kind())
		if !ok {
			continue
		}
		out = append(out, Object{Entity: e, Type: ot.Name})
	}
	return out
}

// GetEntityType returns the type name of e, or "" when e is not a game
// object.
func (f *Factory) GetEntityType(e ecs.Entity) string {
	ot, ok := f.GetObjectType(e)
	if !ok {
		return ""
	}
	return ot.Name
}

func (f *Factory) GetObjectType(e ecs.Entity) (component.ObjectType, bool) {
	ot, ok := ecs.Get(f.world, e, component.ObjectTypeComponent.Kind())
	if !ok {
		return component.ObjectType{}, false
	}
	return *ot, true
}

// FindByType returns the first live object whose type name equals name.
func (f *Factory) FindByType(name string) (ecs.Entity, bool) {
	for _, obj := range f.GetAllGameObjects() {
		if obj.Type == name {
			return obj.Entity, true
		}
	}
	return ecs.Nil, false
}

// LoadGameObject reads a level file and adds its objects to the registry.
func (f *Factory) LoadGameObject(path string) ([]ecs.Entity, error) {
	if f.data == nil {
		return nil, fmt.Errorf("entity: load %q: no data source", path)
	}
	blob, err := f.data.Read(path)
	if err != nil {
		return nil, fmt.Errorf("entity: load %q: %w", path, err)
	}
	ents, err := f.load(blob, path)
	if err != nil {
		return ents, fmt.Errorf("entity: load %q: %w", path, err)
	}
	return ents, nil
}

// ReloadGameObject destroys the objects previously loaded from path and
// loads the file again.
func (f *Factory) ReloadGameObject(path string) ([]ecs.Entity, error) {
	for _, obj := range f.GetAllGameObjects() {
		if f.origin[obj.Entity] == path {
			f.DestroyGameObject(obj.Entity)
		}
	}
	return f.LoadGameObject(path)
}

// LoadHelper decodes a level document and spawns its objects. Objects that
// fail to decode are skipped; the rest are kept and the errors are joined.
func (f *Factory) LoadHelper(blob []byte) ([]ecs.Entity, error) {
	return f.load(blob, "")
}

func (f *Factory) load(blob []byte, origin string) ([]ecs.Entity, error) {
	var doc Document
	if err := json.Unmarshal(blob, &doc); err != nil {
		return nil, fmt.Errorf("decode level: %w", err)
	}

	var errs []error
	ents := make([]ecs.Entity, 0, len(doc.Objects))
	for i, rec := range doc.Objects {
		e, err := f.spawnRecord(rec)
		if err != nil {
			f.log.Warn("skipping game object",
				zap.Int("index", i),
				zap.String("type", rec.Type),
				zap.Error(err))
			errs = append(errs, fmt.Errorf("object %d (%s): %w", i, rec.Type, err))
			continue
		}
		if origin != "" {
			f.origin[e] = origin
		}
		ents = append(ents, e)
	}

	f.log.Debug("loaded game objects", zap.String("origin", origin), zap.Int("count", len(ents)))
	return ents, errors.Join(errs...)
}

func (f *Factory) spawnRecord(rec Record) (ecs.Entity, error) {
	if strings.TrimSpace(rec.Type) == "" {
		return ecs.Nil, fmt.Errorf("missing type")
	}

	e := ecs.CreateEntity(f.world)
	ot := component.ObjectType{Name: rec.Type, Level: rec.Level, Category: rec.Category}.Resolve()
	if err := ecs.Add(f.world, e, component.ObjectTypeComponent.Kind(), &ot); err != nil {
		ecs.DestroyEntity(f.world, e)
		return ecs.Nil, err
	}
	if err := decodeComponents(f.world, e, rec.Components); err != nil {
		ecs.DestroyEntity(f.world, e)
		return ecs.Nil, err
	}

	f.announce(e)
	return e, nil
}

// announce emits the spawn events for a freshly built object.
func (f *Factory) announce(e ecs.Entity) {
	f.events.Notify(event.Spawn{Entity: e})
	if ecs.Has(f.world, e, component.FontComponent.Kind()) {
		f.events.Notify(event.FontSpawn{Entity: e})
	}
	if ecs.Has(f.world, e, component.RigidBodyComponent.Kind()) {
		f.events.Notify(event.BodySpawn{Entity: e})
	}
}

// DestroyGameObject announces the deletion while e is still alive, then
// removes it from the registry.
func (f *Factory) DestroyGameObject(e ecs.Entity) bool {
	if !ecs.IsAlive(f.world, e) {
		return false
	}
	f.events.Notify(event.Delete{Entity: e})
	delete(f.origin, e)
	return ecs.DestroyEntity(f.world, e)
}

// CreateGameObject spawns a prefab at (x, y). A non-empty level tags the
// object as belonging to that level.
func (f *Factory) CreateGameObject(prefab, level string, x, y float64) (ecs.Entity, error) {
	spec, err := prefabs.LoadObjectSpec(prefab)
	if err != nil {
		return ecs.Nil, fmt.Errorf("%w: %s: %v", ErrUnknownPrefab, prefab, err)
	}

	name := spec.Type
	if level != "" {
		name = level + "_" + spec.Type
	}
	ot := component.ObjectType{Name: name, Level: level}
	if spec.Category != "" {
		c, ok := component.ParseCategory(spec.Category)
		if !ok {
			return ecs.Nil, fmt.Errorf("%w: %s: unknown category %q", ErrUnknownPrefab, prefab, spec.Category)
		}
		ot.Category = c
	}
	ot = ot.Resolve()

	e := ecs.CreateEntity(f.world)
	if err := ecs.Add(f.world, e, component.ObjectTypeComponent.Kind(), &ot); err != nil {
		ecs.DestroyEntity(f.world, e)
		return ecs.Nil, err
	}
	if err := buildFromSpec(f.world, e, spec, x, y); err != nil {
		ecs.DestroyEntity(f.world, e)
		return ecs.Nil, fmt.Errorf("entity: create %q: %w", prefab, err)
	}

	f.announce(e)
	return e, nil
}

// DuplicateGameObject deep-copies src into a new object of the same type.
func (f *Factory) DuplicateGameObject(src ecs.Entity) (ecs.Entity, error) {
	rec, err := f.MarshalObject(src)
	if err != nil {
		return ecs.Nil, err
	}
	return f.spawnRecord(rec)
}

// SpawnRecord builds an object from an already decoded record, as pasted
// from the clipboard by the editor.
func (f *Factory) SpawnRecord(rec Record) (ecs.Entity, error) {
	return f.spawnRecord(rec)
}

// MarshalObject captures the persisted form of e.
func (f *Factory) MarshalObject(e ecs.Entity) (Record, error) {
	ot, ok := f.GetObjectType(e)
	if !ok {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, e)
	}
	comps, err := encodeComponents(f.world, e)
	if err != nil {
		return Record{}, fmt.Errorf("entity: marshal %s: %w", e, err)
	}
	return Record{Type: ot.Name, Level: ot.Level, Category: ot.Category, Components: comps}, nil
}

// SaveGameObjects writes the live objects tagged with level as a level
// document. An empty level selects objects without a level tag.
func (f *Factory) SaveGameObjects(w io.Writer, level string) error {
	doc := Document{Objects: []Record{}}
	for _, obj := range f.GetAllGameObjects() {
		ot, _ := f.GetObjectType(obj.Entity)
		if ot.Level != level {
			continue
		}
		rec, err := f.MarshalObject(obj.Entity)
		if err != nil {
			return err
		}
		doc.Objects = append(doc.Objects, rec)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("entity: save %q: %w", level, err)
	}
	return nil
}

// AddFont attaches a font to e and announces it.
func (f *Factory) AddFont(e ecs.Entity, font component.Font) error {
	if err := ecs.Add(f.world, e, component.FontComponent.Kind(), &font); err != nil {
		return err
	}
	f.events.Notify(event.FontSpawn{Entity: e})
	return nil
}

// RemoveFont announces the removal before detaching the font.
func (f *Factory) RemoveFont(e ecs.Entity) bool {
	if !ecs.Has(f.world, e, component.FontComponent.Kind()) {
		return false
	}
	f.events.Notify(event.FontDelete{Entity: e})
	return ecs.Remove(f.world, e, component.FontComponent.Kind())
}

func (f *Factory) AddRigidBody(e ecs.Entity, body component.RigidBody) error {
	if err := ecs.Add(f.world, e, component.RigidBodyComponent.Kind(), &body); err != nil {
		return err
	}
	f.events.Notify(event.BodySpawn{Entity: e})
	return nil
}

func (f *Factory) RemoveRigidBody(e ecs.Entity) bool {
	if !ecs.Has(f.world, e, component.RigidBodyComponent.Kind()) {
		return false
	}
	f.events.Notify(event.BodyDelete{Entity: e})
	return ecs.Remove(f.world, e, component.RigidBodyComponent.Kind())
}
