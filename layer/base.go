package layer

import (
	"slices"

	"github.com/milk9111/shroomydoomy/ecs"
	"github.com/milk9111/shroomydoomy/ecs/component"
	"github.com/milk9111/shroomydoomy/ecs/event"
	"github.com/milk9111/shroomydoomy/input"
	"github.com/milk9111/shroomydoomy/render"
	"go.uber.org/zap"
)

// Filter decides whether an entity belongs to a layer.
type Filter func(w *ecs.World, e ecs.Entity) bool

// ByCategory keeps entities whose ObjectType resolved to c.
func ByCategory(c component.Category) Filter {
	return func(w *ecs.World, e ecs.Entity) bool {
		ot, ok := ecs.Get(w, e, component.ObjectTypeComponent.Kind())
		return ok && ot.Category == c
	}
}

// HasFont keeps entities carrying a Font component.
func HasFont(w *ecs.World, e ecs.Entity) bool {
	return ecs.Has(w, e, component.FontComponent.Kind())
}

// Options configures a Base.
type Options struct {
	Name    string
	Filter  Filter
	Hider   Hider
	Visible bool

	// Bootstrap lists the component kinds queried when the layer attaches.
	// Defaults to ObjectType.
	Bootstrap []component.Kind
	// Spawned and Deleted name the events that grow and shrink membership.
	// Default to ObjectSpawned and ObjectDeleted.
	Spawned []event.EventID
	Deleted []event.EventID
}

type warnKey struct {
	entity    ecs.Entity
	component string
}

// Base implements the membership, visibility and rendering shared by every
// layer. Concrete layers embed it and override OnUpdate, OnRender or
// HandleInput where they add behaviour.
type Base struct {
	name string
	ctx  *Context
	log  *zap.Logger

	visible bool
	// shown tracks the visibility edge; collapsed tracks whether members
	// currently sit at zero scale, whichever path zeroed them.
	shown     bool
	collapsed bool
	opacity   float64

	members  []ecs.Entity
	original map[ecs.Entity]Scale

	filter    Filter
	hider     Hider
	bootstrap []component.Kind
	spawned   []event.EventID
	deleted   []event.EventID
	observer  *event.Observer
	attached  bool

	restores int
	warned   map[warnKey]struct{}

	// draw renders one member. Defaults to drawSprite.
	draw func(e ecs.Entity)
	// onRemove runs after a member leaves the layer.
	onRemove func(e ecs.Entity)
}

func newBase(ctx *Context, opts Options) *Base {
	ctx = ctx.withDefaults()
	b := &Base{
		name:      opts.Name,
		ctx:       ctx,
		log:       ctx.Log.With(zap.String("layer", opts.Name)),
		visible:   opts.Visible,
		shown:     true,
		opacity:   1,
		original:  map[ecs.Entity]Scale{},
		filter:    opts.Filter,
		hider:     opts.Hider,
		bootstrap: opts.Bootstrap,
		spawned:   opts.Spawned,
		deleted:   opts.Deleted,
		observer:  event.NewObserver(opts.Name),
		warned:    map[warnKey]struct{}{},
	}
	if b.filter == nil {
		b.filter = func(*ecs.World, ecs.Entity) bool { return false }
	}
	if b.hider == nil {
		b.hider = ScaleHider{}
	}
	if b.bootstrap == nil {
		b.bootstrap = []component.Kind{component.ObjectTypeComponent.Kind()}
	}
	if b.spawned == nil {
		b.spawned = []event.EventID{event.ObjectSpawned}
	}
	if b.deleted == nil {
		b.deleted = []event.EventID{event.ObjectDeleted}
	}
	b.draw = b.drawSprite

	for _, id := range b.spawned {
		b.observer.Handle(id, b.onSpawn)
	}
	for _, id := range b.deleted {
		b.observer.Handle(id, b.onDelete)
	}
	return b
}

func (b *Base) Name() string {
	return b.name
}

// OnAttach registers the layer on the event bus and rebuilds membership
// from the current registry.
func (b *Base) OnAttach() {
	if b.attached {
		return
	}
	b.attached = true
	for _, id := range b.spawned {
		b.ctx.Events.Register(id, b.observer)
	}
	for _, id := range b.deleted {
		b.ctx.Events.Register(id, b.observer)
	}

	b.members = b.members[:0]
	clear(b.original)
	for _, e := range ecs.Query(b.ctx.World, b.bootstrap...) {
		if b.filter(b.ctx.World, e) {
			b.add(e)
		}
	}
	b.log.Debug("layer attached", zap.Int("members", len(b.members)))
}

func (b *Base) OnDetach() {
	if !b.attached {
		return
	}
	b.attached = false
	b.ctx.Events.UnregisterAll(b.observer)
}

func (b *Base) OnUpdate(float64) {
	b.updateVisibility()
}

func (b *Base) OnRender() {
	b.renderMembers()
}

func (b *Base) HandleInput(input.Event) bool {
	return false
}

func (b *Base) IsVisible() bool {
	return b.visible
}

// SetVisible only records the flag; members are hidden or restored on the
// next update.
func (b *Base) SetVisible(visible bool) {
	b.visible = visible
}

func (b *Base) Opacity() float64 {
	return b.opacity
}

func (b *Base) SetOpacity(opacity float64) {
	b.opacity = min(max(opacity, 0), 1)
}

func (b *Base) HideObjects() {
	for _, e := range b.members {
		b.hider.Hide(b.ctx.World, e)
	}
	b.collapsed = true
}

func (b *Base) ShowObjects() {
	for _, e := range b.members {
		if s, ok := b.original[e]; ok {
			b.hider.Show(b.ctx.World, e, s)
		}
	}
	b.collapsed = false
}

// Collapsed reports whether members were last hidden rather than shown. A
// paused layer is collapsed while still visible.
func (b *Base) Collapsed() bool {
	return b.collapsed
}

// UpdateOriginalScale snapshots the members' current scale. Members that
// are already collapsed keep their previous snapshot.
func (b *Base) UpdateOriginalScale() {
	for _, e := range b.members {
		s, ok := b.hider.Capture(b.ctx.World, e)
		if !ok || s.zero() {
			continue
		}
		b.original[e] = s
	}
}

func (b *Base) ObjectContainer() *[]ecs.Entity {
	return &b.members
}

// Restores counts visibility edges that restored the members.
func (b *Base) Restores() int {
	return b.restores
}

// OriginalScale returns the scale e is restored to when the layer shows.
func (b *Base) OriginalScale(e ecs.Entity) (Scale, bool) {
	s, ok := b.original[e]
	return s, ok
}

// updateVisibility hides members on the visible to hidden edge and restores
// them on the hidden to visible edge. Holding either state does nothing.
func (b *Base) updateVisibility() (hidden, shown bool) {
	switch {
	case !b.visible && b.shown:
		b.HideObjects()
		b.shown = false
		return true, false
	case b.visible && !b.shown:
		b.ShowObjects()
		b.shown = true
		b.restores++
		return false, true
	}
	return false, false
}

func (b *Base) onSpawn(msg event.Message) {
	e, ok := event.EntityOf(msg)
	if !ok || !ecs.IsAlive(b.ctx.World, e) || !b.filter(b.ctx.World, e) {
		return
	}
	if slices.Contains(b.members, e) {
		return
	}
	b.add(e)
	if b.collapsed {
		b.hider.Hide(b.ctx.World, e)
	}
}

func (b *Base) onDelete(msg event.Message) {
	e, ok := event.EntityOf(msg)
	if !ok {
		return
	}
	b.remove(e)
}

func (b *Base) add(e ecs.Entity) {
	b.members = append(b.members, e)
	s, ok := b.hider.Capture(b.ctx.World, e)
	if !ok {
		return
	}
	if s.zero() {
		// Collapsed by an earlier hide; restore to unit size.
		s = Scale{X: 1, Y: 1}
	}
	b.original[e] = s
}

func (b *Base) remove(e ecs.Entity) {
	i := slices.Index(b.members, e)
	if i < 0 {
		return
	}
	b.members = slices.Delete(b.members, i, i+1)
	delete(b.original, e)
	for k := range b.warned {
		if k.entity == e {
			delete(b.warned, k)
		}
	}
	if b.onRemove != nil {
		b.onRemove(e)
	}
}

func (b *Base) renderMembers() {
	if !b.visible {
		return
	}
	r := b.ctx.Renderer
	r.BeginBatch()
	for _, e := range b.members {
		b.draw(e)
	}
	r.EndBatch()
	r.Flush()
}

// drawSprite draws e with its static material, or through the animation
// container when a clip has claimed it.
func (b *Base) drawSprite(e ecs.Entity) {
	b.drawSpriteWith(e, nil)
}

// drawSpriteWith lets a layer adjust the quad before submission. adjust
// returning false skips the entity.
func (b *Base) drawSpriteWith(e ecs.Entity, adjust func(e ecs.Entity, q *render.Quad) bool) {
	w := b.ctx.World
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		b.warnMissing(e, "Transform")
		return
	}
	if t.Hidden() {
		return
	}
	if b.ctx.Animations.Claims(e) {
		b.ctx.Animations.Draw(b.ctx.Renderer, e, b.opacity)
		return
	}
	m, ok := ecs.Get(w, e, component.MaterialComponent.Kind())
	if !ok {
		// Text-only members are drawn by the font layer.
		if !ecs.Has(w, e, component.FontComponent.Kind()) {
			b.warnMissing(e, "Material")
		}
		return
	}
	q := render.QuadFor(*t, *m, b.opacity)
	if adjust != nil && !adjust(e, &q) {
		return
	}
	b.ctx.Renderer.DrawQuad(q)
}

// warnMissing logs a missing component once per entity.
func (b *Base) warnMissing(e ecs.Entity, name string) {
	key := warnKey{entity: e, component: name}
	if _, ok := b.warned[key]; ok {
		return
	}
	b.warned[key] = struct{}{}
	b.log.Warn("member missing component, skipped",
		zap.Stringer("entity", e),
		zap.String("component", name),
	)
}
