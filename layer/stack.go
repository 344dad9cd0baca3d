package layer

import (
	"slices"

	"github.com/milk9111/shroomydoomy/input"
)

// Stack orders layers bottom to top. Regular layers occupy the front of the
// slice up to insertIndex; overlays follow and always sit above them.
type Stack struct {
	layers      []Layer
	insertIndex int
}

func NewStack() *Stack {
	return &Stack{}
}

// PushLayer inserts l above the existing regular layers and attaches it.
func (s *Stack) PushLayer(l Layer) {
	s.layers = slices.Insert(s.layers, s.insertIndex, l)
	s.insertIndex++
	l.OnAttach()
}

// PushOverlay appends l above everything and attaches it.
func (s *Stack) PushOverlay(l Layer) {
	s.layers = append(s.layers, l)
	l.OnAttach()
}

// PopLayer detaches and removes l from the regular layers. It reports
// whether l was found there.
func (s *Stack) PopLayer(l Layer) bool {
	i := slices.Index(s.layers[:s.insertIndex], l)
	if i < 0 {
		return false
	}
	l.OnDetach()
	s.layers = slices.Delete(s.layers, i, i+1)
	s.insertIndex--
	return true
}

// PopOverlay detaches and removes l from the overlays.
func (s *Stack) PopOverlay(l Layer) bool {
	i := slices.Index(s.layers[s.insertIndex:], l)
	if i < 0 {
		return false
	}
	l.OnDetach()
	i += s.insertIndex
	s.layers = slices.Delete(s.layers, i, i+1)
	return true
}

// Update runs every layer bottom to top, visible or not.
func (s *Stack) Update(dt float64) {
	for _, l := range s.layers {
		l.OnUpdate(dt)
	}
}

// Render draws visible layers bottom to top.
func (s *Stack) Render() {
	for _, l := range s.layers {
		if l.IsVisible() {
			l.OnRender()
		}
	}
}

// HandleEvent offers ev to layers top to bottom and stops at the first one
// that consumes it.
func (s *Stack) HandleEvent(ev input.Event) bool {
	for i := len(s.layers) - 1; i >= 0; i-- {
		if s.layers[i].HandleInput(ev) {
			return true
		}
	}
	return false
}

// Clear detaches every layer and empties the stack.
func (s *Stack) Clear() {
	for _, l := range s.layers {
		l.OnDetach()
	}
	clear(s.layers)
	s.layers = s.layers[:0]
	s.insertIndex = 0
}

// Reinitialize clears the stack and lets build push a fresh layer set.
func (s *Stack) Reinitialize(build func(*Stack)) {
	s.Clear()
	if build != nil {
		build(s)
	}
}

func (s *Stack) Layers() []Layer {
	return slices.Clone(s.layers)
}

func (s *Stack) Names() []string {
	names := make([]string, len(s.layers))
	for i, l := range s.layers {
		names[i] = l.Name()
	}
	return names
}

func (s *Stack) Find(name string) (Layer, bool) {
	for _, l := range s.layers {
		if l.Name() == name {
			return l, true
		}
	}
	return nil, false
}

func (s *Stack) Len() int {
	return len(s.layers)
}

// InsertIndex is the boundary between regular layers and overlays.
func (s *Stack) InsertIndex() int {
	return s.insertIndex
}
