package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/milk9111/shroomydoomy/ecs"
)

// LayerEntry is one row of the layer list.
type LayerEntry struct {
	Index   int
	Name    string
	Visible bool
	Members int
}

func (e LayerEntry) label() string {
	mark := "on "
	if !e.Visible {
		mark = "off"
	}
	return fmt.Sprintf("%2d. [%s] %s (%d)", e.Index+1, mark, e.Name, e.Members)
}

// ObjectEntry is one row of the object list of the selected layer.
type ObjectEntry struct {
	Index  int
	Entity ecs.Entity
	Type   string
}

func (e ObjectEntry) label() string {
	return fmt.Sprintf("%2d. %s", e.Index+1, e.Type)
}

// LayerPanel holds the layer list and remembers the selection across
// refreshes.
type LayerPanel struct {
	list     *widget.List
	entries  []any
	selected string

	onSelect func(name string)
	onToggle func(name string)
	// suppressEvents is set while the list is repopulated so programmatic
	// selections do not look like clicks.
	suppressEvents bool
}

func NewLayerPanel() *LayerPanel {
	return &LayerPanel{}
}

func (lp *LayerPanel) SetLayers(entries []LayerEntry) {
	if lp == nil || lp.list == nil {
		return
	}
	lp.suppressEvents = true
	defer func() { lp.suppressEvents = false }()

	lp.entries = make([]any, len(entries))
	for i, e := range entries {
		lp.entries[i] = e
	}
	lp.list.SetEntries(lp.entries)
	for _, e := range entries {
		if e.Name == lp.selected {
			lp.list.SetSelectedEntry(e)
		}
	}
}

func (lp *LayerPanel) Selected() string {
	return lp.selected
}

// ObjectPanel lists the members of the selected layer in draw order.
type ObjectPanel struct {
	list     *widget.List
	entries  []any
	selected int

	onMove      func(index, delta int)
	onDuplicate func(e ecs.Entity)
	onDelete    func(e ecs.Entity)
	onCopy      func(e ecs.Entity)

	suppressEvents bool
}

func NewObjectPanel() *ObjectPanel {
	return &ObjectPanel{selected: -1}
}

func (op *ObjectPanel) SetObjects(entries []ObjectEntry) {
	if op == nil || op.list == nil {
		return
	}
	op.suppressEvents = true
	defer func() { op.suppressEvents = false }()

	op.entries = make([]any, len(entries))
	for i, e := range entries {
		op.entries[i] = e
	}
	op.list.SetEntries(op.entries)
	if op.selected >= len(entries) {
		op.selected = len(entries) - 1
	}
	if op.selected >= 0 {
		op.list.SetSelectedEntry(op.entries[op.selected])
	}
}

// Selected returns the selected object entry.
func (op *ObjectPanel) Selected() (ObjectEntry, bool) {
	if op.selected < 0 || op.selected >= len(op.entries) {
		return ObjectEntry{}, false
	}
	e, ok := op.entries[op.selected].(ObjectEntry)
	return e, ok
}

// Select moves the selection to index, as after a reorder.
func (op *ObjectPanel) Select(index int) {
	op.selected = index
}
