package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var labelColor = &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}

func newButtonRow() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
			),
		),
	)
}

func newButton(theme *widget.Theme, fontFace *text.Face, label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(label, fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(56, 26)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

func addLayersSection(parent *widget.Container, theme *widget.Theme, fontFace *text.Face, layerPanel *LayerPanel) {
	parent.AddChild(widget.NewLabel(widget.LabelOpts.Text("Layers", fontFace, labelColor)))

	layerList := widget.NewList(
		widget.ListOpts.Entries([]any{}),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			if entry, ok := e.(LayerEntry); ok {
				return entry.label()
			}
			return ""
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			entry, ok := args.Entry.(LayerEntry)
			if !ok || layerPanel.suppressEvents {
				return
			}
			layerPanel.selected = entry.Name
			if layerPanel.onSelect != nil {
				layerPanel.onSelect(entry.Name)
			}
		}),
	)
	parent.AddChild(layerList)
	layerPanel.list = layerList

	row := newButtonRow()
	row.AddChild(newButton(theme, fontFace, "Show/Hide", func() {
		if layerPanel.onToggle != nil && layerPanel.selected != "" {
			layerPanel.onToggle(layerPanel.selected)
		}
	}))
	parent.AddChild(row)
}

func addObjectsSection(parent *widget.Container, theme *widget.Theme, fontFace *text.Face, objectPanel *ObjectPanel) {
	parent.AddChild(widget.NewLabel(widget.LabelOpts.Text("Objects", fontFace, labelColor)))

	objectList := widget.NewList(
		widget.ListOpts.Entries([]any{}),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			if entry, ok := e.(ObjectEntry); ok {
				return entry.label()
			}
			return ""
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			entry, ok := args.Entry.(ObjectEntry)
			if !ok || objectPanel.suppressEvents {
				return
			}
			objectPanel.selected = entry.Index
		}),
	)
	parent.AddChild(objectList)
	objectPanel.list = objectList

	withSelected := func(fn func(ObjectEntry)) func() {
		return func() {
			if sel, ok := objectPanel.Selected(); ok {
				fn(sel)
			}
		}
	}

	order := newButtonRow()
	order.AddChild(newButton(theme, fontFace, "Up", withSelected(func(sel ObjectEntry) {
		if objectPanel.onMove != nil {
			objectPanel.onMove(sel.Index, -1)
		}
	})))
	order.AddChild(newButton(theme, fontFace, "Down", withSelected(func(sel ObjectEntry) {
		if objectPanel.onMove != nil {
			objectPanel.onMove(sel.Index, 1)
		}
	})))
	parent.AddChild(order)

	edit := newButtonRow()
	edit.AddChild(newButton(theme, fontFace, "Duplicate", withSelected(func(sel ObjectEntry) {
		if objectPanel.onDuplicate != nil {
			objectPanel.onDuplicate(sel.Entity)
		}
	})))
	edit.AddChild(newButton(theme, fontFace, "Copy", withSelected(func(sel ObjectEntry) {
		if objectPanel.onCopy != nil {
			objectPanel.onCopy(sel.Entity)
		}
	})))
	edit.AddChild(newButton(theme, fontFace, "Delete", withSelected(func(sel ObjectEntry) {
		if objectPanel.onDelete != nil {
			objectPanel.onDelete(sel.Entity)
		}
	})))
	parent.AddChild(edit)
}
