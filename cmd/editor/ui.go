package main

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const panelWidth = 260

// EditorActions are the toolbar callbacks that are not tied to a selection.
type EditorActions struct {
	Paste  func()
	Save   func()
	Reload func()
	Pause  func()
}

// EditorUI bundles the widgets the editor updates after building.
type EditorUI struct {
	UI      *ebitenui.UI
	Layers  *LayerPanel
	Objects *ObjectPanel
	status  *widget.Text
}

func (u *EditorUI) SetStatus(msg string) {
	u.status.Label = msg
}

func BuildEditorUI(layers *LayerPanel, objects *ObjectPanel, actions EditorActions) *EditorUI {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}
	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newEditorTheme(&fontFace)
	theme := ui.PrimaryTheme

	leftPanel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(panelWidth, 400),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
				StretchVertical:    true,
			}),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(palette.panel)),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(6),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 8, Right: 8}),
			),
		),
	)

	addLayersSection(leftPanel, theme, &fontFace, layers)
	addObjectsSection(leftPanel, theme, &fontFace, objects)

	file := newButtonRow()
	file.AddChild(newButton(theme, &fontFace, "Paste", actions.Paste))
	file.AddChild(newButton(theme, &fontFace, "Save", actions.Save))
	file.AddChild(newButton(theme, &fontFace, "Reload", actions.Reload))
	leftPanel.AddChild(file)

	play := newButtonRow()
	play.AddChild(newButton(theme, &fontFace, "Pause/Resume", actions.Pause))
	leftPanel.AddChild(play)

	status := widget.NewText(
		widget.TextOpts.Text("", &fontFace, color.White),
	)
	leftPanel.AddChild(status)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(leftPanel)
	ui.Container = root

	return &EditorUI{
		UI:      ui,
		Layers:  layers,
		Objects: objects,
		status:  status,
	}
}
