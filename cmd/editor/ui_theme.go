package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// editorPalette names every color the panel draws with.
type editorPalette struct {
	panel     color.RGBA
	list      color.RGBA
	entry     color.RGBA
	selected  color.RGBA
	selecting color.RGBA
	highlight color.RGBA
	button    color.RGBA
	disabled  color.RGBA
}

var palette = editorPalette{
	panel:     color.RGBA{32, 36, 40, 235},
	list:      color.RGBA{222, 226, 218, 255},
	entry:     color.RGBA{16, 18, 20, 255},
	selected:  color.RGBA{20, 90, 40, 255},
	selecting: color.RGBA{200, 235, 200, 255},
	highlight: color.RGBA{170, 220, 170, 255},
	button:    color.RGBA{176, 184, 172, 255},
	disabled:  color.RGBA{96, 100, 96, 255},
}

func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

// shade moves every channel of c by d, clamped to the byte range.
func shade(c color.RGBA, d int) color.RGBA {
	ch := func(v uint8) uint8 {
		return uint8(min(max(int(v)+d, 0), 255))
	}
	return color.RGBA{ch(c.R), ch(c.G), ch(c.B), c.A}
}

func buttonImage(base color.RGBA) *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     solidNineSlice(base),
		Hover:    solidNineSlice(shade(base, 20)),
		Pressed:  solidNineSlice(shade(base, -20)),
		Disabled: solidNineSlice(palette.disabled),
	}
}

// newEditorTheme covers the two widget kinds the panel builds: entry lists
// and buttons.
func newEditorTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		ListTheme: &widget.ListParams{
			EntryFace: fontFace,
			EntryColor: &widget.ListEntryColor{
				Unselected:          palette.entry,
				Selected:            palette.selected,
				DisabledUnselected:  shade(palette.disabled, 32),
				DisabledSelected:    palette.disabled,
				SelectingBackground: palette.selecting,
				SelectedBackground:  palette.highlight,
			},
			ScrollContainerImage: &widget.ScrollContainerImage{
				Idle: solidNineSlice(palette.list),
				Mask: solidNineSlice(palette.list),
			},
		},
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(palette.panel),
		},
		ButtonTheme: &widget.ButtonParams{
			Image:    buttonImage(palette.button),
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle:     palette.entry,
				Disabled: palette.list,
			},
		},
	}
}
