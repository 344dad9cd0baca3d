// Package render describes draw submission independently of the graphics
// backend. Layers build Quad and Text records and hand them to a Renderer.
package render

import "github.com/milk9111/shroomydoomy/ecs/component"

// Quad is one textured, rotated rectangle centered on (X, Y). Its size is
// the texture region's pixel size multiplied by the scale.
type Quad struct {
	X, Y           float64
	ScaleX, ScaleY float64
	Rotation       float64 // radians
	Texture        string
	UVMin, UVMax   component.UV
	Color          component.Color
}

type Text struct {
	X, Y  float64
	Scale float64
	Text  string
	Face  string
	Color component.Color
}

// Renderer batches draw calls. Calls between BeginBatch and EndBatch may be
// buffered; Flush submits everything buffered so far.
type Renderer interface {
	BeginBatch()
	DrawQuad(q Quad)
	RenderText(t Text)
	EndBatch()
	Flush()
}

// Nop discards every draw call.
type Nop struct{}

func (Nop) BeginBatch()     {}
func (Nop) DrawQuad(Quad)   {}
func (Nop) RenderText(Text) {}
func (Nop) EndBatch()       {}
func (Nop) Flush()          {}

// WithAlpha returns c with its alpha multiplied by opacity.
func WithAlpha(c component.Color, opacity float64) component.Color {
	c.A *= opacity
	return c
}

// QuadFor builds the quad for an entity's transform and material.
func QuadFor(t component.Transform, m component.Material, opacity float64) Quad {
	return Quad{
		X:        t.X,
		Y:        t.Y,
		ScaleX:   t.ScaleX,
		ScaleY:   t.ScaleY,
		Rotation: t.Rotation,
		Texture:  m.Texture,
		UVMin:    m.UVMin,
		UVMax:    m.UVMax,
		Color:    WithAlpha(m.Final(), opacity),
	}
}
