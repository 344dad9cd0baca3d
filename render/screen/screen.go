// Package screen draws render records with ebiten.
package screen

import (
	"bytes"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/shroomydoomy/render"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

type drawOp struct {
	quad   render.Quad
	text   render.Text
	isText bool
}

// Renderer buffers quads and text between BeginBatch and Flush and draws
// them, in submission order, onto the current target.
type Renderer struct {
	target   *ebiten.Image
	textures *TextureCache
	faces    map[string]text.Face
	fallback text.Face
	batch    []drawOp
	log      *zap.Logger
}

func NewRenderer(textures *TextureCache, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	if textures == nil {
		textures = NewTextureCache(log)
	}
	r := &Renderer{
		textures: textures,
		faces:    map[string]text.Face{},
		fallback: text.NewGoXFace(basicfont.Face7x13),
		log:      log,
	}
	r.faces["small"] = r.fallback
	if src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF)); err == nil {
		r.faces["regular"] = &text.GoTextFace{Source: src, Size: 16}
	} else {
		log.Warn("load regular font face", zap.Error(err))
	}
	return r
}

// SetTarget selects the image drawn to by Flush. It is set once per frame
// from ebiten's Draw.
func (r *Renderer) SetTarget(img *ebiten.Image) {
	r.target = img
}

func (r *Renderer) Textures() *TextureCache {
	return r.textures
}

func (r *Renderer) BeginBatch() {
	r.batch = r.batch[:0]
}

func (r *Renderer) DrawQuad(q render.Quad) {
	r.batch = append(r.batch, drawOp{quad: q})
}

func (r *Renderer) RenderText(t render.Text) {
	r.batch = append(r.batch, drawOp{text: t, isText: true})
}

func (r *Renderer) EndBatch() {}

func (r *Renderer) Flush() {
	if r.target == nil {
		r.batch = r.batch[:0]
		return
	}
	for _, o := range r.batch {
		if o.isText {
			r.drawText(o.text)
		} else {
			r.drawQuad(o.quad)
		}
	}
	r.batch = r.batch[:0]
}

func (r *Renderer) drawQuad(q render.Quad) {
	if q.ScaleX == 0 && q.ScaleY == 0 || q.Color.A <= 0 {
		return
	}
	img := subImage(r.textures.Get(q.Texture), q)
	w := float64(img.Bounds().Dx())
	h := float64(img.Bounds().Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(q.ScaleX, q.ScaleY)
	op.GeoM.Rotate(q.Rotation)
	op.GeoM.Translate(q.X, q.Y)
	op.ColorScale.Scale(float32(q.Color.R), float32(q.Color.G), float32(q.Color.B), float32(q.Color.A))
	op.Filter = ebiten.FilterNearest
	r.target.DrawImage(img, op)
}

func (r *Renderer) drawText(t render.Text) {
	if t.Scale == 0 || t.Color.A <= 0 || t.Text == "" {
		return
	}
	face, ok := r.faces[t.Face]
	if !ok {
		face = r.fallback
	}
	w, h := text.Measure(t.Text, face, 0)

	op := &text.DrawOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(t.Scale, t.Scale)
	op.GeoM.Translate(t.X, t.Y)
	op.ColorScale.Scale(float32(t.Color.R), float32(t.Color.G), float32(t.Color.B), float32(t.Color.A))
	text.Draw(r.target, t.Text, face, op)
}

func subImage(img *ebiten.Image, q render.Quad) *ebiten.Image {
	b := img.Bounds()
	if q.UVMin.U == 0 && q.UVMin.V == 0 && q.UVMax.U == 1 && q.UVMax.V == 1 {
		return img
	}
	fw, fh := float64(b.Dx()), float64(b.Dy())
	rect := image.Rect(
		b.Min.X+int(math.Round(q.UVMin.U*fw)),
		b.Min.Y+int(math.Round(q.UVMin.V*fh)),
		b.Min.X+int(math.Round(q.UVMax.U*fw)),
		b.Min.Y+int(math.Round(q.UVMax.V*fh)),
	)
	if rect.Empty() {
		return img
	}
	if sub, ok := img.SubImage(rect).(*ebiten.Image); ok {
		return sub
	}
	return img
}
