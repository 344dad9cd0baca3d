package screen

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/shroomydoomy/assets"
	"go.uber.org/zap"
)

// TextureCache loads textures by key on first use. Keys that fail to load
// resolve to the placeholder texture and are only reported once.
type TextureCache struct {
	images  map[string]*ebiten.Image
	missing map[string]bool
	log     *zap.Logger
}

func NewTextureCache(log *zap.Logger) *TextureCache {
	if log == nil {
		log = zap.NewNop()
	}
	return &TextureCache{
		images:  map[string]*ebiten.Image{},
		missing: map[string]bool{},
		log:     log,
	}
}

// Register stores an image by key.
func (c *TextureCache) Register(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	c.images[key] = img
}

func (c *TextureCache) Get(key string) *ebiten.Image {
	if img, ok := c.images[key]; ok {
		return img
	}
	img, err := assets.LoadImage(key)
	if err == nil {
		c.images[key] = img
		return img
	}
	if !c.missing[key] {
		c.missing[key] = true
		c.log.Warn("texture not found, using placeholder", zap.String("texture", key), zap.Error(err))
	}
	return c.placeholder()
}

// Purge drops every cached texture so edited files are read again.
func (c *TextureCache) Purge() {
	c.images = map[string]*ebiten.Image{}
	c.missing = map[string]bool{}
}

func (c *TextureCache) placeholder() *ebiten.Image {
	if img, ok := c.images[assets.Placeholder]; ok {
		return img
	}
	img, err := assets.LoadImage(assets.Placeholder)
	if err != nil {
		img = ebiten.NewImage(16, 16)
		img.Fill(color.RGBA{R: 255, B: 255, A: 255})
	}
	c.images[assets.Placeholder] = img
	return img
}
