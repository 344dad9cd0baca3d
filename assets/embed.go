package assets

import (
	"bytes"
	"embed"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed textures/*.png audio/*.wav
var assetsFS embed.FS

// Placeholder is drawn for texture keys that have no image.
const Placeholder = "placeholder"

// LoadImage loads a texture by key ("tree" or "textures/tree.png"), preferring
// a copy on disk under assets/.
func LoadImage(key string) (*ebiten.Image, error) {
	b, err := LoadFile(texturePath(key))
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadAudio returns the encoded bytes of a sound by key.
func LoadAudio(key string) ([]byte, error) {
	return LoadFile(audioPath(key))
}

// LoadFile loads an asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	if b, err := os.ReadFile(filepath.Join("assets", filepath.FromSlash(clean))); err == nil {
		return b, nil
	}
	return assetsFS.ReadFile(clean)
}

func texturePath(key string) string {
	s := cleanAssetPath(key)
	if !strings.HasPrefix(s, "textures/") {
		s = "textures/" + s
	}
	if filepath.Ext(s) == "" {
		s += ".png"
	}
	return s
}

func audioPath(key string) string {
	s := cleanAssetPath(key)
	if !strings.HasPrefix(s, "audio/") {
		s = "audio/" + s
	}
	if filepath.Ext(s) == "" {
		s += ".wav"
	}
	return s
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}
