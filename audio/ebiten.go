package audio

import (
	"bytes"
	"fmt"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/milk9111/shroomydoomy/assets"
)

// NewLoader returns a Loader that decodes wav assets into players on ctx.
func NewLoader(ctx *ebaudio.Context) Loader {
	return func(key string) (Voice, error) {
		b, err := assets.LoadAudio(key)
		if err != nil {
			return nil, fmt.Errorf("audio: load %q: %w", key, err)
		}
		stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("audio: decode wav %q: %w", key, err)
		}
		p, err := ctx.NewPlayer(stream)
		if err != nil {
			return nil, fmt.Errorf("audio: player %q: %w", key, err)
		}
		return p, nil
	}
}
