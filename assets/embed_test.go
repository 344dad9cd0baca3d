package assets

import "testing"

func TestAssetPaths(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{"texture_key", texturePath, "tree", "textures/tree.png"},
		{"texture_prefixed", texturePath, "assets/textures/tree.png", "textures/tree.png"},
		{"audio_key", audioPath, "music_level1", "audio/music_level1.wav"},
		{"audio_abs", audioPath, "/home/x/assets/audio/sfx_click.wav", "audio/sfx_click.wav"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.fn(tc.in); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestLoadAudioEmbedded(t *testing.T) {
	for _, key := range []string{"music_tutorial", "music_level1", "music_level2", "sfx_click"} {
		b, err := LoadAudio(key)
		if err != nil {
			t.Fatalf("load %s: %v", key, err)
		}
		if len(b) < 44 {
			t.Fatalf("%s is too short to be a wav file", key)
		}
	}
	if _, err := LoadAudio("nope"); err == nil {
		t.Fatalf("expected error for a missing sound")
	}
}
