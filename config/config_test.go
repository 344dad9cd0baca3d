package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		check   func(t *testing.T, cfg *Config)
		wantErr bool
	}{
		{
			name: "overlay_keeps_defaults",
			body: "[window]\nwidth = 1280\n\n[levels]\nstart = \"level2\"\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 1280 {
					t.Fatalf("expected width 1280, got %d", cfg.Window.Width)
				}
				if cfg.Window.Height != 600 {
					t.Fatalf("expected default height, got %d", cfg.Window.Height)
				}
				if cfg.Levels.Start != "level2" {
					t.Fatalf("expected start level2, got %q", cfg.Levels.Start)
				}
				if cfg.Audio.SampleRate != 44100 {
					t.Fatalf("expected default sample rate, got %d", cfg.Audio.SampleRate)
				}
			},
		},
		{
			name: "editor_and_debug",
			body: "[editor]\nwatch_dirs = [\"a\", \"b\"]\n\n[debug]\nshow_fps = true\n",
			check: func(t *testing.T, cfg *Config) {
				if len(cfg.Editor.WatchDirs) != 2 || cfg.Editor.WatchDirs[1] != "b" {
					t.Fatalf("unexpected watch dirs %v", cfg.Editor.WatchDirs)
				}
				if !cfg.Debug.ShowFPS {
					t.Fatalf("expected show_fps")
				}
			},
		},
		{
			name:    "malformed",
			body:    "[window\nwidth = ",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.body), 0o644); err != nil {
				t.Fatal(err)
			}
			cfg, err := Load(path)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected parse error")
				}
				return
			}
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			tc.check(t, cfg)
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, found, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if found {
		t.Fatalf("expected found=false for missing file")
	}
	if cfg.Window.Title != "Shroomy Doomy" {
		t.Fatalf("expected defaults, got %+v", cfg.Window)
	}
}
