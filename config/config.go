package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Window  WindowConfig  `toml:"window"`
	Logging LoggingConfig `toml:"logging"`
	Levels  LevelsConfig  `toml:"levels"`
	Audio   AudioConfig   `toml:"audio"`
	Editor  EditorConfig  `toml:"editor"`
	Debug   DebugConfig   `toml:"debug"`
}

type WindowConfig struct {
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Fullscreen bool   `toml:"fullscreen"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type LevelsConfig struct {
	Start string `toml:"start"` // "tutorial", "level1" or "level2"
	Dir   string `toml:"dir"`   // disk override for level data, empty for embedded only
	// StoryNext is the level the story cutscene hands over to.
	StoryNext string `toml:"story_next"`
}

type AudioConfig struct {
	SampleRate  int     `toml:"sample_rate"`
	MusicVolume float64 `toml:"music_volume"`
	SFXVolume   float64 `toml:"sfx_volume"`
	FadeSeconds float64 `toml:"fade_seconds"`
	Dir         string  `toml:"dir"`
	Muted       bool    `toml:"muted"`
}

type EditorConfig struct {
	WatchDirs []string `toml:"watch_dirs"`
	SaveDir   string   `toml:"save_dir"`
}

type DebugConfig struct {
	ShowFPS bool `toml:"show_fps"`
	Physics bool `toml:"physics"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but falls back to the defaults when the
// file does not exist. The second result reports whether a file was read.
func LoadOrDefault(path string) (*Config, bool, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return defaults(), false, nil
	}
	return nil, false, err
}

func Default() *Config {
	return defaults()
}

func defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Shroomy Doomy",
			Width:  800,
			Height: 600,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Levels: LevelsConfig{
			Start:     "tutorial",
			Dir:       "levels",
			StoryNext: "tutorial",
		},
		Audio: AudioConfig{
			SampleRate:  44100,
			MusicVolume: 0.6,
			SFXVolume:   0.8,
			FadeSeconds: 1.5,
			Dir:         "assets/audio",
		},
		Editor: EditorConfig{
			WatchDirs: []string{"levels", "prefabs", "prefabs/scripts"},
			SaveDir:   "levels",
		},
	}
}
