package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

var ErrUnknownLevel = errors.New("levels: unknown level file")

// Data files shipped with the game.
const (
	CommonFile     = "common.json"
	TutorialFile   = "tutorial.json"
	Level1File     = "level1.json"
	Level2File     = "level2.json"
	AnimationsFile = "animations.json"
)

// Source reads level data, preferring files under Dir so edits made by the
// editor are picked up without rebuilding.
type Source struct {
	Dir string
}

func NewSource(dir string) *Source {
	return &Source{Dir: dir}
}

func (s *Source) Read(name string) ([]byte, error) {
	clean := cleanLevelPath(name)
	if clean == "" {
		return nil, fmt.Errorf("%w: empty name", ErrUnknownLevel)
	}
	if s != nil && s.Dir != "" {
		if data, err := os.ReadFile(filepath.Join(s.Dir, clean)); err == nil {
			return data, nil
		}
	}
	data, err := fs.ReadFile(LevelsFS, clean)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownLevel, clean)
		}
		return nil, fmt.Errorf("read level %s: %w", clean, err)
	}
	return data, nil
}

// Path returns where Write would store name, or "" when the source has no
// disk directory.
func (s *Source) Path(name string) string {
	if s == nil || s.Dir == "" {
		return ""
	}
	return filepath.Join(s.Dir, cleanLevelPath(name))
}

func (s *Source) Write(name string, data []byte) error {
	p := s.Path(name)
	if p == "" {
		return fmt.Errorf("write level %s: no level directory configured", name)
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("write level %s: %w", name, err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("write level %s: %w", name, err)
	}
	return nil
}

// List returns the embedded level file names.
func List() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		out = append(out, e.Name())
	}
	sort.Strings(out)
	return out
}

func cleanLevelPath(name string) string {
	if name == "" {
		return ""
	}
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "levels/")
	if !strings.HasSuffix(s, ".json") {
		s += ".json"
	}
	return s
}
