package engine

import (
	"fmt"
	"strings"

	"github.com/milk9111/shroomydoomy/ecs/component"
	"github.com/milk9111/shroomydoomy/levels"
)

// Level is the level state machine's discriminator.
type Level int

const (
	Tutorial Level = iota
	Level1
	Level2
)

var levelInfo = [...]struct {
	prefix string
	file   string
	track  string
}{
	Tutorial: {component.LevelTutorial, levels.TutorialFile, "music_tutorial"},
	Level1:   {component.LevelOne, levels.Level1File, "music_level1"},
	Level2:   {component.LevelTwo, levels.Level2File, "music_level2"},
}

func (l Level) valid() bool {
	return l >= 0 && int(l) < len(levelInfo)
}

// Prefix is the tag carried by every object that belongs to the level.
func (l Level) Prefix() string {
	if !l.valid() {
		return ""
	}
	return levelInfo[l].prefix
}

// DataFile names the level's file in the level data source.
func (l Level) DataFile() string {
	if !l.valid() {
		return ""
	}
	return levelInfo[l].file
}

// Track is the music key played while the level is current.
func (l Level) Track() string {
	if !l.valid() {
		return ""
	}
	return levelInfo[l].track
}

func (l Level) String() string {
	if !l.valid() {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelInfo[l].prefix
}

// Next is the level that follows l, and false after the last level.
func (l Level) Next() (Level, bool) {
	if l+1 >= Level(len(levelInfo)) || !l.valid() {
		return l, false
	}
	return l + 1, true
}

// ParseLevel accepts a level prefix, its data file name, or the short
// names used on the command line ("tutorial", "level1", "level2").
func ParseLevel(s string) (Level, error) {
	key := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(s), ".json"))
	for i, info := range levelInfo {
		if key == strings.ToLower(info.prefix) || key == strings.TrimSuffix(info.file, ".json") {
			return Level(i), nil
		}
	}
	return Tutorial, fmt.Errorf("engine: unknown level %q", s)
}
