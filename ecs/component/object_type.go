package component

import (
	"fmt"
	"strings"
)

// Category names the layer an object belongs to.
type Category int

const (
	CategoryNone Category = iota
	CategoryUtils
	CategoryBackground
	CategoryEnvironment
	CategoryGame
	CategoryUI
	CategoryFont
	CategoryMainMenu
	CategoryStory
	CategoryEndMenu
	CategoryPauseMenu
	CategoryChestOverlay
)

var categoryNames = [...]string{
	CategoryNone:         "",
	CategoryUtils:        "Utils",
	CategoryBackground:   "Background",
	CategoryEnvironment:  "Environment",
	CategoryGame:         "Game",
	CategoryUI:           "UI",
	CategoryFont:         "Font",
	CategoryMainMenu:     "MainMenu",
	CategoryStory:        "Story",
	CategoryEndMenu:      "EndMenu",
	CategoryPauseMenu:    "PauseMenu",
	CategoryChestOverlay: "ChestOverlay",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory resolves a category token. Unknown tokens yield CategoryNone.
func ParseCategory(s string) (Category, bool) {
	for i, name := range categoryNames {
		if i > 0 && name == s {
			return Category(i), true
		}
	}
	return CategoryNone, false
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	s := string(b)
	if s == "" {
		*c = CategoryNone
		return nil
	}
	parsed, ok := ParseCategory(s)
	if !ok {
		return fmt.Errorf("component: unknown category %q", s)
	}
	*c = parsed
	return nil
}

// Level tags carried by level-scoped objects.
const (
	LevelTutorial = "Tutorial"
	LevelOne      = "Level1"
	LevelTwo      = "Level2"
)

func isLevelTag(s string) bool {
	return s == LevelTutorial || s == LevelOne || s == LevelTwo
}

// ObjectType is the persisted identity of a game object. Name keeps the
// authored type string ("Level1_Game_Tree"); Level and Category are resolved
// once at load time so nothing downstream parses the name again.
type ObjectType struct {
	Name     string   `json:"type"`
	Level    string   `json:"level,omitempty"`
	Category Category `json:"category,omitempty"`
}

// ParseObjectType resolves a legacy type name of the form
// [<Level>_]<Category>[_<rest>].
func ParseObjectType(name string) ObjectType {
	ot := ObjectType{Name: name}
	parts := strings.Split(name, "_")
	if len(parts) == 0 {
		return ot
	}
	i := 0
	if isLevelTag(parts[0]) {
		ot.Level = parts[0]
		i = 1
	}
	if i < len(parts) {
		if c, ok := ParseCategory(parts[i]); ok {
			ot.Category = c
		}
	}
	return ot
}

// Resolve fills Level and Category from Name when they were not persisted.
func (o ObjectType) Resolve() ObjectType {
	parsed := ParseObjectType(o.Name)
	if o.Level == "" {
		o.Level = parsed.Level
	}
	if o.Category == CategoryNone {
		o.Category = parsed.Category
	}
	return o
}

var ObjectTypeComponent = NewComponent[ObjectType]()
