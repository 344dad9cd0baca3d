package prefabs

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// ObjectSpec describes a spawnable game object. Optional sections are nil
// when the prefab does not carry that component.
type ObjectSpec struct {
	Type      string         `yaml:"type"`
	Category  string         `yaml:"category"`
	Transform TransformSpec  `yaml:"transform"`
	Material  *MaterialSpec  `yaml:"material"`
	Tile      *TileSpec      `yaml:"tile"`
	Script    *ScriptSpec    `yaml:"script"`
	Animation *AnimationSpec `yaml:"animation"`
	Font      *FontSpec      `yaml:"font"`
	Button    *ButtonSpec    `yaml:"button"`
	RigidBody *RigidBodySpec `yaml:"rigidbody"`
}

func LoadObjectSpec(name string) (*ObjectSpec, error) {
	spec, err := LoadSpec[ObjectSpec](name)
	if err != nil {
		return nil, err
	}
	if spec.Type == "" {
		return nil, fmt.Errorf("prefabs: %s: missing type", name)
	}
	if spec.Transform.ScaleX == 0 && spec.Transform.ScaleY == 0 {
		spec.Transform.ScaleX, spec.Transform.ScaleY = 1, 1
	}
	return &spec, nil
}

// List returns the embedded prefab file names, sorted.
func List() []string {
	entries, err := fs.ReadDir(PrefabsFS, ".")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !isSpecFile(e.Name()) {
			continue
		}
		out = append(out, path.Base(e.Name()))
	}
	sort.Strings(out)
	return out
}

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type MaterialSpec struct {
	Texture string     `yaml:"texture"`
	UV      [4]float64 `yaml:"uv"`
	Color   *YAMLColor `yaml:"color"`
	Tint    *YAMLColor `yaml:"tint"`
}

type TileSpec struct {
	Walkable bool `yaml:"walkable"`
}

type ScriptSpec struct {
	Behavior string `yaml:"behavior"`
}

type AnimationSpec struct {
	Clip    string `yaml:"clip"`
	Playing bool   `yaml:"playing"`
}

type FontSpec struct {
	Text  string     `yaml:"text"`
	Face  string     `yaml:"face"`
	Scale float64    `yaml:"scale"`
	Color *YAMLColor `yaml:"color"`
}

type ButtonSpec struct {
	Action string  `yaml:"action"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type RigidBodySpec struct {
	Mass     float64 `yaml:"mass"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Friction float64 `yaml:"friction"`
	Static   bool    `yaml:"static"`
}

// YAMLColor is a "#rrggbb" or "#rrggbbaa" color decoded to [0, 1] floats.
type YAMLColor struct {
	R, G, B, A float64
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (float64, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return float64(v) / 255, err
	}

	var err error
	if c.R, err = parse(0); err != nil {
		return err
	}
	if c.G, err = parse(2); err != nil {
		return err
	}
	if c.B, err = parse(4); err != nil {
		return err
	}

	c.A = 1
	if len(s) == 8 {
		if c.A, err = parse(6); err != nil {
			return err
		}
	}
	return nil
}
