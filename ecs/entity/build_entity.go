package entity

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/milk9111/shroomydoomy/ecs"
	"github.com/milk9111/shroomydoomy/ecs/component"
)

// componentCodec moves one component kind between the registry and its
// persisted JSON form.
type componentCodec struct {
	decode func(w *ecs.World, e ecs.Entity, raw json.RawMessage) error
	encode func(w *ecs.World, e ecs.Entity) (json.RawMessage, bool, error)
}

func codecFor[T any](kind component.ComponentKind[T], defaults func() T) componentCodec {
	return componentCodec{
		decode: func(w *ecs.World, e ecs.Entity, raw json.RawMessage) error {
			var v T
			if defaults != nil {
				v = defaults()
			}
			if len(raw) > 0 {
				if err := json.Unmarshal(raw, &v); err != nil {
					return err
				}
			}
			return ecs.Add(w, e, kind, &v)
		},
		encode: func(w *ecs.World, e ecs.Entity) (json.RawMessage, bool, error) {
			v, ok := ecs.Get(w, e, kind)
			if !ok {
				return nil, false, nil
			}
			data, err := json.Marshal(v)
			return data, true, err
		},
	}
}

var componentRegistry = map[string]componentCodec{
	"transform": codecFor(component.TransformComponent.Kind(), func() component.Transform {
		return component.Transform{ScaleX: 1, ScaleY: 1}
	}),
	"material": codecFor(component.MaterialComponent.Kind(), func() component.Material {
		minUV, maxUV := component.FullUV()
		return component.Material{UVMin: minUV, UVMax: maxUV, Color: component.White, Tint: component.White}
	}),
	"tile":      codecFor(component.TileComponent.Kind(), nil),
	"script":    codecFor(component.ScriptComponent.Kind(), nil),
	"animation": codecFor(component.AnimationComponent.Kind(), nil),
	"font": codecFor(component.FontComponent.Kind(), func() component.Font {
		return component.Font{Scale: 1, Color: component.White}
	}),
	"button":    codecFor(component.ButtonComponent.Kind(), nil),
	"rigidbody": codecFor(component.RigidBodyComponent.Kind(), nil),
}

var componentBuildOrder = []string{
	"transform",
	"material",
	"tile",
	"script",
	"animation",
	"font",
	"button",
	"rigidbody",
}

// decodeComponents adds every component in raw to e. Unknown component names
// are an error so typos in level files do not silently drop data.
func decodeComponents(w *ecs.World, e ecs.Entity, raw map[string]json.RawMessage) error {
	remaining := make(map[string]json.RawMessage, len(raw))
	for k, v := range raw {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		data, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name].decode(w, e, data); err != nil {
			return fmt.Errorf("add %q: %w", name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		return fmt.Errorf("no decoder for components %v", names)
	}
	return nil
}

func encodeComponents(w *ecs.World, e ecs.Entity) (map[string]json.RawMessage, error) {
	out := make(map[string]json.RawMessage, len(componentBuildOrder))
	for _, name := range componentBuildOrder {
		data, ok, err := componentRegistry[name].encode(w, e)
		if err != nil {
			return nil, fmt.Errorf("encode %q: %w", name, err)
		}
		if ok {
			out[name] = data
		}
	}
	return out, nil
}
