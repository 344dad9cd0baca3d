package entity

import (
	"github.com/milk9111/shroomydoomy/ecs"
	"github.com/milk9111/shroomydoomy/ecs/component"
	"github.com/milk9111/shroomydoomy/prefabs"
)

func buildFromSpec(w *ecs.World, e ecs.Entity, spec *prefabs.ObjectSpec, x, y float64) error {
	t := component.Transform{
		X:        x + spec.Transform.X,
		Y:        y + spec.Transform.Y,
		ScaleX:   spec.Transform.ScaleX,
		ScaleY:   spec.Transform.ScaleY,
		Rotation: spec.Transform.Rotation,
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &t); err != nil {
		return err
	}

	if m := spec.Material; m != nil {
		mat := component.Material{
			Texture: m.Texture,
			UVMin:   component.UV{U: m.UV[0], V: m.UV[1]},
			UVMax:   component.UV{U: m.UV[2], V: m.UV[3]},
			Color:   colorOrWhite(m.Color),
			Tint:    colorOrWhite(m.Tint),
		}
		if mat.UVMax == (component.UV{}) {
			mat.UVMin, mat.UVMax = component.FullUV()
		}
		if err := ecs.Add(w, e, component.MaterialComponent.Kind(), &mat); err != nil {
			return err
		}
	}

	if s := spec.Tile; s != nil {
		if err := ecs.Add(w, e, component.TileComponent.Kind(), &component.Tile{Walkable: s.Walkable}); err != nil {
			return err
		}
	}

	if s := spec.Script; s != nil {
		if err := ecs.Add(w, e, component.ScriptComponent.Kind(), &component.Script{Behavior: s.Behavior}); err != nil {
			return err
		}
	}

	if s := spec.Animation; s != nil {
		if err := ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{Clip: s.Clip, Playing: s.Playing}); err != nil {
			return err
		}
	}

	if s := spec.Font; s != nil {
		scale := s.Scale
		if scale == 0 {
			scale = 1
		}
		font := component.Font{Text: s.Text, Face: s.Face, Scale: scale, Color: colorOrWhite(s.Color)}
		if err := ecs.Add(w, e, component.FontComponent.Kind(), &font); err != nil {
			return err
		}
	}

	if s := spec.Button; s != nil {
		if err := ecs.Add(w, e, component.ButtonComponent.Kind(), &component.Button{Action: s.Action, Width: s.Width, Height: s.Height}); err != nil {
			return err
		}
	}

	if s := spec.RigidBody; s != nil {
		body := component.RigidBody{
			Mass:     s.Mass,
			Width:    s.Width,
			Height:   s.Height,
			Friction: s.Friction,
			Static:   s.Static,
		}
		if err := ecs.Add(w, e, component.RigidBodyComponent.Kind(), &body); err != nil {
			return err
		}
	}

	return nil
}

func colorOrWhite(c *prefabs.YAMLColor) component.Color {
	if c == nil {
		return component.White
	}
	return component.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
