package component

// Color is a linear RGBA color with components in [0, 1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

var White = Color{R: 1, G: 1, B: 1, A: 1}

// Mul multiplies two colors component-wise.
func (c Color) Mul(o Color) Color {
	return Color{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B, A: c.A * o.A}
}

// UV is a normalized texture coordinate.
type UV struct {
	U float64 `json:"u"`
	V float64 `json:"v"`
}

// Material describes how an entity's quad is textured and colored. Texture
// is an opaque asset key resolved by the renderer.
type Material struct {
	Texture string `json:"texture"`
	UVMin   UV     `json:"uv_min"`
	UVMax   UV     `json:"uv_max"`
	Color   Color  `json:"color"`
	Tint    Color  `json:"tint"`
}

// FullUV returns a material's UV rect covering the whole texture.
func FullUV() (UV, UV) {
	return UV{U: 0, V: 0}, UV{U: 1, V: 1}
}

// Final returns the color submitted to the renderer.
func (m Material) Final() Color {
	return m.Color.Mul(m.Tint)
}

var MaterialComponent = NewComponent[Material]()
