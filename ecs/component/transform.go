package component

type Transform struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	ScaleX   float64 `json:"scale_x"`
	ScaleY   float64 `json:"scale_y"`
	Rotation float64 `json:"rotation"`
}

// Hidden reports whether the transform has been collapsed to zero size.
func (t Transform) Hidden() bool {
	return t.ScaleX == 0 && t.ScaleY == 0
}

var TransformComponent = NewComponent[Transform]()
