package component

type Font struct {
	Text  string  `json:"text"`
	Face  string  `json:"face"`
	Scale float64 `json:"scale"`
	Color Color   `json:"color"`
}

var FontComponent = NewComponent[Font]()
