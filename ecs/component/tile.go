package component

type Tile struct {
	Walkable    bool `json:"walkable"`
	Highlighted bool `json:"highlighted"`
	Active      bool `json:"active"`
	// Occupant is the ecs.Entity standing on the tile, 0 when empty.
	Occupant uint64 `json:"-"`
}

var TileComponent = NewComponent[Tile]()
