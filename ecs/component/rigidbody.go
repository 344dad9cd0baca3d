package component

import "github.com/jakecoffman/cp"

type RigidBody struct {
	Mass     float64 `json:"mass"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Friction float64 `json:"friction"`
	Static   bool    `json:"static"`

	Body  *cp.Body  `json:"-"`
	Shape *cp.Shape `json:"-"`
}

var RigidBodyComponent = NewComponent[RigidBody]()
