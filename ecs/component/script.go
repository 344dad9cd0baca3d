package component

type Script struct {
	Behavior string `json:"behavior"`
	Active   bool   `json:"active"`
	// Instance is owned by the script runtime and rebuilt on every restart.
	Instance any `json:"-"`
}

var ScriptComponent = NewComponent[Script]()
