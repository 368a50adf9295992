package component

// Position is an object's location in room coordinates. For simulated
// objects this is authoritative only after the physics bridge has run;
// the bridge copies the body position back here every tick.
type Position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

var PositionComponent = NewComponent[Position]()

// Velocity is an object's linear velocity. Flows gameplay -> simulation
// exactly once at body creation, then simulation -> gameplay every tick.
// Its presence is what makes an object dynamic rather than terrain.
type Velocity struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

var VelocityComponent = NewComponent[Velocity]()
