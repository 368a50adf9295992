package component

// Behavior attaches a tengo script to an entity. The script is compiled
// once and re-run every tick with the entity's position and velocity as
// inputs; it drives the entity by assigning force and impulse outputs.
type Behavior struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
}

var BehaviorComponent = NewComponent[Behavior]()
