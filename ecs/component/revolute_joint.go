package component

// RevoluteJoint declares authorial intent to pin this entity to another.
// The physics bridge is the only consumer that turns it into simulation
// state. LinkedToEntity may be the room itself, which pins against the
// room's static frame.
//
// When MultibodyLink is true the entity is not joined by a pairwise
// constraint: instead its body is created as a chain link rigidly
// articulated to the linked entity's body. This is how hook chains are
// grown.
type RevoluteJoint struct {
	LinkedToEntity uint64 `yaml:"linked_to_entity"` // ecs.Entity is uint64
	MultibodyLink  bool   `yaml:"multibody_link"`
}

var RevoluteJointComponent = NewComponent[RevoluteJoint]()
