package component

// DestroyEntity marks an entity for teardown this tick. The physics
// bridge removes everything it owns for the entity (constraint before
// body) and then deletes the entity from the world.
type DestroyEntity struct{}

var DestroyEntityComponent = NewComponent[DestroyEntity]()
