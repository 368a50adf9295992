package ecs

import "strconv"

type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

func (e Entity) Valid() bool {
	return e.id() != 0
}

// Ref returns the raw form stored inside components. Component structs
// keep entity references as uint64 so the component package has no
// dependency back on ecs.
func (e Entity) Ref() uint64 {
	return uint64(e)
}

// FromRef rebuilds an entity handle from a component-stored reference.
func FromRef(ref uint64) Entity {
	return Entity(ref)
}
