package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/hookshift/ecs"
)

// PhysicsSystem bridges gameplay components to per-room Chipmunk
// spaces. It exclusively owns every simulation-side handle; gameplay
// components stay pure data. One isolated space exists per room entity,
// so bodies in different rooms can never interact even when their
// coordinates overlap.
type PhysicsSystem struct {
	rooms map[ecs.Entity]*roomWorld
	order []ecs.Entity
}

// roomWorld is the simulation state owned for one room entity.
type roomWorld struct {
	space      *cp.Space
	walls      [4]*cp.Shape
	forces     *forceGenerator
	objects    map[ecs.Entity]*physicalObject
	joints     map[ecs.Entity]*physicalConstraint
	shapeOwner map[*cp.Shape]ecs.Entity
	contacts   []contactRecord
}

// physicalObject wraps the handles owned for one gameplay entity inside
// a room. The visited flag is recomputed every tick by the mark phase.
type physicalObject struct {
	body       *cp.Body
	shape      *cp.Shape
	chainJoint *cp.Constraint
	parent     ecs.Entity
	static     bool
	visited    bool
}

// physicalConstraint wraps a pairwise pin joint keyed by its child
// (owning) entity.
type physicalConstraint struct {
	joint   *cp.Constraint
	room    ecs.Entity
	target  ecs.Entity
	visited bool
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{rooms: make(map[ecs.Entity]*roomWorld)}
}

// Update runs one bridge tick. The pass order is observable gameplay
// behavior: stepping before newly created bodies sync would drop a
// frame of position, and sweeping before the mark passes would reap
// live objects.
func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	dt := w.DeltaTime()

	ps.ensureRooms(w)
	ps.clearVisited()
	ps.syncObjects(w)
	ps.syncConstraints(w)
	ps.sweepUnvisited(w)
	ps.resolveAim(w)
	ps.applyForces(w)
	ps.destroyMarked(w)

	for _, roomEnt := range ps.order {
		if rw := ps.rooms[roomEnt]; rw != nil {
			rw.space.Step(dt)
		}
	}

	ps.aggregateCollisions(w, dt)
}

// RoomSpace returns the Chipmunk space backing a room, or nil when the
// room is not registered. Exposed for the debug renderer and tests.
func (ps *PhysicsSystem) RoomSpace(room ecs.Entity) *cp.Space {
	if ps == nil {
		return nil
	}
	rw := ps.rooms[room]
	if rw == nil {
		return nil
	}
	return rw.space
}

// Reset drops every room world and all owned handles. Used when the
// scene is reloaded; bodies are rebuilt lazily from components on the
// next tick.
func (ps *PhysicsSystem) Reset() {
	if ps == nil {
		return
	}
	ps.rooms = make(map[ecs.Entity]*roomWorld)
	ps.order = nil
}

func (ps *PhysicsSystem) clearVisited() {
	for _, rw := range ps.rooms {
		for _, po := range rw.objects {
			po.visited = false
		}
		for _, pc := range rw.joints {
			pc.visited = false
		}
	}
}

// resolveBody maps an entity to its body within a room. The room entity
// itself resolves to the space's static frame, as does tracked static
// terrain. Returns nil when the entity has no body in this room yet.
func (rw *roomWorld) resolveBody(roomEnt, e ecs.Entity) *cp.Body {
	if e == roomEnt {
		return rw.space.StaticBody
	}
	po := rw.objects[e]
	if po == nil {
		return nil
	}
	if po.static {
		return rw.space.StaticBody
	}
	return po.body
}
