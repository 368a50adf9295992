package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/hookshift/ecs"
	"github.com/milk9111/hookshift/ecs/component"
)

const (
	collisionTypeStatic cp.CollisionType = iota + 1
	collisionTypeObject
)

// contactRecord is one contact captured during the step. The normal
// points from shape A toward shape B, matching the arbiter convention.
type contactRecord struct {
	a      ecs.Entity
	b      ecs.Entity
	normal cp.Vector
}

// installContactHandlers buffers every solved contact into the room's
// record list. The records are drained by aggregateCollisions after the
// step; simulation handles never leak past this file.
func (rw *roomWorld) installContactHandlers() {
	record := func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		room, ok := userData.(*roomWorld)
		if !ok || room == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		entA, okA := room.shapeOwner[shapeA]
		entB, okB := room.shapeOwner[shapeB]
		if !okA && !okB {
			return true
		}
		room.contacts = append(room.contacts, contactRecord{a: entA, b: entB, normal: arb.Normal()})
		return true
	}

	objectStatic := rw.space.NewCollisionHandler(collisionTypeObject, collisionTypeStatic)
	objectStatic.UserData = rw
	objectStatic.PreSolveFunc = record

	objectObject := rw.space.NewCollisionHandler(collisionTypeObject, collisionTypeObject)
	objectObject.UserData = rw
	objectObject.PreSolveFunc = record
}

// aggregateCollisions folds the tick's buffered contacts into gameplay
// collision state: reset, accumulate normals on both sides, then update
// the last-collision bookkeeping with the tick's delta time.
func (ps *PhysicsSystem) aggregateCollisions(w *ecs.World, dt float64) {
	ecs.ForEach(w, component.CollisionSetComponent.Kind(), func(_ ecs.Entity, cs *component.CollisionSet) {
		cs.Colliding = false
		cs.NormalX, cs.NormalY = 0, 0
	})

	for _, roomEnt := range ps.order {
		rw := ps.rooms[roomEnt]
		if rw == nil {
			continue
		}
		for _, c := range rw.contacts {
			addContactNormal(w, c.a, c.normal.X, c.normal.Y)
			addContactNormal(w, c.b, -c.normal.X, -c.normal.Y)
		}
		rw.contacts = rw.contacts[:0]
	}

	ecs.ForEach(w, component.CollisionSetComponent.Kind(), func(_ ecs.Entity, cs *component.CollisionSet) {
		if cs.Colliding {
			cs.LastNormalX = cs.NormalX
			cs.LastNormalY = cs.NormalY
			cs.TimeSinceCollision = 0
			return
		}
		cs.TimeSinceCollision += dt
	})
}

func addContactNormal(w *ecs.World, e ecs.Entity, nx, ny float64) {
	cs, ok := ecs.Get(w, e, component.CollisionSetComponent.Kind())
	if !ok {
		return
	}
	cs.Colliding = true
	cs.NormalX += nx
	cs.NormalY += ny
}
