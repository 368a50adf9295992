package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hookshift/common"
	"github.com/milk9111/hookshift/ecs"
	"github.com/milk9111/hookshift/ecs/component"
)

// ensureRooms registers a fresh isolated space for every Room entity
// with a Size. Idempotent; a room without a Size is simply deferred
// until one appears.
func (ps *PhysicsSystem) ensureRooms(w *ecs.World) {
	ecs.ForEach2(w, component.RoomComponent.Kind(), component.SizeComponent.Kind(), func(e ecs.Entity, _ *component.Room, size *component.Size) {
		if _, ok := ps.rooms[e]; ok {
			return
		}
		if size.Width <= 0 || size.Height <= 0 {
			return
		}

		space := cp.NewSpace()
		space.Iterations = common.SpaceIterations
		space.SetGravity(cp.Vector{X: 0, Y: common.Gravity})

		rw := &roomWorld{
			space:      space,
			forces:     newForceGenerator(),
			objects:    make(map[ecs.Entity]*physicalObject),
			joints:     make(map[ecs.Entity]*physicalConstraint),
			shapeOwner: make(map[*cp.Shape]ecs.Entity),
		}

		segments := []struct {
			a cp.Vector
			b cp.Vector
		}{
			{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: size.Width, Y: 0}},                     // north
			{a: cp.Vector{X: 0, Y: size.Height}, b: cp.Vector{X: size.Width, Y: size.Height}}, // south
			{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: size.Height}},                    // west
			{a: cp.Vector{X: size.Width, Y: 0}, b: cp.Vector{X: size.Width, Y: size.Height}},  // east
		}
		for i, seg := range segments {
			shape := cp.NewSegment(space.StaticBody, seg.a, seg.b, common.WallThickness)
			shape.SetFriction(common.WallFriction)
			shape.SetElasticity(common.WallElasticity)
			shape.SetCollisionType(collisionTypeStatic)
			space.AddShape(shape)
			rw.walls[i] = shape
			rw.shapeOwner[shape] = e
		}
		rw.installContactHandlers()

		ps.rooms[e] = rw
		ps.order = append(ps.order, e)
		log.Printf("physics: created room %v (%gx%g)", e, size.Width, size.Height)
		w.Events().Push(ecs.Event{Type: ecs.EventRoomCreated, Data: ecs.EntityEvent{Entity: e, Room: e}})
	})
}

func (ps *PhysicsSystem) dropRoomFromOrder(room ecs.Entity) {
	for i, e := range ps.order {
		if e == room {
			ps.order = append(ps.order[:i], ps.order[i+1:]...)
			return
		}
	}
}
