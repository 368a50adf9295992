package system

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hookshift/common"
	"github.com/milk9111/hookshift/ecs"
	"github.com/milk9111/hookshift/ecs/component"
)

// syncObjects lazily creates bodies for gameplay entities and copies
// simulation state back into their components. Static terrain first so
// dynamic creation in the same tick can resolve against it.
func (ps *PhysicsSystem) syncObjects(w *ecs.World) {
	ps.syncStatics(w)
	ps.syncDynamics(w)
}

// Static terrain: InRoom + Position + Size, no Velocity.
func (ps *PhysicsSystem) syncStatics(w *ecs.World) {
	ecs.ForEach3(w, component.InRoomComponent.Kind(), component.PositionComponent.Kind(), component.SizeComponent.Kind(), func(e ecs.Entity, inRoom *component.InRoom, pos *component.Position, size *component.Size) {
		if ecs.Has(w, e, component.VelocityComponent.Kind()) {
			return
		}
		roomEnt := ecs.FromRef(inRoom.RoomEntity)
		rw := ps.rooms[roomEnt]
		if rw == nil {
			log.Printf("physics: terrain %v: room %v not registered yet, skipping", e, roomEnt)
			return
		}

		po := rw.objects[e]
		if po != nil {
			po.visited = true
			return
		}

		bb := cp.BB{L: pos.X, B: pos.Y, R: pos.X + size.Width, T: pos.Y + size.Height}
		shape := cp.NewBox2(rw.space.StaticBody, bb, 0)
		shape.SetFriction(common.WallFriction)
		shape.SetElasticity(common.WallElasticity)
		shape.SetCollisionType(collisionTypeStatic)
		rw.space.AddShape(shape)
		rw.shapeOwner[shape] = e

		rw.objects[e] = &physicalObject{shape: shape, static: true, visited: true}
		log.Printf("physics: created terrain %v in room %v", e, roomEnt)
	})
}

// Dynamic objects: InRoom + Shape + Position + Velocity.
func (ps *PhysicsSystem) syncDynamics(w *ecs.World) {
	ecs.ForEach4(w, component.InRoomComponent.Kind(), component.ShapeComponent.Kind(), component.PositionComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, inRoom *component.InRoom, shape *component.Shape, pos *component.Position, vel *component.Velocity) {
		roomEnt := ecs.FromRef(inRoom.RoomEntity)
		rw := ps.rooms[roomEnt]
		if rw == nil {
			log.Printf("physics: object %v: room %v not registered yet, skipping", e, roomEnt)
			return
		}

		po := rw.objects[e]
		if po == nil {
			po = ps.createDynamic(w, rw, roomEnt, e, shape, pos, vel)
			if po == nil {
				return
			}
			rw.objects[e] = po
		}
		po.visited = true

		// One-directional sync after creation: simulation -> gameplay.
		p := po.body.Position()
		v := po.body.Velocity()
		pos.X, pos.Y = p.X, p.Y
		vel.X, vel.Y = v.X, v.Y
	})
}

func (ps *PhysicsSystem) createDynamic(w *ecs.World, rw *roomWorld, roomEnt, e ecs.Entity, shape *component.Shape, pos *component.Position, vel *component.Velocity) *physicalObject {
	var parent ecs.Entity
	var parentBody *cp.Body
	if rj, ok := ecs.Get(w, e, component.RevoluteJointComponent.Kind()); ok && rj.MultibodyLink {
		parent = ecs.FromRef(rj.LinkedToEntity)
		parentBody = rw.resolveBody(roomEnt, parent)
		if parentBody == nil {
			// Parent not simulated yet; retried next tick once the
			// chain root exists.
			log.Printf("physics: link %v: parent %v has no body yet, deferring", e, parent)
			return nil
		}
	}

	mass, moment := massAndMoment(shape)
	body := cp.NewBody(mass, moment)
	body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
	// Initial velocity flows gameplay -> simulation exactly once.
	body.SetVelocity(vel.X, vel.Y)
	rw.forces.install(body)
	rw.space.AddBody(body)

	var cpShape *cp.Shape
	switch shape.Class {
	case component.ShapeBox:
		cpShape = cp.NewBox(body, shape.Width, shape.Height, 0)
	default:
		cpShape = cp.NewCircle(body, shapeRadius(shape), cp.Vector{})
	}
	cpShape.SetFriction(common.WallFriction)
	cpShape.SetElasticity(common.WallElasticity)
	cpShape.SetCollisionType(collisionTypeObject)
	rw.space.AddShape(cpShape)
	rw.shapeOwner[cpShape] = e

	po := &physicalObject{body: body, shape: cpShape, parent: parent}

	if parentBody != nil {
		po.chainJoint = cp.NewPivotJoint(parentBody, body, chainPivot(rw, parentBody, body))
		rw.space.AddConstraint(po.chainJoint)
		log.Printf("physics: created link %v in room %v (parent %v)", e, roomEnt, parent)
	} else {
		log.Printf("physics: created object %v in room %v", e, roomEnt)
	}

	return po
}

// chainPivot picks the articulation point for a chain link: midway
// between the link and a dynamic parent, or the link's own center when
// the parent is the room's static frame.
func chainPivot(rw *roomWorld, parentBody, body *cp.Body) cp.Vector {
	if parentBody == rw.space.StaticBody {
		return body.Position()
	}
	return parentBody.Position().Add(body.Position()).Mult(0.5)
}

func shapeRadius(shape *component.Shape) float64 {
	if shape.Radius > 0 {
		return shape.Radius
	}
	return 4
}

// massAndMoment derives mass from the shape's class density. Links are
// far lighter than the ball so a grown chain doesn't drag it down.
func massAndMoment(shape *component.Shape) (float64, float64) {
	switch shape.Class {
	case component.ShapeBox:
		width := shape.Width
		height := shape.Height
		if width <= 0 || height <= 0 {
			width, height = 8, 8
		}
		mass := common.BoxDensity * width * height
		return mass, cp.MomentForBox(mass, width, height)
	case component.ShapeLink:
		r := shapeRadius(shape)
		mass := common.LinkDensity * math.Pi * r * r
		return mass, cp.MomentForCircle(mass, 0, r, cp.Vector{})
	default:
		r := shapeRadius(shape)
		mass := common.BallDensity * math.Pi * r * r
		return mass, cp.MomentForCircle(mass, 0, r, cp.Vector{})
	}
}
