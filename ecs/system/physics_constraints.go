package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hookshift/ecs"
	"github.com/milk9111/hookshift/ecs/component"
)

// syncConstraints turns RevoluteJoint intent into pairwise pin joints.
// Multibody links are excluded here; the object bridge articulates them
// at body creation. A joint is computed once, at creation, from the two
// bodies' offset at that instant; later ticks only mark it visited.
func (ps *PhysicsSystem) syncConstraints(w *ecs.World) {
	ecs.ForEach2(w, component.RevoluteJointComponent.Kind(), component.InRoomComponent.Kind(), func(e ecs.Entity, rj *component.RevoluteJoint, inRoom *component.InRoom) {
		if rj.MultibodyLink {
			return
		}

		// A room cannot be the child end of a joint: ambiguous when the
		// entity is simultaneously a room and an object.
		if ecs.Has(w, e, component.RoomComponent.Kind()) {
			log.Printf("physics: joint on %v rejected: a room cannot be the child end", e)
			return
		}

		roomEnt := ecs.FromRef(inRoom.RoomEntity)
		rw := ps.rooms[roomEnt]
		if rw == nil {
			log.Printf("physics: joint on %v: room %v not registered yet, skipping", e, roomEnt)
			return
		}

		if pc := rw.joints[e]; pc != nil {
			pc.visited = true
			return
		}

		target := ecs.FromRef(rj.LinkedToEntity)
		if target != roomEnt {
			targetRoom, ok := ecs.Get(w, target, component.InRoomComponent.Kind())
			if !ok || ecs.FromRef(targetRoom.RoomEntity) != roomEnt {
				// Won't self-correct, so no retry policy: the joint is
				// simply never created.
				log.Printf("physics: joint %v -> %v rejected: endpoints in different rooms", e, target)
				return
			}
		}

		childBody := rw.resolveBody(roomEnt, e)
		targetBody := rw.resolveBody(roomEnt, target)
		if childBody == nil || targetBody == nil || childBody == rw.space.StaticBody {
			// One endpoint isn't simulated yet; retried next tick.
			return
		}

		joint := cp.NewPivotJoint(childBody, targetBody, childBody.Position())
		rw.space.AddConstraint(joint)
		rw.joints[e] = &physicalConstraint{joint: joint, room: roomEnt, target: target, visited: true}
		log.Printf("physics: created joint %v -> %v in room %v", e, target, roomEnt)
	})
}
