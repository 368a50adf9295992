package system

import (
	"log"

	"github.com/milk9111/hookshift/ecs"
	"github.com/milk9111/hookshift/ecs/component"
)

// sweepUnvisited reaps simulation state whose backing gameplay
// component vanished: anything still unmarked after the sync passes is
// structurally gone from the gameplay world. Constraints go before
// bodies so no joint ever dangles on a removed body.
func (ps *PhysicsSystem) sweepUnvisited(w *ecs.World) {
	for roomEnt, rw := range ps.rooms {
		for e, pc := range rw.joints {
			if pc.visited {
				continue
			}
			rw.space.RemoveConstraint(pc.joint)
			delete(rw.joints, e)
			log.Printf("physics: reaped joint %v in room %v", e, roomEnt)
		}
		for e, po := range rw.objects {
			if po.visited {
				continue
			}
			ps.removeObject(rw, e, po)
			log.Printf("physics: reaped object %v in room %v", e, roomEnt)
			w.Events().Push(ecs.Event{Type: ecs.EventObjectReaped, Data: ecs.EntityEvent{Entity: e, Room: roomEnt}})
		}
	}
}

// destroyMarked tears down every entity carrying the DestroyEntity
// marker: constraints are severed first (including joints whose target
// is the marked entity, so nothing dangles when the target body goes),
// then bodies, then whole rooms, and finally the entity itself.
func (ps *PhysicsSystem) destroyMarked(w *ecs.World) {
	var marked []ecs.Entity
	ecs.ForEach(w, component.DestroyEntityComponent.Kind(), func(e ecs.Entity, _ *component.DestroyEntity) {
		marked = append(marked, e)
	})
	if len(marked) == 0 {
		return
	}
	markedSet := make(map[ecs.Entity]struct{}, len(marked))
	for _, e := range marked {
		markedSet[e] = struct{}{}
	}

	// Severance pass: clear every joint owned by or pointing at a
	// marked entity before any body is removed.
	for roomEnt, rw := range ps.rooms {
		for owner, pc := range rw.joints {
			_, ownerMarked := markedSet[owner]
			_, targetMarked := markedSet[pc.target]
			if !ownerMarked && !targetMarked {
				continue
			}
			rw.space.RemoveConstraint(pc.joint)
			delete(rw.joints, owner)
			log.Printf("physics: severed joint %v -> %v in room %v", owner, pc.target, roomEnt)
		}
	}

	for _, e := range marked {
		if rw, ok := ps.rooms[e]; ok {
			ps.destroyRoom(w, e, rw)
		}
		removed := false
		for _, rw := range ps.rooms {
			if po, ok := rw.objects[e]; ok {
				ps.removeObject(rw, e, po)
				removed = true
			}
		}
		if !removed {
			if inRoom, ok := ecs.Get(w, e, component.InRoomComponent.Kind()); ok {
				if _, ok := ps.rooms[ecs.FromRef(inRoom.RoomEntity)]; !ok {
					// Room world already gone; nothing left to free.
					log.Printf("physics: teardown of %v: room %v already gone, skipping", e, ecs.FromRef(inRoom.RoomEntity))
				}
			}
		}
		ecs.DestroyEntity(w, e)
	}
}

// destroyRoom drops the room's entire space. Objects still inside are
// not cascaded: their components survive and they hit the missing-room
// skip path until another room claims them. The lost tracking is
// deliberate and logged.
func (ps *PhysicsSystem) destroyRoom(w *ecs.World, roomEnt ecs.Entity, rw *roomWorld) {
	for e := range rw.objects {
		if e != roomEnt {
			log.Printf("physics: room %v destroyed with object %v still inside, dropping its handles", roomEnt, e)
		}
	}
	delete(ps.rooms, roomEnt)
	ps.dropRoomFromOrder(roomEnt)
	log.Printf("physics: destroyed room %v", roomEnt)
	w.Events().Push(ecs.Event{Type: ecs.EventRoomDestroyed, Data: ecs.EntityEvent{Entity: roomEnt, Room: roomEnt}})
}

// removeObject frees everything owned for one entity: chain links drop
// their articulation joint first, then the shape, then the body. Any
// surviving child still articulated to this body loses its chain joint
// too, before the body goes, so no constraint dangles on a removed body.
func (ps *PhysicsSystem) removeObject(rw *roomWorld, e ecs.Entity, po *physicalObject) {
	for child, cpo := range rw.objects {
		if child == e || cpo.chainJoint == nil || cpo.parent != e {
			continue
		}
		rw.space.RemoveConstraint(cpo.chainJoint)
		cpo.chainJoint = nil
		log.Printf("physics: severed chain joint of %v from removed parent %v", child, e)
	}
	if po.chainJoint != nil {
		rw.space.RemoveConstraint(po.chainJoint)
	}
	if po.shape != nil {
		rw.space.RemoveShape(po.shape)
		delete(rw.shapeOwner, po.shape)
	}
	if po.body != nil {
		rw.forces.drop(po.body)
		rw.space.RemoveBody(po.body)
	}
	delete(rw.objects, e)
}
