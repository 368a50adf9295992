package system

import (
	"log"

	"github.com/milk9111/hookshift/ecs"
	"github.com/milk9111/hookshift/ecs/component"
)

// ShiftSystem lets an entity phase between rooms at the same position.
// Tracking picks the next room in storage order as the target; a commit
// retargets InRoom, after which the physics bridge reaps the body in
// the old room and lazily recreates it in the new one.
type ShiftSystem struct{}

func NewShiftSystem() *ShiftSystem {
	return &ShiftSystem{}
}

func (s *ShiftSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	var rooms []ecs.Entity
	ecs.ForEach(w, component.RoomComponent.Kind(), func(e ecs.Entity, _ *component.Room) {
		rooms = append(rooms, e)
	})

	ecs.ForEach2(w, component.ShifterComponent.Kind(), component.InRoomComponent.Kind(), func(e ecs.Entity, shifter *component.Shifter, inRoom *component.InRoom) {
		shifter.TargetRoom = nextRoom(rooms, ecs.FromRef(inRoom.RoomEntity)).Ref()

		if ctrl, ok := ecs.Get(w, e, component.PlayerControllerComponent.Kind()); ok {
			if ctrl.Shifting && !shifter.Sensing {
				shifter.Sensing = true
			} else if !ctrl.Shifting && shifter.Sensing && !shifter.Shifting {
				shifter.Sensing = false
				shifter.Shifting = true
			}
		}

		if !shifter.Shifting {
			return
		}
		shifter.Shifting = false
		target := ecs.FromRef(shifter.TargetRoom)
		if !target.Valid() || target == ecs.FromRef(inRoom.RoomEntity) {
			return
		}
		log.Printf("shift: entity %v moved from room %v to room %v", e, ecs.FromRef(inRoom.RoomEntity), target)
		inRoom.RoomEntity = target.Ref()
		w.Events().Push(ecs.Event{Type: ecs.EventPhaseShifted, Data: ecs.EntityEvent{Entity: e, Room: target}})
	})
}

// nextRoom returns the room after current in storage order, wrapping
// around. Zero when there is no other room.
func nextRoom(rooms []ecs.Entity, current ecs.Entity) ecs.Entity {
	if len(rooms) < 2 {
		return 0
	}
	for i, r := range rooms {
		if r == current {
			return rooms[(i+1)%len(rooms)]
		}
	}
	return 0
}
