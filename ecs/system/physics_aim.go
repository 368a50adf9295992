package system

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hookshift/common"
	"github.com/milk9111/hookshift/ecs"
	"github.com/milk9111/hookshift/ecs/component"
)

// resolveAim casts a ray for every aiming entity into its own room's
// space and records the nearest non-self hit. A zero direction counts
// as not aiming and clears the derived fields rather than freezing
// stale results from an earlier tick.
func (ps *PhysicsSystem) resolveAim(w *ecs.World) {
	ecs.ForEach3(w, component.AimComponent.Kind(), component.InRoomComponent.Kind(), component.PositionComponent.Kind(), func(e ecs.Entity, aim *component.Aim, inRoom *component.InRoom, pos *component.Position) {
		if aim.TowardX == 0 && aim.TowardY == 0 {
			aim.AtEntity = 0
			aim.AtPointX, aim.AtPointY = 0, 0
			return
		}

		roomEnt := ecs.FromRef(inRoom.RoomEntity)
		rw := ps.rooms[roomEnt]
		if rw == nil {
			log.Printf("physics: aim on %v: room %v not registered yet, skipping", e, roomEnt)
			return
		}

		dirX, dirY := common.Normalize(aim.TowardX, aim.TowardY)
		maxDist := 10000.0
		if size, ok := ecs.Get(w, roomEnt, component.SizeComponent.Kind()); ok {
			if size.Width > 0 || size.Height > 0 {
				maxDist = math.Hypot(size.Width, size.Height) * 2
			}
		}

		start := cp.Vector{X: pos.X, Y: pos.Y}
		end := cp.Vector{X: pos.X + dirX*maxDist, Y: pos.Y + dirY*maxDist}

		var hitEntity ecs.Entity
		var hitPoint cp.Vector
		closest := math.Inf(1)
		rw.space.SegmentQuery(start, end, 0, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, point, normal cp.Vector, alpha float64, _ interface{}) {
			owner, ok := rw.shapeOwner[shape]
			if !ok || owner == e {
				return
			}
			if alpha < closest {
				closest = alpha
				hitEntity = owner
				hitPoint = point
			}
		}, nil)

		if math.IsInf(closest, 1) {
			aim.AtEntity = 0
			aim.AtPointX, aim.AtPointY = 0, 0
			return
		}
		aim.AtEntity = hitEntity.Ref()
		aim.AtPointX, aim.AtPointY = hitPoint.X, hitPoint.Y
	})
}
