package system

import (
	"log"
	"math"

	"github.com/milk9111/hookshift/common"
	"github.com/milk9111/hookshift/ecs"
	"github.com/milk9111/hookshift/ecs/component"
)

const (
	hookLinkSpacing = 12.0
	hookLinkRadius  = 3.0
	hookMaxLinks    = 32
)

// HookSystem grows and releases grappling-hook chains. A fired hook
// spawns link entities from the hit point back toward the player: the
// head link is a multibody link rooted at the room's static frame, each
// following link articulates to the previous one, and the player is
// pinned to the chain end with a pairwise revolute joint. The physics
// bridge turns all of that intent into simulation state on its next
// tick.
type HookSystem struct {
	chains map[ecs.Entity][]ecs.Entity
}

func NewHookSystem() *HookSystem {
	return &HookSystem{chains: make(map[ecs.Entity][]ecs.Entity)}
}

func (h *HookSystem) Update(w *ecs.World) {
	if h == nil || w == nil {
		return
	}

	for player := range h.chains {
		if !ecs.IsAlive(w, player) {
			delete(h.chains, player)
		}
	}

	ecs.ForEach4(w, component.PlayerControllerComponent.Kind(), component.AimComponent.Kind(), component.InRoomComponent.Kind(), component.PositionComponent.Kind(), func(e ecs.Entity, ctrl *component.PlayerController, aim *component.Aim, inRoom *component.InRoom, pos *component.Position) {
		_, hooked := h.chains[e]

		if ctrl.Hooking && !hooked && aim.AtEntity != 0 {
			h.fire(w, e, inRoom, pos, aim)
			return
		}
		if !ctrl.Hooking && hooked {
			h.release(w, e)
		}
	})
}

func (h *HookSystem) fire(w *ecs.World, player ecs.Entity, inRoom *component.InRoom, pos *component.Position, aim *component.Aim) {
	hitX, hitY := aim.AtPointX, aim.AtPointY
	dist := math.Hypot(hitX-pos.X, hitY-pos.Y)
	count := int(dist / hookLinkSpacing)
	count = int(common.Clamp(float64(count), 1, hookMaxLinks))

	// Head link roots at the room's static frame at the hit point; the
	// rest of the chain hangs off it toward the player.
	links := make([]ecs.Entity, 0, count)
	prev := ecs.FromRef(inRoom.RoomEntity)
	for i := 0; i < count; i++ {
		t := float64(i) / float64(count)
		link := ecs.CreateEntity(w)
		mustAdd(w, link, "hook link in_room", ecs.Add(w, link, component.InRoomComponent.Kind(), &component.InRoom{RoomEntity: inRoom.RoomEntity}))
		mustAdd(w, link, "hook link position", ecs.Add(w, link, component.PositionComponent.Kind(), &component.Position{
			X: common.Lerp(hitX, pos.X, t),
			Y: common.Lerp(hitY, pos.Y, t),
		}))
		mustAdd(w, link, "hook link velocity", ecs.Add(w, link, component.VelocityComponent.Kind(), &component.Velocity{}))
		mustAdd(w, link, "hook link shape", ecs.Add(w, link, component.ShapeComponent.Kind(), &component.Shape{Class: component.ShapeLink, Radius: hookLinkRadius}))
		mustAdd(w, link, "hook link joint", ecs.Add(w, link, component.RevoluteJointComponent.Kind(), &component.RevoluteJoint{LinkedToEntity: prev.Ref(), MultibodyLink: true}))
		links = append(links, link)
		prev = link
	}

	mustAdd(w, player, "player hook joint", ecs.Add(w, player, component.RevoluteJointComponent.Kind(), &component.RevoluteJoint{LinkedToEntity: prev.Ref()}))
	h.chains[player] = links
	log.Printf("hook: fired %d links for player %v at (%.1f, %.1f)", count, player, hitX, hitY)
}

func (h *HookSystem) release(w *ecs.World, player ecs.Entity) {
	for _, link := range h.chains[player] {
		if !ecs.IsAlive(w, link) {
			continue
		}
		mustAdd(w, link, "hook link destroy", ecs.Add(w, link, component.DestroyEntityComponent.Kind(), &component.DestroyEntity{}))
	}
	ecs.Remove(w, player, component.RevoluteJointComponent.Kind())
	delete(h.chains, player)
	log.Printf("hook: released chain for player %v", player)
}

func mustAdd(w *ecs.World, e ecs.Entity, what string, err error) {
	if err != nil {
		panic("hook system: " + what + " for entity " + e.String() + ": " + err.Error())
	}
}
