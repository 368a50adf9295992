package system

import (
	"github.com/milk9111/hookshift/ecs"
	"github.com/milk9111/hookshift/ecs/component"
)

const (
	moveForce   = 50000.0
	jumpImpulse = -260.0
	// jumpGrace is how long after the last contact a jump still fires,
	// read from the bridge's collision decay clock.
	jumpGrace = 0.15
)

// ControlSystem translates decoded player input into gameplay forces
// and aiming intent. It owns zeroing the impulse fields each tick; the
// physics bridge deliberately does not clear them.
type ControlSystem struct{}

func NewControlSystem() *ControlSystem {
	return &ControlSystem{}
}

func (c *ControlSystem) Update(w *ecs.World) {
	if c == nil || w == nil {
		return
	}

	ecs.ForEach3(w, component.PlayerControllerComponent.Kind(), component.ForceComponent.Kind(), component.AimComponent.Kind(), func(e ecs.Entity, ctrl *component.PlayerController, force *component.Force, aim *component.Aim) {
		switch ctrl.Moving {
		case component.MoveLeft:
			force.ContinuousX = -moveForce
		case component.MoveRight:
			force.ContinuousX = moveForce
		default:
			force.ContinuousX = 0
		}
		force.ContinuousY = 0

		force.ImpulseX, force.ImpulseY = 0, 0
		if ctrl.Jump {
			if cs, ok := ecs.Get(w, e, component.CollisionSetComponent.Kind()); ok && cs.TimeSinceCollision <= jumpGrace {
				force.ImpulseY = jumpImpulse
			}
		}

		aim.Aiming = ctrl.Hooking
		if ctrl.Hooking {
			aim.TowardX, aim.TowardY = ctrl.HookX, ctrl.HookY
		} else {
			aim.TowardX, aim.TowardY = 0, 0
		}
	})
}
