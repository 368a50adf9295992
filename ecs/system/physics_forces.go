package system

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hookshift/ecs"
	"github.com/milk9111/hookshift/ecs/component"
)

// forceGenerator re-applies staged continuous forces during every
// velocity integration sub-step. Staging survives the engine clearing
// per-step forces, which is why the bridge never calls the engine's
// direct force primitive.
type forceGenerator struct {
	staged map[*cp.Body]cp.Vector
	marked map[*cp.Body]bool
}

func newForceGenerator() *forceGenerator {
	return &forceGenerator{
		staged: make(map[*cp.Body]cp.Vector),
		marked: make(map[*cp.Body]bool),
	}
}

// install hooks the generator into a body's velocity integration.
func (g *forceGenerator) install(body *cp.Body) {
	body.SetVelocityUpdateFunc(func(b *cp.Body, gravity cp.Vector, damping, dt float64) {
		cp.BodyUpdateVelocity(b, gravity, damping, dt)
		f, ok := g.staged[b]
		if !ok {
			return
		}
		m := b.Mass()
		if m <= 0 {
			return
		}
		b.SetVelocityVector(b.Velocity().Add(f.Mult(dt / m)))
	})
}

func (g *forceGenerator) stage(body *cp.Body, f cp.Vector) {
	g.marked[body] = true
	if f.X == 0 && f.Y == 0 {
		delete(g.staged, body)
		return
	}
	g.staged[body] = f
}

func (g *forceGenerator) drop(body *cp.Body) {
	delete(g.staged, body)
	delete(g.marked, body)
}

// sweepUnmarked drops staged forces for bodies that were not re-staged
// this tick, so a vanished Force component stops pushing its body.
func (g *forceGenerator) sweepUnmarked() {
	for body := range g.staged {
		if !g.marked[body] {
			delete(g.staged, body)
		}
	}
	for body := range g.marked {
		delete(g.marked, body)
	}
}

// applyForces stages continuous forces into each room's generator and
// folds impulses straight into body velocity. Continuous entries are
// re-staged from the component every tick, so gameplay logic must keep
// writing them; impulses are not cleared here, so writers must zero
// them to avoid re-application. Entries whose Force component is gone
// are swept afterwards.
func (ps *PhysicsSystem) applyForces(w *ecs.World) {
	ecs.ForEach2(w, component.ForceComponent.Kind(), component.InRoomComponent.Kind(), func(e ecs.Entity, force *component.Force, inRoom *component.InRoom) {
		roomEnt := ecs.FromRef(inRoom.RoomEntity)
		rw := ps.rooms[roomEnt]
		if rw == nil {
			return
		}
		po := rw.objects[e]
		if po == nil || po.body == nil {
			return
		}

		cx, cy := sanitize(force.ContinuousX, force.ContinuousY, "continuous force", e)
		rw.forces.stage(po.body, cp.Vector{X: cx, Y: cy})

		ix, iy := sanitize(force.ImpulseX, force.ImpulseY, "impulse", e)
		if ix == 0 && iy == 0 {
			return
		}
		// Any NaN past this point means sanitization was bypassed; that
		// is a programming error, not bad input.
		if math.IsNaN(ix) || math.IsNaN(iy) {
			panic("physics: NaN reached the velocity boundary after sanitization")
		}
		v := po.body.Velocity()
		po.body.SetVelocity(v.X+ix, v.Y+iy)
	})

	for _, rw := range ps.rooms {
		rw.forces.sweepUnmarked()
	}
}

// sanitize replaces NaN components with zero so invalid numerics never
// reach the simulation.
func sanitize(x, y float64, subject string, e ecs.Entity) (float64, float64) {
	if math.IsNaN(x) {
		log.Printf("physics: NaN eradicated in %s x for entity %v", subject, e)
		x = 0
	}
	if math.IsNaN(y) {
		log.Printf("physics: NaN eradicated in %s y for entity %v", subject, e)
		y = 0
	}
	return x, y
}
