package system

import (
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/hookshift/ecs"
	"github.com/milk9111/hookshift/ecs/component"
)

// BehaviorSystem runs tengo scripts attached to entities. A script is
// compiled once per entity and re-run every tick with the entity's
// position, velocity, and clock as inputs; it drives the entity by
// assigning force_x/force_y (and optionally impulse_x/impulse_y).
// Values written to the state map persist between ticks.
type BehaviorSystem struct {
	runtimes map[ecs.Entity]*behaviorRuntime
}

type behaviorRuntime struct {
	compiled *tengo.Compiled
	broken   bool
}

func NewBehaviorSystem() *BehaviorSystem {
	return &BehaviorSystem{runtimes: make(map[ecs.Entity]*behaviorRuntime)}
}

func (b *BehaviorSystem) Update(w *ecs.World) {
	if b == nil || w == nil {
		return
	}

	for e := range b.runtimes {
		if !ecs.IsAlive(w, e) || !ecs.Has(w, e, component.BehaviorComponent.Kind()) {
			delete(b.runtimes, e)
		}
	}

	ecs.ForEach4(w, component.BehaviorComponent.Kind(), component.PositionComponent.Kind(), component.VelocityComponent.Kind(), component.ForceComponent.Kind(), func(e ecs.Entity, behavior *component.Behavior, pos *component.Position, vel *component.Velocity, force *component.Force) {
		rt := b.runtimes[e]
		if rt == nil {
			rt = compileBehavior(e, behavior)
			b.runtimes[e] = rt
		}
		if rt.broken {
			return
		}

		c := rt.compiled
		setFloat(c, "pos_x", pos.X)
		setFloat(c, "pos_y", pos.Y)
		setFloat(c, "vel_x", vel.X)
		setFloat(c, "vel_y", vel.Y)
		setFloat(c, "dt", w.DeltaTime())

		if err := c.Run(); err != nil {
			log.Printf("behavior: %s on entity %v failed, disabling: %v", behavior.Name, e, err)
			rt.broken = true
			return
		}

		force.ContinuousX = c.Get("force_x").Float()
		force.ContinuousY = c.Get("force_y").Float()
		force.ImpulseX = c.Get("impulse_x").Float()
		force.ImpulseY = c.Get("impulse_y").Float()
	})
}

func compileBehavior(e ecs.Entity, behavior *component.Behavior) *behaviorRuntime {
	script := tengo.NewScript([]byte(behavior.Source))
	script.SetImports(stdlib.GetModuleMap("math"))

	vars := map[string]interface{}{
		"pos_x": 0.0, "pos_y": 0.0,
		"vel_x": 0.0, "vel_y": 0.0,
		"dt":      0.0,
		"force_x": 0.0, "force_y": 0.0,
		"impulse_x": 0.0, "impulse_y": 0.0,
		"state": map[string]interface{}{},
	}
	for name, v := range vars {
		if err := script.Add(name, v); err != nil {
			log.Printf("behavior: %s on entity %v: add %s: %v", behavior.Name, e, name, err)
			return &behaviorRuntime{broken: true}
		}
	}

	compiled, err := script.Compile()
	if err != nil {
		log.Printf("behavior: %s on entity %v failed to compile, disabling: %v", behavior.Name, e, err)
		return &behaviorRuntime{broken: true}
	}
	return &behaviorRuntime{compiled: compiled}
}

func setFloat(c *tengo.Compiled, name string, v float64) {
	if err := c.Set(name, v); err != nil {
		log.Printf("behavior: set %s: %v", name, err)
	}
}
