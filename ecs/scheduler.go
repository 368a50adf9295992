package ecs

// System updates a world each tick.
type System interface {
	Update(w *World)
}

type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs all systems in order with dt as the tick's delta time,
// then flushes any undrained events.
func (s *Scheduler) Update(w *World, dt float64) {
	if s == nil || w == nil {
		return
	}
	w.SetDeltaTime(dt)
	for _, system := range s.systems {
		if system != nil {
			system.Update(w)
		}
	}
	w.Events().flush()
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
