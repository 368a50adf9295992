package ecs

import "github.com/milk9111/hookshift/ecs/component"

// World owns entities, component stores, the event queue, and the
// per-tick delta time resource.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
	dt       float64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// SetDeltaTime records the tick's delta time. The scheduler sets this
// once per update before any system runs.
func (w *World) SetDeltaTime(dt float64) {
	if w == nil {
		return
	}
	w.dt = dt
}

// DeltaTime returns the current tick's delta time in seconds.
func (w *World) DeltaTime() float64 {
	if w == nil {
		return 0
	}
	return w.dt
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(id component.ComponentID) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s, ok := w.stores[id]
	if !ok {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

func (w *World) storeIfPresent(id component.ComponentID) *SparseSet {
	if w == nil || w.stores == nil {
		return nil
	}
	return w.stores[id]
}

// entityStore tracks generations and recycles freed ids.
type entityStore struct {
	gens  []generation
	alive []bool
	free  []entityID
}

func (s *entityStore) create() Entity {
	var id entityID
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.gens = append(s.gens, 0)
		s.alive = append(s.alive, false)
		id = entityID(len(s.gens))
	}
	s.alive[id-1] = true
	return makeEntity(id, s.gens[id-1])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	idx := e.id() - 1
	s.gens[idx]++
	s.alive[idx] = false
	s.free = append(s.free, e.id())
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	if s == nil || !e.Valid() || int(e.id()) > len(s.gens) {
		return false
	}
	idx := e.id() - 1
	return s.alive[idx] && s.gens[idx] == e.generation()
}

func (s *entityStore) all() []Entity {
	if s == nil {
		return nil
	}
	out := make([]Entity, 0, len(s.gens))
	for i, ok := range s.alive {
		if ok {
			out = append(out, makeEntity(entityID(i+1), s.gens[i]))
		}
	}
	return out
}
