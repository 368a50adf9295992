package ecs

import "github.com/milk9111/hookshift/ecs/component"

// CreateEntity allocates a new entity handle.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity kills an entity and drops all of its components.
// Returns false if the handle was already dead.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return true
}

// IsAlive reports whether the entity handle is current.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns all live entities.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// Add attaches (or replaces) a component value on an entity.
func Add[T any](w *World, e Entity, k component.ComponentKind[T], v *T) error {
	if !k.Valid() {
		return component.ErrInvalidComponentKind
	}
	if v == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	w.store(k.ID()).Set(e, v)
	return nil
}

// Get returns the component value for an entity, if present.
func Get[T any](w *World, e Entity, k component.ComponentKind[T]) (*T, bool) {
	if w == nil || !k.Valid() || !IsAlive(w, e) {
		return nil, false
	}
	s := w.storeIfPresent(k.ID())
	if s == nil {
		return nil, false
	}
	v, ok := s.Get(e).(*T)
	if !ok {
		return nil, false
	}
	return v, true
}

// Has reports whether the entity carries the component.
func Has[T any](w *World, e Entity, k component.ComponentKind[T]) bool {
	_, ok := Get(w, e, k)
	return ok
}

// Remove detaches the component from the entity.
func Remove[T any](w *World, e Entity, k component.ComponentKind[T]) bool {
	if w == nil || !k.Valid() || !IsAlive(w, e) {
		return false
	}
	s := w.storeIfPresent(k.ID())
	if s == nil {
		return false
	}
	return s.Remove(e)
}

// First returns some live entity carrying the component, in storage order.
func First[T any](w *World, k component.ComponentKind[T]) (Entity, bool) {
	if w == nil || !k.Valid() {
		return 0, false
	}
	s := w.storeIfPresent(k.ID())
	if s == nil {
		return 0, false
	}
	for _, e := range s.Entities() {
		if IsAlive(w, e) {
			return e, true
		}
	}
	return 0, false
}

// ForEach visits every live entity with the component.
func ForEach[T any](w *World, k component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	s := w.storeIfPresent(k.ID())
	if s == nil {
		return
	}
	for _, e := range snapshot(s) {
		if !IsAlive(w, e) {
			continue
		}
		if v, ok := s.Get(e).(*T); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits every live entity carrying both components.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	sa := w.storeIfPresent(ka.ID())
	sb := w.storeIfPresent(kb.ID())
	if sa == nil || sb == nil {
		return
	}
	lead := sa
	if sb.Len() < sa.Len() {
		lead = sb
	}
	for _, e := range snapshot(lead) {
		if !IsAlive(w, e) {
			continue
		}
		a, okA := sa.Get(e).(*A)
		b, okB := sb.Get(e).(*B)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

// ForEach3 visits every live entity carrying all three components.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	if w == nil || fn == nil {
		return
	}
	sa := w.storeIfPresent(ka.ID())
	sb := w.storeIfPresent(kb.ID())
	sc := w.storeIfPresent(kc.ID())
	if sa == nil || sb == nil || sc == nil {
		return
	}
	lead := smallest(sa, sb, sc)
	for _, e := range snapshot(lead) {
		if !IsAlive(w, e) {
			continue
		}
		a, okA := sa.Get(e).(*A)
		b, okB := sb.Get(e).(*B)
		c, okC := sc.Get(e).(*C)
		if okA && okB && okC {
			fn(e, a, b, c)
		}
	}
}

// ForEach4 visits every live entity carrying all four components.
func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	if w == nil || fn == nil {
		return
	}
	sa := w.storeIfPresent(ka.ID())
	sb := w.storeIfPresent(kb.ID())
	sc := w.storeIfPresent(kc.ID())
	sd := w.storeIfPresent(kd.ID())
	if sa == nil || sb == nil || sc == nil || sd == nil {
		return
	}
	lead := smallest(smallest(sa, sb, sc), sd)
	for _, e := range snapshot(lead) {
		if !IsAlive(w, e) {
			continue
		}
		a, okA := sa.Get(e).(*A)
		b, okB := sb.Get(e).(*B)
		c, okC := sc.Get(e).(*C)
		d, okD := sd.Get(e).(*D)
		if okA && okB && okC && okD {
			fn(e, a, b, c, d)
		}
	}
}

// snapshot copies the dense list so callbacks may add or remove
// components mid-iteration without invalidating the walk.
func snapshot(s *SparseSet) []Entity {
	ents := s.Entities()
	out := make([]Entity, len(ents))
	copy(out, ents)
	return out
}

func smallest(sets ...*SparseSet) *SparseSet {
	lead := sets[0]
	for _, s := range sets[1:] {
		if s.Len() < lead.Len() {
			lead = s
		}
	}
	return lead
}
