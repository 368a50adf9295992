package ecs

// SparseSet is cache-friendly component storage keyed by entity id.
// Dense slices hold the full entity handle so a lookup with a stale
// generation misses instead of hitting a recycled id.
type SparseSet struct {
	dense  []Entity
	values []any
	sparse []int
}

// Has reports whether the entity has a value in the set.
func (s *SparseSet) Has(e Entity) bool {
	if s == nil || !e.Valid() {
		return false
	}
	id := int(e.id())
	if id-1 >= len(s.sparse) {
		return false
	}
	idx := s.sparse[id-1]
	return idx >= 0 && idx < len(s.dense) && s.dense[idx] == e
}

// Get returns the stored value for the entity, or nil.
func (s *SparseSet) Get(e Entity) any {
	if !s.Has(e) {
		return nil
	}
	return s.values[s.sparse[int(e.id())-1]]
}

// Set inserts or updates the value for the entity.
func (s *SparseSet) Set(e Entity, v any) {
	if s == nil || !e.Valid() {
		return
	}
	id := int(e.id())
	for id-1 >= len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if s.Has(e) {
		s.values[s.sparse[id-1]] = v
		return
	}
	s.dense = append(s.dense, e)
	s.values = append(s.values, v)
	s.sparse[id-1] = len(s.dense) - 1
}

// Remove deletes the value for the entity if present.
func (s *SparseSet) Remove(e Entity) bool {
	if !s.Has(e) {
		return false
	}
	id := int(e.id())
	idx := s.sparse[id-1]
	last := len(s.dense) - 1
	lastEntity := s.dense[last]

	s.dense[idx] = s.dense[last]
	s.values[idx] = s.values[last]
	s.sparse[int(lastEntity.id())-1] = idx

	s.dense = s.dense[:last]
	s.values = s.values[:last]
	s.sparse[id-1] = -1
	return true
}

// Entities returns the dense entity list. Callers must not mutate it.
func (s *SparseSet) Entities() []Entity {
	if s == nil {
		return nil
	}
	return s.dense
}

// Len returns the number of stored values.
func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.dense)
}
