package ecs

// sparseSet stores one component kind keyed by entity slot. Values are kept
// as pointers behind `any`; the generic accessors in generics.go cast them
// back to the concrete type.
type sparseSet struct {
	dense  []entityID
	values []any
	sparse []int
}

func newSparseSet() *sparseSet {
	return &sparseSet{}
}

func (s *sparseSet) has(id entityID) bool {
	if s == nil || int(id) >= len(s.sparse) {
		return false
	}
	idx := s.sparse[id]
	return idx >= 0 && idx < len(s.dense) && s.dense[idx] == id
}

func (s *sparseSet) get(id entityID) (any, bool) {
	if !s.has(id) {
		return nil, false
	}
	return s.values[s.sparse[id]], true
}

func (s *sparseSet) set(id entityID, v any) {
	for int(id) >= len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if s.has(id) {
		s.values[s.sparse[id]] = v
		return
	}
	s.dense = append(s.dense, id)
	s.values = append(s.values, v)
	s.sparse[id] = len(s.dense) - 1
}

func (s *sparseSet) remove(id entityID) bool {
	if !s.has(id) {
		return false
	}
	idx := s.sparse[id]
	last := len(s.dense) - 1
	lastID := s.dense[last]

	s.dense[idx] = lastID
	s.values[idx] = s.values[last]
	s.sparse[lastID] = idx

	s.values[last] = nil
	s.dense = s.dense[:last]
	s.values = s.values[:last]
	s.sparse[id] = -1
	return true
}

func (s *sparseSet) len() int {
	if s == nil {
		return 0
	}
	return len(s.dense)
}

// ids returns a copy so callers may mutate the set while iterating.
func (s *sparseSet) ids() []entityID {
	if s == nil || len(s.dense) == 0 {
		return nil
	}
	return append([]entityID(nil), s.dense...)
}
