package ecs

import (
	"fmt"

	"github.com/milk9111/wraith/ecs/component"
)

// Add stores value as e's component of the given kind, replacing any
// previous value.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if !IsAlive(w, e) {
		return fmt.Errorf("add %s to %s: %w", kind.Name(), e, component.ErrEntityNotAlive)
	}
	if value == nil {
		return fmt.Errorf("add %s to %s: %w", kind.Name(), e, component.ErrNilComponent)
	}
	w.store(kind.ID(), true).set(e.id(), value)
	return nil
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	raw, ok := w.store(kind.ID(), false).get(e.id())
	if !ok {
		return nil, false
	}
	v, ok := raw.(*T)
	return v, ok
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	return w.store(kind.ID(), false).has(e.id())
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	return w.store(kind.ID(), false).remove(e.id())
}

// First returns the first live entity holding kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	s := w.store(kind.ID(), false)
	for _, id := range s.ids() {
		if e, ok := w.entityFor(id); ok {
			return e, true
		}
	}
	return NoEntity, false
}

// Count returns how many live entities hold kind.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	return w.store(kind.ID(), false).len()
}
