package ecs

import "github.com/milk9111/wraith/ecs/component"

// The ForEach family iterates a snapshot of the smallest store and re-checks
// every component per entity, so callbacks may add, remove or destroy freely.

func ForEach[A any](w *World, ka component.ComponentKind[A], fn func(Entity, *A)) {
	for _, id := range w.store(ka.ID(), false).ids() {
		e, ok := w.entityFor(id)
		if !ok {
			continue
		}
		a, ok := Get(w, e, ka)
		if !ok {
			continue
		}
		fn(e, a)
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	for _, id := range smallest(w, ka.ID(), kb.ID()) {
		e, ok := w.entityFor(id)
		if !ok {
			continue
		}
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		if !okA || !okB {
			continue
		}
		fn(e, a, b)
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	for _, id := range smallest(w, ka.ID(), kb.ID(), kc.ID()) {
		e, ok := w.entityFor(id)
		if !ok {
			continue
		}
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		c, okC := Get(w, e, kc)
		if !okA || !okB || !okC {
			continue
		}
		fn(e, a, b, c)
	}
}

func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	for _, id := range smallest(w, ka.ID(), kb.ID(), kc.ID(), kd.ID()) {
		e, ok := w.entityFor(id)
		if !ok {
			continue
		}
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		c, okC := Get(w, e, kc)
		d, okD := Get(w, e, kd)
		if !okA || !okB || !okC || !okD {
			continue
		}
		fn(e, a, b, c, d)
	}
}

func smallest(w *World, ids ...component.ComponentID) []entityID {
	var best *sparseSet
	for _, id := range ids {
		s := w.store(id, false)
		if s == nil {
			return nil
		}
		if best == nil || s.len() < best.len() {
			best = s
		}
	}
	return best.ids()
}
