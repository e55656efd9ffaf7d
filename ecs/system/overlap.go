package system

import (
	"sort"

	"github.com/milk9111/wraith/ecs"
	"github.com/milk9111/wraith/ecs/component"
)

// OverlapHandler reacts to a collider entering (begin) or leaving a named
// volume owned by e.
type OverlapHandler func(w *ecs.World, e ecs.Entity, volume string, other ecs.Entity, begin bool)

// OverlapSystem tests every enabled volume against every collider and
// dispatches begin and end transitions by volume name. Disabling a volume
// ends all of its overlaps.
type OverlapSystem struct {
	handlers map[string]OverlapHandler
}

func NewOverlapSystem() *OverlapSystem {
	s := &OverlapSystem{handlers: map[string]OverlapHandler{}}
	s.Register(component.VolumeItemArea, onItemAreaOverlap)
	s.Register(component.VolumeAgro, onEnemyAgroOverlap)
	s.Register(component.VolumeCombatRange, onEnemyCombatRangeOverlap)
	s.Register(component.VolumeLeftWeapon, onEnemyWeaponOverlap)
	s.Register(component.VolumeRightWeapon, onEnemyWeaponOverlap)
	s.Register(component.VolumeLeftFoot, onEnemyWeaponOverlap)
	s.Register(component.VolumeRightFoot, onEnemyWeaponOverlap)
	return s
}

func (s *OverlapSystem) Register(volume string, h OverlapHandler) {
	s.handlers[volume] = h
}

type colliderRef struct {
	e      ecs.Entity
	radius float64
}

func (s *OverlapSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	var colliders []colliderRef
	ecs.ForEach2(w, component.ColliderComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, c *component.Collider, _ *component.Transform) {
		colliders = append(colliders, colliderRef{e: e, radius: c.Radius})
	})

	ecs.ForEach2(w, component.OverlapComponent.Kind(), component.TransformComponent.Kind(), func(owner ecs.Entity, volumes *[]component.OverlapVolume, transform *component.Transform) {
		for i := range *volumes {
			v := &(*volumes)[i]
			if v.Inside == nil {
				v.Inside = map[uint64]bool{}
			}
			center := transform.Location().Add(v.Offset.RotateYaw(transform.Yaw))

			now := map[uint64]bool{}
			if v.Enabled {
				for _, c := range colliders {
					if c.e == owner || !ecs.IsAlive(w, c.e) {
						continue
					}
					if center.Dist(locationOf(w, c.e)) <= v.Radius+c.radius {
						now[c.e.Ref()] = true
					}
				}
			}

			name := v.Name
			var ended, begun []uint64
			for ref := range v.Inside {
				if !now[ref] {
					ended = append(ended, ref)
				}
			}
			for ref := range now {
				if !v.Inside[ref] {
					begun = append(begun, ref)
				}
			}
			v.Inside = now
			sortRefs(ended)
			sortRefs(begun)

			// handlers may destroy the owner or reshape its volumes
			for _, ref := range ended {
				s.dispatch(w, owner, name, entityOf(ref), false)
			}
			for _, ref := range begun {
				s.dispatch(w, owner, name, entityOf(ref), true)
			}
			if !ecs.IsAlive(w, owner) {
				return
			}
		}
	})
}

func (s *OverlapSystem) dispatch(w *ecs.World, owner ecs.Entity, volume string, other ecs.Entity, begin bool) {
	h, ok := s.handlers[volume]
	if !ok || !ecs.IsAlive(w, owner) {
		return
	}
	h(w, owner, volume, other, begin)
}

func sortRefs(refs []uint64) {
	sort.Slice(refs, func(i, j int) bool { return refs[i] < refs[j] })
}

func onItemAreaOverlap(w *ecs.World, _ ecs.Entity, _ string, other ecs.Entity, begin bool) {
	if !ecs.Has(w, other, component.PlayerTagComponent.Kind()) {
		return
	}
	if begin {
		IncrementOverlappedItemCount(w, other, 1)
		return
	}
	IncrementOverlappedItemCount(w, other, -1)
	UnHighlightInventorySlot(w, other)
}
