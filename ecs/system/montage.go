package system

import (
	"github.com/milk9111/wraith/ecs"
	"github.com/milk9111/wraith/ecs/component"
	"github.com/milk9111/wraith/prefabs"
)

// Montage names used by the combat code.
const (
	MontageWhipFire       = "whip_fire"
	MontageReload         = "reload"
	MontageEquip          = "equip"
	MontagePlayerHitReact = "player_hit_react"
	MontagePlayerDeath    = "player_death"
	MontageEnemyHit       = "enemy_hit"
	MontageEnemyDeath     = "enemy_death"
	MontageEnemyAttack    = "enemy_attack"

	SectionStartWhip     = "StartWhip"
	SectionEquip         = "Equip"
	SectionHitReactFront = "HitReactFront"
	SectionDefault       = "Default"
)

// PlayMontage asks the animation host to play section of montage on e,
// replacing whatever was playing.
func PlayMontage(w *ecs.World, e ecs.Entity, montage, section string, rate float64) {
	if !ecs.IsAlive(w, e) || montage == "" {
		return
	}
	if rate <= 0 {
		rate = 1
	}
	m, ok := ecs.Get(w, e, component.MontageComponent.Kind())
	if !ok {
		m = &component.Montage{}
		if err := ecs.Add(w, e, component.MontageComponent.Kind(), m); err != nil {
			return
		}
	}
	*m = component.Montage{
		Name:     montage,
		Section:  section,
		PlayRate: rate,
		Playing:  true,
		Fired:    map[int]bool{},
	}
	ecs.Publish(w, component.EventMontagePlayed, component.MontagePlayed{
		Entity:   e.Ref(),
		Montage:  montage,
		Section:  section,
		PlayRate: rate,
	})
}

// PauseAnimations freezes e's animation on its current pose.
func PauseAnimations(w *ecs.World, e ecs.Entity) {
	if m, ok := ecs.Get(w, e, component.MontageComponent.Kind()); ok {
		m.Paused = true
	}
}

// Notify queues an animation notify for e. Hosts call it when a montage
// reaches a notify; MontageSystem does the same for the bundled frontends.
func Notify(w *ecs.World, e ecs.Entity, name string) {
	if !ecs.IsAlive(w, e) {
		return
	}
	q, ok := ecs.Get(w, e, component.AnimNotifiesComponent.Kind())
	if !ok {
		q = &component.AnimNotifies{}
		if err := ecs.Add(w, e, component.AnimNotifiesComponent.Kind(), q); err != nil {
			return
		}
	}
	q.Names = append(q.Names, name)
}

// MontageSystem advances requested montages using section lengths and
// notify times from the montage table. It stands in for an engine's
// animation system.
type MontageSystem struct {
	tables *prefabs.Tables
}

func NewMontageSystem(tables *prefabs.Tables) *MontageSystem {
	return &MontageSystem{tables: tables}
}

// SetTables swaps in reloaded tables.
func (s *MontageSystem) SetTables(tables *prefabs.Tables) {
	s.tables = tables
}

func (s *MontageSystem) Update(w *ecs.World) {
	if s == nil || s.tables == nil {
		return
	}
	dt := w.DeltaTime()
	ecs.ForEach(w, component.MontageComponent.Kind(), func(e ecs.Entity, m *component.Montage) {
		if !m.Playing || m.Paused {
			return
		}
		section, ok := s.tables.Section(m.Name, m.Section)
		if !ok {
			m.Playing = false
			return
		}
		if m.Fired == nil {
			m.Fired = map[int]bool{}
		}
		m.Elapsed += dt * m.PlayRate
		for i, n := range section.Notifies {
			if m.Fired[i] || m.Elapsed < n.At {
				continue
			}
			m.Fired[i] = true
			Notify(w, e, n.Name)
		}
		if m.Elapsed >= section.Length {
			m.Playing = false
		}
	})
}
