package system

import (
	"github.com/milk9111/wraith/ecs"
	"github.com/milk9111/wraith/ecs/component"
)

// ApplyDamage routes damage to the target's handler and returns the amount
// applied. Targets without Health ignore it.
func ApplyDamage(w *ecs.World, target ecs.Entity, amount float64, instigator ecs.Entity, headshot bool) float64 {
	if amount <= 0 || !ecs.Has(w, target, component.HealthComponent.Kind()) {
		return 0
	}
	switch {
	case ecs.Has(w, target, component.EnemyComponent.Kind()):
		EnemyTakeDamage(w, target, amount, instigator, headshot)
	case ecs.Has(w, target, component.PlayerComponent.Kind()):
		PlayerTakeDamage(w, target, amount, instigator)
	default:
		h, _ := ecs.Get(w, target, component.HealthComponent.Kind())
		h.Current = max(0, h.Current-amount)
	}

	remaining := 0.0
	if h, ok := ecs.Get(w, target, component.HealthComponent.Kind()); ok {
		remaining = h.Current
	}
	ecs.Publish(w, component.EventDamage, component.Damage{
		Target:     target.Ref(),
		Instigator: instigator.Ref(),
		Amount:     amount,
		Remaining:  remaining,
		Headshot:   headshot,
	})
	return amount
}

// subtractHealth clamps at zero and reports whether the hit was lethal.
func subtractHealth(h *component.Health, amount float64) bool {
	if h.Current-amount <= 0 {
		h.Current = 0
		return true
	}
	h.Current -= amount
	return false
}
