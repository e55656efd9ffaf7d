package system

import (
	"log/slog"

	"github.com/milk9111/wraith/ecs"
	"github.com/milk9111/wraith/ecs/component"
)

// PlayerTakeDamage subtracts health. A lethal hit kills the player and tells
// the attacking enemy's blackboard.
func PlayerTakeDamage(w *ecs.World, e ecs.Entity, amount float64, instigator ecs.Entity) {
	health, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok {
		return
	}
	if !subtractHealth(health, amount) {
		return
	}
	PlayerDie(w, e)
	if bb := blackboardOf(w, instigator); bb != nil {
		bb.CharacterDead = true
	}
}

// PlayerDie plays the death montage once.
func PlayerDie(w *ecs.World, e ecs.Entity) {
	player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok || player.Dead {
		return
	}
	player.Dead = true
	PlayMontage(w, e, MontagePlayerDeath, SectionDefault, 1)
	StartCrosshairWhipFire(w, e)
	slog.Info("player: died", "entity", e)
	ecs.Publish(w, component.EventDied, component.Died{Entity: e.Ref()})
}

// FinishPlayerDeath freezes the pose and stops accepting input.
func FinishPlayerDeath(w *ecs.World, e ecs.Entity) {
	player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	PauseAnimations(w, e)
	player.InputDisabled = true
}

// PlayerStun staggers a living player.
func PlayerStun(w *ecs.World, e ecs.Entity) {
	health, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok || health.Current <= 0 {
		return
	}
	PlayMontage(w, e, MontagePlayerHitReact, SectionHitReactFront, 1)
	setPlayerStunned(w, e, true)
}

func setPlayerStunned(w *ecs.World, e ecs.Entity, stunned bool) {
	player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok || player.Stunned == stunned {
		return
	}
	player.Stunned = stunned
	ecs.Publish(w, component.EventStunned, component.Stunned{Entity: e.Ref(), Stunned: stunned})
}
