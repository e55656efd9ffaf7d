package system

import (
	"log/slog"

	"github.com/milk9111/wraith/common"
	"github.com/milk9111/wraith/ecs"
	"github.com/milk9111/wraith/ecs/component"
)

func blackboardOf(w *ecs.World, e ecs.Entity) *component.Blackboard {
	bb, ok := ecs.Get(w, e, component.BlackboardComponent.Kind())
	if !ok {
		return nil
	}
	return bb
}

// EnemyTakeDamage subtracts health and starts the death sequence on a
// lethal hit. The instigator becomes the enemy's target.
func EnemyTakeDamage(w *ecs.World, e ecs.Entity, amount float64, instigator ecs.Entity, headshot bool) {
	enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
	if !ok {
		return
	}
	health, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok {
		return
	}
	if bb := blackboardOf(w, e); bb != nil && ecs.IsAlive(w, instigator) {
		bb.Target = instigator.Ref()
	}

	lethal := subtractHealth(health, amount)
	storeHitNumber(w, e, enemy, amount, headshot)
	if lethal {
		EnemyDie(w, e)
	}
}

func storeHitNumber(w *ecs.World, e ecs.Entity, enemy *component.Enemy, amount float64, headshot bool) {
	if enemy.HitNumberLifetime <= 0 {
		return
	}
	enemy.HitNumberSeq++
	n := component.HitNumber{ID: enemy.HitNumberSeq, Amount: amount, Location: locationOf(w, e), Headshot: headshot}
	enemy.HitNumbers = append(enemy.HitNumbers, n)
	ecs.Publish(w, component.EventHitNumber, component.HitNumberChanged{Enemy: e.Ref(), Number: n, Added: true})
	w.Timers().After(enemy.HitNumberLifetime, func() { destroyHitNumber(w, e, n.ID) })
}

func destroyHitNumber(w *ecs.World, e ecs.Entity, id uint64) {
	enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
	if !ok {
		return
	}
	for i, n := range enemy.HitNumbers {
		if n.ID != id {
			continue
		}
		enemy.HitNumbers = append(enemy.HitNumbers[:i], enemy.HitNumbers[i+1:]...)
		ecs.Publish(w, component.EventHitNumber, component.HitNumberChanged{Enemy: e.Ref(), Number: n, Added: false})
		return
	}
}

// EnemyWhipHit plays the impact, shows the health bar and rolls for a stun.
func EnemyWhipHit(w *ecs.World, e ecs.Entity, hit TraceHit) {
	enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
	if !ok {
		return
	}
	if wh, ok := ecs.Get(w, e, component.WhipHittableComponent.Kind()); ok {
		playSound(w, wh.ImpactSound, hit.Location)
		spawnParticles(w, wh.ImpactParticles, hit.Location)
	}
	if enemy.Dying {
		return
	}
	ShowHealthBar(w, e)

	if w.Rand().Float64() <= enemy.StunChance {
		PlayHitMontage(w, e, SectionHitReactFront, 1)
		SetEnemyStunned(w, e, true)
	}
}

// ShowHealthBar reveals the bar for HealthBarDisplayTime; another hit
// restarts the countdown.
func ShowHealthBar(w *ecs.World, e ecs.Entity) {
	enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
	if !ok {
		return
	}
	setHealthBar(w, e, enemy, true)
	w.Timers().Set(&enemy.HealthBarTimer, enemy.HealthBarDisplayTime, func() { HideHealthBar(w, e) })
}

func HideHealthBar(w *ecs.World, e ecs.Entity) {
	if enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind()); ok {
		setHealthBar(w, e, enemy, false)
	}
}

func setHealthBar(w *ecs.World, e ecs.Entity, enemy *component.Enemy, visible bool) {
	if enemy.HealthBarVisible == visible {
		return
	}
	enemy.HealthBarVisible = visible
	ecs.Publish(w, component.EventHealthBar, component.HealthBar{Entity: e.Ref(), Visible: visible})
}

// PlayHitMontage plays a hit reaction unless one played recently. The
// cool-down is a random time between HitReactMin and HitReactMax.
func PlayHitMontage(w *ecs.World, e ecs.Entity, section string, rate float64) {
	enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
	if !ok || !enemy.CanHitReact {
		return
	}
	PlayMontage(w, e, MontageEnemyHit, section, rate)

	enemy.CanHitReact = false
	delay := enemy.HitReactMin + w.Rand().Float64()*(enemy.HitReactMax-enemy.HitReactMin)
	w.Timers().Set(&enemy.HitReactTimer, delay, func() {
		if enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind()); ok {
			enemy.CanHitReact = true
		}
	})
}

func SetEnemyStunned(w *ecs.World, e ecs.Entity, stunned bool) {
	enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
	if !ok {
		return
	}
	enemy.Stunned = stunned
	if bb := blackboardOf(w, e); bb != nil {
		bb.Stunned = stunned
	}
	ecs.Publish(w, component.EventStunned, component.Stunned{Entity: e.Ref(), Stunned: stunned})
}

// EnemyDie starts the death sequence. Later calls do nothing.
func EnemyDie(w *ecs.World, e ecs.Entity) {
	enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
	if !ok || enemy.Dying {
		return
	}
	enemy.Dying = true

	HideHealthBar(w, e)
	PlayMontage(w, e, MontageEnemyDeath, SectionDefault, 1)
	if bb := blackboardOf(w, e); bb != nil {
		bb.Dead = true
	}
	if mv, ok := ecs.Get(w, e, component.MovementComponent.Kind()); ok {
		*mv = component.Movement{Stopped: true}
	}
	slog.Info("enemy: died", "entity", e, "name", enemy.Name)
	ecs.Publish(w, component.EventDied, component.Died{Entity: e.Ref()})
}

// FinishEnemyDeath freezes the corpse and removes it after DeathTime.
func FinishEnemyDeath(w *ecs.World, e ecs.Entity) {
	enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
	if !ok {
		return
	}
	PauseAnimations(w, e)
	w.Timers().Set(&enemy.DeathTimer, enemy.DeathTime, func() { DestroyEnemy(w, e) })
}

func DestroyEnemy(w *ecs.World, e ecs.Entity) {
	ecs.DestroyEntity(w, e)
}

// PlayAttackMontage swings section and blocks further attacks for
// AttackWaitTime.
func PlayAttackMontage(w *ecs.World, e ecs.Entity, section string, rate float64) {
	enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
	if !ok || enemy.Dying {
		return
	}
	PlayMontage(w, e, MontageEnemyAttack, section, rate)

	setCanAttack(w, e, enemy, false)
	w.Timers().Set(&enemy.AttackWaitTimer, enemy.AttackWaitTime, func() {
		if enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind()); ok {
			setCanAttack(w, e, enemy, true)
		}
	})
}

func setCanAttack(w *ecs.World, e ecs.Entity, enemy *component.Enemy, can bool) {
	enemy.CanAttack = can
	if bb := blackboardOf(w, e); bb != nil {
		bb.CanAttack = can
	}
}

// GetAttackSectionName picks the next attack through selector, falling back
// to a uniform pick.
func GetAttackSectionName(w *ecs.World, e ecs.Entity, selector AttackSelector) string {
	enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
	if !ok || len(enemy.AttackSections) == 0 {
		return ""
	}
	if selector == nil {
		selector = RandomAttackSelector{}
	}
	section := selector.Choose(w, e, enemy.AttackSections)
	for _, s := range enemy.AttackSections {
		if s == section {
			return section
		}
	}
	return RandomAttackSelector{}.Choose(w, e, enemy.AttackSections)
}

// SetWeaponVolume enables or disables one of the enemy's weapon or foot
// overlap volumes. Re-enabling starts a fresh swing, so the player can be hit again.
func SetWeaponVolume(w *ecs.World, e ecs.Entity, volume string, enabled bool) {
	volumes, ok := ecs.Get(w, e, component.OverlapComponent.Kind())
	if !ok {
		return
	}
	for i := range *volumes {
		if (*volumes)[i].Name == volume {
			(*volumes)[i].Enabled = enabled
		}
	}
}

// weaponSocket is the world location of the named weapon or foot volume.
func weaponSocket(w *ecs.World, e ecs.Entity, volume string) common.Vec3 {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return common.Vec3{}
	}
	enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
	if !ok {
		return t.Location()
	}
	var offset common.Vec3
	switch volume {
	case component.VolumeLeftWeapon:
		offset = enemy.LeftWeaponSocket
	case component.VolumeRightWeapon:
		offset = enemy.RightWeaponSocket
	case component.VolumeLeftFoot:
		offset = enemy.LeftFootSocket
	case component.VolumeRightFoot:
		offset = enemy.RightFootSocket
	}
	return t.Location().Add(offset.RotateYaw(t.Yaw))
}

// DoDamage applies the enemy's base damage to victim.
func DoDamage(w *ecs.World, e ecs.Entity, victim ecs.Entity) {
	enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
	if !ok || !ecs.IsAlive(w, victim) {
		return
	}
	ApplyDamage(w, victim, enemy.BaseDamage, e, false)
}

// StunCharacter rolls against the victim's stun chance.
func StunCharacter(w *ecs.World, victim ecs.Entity) {
	player, ok := ecs.Get(w, victim, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	if w.Rand().Float64() <= player.StunChance {
		PlayerStun(w, victim)
	}
}

// onEnemyWeaponOverlap hits the player once per swing.
func onEnemyWeaponOverlap(w *ecs.World, e ecs.Entity, volume string, other ecs.Entity, begin bool) {
	if !begin || !ecs.Has(w, other, component.PlayerTagComponent.Kind()) {
		return
	}
	enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
	if !ok || enemy.Dying {
		return
	}
	DoDamage(w, e, other)
	spawnParticles(w, enemy.BloodParticles, weaponSocket(w, e, volume))
	StunCharacter(w, other)
}

func onEnemyAgroOverlap(w *ecs.World, e ecs.Entity, _ string, other ecs.Entity, begin bool) {
	if !begin || !ecs.Has(w, other, component.PlayerTagComponent.Kind()) {
		return
	}
	if bb := blackboardOf(w, e); bb != nil {
		bb.Target = other.Ref()
	}
}

func onEnemyCombatRangeOverlap(w *ecs.World, e ecs.Entity, _ string, other ecs.Entity, begin bool) {
	if !ecs.Has(w, other, component.PlayerTagComponent.Kind()) {
		return
	}
	enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
	if !ok {
		return
	}
	enemy.InAttackRange = begin
	if bb := blackboardOf(w, e); bb != nil {
		bb.InAttackRange = begin
	}
}
