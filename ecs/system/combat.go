package system

import (
	"log/slog"

	"github.com/milk9111/wraith/ecs"
	"github.com/milk9111/wraith/ecs/component"
)

// EquippedWeapon returns the weapon entity the character holds.
func EquippedWeapon(w *ecs.World, e ecs.Entity) (ecs.Entity, *component.Weapon, bool) {
	inv, ok := ecs.Get(w, e, component.InventoryComponent.Kind())
	if !ok || inv.Equipped == 0 {
		return ecs.NoEntity, nil, false
	}
	weaponEnt := entityOf(inv.Equipped)
	weapon, ok := ecs.Get(w, weaponEnt, component.WeaponComponent.Kind())
	if !ok {
		return ecs.NoEntity, nil, false
	}
	return weaponEnt, weapon, true
}

func setCombatState(w *ecs.World, e ecs.Entity, c *component.Combat, to component.CombatState) {
	if c.State == to {
		return
	}
	from := c.State
	c.State = to
	ecs.Publish(w, component.EventCombatState, component.CombatStateChanged{Entity: e.Ref(), From: from, To: to})
}

func FireButtonPressed(w *ecs.World, e ecs.Entity) {
	c, ok := ecs.Get(w, e, component.CombatComponent.Kind())
	if !ok {
		return
	}
	c.FireButtonPressed = true
	FireWeapon(w, e)
}

func FireButtonReleased(w *ecs.World, e ecs.Entity) {
	if c, ok := ecs.Get(w, e, component.CombatComponent.Kind()); ok {
		c.FireButtonPressed = false
	}
}

func AimButtonPressed(w *ecs.World, e ecs.Entity) {
	if c, ok := ecs.Get(w, e, component.CombatComponent.Kind()); ok {
		c.Aiming = true
	}
}

func AimButtonReleased(w *ecs.World, e ecs.Entity) {
	if c, ok := ecs.Get(w, e, component.CombatComponent.Kind()); ok {
		c.Aiming = false
	}
}

func WeaponHasAmmo(w *ecs.World, e ecs.Entity) bool {
	_, weapon, ok := EquippedWeapon(w, e)
	return ok && weapon.Ammo > 0
}

// CarryingAmmo reports whether the character has reserve ammo for the
// equipped weapon.
func CarryingAmmo(w *ecs.World, e ecs.Entity) bool {
	_, weapon, ok := EquippedWeapon(w, e)
	if !ok {
		return false
	}
	stock, ok := ecs.Get(w, e, component.AmmoStockComponent.Kind())
	return ok && stock.Count(weapon.AmmoType) > 0
}

// FireWeapon cracks the whip once if the character is free to act and the
// magazine is not empty.
func FireWeapon(w *ecs.World, e ecs.Entity) {
	c, ok := ecs.Get(w, e, component.CombatComponent.Kind())
	if !ok {
		return
	}
	_, weapon, ok := EquippedWeapon(w, e)
	if !ok {
		return
	}
	if c.State != component.CombatUnoccupied {
		slog.Debug("combat: fire ignored", "entity", e, "state", c.State)
		return
	}
	if weapon.Ammo <= 0 {
		return
	}

	if player, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
		playSound(w, player.FireSound, locationOf(w, e))
	}
	SendBullet(w, e)
	PlayMontage(w, e, MontageWhipFire, SectionStartWhip, 1)
	weapon.DecrementAmmo()
	StartCrosshairWhipFire(w, e)
	StartFireTimer(w, e)
}

// StartFireTimer blocks further actions until the automatic fire delay
// has passed.
func StartFireTimer(w *ecs.World, e ecs.Entity) {
	c, ok := ecs.Get(w, e, component.CombatComponent.Kind())
	if !ok {
		return
	}
	rate := 0.1
	if player, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
		rate = player.AutomaticFireRate
	}
	setCombatState(w, e, c, component.CombatFireTimerInProgress)
	w.Timers().Set(&c.AutoFireTimer, rate, func() { autoFireReset(w, e) })
}

func autoFireReset(w *ecs.World, e ecs.Entity) {
	c, ok := ecs.Get(w, e, component.CombatComponent.Kind())
	if !ok {
		return
	}
	setCombatState(w, e, c, component.CombatUnoccupied)
	if WeaponHasAmmo(w, e) {
		if c.FireButtonPressed {
			FireWeapon(w, e)
		}
		return
	}
	ReloadWeapon(w, e)
}

// StartCrosshairWhipFire widens the crosshair for ShootTimeDuration.
func StartCrosshairWhipFire(w *ecs.World, e ecs.Entity) {
	c, ok := ecs.Get(w, e, component.CombatComponent.Kind())
	if !ok {
		return
	}
	duration := 0.05
	if player, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
		duration = player.ShootTimeDuration
	}
	c.Shooting = true
	w.Timers().Set(&c.ShootTimer, duration, func() {
		if c, ok := ecs.Get(w, e, component.CombatComponent.Kind()); ok {
			c.Shooting = false
		}
	})
}

func ReloadButtonPressed(w *ecs.World, e ecs.Entity) {
	ReloadWeapon(w, e)
}

// ReloadWeapon starts the reload montage when the character is free, armed
// and carrying matching ammo. The magazine fills on FinishReloading.
func ReloadWeapon(w *ecs.World, e ecs.Entity) {
	c, ok := ecs.Get(w, e, component.CombatComponent.Kind())
	if !ok {
		return
	}
	if c.State != component.CombatUnoccupied {
		slog.Debug("combat: reload ignored", "entity", e, "state", c.State)
		return
	}
	_, weapon, ok := EquippedWeapon(w, e)
	if !ok || !CarryingAmmo(w, e) {
		return
	}
	setCombatState(w, e, c, component.CombatReloading)
	PlayMontage(w, e, MontageReload, weapon.ReloadSection, 1)
}

// FinishReloading moves as much reserve ammo as fits into the magazine.
func FinishReloading(w *ecs.World, e ecs.Entity) {
	c, ok := ecs.Get(w, e, component.CombatComponent.Kind())
	if !ok {
		return
	}
	setCombatState(w, e, c, component.CombatUnoccupied)

	_, weapon, ok := EquippedWeapon(w, e)
	if !ok {
		return
	}
	stock, ok := ecs.Get(w, e, component.AmmoStockComponent.Kind())
	if !ok || stock.Carried == nil {
		return
	}
	carried, ok := stock.Carried[weapon.AmmoType]
	if !ok {
		return
	}
	space := weapon.MagazineSize - weapon.Ammo
	moved := min(space, carried)
	if moved <= 0 {
		return
	}
	weapon.ReloadAmmo(moved)
	stock.Carried[weapon.AmmoType] = carried - moved
	slog.Info("combat: reloaded", "entity", e, "ammo", weapon.Ammo, "carried", stock.Carried[weapon.AmmoType])
}

// GrabClip records where the clip sat on the weapon and marks it as being
// carried by the hand.
func GrabClip(w *ecs.World, e ecs.Entity) {
	c, ok := ecs.Get(w, e, component.CombatComponent.Kind())
	if !ok {
		return
	}
	weaponEnt, weapon, ok := EquippedWeapon(w, e)
	if !ok {
		return
	}
	if t, ok := ecs.Get(w, weaponEnt, component.TransformComponent.Kind()); ok {
		c.ClipTransform = *t
	}
	weapon.MovingClip = true
}

func ReleaseClip(w *ecs.World, e ecs.Entity) {
	if _, weapon, ok := EquippedWeapon(w, e); ok {
		weapon.MovingClip = false
	}
}

func FinishEquipping(w *ecs.World, e ecs.Entity) {
	if c, ok := ecs.Get(w, e, component.CombatComponent.Kind()); ok {
		setCombatState(w, e, c, component.CombatUnoccupied)
	}
}
