package component

import (
	"fmt"

	"github.com/milk9111/wraith/timer"
)

type WeaponType string

const (
	WeaponSniper WeaponType = "sniper"
	WeaponAR     WeaponType = "ar"
)

// Weapon holds the magazine and throw state of a weapon item.
type Weapon struct {
	Key            string
	Type           WeaponType
	AmmoType       AmmoType
	Ammo           int
	MagazineSize   int
	ReloadSection  string
	ClipBone       string
	Damage         float64
	HeadShotDamage float64
	ThrowTime      float64
	ThrowImpulse   float64

	MovingClip bool
	Falling    bool
	ThrowTimer timer.Handle
}

// DecrementAmmo uses one round, never going below zero.
func (w *Weapon) DecrementAmmo() {
	if w.Ammo > 0 {
		w.Ammo--
	}
}

// ReloadAmmo adds amount rounds to the magazine. Callers clamp amount to the
// free space first; overfilling panics.
func (w *Weapon) ReloadAmmo(amount int) {
	if w.Ammo+amount > w.MagazineSize {
		panic(fmt.Sprintf("weapon: reload %d into %d/%d overfills magazine", amount, w.Ammo, w.MagazineSize))
	}
	w.Ammo += amount
}

var WeaponComponent = NewComponent[Weapon]()
