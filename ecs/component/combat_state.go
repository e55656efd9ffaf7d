package component

import "github.com/milk9111/wraith/timer"

type CombatState int

const (
	CombatUnoccupied CombatState = iota
	CombatFireTimerInProgress
	CombatReloading
	CombatEquipping
)

func (s CombatState) String() string {
	switch s {
	case CombatUnoccupied:
		return "unoccupied"
	case CombatFireTimerInProgress:
		return "fire_timer_in_progress"
	case CombatReloading:
		return "reloading"
	case CombatEquipping:
		return "equipping"
	default:
		return "unknown"
	}
}

// Combat is the player's combat state machine and its timers.
type Combat struct {
	State             CombatState
	FireButtonPressed bool
	Aiming            bool
	// Shooting is true for ShootTimeDuration after each shot; the crosshair
	// widens while it is set.
	Shooting bool

	AutoFireTimer timer.Handle
	ShootTimer    timer.Handle
	// ClipTransform is where the clip sat on the weapon when the hand
	// grabbed it.
	ClipTransform Transform
}

var CombatComponent = NewComponent[Combat]()
