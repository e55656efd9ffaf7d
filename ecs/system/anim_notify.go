package system

import (
	"log/slog"

	"github.com/milk9111/wraith/ecs"
	"github.com/milk9111/wraith/ecs/component"
)

// Animation notify names raised by montages.
const (
	NotifyFinishReloading       = "finish_reloading"
	NotifyGrabClip              = "grab_clip"
	NotifyReleaseClip           = "release_clip"
	NotifyFinishEquipping       = "finish_equipping"
	NotifyFinishDeath           = "finish_death"
	NotifyEndStun               = "end_stun"
	NotifyActivateLeftWeapon    = "activate_left_weapon"
	NotifyDeactivateLeftWeapon  = "deactivate_left_weapon"
	NotifyActivateRightWeapon   = "activate_right_weapon"
	NotifyDeactivateRightWeapon = "deactivate_right_weapon"
	NotifyActivateLeftFoot      = "activate_left_foot"
	NotifyDeactivateLeftFoot    = "deactivate_left_foot"
	NotifyActivateRightFoot     = "activate_right_foot"
	NotifyDeactivateRightFoot   = "deactivate_right_foot"
)

type NotifyHandler func(w *ecs.World, e ecs.Entity)

func defaultNotifyHandlers() map[string]NotifyHandler {
	return map[string]NotifyHandler{
		NotifyFinishReloading: FinishReloading,
		NotifyGrabClip:        GrabClip,
		NotifyReleaseClip:     ReleaseClip,
		NotifyFinishEquipping: FinishEquipping,
		NotifyFinishDeath: func(w *ecs.World, e ecs.Entity) {
			if ecs.Has(w, e, component.EnemyComponent.Kind()) {
				FinishEnemyDeath(w, e)
				return
			}
			FinishPlayerDeath(w, e)
		},
		NotifyEndStun: func(w *ecs.World, e ecs.Entity) {
			if ecs.Has(w, e, component.EnemyComponent.Kind()) {
				SetEnemyStunned(w, e, false)
				return
			}
			setPlayerStunned(w, e, false)
		},
		NotifyActivateLeftWeapon: func(w *ecs.World, e ecs.Entity) {
			SetWeaponVolume(w, e, component.VolumeLeftWeapon, true)
		},
		NotifyDeactivateLeftWeapon: func(w *ecs.World, e ecs.Entity) {
			SetWeaponVolume(w, e, component.VolumeLeftWeapon, false)
		},
		NotifyActivateRightWeapon: func(w *ecs.World, e ecs.Entity) {
			SetWeaponVolume(w, e, component.VolumeRightWeapon, true)
		},
		NotifyDeactivateRightWeapon: func(w *ecs.World, e ecs.Entity) {
			SetWeaponVolume(w, e, component.VolumeRightWeapon, false)
		},
		NotifyActivateLeftFoot: func(w *ecs.World, e ecs.Entity) {
			SetWeaponVolume(w, e, component.VolumeLeftFoot, true)
		},
		NotifyDeactivateLeftFoot: func(w *ecs.World, e ecs.Entity) {
			SetWeaponVolume(w, e, component.VolumeLeftFoot, false)
		},
		NotifyActivateRightFoot: func(w *ecs.World, e ecs.Entity) {
			SetWeaponVolume(w, e, component.VolumeRightFoot, true)
		},
		NotifyDeactivateRightFoot: func(w *ecs.World, e ecs.Entity) {
			SetWeaponVolume(w, e, component.VolumeRightFoot, false)
		},
	}
}

var notifyHandlers = defaultNotifyHandlers()

// HandleAnimNotify runs the handler for a single notify immediately.
func HandleAnimNotify(w *ecs.World, e ecs.Entity, name string) {
	h, ok := notifyHandlers[name]
	if !ok {
		slog.Debug("anim: unhandled notify", "entity", e, "notify", name)
		return
	}
	h(w, e)
}

// AnimNotifySystem drains queued notifies and dispatches them in the order
// they were raised.
type AnimNotifySystem struct{}

func NewAnimNotifySystem() *AnimNotifySystem {
	return &AnimNotifySystem{}
}

func (s *AnimNotifySystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AnimNotifiesComponent.Kind(), func(e ecs.Entity, q *component.AnimNotifies) {
		names := q.Names
		q.Names = nil
		for _, name := range names {
			if !ecs.IsAlive(w, e) {
				return
			}
			HandleAnimNotify(w, e, name)
		}
	})
}
