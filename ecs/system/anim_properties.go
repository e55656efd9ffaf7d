package system

import (
	"github.com/milk9111/wraith/common"
	"github.com/milk9111/wraith/ecs"
	"github.com/milk9111/wraith/ecs/component"
)

// AnimPropertiesSystem samples movement and combat state into the values an
// animation graph reads. Enemies only get Speed.
type AnimPropertiesSystem struct{}

func NewAnimPropertiesSystem() *AnimPropertiesSystem {
	return &AnimPropertiesSystem{}
}

func (s *AnimPropertiesSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AnimPropertiesComponent.Kind(), func(e ecs.Entity, props *component.AnimProperties) {
		UpdateAnimationProperties(w, e, props)
	})
}

func UpdateAnimationProperties(w *ecs.World, e ecs.Entity, props *component.AnimProperties) {
	var mv component.Movement
	if m, ok := ecs.Get(w, e, component.MovementComponent.Kind()); ok {
		mv = *m
	}
	velocity := common.V3(mv.VelX, mv.VelY, mv.VelZ)
	props.Speed = velocity.Len2D()

	if ecs.Has(w, e, component.EnemyComponent.Kind()) {
		return
	}

	props.InAir = mv.Falling
	props.Accelerating = mv.Accelerating

	if c, ok := ecs.Get(w, e, component.CombatComponent.Kind()); ok {
		props.CombatState = c.State
		props.Aiming = c.Aiming
		props.Reloading = c.State == component.CombatReloading
		props.Equipping = c.State == component.CombatEquipping
		props.ShouldUseFABRIK = c.State == component.CombatUnoccupied || c.State == component.CombatFireTimerInProgress
	}

	aimYaw := 0.0
	if cam, ok := ecs.Get(w, e, component.CameraComponent.Kind()); ok {
		aimYaw = cam.Yaw
	} else if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		aimYaw = t.Yaw
	}
	props.MovementOffsetYaw = common.NormalizeAxis(common.YawOf(velocity) - aimYaw)
	if props.Accelerating {
		props.LastMovementOffsetYaw = props.MovementOffsetYaw
	}

	if _, weapon, ok := EquippedWeapon(w, e); ok {
		props.EquippedWeaponType = weapon.Type
	}
}
