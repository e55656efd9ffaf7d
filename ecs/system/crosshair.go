package system

import (
	"github.com/milk9111/wraith/common"
	"github.com/milk9111/wraith/ecs"
	"github.com/milk9111/wraith/ecs/component"
)

const (
	crosshairWalkSpeed   = 600.0
	crosshairInAirTarget = 2.25
	crosshairInAirSpeed  = 2.25
	crosshairLandSpeed   = 30.0
	crosshairAimTarget   = 0.6
	crosshairAimSpeed    = 30.0
	crosshairShootTarget = 0.3
	crosshairShootSpeed  = 60.0
	crosshairBaseSpread  = 0.5
)

// CrosshairSystem recomputes the spread multiplier every frame.
type CrosshairSystem struct{}

func NewCrosshairSystem() *CrosshairSystem {
	return &CrosshairSystem{}
}

func (s *CrosshairSystem) Update(w *ecs.World) {
	dt := w.DeltaTime()
	ecs.ForEach(w, component.CrosshairComponent.Kind(), func(e ecs.Entity, ch *component.Crosshair) {
		CalculateCrosshairSpread(w, e, ch, dt)
	})
}

// CalculateCrosshairSpread updates each factor and sums them. The aim factor
// interpolates from the in-air factor rather than from itself, so it settles
// at whatever the in-air factor approaches on each step.
func CalculateCrosshairSpread(w *ecs.World, e ecs.Entity, ch *component.Crosshair, dt float64) {
	var mv component.Movement
	if m, ok := ecs.Get(w, e, component.MovementComponent.Kind()); ok {
		mv = *m
	}
	var combat component.Combat
	if c, ok := ecs.Get(w, e, component.CombatComponent.Kind()); ok {
		combat = *c
	}

	speed := common.V3(mv.VelX, mv.VelY, 0).Len2D()
	ch.VelocityFactor = common.MapRangeClamped(0, crosshairWalkSpeed, 0, 1, speed)

	if mv.Falling {
		ch.InAirFactor = common.FInterpTo(ch.InAirFactor, crosshairInAirTarget, dt, crosshairInAirSpeed)
	} else {
		ch.InAirFactor = common.FInterpTo(ch.InAirFactor, 0, dt, crosshairLandSpeed)
	}

	aimTarget := 0.0
	if combat.Aiming {
		aimTarget = crosshairAimTarget
	}
	ch.AimFactor = common.FInterpTo(ch.InAirFactor, aimTarget, dt, crosshairAimSpeed)

	shootTarget := 0.0
	if combat.Shooting {
		shootTarget = crosshairShootTarget
	}
	ch.ShootingFactor = common.FInterpTo(ch.ShootingFactor, shootTarget, dt, crosshairShootSpeed)

	ch.SpreadMultiplier = crosshairBaseSpread + ch.VelocityFactor + ch.InAirFactor - ch.AimFactor + ch.ShootingFactor
}
