package system

import (
	"github.com/milk9111/wraith/common"
	"github.com/milk9111/wraith/ecs"
	"github.com/milk9111/wraith/ecs/component"
)

const beamOvershoot = 1.25

// WhipSocket is the world location the whip beam leaves from.
func WhipSocket(w *ecs.World, e ecs.Entity) common.Vec3 {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return common.Vec3{}
	}
	offset := common.Vec3{}
	if player, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
		offset = player.MuzzleOffset
	}
	return t.Location().Add(offset.RotateYaw(t.Yaw))
}

// GetBeamEndLocation finds where the crosshair points, then traces from
// the socket toward it so obstacles between the two are hit first. The
// bool is false when the socket trace hits nothing; the hit location is
// then the crosshair point.
func GetBeamEndLocation(w *ecs.World, e ecs.Entity, socket common.Vec3) (TraceHit, bool) {
	_, beamEnd, _ := TraceUnderCrosshairs(w, e)

	end := socket.Add(beamEnd.Sub(socket).Scale(beamOvershoot))
	hit, ok := LineTrace(w, socket, end, traceIgnores(w, e)...)
	if !ok {
		return TraceHit{Location: beamEnd}, false
	}
	return hit, true
}

// SendBullet resolves one whip crack: whatever the beam hits reacts, enemies
// take body or head damage, and the beam is drawn to the hit point.
func SendBullet(w *ecs.World, e ecs.Entity) {
	_, weapon, ok := EquippedWeapon(w, e)
	if !ok {
		return
	}
	player, _ := ecs.Get(w, e, component.PlayerComponent.Kind())

	socket := WhipSocket(w, e)
	hit, ok := GetBeamEndLocation(w, e, socket)
	if !ok {
		return
	}

	target := hit.Entity
	reacted := false
	if ecs.Has(w, target, component.WhipHittableComponent.Kind()) {
		WhipHit(w, target, hit)
		reacted = true
	}
	if enemy, ok := ecs.Get(w, target, component.EnemyComponent.Kind()); ok {
		damage := weapon.Damage
		headshot := enemy.HeadBone != "" && hit.Bone == enemy.HeadBone
		if headshot {
			damage = weapon.HeadShotDamage
		}
		ApplyDamage(w, target, damage, e, headshot)
		reacted = true
	}
	if !reacted && player != nil {
		spawnParticles(w, player.ImpactParticles, hit.Location)
	}

	if player != nil && player.BeamParticles != "" {
		ecs.Publish(w, component.EventBeam, component.Beam{System: player.BeamParticles, From: socket, To: hit.Location})
	}
}

// WhipHit runs target's reaction to being struck by the beam.
func WhipHit(w *ecs.World, target ecs.Entity, hit TraceHit) {
	if ecs.Has(w, target, component.EnemyComponent.Kind()) {
		EnemyWhipHit(w, target, hit)
		return
	}
	if ecs.Has(w, target, component.TeleportedTagComponent.Kind()) {
		TeleportedWhipHit(w, target, hit)
		return
	}
	if wh, ok := ecs.Get(w, target, component.WhipHittableComponent.Kind()); ok {
		playSound(w, wh.ImpactSound, hit.Location)
		spawnParticles(w, wh.ImpactParticles, hit.Location)
	}
}

// TeleportedWhipHit makes a prop vanish in a puff.
func TeleportedWhipHit(w *ecs.World, target ecs.Entity, hit TraceHit) {
	wh, ok := ecs.Get(w, target, component.WhipHittableComponent.Kind())
	if !ok {
		return
	}
	playSound(w, wh.TeleportSound, locationOf(w, target))
	spawnParticles(w, wh.TeleportParticles, hit.Location)
	ecs.DestroyEntity(w, target)
}
