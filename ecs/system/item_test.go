package system_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/wraith/common"
	"github.com/milk9111/wraith/ecs"
	"github.com/milk9111/wraith/ecs/component"
	"github.com/milk9111/wraith/ecs/system"
)

func TestItemInterpMotion(t *testing.T) {
	rise := component.Curve{{Time: 0, Value: 0}, {Time: 0.7, Value: 1}}
	hump := component.Curve{{Time: 0, Value: 0}, {Time: 0.2, Value: 1}, {Time: 0.7, Value: 0.5}}
	grow := component.Curve{{Time: 0, Value: 1}, {Time: 0.7, Value: 2}}

	tests := []struct {
		name    string
		start   common.Vec3
		itemYaw float64
		camYaw  float64
		frames  int
		zCurve  component.Curve
		scale   component.Curve
	}{
		{name: "rising", start: common.V3(120, 50, 0), itemYaw: 40, frames: 10, zCurve: rise, scale: grow},
		{name: "past the hump", start: common.V3(-60, 200, 10), itemYaw: 90, camYaw: 30, frames: 15, zCurve: hump},
		{name: "first frame", start: common.V3(300, -80, 5), itemYaw: -15, camYaw: -45, frames: 1, zCurve: hump, scale: grow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t)
			cam, ok := ecs.Get(r.w, r.player, component.CameraComponent.Kind())
			require.True(t, ok)
			cam.Yaw = tt.camYaw

			loot := r.spawnWeapon(t, "ar", tt.start)
			tr, _ := ecs.Get(r.w, loot, component.TransformComponent.Kind())
			tr.Yaw = tt.itemYaw
			interp, _ := ecs.Get(r.w, loot, component.ItemInterpComponent.Kind())
			interp.ZCurve = tt.zCurve
			interp.ScaleCurve = tt.scale

			system.StartItemCurve(r.w, loot, r.player)
			target, ok := system.CameraInterpLocation(r.w, r.player)
			require.True(t, ok)

			sched := ecs.NewScheduler(r.sys.Interp)
			for range tt.frames - 1 {
				sched.Step(r.w, frame)
			}
			before := *tr
			elapsed := r.w.Timers().Elapsed(interp.Timer)
			require.GreaterOrEqual(t, elapsed, 0.0)
			sched.Step(r.w, frame)

			start := interp.Start
			deltaZ := math.Abs(target.Z - start.Z)
			assert.InDelta(t, start.Z+tt.zCurve.Eval(elapsed)*deltaZ, tr.Z, 1e-9, "z follows the curve")
			assert.InDelta(t, tt.camYaw+(tt.itemYaw-tt.camYaw), tr.Yaw, 1e-9, "yaw keeps its offset from the camera")
			if tt.scale != nil {
				assert.InDelta(t, tt.scale.Eval(elapsed), tr.Scale, 1e-9)
			}

			for _, axis := range []struct {
				name          string
				from, to, aim float64
			}{
				{name: "x", from: before.X, to: tr.X, aim: target.X},
				{name: "y", from: before.Y, to: tr.Y, aim: target.Y},
			} {
				assert.Less(t, math.Abs(axis.aim-axis.to), math.Abs(axis.aim-axis.from), "%s eases toward the camera", axis.name)
				assert.GreaterOrEqual(t, (axis.aim-axis.to)*(axis.aim-axis.from), 0.0, "%s does not overshoot", axis.name)
			}
			assert.Equal(t, component.ItemEquipInterping, r.item(t, loot).State)
		})
	}
}

func TestItemYawFollowsCameraTurn(t *testing.T) {
	r := newRig(t)
	loot := r.spawnWeapon(t, "ar", lootInReach)
	tr, _ := ecs.Get(r.w, loot, component.TransformComponent.Kind())
	tr.Yaw = 40

	system.StartItemCurve(r.w, loot, r.player)
	cam, _ := ecs.Get(r.w, r.player, component.CameraComponent.Kind())
	cam.Yaw += 25

	ecs.NewScheduler(r.sys.Interp).Step(r.w, frame)
	assert.InDelta(t, 65, tr.Yaw, 1e-9)
}

func TestFinishInterpingResetsScale(t *testing.T) {
	r := newRig(t)
	loot := r.spawnWeapon(t, "ar", lootInReach)
	system.StartItemCurve(r.w, loot, r.player)

	r.run(ecs.NewScheduler(r.sys.Interp), 0.8)

	tr, _ := ecs.Get(r.w, loot, component.TransformComponent.Kind())
	assert.InDelta(t, 1, tr.Scale, 1e-9)
	interp, _ := ecs.Get(r.w, loot, component.ItemInterpComponent.Kind())
	assert.False(t, interp.Active)
	assert.Equal(t, component.ItemPickedUp, r.item(t, loot).State)
}
