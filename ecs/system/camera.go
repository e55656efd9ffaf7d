package system

import (
	"github.com/milk9111/wraith/common"
	"github.com/milk9111/wraith/ecs"
	"github.com/milk9111/wraith/ecs/component"
)

const (
	cameraArmLength   = 180.0
	cameraSocketRight = 50.0
	cameraSocketUp    = 70.0
	cameraMaxPitch    = 89.0
)

// CameraSystem turns the follow camera by the look input, keeps it on its
// boom behind the character and interpolates the field of view toward the
// zoomed value while aiming.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	dt := w.DeltaTime()
	ecs.ForEach2(w, component.CameraComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, cam *component.Camera, t *component.Transform) {
		if input, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok && !inputDisabled(w, e) {
			cam.Yaw = common.NormalizeAxis(cam.Yaw + input.LookYaw*cam.BaseTurnRate*dt)
			cam.Pitch = common.Clamp(cam.Pitch+input.LookPitch*cam.BaseLookUpRate*dt, -cameraMaxPitch, cameraMaxPitch)
		}

		cam.Location = t.Location().
			Sub(cam.Forward().Scale(cameraArmLength)).
			Add(common.Right(cam.Yaw).Scale(cameraSocketRight)).
			Add(common.V3(0, 0, cameraSocketUp))

		CameraInterpZoom(w, e, cam, dt)
	})
}

// CameraInterpZoom moves CurrentFOV toward the zoomed FOV while aiming and
// back toward the default otherwise.
func CameraInterpZoom(w *ecs.World, e ecs.Entity, cam *component.Camera, dt float64) {
	target := cam.DefaultFOV
	if c, ok := ecs.Get(w, e, component.CombatComponent.Kind()); ok && c.Aiming {
		target = cam.ZoomedFOV
	}
	cam.CurrentFOV = common.FInterpTo(cam.CurrentFOV, target, dt, cam.ZoomInterpSpeed)
}

func inputDisabled(w *ecs.World, e ecs.Entity) bool {
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	return ok && p.InputDisabled
}
