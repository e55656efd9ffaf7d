package system

import (
	"math"

	"github.com/milk9111/wraith/common"
	"github.com/milk9111/wraith/ecs"
	"github.com/milk9111/wraith/ecs/component"
)

const (
	playerMoveSpeed = 600.0
	maxSlotKey      = 5
)

// PlayerControllerSystem turns the player's input edges into combat and
// inventory requests and sets the walk velocity. Edges are consumed even
// while input is disabled.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var players []ecs.Entity
	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, _ *component.Input) {
		players = append(players, e)
	})

	for _, e := range players {
		input, ok := ecs.Get(w, e, component.InputComponent.Kind())
		if !ok {
			continue
		}
		edges := *input
		input.FirePressed = false
		input.FireReleased = false
		input.AimPressed = false
		input.AimReleased = false
		input.SelectPressed = false
		input.ReloadPressed = false
		input.SlotKey = component.NoSlotKey

		if inputDisabled(w, e) {
			stopWalking(w, e)
			continue
		}

		applyInput(w, e, edges)
		walk(w, e, edges.MoveX, edges.MoveY)
	}
}

func applyInput(w *ecs.World, e ecs.Entity, in component.Input) {
	if in.AimPressed {
		AimButtonPressed(w, e)
	}
	if in.AimReleased {
		AimButtonReleased(w, e)
	}
	if in.FirePressed {
		FireButtonPressed(w, e)
	}
	if in.FireReleased {
		FireButtonReleased(w, e)
	}
	if in.ReloadPressed {
		ReloadButtonPressed(w, e)
	}
	if in.SelectPressed {
		SelectButtonPressed(w, e)
	}
	if in.SlotKey >= 0 && in.SlotKey <= maxSlotKey {
		SlotKeyPressed(w, e, in.SlotKey)
	}
}

// walk sets the planar velocity from stick input relative to the camera
// yaw. Vertical velocity is left to whatever drives falling.
func walk(w *ecs.World, e ecs.Entity, moveX, moveY float64) {
	mv, ok := ecs.Get(w, e, component.MovementComponent.Kind())
	if !ok {
		return
	}
	yaw := 0.0
	if cam, ok := ecs.Get(w, e, component.CameraComponent.Kind()); ok {
		yaw = cam.Yaw
	}
	dir := common.Forward(yaw, 0).Scale(moveY).Add(common.Right(yaw).Scale(moveX))
	if l := dir.Len(); l > 1 {
		dir = dir.Scale(1 / l)
	}
	mv.VelX = dir.X * playerMoveSpeed
	mv.VelY = dir.Y * playerMoveSpeed
	mv.Accelerating = math.Abs(moveX) > 0 || math.Abs(moveY) > 0
}

func stopWalking(w *ecs.World, e ecs.Entity) {
	if mv, ok := ecs.Get(w, e, component.MovementComponent.Kind()); ok {
		mv.VelX = 0
		mv.VelY = 0
		mv.Accelerating = false
	}
}

// MovementSystem integrates character velocity into transforms and faces
// moving characters along their velocity. Stopped characters hold still.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Update(w *ecs.World) {
	dt := w.DeltaTime()
	ecs.ForEach2(w, component.MovementComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, mv *component.Movement, t *component.Transform) {
		if mv.Stopped {
			return
		}
		t.X += mv.VelX * dt
		t.Y += mv.VelY * dt
		t.Z += mv.VelZ * dt
		if t.Z <= 0 && mv.Falling {
			t.Z = 0
			mv.VelZ = 0
			mv.Falling = false
		}
		if cam, ok := ecs.Get(w, e, component.CameraComponent.Kind()); ok {
			t.Yaw = cam.Yaw
		} else if math.Hypot(mv.VelX, mv.VelY) > 0 {
			t.Yaw = common.YawOf(common.V3(mv.VelX, mv.VelY, 0))
		}
	})

	ecs.ForEach(w, component.InventoryComponent.Kind(), func(e ecs.Entity, inv *component.Inventory) {
		attachCarried(w, e, inv)
	})
}

// attachCarried keeps carried weapons on the owner's whip socket so a drop
// throws them from the hand.
func attachCarried(w *ecs.World, owner ecs.Entity, inv *component.Inventory) {
	socket := WhipSocket(w, owner)
	yaw := 0.0
	if t, ok := ecs.Get(w, owner, component.TransformComponent.Kind()); ok {
		yaw = t.Yaw
	}
	for _, ref := range inv.Slots {
		item := entityOf(ref)
		it, ok := ecs.Get(w, item, component.ItemComponent.Kind())
		if !ok || (it.State != component.ItemEquipped && it.State != component.ItemPickedUp) {
			continue
		}
		if t, ok := ecs.Get(w, item, component.TransformComponent.Kind()); ok {
			t.X, t.Y, t.Z = socket.X, socket.Y, socket.Z
			t.Yaw = yaw
		}
	}
}
