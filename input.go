package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/wraith/ecs"
	"github.com/milk9111/wraith/ecs/component"
)

const (
	stickDeadzone = 0.2
	lookKeyRate   = 1.0
	mouseLookRate = 0.15
)

var slotKeys = []ebiten.Key{
	ebiten.KeyF,
	ebiten.Key1,
	ebiten.Key2,
	ebiten.Key3,
	ebiten.Key4,
	ebiten.Key5,
}

// InputSystem samples keyboard, mouse and the first gamepad into every
// entity's Input component. Edges accumulate until the controller consumes
// them.
type InputSystem struct {
	lastCursorX int
	haveCursor  bool
}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	firePressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	fireReleased := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	aimPressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	aimReleased := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight)
	selectPressed := inpututil.IsKeyJustPressed(ebiten.KeyE)
	reloadPressed := inpututil.IsKeyJustPressed(ebiten.KeyR)

	slot := component.NoSlotKey
	for idx, key := range slotKeys {
		if inpututil.IsKeyJustPressed(key) {
			slot = idx
		}
	}

	moveX, moveY := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		moveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		moveY += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		moveY -= 1
	}

	lookYaw, lookPitch := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		lookYaw -= lookKeyRate
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		lookYaw += lookKeyRate
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		lookPitch += lookKeyRate
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		lookPitch -= lookKeyRate
	}
	cx, _ := ebiten.CursorPosition()
	if i.haveCursor {
		lookYaw += float64(cx-i.lastCursorX) * mouseLookRate
	}
	i.lastCursorX, i.haveCursor = cx, true

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			moveX, moveY = lx, -ly
		}
		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(rx, ry) > stickDeadzone {
			lookYaw, lookPitch = rx, -ry
		}

		firePressed = firePressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
		fireReleased = fireReleased || inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonFrontBottomRight)
		aimPressed = aimPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontBottomLeft)
		aimReleased = aimReleased || inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonFrontBottomLeft)
		selectPressed = selectPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		reloadPressed = reloadPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		input.FirePressed = input.FirePressed || firePressed
		input.FireReleased = input.FireReleased || fireReleased
		input.AimPressed = input.AimPressed || aimPressed
		input.AimReleased = input.AimReleased || aimReleased
		input.SelectPressed = input.SelectPressed || selectPressed
		input.ReloadPressed = input.ReloadPressed || reloadPressed
		if slot != component.NoSlotKey {
			input.SlotKey = slot
		}
		input.MoveX = moveX
		input.MoveY = moveY
		input.LookYaw = lookYaw
		input.LookPitch = lookPitch
	})
}
