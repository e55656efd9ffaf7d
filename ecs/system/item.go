package system

import (
	"math"

	"github.com/milk9111/wraith/common"
	"github.com/milk9111/wraith/ecs"
	"github.com/milk9111/wraith/ecs/component"
)

const (
	defaultInterpTime = 0.7
	itemInterpSpeed   = 30.0
)

// SetItemState moves item into state and applies that state's visibility
// and collision profile.
func SetItemState(w *ecs.World, item ecs.Entity, state component.ItemState) {
	it, ok := ecs.Get(w, item, component.ItemComponent.Kind())
	if !ok {
		return
	}
	from := it.State
	it.State = state

	props := state.Properties()
	it.Visible = props.Visible
	switch state {
	case component.ItemEquipped, component.ItemEquipInterping, component.ItemPickedUp:
		setPickupWidget(w, item, it, false)
	}
	if shape, ok := ecs.Get(w, item, component.TraceShapeComponent.Kind()); ok {
		shape.Enabled = props.TraceBlocking
	}
	if volumes, ok := ecs.Get(w, item, component.OverlapComponent.Kind()); ok {
		for i := range *volumes {
			if (*volumes)[i].Name == component.VolumeItemArea {
				(*volumes)[i].Enabled = props.AreaQuery
			}
		}
	}

	if from != state {
		ecs.Publish(w, component.EventItemState, component.ItemStateChanged{Item: item.Ref(), From: from, To: state})
	}
}

func setPickupWidget(w *ecs.World, item ecs.Entity, it *component.Item, visible bool) {
	if it.PickupWidget == visible {
		return
	}
	it.PickupWidget = visible
	ecs.Publish(w, component.EventPickupWidget, component.PickupWidget{Item: item.Ref(), Visible: visible})
}

// CameraInterpLocation is the point in front of the character's camera
// that picked-up items fly to.
func CameraInterpLocation(w *ecs.World, e ecs.Entity) (common.Vec3, bool) {
	cam, ok := ecs.Get(w, e, component.CameraComponent.Kind())
	if !ok {
		return common.Vec3{}, false
	}
	player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return common.Vec3{}, false
	}
	return cam.Location.
		Add(cam.Forward().Scale(player.CameraInterpDistance)).
		Add(common.Vec3{Z: player.CameraInterpElevation}), true
}

// StartItemCurve begins flying item toward character's camera. The item is
// handed over when the interp timer fires.
func StartItemCurve(w *ecs.World, item, character ecs.Entity) {
	transform, ok := ecs.Get(w, item, component.TransformComponent.Kind())
	if !ok || !ecs.Has(w, item, component.ItemComponent.Kind()) {
		return
	}
	interp, ok := ecs.Get(w, item, component.ItemInterpComponent.Kind())
	if !ok {
		interp = &component.ItemInterp{}
		if err := ecs.Add(w, item, component.ItemInterpComponent.Kind(), interp); err != nil {
			return
		}
	}

	interp.Target = character.Ref()
	interp.Start = transform.Location()
	interp.Active = true
	SetItemState(w, item, component.ItemEquipInterping)

	duration := interp.Duration
	if duration <= 0 {
		duration = defaultInterpTime
	}
	w.Timers().Set(&interp.Timer, duration, func() { FinishInterping(w, item) })

	camYaw := 0.0
	if cam, ok := ecs.Get(w, character, component.CameraComponent.Kind()); ok {
		camYaw = cam.Yaw
	}
	interp.YawOffset = transform.Yaw - camYaw
}

// FinishInterping hands the item to the character and resets its scale.
func FinishInterping(w *ecs.World, item ecs.Entity) {
	interp, ok := ecs.Get(w, item, component.ItemInterpComponent.Kind())
	if !ok {
		return
	}
	interp.Active = false
	character := entityOf(interp.Target)
	if ecs.IsAlive(w, character) {
		GetPickupItem(w, character, item)
		UnHighlightInventorySlot(w, character)
	}
	if t, ok := ecs.Get(w, item, component.TransformComponent.Kind()); ok {
		t.Scale = 1
	}
}

// ItemInterpSystem moves interpolating items each frame: Z follows the
// curve scaled by the height gap, X and Y ease toward the target.
type ItemInterpSystem struct{}

func NewItemInterpSystem() *ItemInterpSystem {
	return &ItemInterpSystem{}
}

func (s *ItemInterpSystem) Update(w *ecs.World) {
	dt := w.DeltaTime()
	ecs.ForEach2(w, component.ItemInterpComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, interp *component.ItemInterp, transform *component.Transform) {
		if !interp.Active || len(interp.ZCurve) == 0 {
			return
		}
		character := entityOf(interp.Target)
		target, ok := CameraInterpLocation(w, character)
		if !ok {
			return
		}
		cam, _ := ecs.Get(w, character, component.CameraComponent.Kind())

		elapsed := w.Timers().Elapsed(interp.Timer)
		if elapsed < 0 {
			elapsed = 0
		}
		deltaZ := math.Abs(target.Z - interp.Start.Z)

		transform.X = common.FInterpTo(transform.X, target.X, dt, itemInterpSpeed)
		transform.Y = common.FInterpTo(transform.Y, target.Y, dt, itemInterpSpeed)
		transform.Z = interp.Start.Z + interp.ZCurve.Eval(elapsed)*deltaZ
		transform.Yaw = cam.Yaw + interp.YawOffset

		if len(interp.ScaleCurve) > 0 {
			transform.Scale = interp.ScaleCurve.Eval(elapsed)
		}
	})
}
