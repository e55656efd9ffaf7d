package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/wraith/common"
	"github.com/milk9111/wraith/ecs"
	"github.com/milk9111/wraith/ecs/component"
)

const (
	throwAngle      = 30.0
	throwBodyMass   = 1.0
	throwBodyRadius = 10.0
	throwDamping    = 0.15
)

// ThrowWeapon launches a dropped weapon sideways and returns it to the
// pickup state after its throw time.
func ThrowWeapon(w *ecs.World, item ecs.Entity) {
	weapon, ok := ecs.Get(w, item, component.WeaponComponent.Kind())
	if !ok {
		return
	}
	yaw := 0.0
	if t, ok := ecs.Get(w, item, component.TransformComponent.Kind()); ok {
		yaw = t.Yaw
	}
	dir := common.Right(yaw).RotateYaw(throwAngle)
	impulse := dir.Scale(weapon.ThrowImpulse)

	thrown := &component.Thrown{ImpulseX: impulse.X, ImpulseY: impulse.Y}
	if err := ecs.Add(w, item, component.ThrownComponent.Kind(), thrown); err != nil {
		return
	}
	weapon.Falling = true
	ecs.Publish(w, component.EventWeaponThrown, item)
	w.Timers().Set(&weapon.ThrowTimer, weapon.ThrowTime, func() { StopFalling(w, item) })
}

func StopFalling(w *ecs.World, item ecs.Entity) {
	weapon, ok := ecs.Get(w, item, component.WeaponComponent.Kind())
	if !ok {
		return
	}
	weapon.Falling = false
	SetItemState(w, item, component.ItemPickup)
}

type throwBody struct {
	body  *cp.Body
	shape *cp.Shape
}

// ThrowSystem slides thrown items across the ground plane with a damped
// chipmunk space and writes their positions back to the transform.
type ThrowSystem struct {
	space  *cp.Space
	bodies map[ecs.Entity]*throwBody
}

func NewThrowSystem() *ThrowSystem {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})
	space.SetDamping(throwDamping)
	return &ThrowSystem{
		space:  space,
		bodies: make(map[ecs.Entity]*throwBody),
	}
}

func (s *ThrowSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach3(w, component.ThrownComponent.Kind(), component.WeaponComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, thrown *component.Thrown, weapon *component.Weapon, transform *component.Transform) {
		if !weapon.Falling || thrown.Launched {
			return
		}
		s.launch(e, thrown, transform)
	})

	if dt := w.DeltaTime(); dt > 0 && len(s.bodies) > 0 {
		s.space.Step(dt)
	}

	for e, tb := range s.bodies {
		weapon, ok := ecs.Get(w, e, component.WeaponComponent.Kind())
		if !ok || !weapon.Falling {
			s.remove(e)
			ecs.Remove(w, e, component.ThrownComponent.Kind())
			continue
		}
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			pos := tb.body.Position()
			t.X, t.Y = pos.X, pos.Y
		}
	}
}

func (s *ThrowSystem) launch(e ecs.Entity, thrown *component.Thrown, transform *component.Transform) {
	s.remove(e)
	body := cp.NewBody(throwBodyMass, cp.MomentForCircle(throwBodyMass, 0, throwBodyRadius, cp.Vector{}))
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
	shape := cp.NewCircle(body, throwBodyRadius, cp.Vector{})
	shape.SetFriction(0.8)
	s.space.AddBody(body)
	s.space.AddShape(shape)
	body.ApplyImpulseAtWorldPoint(cp.Vector{X: thrown.ImpulseX, Y: thrown.ImpulseY}, body.Position())
	s.bodies[e] = &throwBody{body: body, shape: shape}
	thrown.Launched = true
}

func (s *ThrowSystem) remove(e ecs.Entity) {
	tb, ok := s.bodies[e]
	if !ok {
		return
	}
	s.space.RemoveShape(tb.shape)
	s.space.RemoveBody(tb.body)
	delete(s.bodies, e)
}

// Active is the number of items currently sliding.
func (s *ThrowSystem) Active() int {
	return len(s.bodies)
}
