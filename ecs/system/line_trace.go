package system

import (
	"math"

	"github.com/milk9111/wraith/common"
	"github.com/milk9111/wraith/ecs"
	"github.com/milk9111/wraith/ecs/component"
)

// TraceHit is the nearest blocking bone a visibility trace passed through.
type TraceHit struct {
	Entity   ecs.Entity
	Bone     string
	Location common.Vec3
	Time     float64
}

// LineTrace tests the segment start→end against every enabled TraceShape
// and returns the closest hit. Entities in ignore are skipped.
func LineTrace(w *ecs.World, start, end common.Vec3, ignore ...ecs.Entity) (TraceHit, bool) {
	var best TraceHit
	if w == nil || start == end {
		return best, false
	}

	closest := math.Inf(1)
	ecs.ForEach2(w, component.TraceShapeComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, shape *component.TraceShape, transform *component.Transform) {
		if !shape.Enabled || ignored(e, ignore) {
			return
		}
		for _, bone := range shape.Bones {
			center := boneCenter(transform, bone)
			t, ok := segmentSphereHit(start, end, center, bone.Radius)
			if !ok || t >= closest {
				continue
			}
			closest = t
			best = TraceHit{
				Entity:   e,
				Bone:     bone.Name,
				Location: start.Add(end.Sub(start).Scale(t)),
				Time:     t,
			}
		}
	})
	return best, !math.IsInf(closest, 1)
}

func ignored(e ecs.Entity, ignore []ecs.Entity) bool {
	for _, i := range ignore {
		if i == e {
			return true
		}
	}
	return false
}

func boneCenter(transform *component.Transform, bone component.TraceBone) common.Vec3 {
	return transform.Location().Add(bone.Offset.RotateYaw(transform.Yaw))
}

// segmentSphereHit returns the segment parameter in [0,1] of the first
// surface crossing. A start inside the sphere hits at 0.
func segmentSphereHit(start, end, center common.Vec3, r float64) (float64, bool) {
	if r <= 0 {
		return 0, false
	}

	d := end.Sub(start)
	f := start.Sub(center)

	a := d.Dot(d)
	b := 2 * f.Dot(d)
	c := f.Dot(f) - r*r

	if c <= 0 {
		return 0, true
	}

	disc := b*b - 4*a*c
	if disc < 0 || a == 0 {
		return 0, false
	}

	sqrtDisc := math.Sqrt(disc)
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)

	t := math.Inf(1)
	if t1 >= 0 && t1 <= 1 {
		t = t1
	}
	if t2 >= 0 && t2 <= 1 && t2 < t {
		t = t2
	}
	if math.IsInf(t, 1) {
		return 0, false
	}
	return t, true
}
