package component

import "github.com/milk9111/wraith/common"

type Transform struct {
	X     float64
	Y     float64
	Z     float64
	Yaw   float64
	Scale float64
}

func (t *Transform) Location() common.Vec3 {
	return common.Vec3{X: t.X, Y: t.Y, Z: t.Z}
}

func (t *Transform) SetLocation(v common.Vec3) {
	t.X, t.Y, t.Z = v.X, v.Y, v.Z
}

var TransformComponent = NewComponent[Transform]()
