package component

import "github.com/milk9111/wraith/common"

// TraceBone is a sphere that blocks visibility traces, named so hits can
// tell a head shot from a body shot.
type TraceBone struct {
	Name   string
	Offset common.Vec3
	Radius float64
}

// TraceShape is the set of spheres line traces test against.
type TraceShape struct {
	Bones   []TraceBone
	Enabled bool
}

var TraceShapeComponent = NewComponent[TraceShape]()
