package common

import (
	"fmt"
	"math"
)

// Vec3 is a world-space point or direction. X is forward, Y is right and Z
// is up; yaw rotates about Z.
type Vec3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Dot(o Vec3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Len() float64         { return math.Sqrt(v.Dot(v)) }
func (v Vec3) Len2D() float64       { return math.Hypot(v.X, v.Y) }

func (v Vec3) Dist(o Vec3) float64 { return o.Sub(v).Len() }

func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < smallNumber {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// RotateYaw rotates v about the up axis by deg degrees.
func (v Vec3) RotateYaw(deg float64) Vec3 {
	s, c := math.Sincos(deg * math.Pi / 180)
	return Vec3{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c, Z: v.Z}
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%.1f, %.1f, %.1f)", v.X, v.Y, v.Z)
}

// Forward returns the unit direction for yaw and pitch in degrees.
func Forward(yaw, pitch float64) Vec3 {
	sy, cy := math.Sincos(yaw * math.Pi / 180)
	sp, cp := math.Sincos(pitch * math.Pi / 180)
	return Vec3{X: cp * cy, Y: cp * sy, Z: sp}
}

// Right returns the unit right vector for yaw in degrees.
func Right(yaw float64) Vec3 {
	return Forward(yaw+90, 0)
}

// YawOf returns the yaw in degrees of v projected onto the ground plane.
func YawOf(v Vec3) float64 {
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}
