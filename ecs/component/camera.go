package component

import "github.com/milk9111/wraith/common"

// Camera is the character's follow camera. Location is world space.
type Camera struct {
	Location        common.Vec3
	Yaw             float64
	Pitch           float64
	DefaultFOV      float64
	ZoomedFOV       float64
	CurrentFOV      float64
	ZoomInterpSpeed float64
	BaseTurnRate    float64
	BaseLookUpRate  float64
}

func (c *Camera) Forward() common.Vec3 {
	return common.Forward(c.Yaw, c.Pitch)
}

var CameraComponent = NewComponent[Camera]()
