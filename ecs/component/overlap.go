package component

import "github.com/milk9111/wraith/common"

// Overlap volume names. Handlers are registered against these.
const (
	VolumeItemArea    = "item_area"
	VolumeAgro        = "agro"
	VolumeCombatRange = "combat_range"
	VolumeLeftWeapon  = "left_weapon"
	VolumeRightWeapon = "right_weapon"
	VolumeLeftFoot    = "left_foot"
	VolumeRightFoot   = "right_foot"
)

// OverlapVolume is a sphere relative to the owner's transform. Inside tracks
// which colliders are currently overlapping so begin and end fire once.
type OverlapVolume struct {
	Name    string
	Radius  float64
	Offset  common.Vec3
	Enabled bool
	Inside  map[uint64]bool
}

var OverlapComponent = NewComponent[[]OverlapVolume]()

// Collider is the entity's capsule, approximated by a sphere for overlap
// tests.
type Collider struct {
	Radius     float64
	HalfHeight float64
}

var ColliderComponent = NewComponent[Collider]()
