package component

import (
	"github.com/milk9111/wraith/common"
	"github.com/milk9111/wraith/timer"
)

// ItemInterp flies an item from where it was picked up to in front of the
// character's camera.
type ItemInterp struct {
	Target    uint64
	Start     common.Vec3
	YawOffset float64
	Duration  float64
	Timer     timer.Handle
	Active    bool

	ZCurve     Curve
	ScaleCurve Curve
}

var ItemInterpComponent = NewComponent[ItemInterp]()
