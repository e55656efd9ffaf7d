package common

import "math"

const smallNumber = 1e-8

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FInterpTo moves current toward target at speed per second, never
// overshooting. A non-positive speed snaps straight to target.
func FInterpTo(current, target, dt, speed float64) float64 {
	if speed <= 0 {
		return target
	}
	dist := target - current
	if dist*dist < smallNumber {
		return target
	}
	return current + dist*Clamp(dt*speed, 0, 1)
}

// MapRangeClamped maps v from [inMin, inMax] onto [outMin, outMax], clamping
// to the output range.
func MapRangeClamped(inMin, inMax, outMin, outMax, v float64) float64 {
	if inMax == inMin {
		if v >= inMax {
			return outMax
		}
		return outMin
	}
	t := Clamp((v-inMin)/(inMax-inMin), 0, 1)
	return Lerp(outMin, outMax, t)
}

// NormalizeAxis wraps degrees into (-180, 180].
func NormalizeAxis(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}
