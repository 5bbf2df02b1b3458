package gm

import "math"

// Rad is an angle in radians.
type Rad float64

func DegToRad(deg float64) Rad {
	return Rad(math.Pi / 180 * deg)
}

// Sincos returns the sine and cosine of the angle.
func (r Rad) Sincos() (sin, cos float64) {
	return math.Sincos(float64(r))
}
