// Package figures contains plain geometric figures. None of them knows
// about the shape package, they only implement an Area method.
package figures

import (
	"math"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/shape/gm"
)

type Circle struct {
	Radius float64
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

type Square struct {
	Side float64
}

func (s Square) Area() float64 {
	return s.Side * s.Side
}

type Triangle struct {
	Base, Height float64
}

func (t Triangle) Area() float64 {
	return 0.5 * t.Base * t.Height
}

// Ring is the area between two concentric circles.
type Ring struct {
	Inner, Outer float64
}

func (r Ring) Area() float64 {
	return cp.AreaForCircle(r.Inner, r.Outer)
}

// Capsule is a line segment from A to B with rounded caps of the given radius.
type Capsule struct {
	A, B   gm.Vec
	Radius float64
}

func (c Capsule) Area() float64 {
	return cp.AreaForSegment(cpVecOf(c.A), cpVecOf(c.B), c.Radius)
}

func cpVecOf(vec gm.Vec) cp.Vector {
	return cp.Vector{X: vec.X, Y: vec.Y}
}
