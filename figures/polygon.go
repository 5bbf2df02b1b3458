package figures

import (
	"slices"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/shape/gm"
)

// Polygon is a simple polygon, optionally with rounded corners.
// The points may be given in clockwise or counter-clockwise order.
type Polygon struct {
	Points []gm.Vec
	Radius float64
}

// RegularPolygon creates a polygon with n corners on a circle
// with the given radius.
func RegularPolygon(n int, radius float64, rotation gm.Rad) Polygon {
	points := make([]gm.Vec, n)

	step := gm.DegToRad(360 / float64(n))
	for idx := range points {
		rot := gm.RotationMat(rotation + gm.Rad(idx)*step)
		points[idx] = rot.Transform(gm.Vec{X: radius})
	}

	return Polygon{Points: points}
}

func (p Polygon) Area() float64 {
	if len(p.Points) < 3 {
		return 0
	}

	verts := make([]cp.Vector, len(p.Points))
	for idx, point := range p.Points {
		verts[idx] = cpVecOf(point)
	}

	// cp expects counter-clockwise winding
	if signedArea(p.Points) < 0 {
		slices.Reverse(verts)
	}

	return cp.AreaForPoly(len(verts), verts, p.Radius)
}

// Copy returns a polygon that does not share its points with p.
func (p Polygon) Copy() Polygon {
	return Polygon{
		Points: slices.Clone(p.Points),
		Radius: p.Radius,
	}
}

// Transform returns a new polygon with every point transformed by m.
func (p Polygon) Transform(m gm.Mat) Polygon {
	points := make([]gm.Vec, len(p.Points))
	for idx, point := range p.Points {
		points[idx] = m.Transform(point)
	}

	return Polygon{Points: points, Radius: p.Radius}
}

func signedArea(points []gm.Vec) float64 {
	var area float64
	for idx, point := range points {
		area += point.Cross(points[(idx+1)%len(points)])
	}

	return area / 2
}
