package loomis

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Polyline is an ordered sequence of 3D points. Consecutive points form
// edges; a polyline is open unless it was explicitly constructed closed,
// with its first point repeated at the end.
type Polyline []r3.Vec

// DefaultSegments is the sample count for construction circles.
const DefaultSegments = 64

// BasisFromNormal returns two unit vectors u, v spanning the plane through
// the origin perpendicular to n. u, v, and the normalized n are mutually
// orthogonal.
//
// The helper axis is the standard axis with the smallest absolute component
// along n, ties resolved X, then Y, then Z. That keeps the cross product
// well away from the degenerate case of a helper axis parallel to n.
// A zero-length n falls back to +Z.
func BasisFromNormal(n r3.Vec) (u, v r3.Vec) {
	if r3.Norm2(n) < 1e-24 {
		n = r3.Vec{Z: 1}
	}
	n = r3.Unit(n)

	ax, ay, az := math.Abs(n.X), math.Abs(n.Y), math.Abs(n.Z)
	var axis r3.Vec
	switch {
	case ax <= ay && ax <= az:
		axis = r3.Vec{X: 1}
	case ay <= az:
		axis = r3.Vec{Y: 1}
	default:
		axis = r3.Vec{Z: 1}
	}

	u = r3.Unit(r3.Cross(n, axis))
	v = r3.Cross(n, u)
	return u, v
}

// CircleOnPlane samples a circle of the given radius on the plane through
// center perpendicular to normal. It returns segments+1 points with the
// first point repeated at the end; point i sits at angle 2πi/segments in
// the (u, v) basis of the plane.
//
// The normal is normalized internally. A negative radius is clamped to 0
// and segments below 3 fall back to DefaultSegments.
func CircleOnPlane(center, normal r3.Vec, radius float64, segments int) Polyline {
	if radius < 0 {
		radius = 0
	}
	if segments < 3 {
		segments = DefaultSegments
	}

	u, v := BasisFromNormal(normal)
	pts := make(Polyline, 0, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments) * 2 * math.Pi
		s, c := math.Sincos(t)
		pts = append(pts, r3.Add(r3.Add(center, r3.Scale(c*radius, u)), r3.Scale(s*radius, v)))
	}
	return pts
}
