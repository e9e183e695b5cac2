package loomis

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Orientation is a unit quaternion rotation. It is owned by the caller
// (the pointer-drag layer) and supplied fresh on each evaluation.
type Orientation = r3.Rotation

// IdentityRotation returns the orientation that leaves points unchanged.
func IdentityRotation() Orientation {
	return Orientation(quat.Number{Real: 1})
}

// RotationFromAxisAngle returns the orientation rotating by angle radians
// about axis, following the right-hand rule.
func RotationFromAxisAngle(axis r3.Vec, angle float64) Orientation {
	return r3.NewRotation(angle, axis)
}

// ComposeRotations returns the orientation equivalent to applying first,
// then second. Drag handlers compose incremental pointer rotations onto
// the current orientation with this.
func ComposeRotations(first, second Orientation) Orientation {
	return Orientation(quat.Mul(quat.Number(second), quat.Number(first)))
}

// NormalizeRotation rescales an orientation back to unit length after
// repeated composition has let it drift. A zero quaternion becomes the
// identity.
func NormalizeRotation(o Orientation) Orientation {
	q := quat.Number(o)
	n := quat.Abs(q)
	if n == 0 {
		return IdentityRotation()
	}
	return Orientation(quat.Scale(1/n, q))
}

// TransformLandmarks rotates each landmark in head space and then offsets
// it by pan in the resulting camera space, so panning always moves the
// figure along the screen axes regardless of orientation. The input slice
// is not mutated.
func TransformLandmarks(ls []Landmark, rot Orientation, pan Point) []Landmark {
	out := make([]Landmark, len(ls))
	for i, l := range ls {
		l.Position = transformPoint(l.Position, rot, pan)
		out[i] = l
	}
	return out
}

// TransformPolyline applies the same rotate-then-pan mapping to every point
// of a polyline, returning a fresh slice.
func TransformPolyline(pts Polyline, rot Orientation, pan Point) Polyline {
	out := make(Polyline, len(pts))
	for i, p := range pts {
		out[i] = transformPoint(p, rot, pan)
	}
	return out
}

func transformPoint(p r3.Vec, rot Orientation, pan Point) r3.Vec {
	q := rot.Rotate(p)
	q.X += pan.X
	q.Y += pan.Y
	return q
}
