package loomis

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// clipEps is the tolerance for the slab inclusion test and for detecting
// near-vertical edges that cannot produce a usable crossing.
const clipEps = 1e-6

// ClipToSideBand clips an open polyline to the band |x| <= d, inserting
// exact boundary crossings computed by linear interpolation on x.
// Consecutive points form edges; there is no implicit wraparound.
//
// Per edge:
//   - both endpoints inside extend the current output segment;
//   - an exiting edge appends the crossing at the boundary the exit
//     overshot and closes the segment;
//   - an entering edge starts a new segment at the crossing;
//   - an edge outside on one side produces nothing;
//   - an edge spanning the whole band emits both crossings as a standalone
//     two-point segment, ordered by the edge's traversal direction.
//
// Edges with |Δx| below 1e-6 produce no crossing rather than dividing by a
// near-zero delta; the segment in progress simply closes. A short interior
// segment lying exactly on the band boundary can therefore be dropped.
//
// Segments with fewer than two points are discarded. The returned segments
// are disjoint and appear in edge-traversal order. A negative d is clamped
// to 0.
func ClipToSideBand(points Polyline, d float64) []Polyline {
	if d < 0 {
		d = 0
	}
	if len(points) == 0 {
		return nil
	}

	inside := func(p r3.Vec) bool { return math.Abs(p.X) <= d+clipEps }

	// crossAt interpolates the edge a-b to x = bound. The second return is
	// false for near-vertical edges.
	crossAt := func(a, b r3.Vec, bound float64) (r3.Vec, bool) {
		dx := b.X - a.X
		if math.Abs(dx) < clipEps {
			return r3.Vec{}, false
		}
		t := (bound - a.X) / dx
		c := r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
		c.X = bound
		return c, true
	}

	var out []Polyline
	var cur Polyline
	closeSeg := func() {
		if len(cur) >= 2 {
			out = append(out, cur)
		}
		cur = nil
	}

	if inside(points[0]) {
		cur = Polyline{points[0]}
	}
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		ain, bin := inside(a), inside(b)
		switch {
		case ain && bin:
			cur = append(cur, b)
		case ain && !bin:
			// exit: cross at the boundary the exiting point overshot
			if c, ok := crossAt(a, b, math.Copysign(d, b.X)); ok {
				cur = append(cur, c)
			}
			closeSeg()
		case !ain && bin:
			// enter: new segment from the crossing
			if c, ok := crossAt(a, b, math.Copysign(d, a.X)); ok {
				cur = Polyline{c, b}
			} else {
				cur = Polyline{b}
			}
		default:
			if (a.X > 0) == (b.X > 0) {
				continue // both beyond the same side
			}
			// the edge spans the whole band in one step
			lo, okLo := crossAt(a, b, -d)
			hi, okHi := crossAt(a, b, d)
			if !okLo || !okHi {
				continue
			}
			if a.X < b.X {
				out = append(out, Polyline{lo, hi})
			} else {
				out = append(out, Polyline{hi, lo})
			}
		}
	}
	closeSeg()
	return out
}
