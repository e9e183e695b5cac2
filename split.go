package loomis

import "gonum.org/v1/gonum/spatial/r3"

// FrontBack holds polyline runs partitioned by camera facing. The camera
// looks down the negative-z direction, so points with z >= 0 face it.
type FrontBack struct {
	Front []Polyline
	Back  []Polyline
}

// SplitFrontBack partitions points into maximal runs of camera-front
// (z >= 0) and camera-back points, in original order. Runs of length 1 are
// kept. No vertex is synthesized at a sign change: two adjacent runs meet
// without a shared interpolated point. SplitLine is the interpolating
// variant for standalone two-point segments.
//
// The concatenation of all returned runs, front and back interleaved in
// their original relative order, reconstructs the input exactly.
func SplitFrontBack(points Polyline) FrontBack {
	var fb FrontBack
	if len(points) == 0 {
		return fb
	}

	front := points[0].Z >= 0
	run := Polyline{points[0]}
	flush := func() {
		if front {
			fb.Front = append(fb.Front, run)
		} else {
			fb.Back = append(fb.Back, run)
		}
	}

	for _, p := range points[1:] {
		if f := p.Z >= 0; f != front {
			flush()
			front = f
			run = nil
		}
		run = append(run, p)
	}
	flush()
	return fb
}

// SplitLine splits the segment a-b at the z = 0 plane. When the endpoints
// lie on opposite sides, both halves share an exact interpolated crossing
// vertex; otherwise the whole segment lands on its side unchanged.
func SplitLine(a, b r3.Vec) FrontBack {
	af, bf := a.Z >= 0, b.Z >= 0
	if af == bf {
		seg := Polyline{a, b}
		if af {
			return FrontBack{Front: []Polyline{seg}}
		}
		return FrontBack{Back: []Polyline{seg}}
	}

	t := a.Z / (a.Z - b.Z)
	mid := r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
	mid.Z = 0
	if af {
		return FrontBack{
			Front: []Polyline{{a, mid}},
			Back:  []Polyline{{mid, b}},
		}
	}
	return FrontBack{
		Front: []Polyline{{mid, b}},
		Back:  []Polyline{{a, mid}},
	}
}
