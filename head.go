package loomis

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Landmark is a named construction point in head space. A fresh set is
// produced on every evaluation; a landmark has no identity beyond its name
// within one evaluation. Color is an optional display tag ("#rrggbb")
// consumed by the overlay layer.
type Landmark struct {
	Name     string
	Position r3.Vec
	Color    string
}

// Landmark names, in emission order. The exact strings are contract: the
// overlay layer looks landmarks up by name for display and tracing.
const (
	LandmarkCenter         = "Center"
	LandmarkCrown          = "Crown"
	LandmarkHairline       = "Hairline"
	LandmarkBrow           = "Brow"
	LandmarkEyeLine        = "Eye Line"
	LandmarkLeftEye        = "Left Eye"
	LandmarkRightEye       = "Right Eye"
	LandmarkNose           = "Nose"
	LandmarkLeftNose       = "Left Nose"
	LandmarkRightNose      = "Right Nose"
	LandmarkMouth          = "Mouth"
	LandmarkLeftMouth      = "Left Mouth"
	LandmarkRightMouth     = "Right Mouth"
	LandmarkChin           = "Chin"
	LandmarkLeftChin       = "Left Chin"
	LandmarkRightChin      = "Right Chin"
	LandmarkLeftJaw        = "Left Jaw"
	LandmarkRightJaw       = "Right Jaw"
	LandmarkLeftJawCorner  = "Left Jaw Corner"
	LandmarkRightJawCorner = "Right Jaw Corner"
	LandmarkLeftEar        = "Left Ear"
	LandmarkRightEar       = "Right Ear"
)

// Display color tags, grouped by feature.
const (
	colorGuide = "#9e9e9e"
	colorBand  = "#8d6e63"
	colorEye   = "#42a5f5"
	colorNose  = "#66bb6a"
	colorMouth = "#ef5350"
	colorChin  = "#ffa726"
	colorJaw   = "#ab47bc"
	colorEar   = "#26a69a"
)

// minRadius guards the evaluator against a non-positive sphere radius. The
// clamp keeps unchecked callers finite; Validate reports the input problem.
const minRadius = 1e-9

// Head precomputes the derived scalars for one set of parameters. Construct
// with NewHead; the zero value is degenerate. A Head is immutable and safe
// for concurrent use.
type Head struct {
	Params HeadParameters

	radius      float64
	chinY       float64 // chin bottom height, below the sphere
	chinZ       float64 // chin depth, set back from the sphere front
	cutDistance float64 // side plane offset from center
	rimRadius   float64 // radius of the side-cut rim circle
	jawDrop     float64
	jawWidth    float64
}

// NewHead derives the model scalars from p. A radius at or below zero is
// clamped to a minimum positive value so the geometry stays finite.
func NewHead(p HeadParameters) Head {
	r := p.Radius
	if r < minRadius {
		r = minRadius
	}
	cut := p.SideCut * r
	return Head{
		Params:      p,
		radius:      r,
		chinY:       -r - p.ChinPos*r,
		chinZ:       r - p.ChinLineCurve*r,
		cutDistance: cut,
		rimRadius:   math.Sqrt(math.Max(0, r*r-cut*cut)),
		jawDrop:     p.JawDrop * r,
		jawWidth:    p.JawWidth * r,
	}
}

// Radius returns the effective (clamped) sphere radius.
func (h Head) Radius() float64 { return h.radius }

// CutDistance returns the side plane offset from the sphere center.
func (h Head) CutDistance() float64 { return h.cutDistance }

// RimRadius returns the radius of the side-cut rim circle,
// sqrt(radius² − cutDistance²), clamped at 0 when the cut leaves the sphere.
func (h Head) RimRadius() float64 { return h.rimRadius }

// FaceDepth returns the z depth of the face surface at height y. At and
// above the equator the face sits on the sphere front. Below it, the depth
// blends from the sphere front toward the chin's set-back depth under a
// quadratic ease-in on y/chinY, which concentrates the curvature near the
// chin.
func (h Head) FaceDepth(y float64) float64 {
	if y >= 0 {
		return h.radius
	}
	t := y / h.chinY // both negative, so t grows 0..1 toward the chin
	t *= t
	return h.radius + (h.chinZ-h.radius)*t
}

// sphereFront returns the z of the sphere surface at height y on the
// front meridian, clamped to 0 beyond the poles. The same expression gives
// the radius of the latitude circle at that height.
func (h Head) sphereFront(y float64) float64 {
	return math.Sqrt(math.Max(0, h.radius*h.radius-y*y))
}

// featureTriple places a feature line's center and left/right ends. The
// center sits on the face curve; the ends swing out by halfWidth and back
// by depth.
func (h Head) featureTriple(y, halfWidth, depth float64) (center, left, right r3.Vec) {
	z := h.FaceDepth(y)
	center = r3.Vec{Y: y, Z: z}
	left = r3.Vec{X: -halfWidth, Y: y, Z: z - depth}
	right = r3.Vec{X: halfWidth, Y: y, Z: z - depth}
	return center, left, right
}

// earHeight places the ears on the side-cut planes midway between the brow
// and nose bands.
func (h Head) earHeight() float64 {
	return (h.Params.BrowPos + h.Params.NosePos) / 2 * h.radius
}

// Landmarks returns the full named landmark set in a fixed order. The
// slice and every entry are freshly allocated; identical parameters
// produce identical output.
func (h Head) Landmarks() []Landmark {
	p := h.Params
	r := h.radius

	hairY := p.HairlinePos * r
	browY := p.BrowPos * r
	eyeC, eyeL, eyeR := h.featureTriple(p.EyeLinePos*r, p.EyeWidth*r, p.EyeCurve*r)
	noseC, noseL, noseR := h.featureTriple(p.NosePos*r, p.NoseWidth*r, p.NoseCurve*r)
	mouthC, mouthL, mouthR := h.featureTriple(p.MouthPos*r, p.MouthWidth*r, p.MouthCurve*r)

	chinC := r3.Vec{Y: h.chinY, Z: h.chinZ}
	chinL := r3.Vec{X: -p.ChinWidth * r, Y: h.chinY, Z: h.chinZ - p.ChinCurve*r}
	chinR := r3.Vec{X: p.ChinWidth * r, Y: h.chinY, Z: h.chinZ - p.ChinCurve*r}

	jawY := -h.rimRadius
	cornerY := jawY - h.jawDrop
	earY := h.earHeight()

	return []Landmark{
		{LandmarkCenter, r3.Vec{}, colorGuide},
		{LandmarkCrown, r3.Vec{Y: r}, colorGuide},
		{LandmarkHairline, r3.Vec{Y: hairY, Z: h.sphereFront(hairY)}, colorBand},
		{LandmarkBrow, r3.Vec{Y: browY, Z: h.sphereFront(browY)}, colorBand},
		{LandmarkEyeLine, eyeC, colorEye},
		{LandmarkLeftEye, eyeL, colorEye},
		{LandmarkRightEye, eyeR, colorEye},
		{LandmarkNose, noseC, colorNose},
		{LandmarkLeftNose, noseL, colorNose},
		{LandmarkRightNose, noseR, colorNose},
		{LandmarkMouth, mouthC, colorMouth},
		{LandmarkLeftMouth, mouthL, colorMouth},
		{LandmarkRightMouth, mouthR, colorMouth},
		{LandmarkChin, chinC, colorChin},
		{LandmarkLeftChin, chinL, colorChin},
		{LandmarkRightChin, chinR, colorChin},
		{LandmarkLeftJaw, r3.Vec{X: -h.cutDistance, Y: jawY}, colorJaw},
		{LandmarkRightJaw, r3.Vec{X: h.cutDistance, Y: jawY}, colorJaw},
		{LandmarkLeftJawCorner, r3.Vec{X: -h.jawWidth, Y: cornerY}, colorJaw},
		{LandmarkRightJawCorner, r3.Vec{X: h.jawWidth, Y: cornerY}, colorJaw},
		{LandmarkLeftEar, r3.Vec{X: -h.cutDistance, Y: earY}, colorEar},
		{LandmarkRightEar, r3.Vec{X: h.cutDistance, Y: earY}, colorEar},
	}
}

// FindLandmark returns the landmark with the given name, or false when the
// name is not part of the set. Landmark sets are small enough that a linear
// scan beats a map for per-frame lookups.
func FindLandmark(ls []Landmark, name string) (Landmark, bool) {
	for _, l := range ls {
		if l.Name == name {
			return l, true
		}
	}
	return Landmark{}, false
}
