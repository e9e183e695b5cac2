package loomis

import "fmt"

// HeadParameters holds the shape ratios that drive the head model. All
// fields except Radius are dimensionless fractions of Radius: position
// ratios run along the vertical axis in [-1, 1] with 0 at the sphere's
// equator and positive up; width and curve ratios are typically in [0, 1].
// The ranges are UI-bounded rather than enforced here. Radius > 0 is the
// one hard requirement (see Validate).
//
// A HeadParameters value is owned by the caller and treated as immutable
// for the duration of an evaluation.
type HeadParameters struct {
	// Radius is the cranial sphere radius in world units (canvas pixels
	// under the default orthographic camera).
	Radius float64

	// SideCut is the offset of the flattening side planes from the sphere
	// center.
	SideCut float64

	// Feature band heights along the vertical axis.
	HairlinePos float64
	BrowPos     float64
	EyeLinePos  float64
	NosePos     float64
	MouthPos    float64

	// Feature half-widths.
	EyeWidth   float64
	NoseWidth  float64
	MouthWidth float64

	// Feature curve depths: how far the outer ends of each feature line
	// sweep back around the face.
	EyeCurve   float64
	NoseCurve  float64
	MouthCurve float64

	// Chin geometry. ChinPos extends the chin below the sphere, ChinWidth
	// and ChinCurve shape its cross-curve, and ChinLineCurve sets how far
	// the chin sits behind the sphere front.
	ChinPos       float64
	ChinWidth     float64
	ChinCurve     float64
	ChinLineCurve float64

	// Jaw geometry. JawDrop lowers the jaw corners below the side rims,
	// JawWidth is the corners' horizontal offset from center.
	JawDrop  float64
	JawWidth float64
}

// DefaultParameters returns classic Loomis proportions at a 100-pixel
// sphere radius.
func DefaultParameters() HeadParameters {
	return HeadParameters{
		Radius:        100,
		SideCut:       0.66,
		HairlinePos:   0.65,
		BrowPos:       0.22,
		EyeLinePos:    0,
		NosePos:       -0.4,
		MouthPos:      -0.68,
		EyeWidth:      0.45,
		NoseWidth:     0.16,
		MouthWidth:    0.3,
		EyeCurve:      0.12,
		NoseCurve:     0.1,
		MouthCurve:    0.14,
		ChinPos:       0.25,
		ChinWidth:     0.2,
		ChinCurve:     0.08,
		ChinLineCurve: 0.3,
		JawDrop:       0.18,
		JawWidth:      0.52,
	}
}

// ValidationError reports a parameter value outside its valid domain.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("loomis: invalid %s: %s", e.Field, e.Message)
}

// Validate checks the hard parameter requirements. The geometry functions
// themselves never fail: NewHead clamps a non-positive radius instead of
// producing NaNs, so Validate is where callers surface input problems to
// the UI layer.
func (p HeadParameters) Validate() error {
	if p.Radius <= 0 {
		return &ValidationError{
			Field:   "Radius",
			Message: fmt.Sprintf("must be positive, got %g", p.Radius),
		}
	}
	return nil
}
