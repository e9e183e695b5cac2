package loomis

import "gonum.org/v1/gonum/spatial/r3"

// DefaultCurveSegments is the sample count for feature curves.
const DefaultCurveSegments = 32

// WireframeOption configures guideline generation.
type WireframeOption func(*wireframeConfig)

type wireframeConfig struct {
	circleSegments int
	curveSegments  int
}

func defaultWireframeConfig() wireframeConfig {
	return wireframeConfig{
		circleSegments: DefaultSegments,
		curveSegments:  DefaultCurveSegments,
	}
}

// WithCircleSegments sets the sample count for construction circles.
// Values below 3 are ignored.
func WithCircleSegments(n int) WireframeOption {
	return func(c *wireframeConfig) {
		if n >= 3 {
			c.circleSegments = n
		}
	}
}

// WithCurveSegments sets the sample count for feature curves. Values below
// 1 are ignored.
func WithCurveSegments(n int) WireframeOption {
	return func(c *wireframeConfig) {
		if n >= 1 {
			c.curveSegments = n
		}
	}
}

// FeatureCurve samples the parabolic cross-section of a feature line,
// z = baseZ − depth·(x/halfWidth)², with x swept from −halfWidth to
// +halfWidth over segments steps.
func FeatureCurve(y, baseZ, halfWidth, depth float64, segments int) Polyline {
	if segments < 1 {
		segments = DefaultCurveSegments
	}
	pts := make(Polyline, 0, segments+1)
	for i := 0; i <= segments; i++ {
		fx := float64(i)/float64(segments)*2 - 1
		pts = append(pts, r3.Vec{X: fx * halfWidth, Y: y, Z: baseZ - depth*fx*fx})
	}
	return pts
}

// ChinConnector traces the face profile from the sphere front down to the
// chin point, following the same quadratic ease-in blend as FaceDepth.
func (h Head) ChinConnector(segments int) Polyline {
	if segments < 1 {
		segments = DefaultCurveSegments
	}
	pts := make(Polyline, 0, segments+1)
	for i := 0; i <= segments; i++ {
		y := h.chinY * float64(i) / float64(segments)
		pts = append(pts, r3.Vec{Y: y, Z: h.FaceDepth(y)})
	}
	return pts
}

// latitudeBand returns the construction circle at height y, clipped to the
// side band so it ends on the flattened planes.
func (h Head) latitudeBand(y float64, segments int) []Polyline {
	circle := CircleOnPlane(r3.Vec{Y: y}, r3.Vec{Y: 1}, h.sphereFront(y), segments)
	return ClipToSideBand(circle, h.cutDistance)
}

// jawOutline connects the side rims to the chin through the dropped jaw
// corners, left to right.
func (h Head) jawOutline() Polyline {
	p := h.Params
	chinDepth := h.chinZ - p.ChinCurve*h.radius
	return Polyline{
		{X: -h.cutDistance, Y: -h.rimRadius},
		{X: -h.jawWidth, Y: -h.rimRadius - h.jawDrop},
		{X: -p.ChinWidth * h.radius, Y: h.chinY, Z: chinDepth},
		{Y: h.chinY, Z: h.chinZ},
		{X: p.ChinWidth * h.radius, Y: h.chinY, Z: chinDepth},
		{X: h.jawWidth, Y: -h.rimRadius - h.jawDrop},
		{X: h.cutDistance, Y: -h.rimRadius},
	}
}

// Wireframe returns the guideline polylines for the head in head space:
// the vertical profile circle, the feature-band latitude circles clipped to
// the side band, the two side rim circles, the parabolic eye/nose/mouth
// cross-sections, the chin cross-curve and connector, and the jaw outline.
//
// Identical parameters and options yield identical polylines; there is no
// cached state between calls.
func (h Head) Wireframe(opts ...WireframeOption) []Polyline {
	cfg := defaultWireframeConfig()
	for _, o := range opts {
		o(&cfg)
	}
	p := h.Params
	r := h.radius

	lines := []Polyline{
		CircleOnPlane(r3.Vec{}, r3.Vec{X: 1}, r, cfg.circleSegments),
	}
	for _, y := range []float64{
		p.HairlinePos * r,
		p.BrowPos * r,
		p.EyeLinePos * r,
		p.NosePos * r,
		p.MouthPos * r,
	} {
		lines = append(lines, h.latitudeBand(y, cfg.circleSegments)...)
	}
	lines = append(lines,
		CircleOnPlane(r3.Vec{X: -h.cutDistance}, r3.Vec{X: 1}, h.rimRadius, cfg.circleSegments),
		CircleOnPlane(r3.Vec{X: h.cutDistance}, r3.Vec{X: 1}, h.rimRadius, cfg.circleSegments),
	)

	lines = append(lines,
		FeatureCurve(p.EyeLinePos*r, h.FaceDepth(p.EyeLinePos*r), p.EyeWidth*r, p.EyeCurve*r, cfg.curveSegments),
		FeatureCurve(p.NosePos*r, h.FaceDepth(p.NosePos*r), p.NoseWidth*r, p.NoseCurve*r, cfg.curveSegments),
		FeatureCurve(p.MouthPos*r, h.FaceDepth(p.MouthPos*r), p.MouthWidth*r, p.MouthCurve*r, cfg.curveSegments),
		FeatureCurve(h.chinY, h.chinZ, p.ChinWidth*r, p.ChinCurve*r, cfg.curveSegments),
		h.ChinConnector(cfg.curveSegments),
		h.jawOutline(),
	)
	return lines
}
