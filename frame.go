package loomis

import "image"

// Frame is one fully evaluated render tick: the projected landmark set plus
// the wireframe runs split by camera facing, all in canvas pixels. Front
// runs are drawn solid, back runs dashed.
type Frame struct {
	Width, Height int
	Landmarks     []ProjectedLandmark
	Front         [][]image.Point
	Back          [][]image.Point
}

// FrameOption configures BuildFrame.
type FrameOption func(*frameConfig)

type frameConfig struct {
	circleSegments int
	curveSegments  int
	wireframe      bool
}

func defaultFrameConfig() frameConfig {
	return frameConfig{
		circleSegments: DefaultSegments,
		curveSegments:  DefaultCurveSegments,
		wireframe:      true,
	}
}

// WithSegments sets the sample count for construction circles and feature
// curves together. Values below 3 are ignored.
func WithSegments(n int) FrameOption {
	return func(c *frameConfig) {
		if n >= 3 {
			c.circleSegments = n
			c.curveSegments = n
		}
	}
}

// WithoutWireframe skips guideline generation, leaving only the projected
// landmarks. Useful while dragging on large canvases.
func WithoutWireframe() FrameOption {
	return func(c *frameConfig) { c.wireframe = false }
}

// BuildFrame runs the whole pipeline for one tick: evaluate the head model,
// clip the guidelines to the side band in head space, rotate and pan into
// camera space, split each polyline by camera facing, and project to canvas
// pixels.
//
// BuildFrame is pure and allocates its output fresh; it is meant to be
// re-invoked from scratch on every change to the parameters, orientation,
// or pan.
func BuildFrame(p HeadParameters, rot Orientation, pan Point, width, height int, opts ...FrameOption) *Frame {
	cfg := defaultFrameConfig()
	for _, o := range opts {
		o(&cfg)
	}

	head := NewHead(p)
	f := &Frame{Width: width, Height: height}
	f.Landmarks = ProjectLandmarks(TransformLandmarks(head.Landmarks(), rot, pan), width, height)

	if cfg.wireframe {
		lines := head.Wireframe(
			WithCircleSegments(cfg.circleSegments),
			WithCurveSegments(cfg.curveSegments),
		)
		for _, line := range lines {
			fb := SplitFrontBack(TransformPolyline(line, rot, pan))
			for _, run := range fb.Front {
				f.Front = append(f.Front, ProjectPolyline(run, width, height))
			}
			for _, run := range fb.Back {
				f.Back = append(f.Back, ProjectPolyline(run, width, height))
			}
		}
	}

	Logger().Debug("built frame",
		"landmarks", len(f.Landmarks),
		"front", len(f.Front),
		"back", len(f.Back),
		"width", width,
		"height", height)
	return f
}
