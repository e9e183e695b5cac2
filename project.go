package loomis

import (
	"image"
	"math"
)

// ProjectedLandmark is a landmark mapped to canvas pixels under the fixed
// orthographic camera. Visible reports whether the point faces the camera,
// z >= 0 after transformation. Projected landmarks are derived and
// ephemeral; the color tag is carried through for the overlay layer.
type ProjectedLandmark struct {
	Name    string
	X, Y    int
	Visible bool
	Color   string
}

// ProjectLandmarks maps transformed landmarks to integer canvas pixels.
// The camera sits at large positive z looking toward the origin: one world
// unit is one pixel, the canvas center maps to the world origin, and
// canvas y grows downward while world y grows upward.
func ProjectLandmarks(ls []Landmark, width, height int) []ProjectedLandmark {
	out := make([]ProjectedLandmark, len(ls))
	for i, l := range ls {
		out[i] = ProjectedLandmark{
			Name:    l.Name,
			X:       int(math.Round(float64(width)/2 + l.Position.X)),
			Y:       int(math.Round(float64(height)/2 - l.Position.Y)),
			Visible: l.Position.Z >= 0,
			Color:   l.Color,
		}
	}
	return out
}

// ProjectPolyline maps a transformed polyline to canvas pixels with the
// same camera. Facing is handled upstream by SplitFrontBack, so only the
// pixel coordinates remain.
func ProjectPolyline(pts Polyline, width, height int) []image.Point {
	out := make([]image.Point, len(pts))
	for i, p := range pts {
		out[i] = image.Point{
			X: int(math.Round(float64(width)/2 + p.X)),
			Y: int(math.Round(float64(height)/2 - p.Y)),
		}
	}
	return out
}
