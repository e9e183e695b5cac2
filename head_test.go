package loomis

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestCrownPosition(t *testing.T) {
	h := NewHead(DefaultParameters())
	crown, ok := FindLandmark(h.Landmarks(), LandmarkCrown)
	if !ok {
		t.Fatal("Crown landmark missing")
	}
	if !vecApprox(crown.Position, r3.Vec{Y: 100}, 1e-12) {
		t.Errorf("Crown = %v, want (0, 100, 0)", crown.Position)
	}
}

func TestRimRadius(t *testing.T) {
	p := DefaultParameters()
	p.Radius = 100
	p.SideCut = 0.66
	h := NewHead(p)

	if got := h.CutDistance(); math.Abs(got-66) > 1e-9 {
		t.Errorf("CutDistance = %v, want 66", got)
	}
	want := math.Sqrt(100*100 - 66*66)
	if got := h.RimRadius(); math.Abs(got-want) > 1e-9 {
		t.Errorf("RimRadius = %v, want %v", got, want)
	}
}

func TestRimRadiusClampsDeepCut(t *testing.T) {
	p := DefaultParameters()
	p.SideCut = 1.5 // cut beyond the sphere
	if got := NewHead(p).RimRadius(); got != 0 {
		t.Errorf("RimRadius = %v, want 0", got)
	}
}

func TestFaceDepth(t *testing.T) {
	h := NewHead(DefaultParameters()) // chinY = -125, chinZ = 70
	tests := []struct {
		name string
		y    float64
		want float64
	}{
		{"equator", 0, 100},
		{"above equator", 40, 100},
		{"crown", 100, 100},
		{"halfway to chin", -62.5, 92.5}, // quadratic ease: t² = 0.25
		{"at chin", -125, 70},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.FaceDepth(tt.y); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("FaceDepth(%v) = %v, want %v", tt.y, got, tt.want)
			}
		})
	}
}

func TestLandmarkSet(t *testing.T) {
	wantOrder := []string{
		LandmarkCenter, LandmarkCrown, LandmarkHairline, LandmarkBrow,
		LandmarkEyeLine, LandmarkLeftEye, LandmarkRightEye,
		LandmarkNose, LandmarkLeftNose, LandmarkRightNose,
		LandmarkMouth, LandmarkLeftMouth, LandmarkRightMouth,
		LandmarkChin, LandmarkLeftChin, LandmarkRightChin,
		LandmarkLeftJaw, LandmarkRightJaw,
		LandmarkLeftJawCorner, LandmarkRightJawCorner,
		LandmarkLeftEar, LandmarkRightEar,
	}
	ls := NewHead(DefaultParameters()).Landmarks()
	if len(ls) != len(wantOrder) {
		t.Fatalf("landmark count = %d, want %d", len(ls), len(wantOrder))
	}
	seen := make(map[string]bool, len(ls))
	for i, l := range ls {
		if l.Name != wantOrder[i] {
			t.Errorf("landmark %d = %q, want %q", i, l.Name, wantOrder[i])
		}
		if seen[l.Name] {
			t.Errorf("duplicate landmark name %q", l.Name)
		}
		seen[l.Name] = true
		if l.Color == "" {
			t.Errorf("landmark %q has no color tag", l.Name)
		}
	}
}

func TestFeatureLandmarkGeometry(t *testing.T) {
	p := DefaultParameters()
	h := NewHead(p)
	ls := h.Landmarks()

	center, _ := FindLandmark(ls, LandmarkEyeLine)
	left, _ := FindLandmark(ls, LandmarkLeftEye)
	right, _ := FindLandmark(ls, LandmarkRightEye)

	wantHalf := p.EyeWidth * p.Radius
	wantDepth := p.EyeCurve * p.Radius
	if got := center.Position.X - left.Position.X; math.Abs(got-wantHalf) > 1e-9 {
		t.Errorf("left eye x offset = %v, want %v", got, wantHalf)
	}
	if got := right.Position.X - center.Position.X; math.Abs(got-wantHalf) > 1e-9 {
		t.Errorf("right eye x offset = %v, want %v", got, wantHalf)
	}
	for _, side := range []Landmark{left, right} {
		if got := center.Position.Z - side.Position.Z; math.Abs(got-wantDepth) > 1e-9 {
			t.Errorf("%s z setback = %v, want %v", side.Name, got, wantDepth)
		}
		if side.Position.Y != center.Position.Y {
			t.Errorf("%s y = %v, want %v", side.Name, side.Position.Y, center.Position.Y)
		}
	}
}

func TestJawLandmarks(t *testing.T) {
	p := DefaultParameters()
	h := NewHead(p)
	ls := h.Landmarks()

	jaw, _ := FindLandmark(ls, LandmarkLeftJaw)
	want := r3.Vec{X: -h.CutDistance(), Y: -h.RimRadius()}
	if !vecApprox(jaw.Position, want, 1e-9) {
		t.Errorf("Left Jaw = %v, want %v", jaw.Position, want)
	}

	corner, _ := FindLandmark(ls, LandmarkLeftJawCorner)
	want = r3.Vec{X: -p.JawWidth * p.Radius, Y: -h.RimRadius() - p.JawDrop*p.Radius}
	if !vecApprox(corner.Position, want, 1e-9) {
		t.Errorf("Left Jaw Corner = %v, want %v", corner.Position, want)
	}
}

func TestNonPositiveRadiusStaysFinite(t *testing.T) {
	for _, radius := range []float64{0, -5} {
		p := DefaultParameters()
		p.Radius = radius
		for _, l := range NewHead(p).Landmarks() {
			if math.IsNaN(l.Position.X) || math.IsNaN(l.Position.Y) || math.IsNaN(l.Position.Z) {
				t.Errorf("radius %v: landmark %q = %v", radius, l.Name, l.Position)
			}
		}
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultParameters().Validate(); err != nil {
		t.Errorf("default parameters: %v", err)
	}

	p := DefaultParameters()
	p.Radius = 0
	err := p.Validate()
	if err == nil {
		t.Fatal("Validate() = nil for zero radius")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type %T, want *ValidationError", err)
	}
	if verr.Field != "Radius" {
		t.Errorf("Field = %q, want Radius", verr.Field)
	}
}

func TestFindLandmark(t *testing.T) {
	ls := NewHead(DefaultParameters()).Landmarks()
	if _, ok := FindLandmark(ls, LandmarkNose); !ok {
		t.Error("Nose not found")
	}
	if _, ok := FindLandmark(ls, "no such landmark"); ok {
		t.Error("unexpectedly found a bogus name")
	}
}

func TestLandmarksDeterministic(t *testing.T) {
	h := NewHead(DefaultParameters())
	diff(t, h.Landmarks(), h.Landmarks())
}
