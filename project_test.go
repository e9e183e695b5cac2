package loomis

import (
	"image"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestProjectLandmarksOrigin(t *testing.T) {
	got := ProjectLandmarks([]Landmark{{Name: "o", Position: r3.Vec{}}}, 1920, 1080)
	want := ProjectedLandmark{Name: "o", X: 960, Y: 540, Visible: true}
	diff(t, []ProjectedLandmark{want}, got)
}

func TestProjectLandmarks(t *testing.T) {
	tests := []struct {
		name    string
		pos     r3.Vec
		x, y    int
		visible bool
	}{
		{"up is negative canvas y", r3.Vec{Y: 100}, 960, 440, true},
		{"behind the camera plane", r3.Vec{Y: 100, Z: -1}, 960, 440, false},
		{"right stays right", r3.Vec{X: 250, Z: 3}, 1210, 540, true},
		{"rounding", r3.Vec{X: 10.4, Y: -10.6, Z: 5}, 970, 551, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProjectLandmarks([]Landmark{{Name: "p", Position: tt.pos, Color: "#fff"}}, 1920, 1080)[0]
			want := ProjectedLandmark{Name: "p", X: tt.x, Y: tt.y, Visible: tt.visible, Color: "#fff"}
			diff(t, want, got)
		})
	}
}

func TestProjectPolylineMatchesLandmarkMapping(t *testing.T) {
	pts := Polyline{{X: -3.2, Y: 7.9, Z: -1}, {X: 12, Y: -44.5, Z: 2}}
	gotPts := ProjectPolyline(pts, 800, 600)

	ls := make([]Landmark, len(pts))
	for i, p := range pts {
		ls[i] = Landmark{Name: "p", Position: p}
	}
	gotLs := ProjectLandmarks(ls, 800, 600)

	for i := range pts {
		want := image.Point{X: gotLs[i].X, Y: gotLs[i].Y}
		if gotPts[i] != want {
			t.Errorf("point %d: polyline %v, landmark %v", i, gotPts[i], want)
		}
	}
}

func TestProjectOddCanvas(t *testing.T) {
	got := ProjectPolyline(Polyline{{}}, 3, 3)
	// the half-pixel center rounds away from zero
	if got[0] != (image.Point{X: 2, Y: 2}) {
		t.Errorf("center = %v, want (2, 2)", got[0])
	}
}
