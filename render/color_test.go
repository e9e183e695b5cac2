package render

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{"short white", "#fff", RGBA{1, 1, 1, 1}},
		{"long black", "#000000", RGBA{0, 0, 0, 1}},
		{"no hash", "ff0000", RGBA{1, 0, 0, 1}},
		{"with alpha", "#00ff0080", RGBA{0, 1, 0, float64(0x80) / 255}},
		{"short rgba", "#0f08", RGBA{0, 1, 0, float64(0x88) / 255}},
		{"uppercase", "#FF8000", RGBA{1, float64(0x80) / 255, 0, 1}},
		{"malformed", "banana!", RGBA{0, 0, 0, 1}},
		{"empty", "", RGBA{0, 0, 0, 1}},
	}
	const tol = 1e-12
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.hex)
			for i, pair := range [][2]float64{
				{got.R, tt.want.R}, {got.G, tt.want.G}, {got.B, tt.want.B}, {got.A, tt.want.A},
			} {
				d := pair[0] - pair[1]
				if d < -tol || d > tol {
					t.Errorf("component %d = %v, want %v", i, pair[0], pair[1])
				}
			}
		})
	}
}

func TestRGBAColor(t *testing.T) {
	got := RGB(1, 0.5, 0).Color()
	want := color.NRGBA{R: 255, G: 127, B: 0, A: 255}
	if got != want {
		t.Errorf("Color() = %v, want %v", got, want)
	}
}

func TestRGBAColorClamps(t *testing.T) {
	got := RGBA{R: 2, G: -1, B: 0, A: 1}.Color()
	want := color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	if got != want {
		t.Errorf("Color() = %v, want %v", got, want)
	}
}

func TestWithAlpha(t *testing.T) {
	c := RGB(0.2, 0.4, 0.6).WithAlpha(0.5)
	if c.A != 0.5 || c.R != 0.2 {
		t.Errorf("WithAlpha = %+v", c)
	}
}
