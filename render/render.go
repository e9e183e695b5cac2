// Package render rasterizes an evaluated loomis frame into an image.
//
// This is a one-shot snapshot renderer for previews and tests: front
// wireframe runs are stroked solid, back runs dashed, and landmarks are
// drawn as dots colored by their display tag, optionally labelled. The
// interactive overlay that artists draw against lives outside this module
// and consumes the frame data directly.
package render

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/sketchkit/loomis"
)

// dotRadius is the landmark marker radius in pixels.
const dotRadius = 3

// Option configures Draw.
type Option func(*config)

type config struct {
	lineWidth  float64
	background RGBA
	lineColor  RGBA
	labels     bool
	dashOn     float64
	dashOff    float64
}

func defaultConfig() config {
	return config{
		lineWidth:  1.5,
		background: RGB(1, 1, 1),
		lineColor:  Hex("#37474f"),
		labels:     false,
		dashOn:     6,
		dashOff:    4,
	}
}

// WithLineWidth sets the wireframe stroke width in pixels. Values at or
// below zero are ignored.
func WithLineWidth(w float64) Option {
	return func(c *config) {
		if w > 0 {
			c.lineWidth = w
		}
	}
}

// WithBackground sets the canvas fill color.
func WithBackground(bg RGBA) Option {
	return func(c *config) { c.background = bg }
}

// WithLineColor sets the wireframe stroke color.
func WithLineColor(lc RGBA) Option {
	return func(c *config) { c.lineColor = lc }
}

// WithLabels draws each landmark's name next to its dot.
func WithLabels() Option {
	return func(c *config) { c.labels = true }
}

// Draw rasterizes a frame into a fresh RGBA image of the frame's canvas
// size. Front runs are stroked solid, back runs dashed so the hidden side
// of the scaffold reads as such, and landmarks become dots in their display
// colors (dimmed when the landmark faces away from the camera).
func Draw(f *loomis.Frame, opts ...Option) *image.RGBA {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(cfg.background.Color()), image.Point{}, draw.Src)

	back := dashRuns(toFloatRuns(f.Back), cfg.dashOn, cfg.dashOff)
	strokeRuns(img, back, cfg.lineWidth, cfg.lineColor.WithAlpha(cfg.lineColor.A*0.6))
	strokeRuns(img, toFloatRuns(f.Front), cfg.lineWidth, cfg.lineColor)

	for _, lm := range f.Landmarks {
		c := cfg.lineColor
		if lm.Color != "" {
			c = Hex(lm.Color)
		}
		if !lm.Visible {
			c = c.WithAlpha(c.A * 0.35)
		}
		fillDot(img, float64(lm.X), float64(lm.Y), dotRadius, c)
		if cfg.labels {
			drawLabel(img, lm.Name, lm.X+dotRadius+2, lm.Y-dotRadius, c)
		}
	}

	loomis.Logger().Debug("rendered frame",
		"front", len(f.Front),
		"back", len(f.Back),
		"landmarks", len(f.Landmarks))
	return img
}

// toFloatRuns lifts pixel runs to float coordinates for stroking.
func toFloatRuns(runs [][]image.Point) [][]loomis.Point {
	out := make([][]loomis.Point, len(runs))
	for i, run := range runs {
		pts := make([]loomis.Point, len(run))
		for j, p := range run {
			pts[j] = loomis.Pt(float64(p.X), float64(p.Y))
		}
		out[i] = pts
	}
	return out
}

// strokeRuns fills a thin quad per edge, accumulating every run of one
// color into a single rasterizer pass.
func strokeRuns(img *image.RGBA, runs [][]loomis.Point, width float64, c RGBA) {
	if len(runs) == 0 {
		return
	}
	r := vector.NewRasterizer(img.Bounds().Dx(), img.Bounds().Dy())
	half := width / 2
	for _, run := range runs {
		for i := 1; i < len(run); i++ {
			a, b := run[i-1], run[i]
			d := b.Sub(a)
			l := d.Length()
			if l == 0 {
				continue
			}
			nx := -d.Y / l * half
			ny := d.X / l * half
			r.MoveTo(float32(a.X+nx), float32(a.Y+ny))
			r.LineTo(float32(b.X+nx), float32(b.Y+ny))
			r.LineTo(float32(b.X-nx), float32(b.Y-ny))
			r.LineTo(float32(a.X-nx), float32(a.Y-ny))
			r.ClosePath()
		}
	}
	r.Draw(img, img.Bounds(), image.NewUniform(c.Color()), image.Point{})
}

// dashRuns rechops runs into the on-pattern pieces of an on/off dash
// cycle, walking arc length across edges so the pattern continues smoothly
// around corners.
func dashRuns(runs [][]loomis.Point, on, off float64) [][]loomis.Point {
	if on <= 0 || off <= 0 {
		return runs
	}
	period := on + off

	var out [][]loomis.Point
	for _, run := range runs {
		var cur []loomis.Point
		flush := func() {
			if len(cur) >= 2 {
				out = append(out, cur)
			}
			cur = nil
		}
		dist := 0.0
		for i := 1; i < len(run); i++ {
			a, b := run[i-1], run[i]
			seg := b.Sub(a).Length()
			if seg == 0 {
				continue
			}
			t := 0.0
			for t < seg {
				phase := math.Mod(dist, period)
				inOn := phase < on
				remain := on - phase
				if !inOn {
					remain = period - phase
				}
				step := math.Min(seg-t, remain)
				if inOn {
					if len(cur) == 0 {
						cur = append(cur, a.Add(b.Sub(a).Mul(t/seg)))
					}
					cur = append(cur, a.Add(b.Sub(a).Mul((t+step)/seg)))
				} else {
					flush()
				}
				t += step
				dist += step
			}
		}
		flush()
	}
	return out
}

// fillDot fills a small disc, approximated by a 16-gon; at dot sizes the
// difference from a true circle is below a pixel.
func fillDot(img *image.RGBA, cx, cy, radius float64, c RGBA) {
	r := vector.NewRasterizer(img.Bounds().Dx(), img.Bounds().Dy())
	const steps = 16
	for i := 0; i <= steps; i++ {
		s, co := math.Sincos(float64(i) / steps * 2 * math.Pi)
		x := float32(cx + co*radius)
		y := float32(cy + s*radius)
		if i == 0 {
			r.MoveTo(x, y)
		} else {
			r.LineTo(x, y)
		}
	}
	r.ClosePath()
	r.Draw(img, img.Bounds(), image.NewUniform(c.Color()), image.Point{})
}

func drawLabel(img *image.RGBA, s string, x, y int, c RGBA) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c.Color()),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
