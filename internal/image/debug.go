package imagepkg

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

type GuideLine struct {
	X1, Y1, X2, Y2 float64
}

// Guides is the debug overlay for one template size: the two canvas
// centerlines and a marker per text anchor.
type Guides struct {
	Lines   []GuideLine
	Markers []image.Point
	Radius  int
}

// DebugGuides builds the overlay geometry. Markers cover the name, phone and
// email anchors; the url anchor has none.
func (l Layout) DebugGuides(width, height int) Guides {
	a := l.Anchors(width, height)
	cx, cy := float64(width)/2, float64(height)/2
	return Guides{
		Lines: []GuideLine{
			{X1: cx, Y1: 0, X2: cx, Y2: float64(height)},
			{X1: 0, Y1: cy, X2: float64(width), Y2: cy},
		},
		Markers: []image.Point{
			{X: a.TextX, Y: a.NameY},
			{X: a.TextX, Y: a.PhoneY},
			{X: a.TextX, Y: a.EmailY},
		},
		Radius: l.MarkerRadius,
	}
}

func drawGuides(img image.Image, g Guides, col color.Color) image.Image {
	dc := gg.NewContextForImage(img)
	dc.SetColor(col)
	dc.SetLineWidth(1)
	dc.SetLineCapButt()
	for _, ln := range g.Lines {
		x1, y1, x2, y2 := ln.X1, ln.Y1, ln.X2, ln.Y2
		// a 1px line must sit on pixel centers to cover a single row or column
		if x1 == x2 && x1 == math.Trunc(x1) {
			x1, x2 = x1+0.5, x2+0.5
		}
		if y1 == y2 && y1 == math.Trunc(y1) {
			y1, y2 = y1+0.5, y2+0.5
		}
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}
	for _, p := range g.Markers {
		dc.DrawCircle(float64(p.X), float64(p.Y), float64(g.Radius))
		dc.Fill()
	}
	return dc.Image()
}
