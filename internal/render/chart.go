// Package render produces the off-screen radar charts scale blocks embed in
// exported documents, and the bridge that captures them as bitmaps.
package render

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"praxis/internal/assessment"
)

// Chart is one off-screen radial chart: a point per sub-question, values on
// a 0..10 scale.
type Chart struct {
	Title  string
	Points []assessment.ScalePoint
}

const (
	chartSize   = 480
	chartMax    = 10.0
	gridRings   = 5
	labelMargin = 56.0
)

// drawRadar renders the chart onto a fresh gg context
func drawRadar(chart *Chart, face font.Face) *gg.Context {
	dc := gg.NewContext(chartSize, chartSize)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(face)

	n := len(chart.Points)
	if n == 0 {
		return dc
	}

	cx, cy := float64(chartSize)/2, float64(chartSize)/2
	radius := float64(chartSize)/2 - labelMargin

	angle := func(i int) float64 {
		return -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
	}

	// grid rings
	dc.SetRGB(0.8, 0.8, 0.8)
	dc.SetLineWidth(1)
	for ring := 1; ring <= gridRings; ring++ {
		rr := radius * float64(ring) / gridRings
		for i := 0; i <= n; i++ {
			x := cx + rr*math.Cos(angle(i%n))
			y := cy + rr*math.Sin(angle(i%n))
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.Stroke()
	}

	// axes and labels
	for i, p := range chart.Points {
		x := cx + radius*math.Cos(angle(i))
		y := cy + radius*math.Sin(angle(i))
		dc.SetRGB(0.8, 0.8, 0.8)
		dc.DrawLine(cx, cy, x, y)
		dc.Stroke()

		lx := cx + (radius+18)*math.Cos(angle(i))
		ly := cy + (radius+18)*math.Sin(angle(i))
		dc.SetRGB(0.2, 0.2, 0.2)
		dc.DrawStringAnchored(truncateLabel(p.Text), lx, ly, 0.5, 0.5)
	}

	// value polygon
	dc.SetRGBA(0.25, 0.45, 0.75, 0.35)
	for i, p := range chart.Points {
		rr := radius * (p.Value / chartMax)
		x := cx + rr*math.Cos(angle(i))
		y := cy + rr*math.Sin(angle(i))
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
	dc.FillPreserve()
	dc.SetRGBA(0.25, 0.45, 0.75, 1)
	dc.SetLineWidth(2)
	dc.Stroke()

	if chart.Title != "" {
		dc.SetRGB(0.1, 0.1, 0.1)
		dc.DrawStringAnchored(chart.Title, cx, 18, 0.5, 0.5)
	}
	return dc
}

func truncateLabel(s string) string {
	const max = 18
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

// loadFontFace loads a TTF from disk; an empty path or a load failure falls
// back to the built-in bitmap face so charts render anywhere.
func loadFontFace(path string, size float64) font.Face {
	if path == "" {
		return basicfont.Face7x13
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return basicfont.Face7x13
	}
	parsed, err := truetype.Parse(data)
	if err != nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(parsed, &truetype.Options{Size: size})
}
