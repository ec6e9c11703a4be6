package render

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"praxis/internal/assessment"
)

func TestPNGRasterizerProducesDecodablePNG(t *testing.T) {
	r := NewPNGRasterizer("")
	chart := &Chart{Title: "Well-being", Points: []assessment.ScalePoint{
		{Text: "Sleep", Value: 8},
		{Text: "Energy", Value: 3},
		{Text: "Mood", Value: 6},
	}}

	data, err := r.Capture(context.Background(), chart)
	if err != nil {
		t.Fatalf("capture: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != chartSize || bounds.Dy() != chartSize {
		t.Errorf("image = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), chartSize, chartSize)
	}
}

func TestPNGRasterizerRejectsEmptyChart(t *testing.T) {
	r := NewPNGRasterizer("")

	if _, err := r.Capture(context.Background(), nil); err == nil {
		t.Error("nil chart should fail")
	}
	if _, err := r.Capture(context.Background(), &Chart{Title: "empty"}); err == nil {
		t.Error("chart without points should fail")
	}
}

func TestPNGRasterizerHonorsCancelledContext(t *testing.T) {
	r := NewPNGRasterizer("")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	chart := &Chart{Points: []assessment.ScalePoint{{Text: "a", Value: 1}}}
	if _, err := r.Capture(ctx, chart); err == nil {
		t.Error("cancelled context should abort the capture")
	}
}

func TestPNGRasterizerMissingFontFallsBack(t *testing.T) {
	r := NewPNGRasterizer("/nonexistent/font.ttf")
	chart := &Chart{Points: []assessment.ScalePoint{
		{Text: "a", Value: 5},
		{Text: "b", Value: 5},
	}}

	if _, err := r.Capture(context.Background(), chart); err != nil {
		t.Fatalf("capture with missing font should fall back, got %v", err)
	}
}

func TestTruncateLabel(t *testing.T) {
	if got := truncateLabel("short"); got != "short" {
		t.Errorf("truncateLabel(short) = %q", got)
	}
	long := "a very long sub-question label"
	got := truncateLabel(long)
	if len([]rune(got)) > 18 {
		t.Errorf("truncated label still %d runes: %q", len([]rune(got)), got)
	}
}
