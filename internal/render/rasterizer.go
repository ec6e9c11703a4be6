package render

import (
	"bytes"
	"context"
	"fmt"
)

// Rasterizer converts an off-screen chart into a PNG buffer. Captures may
// fail (unsupported environment, timing); callers must treat failures as
// recoverable and fall back to a textual rendition.
type Rasterizer interface {
	Capture(ctx context.Context, chart *Chart) ([]byte, error)
}

// PNGRasterizer renders charts in-process and encodes them as PNG
type PNGRasterizer struct {
	fontPath string
}

func NewPNGRasterizer(fontPath string) *PNGRasterizer {
	return &PNGRasterizer{fontPath: fontPath}
}

func (r *PNGRasterizer) Capture(ctx context.Context, chart *Chart) ([]byte, error) {
	if chart == nil || len(chart.Points) == 0 {
		return nil, fmt.Errorf("rasterizer: nothing to capture")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dc := drawRadar(chart, loadFontFace(r.fontPath, 14))
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("rasterizer: encode png: %w", err)
	}
	return buf.Bytes(), nil
}
