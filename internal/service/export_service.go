package service

import (
	"bytes"
	"context"
	"time"

	"praxis/internal/export"
	"praxis/internal/platform/logger"
	"praxis/internal/render"
)

// ExportService assembles the downloadable document for one follow-up
type ExportService struct {
	followUps  *FollowUpService
	rasterizer render.Rasterizer
	log        *logger.Logger
}

// NewExportService creates a new export service
func NewExportService(followUps *FollowUpService, rasterizer render.Rasterizer, log *logger.Logger) *ExportService {
	return &ExportService{
		followUps:  followUps,
		rasterizer: rasterizer,
		log:        log.With("service", "ExportService"),
	}
}

// Export renders the follow-up into a PDF and returns the bytes plus the
// download filename. One snapshot is fetched and passed to both the bridge
// and the paginator; a fresh bridge per export keeps captures lazy and
// bounded to this pass.
func (s *ExportService) Export(ctx context.Context, followUpID string) ([]byte, string, error) {
	snapshot, err := s.followUps.LoadSnapshot(ctx, followUpID)
	if err != nil {
		return nil, "", err
	}

	bridge := render.NewBridge(s.rasterizer, 5*time.Second)
	canvas := export.NewPDFCanvas()
	exporter := export.NewExporter(canvas, bridge, s.log)
	exporter.Export(ctx, snapshot.Template, snapshot.Answers)

	var buf bytes.Buffer
	if err := canvas.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := export.Filename(snapshot.FollowUp.ClientName, time.Now())
	return buf.Bytes(), filename, nil
}
