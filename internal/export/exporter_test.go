package export

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"praxis/internal/model"
	"praxis/internal/render"
)

// fakeCanvas records every drawing call so tests can assert on layout
// decisions without a real document backend.
type fakeCanvas struct {
	pages  int
	texts  []placedText
	images []placedImage
	rows   []placedRow
}

type placedText struct {
	y     float64
	text  string
	title bool
}

type placedImage struct {
	y, w, h float64
}

type placedRow struct {
	y, height float64
	cells     []string
}

func (c *fakeCanvas) AddPage() { c.pages++ }

func (c *fakeCanvas) Text(x, y float64, text string) {
	c.texts = append(c.texts, placedText{y: y, text: text})
}

func (c *fakeCanvas) Title(x, y float64, text string) {
	c.texts = append(c.texts, placedText{y: y, text: text, title: true})
}

func (c *fakeCanvas) SplitText(text string, width float64) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func (c *fakeCanvas) Image(data []byte, x, y, w, h float64) error {
	c.images = append(c.images, placedImage{y: y, w: w, h: h})
	return nil
}

func (c *fakeCanvas) TableRow(x, y float64, widths []float64, height float64, cells []string) {
	c.rows = append(c.rows, placedRow{y: y, height: height, cells: cells})
}

type stubRasterizer struct {
	data []byte
	err  error
}

func (r *stubRasterizer) Capture(ctx context.Context, chart *render.Chart) ([]byte, error) {
	return r.data, r.err
}

func newTestExporter(canvas *fakeCanvas, rast render.Rasterizer) *Exporter {
	return NewExporter(canvas, render.NewBridge(rast, time.Second), nil)
}

func freeTextTemplate(blocks int) (*model.Template, map[string]*model.Answer) {
	t := &model.Template{Name: "T"}
	answers := make(map[string]*model.Answer, blocks)
	for i := 0; i < blocks; i++ {
		id := fmt.Sprintf("ft%d", i)
		t.Blocks = append(t.Blocks, model.Block{
			ID:       id,
			Type:     model.BlockFreeText,
			Title:    fmt.Sprintf("Question %d", i),
			Question: "Q",
		})
		answers[id] = &model.Answer{Text: "answer"}
	}
	return t, answers
}

func TestExportBreaksBeforeOverflow(t *testing.T) {
	canvas := &fakeCanvas{}
	e := newTestExporter(canvas, &stubRasterizer{})

	tmpl, answers := freeTextTemplate(30)
	e.Export(context.Background(), tmpl, answers)

	if canvas.pages == 0 {
		t.Fatal("thirty blocks must not fit on one page")
	}
	bottom := pageHeight - pageMargin
	for _, pt := range canvas.texts {
		if pt.y > bottom {
			t.Errorf("text %q placed at y=%g, below printable bottom %g", pt.text, pt.y, bottom)
		}
		if pt.y < pageMargin {
			t.Errorf("text %q placed at y=%g, above the top margin", pt.text, pt.y)
		}
	}
}

func TestExportTableRowsAreAtomic(t *testing.T) {
	canvas := &fakeCanvas{}
	e := newTestExporter(canvas, &stubRasterizer{})

	partners := make([]model.ReportPartner, 60)
	for i := range partners {
		partners[i] = model.ReportPartner{Name: fmt.Sprintf("Partner %d", i)}
	}
	tmpl := &model.Template{Blocks: []model.Block{
		{ID: "r1", Type: model.BlockReport, Title: "Referrals"},
	}}
	answers := map[string]*model.Answer{
		"r1": {Report: &model.ReportAnswer{Narrative: "See below", Partners: partners}},
	}

	e.Export(context.Background(), tmpl, answers)

	if len(canvas.rows) != 60 {
		t.Fatalf("rows = %d, want 60", len(canvas.rows))
	}
	if canvas.pages == 0 {
		t.Fatal("sixty rows must not fit on one page")
	}
	bottom := pageHeight - pageMargin
	for i, row := range canvas.rows {
		if row.y+row.height > bottom {
			t.Errorf("row %d spans the page edge: top=%g height=%g", i, row.y, row.height)
		}
	}
}

func TestExportChartableScalePlacesBitmap(t *testing.T) {
	canvas := &fakeCanvas{}
	e := newTestExporter(canvas, &stubRasterizer{data: []byte("png-bytes")})

	tmpl := &model.Template{Blocks: []model.Block{
		{ID: "s1", Type: model.BlockScale, Title: "Well-being", SubQuestions: []model.SubQuestion{
			{ID: "q1", Text: "Sleep quality"},
			{ID: "q2", Text: "Energy level"},
		}},
	}}
	answers := map[string]*model.Answer{
		"s1": {Ratings: map[string]float64{"q1": 8, "q2": 3}},
	}

	e.Export(context.Background(), tmpl, answers)

	if len(canvas.images) != 1 {
		t.Fatalf("images = %d, want 1", len(canvas.images))
	}
	img := canvas.images[0]
	if img.w != chartWidth || img.h != chartHeight {
		t.Errorf("image size = %gx%g, want %gx%g", img.w, img.h, chartWidth, chartHeight)
	}
	for _, pt := range canvas.texts {
		if strings.Contains(pt.text, "/10") {
			t.Errorf("unexpected text fallback %q alongside the bitmap", pt.text)
		}
	}
}

func TestExportScaleFallsBackToTextOnCaptureFailure(t *testing.T) {
	canvas := &fakeCanvas{}
	e := newTestExporter(canvas, &stubRasterizer{err: errors.New("no display")})

	tmpl := &model.Template{Blocks: []model.Block{
		{ID: "s1", Type: model.BlockScale, Title: "Well-being", SubQuestions: []model.SubQuestion{
			{ID: "q1", Text: "Sleep quality"},
			{ID: "q2", Text: "Energy level"},
		}},
	}}
	answers := map[string]*model.Answer{
		"s1": {Ratings: map[string]float64{"q1": 8, "q2": 3}},
	}

	e.Export(context.Background(), tmpl, answers)

	if len(canvas.images) != 0 {
		t.Fatalf("images = %d, want none after capture failure", len(canvas.images))
	}
	var lines []string
	for _, pt := range canvas.texts {
		if !pt.title {
			lines = append(lines, pt.text)
		}
	}
	want := []string{"Sleep quality: 8/10", "Energy level: 3/10"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestExportSingleQuestionScaleStaysTextual(t *testing.T) {
	canvas := &fakeCanvas{}
	e := newTestExporter(canvas, &stubRasterizer{data: []byte("png-bytes")})

	tmpl := &model.Template{Blocks: []model.Block{
		{ID: "s1", Type: model.BlockScale, SubQuestions: []model.SubQuestion{
			{ID: "q1", Text: "Overall"},
		}},
	}}
	answers := map[string]*model.Answer{
		"s1": {Ratings: map[string]float64{"q1": 7}},
	}

	e.Export(context.Background(), tmpl, answers)

	if len(canvas.images) != 0 {
		t.Error("single-question scale must render as text, never a chart")
	}
}

func TestExportMissingSnapshotsRenderMarkers(t *testing.T) {
	canvas := &fakeCanvas{}
	e := newTestExporter(canvas, &stubRasterizer{})

	tmpl := &model.Template{Blocks: []model.Block{
		{ID: "p1", Type: model.BlockProfileScore, Title: "Profile"},
		{ID: "m1", Type: model.BlockMatch, Title: "Recommendations"},
	}}

	e.Export(context.Background(), tmpl, nil)

	var lines []string
	for _, pt := range canvas.texts {
		if !pt.title {
			lines = append(lines, pt.text)
		}
	}
	if len(lines) != 2 {
		t.Fatalf("lines = %v, want marker per snapshot block", lines)
	}
	if lines[0] != "Not answered" {
		t.Errorf("profile marker = %q", lines[0])
	}
	if lines[1] != "Analysis not yet performed" {
		t.Errorf("match marker = %q", lines[1])
	}
}

func TestExportWalksEveryBlockInOrder(t *testing.T) {
	canvas := &fakeCanvas{}
	e := newTestExporter(canvas, &stubRasterizer{})

	tmpl := &model.Template{Blocks: []model.Block{
		{ID: "b1", Type: model.BlockFreeText, Title: "First"},
		{ID: "b2", Type: model.BlockType("LEGACY"), Title: "Second"},
		{ID: "b3", Type: model.BlockFreeText, Title: "Third"},
	}}

	e.Export(context.Background(), tmpl, map[string]*model.Answer{
		"b3": {Text: "done"},
	})

	var titles []string
	for _, pt := range canvas.texts {
		if pt.title {
			titles = append(titles, pt.text)
		}
	}
	want := []string{"First", "Second", "Third"}
	if len(titles) != len(want) {
		t.Fatalf("titles = %v, want %v", titles, want)
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Errorf("title %d = %q, want %q", i, titles[i], want[i])
		}
	}
}
