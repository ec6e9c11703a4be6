// Package export walks a filled template and lays its resolved results into
// a fixed-size multi-page document: text, tables and rasterized charts, with
// cursor-based page-break logic.
package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// Page geometry in millimeters (A4 portrait)
const (
	pageWidth  = 210.0
	pageHeight = 297.0
	pageMargin = 10.0
)

// Canvas is the drawing backend the paginator writes into. It knows nothing
// about page breaks: the paginator owns the cursor and calls AddPage.
type Canvas interface {
	AddPage()
	// Text draws one line at the given position
	Text(x, y float64, text string)
	// Title draws one emphasized line at the given position
	Title(x, y float64, text string)
	// SplitText wraps text to the given width and returns the lines
	SplitText(text string, width float64) []string
	// Image places a PNG at the given position and size
	Image(data []byte, x, y, w, h float64) error
	// TableRow draws one bordered row of cells; a row is atomic and is never
	// split across pages
	TableRow(x, y float64, widths []float64, height float64, cells []string)
}

// PDFCanvas renders onto a gofpdf document
type PDFCanvas struct {
	pdf    *gofpdf.Fpdf
	images int
}

func NewPDFCanvas() *PDFCanvas {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	// the paginator decides page breaks, not the backend
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()
	return &PDFCanvas{pdf: pdf}
}

func (c *PDFCanvas) AddPage() {
	c.pdf.AddPage()
}

func (c *PDFCanvas) Text(x, y float64, text string) {
	c.pdf.SetFont("Helvetica", "", 11)
	c.pdf.Text(x, y, text)
}

func (c *PDFCanvas) Title(x, y float64, text string) {
	c.pdf.SetFont("Helvetica", "B", 13)
	c.pdf.Text(x, y, text)
	c.pdf.SetFont("Helvetica", "", 11)
}

func (c *PDFCanvas) SplitText(text string, width float64) []string {
	if text == "" {
		return nil
	}
	return c.pdf.SplitText(text, width)
}

func (c *PDFCanvas) Image(data []byte, x, y, w, h float64) error {
	c.images++
	name := fmt.Sprintf("chart-%d", c.images)
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	c.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	c.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	return c.pdf.Error()
}

func (c *PDFCanvas) TableRow(x, y float64, widths []float64, height float64, cells []string) {
	c.pdf.SetXY(x, y)
	c.pdf.SetFont("Helvetica", "", 9)
	for i, cell := range cells {
		w := 40.0
		if i < len(widths) {
			w = widths[i]
		}
		c.pdf.CellFormat(w, height, cell, "1", 0, "L", false, 0, "")
	}
	c.pdf.SetFont("Helvetica", "", 11)
}

// Output writes the assembled document
func (c *PDFCanvas) Output(w io.Writer) error {
	return c.pdf.Output(w)
}
