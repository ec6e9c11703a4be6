package export

import (
	"context"
	"fmt"
	"strings"

	"praxis/internal/assessment"
	"praxis/internal/model"
	"praxis/internal/platform/logger"
	"praxis/internal/render"
)

// Layout metrics in millimeters
const (
	lineHeight  = 6.0
	titleHeight = 9.0
	rowHeight   = 8.0
	blockMargin = 8.0
	chartWidth  = 110.0
	chartHeight = 110.0
)

// Exporter lays the resolved results of one follow-up into pages. It keeps a
// running vertical cursor and page index; every atomic write (a line, a table
// row, an image) is page-break-checked before being placed so nothing is ever
// split across two pages. Per-block failures degrade to text and the walk
// continues; a partially exported document is still a document.
type Exporter struct {
	canvas Canvas
	bridge *render.Bridge
	log    *logger.Logger

	y    float64
	page int
}

func NewExporter(canvas Canvas, bridge *render.Bridge, log *logger.Logger) *Exporter {
	return &Exporter{canvas: canvas, bridge: bridge, log: log, y: pageMargin, page: 1}
}

// Export walks the template's blocks in order against one immutable answer
// snapshot.
func (e *Exporter) Export(ctx context.Context, t *model.Template, answers map[string]*model.Answer) {
	e.y = pageMargin
	e.page = 1
	for i := range t.Blocks {
		block := &t.Blocks[i]
		resolved := assessment.Resolve(block, answers[block.ID])
		e.renderBlock(ctx, block, resolved)
		e.y += blockMargin
	}
}

func (e *Exporter) renderBlock(ctx context.Context, block *model.Block, resolved assessment.Resolved) {
	defer func() {
		if r := recover(); r != nil {
			if e.log != nil {
				e.log.Warn("block rendering failed, degrading to text", "blockId", block.ID, "panic", r)
			}
			e.writeWrapped(fmt.Sprintf("%v", resolved))
		}
	}()

	e.writeTitle(resolved.Title)

	switch resolved.Type {
	case model.BlockScale:
		e.renderScale(ctx, block, resolved.Scale)
	case model.BlockFreeText:
		e.writeWrapped(resolved.Text)
	case model.BlockReport:
		e.renderReport(resolved.Report)
	case model.BlockScoredOutcome, model.BlockChoice:
		e.renderChoices(resolved)
	case model.BlockCardDraw:
		e.renderCards(resolved.Cards)
	case model.BlockProfileScore:
		if resolved.Profile == nil {
			e.writeLine(assessment.NotAnswered)
			return
		}
		e.renderProfile(resolved.Profile)
	case model.BlockMatch:
		if resolved.Match == nil {
			e.writeLine("Analysis not yet performed")
			return
		}
		e.renderMatch(resolved.Match)
	default:
		e.writeWrapped(resolved.RawDump)
	}
}

func (e *Exporter) renderScale(ctx context.Context, block *model.Block, scale *assessment.ScaleResult) {
	if scale.Chartable && e.bridge != nil {
		e.bridge.Register(block.ID, &render.Chart{Title: block.Title, Points: scale.PerQuestion})
		data, err := e.bridge.Capture(ctx, block.ID)
		if err == nil {
			e.placeImage(data)
			return
		}
		if e.log != nil {
			e.log.Warn("chart capture failed, using text fallback", "blockId", block.ID, "error", err)
		}
	}
	for _, p := range scale.PerQuestion {
		e.writeLine(fmt.Sprintf("%s: %g/10", p.Text, p.Value))
	}
}

func (e *Exporter) renderReport(report *model.ReportAnswer) {
	e.writeWrapped(report.Narrative)
	if len(report.Partners) == 0 {
		return
	}
	// break before starting the table, then per row
	e.ensure(rowHeight)
	widths := []float64{55, 55, 40, 40}
	for _, p := range report.Partners {
		e.ensure(rowHeight)
		e.canvas.TableRow(pageMargin, e.y, widths, rowHeight, []string{
			p.Name, p.Email, p.Phone, joinComma(p.Specialties),
		})
		e.y += rowHeight
	}
}

func (e *Exporter) renderChoices(resolved assessment.Resolved) {
	for _, item := range resolved.Choices {
		e.writeWrapped(item.QuestionText)
		e.writeLine("> " + item.SelectedAnswerText)
		if item.SelectedResultText != "" {
			e.writeWrapped(item.SelectedResultText)
		}
	}
	if resolved.HasOutcome {
		e.writeWrapped(resolved.Outcome)
	}
}

func (e *Exporter) renderCards(cards []model.DrawnCard) {
	for _, c := range cards {
		e.writeLine(fmt.Sprintf("%d. %s: %s", c.Position.Number, c.Position.Meaning, c.Card.Name))
	}
}

// renderProfile writes each non-empty list; empty lists are omitted, never
// rendered as "none"
func (e *Exporter) renderProfile(p *model.ProfileSnapshot) {
	e.writeLine(fmt.Sprintf("Match: %.0f%%", p.Score))
	if len(p.MatchingTraits) > 0 {
		e.writeLine("Matching traits: " + joinComma(p.MatchingTraits))
	}
	if len(p.MissingTraits) > 0 {
		e.writeLine("Missing traits: " + joinComma(p.MissingTraits))
	}
}

func (e *Exporter) renderMatch(report *model.MatchReport) {
	for _, group := range report.ByTarget {
		if group.Empty() {
			continue
		}
		e.writeLine(group.Target + ":")
		e.writeRefs("  ", group.MatchGroup)
	}
	if !report.ByProfile.Empty() {
		e.writeLine("Profile:")
		e.writeRefs("  ", report.ByProfile)
	}
	if !report.PerfectMatch.Empty() {
		e.writeLine("Perfect match:")
		e.writeRefs("  ", report.PerfectMatch)
	}
}

func (e *Exporter) writeRefs(indent string, group model.MatchGroup) {
	for _, ref := range group.Items {
		e.writeLine(indent + ref.Name)
	}
	for _, ref := range group.Programs {
		e.writeLine(indent + ref.Name + " (program)")
	}
}

// ensure starts a new page when the next write of height h would cross the
// printable bottom
func (e *Exporter) ensure(h float64) {
	if e.y+h > pageHeight-pageMargin {
		e.canvas.AddPage()
		e.page++
		e.y = pageMargin
	}
}

func (e *Exporter) writeTitle(text string) {
	e.ensure(titleHeight)
	e.y += titleHeight
	e.canvas.Title(pageMargin, e.y, text)
}

func (e *Exporter) writeLine(text string) {
	e.ensure(lineHeight)
	e.y += lineHeight
	e.canvas.Text(pageMargin, e.y, text)
}

func (e *Exporter) writeWrapped(text string) {
	if text == "" {
		return
	}
	for _, line := range e.canvas.SplitText(text, pageWidth-2*pageMargin) {
		e.writeLine(line)
	}
}

func (e *Exporter) placeImage(data []byte) {
	e.ensure(chartHeight)
	if err := e.canvas.Image(data, pageMargin, e.y, chartWidth, chartHeight); err == nil {
		e.y += chartHeight
	}
}

func joinComma(values []string) string {
	return strings.Join(values, ", ")
}
