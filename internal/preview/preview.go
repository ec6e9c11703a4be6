// Package preview renders a filled template as an ordered section tree for
// the interactive on-screen view. It is a pure read view over the same
// resolved results the exporter consumes; chartable scale blocks carry their
// per-question points so the client can mount a live chart.
package preview

import (
	"praxis/internal/assessment"
	"praxis/internal/model"
)

// Section is one self-contained preview unit for one block
type Section struct {
	BlockID  string              `json:"blockId"`
	Type     model.BlockType     `json:"type"`
	Title    string              `json:"title"`
	Resolved assessment.Resolved `json:"resolved"`
	// Chart carries the live-chart payload for multi-question scale blocks
	Chart []assessment.ScalePoint `json:"chart,omitempty"`
}

// Build walks the template's blocks in their defined order against one
// answer snapshot. Blocks of an unknown variant still yield a section (the
// resolver's raw dump), never a hole in the assessment.
func Build(t *model.Template, answers map[string]*model.Answer) []Section {
	sections := make([]Section, 0, len(t.Blocks))
	for i := range t.Blocks {
		block := &t.Blocks[i]
		resolved := assessment.Resolve(block, answers[block.ID])

		section := Section{
			BlockID:  block.ID,
			Type:     block.Type,
			Title:    resolved.Title,
			Resolved: resolved,
		}
		if resolved.Scale != nil && resolved.Scale.Chartable {
			section.Chart = resolved.Scale.PerQuestion
		}
		sections = append(sections, section)
	}
	return sections
}
