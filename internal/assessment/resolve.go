// Package assessment holds the pure derivation functions of the block
// catalog: one resolver per block variant plus the plurality scoring rule.
// Nothing here performs I/O or logging; both the preview and the exporter
// consume the same resolved values.
package assessment

import (
	"fmt"

	"praxis/internal/model"
)

// Resolve maps a block definition and its (possibly absent or malformed)
// answer to a display-ready result. It never fails: missing data resolves to
// explicit markers and unknown block variants to a raw dump.
func Resolve(block *model.Block, answer *model.Answer) Resolved {
	r := Resolved{BlockID: block.ID, Type: block.Type, Title: blockTitle(block)}

	switch block.Type {
	case model.BlockScale:
		r.Scale = resolveScale(block, answer)
	case model.BlockFreeText:
		r.Text = NotAnswered
		if answer != nil && answer.Text != "" {
			r.Text = answer.Text
		}
	case model.BlockReport:
		if answer != nil && answer.Report != nil {
			r.Report = answer.Report
		} else {
			r.Report = &model.ReportAnswer{Narrative: NotAnswered}
		}
	case model.BlockScoredOutcome:
		r.Choices = resolveChoices(block, answer)
		if value, ok := ScoreOutcome(block, selections(answer)); ok {
			if text, found := outcomeText(block, value); found {
				r.Outcome = text
				r.HasOutcome = true
			}
		}
	case model.BlockChoice:
		r.Choices = resolveChoices(block, answer)
	case model.BlockCardDraw:
		if answer != nil {
			r.Cards = answer.Cards
		}
	case model.BlockProfileScore:
		if answer != nil {
			r.Profile = answer.Profile
		}
	case model.BlockMatch:
		if answer != nil {
			r.Match = answer.Match
		}
	default:
		r.RawDump = rawDump(answer)
	}
	return r
}

func resolveScale(block *model.Block, answer *model.Answer) *ScaleResult {
	res := &ScaleResult{
		PerQuestion: make([]ScalePoint, 0, len(block.SubQuestions)),
		Chartable:   block.Chartable(),
	}
	for _, sq := range block.SubQuestions {
		var v float64
		if answer != nil {
			v = clamp(answer.Ratings[sq.ID], 0, 10)
		}
		res.PerQuestion = append(res.PerQuestion, ScalePoint{Text: sq.Text, Value: v})
	}
	return res
}

func resolveChoices(block *model.Block, answer *model.Answer) []ChoiceItem {
	items := make([]ChoiceItem, 0, len(block.Questions))
	for _, q := range block.Questions {
		item := ChoiceItem{QuestionText: q.Text, SelectedAnswerText: NotAnswered}
		if answer != nil {
			if chosen, ok := findAnswer(q, answer.Selections[q.ID]); ok {
				item.SelectedAnswerText = chosen.Text
				item.SelectedResultText = chosen.ResultText
				item.Answered = true
			}
		}
		items = append(items, item)
	}
	return items
}

func findAnswer(q model.BlockQuestion, answerID string) (model.BlockAnswer, bool) {
	if answerID == "" {
		return model.BlockAnswer{}, false
	}
	for _, a := range q.Answers {
		if a.ID == answerID {
			return a, true
		}
	}
	return model.BlockAnswer{}, false
}

func outcomeText(block *model.Block, value string) (string, bool) {
	for _, o := range block.Outcomes {
		if o.Value == value {
			return o.Text, true
		}
	}
	return "", false
}

func selections(answer *model.Answer) map[string]string {
	if answer == nil {
		return nil
	}
	return answer.Selections
}

func blockTitle(block *model.Block) string {
	if block.Title != "" {
		return block.Title
	}
	if block.Type == model.BlockFreeText {
		return block.Question
	}
	return string(block.Type)
}

func rawDump(answer *model.Answer) string {
	if answer == nil || answer.Raw == nil {
		return NotAnswered
	}
	return fmt.Sprintf("%v", answer.Raw)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
