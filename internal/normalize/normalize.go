// Package normalize maps arbitrary stored answer payloads into the typed
// Answer shapes the assessment core operates on. Stored follow-up answers are
// written without schema validation, so everything here is shape-tolerant:
// a payload that cannot be coerced normalizes to an empty section, never an
// error.
package normalize

import (
	"encoding/json"

	"praxis/internal/model"
)

// Answer normalizes one raw stored payload for the given block. A nil raw
// payload yields nil ("not answered").
func Answer(block *model.Block, raw interface{}) *model.Answer {
	if raw == nil {
		return nil
	}
	a := &model.Answer{Raw: raw}

	switch block.Type {
	case model.BlockScale:
		a.Ratings = floatMap(raw)
	case model.BlockFreeText:
		a.Text = text(raw)
	case model.BlockReport:
		var rep model.ReportAnswer
		if coerce(raw, &rep) {
			a.Report = &rep
		}
	case model.BlockScoredOutcome, model.BlockChoice:
		a.Selections = stringMap(raw)
	case model.BlockCardDraw:
		var cards []model.DrawnCard
		if coerce(raw, &cards) {
			a.Cards = cards
		}
	case model.BlockProfileScore:
		var snap model.ProfileSnapshot
		if coerce(raw, &snap) {
			a.Profile = &snap
		}
	case model.BlockMatch:
		var rep model.MatchReport
		if coerce(raw, &rep) {
			a.Match = &rep
		}
	}
	return a
}

// FollowUpAnswers normalizes every stored answer that references a block of
// the template. Answers keyed by unknown block ids are dropped.
func FollowUpAnswers(t *model.Template, f *model.FollowUp) map[string]*model.Answer {
	out := make(map[string]*model.Answer, len(f.Answers))
	for id, raw := range f.Answers {
		block := t.BlockByID(id)
		if block == nil {
			continue
		}
		if a := Answer(block, raw); a != nil {
			out[id] = a
		}
	}
	return out
}

// coerce round-trips a loose payload through JSON into a typed struct
func coerce(raw interface{}, dst interface{}) bool {
	data, err := json.Marshal(raw)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dst) == nil
}

func text(raw interface{}) string {
	switch v := raw.(type) {
	case string:
		return v
	case map[string]interface{}:
		if s, ok := v["text"].(string); ok {
			return s
		}
	}
	return ""
}

func floatMap(raw interface{}) map[string]float64 {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		if f, ok := toFloat(v); ok {
			out[k] = f
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func stringMap(raw interface{}) map[string]string {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
