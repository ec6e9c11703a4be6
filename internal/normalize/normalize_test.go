package normalize

import (
	"testing"

	"praxis/internal/model"
)

func TestAnswerNilRaw(t *testing.T) {
	block := &model.Block{ID: "b1", Type: model.BlockScale}
	if a := Answer(block, nil); a != nil {
		t.Errorf("nil payload = %+v, want nil", a)
	}
}

func TestAnswerScale(t *testing.T) {
	block := &model.Block{ID: "b1", Type: model.BlockScale}
	raw := map[string]interface{}{"sq1": 8.0, "sq2": 3, "sq3": "oops"}

	a := Answer(block, raw)

	if a == nil || a.Ratings == nil {
		t.Fatal("expected ratings")
	}
	if a.Ratings["sq1"] != 8 || a.Ratings["sq2"] != 3 {
		t.Errorf("ratings = %v", a.Ratings)
	}
	if _, ok := a.Ratings["sq3"]; ok {
		t.Error("non-numeric rating should be dropped")
	}
}

func TestAnswerFreeText(t *testing.T) {
	block := &model.Block{ID: "b1", Type: model.BlockFreeText}

	if a := Answer(block, "hello"); a.Text != "hello" {
		t.Errorf("plain string text = %q", a.Text)
	}
	wrapped := map[string]interface{}{"text": "hello"}
	if a := Answer(block, wrapped); a.Text != "hello" {
		t.Errorf("wrapped text = %q", a.Text)
	}
	if a := Answer(block, 42); a.Text != "" {
		t.Errorf("uncoercible text = %q, want empty", a.Text)
	}
}

func TestAnswerSelections(t *testing.T) {
	block := &model.Block{ID: "b1", Type: model.BlockChoice}
	raw := map[string]interface{}{"q1": "a1", "q2": 7}

	a := Answer(block, raw)

	if a.Selections["q1"] != "a1" {
		t.Errorf("selections = %v", a.Selections)
	}
	if _, ok := a.Selections["q2"]; ok {
		t.Error("non-string selection should be dropped")
	}
}

func TestAnswerCards(t *testing.T) {
	block := &model.Block{ID: "b1", Type: model.BlockCardDraw}
	raw := []interface{}{
		map[string]interface{}{
			"position": map[string]interface{}{"number": 1, "meaning": "Where you are"},
			"card":     map[string]interface{}{"name": "The Anchor"},
		},
	}

	a := Answer(block, raw)

	if len(a.Cards) != 1 {
		t.Fatalf("cards = %d, want 1", len(a.Cards))
	}
	if a.Cards[0].Position.Number != 1 || a.Cards[0].Card.Name != "The Anchor" {
		t.Errorf("card = %+v", a.Cards[0])
	}
}

func TestAnswerMalformedStructuredPayload(t *testing.T) {
	block := &model.Block{ID: "b1", Type: model.BlockCardDraw}

	a := Answer(block, "not a card list")

	if a == nil {
		t.Fatal("malformed payload still yields an answer carrying the raw value")
	}
	if a.Cards != nil {
		t.Errorf("cards = %v, want nil for uncoercible payload", a.Cards)
	}
	if a.Raw == nil {
		t.Error("raw payload should be preserved for the fallback dump")
	}
}

func TestAnswerMatchSnapshot(t *testing.T) {
	block := &model.Block{ID: "b1", Type: model.BlockMatch}
	raw := map[string]interface{}{
		"byTarget": []interface{}{
			map[string]interface{}{
				"target": "sleep",
				"items":  []interface{}{map[string]interface{}{"id": "a", "name": "A"}},
			},
		},
	}

	a := Answer(block, raw)

	if a.Match == nil || len(a.Match.ByTarget) != 1 {
		t.Fatalf("match = %+v", a.Match)
	}
	if a.Match.ByTarget[0].Target != "sleep" || len(a.Match.ByTarget[0].Items) != 1 {
		t.Errorf("target group = %+v", a.Match.ByTarget[0])
	}
}

func TestFollowUpAnswersDropsUnknownBlocks(t *testing.T) {
	tmpl := &model.Template{
		Blocks: []model.Block{
			{ID: "known", Type: model.BlockFreeText},
		},
	}
	f := &model.FollowUp{
		Answers: map[string]interface{}{
			"known":   "kept",
			"deleted": "stale answer from a removed block",
		},
	}

	answers := FollowUpAnswers(tmpl, f)

	if len(answers) != 1 {
		t.Fatalf("answers = %d, want 1", len(answers))
	}
	if answers["known"].Text != "kept" {
		t.Errorf("known answer = %+v", answers["known"])
	}
}
