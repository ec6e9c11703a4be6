package assessment

import (
	"strings"
	"testing"

	"praxis/internal/model"
)

func TestResolveScale(t *testing.T) {
	block := &model.Block{
		ID:    "s1",
		Type:  model.BlockScale,
		Title: "Well-being",
		SubQuestions: []model.SubQuestion{
			{ID: "sq1", Text: "Sleep"},
			{ID: "sq2", Text: "Energy"},
			{ID: "sq3", Text: "Mood"},
		},
	}
	answer := &model.Answer{Ratings: map[string]float64{"sq1": 8, "sq2": 15, "sq3": -2}}

	r := Resolve(block, answer)

	if r.Scale == nil {
		t.Fatal("expected a scale result")
	}
	if !r.Scale.Chartable {
		t.Error("multi-question scale should be chartable")
	}
	want := []float64{8, 10, 0} // out-of-range ratings clamp to 0..10
	for i, p := range r.Scale.PerQuestion {
		if p.Value != want[i] {
			t.Errorf("point %d = %g, want %g", i, p.Value, want[i])
		}
	}
}

func TestResolveScaleMissingAnswer(t *testing.T) {
	block := &model.Block{
		ID:   "s1",
		Type: model.BlockScale,
		SubQuestions: []model.SubQuestion{
			{ID: "sq1", Text: "Sleep"},
			{ID: "sq2", Text: "Energy"},
		},
	}

	r := Resolve(block, nil)

	if r.Scale == nil {
		t.Fatal("expected a scale result even without an answer")
	}
	for i, p := range r.Scale.PerQuestion {
		if p.Value != 0 {
			t.Errorf("point %d = %g, want 0 for missing ratings", i, p.Value)
		}
	}
}

func TestResolveScaleSingleQuestionNotChartable(t *testing.T) {
	block := &model.Block{
		ID:           "s1",
		Type:         model.BlockScale,
		SubQuestions: []model.SubQuestion{{ID: "sq1", Text: "Only"}},
	}

	r := Resolve(block, &model.Answer{Ratings: map[string]float64{"sq1": 5}})

	if r.Scale.Chartable {
		t.Error("single-question scale must not be chartable")
	}
}

func TestResolveFreeText(t *testing.T) {
	block := &model.Block{ID: "f1", Type: model.BlockFreeText, Question: "Why?"}

	r := Resolve(block, &model.Answer{Text: "because"})
	if r.Text != "because" {
		t.Errorf("text = %q, want %q", r.Text, "because")
	}

	r = Resolve(block, nil)
	if r.Text != NotAnswered {
		t.Errorf("missing answer text = %q, want %q", r.Text, NotAnswered)
	}
	if r.Title != "Why?" {
		t.Errorf("untitled free-text block should fall back to question, got %q", r.Title)
	}
}

func TestResolveChoice(t *testing.T) {
	block := &model.Block{
		ID:   "c1",
		Type: model.BlockChoice,
		Questions: []model.BlockQuestion{
			{ID: "q1", Text: "Pick one", Answers: []model.BlockAnswer{
				{ID: "a1", Text: "First", ResultText: "You picked first"},
				{ID: "a2", Text: "Second"},
			}},
			{ID: "q2", Text: "Pick another", Answers: []model.BlockAnswer{
				{ID: "a3", Text: "Third"},
			}},
		},
	}
	answer := &model.Answer{Selections: map[string]string{"q1": "a1"}}

	r := Resolve(block, answer)

	if len(r.Choices) != 2 {
		t.Fatalf("choices = %d, want 2", len(r.Choices))
	}
	if !r.Choices[0].Answered || r.Choices[0].SelectedAnswerText != "First" {
		t.Errorf("q1 = %+v, want answered First", r.Choices[0])
	}
	if r.Choices[0].SelectedResultText != "You picked first" {
		t.Errorf("q1 result text = %q", r.Choices[0].SelectedResultText)
	}
	if r.Choices[1].Answered || r.Choices[1].SelectedAnswerText != NotAnswered {
		t.Errorf("q2 = %+v, want unanswered marker", r.Choices[1])
	}
}

func TestResolveScoredOutcome(t *testing.T) {
	block := scoredBlock()
	answer := &model.Answer{Selections: map[string]string{"q1": "q1a", "q2": "q2b", "q3": "q3a"}}

	r := Resolve(block, answer)

	if !r.HasOutcome {
		t.Fatal("expected an outcome")
	}
	if r.Outcome != "Result X" {
		t.Errorf("outcome = %q, want Result X", r.Outcome)
	}
	if len(r.Choices) != 3 {
		t.Errorf("choices = %d, want per-question breakdown alongside the outcome", len(r.Choices))
	}
}

func TestResolveScoredOutcomeIncomplete(t *testing.T) {
	block := scoredBlock()
	answer := &model.Answer{Selections: map[string]string{"q1": "q1a"}}

	r := Resolve(block, answer)

	if r.HasOutcome {
		t.Error("incomplete questionnaire must not form an outcome")
	}
}

func TestResolveReport(t *testing.T) {
	block := &model.Block{ID: "r1", Type: model.BlockReport, Title: "Findings"}

	r := Resolve(block, nil)
	if r.Report == nil || r.Report.Narrative != NotAnswered {
		t.Errorf("missing report = %+v, want marker narrative", r.Report)
	}

	answer := &model.Answer{Report: &model.ReportAnswer{
		Narrative: "Stable",
		Partners:  []model.ReportPartner{{Name: "Dr. A"}},
	}}
	r = Resolve(block, answer)
	if r.Report.Narrative != "Stable" || len(r.Report.Partners) != 1 {
		t.Errorf("report = %+v", r.Report)
	}
}

func TestResolveSnapshotBlocks(t *testing.T) {
	profileBlock := &model.Block{ID: "p1", Type: model.BlockProfileScore}
	matchBlock := &model.Block{ID: "m1", Type: model.BlockMatch}

	if r := Resolve(profileBlock, nil); r.Profile != nil {
		t.Error("missing profile answer should resolve to nil snapshot")
	}
	if r := Resolve(matchBlock, nil); r.Match != nil {
		t.Error("missing match answer should resolve to nil snapshot")
	}

	snap := &model.ProfileSnapshot{Score: 80, MatchingTraits: []string{"calm"}}
	if r := Resolve(profileBlock, &model.Answer{Profile: snap}); r.Profile != snap {
		t.Error("stored profile snapshot should pass through untouched")
	}
}

func TestResolveUnknownTypeFallsBackToRawDump(t *testing.T) {
	block := &model.Block{ID: "u1", Type: model.BlockType("LEGACY")}

	r := Resolve(block, &model.Answer{Raw: map[string]interface{}{"k": "v"}})
	if !strings.Contains(r.RawDump, "v") {
		t.Errorf("raw dump = %q, want the payload contents", r.RawDump)
	}

	r = Resolve(block, nil)
	if r.RawDump != NotAnswered {
		t.Errorf("raw dump without answer = %q, want marker", r.RawDump)
	}
}
