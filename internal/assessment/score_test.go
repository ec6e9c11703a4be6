package assessment

import (
	"testing"

	"praxis/internal/model"
)

func scoredBlock() *model.Block {
	return &model.Block{
		ID:   "b1",
		Type: model.BlockScoredOutcome,
		Questions: []model.BlockQuestion{
			{ID: "q1", Text: "Q1", Answers: []model.BlockAnswer{
				{ID: "q1a", Text: "A", Value: "x"},
				{ID: "q1b", Text: "B", Value: "y"},
			}},
			{ID: "q2", Text: "Q2", Answers: []model.BlockAnswer{
				{ID: "q2a", Text: "A", Value: "x"},
				{ID: "q2b", Text: "B", Value: "y"},
			}},
			{ID: "q3", Text: "Q3", Answers: []model.BlockAnswer{
				{ID: "q3a", Text: "A", Value: "x"},
				{ID: "q3b", Text: "B", Value: "y"},
			}},
		},
		Outcomes: []model.Outcome{
			{Value: "x", Text: "Result X"},
			{Value: "y", Text: "Result Y"},
		},
	}
}

func TestScoreOutcomePlurality(t *testing.T) {
	block := scoredBlock()
	selections := map[string]string{"q1": "q1a", "q2": "q2b", "q3": "q3a"}

	value, ok := ScoreOutcome(block, selections)
	if !ok {
		t.Fatal("expected an outcome")
	}
	if value != "x" {
		t.Errorf("winner = %q, want x", value)
	}
}

func TestScoreOutcomeIncompleteVoidsBlock(t *testing.T) {
	block := scoredBlock()

	cases := map[string]map[string]string{
		"no answers":        {},
		"one missing":       {"q1": "q1a", "q2": "q2a"},
		"unknown answer id": {"q1": "q1a", "q2": "q2a", "q3": "nope"},
		"nil selections":    nil,
	}
	for name, selections := range cases {
		if _, ok := ScoreOutcome(block, selections); ok {
			t.Errorf("%s: expected no outcome", name)
		}
	}
}

func TestScoreOutcomeTieBreaksToFirstEncountered(t *testing.T) {
	block := scoredBlock()
	block.Questions = block.Questions[:2]
	// one vote each, y tallied first via q1
	selections := map[string]string{"q1": "q1b", "q2": "q2a"}

	value, ok := ScoreOutcome(block, selections)
	if !ok {
		t.Fatal("expected an outcome")
	}
	if value != "y" {
		t.Errorf("tie winner = %q, want y (first encountered in question order)", value)
	}
}

func TestScoreOutcomeDeterministic(t *testing.T) {
	block := scoredBlock()
	selections := map[string]string{"q1": "q1b", "q2": "q2a", "q3": "q3b"}

	first, ok := ScoreOutcome(block, selections)
	if !ok {
		t.Fatal("expected an outcome")
	}
	for i := 0; i < 50; i++ {
		value, ok := ScoreOutcome(block, selections)
		if !ok || value != first {
			t.Fatalf("run %d: got (%q,%v), want (%q,true)", i, value, ok, first)
		}
	}
}

func TestScoreOutcomeNoQuestions(t *testing.T) {
	block := &model.Block{ID: "empty", Type: model.BlockScoredOutcome}
	if _, ok := ScoreOutcome(block, map[string]string{}); ok {
		t.Error("block without questions should produce no outcome")
	}
}
