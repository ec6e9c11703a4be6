package assessment

import "praxis/internal/model"

// NotAnswered is the display sentinel for missing data. Missing answers are
// never nil-propagated or treated as errors.
const NotAnswered = "Not answered"

// ScalePoint is one resolved sub-question rating
type ScalePoint struct {
	Text  string  `json:"text"`
	Value float64 `json:"value"` // clamped to 0..10, missing defaults to 0
}

// ScaleResult is the resolved form of a SCALE block
type ScaleResult struct {
	PerQuestion []ScalePoint `json:"perQuestion"`
	Chartable   bool         `json:"chartable"`
}

// ChoiceItem is one resolved question of a SCORED_OUTCOME or CHOICE block
type ChoiceItem struct {
	QuestionText       string `json:"questionText"`
	SelectedAnswerText string `json:"selectedAnswerText"`
	SelectedResultText string `json:"selectedResultText,omitempty"`
	Answered           bool   `json:"answered"`
}

// Resolved is the normalized display value of one block. Exactly one section
// matching the block variant is populated; unknown variants fall back to a
// raw textual dump so one malformed block never hides the rest.
type Resolved struct {
	BlockID string          `json:"blockId"`
	Type    model.BlockType `json:"type"`
	Title   string          `json:"title,omitempty"`

	Scale      *ScaleResult           `json:"scale,omitempty"`
	Text       string                 `json:"text,omitempty"`
	Report     *model.ReportAnswer    `json:"report,omitempty"`
	Choices    []ChoiceItem           `json:"choices,omitempty"`
	Outcome    string                 `json:"outcome,omitempty"`
	HasOutcome bool                   `json:"hasOutcome,omitempty"`
	Cards      []model.DrawnCard      `json:"cards,omitempty"`
	Profile    *model.ProfileSnapshot `json:"profile,omitempty"`
	Match      *model.MatchReport     `json:"match,omitempty"`
	RawDump    string                 `json:"rawDump,omitempty"`
}
