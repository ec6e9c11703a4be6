package model

import "time"

// BlockType discriminates the closed set of assessment block variants
type BlockType string

const (
	BlockScale         BlockType = "SCALE"          // sub-questions rated 0-10
	BlockFreeText      BlockType = "FREE_TEXT"      // single open question
	BlockReport        BlockType = "REPORT"         // narrative + referral partners
	BlockScoredOutcome BlockType = "SCORED_OUTCOME" // questionnaire resolved by plurality vote
	BlockChoice        BlockType = "CHOICE"         // independent multiple-choice questions
	BlockCardDraw      BlockType = "CARD_DRAW"      // cards drawn from a deck into positions
	BlockProfileScore  BlockType = "PROFILE_SCORE"  // stored profile-match snapshot
	BlockMatch         BlockType = "MATCH"          // stored matching-engine snapshot
)

// SubQuestion is one rated item of a SCALE block
type SubQuestion struct {
	ID   string `json:"id" bson:"id"`
	Text string `json:"text" bson:"text"`
}

// BlockAnswer is one selectable answer of a SCORED_OUTCOME or CHOICE question.
// Value participates in the plurality vote (SCORED_OUTCOME); ResultText is the
// optional per-answer explanation (CHOICE).
type BlockAnswer struct {
	ID         string `json:"id" bson:"id"`
	Text       string `json:"text" bson:"text"`
	Value      string `json:"value,omitempty" bson:"value,omitempty"`
	ResultText string `json:"resultText,omitempty" bson:"resultText,omitempty"`
}

// BlockQuestion is one question of a SCORED_OUTCOME or CHOICE block
type BlockQuestion struct {
	ID      string        `json:"id" bson:"id"`
	Text    string        `json:"text" bson:"text"`
	Answers []BlockAnswer `json:"answers" bson:"answers"`
}

// Outcome maps a vote value to its terminal result text (SCORED_OUTCOME)
type Outcome struct {
	Value string `json:"value" bson:"value"`
	Text  string `json:"text" bson:"text"`
}

// Block is a tagged union over BlockType: only the fields of the active
// variant are populated, the rest stay at their zero value.
type Block struct {
	ID    string    `json:"id" bson:"id"`
	Type  BlockType `json:"type" bson:"type"`
	Title string    `json:"title,omitempty" bson:"title,omitempty"`

	SubQuestions []SubQuestion   `json:"subQuestions,omitempty" bson:"subQuestions,omitempty"` // SCALE
	Question     string          `json:"question,omitempty" bson:"question,omitempty"`         // FREE_TEXT
	Questions    []BlockQuestion `json:"questions,omitempty" bson:"questions,omitempty"`       // SCORED_OUTCOME, CHOICE
	Outcomes     []Outcome       `json:"outcomes,omitempty" bson:"outcomes,omitempty"`         // SCORED_OUTCOME
	DeckID       string          `json:"deckId,omitempty" bson:"deckId,omitempty"`             // CARD_DRAW
}

// Chartable reports whether a SCALE block resolves to a radar chart.
// Single-question scale blocks resolve to a scalar display, never a chart.
func (b *Block) Chartable() bool {
	return b.Type == BlockScale && len(b.SubQuestions) > 1
}

// Template is an ordered, named sequence of blocks owned by a counselor
type Template struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	CounselorID string    `json:"counselorId" bson:"counselorId"`
	Name        string    `json:"name" bson:"name"`
	Blocks      []Block   `json:"blocks" bson:"blocks"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// BlockByID returns the block carrying the given id, or nil
func (t *Template) BlockByID(id string) *Block {
	for i := range t.Blocks {
		if t.Blocks[i].ID == id {
			return &t.Blocks[i]
		}
	}
	return nil
}
