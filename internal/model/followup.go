package model

import "time"

// FollowUpStatus tracks completion of one client+template pairing
type FollowUpStatus string

const (
	FollowUpPending   FollowUpStatus = "pending"
	FollowUpCompleted FollowUpStatus = "completed"
)

// FollowUp is one client's filling of one template. Answers are stored raw,
// keyed by block id, and only normalized into typed shapes at read time.
// Writers never validate against the template schema.
type FollowUp struct {
	ID           string                 `json:"id" bson:"_id,omitempty"`
	ClientID     string                 `json:"clientId" bson:"clientId"`
	ClientName   string                 `json:"clientName" bson:"clientName"`
	TemplateID   string                 `json:"templateId" bson:"templateId"`
	TemplateName string                 `json:"templateName" bson:"templateName"`
	Status       FollowUpStatus         `json:"status" bson:"status"`
	Answers      map[string]interface{} `json:"answers" bson:"answers"`
	CreatedAt    time.Time              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt" bson:"updatedAt"`
}

// ReportPartner is one referral partner attached to a REPORT answer
type ReportPartner struct {
	Name        string   `json:"name" bson:"name"`
	Email       string   `json:"email,omitempty" bson:"email,omitempty"`
	Phone       string   `json:"phone,omitempty" bson:"phone,omitempty"`
	Specialties []string `json:"specialties,omitempty" bson:"specialties,omitempty"`
}

// ReportAnswer is the structured payload of a REPORT block
type ReportAnswer struct {
	Narrative string          `json:"narrative" bson:"narrative"`
	Partners  []ReportPartner `json:"partners,omitempty" bson:"partners,omitempty"`
}

// DrawnCard is one card placed on a named deck position
type DrawnCard struct {
	Position DeckPosition `json:"position" bson:"position"`
	Card     Card         `json:"card" bson:"card"`
}

// ProfileSnapshot is the stored result of a profile-match computation
type ProfileSnapshot struct {
	Score          float64  `json:"score" bson:"score"`
	MatchingTraits []string `json:"matchingTraits" bson:"matchingTraits"`
	MissingTraits  []string `json:"missingTraits" bson:"missingTraits"`
}

// Answer is the typed view of one stored block answer, produced by the
// normalize package. Only the section matching the owning block's variant is
// populated; a nil *Answer means the block was never answered.
type Answer struct {
	Ratings    map[string]float64 `json:"ratings,omitempty"`    // SCALE: sub-question id -> 0..10
	Text       string             `json:"text,omitempty"`       // FREE_TEXT
	Report     *ReportAnswer      `json:"report,omitempty"`     // REPORT
	Selections map[string]string  `json:"selections,omitempty"` // SCORED_OUTCOME, CHOICE: question id -> answer id
	Cards      []DrawnCard        `json:"cards,omitempty"`      // CARD_DRAW
	Profile    *ProfileSnapshot   `json:"profile,omitempty"`    // PROFILE_SCORE
	Match      *MatchReport       `json:"match,omitempty"`      // MATCH

	Raw interface{} `json:"raw,omitempty"` // original payload, kept for the fallback dump
}
