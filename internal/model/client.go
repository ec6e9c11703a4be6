package model

import "time"

// Client is a practice client record. Only the fields the assessment core
// consumes are modeled here; plain contact CRUD stays thin.
type Client struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	CounselorID string    `json:"counselorId" bson:"counselorId"`
	FirstName   string    `json:"firstName" bson:"firstName"`
	LastName    string    `json:"lastName" bson:"lastName"`
	Email       string    `json:"email,omitempty" bson:"email,omitempty"`
	Phone       string    `json:"phone,omitempty" bson:"phone,omitempty"`
	BirthDate   string    `json:"birthDate,omitempty" bson:"birthDate,omitempty"`
	Notes       string    `json:"notes,omitempty" bson:"notes,omitempty"`

	// Matching-engine inputs
	Contraindications []string `json:"contraindications,omitempty" bson:"contraindications,omitempty"`
	Allergies         []string `json:"allergies,omitempty" bson:"allergies,omitempty"`
	Targets           []string `json:"targets,omitempty" bson:"targets,omitempty"`         // pathologies/emotions to treat
	ProfileTags       []string `json:"profileTags,omitempty" bson:"profileTags,omitempty"` // holistic profile

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// FullName joins first and last name for display and export filenames
func (c *Client) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	default:
		return c.FirstName + " " + c.LastName
	}
}
