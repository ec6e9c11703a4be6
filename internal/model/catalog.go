package model

import "time"

// Remedy is one inventory catalog item (product, essence, supplement...)
// annotated with the tags the matching engine filters on.
type Remedy struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Tags        []string  `json:"tags" bson:"tags"`
	Price       float64   `json:"price,omitempty" bson:"price,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

// Program is one accompaniment/training program catalog item
type Program struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Tags        []string  `json:"tags" bson:"tags"`
	Sessions    int       `json:"sessions,omitempty" bson:"sessions,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

// Card is one drawable card of a deck
type Card struct {
	Name        string `json:"name" bson:"name"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
}

// DeckPosition is one named layout slot a drawn card lands on
type DeckPosition struct {
	Number  int    `json:"number" bson:"number"`
	Meaning string `json:"meaning" bson:"meaning"`
}

// Deck is a named card deck with its layout positions
type Deck struct {
	ID        string         `json:"id" bson:"_id,omitempty"`
	Name      string         `json:"name" bson:"name"`
	Cards     []Card         `json:"cards" bson:"cards"`
	Positions []DeckPosition `json:"positions" bson:"positions"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}
