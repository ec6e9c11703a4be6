package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"praxis/internal/model"
)

// DeckRepo handles MongoDB operations for card decks
type DeckRepo interface {
	List(ctx context.Context) ([]*model.Deck, error)
	GetByID(ctx context.Context, id string) (*model.Deck, error)
	Insert(ctx context.Context, deck *model.Deck) error
}

type deckRepo struct {
	collection *mongo.Collection
}

// NewDeckRepo creates a new deck repository
func NewDeckRepo(db *mongo.Database) DeckRepo {
	return &deckRepo{
		collection: db.Collection("decks"),
	}
}

func (r *deckRepo) List(ctx context.Context) ([]*model.Deck, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var decks []*model.Deck
	if err := cursor.All(ctx, &decks); err != nil {
		return nil, err
	}
	return decks, nil
}

func (r *deckRepo) GetByID(ctx context.Context, id string) (*model.Deck, error) {
	var deck model.Deck
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&deck)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &deck, nil
}

func (r *deckRepo) Insert(ctx context.Context, deck *model.Deck) error {
	deck.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, deck)
	return err
}
