package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"praxis/internal/model"
)

// FollowUpRepo handles MongoDB operations for follow-ups. Answer writes are
// merge-only: one block answer at a time, nothing else touched.
type FollowUpRepo interface {
	Create(ctx context.Context, followUp *model.FollowUp) error
	GetByID(ctx context.Context, id string) (*model.FollowUp, error)
	GetByClientID(ctx context.Context, clientID string) ([]*model.FollowUp, error)
	GetByClientAndTemplate(ctx context.Context, clientID, templateID string) (*model.FollowUp, error)
	SetAnswer(ctx context.Context, id, blockID string, answer interface{}) error
	SetStatus(ctx context.Context, id string, status model.FollowUpStatus) error
	Delete(ctx context.Context, id string) error
}

type followUpRepo struct {
	collection *mongo.Collection
}

// NewFollowUpRepo creates a new follow-up repository
func NewFollowUpRepo(db *mongo.Database) FollowUpRepo {
	return &followUpRepo{
		collection: db.Collection("followups"),
	}
}

func (r *followUpRepo) Create(ctx context.Context, followUp *model.FollowUp) error {
	followUp.CreatedAt = time.Now()
	followUp.UpdatedAt = time.Now()
	if followUp.Answers == nil {
		followUp.Answers = map[string]interface{}{}
	}

	_, err := r.collection.InsertOne(ctx, followUp)
	return err
}

func (r *followUpRepo) GetByID(ctx context.Context, id string) (*model.FollowUp, error) {
	var followUp model.FollowUp
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&followUp)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &followUp, nil
}

func (r *followUpRepo) GetByClientID(ctx context.Context, clientID string) ([]*model.FollowUp, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"clientId": clientID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var followUps []*model.FollowUp
	if err := cursor.All(ctx, &followUps); err != nil {
		return nil, err
	}
	return followUps, nil
}

func (r *followUpRepo) GetByClientAndTemplate(ctx context.Context, clientID, templateID string) (*model.FollowUp, error) {
	var followUp model.FollowUp
	err := r.collection.FindOne(ctx, bson.M{"clientId": clientID, "templateId": templateID}).Decode(&followUp)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &followUp, nil
}

func (r *followUpRepo) SetAnswer(ctx context.Context, id, blockID string, answer interface{}) error {
	update := bson.M{
		"$set": bson.M{
			"answers." + blockID: answer,
			"updatedAt":          time.Now(),
		},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

func (r *followUpRepo) SetStatus(ctx context.Context, id string, status model.FollowUpStatus) error {
	update := bson.M{
		"$set": bson.M{
			"status":    status,
			"updatedAt": time.Now(),
		},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

func (r *followUpRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
