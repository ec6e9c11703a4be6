package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"praxis/internal/model"
)

// ClientRepo handles MongoDB operations for client records
type ClientRepo interface {
	Create(ctx context.Context, client *model.Client) error
	GetByID(ctx context.Context, id string) (*model.Client, error)
	GetByCounselorID(ctx context.Context, counselorID string) ([]*model.Client, error)
	Update(ctx context.Context, client *model.Client) error
	Delete(ctx context.Context, id string) error
}

type clientRepo struct {
	collection *mongo.Collection
}

// NewClientRepo creates a new client repository
func NewClientRepo(db *mongo.Database) ClientRepo {
	return &clientRepo{
		collection: db.Collection("clients"),
	}
}

func (r *clientRepo) Create(ctx context.Context, client *model.Client) error {
	client.CreatedAt = time.Now()
	client.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, client)
	return err
}

func (r *clientRepo) GetByID(ctx context.Context, id string) (*model.Client, error) {
	var client model.Client
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&client)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepo) GetByCounselorID(ctx context.Context, counselorID string) ([]*model.Client, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"counselorId": counselorID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var clients []*model.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *clientRepo) Update(ctx context.Context, client *model.Client) error {
	client.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": client.ID}, client)
	return err
}

func (r *clientRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
