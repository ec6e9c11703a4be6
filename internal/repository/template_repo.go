package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"praxis/internal/model"
)

// TemplateRepo handles MongoDB operations for assessment templates
type TemplateRepo interface {
	Create(ctx context.Context, template *model.Template) error
	GetByID(ctx context.Context, id string) (*model.Template, error)
	GetByCounselorID(ctx context.Context, counselorID string) ([]*model.Template, error)
	Update(ctx context.Context, template *model.Template) error
	Delete(ctx context.Context, id string) error
}

type templateRepo struct {
	collection *mongo.Collection
}

// NewTemplateRepo creates a new template repository
func NewTemplateRepo(db *mongo.Database) TemplateRepo {
	return &templateRepo{
		collection: db.Collection("templates"),
	}
}

func (r *templateRepo) Create(ctx context.Context, template *model.Template) error {
	template.CreatedAt = time.Now()
	template.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, template)
	return err
}

func (r *templateRepo) GetByID(ctx context.Context, id string) (*model.Template, error) {
	var template model.Template
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&template)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *templateRepo) GetByCounselorID(ctx context.Context, counselorID string) ([]*model.Template, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"counselorId": counselorID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var templates []*model.Template
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *templateRepo) Update(ctx context.Context, template *model.Template) error {
	template.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": template.ID}, template)
	return err
}

func (r *templateRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
