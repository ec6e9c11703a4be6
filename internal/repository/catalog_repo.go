package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"praxis/internal/model"
)

// CatalogRepo handles MongoDB operations for the two matching catalogs
// (remedies and programs).
type CatalogRepo interface {
	ListRemedies(ctx context.Context) ([]model.Remedy, error)
	ListPrograms(ctx context.Context) ([]model.Program, error)
	InsertRemedy(ctx context.Context, remedy *model.Remedy) error
	InsertProgram(ctx context.Context, program *model.Program) error
}

type catalogRepo struct {
	remedies *mongo.Collection
	programs *mongo.Collection
}

// NewCatalogRepo creates a new catalog repository
func NewCatalogRepo(db *mongo.Database) CatalogRepo {
	return &catalogRepo{
		remedies: db.Collection("remedies"),
		programs: db.Collection("programs"),
	}
}

func (r *catalogRepo) ListRemedies(ctx context.Context) ([]model.Remedy, error) {
	cursor, err := r.remedies.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var remedies []model.Remedy
	if err := cursor.All(ctx, &remedies); err != nil {
		return nil, err
	}
	return remedies, nil
}

func (r *catalogRepo) ListPrograms(ctx context.Context) ([]model.Program, error) {
	cursor, err := r.programs.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var programs []model.Program
	if err := cursor.All(ctx, &programs); err != nil {
		return nil, err
	}
	return programs, nil
}

func (r *catalogRepo) InsertRemedy(ctx context.Context, remedy *model.Remedy) error {
	remedy.CreatedAt = time.Now()
	_, err := r.remedies.InsertOne(ctx, remedy)
	return err
}

func (r *catalogRepo) InsertProgram(ctx context.Context, program *model.Program) error {
	program.CreatedAt = time.Now()
	_, err := r.programs.InsertOne(ctx, program)
	return err
}
