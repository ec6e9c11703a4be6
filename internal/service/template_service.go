package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"praxis/internal/model"
	"praxis/internal/repository"
)

var ErrTemplateNotFound = errors.New("template not found")

// TemplateService handles assessment template CRUD
type TemplateService struct {
	templateRepo repository.TemplateRepo
}

// NewTemplateService creates a new template service
func NewTemplateService(templateRepo repository.TemplateRepo) *TemplateService {
	return &TemplateService{
		templateRepo: templateRepo,
	}
}

// Create stores a new template, assigning ids to the template and to any
// block that arrived without one
func (s *TemplateService) Create(ctx context.Context, template *model.Template) (string, error) {
	template.ID = uuid.New().String()
	for i := range template.Blocks {
		if template.Blocks[i].ID == "" {
			template.Blocks[i].ID = uuid.New().String()
		}
	}
	if err := s.templateRepo.Create(ctx, template); err != nil {
		return "", err
	}
	return template.ID, nil
}

// GetByID retrieves a template by id
func (s *TemplateService) GetByID(ctx context.Context, id string) (*model.Template, error) {
	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, ErrTemplateNotFound
	}
	return template, nil
}

// GetByCounselorID retrieves all templates owned by a counselor
func (s *TemplateService) GetByCounselorID(ctx context.Context, counselorID string) ([]*model.Template, error) {
	return s.templateRepo.GetByCounselorID(ctx, counselorID)
}

// Update replaces an existing template
func (s *TemplateService) Update(ctx context.Context, template *model.Template) error {
	existing, err := s.templateRepo.GetByID(ctx, template.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrTemplateNotFound
	}
	for i := range template.Blocks {
		if template.Blocks[i].ID == "" {
			template.Blocks[i].ID = uuid.New().String()
		}
	}
	template.CounselorID = existing.CounselorID
	template.CreatedAt = existing.CreatedAt
	return s.templateRepo.Update(ctx, template)
}

// Delete removes a template
func (s *TemplateService) Delete(ctx context.Context, id string) error {
	return s.templateRepo.Delete(ctx, id)
}
