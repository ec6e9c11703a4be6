package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"praxis/internal/cache"
	"praxis/internal/model"
	"praxis/internal/platform/logger"
	"praxis/internal/repository"
)

var ErrClientNotFound = errors.New("client not found")

// ClientService handles client records and the last-selection preference
type ClientService struct {
	clientRepo repository.ClientRepo
	selection  cache.SelectionCache
	log        *logger.Logger
}

// NewClientService creates a new client service
func NewClientService(clientRepo repository.ClientRepo, selection cache.SelectionCache, log *logger.Logger) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
		selection:  selection,
		log:        log.With("service", "ClientService"),
	}
}

// Create stores a new client record
func (s *ClientService) Create(ctx context.Context, client *model.Client) (string, error) {
	client.ID = uuid.New().String()
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return "", err
	}
	return client.ID, nil
}

// GetByID retrieves a client and records it as the counselor's last selection
func (s *ClientService) GetByID(ctx context.Context, counselorID, id string) (*model.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}
	// preference only; a cache failure never fails the read
	if err := s.selection.SetLastClient(ctx, counselorID, id); err != nil {
		s.log.Warn("failed to record last-selected client", "clientId", id, "error", err)
	}
	return client, nil
}

// GetByCounselorID lists all clients of a counselor
func (s *ClientService) GetByCounselorID(ctx context.Context, counselorID string) ([]*model.Client, error) {
	return s.clientRepo.GetByCounselorID(ctx, counselorID)
}

// Update replaces an existing client record
func (s *ClientService) Update(ctx context.Context, client *model.Client) error {
	existing, err := s.clientRepo.GetByID(ctx, client.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrClientNotFound
	}
	client.CounselorID = existing.CounselorID
	client.CreatedAt = existing.CreatedAt
	return s.clientRepo.Update(ctx, client)
}

// Delete removes a client record
func (s *ClientService) Delete(ctx context.Context, id string) error {
	return s.clientRepo.Delete(ctx, id)
}

// LastSelected returns the counselor's last-selected client id, empty when
// none was recorded
func (s *ClientService) LastSelected(ctx context.Context, counselorID string) (string, error) {
	return s.selection.GetLastClient(ctx, counselorID)
}

// SetLastSelected records the counselor's last-selected client id
func (s *ClientService) SetLastSelected(ctx context.Context, counselorID, clientID string) error {
	return s.selection.SetLastClient(ctx, counselorID, clientID)
}
