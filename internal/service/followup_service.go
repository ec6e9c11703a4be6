package service

import (
	"context"
	"errors"
	"math/rand"

	"github.com/google/uuid"

	"praxis/internal/model"
	"praxis/internal/normalize"
	"praxis/internal/preview"
	"praxis/internal/repository"
)

var (
	ErrFollowUpNotFound = errors.New("follow-up not found")
	ErrDeckNotFound     = errors.New("deck not found")
	ErrNotCardDraw      = errors.New("block is not a card-draw block")
)

// Snapshot is one immutable read of a follow-up and its template: the unit
// both the preview and the exporter consume. Answers are normalized once at
// the record-store boundary; a snapshot is never re-read mid-pass.
type Snapshot struct {
	FollowUp *model.FollowUp
	Template *model.Template
	Answers  map[string]*model.Answer
}

// FollowUpService handles follow-up lifecycle and answer writes
type FollowUpService struct {
	followUpRepo repository.FollowUpRepo
	templateRepo repository.TemplateRepo
	clientRepo   repository.ClientRepo
	deckRepo     repository.DeckRepo
}

// NewFollowUpService creates a new follow-up service
func NewFollowUpService(
	followUpRepo repository.FollowUpRepo,
	templateRepo repository.TemplateRepo,
	clientRepo repository.ClientRepo,
	deckRepo repository.DeckRepo,
) *FollowUpService {
	return &FollowUpService{
		followUpRepo: followUpRepo,
		templateRepo: templateRepo,
		clientRepo:   clientRepo,
		deckRepo:     deckRepo,
	}
}

// Create opens the follow-up for one client+template pairing. There is at
// most one: an existing pairing is returned as-is.
func (s *FollowUpService) Create(ctx context.Context, clientID, templateID string) (*model.FollowUp, error) {
	existing, err := s.followUpRepo.GetByClientAndTemplate(ctx, clientID, templateID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}
	template, err := s.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, ErrTemplateNotFound
	}

	followUp := &model.FollowUp{
		ID:           uuid.New().String(),
		ClientID:     client.ID,
		ClientName:   client.FullName(),
		TemplateID:   template.ID,
		TemplateName: template.Name,
		Status:       model.FollowUpPending,
		Answers:      map[string]interface{}{},
	}
	if err := s.followUpRepo.Create(ctx, followUp); err != nil {
		return nil, err
	}
	return followUp, nil
}

// GetByID retrieves a follow-up
func (s *FollowUpService) GetByID(ctx context.Context, id string) (*model.FollowUp, error) {
	followUp, err := s.followUpRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if followUp == nil {
		return nil, ErrFollowUpNotFound
	}
	return followUp, nil
}

// GetByClientID lists a client's follow-ups
func (s *FollowUpService) GetByClientID(ctx context.Context, clientID string) ([]*model.FollowUp, error) {
	return s.followUpRepo.GetByClientID(ctx, clientID)
}

// SetAnswer merges one raw block answer into the follow-up. The payload is
// stored as-is; normalization happens at read time.
func (s *FollowUpService) SetAnswer(ctx context.Context, id, blockID string, answer interface{}) error {
	followUp, err := s.followUpRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if followUp == nil {
		return ErrFollowUpNotFound
	}
	return s.followUpRepo.SetAnswer(ctx, id, blockID, answer)
}

// Complete marks the follow-up as completed
func (s *FollowUpService) Complete(ctx context.Context, id string) error {
	followUp, err := s.followUpRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if followUp == nil {
		return ErrFollowUpNotFound
	}
	return s.followUpRepo.SetStatus(ctx, id, model.FollowUpCompleted)
}

// Delete removes a follow-up
func (s *FollowUpService) Delete(ctx context.Context, id string) error {
	return s.followUpRepo.Delete(ctx, id)
}

// LoadSnapshot fetches the follow-up and its template once and normalizes
// the stored answers
func (s *FollowUpService) LoadSnapshot(ctx context.Context, id string) (*Snapshot, error) {
	followUp, err := s.followUpRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if followUp == nil {
		return nil, ErrFollowUpNotFound
	}
	template, err := s.templateRepo.GetByID(ctx, followUp.TemplateID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, ErrTemplateNotFound
	}
	return &Snapshot{
		FollowUp: followUp,
		Template: template,
		Answers:  normalize.FollowUpAnswers(template, followUp),
	}, nil
}

// Preview builds the on-screen section tree for a follow-up
func (s *FollowUpService) Preview(ctx context.Context, id string) ([]preview.Section, error) {
	snapshot, err := s.LoadSnapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	return preview.Build(snapshot.Template, snapshot.Answers), nil
}

// DrawCards draws one card per deck position into the given card-draw block
// and persists the draw, so preview and export replay it instead of
// re-drawing.
func (s *FollowUpService) DrawCards(ctx context.Context, id, blockID string) ([]model.DrawnCard, error) {
	snapshot, err := s.LoadSnapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	block := snapshot.Template.BlockByID(blockID)
	if block == nil || block.Type != model.BlockCardDraw {
		return nil, ErrNotCardDraw
	}
	deck, err := s.deckRepo.GetByID(ctx, block.DeckID)
	if err != nil {
		return nil, err
	}
	if deck == nil {
		return nil, ErrDeckNotFound
	}

	drawn := drawFromDeck(deck)
	if err := s.followUpRepo.SetAnswer(ctx, id, blockID, drawn); err != nil {
		return nil, err
	}
	return drawn, nil
}

// drawFromDeck deals one shuffled card per position, fewer when the deck is
// smaller than its layout
func drawFromDeck(deck *model.Deck) []model.DrawnCard {
	indexes := rand.Perm(len(deck.Cards))
	n := len(deck.Positions)
	if len(indexes) < n {
		n = len(indexes)
	}
	drawn := make([]model.DrawnCard, 0, n)
	for i := 0; i < n; i++ {
		drawn = append(drawn, model.DrawnCard{
			Position: deck.Positions[i],
			Card:     deck.Cards[indexes[i]],
		})
	}
	return drawn
}
