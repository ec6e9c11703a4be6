package service

import (
	"context"
	"errors"
	"time"

	"praxis/internal/cache"
	"praxis/internal/matching"
	"praxis/internal/model"
	"praxis/internal/repository"
)

var ErrNoMatchBlock = errors.New("template has no match block")

// MatchingService orchestrates matching-engine runs. Running is pure and
// repeatable; persisting a run into a follow-up answer is the distinct,
// explicit save step.
type MatchingService struct {
	clientRepo   repository.ClientRepo
	catalogRepo  repository.CatalogRepo
	followUpRepo repository.FollowUpRepo
	templateRepo repository.TemplateRepo
	exclusions   cache.ExclusionCache
}

// NewMatchingService creates a new matching service
func NewMatchingService(
	clientRepo repository.ClientRepo,
	catalogRepo repository.CatalogRepo,
	followUpRepo repository.FollowUpRepo,
	templateRepo repository.TemplateRepo,
	exclusions cache.ExclusionCache,
) *MatchingService {
	return &MatchingService{
		clientRepo:   clientRepo,
		catalogRepo:  catalogRepo,
		followUpRepo: followUpRepo,
		templateRepo: templateRepo,
		exclusions:   exclusions,
	}
}

// Run executes the engine for a client against the current catalogs. The
// exclusion set is the union of the client's contraindications, allergies
// and the counselor's session-scoped temporary exclusions.
func (s *MatchingService) Run(ctx context.Context, counselorID, clientID string) (*model.MatchReport, error) {
	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	temporary, err := s.exclusions.Get(ctx, counselorID, clientID)
	if err != nil {
		return nil, err
	}
	remedies, err := s.catalogRepo.ListRemedies(ctx)
	if err != nil {
		return nil, err
	}
	programs, err := s.catalogRepo.ListPrograms(ctx)
	if err != nil {
		return nil, err
	}

	input := matching.Input{
		Exclusions:  unionTags(client.Contraindications, client.Allergies, temporary),
		Targets:     client.Targets,
		ProfileTags: client.ProfileTags,
	}
	report := matching.Run(input, remedies, programs, time.Now())
	return &report, nil
}

// SetTemporaryExclusions replaces the session-scoped exclusion list
func (s *MatchingService) SetTemporaryExclusions(ctx context.Context, counselorID, clientID string, tags []string) error {
	return s.exclusions.Set(ctx, counselorID, clientID, tags)
}

// Save runs the engine and persists the report as the answer of the
// follow-up's match block, making it the snapshot preview and export
// display.
func (s *MatchingService) Save(ctx context.Context, counselorID, followUpID string) (*model.MatchReport, error) {
	followUp, err := s.followUpRepo.GetByID(ctx, followUpID)
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

	blockID := ""
	for _, b := range template.Blocks {
		if b.Type == model.BlockMatch {
			blockID = b.ID
			break
		}
	}
	if blockID == "" {
		return nil, ErrNoMatchBlock
	}

	report, err := s.Run(ctx, counselorID, followUp.ClientID)
	if err != nil {
		return nil, err
	}
	if err := s.followUpRepo.SetAnswer(ctx, followUpID, blockID, report); err != nil {
		return nil, err
	}
	return report, nil
}

func unionTags(lists ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, list := range lists {
		for _, tag := range list {
			if tag == "" {
				continue
			}
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	return out
}
