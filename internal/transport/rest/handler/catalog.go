package handler

import (
	"net/http"

	"praxis/internal/model"
	"praxis/internal/repository"
)

// CatalogHandler handles read access to the matching catalogs and card decks
type CatalogHandler struct {
	catalogRepo repository.CatalogRepo
	deckRepo    repository.DeckRepo
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogRepo repository.CatalogRepo, deckRepo repository.DeckRepo) *CatalogHandler {
	return &CatalogHandler{catalogRepo: catalogRepo, deckRepo: deckRepo}
}

// ListRemedies handles GET /v1/catalog/remedies
func (h *CatalogHandler) ListRemedies(w http.ResponseWriter, r *http.Request) {
	remedies, err := h.catalogRepo.ListRemedies(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if remedies == nil {
		remedies = []model.Remedy{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"remedies": remedies})
}

// ListPrograms handles GET /v1/catalog/programs
func (h *CatalogHandler) ListPrograms(w http.ResponseWriter, r *http.Request) {
	programs, err := h.catalogRepo.ListPrograms(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if programs == nil {
		programs = []model.Program{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"programs": programs})
}

// ListDecks handles GET /v1/decks
func (h *CatalogHandler) ListDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := h.deckRepo.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if decks == nil {
		decks = []*model.Deck{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"decks": decks})
}
