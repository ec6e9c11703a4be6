package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"praxis/internal/service"
	"praxis/internal/transport/rest/middleware"
)

// MatchingHandler handles matching-engine endpoints
type MatchingHandler struct {
	matchingSvc *service.MatchingService
}

// NewMatchingHandler creates a new matching handler
func NewMatchingHandler(matchingSvc *service.MatchingService) *MatchingHandler {
	return &MatchingHandler{matchingSvc: matchingSvc}
}

// Run handles POST /v1/clients/{clientId}/matching/run. A pure run, not
// persisted anywhere.
func (h *MatchingHandler) Run(w http.ResponseWriter, r *http.Request) {
	counselorID := middleware.GetCounselorID(r.Context())
	clientID := mux.Vars(r)["clientId"]

	report, err := h.matchingSvc.Run(r.Context(), counselorID, clientID)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// SetExclusions handles PUT /v1/clients/{clientId}/matching/exclusions,
// the session-scoped temporary exclusion list.
func (h *MatchingHandler) SetExclusions(w http.ResponseWriter, r *http.Request) {
	counselorID := middleware.GetCounselorID(r.Context())
	clientID := mux.Vars(r)["clientId"]

	var req struct {
		Tags []string `json:"tags"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.matchingSvc.SetTemporaryExclusions(r.Context(), counselorID, clientID, req.Tags); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"tags": req.Tags})
}

// Save handles POST /v1/followups/{followUpId}/matching/save. Runs the
// engine and persists the report as the match block's answer snapshot.
func (h *MatchingHandler) Save(w http.ResponseWriter, r *http.Request) {
	counselorID := middleware.GetCounselorID(r.Context())
	followUpID := mux.Vars(r)["followUpId"]

	report, err := h.matchingSvc.Save(r.Context(), counselorID, followUpID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFollowUpNotFound),
			errors.Is(err, service.ErrTemplateNotFound),
			errors.Is(err, service.ErrClientNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNoMatchBlock):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, report)
}
