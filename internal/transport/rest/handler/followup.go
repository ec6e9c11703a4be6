package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"praxis/internal/model"
	"praxis/internal/service"
)

// FollowUpHandler handles follow-up endpoints: lifecycle, answer writes,
// preview and document export
type FollowUpHandler struct {
	followUpSvc *service.FollowUpService
	exportSvc   *service.ExportService
}

// NewFollowUpHandler creates a new follow-up handler
func NewFollowUpHandler(followUpSvc *service.FollowUpService, exportSvc *service.ExportService) *FollowUpHandler {
	return &FollowUpHandler{followUpSvc: followUpSvc, exportSvc: exportSvc}
}

// CreateFollowUpRequest is the request body for opening a follow-up
type CreateFollowUpRequest struct {
	ClientID   string `json:"clientId" validate:"required"`
	TemplateID string `json:"templateId" validate:"required"`
}

// Create handles POST /v1/followups
func (h *FollowUpHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateFollowUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	followUp, err := h.followUpSvc.Create(r.Context(), req.ClientID, req.TemplateID)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) || errors.Is(err, service.ErrTemplateNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, followUp)
}

// Get handles GET /v1/followups/{followUpId}
func (h *FollowUpHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["followUpId"]

	followUp, err := h.followUpSvc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrFollowUpNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, followUp)
}

// ListByClient handles GET /v1/clients/{clientId}/followups
func (h *FollowUpHandler) ListByClient(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["clientId"]

	followUps, err := h.followUpSvc.GetByClientID(r.Context(), clientID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if followUps == nil {
		followUps = []*model.FollowUp{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"followUps": followUps})
}

// SetAnswer handles PATCH /v1/followups/{followUpId}/answers/{blockId}.
// The payload is stored raw; resolvers normalize at read time.
func (h *FollowUpHandler) SetAnswer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["followUpId"]
	blockID := vars["blockId"]

	var answer interface{}
	if err := json.NewDecoder(r.Body).Decode(&answer); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.followUpSvc.SetAnswer(r.Context(), id, blockID, answer); err != nil {
		if errors.Is(err, service.ErrFollowUpNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

// Complete handles POST /v1/followups/{followUpId}/complete
func (h *FollowUpHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["followUpId"]

	if err := h.followUpSvc.Complete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrFollowUpNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": string(model.FollowUpCompleted)})
}

// Delete handles DELETE /v1/followups/{followUpId}
func (h *FollowUpHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["followUpId"]

	if err := h.followUpSvc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrFollowUpNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Preview handles GET /v1/followups/{followUpId}/preview
func (h *FollowUpHandler) Preview(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["followUpId"]

	sections, err := h.followUpSvc.Preview(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrFollowUpNotFound) || errors.Is(err, service.ErrTemplateNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"sections": sections})
}

// Export handles GET /v1/followups/{followUpId}/export
func (h *FollowUpHandler) Export(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["followUpId"]

	data, filename, err := h.exportSvc.Export(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrFollowUpNotFound) || errors.Is(err, service.ErrTemplateNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// DrawCards handles POST /v1/followups/{followUpId}/blocks/{blockId}/draw
func (h *FollowUpHandler) DrawCards(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["followUpId"]
	blockID := vars["blockId"]

	drawn, err := h.followUpSvc.DrawCards(r.Context(), id, blockID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFollowUpNotFound), errors.Is(err, service.ErrDeckNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNotCardDraw):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"cards": drawn})
}
