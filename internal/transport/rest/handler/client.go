package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"praxis/internal/model"
	"praxis/internal/service"
	"praxis/internal/transport/rest/middleware"
)

// ClientHandler handles client record endpoints
type ClientHandler struct {
	clientSvc *service.ClientService
}

// NewClientHandler creates a new client handler
func NewClientHandler(clientSvc *service.ClientService) *ClientHandler {
	return &ClientHandler{clientSvc: clientSvc}
}

// ClientRequest is the request body for creating or updating a client
type ClientRequest struct {
	FirstName         string   `json:"firstName" validate:"required"`
	LastName          string   `json:"lastName"`
	Email             string   `json:"email" validate:"omitempty,email"`
	Phone             string   `json:"phone"`
	BirthDate         string   `json:"birthDate"`
	Notes             string   `json:"notes"`
	Contraindications []string `json:"contraindications"`
	Allergies         []string `json:"allergies"`
	Targets           []string `json:"targets"`
	ProfileTags       []string `json:"profileTags"`
}

func (req *ClientRequest) toModel() *model.Client {
	return &model.Client{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		Phone:             req.Phone,
		BirthDate:         req.BirthDate,
		Notes:             req.Notes,
		Contraindications: req.Contraindications,
		Allergies:         req.Allergies,
		Targets:           req.Targets,
		ProfileTags:       req.ProfileTags,
	}
}

// Create handles POST /v1/clients
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	counselorID := middleware.GetCounselorID(r.Context())

	var req ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	client := req.toModel()
	client.CounselorID = counselorID
	id, err := h.clientSvc.Create(r.Context(), client)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"clientId": id})
}

// List handles GET /v1/clients
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	counselorID := middleware.GetCounselorID(r.Context())

	clients, err := h.clientSvc.GetByCounselorID(r.Context(), counselorID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if clients == nil {
		clients = []*model.Client{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"clients": clients})
}

// Get handles GET /v1/clients/{clientId}
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	counselorID := middleware.GetCounselorID(r.Context())
	id := mux.Vars(r)["clientId"]

	client, err := h.clientSvc.GetByID(r.Context(), counselorID, id)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, client)
}

// Update handles PUT /v1/clients/{clientId}
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["clientId"]

	var req ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	client := req.toModel()
	client.ID = id
	if err := h.clientSvc.Update(r.Context(), client); err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, client)
}

// Delete handles DELETE /v1/clients/{clientId}
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["clientId"]

	if err := h.clientSvc.Delete(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// LastSelected handles GET /v1/session/last-client
func (h *ClientHandler) LastSelected(w http.ResponseWriter, r *http.Request) {
	counselorID := middleware.GetCounselorID(r.Context())

	clientID, err := h.clientSvc.LastSelected(r.Context(), counselorID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"clientId": clientID})
}

// SetLastSelected handles PUT /v1/session/last-client
func (h *ClientHandler) SetLastSelected(w http.ResponseWriter, r *http.Request) {
	counselorID := middleware.GetCounselorID(r.Context())

	var req struct {
		ClientID string `json:"clientId" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.clientSvc.SetLastSelected(r.Context(), counselorID, req.ClientID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"clientId": req.ClientID})
}
