package adaptor

import (
	"encoding/json"
	"net/http"

	"photodesk/internal/dto/request"
	"photodesk/internal/usecase"
	"photodesk/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AgentHandler struct {
	service usecase.AgentService
	log     *zap.Logger
}

func NewAgentHandler(service usecase.AgentService, log *zap.Logger) *AgentHandler {
	return &AgentHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/admin/agents
func (h *AgentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateAgentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create agent")
		return
	}

	utils.ResponseCreated(w, "Agent created", resp)
}

// GetByID handles GET /api/admin/agents/{id}
func (h *AgentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get agent")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// GetAll handles GET /api/admin/agents
func (h *AgentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetAll(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list agents")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// Update handles PUT /api/admin/agents/{id}
func (h *AgentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateAgentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update agent")
		return
	}

	utils.ResponseSuccess(w, "Agent updated", resp)
}

// Delete handles DELETE /api/admin/agents/{id}
func (h *AgentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(h.log, w, err, "delete agent")
		return
	}

	utils.ResponseSuccess(w, "Agent deleted", nil)
}
