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

type PhotographerHandler struct {
	service usecase.PhotographerService
	log     *zap.Logger
}

func NewPhotographerHandler(service usecase.PhotographerService, log *zap.Logger) *PhotographerHandler {
	return &PhotographerHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/admin/photographers
func (h *PhotographerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePhotographerRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create photographer")
		return
	}

	utils.ResponseCreated(w, "Photographer created", resp)
}

// GetByID handles GET /api/admin/photographers/{id}
func (h *PhotographerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get photographer")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// GetAll handles GET /api/admin/photographers?active=true
func (h *PhotographerHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	resp, err := h.service.GetAll(r.Context(), activeOnly)
	if err != nil {
		handleServiceError(h.log, w, err, "list photographers")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// Update handles PUT /api/admin/photographers/{id}
func (h *PhotographerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdatePhotographerRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update photographer")
		return
	}

	utils.ResponseSuccess(w, "Photographer updated", resp)
}

// Delete handles DELETE /api/admin/photographers/{id}
func (h *PhotographerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(h.log, w, err, "delete photographer")
		return
	}

	utils.ResponseSuccess(w, "Photographer deleted", nil)
}
