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

type ServiceCatalogHandler struct {
	service usecase.ServiceCatalogService
	log     *zap.Logger
}

func NewServiceCatalogHandler(service usecase.ServiceCatalogService, log *zap.Logger) *ServiceCatalogHandler {
	return &ServiceCatalogHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/admin/services
func (h *ServiceCatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateServiceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create service")
		return
	}

	utils.ResponseCreated(w, "Service created", resp)
}

// GetByID handles GET /api/services/{id}
func (h *ServiceCatalogHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get service")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// GetAll handles GET /api/services?active=true
func (h *ServiceCatalogHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	resp, err := h.service.GetAll(r.Context(), activeOnly)
	if err != nil {
		handleServiceError(h.log, w, err, "list services")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// Update handles PUT /api/admin/services/{id}
func (h *ServiceCatalogHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateServiceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update service")
		return
	}

	utils.ResponseSuccess(w, "Service updated", resp)
}

// Delete handles DELETE /api/admin/services/{id}
func (h *ServiceCatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(h.log, w, err, "delete service")
		return
	}

	utils.ResponseSuccess(w, "Service deleted", nil)
}
