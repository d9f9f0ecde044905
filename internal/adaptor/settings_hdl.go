package adaptor

import (
	"encoding/json"
	"net/http"

	"photodesk/internal/dto/request"
	"photodesk/internal/usecase"
	"photodesk/pkg/utils"

	"go.uber.org/zap"
)

type SettingsHandler struct {
	service usecase.SettingsService
	log     *zap.Logger
}

func NewSettingsHandler(service usecase.SettingsService, log *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		service: service,
		log:     log,
	}
}

// Get handles GET /api/admin/settings
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Get(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get settings")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// Update handles PUT /api/admin/settings
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Update(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update settings")
		return
	}

	utils.ResponseSuccess(w, "Settings updated", resp)
}
