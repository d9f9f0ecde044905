package adaptor

import (
	"net/http"

	"photodesk/internal/usecase"
	"photodesk/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type NotificationHandler struct {
	service usecase.NotificationService
	log     *zap.Logger
}

func NewNotificationHandler(service usecase.NotificationService, log *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		log:     log,
	}
}

// GetRecent handles GET /api/notifications?limit=20 (protected)
func (h *NotificationHandler) GetRecent(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseInt(r.URL.Query().Get("limit"), 20)

	resp, err := h.service.GetRecent(r.Context(), nil, limit)
	if err != nil {
		handleServiceError(h.log, w, err, "list notifications")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// MarkRead handles PATCH /api/notifications/{id}/read (protected)
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	if err := h.service.MarkRead(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(h.log, w, err, "mark notification read")
		return
	}

	utils.ResponseSuccess(w, "Notification marked read", nil)
}

// MarkAllRead handles POST /api/notifications/read-all (protected)
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := h.service.MarkAllRead(r.Context(), nil); err != nil {
		handleServiceError(h.log, w, err, "mark all notifications read")
		return
	}

	utils.ResponseSuccess(w, "All notifications marked read", nil)
}
