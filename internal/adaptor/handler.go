package adaptor

import (
	"net/http"
	"strings"

	"photodesk/internal/catalog"
	"photodesk/internal/usecase"
	"photodesk/internal/ws"
	"photodesk/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth           *AuthHandler
	Agent          *AgentHandler
	Photographer   *PhotographerHandler
	ServiceCatalog *ServiceCatalogHandler
	Booking        *BookingHandler
	Gallery        *GalleryHandler
	Invoice        *InvoiceHandler
	Notification   *NotificationHandler
	Settings       *SettingsHandler
	Picker         *PickerHandler
	WS             *WSHandler
}

func NewHandler(service *usecase.Service, store *catalog.Store, hub *ws.Hub, log *zap.Logger) *Handler {
	return &Handler{
		Auth:           NewAuthHandler(service.Auth, log),
		Agent:          NewAgentHandler(service.Agent, log),
		Photographer:   NewPhotographerHandler(service.Photographer, log),
		ServiceCatalog: NewServiceCatalogHandler(service.ServiceCatalog, log),
		Booking:        NewBookingHandler(service.Booking, log),
		Gallery:        NewGalleryHandler(service.Gallery, log),
		Invoice:        NewInvoiceHandler(service.Invoice, log),
		Notification:   NewNotificationHandler(service.Notification, log),
		Settings:       NewSettingsHandler(service.Settings, log),
		Picker:         NewPickerHandler(store, log),
		WS:             NewWSHandler(hub, log),
	}
}

// handleServiceError maps service errors onto HTTP statuses by message. The
// services speak in user-facing sentences, so the substrings are stable.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "already registered"),
		strings.Contains(errMsg, "already exists"):
		log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid email or password"):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "deactivated"):
		log.Warn(operation+" failed - account deactivated", zap.Error(err))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "expected"):
		log.Warn(operation+" failed - bad request", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Something went wrong")
	}
}
