package usecase

import (
	"photodesk/internal/bus"
	"photodesk/internal/catalog"
	"photodesk/internal/data/repository"
	"photodesk/internal/ws"
	"photodesk/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth           AuthService
	Agent          AgentService
	Photographer   PhotographerService
	ServiceCatalog ServiceCatalogService
	Booking        BookingService
	Gallery        GalleryService
	Invoice        InvoiceService
	Notification   NotificationService
	Settings       SettingsService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	store *catalog.Store,
	eventBus *bus.Bus,
	hub *ws.Hub,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:           NewAuthService(repo, config, log),
		Agent:          NewAgentService(repo, store, log),
		Photographer:   NewPhotographerService(repo, store, log),
		ServiceCatalog: NewServiceCatalogService(repo, store, log),
		Booking:        NewBookingService(repo, store, eventBus, log),
		Gallery:        NewGalleryService(repo, config, eventBus, log),
		Invoice:        NewInvoiceService(repo, store, log),
		Notification:   NewNotificationService(repo, eventBus, hub, log),
		Settings:       NewSettingsService(repo, config, store, log),
	}
}
