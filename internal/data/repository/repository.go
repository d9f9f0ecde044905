package repository

import (
	"photodesk/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Session      SessionRepository
	Agent        AgentRepository
	Photographer PhotographerRepository
	Service      ServiceRepository
	Booking      BookingRepository
	BookingLink  BookingLinkRepository
	Gallery      GalleryRepository
	Invoice      InvoiceRepository
	Notification NotificationRepository
	Settings     SettingsRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Session:      NewSessionRepository(db, log),
		Agent:        NewAgentRepository(db, log),
		Photographer: NewPhotographerRepository(db, log),
		Service:      NewServiceRepository(db, log),
		Booking:      NewBookingRepository(db, log),
		BookingLink:  NewBookingLinkRepository(db, log),
		Gallery:      NewGalleryRepository(db, log),
		Invoice:      NewInvoiceRepository(db, log),
		Notification: NewNotificationRepository(db, log),
		Settings:     NewSettingsRepository(db, log),
	}
}
