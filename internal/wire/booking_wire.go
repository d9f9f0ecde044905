package wire

import (
	"photodesk/internal/adaptor"
	"photodesk/internal/data/repository"
	"photodesk/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	handler *adaptor.Handler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/api/bookings", handler.Booking.Create)
		r.Get("/api/bookings/mine", handler.Booking.GetMine)
		r.Get("/api/bookings/calendar", handler.Booking.GetCalendar)
		r.Get("/api/bookings/availability", handler.Booking.GetAvailability)
		r.Get("/api/bookings/{id}", handler.Booking.GetByID)
		r.Put("/api/bookings/{id}", handler.Booking.Update)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Patch("/api/admin/bookings/{id}/status", handler.Booking.UpdateStatus)
		r.Delete("/api/admin/bookings/{id}", handler.Booking.Delete)
	})
}
