package wire

import (
	"photodesk/internal/adaptor"
	"photodesk/internal/data/repository"
	"photodesk/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireNotification(
	r chi.Router,
	handler *adaptor.Handler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Get("/api/notifications", handler.Notification.GetRecent)
		r.Patch("/api/notifications/{id}/read", handler.Notification.MarkRead)
		r.Post("/api/notifications/read-all", handler.Notification.MarkAllRead)

		// Live push channel
		r.Get("/api/ws", handler.WS.Serve)
	})
}
