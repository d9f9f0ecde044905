package wire

import (
	"photodesk/internal/adaptor"
	"photodesk/internal/data/repository"
	"photodesk/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSettings(
	r chi.Router,
	settingsHandler *adaptor.SettingsHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Get("/api/admin/settings", settingsHandler.Get)
		r.Put("/api/admin/settings", settingsHandler.Update)
	})
}
