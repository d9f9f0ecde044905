package wire

import (
	"photodesk/internal/adaptor"
	"photodesk/internal/data/repository"
	"photodesk/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireCatalog routes the agents, photographers and services management plus
// the picker endpoints backing the booking form.
func wireCatalog(
	r chi.Router,
	handler *adaptor.Handler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Authenticated reads
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Get("/api/services", handler.ServiceCatalog.GetAll)
		r.Get("/api/services/{id}", handler.ServiceCatalog.GetByID)

		r.Get("/api/pickers/agents", handler.Picker.Agents)
		r.Get("/api/pickers/photographers", handler.Picker.Photographers)
		r.Get("/api/pickers/services", handler.Picker.Services)
	})

	// Admin management
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/api/admin/agents", handler.Agent.Create)
		r.Get("/api/admin/agents", handler.Agent.GetAll)
		r.Get("/api/admin/agents/{id}", handler.Agent.GetByID)
		r.Put("/api/admin/agents/{id}", handler.Agent.Update)
		r.Delete("/api/admin/agents/{id}", handler.Agent.Delete)

		r.Post("/api/admin/photographers", handler.Photographer.Create)
		r.Get("/api/admin/photographers", handler.Photographer.GetAll)
		r.Get("/api/admin/photographers/{id}", handler.Photographer.GetByID)
		r.Put("/api/admin/photographers/{id}", handler.Photographer.Update)
		r.Delete("/api/admin/photographers/{id}", handler.Photographer.Delete)

		r.Post("/api/admin/services", handler.ServiceCatalog.Create)
		r.Put("/api/admin/services/{id}", handler.ServiceCatalog.Update)
		r.Delete("/api/admin/services/{id}", handler.ServiceCatalog.Delete)
	})
}
