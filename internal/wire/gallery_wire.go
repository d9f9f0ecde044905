package wire

import (
	"photodesk/internal/adaptor"
	"photodesk/internal/data/repository"
	"photodesk/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireGallery(
	r chi.Router,
	galleryHandler *adaptor.GalleryHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Public: anyone with a signed link can view the gallery.
	r.Get("/api/shared/{token}", galleryHandler.ResolveShare)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/api/admin/galleries", galleryHandler.Create)
		r.Get("/api/admin/galleries", galleryHandler.GetAll)
		r.Get("/api/admin/galleries/{id}", galleryHandler.GetByID)
		r.Put("/api/admin/galleries/{id}", galleryHandler.Update)
		r.Delete("/api/admin/galleries/{id}", galleryHandler.Delete)

		r.Post("/api/admin/galleries/{id}/images", galleryHandler.AddImage)
		r.Delete("/api/admin/galleries/{id}/images/{imageID}", galleryHandler.RemoveImage)
		r.Post("/api/admin/galleries/{id}/share", galleryHandler.Share)
	})
}
