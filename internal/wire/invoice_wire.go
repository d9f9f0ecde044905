package wire

import (
	"photodesk/internal/adaptor"
	"photodesk/internal/data/repository"
	"photodesk/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireInvoice(
	r chi.Router,
	invoiceHandler *adaptor.InvoiceHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/api/admin/invoices", invoiceHandler.Create)
		r.Get("/api/admin/invoices", invoiceHandler.GetAll)
		r.Get("/api/admin/invoices/{id}", invoiceHandler.GetByID)
		r.Patch("/api/admin/invoices/{id}/status", invoiceHandler.UpdateStatus)
	})
}
