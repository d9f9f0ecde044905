package wire

import (
	"net/http"

	"photodesk/internal/adaptor"
	"photodesk/internal/bus"
	"photodesk/internal/catalog"
	"photodesk/internal/data/repository"
	"photodesk/internal/usecase"
	"photodesk/internal/ws"
	"photodesk/pkg/middleware"
	"photodesk/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies.
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring initializes services, handlers and routes.
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	store *catalog.Store,
	eventBus *bus.Bus,
	hub *ws.Hub,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, config, store, eventBus, hub, logger)
	handler := adaptor.NewHandler(service, store, hub, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, repo, logger)
	wireCatalog(r, handler, repo, logger)
	wireBooking(r, handler, repo, logger)
	wireGallery(r, handler.Gallery, repo, logger)
	wireInvoice(r, handler.Invoice, repo, logger)
	wireNotification(r, handler, repo, logger)
	wireSettings(r, handler.Settings, repo, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
