package wire

import (
	"photodesk/internal/adaptor"
	"photodesk/internal/data/repository"
	"photodesk/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Login and register are the only unauthenticated writes, so they get a
	// per-IP rate limit.
	limiter := middleware.NewRateLimiter(1, 5)

	r.With(middleware.RateLimit(limiter)).Post("/api/register", authHandler.Register)
	r.With(middleware.RateLimit(limiter)).Post("/api/login", authHandler.Login)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Post("/api/logout", authHandler.Logout)
		r.Get("/api/me", authHandler.Me)
	})
}
