package wire

import (
	"moviehub/internal/adaptor"
	"moviehub/pkg/auth"
	"moviehub/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	tokens *auth.TokenManager,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/movies/{id}/reviews - View movie reviews (public)
	r.Get("/api/movies/{id}/reviews", reviewHandler.ListMovieReviews)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))

		// POST /api/movies/{id}/reviews - Create review (one per user per movie)
		r.Post("/api/movies/{id}/reviews", reviewHandler.CreateReview)

		// PUT /api/movies/{id}/reviews/{reviewID} - Update review (author only)
		r.Put("/api/movies/{id}/reviews/{reviewID}", reviewHandler.UpdateReview)

		// DELETE /api/movies/{id}/reviews/{reviewID} - Delete review (author or admin)
		r.Delete("/api/movies/{id}/reviews/{reviewID}", reviewHandler.DeleteReview)
	})
}
