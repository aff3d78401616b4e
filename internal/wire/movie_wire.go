package wire

import (
	"moviehub/internal/adaptor"
	"moviehub/pkg/auth"
	"moviehub/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	tokens *auth.TokenManager,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/movies - Search the catalog (public)
	r.Get("/api/movies", movieHandler.SearchMovies)

	// GET /api/movies/{id} - Movie details with review aggregates (public)
	r.Get("/api/movies/{id}", movieHandler.GetMovieByID)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log)) // Must be authenticated
		r.Use(middleware.Admin(log))        // Must be admin

		// POST /api/movies - Add a movie
		r.Post("/api/movies", movieHandler.CreateMovie)

		// PUT /api/movies/{id} - Replace movie fields
		r.Put("/api/movies/{id}", movieHandler.UpdateMovie)

		// DELETE /api/movies/{id} - Remove movie and its reviews
		r.Delete("/api/movies/{id}", movieHandler.DeleteMovie)

		// POST /api/movies/{id}/poster - Upload poster image
		r.Post("/api/movies/{id}/poster", movieHandler.UploadPoster)
	})
}
