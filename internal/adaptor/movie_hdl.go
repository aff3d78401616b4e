package adaptor

import (
	"encoding/json"
	"net/http"
	"net/url"

	"moviehub/internal/data/filter"
	"moviehub/internal/dto/request"
	"moviehub/internal/usecase"
	"moviehub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxPosterBytes caps the multipart poster payload at 10 MB.
const maxPosterBytes = 10 << 20

type MovieHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.CatalogService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// SearchMovies handles GET /api/movies
func (h *MovieHandler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	criteria := parseMovieCriteria(query)
	page := &request.PageRequest{
		Page:      utils.ParseInt(query.Get("page"), 0, 0),
		Size:      utils.ParseInt(query.Get("size"), 0, 1),
		SortBy:    query.Get("sortBy"),
		Direction: query.Get("direction"),
	}

	movies, err := h.service.Search(r.Context(), criteria, page)
	if err != nil {
		respondServiceError(w, h.log, err, "search movies")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// GetMovieByID handles GET /api/movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	movie, err := h.service.GetByID(r.Context(), movieID)
	if err != nil {
		respondServiceError(w, h.log, err, "get movie by ID")
		return
	}

	utils.ResponseSuccess(w, "success", movie)
}

// CreateMovie handles POST /api/movies (admin)
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create movie")
		return
	}

	utils.ResponseCreated(w, "Movie created successfully", movie)
}

// UpdateMovie handles PUT /api/movies/{id} (admin)
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	var req request.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.Update(r.Context(), movieID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, "Movie updated successfully", movie)
}

// DeleteMovie handles DELETE /api/movies/{id} (admin)
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), movieID); err != nil {
		respondServiceError(w, h.log, err, "delete movie")
		return
	}

	utils.ResponseSuccess(w, "Movie deleted successfully", nil)
}

// UploadPoster handles POST /api/movies/{id}/poster (admin). The file goes to
// object storage; only the returned URL is persisted.
func (h *MovieHandler) UploadPoster(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(maxPosterBytes); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart body", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.ResponseBadRequest(w, "Poster file is required", nil)
		return
	}
	defer file.Close()

	movie, err := h.service.SetPoster(r.Context(), movieID,
		header.Filename, header.Header.Get("Content-Type"), file, header.Size)
	if err != nil {
		respondServiceError(w, h.log, err, "upload poster")
		return
	}

	utils.ResponseSuccess(w, "Poster uploaded successfully", movie)
}

// parseMovieCriteria folds the optional query parameters into filter
// criteria; blank or malformed values contribute no constraint.
func parseMovieCriteria(query url.Values) filter.MovieCriteria {
	var criteria filter.MovieCriteria

	if title := query.Get("title"); title != "" {
		criteria.Title = &title
	}

	// genres accepts repeated params and comma-separated lists
	for _, raw := range query["genres"] {
		criteria.Genres = append(criteria.Genres, utils.SplitCSV(raw)...)
	}

	if min, ok := utils.ParseFloat(query.Get("minRating")); ok {
		criteria.MinRating = &min
	}
	if max, ok := utils.ParseFloat(query.Get("maxRating")); ok {
		criteria.MaxRating = &max
	}

	if after, ok := utils.ParseDate(query.Get("releasedAfter")); ok {
		criteria.ReleasedAfter = &after
	}
	if before, ok := utils.ParseDate(query.Get("releasedBefore")); ok {
		criteria.ReleasedBefore = &before
	}

	return criteria
}
