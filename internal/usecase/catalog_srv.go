package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"moviehub/internal/data/entity"
	"moviehub/internal/data/filter"
	"moviehub/internal/data/repository"
	"moviehub/internal/dto/request"
	"moviehub/internal/dto/response"
	"moviehub/pkg/storage"
	"moviehub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CatalogService interface {
	Search(ctx context.Context, criteria filter.MovieCriteria, page *request.PageRequest) (*response.PaginatedResponse[response.MovieResponse], error)
	GetByID(ctx context.Context, movieID string) (*response.MovieResponse, error)
	Create(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	Update(ctx context.Context, movieID string, req *request.MovieRequest) (*response.MovieResponse, error)
	Delete(ctx context.Context, movieID string) error
	SetPoster(ctx context.Context, movieID, filename, contentType string, payload io.Reader, size int64) (*response.MovieResponse, error)
}

type catalogService struct {
	movies      repository.MovieRepository
	aggregator  *ReviewAggregator
	store       storage.ObjectStorage
	pageSizeMax int
	log         *zap.Logger
}

func NewCatalogService(
	repo *repository.Repository,
	store storage.ObjectStorage,
	config *utils.Config,
	log *zap.Logger,
) CatalogService {
	return &catalogService{
		movies:      repo.Movie,
		aggregator:  NewReviewAggregator(repo.Review, log),
		store:       store,
		pageSizeMax: config.App.PageSizeMax,
		log:         log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) Search(ctx context.Context, criteria filter.MovieCriteria, page *request.PageRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	page.Normalize(s.pageSizeMax)
	sort := filter.ParseSort(page.SortBy, page.Direction)

	movies, err := s.movies.Search(ctx, criteria, sort, page.Size, page.Offset())
	if err != nil {
		s.log.Error("Failed to search movies",
			zap.Error(err),
			zap.Int("page", page.Page),
			zap.Int("size", page.Size),
		)
		return nil, fmt.Errorf("search movies: %w", err)
	}

	total, err := s.movies.Count(ctx, criteria)
	if err != nil {
		s.log.Error("Failed to count movies", zap.Error(err))
		return nil, fmt.Errorf("count movies: %w", err)
	}

	movieResponses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		enriched, err := s.enrich(ctx, movie)
		if err != nil {
			return nil, err
		}
		movieResponses[i] = *enriched
	}

	s.log.Info("Movies searched",
		zap.Int("count", len(movies)),
		zap.Int64("total", total),
		zap.Int("page", page.Page),
		zap.Int("size", page.Size),
	)

	return response.NewPaginatedResponse(movieResponses, page.Page, page.Size, total), nil
}

func (s *catalogService) GetByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	return s.enrich(ctx, movie)
}

func (s *catalogService) Create(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	releaseDate, err := s.validateMovieRequest(req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Genre:       req.Genre,
		Rating:      roundRating(req.Rating),
		ReleaseDate: releaseDate,
		PosterURL:   req.PosterURL,
		Description: req.Description,
	}

	if err := s.movies.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", req.Title),
		)
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
	)

	// A new movie has no reviews yet.
	resp := response.MovieToResponse(movie, 0.0, 0)
	return &resp, nil
}

func (s *catalogService) Update(ctx context.Context, movieID string, req *request.MovieRequest) (*response.MovieResponse, error) {
	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	releaseDate, err := s.validateMovieRequest(req)
	if err != nil {
		return nil, err
	}

	// Full replacement of the mutable fields.
	movie.Title = req.Title
	movie.Genre = req.Genre
	movie.Rating = roundRating(req.Rating)
	movie.ReleaseDate = releaseDate
	movie.PosterURL = req.PosterURL
	movie.Description = req.Description
	movie.UpdatedAt = time.Now()

	if err := s.movies.Update(ctx, movie); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		s.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("update movie: %w", err)
	}

	s.log.Info("Movie updated",
		zap.String("movie_id", movieID),
		zap.String("title", movie.Title),
	)

	resp := response.MovieToResponse(movie, 0.0, 0)
	return &resp, nil
}

func (s *catalogService) Delete(ctx context.Context, movieID string) error {
	id, err := parseMovieID(movieID)
	if err != nil {
		return err
	}

	if err := s.movies.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMovieNotFound
		}
		s.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return fmt.Errorf("delete movie: %w", err)
	}

	s.log.Info("Movie deleted", zap.String("movie_id", movieID))
	return nil
}

func (s *catalogService) SetPoster(ctx context.Context, movieID, filename, contentType string, payload io.Reader, size int64) (*response.MovieResponse, error) {
	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	url, err := s.store.UploadPoster(ctx, movie.ID, filename, contentType, payload, size)
	if err != nil {
		s.log.Error("Failed to upload poster",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, &StorageError{Err: err}
	}

	if err := s.movies.UpdatePosterURL(ctx, movie.ID, url); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("persist poster url: %w", err)
	}

	movie.PosterURL = &url

	s.log.Info("Poster set",
		zap.String("movie_id", movieID),
		zap.String("url", url),
	)

	return s.enrich(ctx, movie)
}

// ==================== HELPER METHODS ====================

// enrich combines a movie with its review aggregate. An absent average is
// reported as 0.0 so consumers never see an undefined value.
func (s *catalogService) enrich(ctx context.Context, movie *entity.Movie) (*response.MovieResponse, error) {
	average, count, err := s.aggregator.Stats(ctx, movie.ID)
	if err != nil {
		s.log.Error("Failed to aggregate reviews",
			zap.Error(err),
			zap.String("movie_id", movie.ID.String()),
		)
		return nil, err
	}

	displayAverage := 0.0
	if average != nil {
		displayAverage = *average
	}

	resp := response.MovieToResponse(movie, displayAverage, count)
	return &resp, nil
}

func (s *catalogService) findMovie(ctx context.Context, movieID string) (*entity.Movie, error) {
	id, err := parseMovieID(movieID)
	if err != nil {
		return nil, err
	}

	movie, err := s.movies.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	return movie, nil
}

func (s *catalogService) validateMovieRequest(req *request.MovieRequest) (time.Time, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Movie validation failed", zap.Any("errors", errs))
		return time.Time{}, &ValidationError{Fields: errs}
	}

	releaseDate, err := time.Parse("2006-01-02", req.ReleaseDate)
	if err != nil {
		return time.Time{}, NewValidationError("ReleaseDate", "Must be a date in 2006-01-02 format")
	}

	if releaseDate.After(time.Now()) {
		return time.Time{}, NewValidationError("ReleaseDate", "Must not be in the future")
	}

	return releaseDate, nil
}

func parseMovieID(movieID string) (uuid.UUID, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return uuid.Nil, NewValidationError("id", "Must be a valid UUID")
	}
	return id, nil
}

// roundRating normalizes the catalog rating to one fractional digit.
func roundRating(rating float64) float64 {
	return math.Round(rating*10) / 10
}
