package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"moviehub/internal/data/entity"
	"moviehub/internal/data/repository"
	"moviehub/internal/dto/request"
	"moviehub/internal/dto/response"
	"moviehub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	Create(ctx context.Context, movieID, userID string, req *request.ReviewRequest) (*response.ReviewResponse, error)
	Update(ctx context.Context, reviewID, userID string, req *request.ReviewRequest) (*response.ReviewResponse, error)
	Delete(ctx context.Context, reviewID, userID string, isAdmin bool) error
	ListByMovie(ctx context.Context, movieID string) ([]response.ReviewResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) Create(ctx context.Context, movieID, userID string, req *request.ReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	movieUUID, err := uuid.Parse(movieID)
	if err != nil {
		return nil, NewValidationError("movie_id", "Must be a valid UUID")
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, NewValidationError("user_id", "Must be a valid UUID")
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieUUID)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	user, err := s.repo.User.FindByID(ctx, userUUID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	// Optimistic pre-check for a friendlier error; the store constraint
	// decides under concurrent duplicates.
	existing, err := s.repo.Review.FindByUserAndMovie(ctx, userUUID, movieUUID)
	if err != nil {
		s.log.Error("Failed to check existing review", zap.Error(err))
		return nil, fmt.Errorf("check existing review: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateReview
	}

	now := time.Now()
	review := &entity.Review{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		MovieID: movieUUID,
		UserID:  userUUID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicateReview) {
			return nil, ErrDuplicateReview
		}
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("movie_id", movieID),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("movie_id", movieID),
		zap.String("user_id", userID),
		zap.Int("rating", req.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) Update(ctx context.Context, reviewID, userID string, req *request.ReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update review validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	review, userUUID, err := s.findReviewAndUser(ctx, reviewID, userID)
	if err != nil {
		return nil, err
	}

	// Only the author edits; authorship itself never changes.
	if review.UserID != userUUID {
		return nil, ErrNotReviewOwner
	}

	review.Rating = req.Rating
	review.Comment = req.Comment
	review.UpdatedAt = time.Now()

	if err := s.repo.Review.Update(ctx, review); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReviewNotFound
		}
		s.log.Error("Failed to update review",
			zap.Error(err),
			zap.String("review_id", reviewID),
		)
		return nil, fmt.Errorf("update review: %w", err)
	}

	s.log.Info("Review updated",
		zap.String("review_id", reviewID),
		zap.String("user_id", userID),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) Delete(ctx context.Context, reviewID, userID string, isAdmin bool) error {
	review, userUUID, err := s.findReviewAndUser(ctx, reviewID, userID)
	if err != nil {
		return err
	}

	// Admins delete any review; everyone else only their own.
	if !isAdmin && review.UserID != userUUID {
		return ErrNotReviewOwner
	}

	if err := s.repo.Review.Delete(ctx, review.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrReviewNotFound
		}
		s.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", reviewID),
		)
		return fmt.Errorf("delete review: %w", err)
	}

	s.log.Info("Review deleted",
		zap.String("review_id", reviewID),
		zap.String("user_id", userID),
		zap.Bool("as_admin", isAdmin && review.UserID != userUUID),
	)

	return nil
}

func (s *reviewService) ListByMovie(ctx context.Context, movieID string) ([]response.ReviewResponse, error) {
	movieUUID, err := uuid.Parse(movieID)
	if err != nil {
		return nil, NewValidationError("movie_id", "Must be a valid UUID")
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieUUID)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	reviews, err := s.repo.Review.FindByMovieID(ctx, movieUUID)
	if err != nil {
		s.log.Error("Failed to list movie reviews",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("list movie reviews: %w", err)
	}

	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		reviewResponses[i] = response.ReviewToResponse(review)
	}

	return reviewResponses, nil
}

// ==================== HELPER METHODS ====================

func (s *reviewService) findReviewAndUser(ctx context.Context, reviewID, userID string) (*entity.Review, uuid.UUID, error) {
	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, uuid.Nil, NewValidationError("review_id", "Must be a valid UUID")
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, uuid.Nil, NewValidationError("user_id", "Must be a valid UUID")
	}

	review, err := s.repo.Review.FindByID(ctx, reviewUUID)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return nil, uuid.Nil, ErrReviewNotFound
	}

	return review, userUUID, nil
}
