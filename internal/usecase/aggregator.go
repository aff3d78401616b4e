package usecase

import (
	"context"
	"fmt"

	"moviehub/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReviewAggregator computes the review statistics attached to enriched movie
// views. The average is absent (nil) when a movie has no reviews; substituting
// a display default is the caller's decision.
type ReviewAggregator struct {
	reviews repository.ReviewRepository
	log     *zap.Logger
}

func NewReviewAggregator(reviews repository.ReviewRepository, log *zap.Logger) *ReviewAggregator {
	return &ReviewAggregator{
		reviews: reviews,
		log:     log.With(zap.String("component", "review_aggregator")),
	}
}

func (a *ReviewAggregator) Stats(ctx context.Context, movieID uuid.UUID) (*float64, int64, error) {
	average, count, err := a.reviews.Stats(ctx, movieID)
	if err != nil {
		return nil, 0, fmt.Errorf("aggregate reviews for movie %s: %w", movieID.String(), err)
	}

	a.log.Debug("Review stats computed",
		zap.String("movie_id", movieID.String()),
		zap.Int64("count", count),
	)

	return average, count, nil
}
