package repository

import (
	"errors"

	"moviehub/pkg/database"

	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned by Update/Delete when no row was affected.
	// Find methods return (nil, nil) for a missing record instead.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateReview is the store-level translation of the unique
	// (movie_id, user_id) constraint. It is the authoritative Conflict
	// signal; the service-level pre-check merely anticipates it.
	ErrDuplicateReview = errors.New("user already reviewed this movie")
)

type Repository struct {
	User   UserRepository
	Movie  MovieRepository
	Review ReviewRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:   NewUserRepository(db, log),
		Movie:  NewMovieRepository(db, log),
		Review: NewReviewRepository(db, log),
	}
}
