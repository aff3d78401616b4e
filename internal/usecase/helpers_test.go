package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"moviehub/internal/data/entity"
	"moviehub/internal/data/filter"
	"moviehub/internal/data/repository"
	"moviehub/pkg/utils"

	"github.com/google/uuid"
)

// memStore is a single in-memory backing store shared by the fake
// repositories so cross-entity behavior (cascading movie deletes, the review
// uniqueness constraint) works the way the schema does.
type memStore struct {
	mu      sync.Mutex
	movies  map[uuid.UUID]*entity.Movie
	reviews map[uuid.UUID]*entity.Review
	users   map[uuid.UUID]*entity.User

	// staleLookups simulates a concurrent writer: point lookups return
	// nothing while inserts still hit the uniqueness constraint.
	staleLookups bool
}

func newMemStore() *memStore {
	return &memStore{
		movies:  make(map[uuid.UUID]*entity.Movie),
		reviews: make(map[uuid.UUID]*entity.Review),
		users:   make(map[uuid.UUID]*entity.User),
	}
}

func (s *memStore) repo() *repository.Repository {
	return &repository.Repository{
		User:   &memUserRepo{s: s},
		Movie:  &memMovieRepo{s: s},
		Review: &memReviewRepo{s: s},
	}
}

// ==================== MOVIES ====================

type memMovieRepo struct {
	s *memStore
}

func (r *memMovieRepo) Create(_ context.Context, movie *entity.Movie) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	clone := *movie
	r.s.movies[movie.ID] = &clone
	return nil
}

func (r *memMovieRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Movie, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	movie, ok := r.s.movies[id]
	if !ok {
		return nil, nil
	}
	clone := *movie
	return &clone, nil
}

func (r *memMovieRepo) Update(_ context.Context, movie *entity.Movie) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.movies[movie.ID]; !ok {
		return repository.ErrNotFound
	}
	clone := *movie
	r.s.movies[movie.ID] = &clone
	return nil
}

func (r *memMovieRepo) UpdatePosterURL(_ context.Context, id uuid.UUID, url string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	movie, ok := r.s.movies[id]
	if !ok {
		return repository.ErrNotFound
	}
	movie.PosterURL = &url
	return nil
}

func (r *memMovieRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.movies[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.movies, id)
	// Reviews cascade with their movie.
	for reviewID, review := range r.s.reviews {
		if review.MovieID == id {
			delete(r.s.reviews, reviewID)
		}
	}
	return nil
}

func (r *memMovieRepo) Search(_ context.Context, criteria filter.MovieCriteria, s filter.Sort, limit, offset int) ([]*entity.Movie, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var matched []*entity.Movie
	for _, movie := range r.s.movies {
		if criteria.Matches(movie) {
			clone := *movie
			matched = append(matched, &clone)
		}
	}

	sortMovies(matched, s)

	if offset >= len(matched) {
		return nil, nil
	}
	end := len(matched)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return matched[offset:end], nil
}

func (r *memMovieRepo) Count(_ context.Context, criteria filter.MovieCriteria) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var total int64
	for _, movie := range r.s.movies {
		if criteria.Matches(movie) {
			total++
		}
	}
	return total, nil
}

func sortMovies(movies []*entity.Movie, s filter.Sort) {
	sort.Slice(movies, func(i, j int) bool {
		a, b := movies[i], movies[j]
		if s.Descending {
			a, b = b, a
		}
		switch s.Column {
		case "title":
			if a.Title != b.Title {
				return a.Title < b.Title
			}
		case "genre":
			if a.Genre != b.Genre {
				return a.Genre < b.Genre
			}
		case "rating":
			if a.Rating != b.Rating {
				return a.Rating < b.Rating
			}
		case "created_at":
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
		default: // release_date
			if !a.ReleaseDate.Equal(b.ReleaseDate) {
				return a.ReleaseDate.Before(b.ReleaseDate)
			}
		}
		return movies[i].ID.String() < movies[j].ID.String()
	})
}

// ==================== REVIEWS ====================

type memReviewRepo struct {
	s *memStore
}

func (r *memReviewRepo) Create(_ context.Context, review *entity.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.reviews {
		if existing.MovieID == review.MovieID && existing.UserID == review.UserID {
			return repository.ErrDuplicateReview
		}
	}
	clone := *review
	r.s.reviews[review.ID] = &clone
	return nil
}

func (r *memReviewRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	review, ok := r.s.reviews[id]
	if !ok {
		return nil, nil
	}
	clone := *review
	return &clone, nil
}

func (r *memReviewRepo) FindByMovieID(_ context.Context, movieID uuid.UUID) ([]*entity.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var reviews []*entity.Review
	for _, review := range r.s.reviews {
		if review.MovieID == movieID {
			clone := *review
			reviews = append(reviews, &clone)
		}
	}
	sort.Slice(reviews, func(i, j int) bool {
		if !reviews[i].CreatedAt.Equal(reviews[j].CreatedAt) {
			return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
		}
		return reviews[i].ID.String() < reviews[j].ID.String()
	})
	return reviews, nil
}

func (r *memReviewRepo) FindByUserAndMovie(_ context.Context, userID, movieID uuid.UUID) (*entity.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.staleLookups {
		return nil, nil
	}
	for _, review := range r.s.reviews {
		if review.UserID == userID && review.MovieID == movieID {
			clone := *review
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memReviewRepo) Update(_ context.Context, review *entity.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.reviews[review.ID]; !ok {
		return repository.ErrNotFound
	}
	clone := *review
	r.s.reviews[review.ID] = &clone
	return nil
}

func (r *memReviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.reviews[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.reviews, id)
	return nil
}

func (r *memReviewRepo) Stats(_ context.Context, movieID uuid.UUID) (*float64, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var sum float64
	var count int64
	for _, review := range r.s.reviews {
		if review.MovieID == movieID {
			sum += float64(review.Rating)
			count++
		}
	}
	if count == 0 {
		return nil, 0, nil
	}
	average := sum / float64(count)
	return &average, count, nil
}

// ==================== USERS ====================

type memUserRepo struct {
	s *memStore
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	clone := *user
	r.s.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, user := range r.s.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	user, err := r.FindByEmail(ctx, email)
	return user != nil, err
}

// ==================== OBJECT STORAGE ====================

type fakeStorage struct {
	fail    bool
	uploads int
}

func (f *fakeStorage) UploadPoster(_ context.Context, movieID uuid.UUID, filename, _ string, _ io.Reader, _ int64) (string, error) {
	if f.fail {
		return "", errors.New("bucket unreachable")
	}
	f.uploads++
	return fmt.Sprintf("https://storage.example.com/posters/%s/%s", movieID.String(), filename), nil
}

// ==================== FIXTURES ====================

func testConfig() *utils.Config {
	return &utils.Config{
		App: utils.AppConfig{PageSizeMax: 100},
	}
}

func seedMovie(store *memStore, title, genre string, rating float64, released string) *entity.Movie {
	releaseDate, _ := time.Parse("2006-01-02", released)
	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       title,
		Genre:       genre,
		Rating:      rating,
		ReleaseDate: releaseDate,
	}
	store.movies[movie.ID] = movie
	return movie
}

func seedUser(store *memStore, email string, role entity.UserRole) *entity.User {
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        email,
		PasswordHash: "$2a$10$unusable.hash.for.fixture.accounts.only",
		Role:         role,
	}
	store.users[user.ID] = user
	return user
}

func seedReview(store *memStore, movieID, userID uuid.UUID, rating int, createdAt time.Time) *entity.Review {
	review := &entity.Review{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		},
		MovieID: movieID,
		UserID:  userID,
		Rating:  rating,
		Comment: "fixture review",
	}
	store.reviews[review.ID] = review
	return review
}
