package response

import (
	"time"

	"moviehub/internal/data/entity"
)

// MovieResponse is the enriched movie view: the stored record combined with
// its review aggregate.
type MovieResponse struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title"`
	Genre               string    `json:"genre"`
	Rating              float64   `json:"rating"`
	ReleaseDate         string    `json:"release_date"`
	PosterURL           *string   `json:"poster_url,omitempty"`
	Description         *string   `json:"description,omitempty"`
	AverageReviewRating float64   `json:"average_review_rating"`
	ReviewCount         int64     `json:"review_count"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func MovieToResponse(movie *entity.Movie, averageReviewRating float64, reviewCount int64) MovieResponse {
	return MovieResponse{
		ID:                  movie.ID.String(),
		Title:               movie.Title,
		Genre:               movie.Genre,
		Rating:              movie.Rating,
		ReleaseDate:         movie.ReleaseDate.Format("2006-01-02"),
		PosterURL:           movie.PosterURL,
		Description:         movie.Description,
		AverageReviewRating: averageReviewRating,
		ReviewCount:         reviewCount,
		CreatedAt:           movie.CreatedAt,
		UpdatedAt:           movie.UpdatedAt,
	}
}
