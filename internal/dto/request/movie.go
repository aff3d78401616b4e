package request

// MovieRequest carries the full set of movie fields; update replaces them all.
type MovieRequest struct {
	Title       string  `json:"title" validate:"required,max=150"`
	Genre       string  `json:"genre" validate:"required,max=100"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=10"`
	ReleaseDate string  `json:"release_date" validate:"required,datetime=2006-01-02"`
	PosterURL   *string `json:"poster_url,omitempty" validate:"omitempty,max=500"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}
