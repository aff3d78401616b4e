package entity

import (
	"time"
)

type Movie struct {
	Base
	Title       string    `db:"title"`
	Genre       string    `db:"genre"`
	Rating      float64   `db:"rating"` // 0.0-10.0, one fractional digit
	ReleaseDate time.Time `db:"release_date"`
	PosterURL   *string   `db:"poster_url"`
	Description *string   `db:"description"`
}
