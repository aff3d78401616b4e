package entity

import (
	"github.com/google/uuid"
)

// Review references its movie and author by id only; cross-entity lookups go
// through the repositories.
type Review struct {
	Base
	MovieID uuid.UUID `db:"movie_id"`
	UserID  uuid.UUID `db:"user_id"`
	Rating  int       `db:"rating"` // 1-5
	Comment string    `db:"comment"`
}
