// Package filter builds movie search predicates from optional criteria.
// Every present field contributes one clause and the predicate is their
// conjunction, so an empty criteria matches every movie. The criteria render
// either as parameterized SQL (for the Postgres store) or as an in-memory
// predicate, keeping the logic independent of the backend.
package filter

import (
	"fmt"
	"strings"
	"time"

	"moviehub/internal/data/entity"
)

// MovieCriteria holds the optional search filters. Nil / empty fields add no
// constraint. Inconsistent input (min above max) is accepted and simply
// matches nothing.
type MovieCriteria struct {
	Title          *string
	Genres         []string
	MinRating      *float64
	MaxRating      *float64
	ReleasedAfter  *time.Time
	ReleasedBefore *time.Time
}

// Matches evaluates the criteria against a movie in memory.
func (c MovieCriteria) Matches(m *entity.Movie) bool {
	if c.Title != nil && !strings.Contains(strings.ToLower(m.Title), strings.ToLower(*c.Title)) {
		return false
	}

	if len(c.Genres) > 0 {
		found := false
		for _, genre := range c.Genres {
			if m.Genre == genre {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if c.MinRating != nil && m.Rating < *c.MinRating {
		return false
	}
	if c.MaxRating != nil && m.Rating > *c.MaxRating {
		return false
	}

	if c.ReleasedAfter != nil && m.ReleaseDate.Before(*c.ReleasedAfter) {
		return false
	}
	if c.ReleasedBefore != nil && m.ReleaseDate.After(*c.ReleasedBefore) {
		return false
	}

	return true
}

// Where renders the criteria as a parameterized SQL conjunction starting at
// placeholder $argPos. An empty criteria renders to the empty string.
func (c MovieCriteria) Where(argPos int) (string, []any) {
	var clauses []string
	var args []any

	appendClause := func(format string, arg any) {
		clauses = append(clauses, fmt.Sprintf(format, argPos))
		args = append(args, arg)
		argPos++
	}

	if c.Title != nil {
		appendClause("LOWER(title) LIKE $%d", "%"+strings.ToLower(*c.Title)+"%")
	}
	if len(c.Genres) > 0 {
		appendClause("genre = ANY($%d)", c.Genres)
	}
	if c.MinRating != nil {
		appendClause("rating >= $%d", *c.MinRating)
	}
	if c.MaxRating != nil {
		appendClause("rating <= $%d", *c.MaxRating)
	}
	if c.ReleasedAfter != nil {
		appendClause("release_date >= $%d", *c.ReleasedAfter)
	}
	if c.ReleasedBefore != nil {
		appendClause("release_date <= $%d", *c.ReleasedBefore)
	}

	if len(clauses) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}
