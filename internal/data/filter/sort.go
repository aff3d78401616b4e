package filter

import (
	"fmt"
	"strings"
)

// Sort is a whitelisted order-by over movie columns.
type Sort struct {
	Column     string
	Descending bool
}

// sortColumns maps caller-facing sort fields to movie columns. Anything else
// falls back to the default.
var sortColumns = map[string]string{
	"title":        "title",
	"genre":        "genre",
	"rating":       "rating",
	"release_date": "release_date",
	"releaseDate":  "release_date",
	"created_at":   "created_at",
	"createdAt":    "created_at",
}

// ParseSort resolves the sort field and direction; default is release date
// descending.
func ParseSort(field, direction string) Sort {
	column, ok := sortColumns[field]
	if !ok {
		column = "release_date"
	}

	descending := true
	switch strings.ToLower(direction) {
	case "asc", "ascending":
		descending = false
	}

	return Sort{Column: column, Descending: descending}
}

// OrderBy renders the ORDER BY clause. The id tiebreaker keeps page order
// stable for a given store state.
func (s Sort) OrderBy() string {
	dir := "ASC"
	if s.Descending {
		dir = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s, id", s.Column, dir)
}
