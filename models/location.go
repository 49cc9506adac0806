package models

import (
	"errors"
	"strings"
)

// ErrEmptyLocation is returned when no usable location term was given
var ErrEmptyLocation = errors.New("no location entered")

// Location is the query string sent to the weather API, e.g. "Ames,IA,USA"
type Location struct {
	query string
}

// NewLocation joins free-form location terms into a single comma-separated query.
// Surrounding whitespace and commas are stripped from each term and empty terms are dropped.
func NewLocation(terms ...string) (Location, error) {
	parts := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.Trim(term, " \t\r\n,")
		if term == "" {
			continue
		}
		parts = append(parts, term)
	}

	if len(parts) == 0 {
		return Location{}, ErrEmptyLocation
	}

	return Location{query: strings.Join(parts, ",")}, nil
}

// String returns the query string
func (l Location) String() string {
	return l.query
}

// IsZero reports whether the location was never set
func (l Location) IsZero() bool {
	return l.query == ""
}

// Segments returns the comma-separated parts of the query
func (l Location) Segments() []string {
	if l.query == "" {
		return nil
	}
	return strings.Split(l.query, ",")
}
