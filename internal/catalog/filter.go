package catalog

import (
	"strings"

	"github.com/handiism/album-catalog/internal/model"
)

// Filter returns the records whose band, album or year contains query,
// ignoring case. Matches keep their relative order; there is no ranking.
// An empty query matches every record.
func Filter(query string, records []model.Album) []model.Album {
	q := strings.ToLower(query)

	matched := make([]model.Album, 0, len(records))
	for _, r := range records {
		if Matches(q, r) {
			matched = append(matched, r)
		}
	}
	return matched
}

// Matches reports whether the already lowercased query is a substring of
// the record's band, album or year text.
func Matches(lowerQuery string, r model.Album) bool {
	return strings.Contains(strings.ToLower(r.Band), lowerQuery) ||
		strings.Contains(strings.ToLower(r.Album), lowerQuery) ||
		strings.Contains(r.Year.String(), lowerQuery)
}

// Catalog holds the record sequence loaded for the session.
type Catalog struct {
	all []model.Album
}

// New creates a Catalog over a private copy of records.
func New(records []model.Album) *Catalog {
	all := make([]model.Album, len(records))
	copy(all, records)
	return &Catalog{all: all}
}

// Len returns the number of loaded records.
func (c *Catalog) Len() int {
	return len(c.all)
}

// All returns a copy of the loaded sequence.
func (c *Catalog) All() []model.Album {
	return Filter("", c.all)
}

// Search filters the loaded sequence, never a previous result.
func (c *Catalog) Search(query string) []model.Album {
	return Filter(query, c.all)
}
