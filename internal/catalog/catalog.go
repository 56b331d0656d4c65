// Package catalog holds the in-memory movie table and its genre index.
package catalog

import (
	"slices"
	"strings"
)

// GenreSeparator splits a multi-valued genre cell into labels.
const GenreSeparator = ", "

// Record is one movie row. It is not modified after load.
type Record struct {
	Title       string
	Year        int // 0 when the cell is blank
	Rating      float64
	Unrated     bool // rating cell blank; the record is never recommended
	Description string
	Genres      []string // deduplicated, in cell order; nil when the cell is empty or absent
}

// HasGenre reports whether the record carries the label. Matching is exact
// and case-sensitive.
func (r Record) HasGenre(genre string) bool {
	return slices.Contains(r.Genres, genre)
}

// Catalog is the loaded movie table plus the sorted set of every genre label
// seen across its records.
type Catalog struct {
	records []Record
	genres  []string
}

// New builds a catalog from already parsed records and derives the genre set.
func New(records []Record) *Catalog {
	return &Catalog{
		records: records,
		genres:  distinctGenres(records),
	}
}

// Records returns the records in load order. Callers must not modify the slice.
func (c *Catalog) Records() []Record {
	return c.records
}

// Genres returns the distinct genre labels in ascending order.
// Callers must not modify the slice.
func (c *Catalog) Genres() []string {
	return c.genres
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// HasGenre reports whether any record carries the label.
func (c *Catalog) HasGenre(genre string) bool {
	_, found := slices.BinarySearch(c.genres, genre)
	return found
}

// ParseGenres splits a genre cell into trimmed labels. Empty labels and
// repeats are dropped. An empty cell yields nil.
func ParseGenres(cell string) []string {
	if strings.TrimSpace(cell) == "" {
		return nil
	}
	var labels []string
	for part := range strings.SplitSeq(cell, GenreSeparator) {
		label := strings.TrimSpace(part)
		if label == "" || slices.Contains(labels, label) {
			continue
		}
		labels = append(labels, label)
	}
	return labels
}

func distinctGenres(records []Record) []string {
	seen := make(map[string]struct{})
	for _, r := range records {
		for _, g := range r.Genres {
			seen[g] = struct{}{}
		}
	}
	genres := make([]string, 0, len(seen))
	for g := range seen {
		genres = append(genres, g)
	}
	slices.Sort(genres)
	return genres
}
