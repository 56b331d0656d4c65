// Package recommend answers "top-N highest rated movies for a genre" over a
// loaded catalog.
package recommend

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/llehouerou/movierec/internal/catalog"
	"github.com/llehouerou/movierec/internal/logging"
)

// DefaultLimit is the number of recommendations returned when the caller has
// no preference.
const DefaultLimit = 5

// Recommendation is the projection of a matched record shown to the user.
type Recommendation struct {
	Title       string
	Year        int
	Rating      float64
	Description string
}

// Engine answers genre queries. Implementations never return an error from
// Recommend: faults degrade to an empty result.
type Engine interface {
	Genres() []string
	Recommend(genre string, limit int) []Recommendation
}

// Recommender is the in-memory Engine over a catalog.
type Recommender struct {
	catalog *catalog.Catalog
}

var _ Engine = (*Recommender)(nil)

// New returns a Recommender over c.
func New(c *catalog.Catalog) *Recommender {
	return &Recommender{catalog: c}
}

// Genres returns the catalog's distinct genre labels in ascending order.
func (r *Recommender) Genres() []string {
	return r.catalog.Genres()
}

// Recommend returns up to limit movies carrying genre, highest rating first.
func (r *Recommender) Recommend(genre string, limit int) []Recommendation {
	return Recommend(r.catalog, genre, limit)
}

// Recommend selects the rated records of c carrying genre (exact match),
// orders them by rating descending and returns the first limit as
// projections. Equal ratings keep catalog order. An unknown genre or a non-positive limit
// yields an empty slice. A fault while selecting or sorting is logged and
// also yields an empty slice.
func Recommend(c *catalog.Catalog, genre string, limit int) []Recommendation {
	return Guard(genre, limit, func() []Recommendation {
		return topN(c, genre, limit)
	})
}

// Guard runs query and maps a panic to a logged, empty result. Engines wrap
// their selection and sorting in it.
func Guard(genre string, limit int, query func() []Recommendation) (recs []Recommendation) {
	defer func() {
		if p := recover(); p != nil {
			logging.Error().
				Str("genre", genre).
				Int("limit", limit).
				Str("panic", fmt.Sprint(p)).
				Msg("recommendation failed")
			recs = []Recommendation{}
		}
	}()
	return query()
}

func topN(c *catalog.Catalog, genre string, limit int) []Recommendation {
	if limit <= 0 || c == nil {
		return []Recommendation{}
	}

	var matches []catalog.Record
	for _, rec := range c.Records() {
		if !rec.Unrated && rec.HasGenre(genre) {
			matches = append(matches, rec)
		}
	}

	slices.SortStableFunc(matches, func(a, b catalog.Record) int {
		return cmp.Compare(b.Rating, a.Rating)
	})

	n := min(limit, len(matches))
	recs := make([]Recommendation, n)
	for i, rec := range matches[:n] {
		recs[i] = project(rec)
	}

	logging.Debug().
		Str("genre", genre).
		Int("matches", len(matches)).
		Int("returned", n).
		Msg("recommend")
	return recs
}

func project(r catalog.Record) Recommendation {
	return Recommendation{
		Title:       r.Title,
		Year:        r.Year,
		Rating:      r.Rating,
		Description: r.Description,
	}
}
