// Package index serves genre queries from an in-memory SQLite copy of a
// catalog. It answers exactly like recommend.Recommender; the catalog's id
// order doubles as the tie-break for equal ratings.
package index

import (
	"context"
	"database/sql"

	"github.com/llehouerou/movierec/internal/catalog"
	dbutil "github.com/llehouerou/movierec/internal/db"
	"github.com/llehouerou/movierec/internal/logging"
	"github.com/llehouerou/movierec/internal/recommend"
)

// Index is a recommend.Engine backed by SQLite.
type Index struct {
	db     *sql.DB
	genres []string
}

var _ recommend.Engine = (*Index)(nil)

// Build copies c into a fresh in-memory database.
func Build(ctx context.Context, c *catalog.Catalog) (*Index, error) {
	db, err := dbutil.OpenMemory()
	if err != nil {
		return nil, err
	}
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	if err := populate(ctx, db, c.Records()); err != nil {
		db.Close()
		return nil, err
	}

	logging.Info().
		Int("records", c.Len()).
		Int("genres", len(c.Genres())).
		Msg("sqlite index built")
	return &Index{db: db, genres: c.Genres()}, nil
}

func populate(ctx context.Context, db *sql.DB, records []catalog.Record) error {
	return dbutil.WithTx(ctx, db, func(tx *sql.Tx) error {
		movieStmt, err := tx.PrepareContext(ctx, `
			INSERT INTO movies (id, title, year, rating, description) VALUES (?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer movieStmt.Close()

		genreStmt, err := tx.PrepareContext(ctx, `
			INSERT OR IGNORE INTO movie_genres (movie_id, genre) VALUES (?, ?)
		`)
		if err != nil {
			return err
		}
		defer genreStmt.Close()

		for i, r := range records {
			rating := sql.NullFloat64{Float64: r.Rating, Valid: !r.Unrated}
			if _, err := movieStmt.ExecContext(ctx, i, r.Title, r.Year, rating, dbutil.NullString(r.Description)); err != nil {
				return err
			}
			for _, g := range r.Genres {
				if _, err := genreStmt.ExecContext(ctx, i, g); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// Genres returns the catalog's distinct genre labels in ascending order.
func (x *Index) Genres() []string {
	return x.genres
}

// Recommend returns up to limit rated movies carrying genre, highest rating
// first. Query failures and panics are logged and yield an empty slice.
func (x *Index) Recommend(genre string, limit int) []recommend.Recommendation {
	return recommend.Guard(genre, limit, func() []recommend.Recommendation {
		recs, err := x.query(context.Background(), genre, limit)
		if err != nil {
			logging.Error().
				Err(err).
				Str("genre", genre).
				Int("limit", limit).
				Msg("sqlite recommendation failed")
			return []recommend.Recommendation{}
		}
		return recs
	})
}

func (x *Index) query(ctx context.Context, genre string, limit int) ([]recommend.Recommendation, error) {
	recs := []recommend.Recommendation{}
	if limit <= 0 {
		return recs, nil
	}

	rows, err := x.db.QueryContext(ctx, `
		SELECT m.title, m.year, m.rating, m.description
		FROM movies m
		JOIN movie_genres g ON g.movie_id = m.id
		WHERE g.genre = ? AND m.rating IS NOT NULL
		ORDER BY m.rating DESC, m.id
		LIMIT ?
	`, genre, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var r recommend.Recommendation
		var description sql.NullString
		if err := rows.Scan(&r.Title, &r.Year, &r.Rating, &description); err != nil {
			return nil, err
		}
		r.Description = dbutil.NullStringValue(description)
		recs = append(recs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}

// distinctGenres recomputes the genre set from the database.
func (x *Index) distinctGenres(ctx context.Context) ([]string, error) {
	rows, err := x.db.QueryContext(ctx, `
		SELECT DISTINCT genre FROM movie_genres ORDER BY genre
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var genres []string
	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

// Close releases the database.
func (x *Index) Close() error {
	return x.db.Close()
}
