package index

import (
	"context"
	"database/sql"
)

func initSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE movies (
			id INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			year INTEGER NOT NULL,
			rating REAL, -- NULL when unrated
			description TEXT
		);

		CREATE TABLE movie_genres (
			movie_id INTEGER NOT NULL REFERENCES movies(id),
			genre TEXT NOT NULL,
			PRIMARY KEY (genre, movie_id)
		) WITHOUT ROWID;

		CREATE INDEX idx_movies_rating ON movies(rating DESC, id);
	`)
	return err
}
