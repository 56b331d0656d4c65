package state

import (
	"database/sql"
)

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS genre_selection (
			data_file TEXT PRIMARY KEY,
			genre TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		);
	`)
	return err
}
