package state

import (
	"database/sql"
	"errors"
	"time"
)

// Selection is the last genre chosen for one catalog file.
type Selection struct {
	DataFile string
	Genre    string
}

func getSelection(db *sql.DB, dataFile string) (*Selection, error) {
	sel := Selection{DataFile: dataFile}
	err := db.QueryRow(`SELECT genre FROM genre_selection WHERE data_file = ?`, dataFile).Scan(&sel.Genre)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}
	return &sel, nil
}

func saveSelection(db *sql.DB, sel Selection) error {
	_, err := db.Exec(`
		INSERT INTO genre_selection (data_file, genre, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(data_file) DO UPDATE SET
			genre = excluded.genre,
			updated_at = excluded.updated_at
	`, sel.DataFile, sel.Genre, time.Now().Unix())
	return err
}
