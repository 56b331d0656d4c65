// Package state persists small bits of session state (the last chosen genre)
// between runs in an SQLite file under the XDG data directory.
package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/llehouerou/movierec/internal/logging"
)

const (
	appName      = "movierec"
	dbFileName   = "state.db"
	saveDebounce = 500 * time.Millisecond
)

// Manager owns the state database and debounces writes to it.
type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *Selection
}

// Open opens the state database at its default location.
func Open() (*Manager, error) {
	dbPath, err := xdg.DataFile(filepath.Join(appName, dbFileName))
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens (creating if needed) the state database at dbPath.
func OpenPath(dbPath string) (*Manager, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

// Close flushes a pending save and closes the database.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	if pending != nil {
		m.save(*pending)
	}

	return m.db.Close()
}

// LastGenre returns the genre last chosen for the catalog at dataFile, or ""
// if none was saved.
func (m *Manager) LastGenre(dataFile string) (string, error) {
	sel, err := getSelection(m.db, dataFile)
	if err != nil || sel == nil {
		return "", err
	}
	return sel.Genre, nil
}

// SaveLastGenre records genre for dataFile. Writes are debounced so rapid
// selections cost one write.
func (m *Manager) SaveLastGenre(dataFile, genre string) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &Selection{DataFile: dataFile, Genre: genre}

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			m.save(*pending)
		}
	})
}

func (m *Manager) save(sel Selection) {
	if err := saveSelection(m.db, sel); err != nil {
		logging.Warn().Err(err).Str("genre", sel.Genre).Msg("saving last genre failed")
	}
}
