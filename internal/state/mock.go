// internal/state/mock.go
package state

import "sync"

// Mock is a test double for Manager.
type Mock struct {
	mu     sync.Mutex
	genres map[string]string
	saves  int
	closed bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{genres: make(map[string]string)}
}

func (m *Mock) LastGenre(dataFile string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.genres[dataFile], nil
}

func (m *Mock) SaveLastGenre(dataFile, genre string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.genres[dataFile] = genre
	m.saves++
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Saves returns how many times SaveLastGenre was called.
func (m *Mock) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// IsClosed reports whether Close was called.
func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

var _ Interface = (*Mock)(nil)
