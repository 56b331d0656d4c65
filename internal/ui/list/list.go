// Package list provides a generic scrollable list with keyboard navigation.
package list

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Model is a scrollable list. The parent renders the rows returned by
// VisibleRange and highlights SelectedIndex.
type Model[T any] struct {
	items  []T
	pos    int // cursor position
	offset int // first visible item
	margin int // rows kept visible above/below the cursor
	height int // visible rows
}

// New creates a list with the given scroll margin.
func New[T any](margin int) Model[T] {
	return Model[T]{margin: margin}
}

// SetItems replaces all items and clamps the cursor to bounds.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.pos = clamp(m.pos, len(items)-1)
	m.scroll()
}

// SetHeight sets the number of visible rows.
func (m *Model[T]) SetHeight(height int) {
	m.height = max(height, 0)
	m.scroll()
}

// Height returns the number of visible rows.
func (m Model[T]) Height() int {
	return m.height
}

// Items returns the current items slice.
func (m Model[T]) Items() []T {
	return m.items
}

// Len returns the number of items.
func (m Model[T]) Len() int {
	return len(m.items)
}

// Selected returns the item under the cursor, or false if the list is empty.
func (m Model[T]) Selected() (T, bool) {
	if len(m.items) == 0 {
		var zero T
		return zero, false
	}
	return m.items[m.pos], true
}

// SelectedIndex returns the cursor position.
func (m Model[T]) SelectedIndex() int {
	return m.pos
}

// Offset returns the index of the first visible item.
func (m Model[T]) Offset() int {
	return m.offset
}

// VisibleRange returns [start, end) indices for rendering.
func (m Model[T]) VisibleRange() (start, end int) {
	if len(m.items) == 0 || m.height <= 0 {
		return 0, 0
	}
	return m.offset, min(m.offset+m.height, len(m.items))
}

// Select moves the cursor to index i, clamped to bounds.
func (m *Model[T]) Select(i int) {
	m.pos = clamp(i, len(m.items)-1)
	m.scroll()
}

// Update handles navigation keys: j/down, k/up, g/home, G/end,
// ctrl+d/pgdown (half page down) and ctrl+u/pgup (half page up). Selection
// keys belong to the parent.
func (m *Model[T]) Update(msg tea.Msg) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(m.items) == 0 {
		return
	}

	half := max(m.height/2, 1)
	switch key.String() {
	case "j", "down":
		m.move(1)
	case "k", "up":
		m.move(-1)
	case "g", "home":
		m.move(-len(m.items))
	case "G", "end":
		m.move(len(m.items))
	case "ctrl+d", "pgdown":
		m.move(half)
	case "ctrl+u", "pgup":
		m.move(-half)
	}
}

func (m *Model[T]) move(delta int) {
	m.pos = clamp(m.pos+delta, len(m.items)-1)
	m.scroll()
}

// scroll keeps the cursor inside the viewport, honoring the margin.
func (m *Model[T]) scroll() {
	if m.height <= 0 || len(m.items) == 0 {
		m.offset = 0
		return
	}
	margin := min(m.margin, (m.height-1)/2)

	if m.pos < m.offset+margin {
		m.offset = m.pos - margin
	}
	if m.pos >= m.offset+m.height-margin {
		m.offset = m.pos - m.height + margin + 1
	}
	m.offset = clamp(m.offset, max(len(m.items)-m.height, 0))
}

func clamp(v, maxVal int) int {
	if v > maxVal {
		v = maxVal
	}
	if v < 0 {
		return 0
	}
	return v
}
