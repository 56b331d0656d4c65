package list

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func numbers(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func newList(n, height, margin int) Model[int] {
	m := New[int](margin)
	m.SetHeight(height)
	m.SetItems(numbers(n))
	return m
}

func TestUpdate_Navigation(t *testing.T) {
	tests := []struct {
		name    string
		keys    []string
		wantPos int
	}{
		{"down", []string{"j"}, 1},
		{"arrow down twice", []string{"down", "down"}, 2},
		{"up clamps at top", []string{"k", "up"}, 0},
		{"end", []string{"G"}, 19},
		{"end key", []string{"end"}, 19},
		{"end then home", []string{"G", "g"}, 0},
		{"home key", []string{"j", "j", "home"}, 0},
		{"half page down", []string{"ctrl+d"}, 2},
		{"half page up clamps", []string{"ctrl+d", "ctrl+u", "ctrl+u"}, 0},
		{"down clamps at bottom", []string{"G", "j", "j"}, 19},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newList(20, 5, 1)
			for _, k := range tt.keys {
				m.Update(key(k))
			}
			assert.Equal(t, tt.wantPos, m.SelectedIndex())

			start, end := m.VisibleRange()
			assert.True(t, start <= m.SelectedIndex() && m.SelectedIndex() < end,
				"cursor %d outside visible range [%d, %d)", m.SelectedIndex(), start, end)
		})
	}
}

func TestUpdate_IgnoresOtherInput(t *testing.T) {
	m := newList(3, 5, 0)
	m.Update(key("j"))

	for _, msg := range []tea.Msg{key("enter"), key("x"), tea.WindowSizeMsg{Width: 10, Height: 10}} {
		m.Update(msg)
		assert.Equal(t, 1, m.SelectedIndex(), "after %v", msg)
	}
}

func TestUpdate_EmptyList(t *testing.T) {
	m := New[string](2)
	m.SetHeight(5)

	m.Update(key("enter"))
	m.Update(key("j"))

	_, ok := m.Selected()
	assert.False(t, ok)
	assert.Equal(t, 0, m.SelectedIndex())
	start, end := m.VisibleRange()
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}

func TestScroll_Margin(t *testing.T) {
	m := newList(20, 5, 1)

	// Rows 0..4 visible; moving to 4 leaves one row of margin below.
	for range 3 {
		m.Update(key("j"))
	}
	assert.Equal(t, 3, m.SelectedIndex())
	assert.Equal(t, 0, m.Offset())

	m.Update(key("j"))
	assert.Equal(t, 4, m.SelectedIndex())
	assert.Equal(t, 1, m.Offset())

	m.Update(key("G"))
	start, end := m.VisibleRange()
	assert.Equal(t, 15, start)
	assert.Equal(t, 20, end)
}

func TestSetItems_ClampsCursor(t *testing.T) {
	m := newList(10, 4, 0)
	m.Update(key("G"))
	assert.Equal(t, 9, m.SelectedIndex())

	m.SetItems(numbers(3))
	assert.Equal(t, 2, m.SelectedIndex())
	item, ok := m.Selected()
	assert.True(t, ok)
	assert.Equal(t, 2, item)
}

func TestSelect(t *testing.T) {
	m := newList(10, 4, 0)

	m.Select(7)
	assert.Equal(t, 7, m.SelectedIndex())
	start, end := m.VisibleRange()
	assert.Equal(t, 4, start)
	assert.Equal(t, 8, end)

	m.Select(-5)
	assert.Equal(t, 0, m.SelectedIndex())
	m.Select(50)
	assert.Equal(t, 9, m.SelectedIndex())
}

func TestVisibleRange_ShortList(t *testing.T) {
	m := newList(3, 10, 2)
	start, end := m.VisibleRange()
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)
}
