package app

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/movierec/internal/recommend"
	"github.com/llehouerou/movierec/internal/state"
	"github.com/llehouerou/movierec/internal/ui/testutil"
)

type fakeEngine struct {
	genres  []string
	results map[string][]recommend.Recommendation
	calls   []string
	limits  []int
}

func (f *fakeEngine) Genres() []string { return f.genres }

func (f *fakeEngine) Recommend(genre string, limit int) []recommend.Recommendation {
	f.calls = append(f.calls, genre)
	f.limits = append(f.limits, limit)
	if recs, ok := f.results[genre]; ok {
		return recs
	}
	return []recommend.Recommendation{}
}

func newEngine() *fakeEngine {
	return &fakeEngine{
		genres: []string{"Comedy", "Drama", "Horror"},
		results: map[string][]recommend.Recommendation{
			"Comedy": {
				{Title: "B", Year: 2001, Rating: 9.0, Description: "y"},
				{Title: "C", Year: 1999, Rating: 7.0, Description: "z"},
			},
			"Drama": {
				{Title: "B", Year: 2001, Rating: 9.0, Description: "y"},
				{Title: "A", Year: 2000, Rating: 8.5, Description: "x"},
			},
		},
	}
}

func sized(m Model, w, h int) Model {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return updated.(Model)
}

// press sends a key and runs the resulting command, feeding its message back.
func press(t *testing.T, m Model, key string) (Model, tea.Msg) {
	t.Helper()
	updated, cmd := m.Update(testutil.Key(key))
	m = updated.(Model)
	if cmd == nil {
		return m, nil
	}
	msg := cmd()
	if _, ok := msg.(tea.QuitMsg); ok {
		return m, msg
	}
	updated, _ = m.Update(msg)
	return updated.(Model), msg
}

func TestNew_DefaultLimit(t *testing.T) {
	m := New(newEngine(), 3, 0)
	assert.Equal(t, recommend.DefaultLimit, m.limit)

	m = New(newEngine(), 3, -1)
	assert.Equal(t, recommend.DefaultLimit, m.limit)

	m = New(newEngine(), 3, 2)
	assert.Equal(t, 2, m.limit)
}

func TestView_GenreList(t *testing.T) {
	m := sized(New(newEngine(), 1234, 5), 80, 24)
	out := testutil.StripANSI(m.View())

	assert.True(t, testutil.ContainsLine(out, "Available genres"))
	assert.True(t, testutil.ContainsLine(out, "3 genres · 1,234 movies"))
	assert.True(t, testutil.ContainsLine(out, "1. Comedy"))
	assert.True(t, testutil.ContainsLine(out, "2. Drama"))
	assert.True(t, testutil.ContainsLine(out, "3. Horror"))
	assert.True(t, testutil.ContainsLine(out, "enter recommend"))
	assert.Less(t, testutil.LineIndex(out, "1. Comedy"), testutil.LineIndex(out, "3. Horror"))
}

func TestView_EmptyCatalog(t *testing.T) {
	m := sized(New(&fakeEngine{}, 0, 5), 80, 24)
	out := testutil.StripANSI(m.View())
	assert.True(t, testutil.ContainsLine(out, "No genres in catalog"))

	m, msg := press(t, m, "enter")
	assert.Nil(t, msg)
	assert.Equal(t, ScreenGenres, m.Screen())
}

func TestUpdate_SelectGenre(t *testing.T) {
	engine := newEngine()
	m := sized(New(engine, 3, 5), 80, 24)

	m, _ = press(t, m, "j")
	m, msg := press(t, m, "enter")

	require.IsType(t, RecommendationsMsg{}, msg)
	assert.Equal(t, []string{"Drama"}, engine.calls)
	assert.Equal(t, []int{5}, engine.limits)
	assert.Equal(t, ScreenResults, m.Screen())
	assert.Equal(t, "Drama", m.Genre())
	assert.Len(t, m.Results(), 2)

	out := testutil.StripANSI(m.View())
	assert.True(t, testutil.ContainsLine(out, "Top 5 Drama movies"))
	assert.True(t, testutil.ContainsLine(out, "1. B (2001)"))
	assert.True(t, testutil.ContainsLine(out, "Rating: 9.0/10"))
	assert.True(t, testutil.ContainsLine(out, "2. A (2000)"))
	assert.True(t, testutil.ContainsLine(out, "Rating: 8.5/10"))
	assert.Less(t, testutil.LineIndex(out, "1. B"), testutil.LineIndex(out, "2. A"))
}

func TestUpdate_NoMatches(t *testing.T) {
	m := sized(New(newEngine(), 3, 5), 80, 24)

	m, _ = press(t, m, "G")
	m, _ = press(t, m, "enter")

	assert.Equal(t, ScreenResults, m.Screen())
	assert.Empty(t, m.Results())
	out := testutil.StripANSI(m.View())
	assert.True(t, testutil.ContainsLine(out, "No movies found for genre: Horror"))
}

func TestUpdate_BackKeepsCursor(t *testing.T) {
	for _, key := range []string{"esc", "backspace", "h"} {
		t.Run(key, func(t *testing.T) {
			m := sized(New(newEngine(), 3, 5), 80, 24)
			m, _ = press(t, m, "j")
			m, _ = press(t, m, "enter")
			require.Equal(t, ScreenResults, m.Screen())

			m, _ = press(t, m, key)
			assert.Equal(t, ScreenGenres, m.Screen())
			assert.Equal(t, 1, m.genres.SelectedIndex())
		})
	}
}

func TestUpdate_Quit(t *testing.T) {
	tests := []struct {
		name   string
		screen func(t *testing.T, m Model) Model
		key    string
	}{
		{"q on genres", func(_ *testing.T, m Model) Model { return m }, "q"},
		{"ctrl+c on genres", func(_ *testing.T, m Model) Model { return m }, "ctrl+c"},
		{"q on results", func(t *testing.T, m Model) Model {
			m, _ = press(t, m, "enter")
			return m
		}, "q"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.screen(t, sized(New(newEngine(), 3, 5), 80, 24))
			_, msg := press(t, m, tt.key)
			assert.IsType(t, tea.QuitMsg{}, msg)
		})
	}
}

func TestUpdate_ResultsScroll(t *testing.T) {
	var recs []recommend.Recommendation
	for i := range 10 {
		recs = append(recs, recommend.Recommendation{
			Title:       fmt.Sprintf("Movie %d", i+1),
			Year:        2000 + i,
			Rating:      9.5 - float64(i)/10,
			Description: "a plot summary",
		})
	}
	engine := &fakeEngine{
		genres:  []string{"Drama"},
		results: map[string][]recommend.Recommendation{"Drama": recs},
	}
	m := sized(New(engine, 10, 10), 60, 16)
	m, _ = press(t, m, "enter")
	require.Len(t, m.Results(), 10)

	out := testutil.StripANSI(m.View())
	assert.True(t, testutil.ContainsLine(out, "1. Movie 1 (2000)"))
	assert.False(t, testutil.ContainsLine(out, "10. Movie 10"))

	m, _ = press(t, m, "G")
	assert.Positive(t, m.scroll)
	out = testutil.StripANSI(m.View())
	assert.True(t, testutil.ContainsLine(out, "10. Movie 10 (2009)"))
	assert.False(t, testutil.ContainsLine(out, "1. Movie 1 (2000)"))

	bottom := m.scroll
	m, _ = press(t, m, "j")
	assert.Equal(t, bottom, m.scroll)

	m, _ = press(t, m, "k")
	assert.Equal(t, bottom-1, m.scroll)

	m, _ = press(t, m, "g")
	assert.Equal(t, 0, m.scroll)

	m, _ = press(t, m, "k")
	assert.Equal(t, 0, m.scroll)
}

func TestUpdate_ResizeClampsScroll(t *testing.T) {
	var recs []recommend.Recommendation
	for i := range 6 {
		recs = append(recs, recommend.Recommendation{Title: fmt.Sprint(i), Year: 2000, Rating: 5})
	}
	engine := &fakeEngine{genres: []string{"Drama"}, results: map[string][]recommend.Recommendation{"Drama": recs}}
	m := sized(New(engine, 6, 10), 60, 12)
	m, _ = press(t, m, "enter")
	m, _ = press(t, m, "G")
	require.Positive(t, m.scroll)

	m = sized(m, 60, 100)
	assert.Equal(t, 0, m.scroll)
}

func TestWithHistory(t *testing.T) {
	st := state.NewMock()
	st.SaveLastGenre("movies.csv", "Horror")
	st.SaveLastGenre("other.csv", "Western")

	m := sized(New(newEngine(), 3, 5).WithHistory(st, "movies.csv"), 80, 24)
	assert.Equal(t, 2, m.genres.SelectedIndex())

	m, _ = press(t, m, "k")
	m, _ = press(t, m, "enter")
	assert.Equal(t, "Drama", m.Genre())

	genre, err := st.LastGenre("movies.csv")
	require.NoError(t, err)
	assert.Equal(t, "Drama", genre)
	assert.Equal(t, 3, st.Saves())

	m = New(newEngine(), 3, 5).WithHistory(st, "other.csv")
	assert.Equal(t, 0, m.genres.SelectedIndex())
}
