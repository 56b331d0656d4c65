// internal/app/app.go
package app

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/movierec/internal/keymap"
	"github.com/llehouerou/movierec/internal/logging"
	"github.com/llehouerou/movierec/internal/recommend"
	"github.com/llehouerou/movierec/internal/state"
	"github.com/llehouerou/movierec/internal/ui"
	"github.com/llehouerou/movierec/internal/ui/list"
)

// Screen is the view currently shown.
type Screen int

const (
	ScreenGenres Screen = iota
	ScreenResults
)

// Model is the root application model.
type Model struct {
	ui.Base

	engine recommend.Engine
	movies int // catalog size, for the header
	limit  int

	screen Screen
	genres list.Model[string]

	genre   string
	results []recommend.Recommendation
	scroll  int // first visible line of the results screen

	genreKeys   *keymap.Resolver
	resultsKeys *keymap.Resolver

	history  state.Interface // nil disables remembering the last genre
	dataFile string
}

// New creates the model. movies is the catalog size shown in the header;
// limit is the number of recommendations per query.
func New(engine recommend.Engine, movies, limit int) Model {
	if limit <= 0 {
		limit = recommend.DefaultLimit
	}
	genres := list.New[string](ui.ScrollMargin)
	genres.SetItems(engine.Genres())

	return Model{
		engine:      engine,
		movies:      movies,
		limit:       limit,
		genres:      genres,
		genreKeys:   keymap.NewResolver(keymap.ContextGlobal, keymap.ContextGenres),
		resultsKeys: keymap.NewResolver(keymap.ContextGlobal, keymap.ContextResults),
	}
}

// WithHistory moves the cursor to the genre last chosen for dataFile and
// records later choices in st.
func (m Model) WithHistory(st state.Interface, dataFile string) Model {
	m.history = st
	m.dataFile = dataFile

	genre, err := st.LastGenre(dataFile)
	if err != nil {
		logging.Warn().Err(err).Msg("reading last genre failed")
		return m
	}
	if i := slices.Index(m.genres.Items(), genre); i >= 0 {
		m.genres.Select(i)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Screen returns the active screen.
func (m Model) Screen() Screen {
	return m.screen
}

// Genre returns the genre of the results screen.
func (m Model) Genre() string {
	return m.genre
}

// Results returns the recommendations of the results screen.
func (m Model) Results() []recommend.Recommendation {
	return m.results
}

// Run starts the program on the alternate screen and blocks until it quits.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
