// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/movierec/internal/keymap"
	"github.com/llehouerou/movierec/internal/ui"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.genres.SetHeight(m.ListHeight(ui.PanelOverhead))
		m.scroll = m.clampScroll(m.scroll)
		return m, nil

	case RecommendationsMsg:
		m.genre = msg.Genre
		m.results = msg.Results
		m.scroll = 0
		m.screen = ScreenResults
		return m, nil

	case tea.KeyMsg:
		if m.screen == ScreenResults {
			return m.handleResultsKey(msg)
		}
		return m.handleGenresKey(msg)
	}

	return m, nil
}

func (m Model) handleGenresKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.genreKeys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionSelect:
		if genre, ok := m.genres.Selected(); ok {
			if m.history != nil {
				m.history.SaveLastGenre(m.dataFile, genre)
			}
			return m, recommendCmd(m.engine, genre, m.limit)
		}
		return m, nil
	}

	m.genres.Update(msg)
	return m, nil
}

func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.resultsKeys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionBack:
		m.screen = ScreenGenres
		m.scroll = 0
		return m, nil
	}

	page := max(m.ListHeight(ui.PanelOverhead)/2, 1)
	switch msg.String() {
	case "j", "down":
		m.scroll = m.clampScroll(m.scroll + 1)
	case "k", "up":
		m.scroll = m.clampScroll(m.scroll - 1)
	case "ctrl+d", "pgdown":
		m.scroll = m.clampScroll(m.scroll + page)
	case "ctrl+u", "pgup":
		m.scroll = m.clampScroll(m.scroll - page)
	case "g", "home":
		m.scroll = 0
	case "G", "end":
		m.scroll = m.clampScroll(len(m.resultLines()))
	}
	return m, nil
}

func (m Model) clampScroll(v int) int {
	maxScroll := max(len(m.resultLines())-m.ListHeight(ui.PanelOverhead), 0)
	return min(max(v, 0), maxScroll)
}
