// internal/app/messages.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/movierec/internal/recommend"
)

// RecommendationsMsg carries the answer to a genre query.
type RecommendationsMsg struct {
	Genre   string
	Results []recommend.Recommendation
}

func recommendCmd(engine recommend.Engine, genre string, limit int) tea.Cmd {
	return func() tea.Msg {
		return RecommendationsMsg{
			Genre:   genre,
			Results: engine.Recommend(genre, limit),
		}
	}
}
