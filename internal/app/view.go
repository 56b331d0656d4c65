// internal/app/view.go
package app

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/movierec/internal/keymap"
	"github.com/llehouerou/movierec/internal/ui"
	"github.com/llehouerou/movierec/internal/ui/render"
	"github.com/llehouerou/movierec/internal/ui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.screen == ScreenResults {
		return m.resultsView()
	}
	return m.genresView()
}

func (m Model) genresView() string {
	s := styles.T().S()
	cw := m.ContentWidth()

	counts := fmt.Sprintf("%s genres · %s movies",
		humanize.Comma(int64(m.genres.Len())), humanize.Comma(int64(m.movies)))
	lines := []string{
		render.Row(s.Title.Render("Available genres"), s.Muted.Render(counts), cw),
		s.Subtle.Render(render.Separator(cw)),
	}

	height := m.ListHeight(ui.PanelOverhead)
	if m.genres.Len() == 0 {
		lines = append(lines, s.Muted.Render("No genres in catalog"))
	} else {
		items := m.genres.Items()
		start, end := m.genres.VisibleRange()
		for i := start; i < end; i++ {
			row := render.TruncateAndPad(fmt.Sprintf("%3d. %s", i+1, items[i]), cw)
			if i == m.genres.SelectedIndex() {
				row = s.Cursor.Render(row)
			} else {
				row = s.Base.Render(row)
			}
			lines = append(lines, row)
		}
	}
	lines = padLines(lines, height+2)

	return m.panel(lines, keymap.Help(keymap.ContextGenres, keymap.ContextGlobal))
}

func (m Model) resultsView() string {
	s := styles.T().S()
	cw := m.ContentWidth()

	lines := []string{
		s.Title.Render(render.Truncate(fmt.Sprintf("Top %d %s movies", m.limit, m.genre), cw)),
		s.Subtle.Render(render.Separator(cw)),
	}

	body := m.resultLines()
	height := m.ListHeight(ui.PanelOverhead)
	end := min(m.scroll+height, len(body))
	lines = append(lines, body[m.scroll:end]...)
	lines = padLines(lines, height+2)

	return m.panel(lines, keymap.Help(keymap.ContextResults, keymap.ContextGlobal))
}

// resultLines renders every recommendation, unclipped, for the results screen.
func (m Model) resultLines() []string {
	s := styles.T().S()
	cw := m.ContentWidth()

	if len(m.results) == 0 {
		return []string{s.Muted.Render(render.Truncate("No movies found for genre: "+m.genre, cw))}
	}

	var lines []string
	for i, r := range m.results {
		if i > 0 {
			lines = append(lines, "")
		}
		heading := fmt.Sprintf("%d. %s", i+1, render.TitleYear(r.Title, r.Year))
		lines = append(lines,
			s.Title.Render(render.Truncate(heading, cw)),
			"   "+s.Rating.Render("Rating: "+render.Rating(r.Rating)+"/10"),
		)
		for _, l := range render.Indent(render.Wrap(r.Description, cw-3), 3) {
			lines = append(lines, s.Base.Render(l))
		}
	}
	return lines
}

func (m Model) panel(lines []string, help string) string {
	s := styles.T().S()
	cw := m.ContentWidth()

	lines = append(lines,
		s.Subtle.Render(render.Separator(cw)),
		s.Muted.Render(render.Truncate(help, cw)),
	)
	return s.Panel.Width(cw + 2).Render(strings.Join(lines, "\n"))
}

func padLines(lines []string, n int) []string {
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines
}
