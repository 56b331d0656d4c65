// Package styles defines the color palette and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	Primary   lipgloss.Color // cursor row, titles
	Secondary lipgloss.Color // ratings

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgCursor lipgloss.Color

	Border lipgloss.Color
	Error  lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base   lipgloss.Style
	Muted  lipgloss.Style
	Subtle lipgloss.Style
	Title  lipgloss.Style
	Rating lipgloss.Style
	Cursor lipgloss.Style
	Panel  lipgloss.Style
	Error  lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgCursor: lipgloss.Color("#303030"),

	Border: lipgloss.Color("#585858"),
	Error:  lipgloss.Color("#ff5555"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Rating: lipgloss.NewStyle().Foreground(t.Secondary),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.Primary).
			Bold(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		Error: lipgloss.NewStyle().Foreground(t.Error),
	}
}
