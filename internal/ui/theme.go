package ui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Grid     lipgloss.Style
	Hint     lipgloss.Style
	Error    lipgloss.Style
	Event    lipgloss.Style
	Selected lipgloss.Style
}

var DefaultTheme = Theme{
	Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	Label:    lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#89B4FA")),
	Value:    lipgloss.NewStyle().Foreground(lipgloss.Color("#F2CDCD")),
	Grid:     lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#6C7086")),
	Hint:     lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#CBA6F7")),
	Error:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
	Event:    lipgloss.NewStyle().Foreground(lipgloss.Color("#1E1E2E")).Background(lipgloss.Color("#89B4FA")),
	Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("#1E1E2E")).Background(lipgloss.Color("#F9E2AF")),
}

// categoryColors cycles event background colors by category so adjacent
// categories stay distinguishable.
var categoryColors = []lipgloss.Color{
	"#89B4FA", "#A6E3A1", "#F9E2AF", "#F38BA8", "#CBA6F7", "#94E2D5",
}

func (t Theme) EventStyle(category string) lipgloss.Style {
	var sum int
	for _, r := range category {
		sum += int(r)
	}
	color := categoryColors[sum%len(categoryColors)]
	return t.Event.Background(color)
}
