package tui

import "github.com/charmbracelet/lipgloss"

// Static styles for content elements
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	PairStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7"))

	SuitedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4"))

	OffsuitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	CursorStyle = lipgloss.NewStyle().
			Reverse(true).
			Bold(true)

	RankStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(0, 1)

	ActivePaneStyle = PaneStyle.
			BorderForeground(lipgloss.Color("#04B575"))
)

// selectedBackground maps a theme to the background of selected cells.
var selectedBackground = map[string]lipgloss.Color{
	"default": lipgloss.Color("#7D56F4"),
	"dark":    lipgloss.Color("#04B575"),
	"light":   lipgloss.Color("#FF6B6B"),
}

// selectedStyle returns the style for a selected cell under the theme.
func selectedStyle(theme string) lipgloss.Style {
	bg, ok := selectedBackground[theme]
	if !ok {
		bg = selectedBackground["default"]
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(bg).
		Bold(true)
}
