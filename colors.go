package stygen

import "github.com/charmbracelet/lipgloss"

// Terminal styles for consistent output formatting across reporters.
// Lipgloss automatically degrades colors based on terminal capabilities.
// Named *Text because Style already means an icon style in this package.
var (
	// cyanText is used for file locations, section headers, and statistics headers.
	cyanText = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// redText is used for error sections and failure messages.
	redText = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// yellowText is used for warning sections and caret indicators.
	yellowText = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// greenText is used for quick wins, recommendations, and success messages.
	greenText = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// grayText is used for linter names and hints.
	grayText = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// colorize applies a lipgloss style to text when colors are enabled.
// When useColors is false, the text is returned unmodified.
func colorize(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}
