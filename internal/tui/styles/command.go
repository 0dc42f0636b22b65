package styles

import "github.com/charmbracelet/lipgloss"

var (
	// CommandPrompt is the style for the ":" prompt.
	CommandPrompt = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFCC00")).
			Bold(true)

	// CommandInput is the style for the active command input text.
	CommandInput = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"})

	// CommandSuggestion is the style for autocomplete suggestions.
	CommandSuggestion = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#888888"))
)
