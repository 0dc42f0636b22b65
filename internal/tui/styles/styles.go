// Package styles provides Lip Gloss styles for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/todo-tui/internal/store"
)

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for titles and focused widgets
	Highlight = lipgloss.AdaptiveColor{Light: "#0077CC", Dark: "#0096FF"}

	// SelectedColor marks selected tasks
	SelectedColor = lipgloss.Color("#FFD700")

	// PriorityBorder frames the priority cell
	PriorityBorder = lipgloss.Color("#FFA500")

	// Special colors
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
)

// Base styles
var (
	// Title is the style for the app title
	// NOTE: No margins - they break region line counting
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// Label is for field labels ("Task:", "Priority:")
	Label = lipgloss.NewStyle().
		Foreground(Subtle)
)

// Task styles
var (
	// TaskMarker is the left gutter of a selected task
	TaskMarker = lipgloss.NewStyle().
			Foreground(SelectedColor).
			Bold(true)

	// TaskPriority is the priority cell
	TaskPriority = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#000000"))

	// TaskPriorityEditing is the priority cell while its stepper is active
	TaskPriorityEditing = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#000000")).
				Background(PriorityBorder).
				Bold(true)

	// TaskBody is the base style for task text; the background is the task color
	TaskBody = lipgloss.NewStyle().
			PaddingLeft(1)

	// TaskSelected is layered over TaskBody for selected tasks
	TaskSelected = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	// TaskDropTarget marks the row a drag would land on
	TaskDropTarget = lipgloss.NewStyle().
			Reverse(true)
)

// TaskColorStyle returns the body style for a task color: the color as
// background with black or white text for contrast.
func TaskColorStyle(c store.Color) lipgloss.Style {
	fg := lipgloss.Color("#000000")
	if c.Luminance() < 0.5 {
		fg = lipgloss.Color("#FFFFFF")
	}
	return TaskBody.
		Foreground(fg).
		Background(lipgloss.Color(c.Hex()))
}

// SwatchStyle renders a preset color swatch.
func SwatchStyle(c store.Color) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex()))
}

// Button styles
var (
	// Button is an enabled clickable action
	Button = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.AdaptiveColor{Light: "#0077CC", Dark: "#005FAF"}).
		Padding(0, 1)

	// ButtonDisabled is an action that cannot be used right now
	ButtonDisabled = lipgloss.NewStyle().
			Foreground(Subtle).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#2A2A2A"}).
			Faint(true).
			Padding(0, 1)
)

// StatusBar styles
var (
	// StatusBarKey is for keyboard shortcut hints
	StatusBarKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight)

	// StatusBarText is for status bar descriptions
	StatusBarText = lipgloss.NewStyle().
			Foreground(Subtle)

	// StatusBarSuccess is for status messages
	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	// StatusBarError is for failed actions
	StatusBarError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)
)

// Help styles
var (
	// HelpKey is for key bindings in help
	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// HelpDesc is for key binding descriptions
	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)
)

// Input styles
var (
	// Input is the style for the draft text input
	Input = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"})

	// InputFocused is for the focused draft input
	InputFocused = lipgloss.NewStyle().
			Foreground(Highlight)
)

// Section header style
var (
	SectionHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(Subtle).
		Underline(true)
)
