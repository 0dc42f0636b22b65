package logic

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Init returns the commands that run when the program starts.
func (h *Handler) Init() tea.Cmd {
	return tickCmd()
}

// tickCmd wakes the update loop once a second so the autosave timer is
// polled even when there is no input.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
