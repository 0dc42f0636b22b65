// Package tui provides the terminal user interface for the to-do list.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/todo-tui/internal/tui/logic"
	"github.com/hy4ri/todo-tui/internal/tui/state"
	"github.com/hy4ri/todo-tui/internal/tui/ui"
)

// App is the main Bubble Tea model. It wires the shared state to the
// handler that updates it and the renderer that draws it.
type App struct {
	*state.State
	handler  *logic.Handler
	renderer *ui.Renderer
}

// NewApp creates the model around st.
func NewApp(st *state.State) *App {
	return &App{
		State:    st,
		handler:  logic.NewHandler(st),
		renderer: ui.NewRenderer(st),
	}
}

// Handler exposes the controller so callers can swap its clock or clipboard.
func (a *App) Handler() *logic.Handler {
	return a.handler
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.handler.Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.handler.Update(msg)
	if a.Quitting {
		return a, tea.Quit
	}
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if a.Quitting {
		return ""
	}
	return a.renderer.View()
}
