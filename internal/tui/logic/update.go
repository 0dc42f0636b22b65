package logic

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/todo-tui/internal/tui/state"
)

// Rows used by everything but the task list: title, input row, swatch row,
// blank separators, footer and hints.
const chromeHeight = 9

// Handler is the interaction controller. It turns Bubble Tea messages into
// store mutations and keeps the transient UI state in State.
type Handler struct {
	*state.State

	// Now is the clock for double-click detection and autosave.
	Now func() time.Time

	// WriteClipboard copies text to the system clipboard.
	WriteClipboard func(string) error
}

// NewHandler creates a Handler over s.
func NewHandler(s *state.State) *Handler {
	return &Handler{
		State:          s,
		Now:            time.Now,
		WriteClipboard: clipboard.WriteAll,
	}
}

// Update handles one message. Every call is one frame: input is applied,
// a pending drag is resolved, and the autosave timer is polled.
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	cmd := h.handle(msg)
	h.resolveDrag()
	h.Store.Tick(h.Now())
	return cmd
}

func (h *Handler) handle(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return h.handleKeyMsg(msg)

	case tea.MouseMsg:
		return h.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		return h.handleWindowSizeMsg(msg)

	case tickMsg:
		return tickCmd()

	case statusMsg:
		if msg.err {
			h.setError(msg.msg)
		} else {
			h.setStatus(msg.msg)
		}
		return nil
	}

	// Forward everything else (cursor blink) to the focused input
	return h.updateInputs(msg)
}

func (h *Handler) handleWindowSizeMsg(msg tea.WindowSizeMsg) tea.Cmd {
	h.Width = msg.Width
	h.Height = msg.Height

	vpHeight := msg.Height - chromeHeight
	if vpHeight < 3 {
		vpHeight = 3
	}
	vpWidth := msg.Width
	if vpWidth < 20 {
		vpWidth = 20
	}
	if !h.ViewportReady {
		h.TaskViewport = viewport.New(vpWidth, vpHeight)
		h.TaskViewport.Style = lipgloss.NewStyle()
		h.TaskViewport.MouseWheelEnabled = true
		h.ViewportReady = true
	} else {
		h.TaskViewport.Width = vpWidth
		h.TaskViewport.Height = vpHeight
	}

	// Leave room for the labels, stepper and buttons on the input row
	inputWidth := msg.Width - 48
	if inputWidth < 10 {
		inputWidth = 10
	}
	h.DraftInput.Width = inputWidth
	h.EditInput.Width = msg.Width - 8
	h.CommandLine.Input.Width = msg.Width - 4

	h.ensureVisible(h.Store.FirstSelected())
	return nil
}

func (h *Handler) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	if h.DraftInput.Focused() {
		var cmd tea.Cmd
		h.DraftInput, cmd = h.DraftInput.Update(msg)
		cmds = append(cmds, cmd)
	}
	if h.EditInput.Focused() {
		var cmd tea.Cmd
		h.EditInput, cmd = h.EditInput.Update(msg)
		cmds = append(cmds, cmd)
	}
	if h.CommandLine.Active {
		var cmd tea.Cmd
		h.CommandLine.Input, cmd = h.CommandLine.Input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Message types
type statusMsg struct {
	msg string
	err bool
}

func (h *Handler) setStatus(msg string) {
	h.StatusMsg = msg
	h.StatusErr = false
}

func (h *Handler) setError(msg string) {
	h.StatusMsg = msg
	h.StatusErr = true
}

type tickMsg time.Time
