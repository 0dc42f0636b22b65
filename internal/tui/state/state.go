package state

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/log"
	"github.com/hy4ri/todo-tui/internal/config"
	"github.com/hy4ri/todo-tui/internal/store"
)

// Focus is the widget that currently owns the keyboard.
type Focus int

const (
	FocusList  Focus = iota // Task list; navigation keys are live
	FocusDraft              // New-task text field
)

// DoubleClickInterval is the longest gap between two clicks on the same
// region that still counts as a double-click.
const DoubleClickInterval = 400 * time.Millisecond

// NoIndex marks an unset task position.
const NoIndex = -1

// Drag tracks a reorder gesture. Positions are only meaningful while the
// store revision equals Revision.
type Drag struct {
	Pressed  bool // Left button is down
	Press    Region
	PressX   int
	PressY   int
	Source   int // Position where the drag started, NoIndex if none
	Target   int // Position the pointer was released over, NoIndex if none
	Hover    int // Position under the pointer while dragging
	Revision uint64
}

// Active reports whether a drag has started.
func (d Drag) Active() bool {
	return d.Source != NoIndex
}

// Reset clears the gesture.
func (d *Drag) Reset() {
	*d = Drag{Source: NoIndex, Target: NoIndex, Hover: NoIndex}
}

// Click remembers the last completed click for double-click detection.
type Click struct {
	Region Region
	At     time.Time
}

// State holds the application state.
// All fields are exported to allow access from logic and ui packages.
type State struct {
	// Dependencies
	Store  *store.Store
	Config *config.Config
	Logger *log.Logger
	Keymap Keymap

	// Draft for the next task
	DraftInput    textinput.Model
	DraftPriority int
	DraftColor    store.Color
	Focus         Focus

	// In-place edits, keyed by task ID. Each is empty when inactive.
	EditingID         string
	EditInput         textinput.Model
	EditingPriorityID string

	// Vim-style ":" command line
	CommandLine *CommandLine

	// Pointer state
	Drag      Drag
	LastClick Click

	// Regions drawn by the last render, used for hit testing
	Layout Layout

	// Viewport
	TaskViewport  viewport.Model
	ViewportReady bool

	// UI state
	Width     int
	Height    int
	StatusMsg string
	// StatusErr marks StatusMsg as a failure
	StatusErr bool
	ShowHelp  bool
	ShowHints bool
	Quitting  bool
}

// New creates the application state around a loaded store.
func New(s *store.Store, cfg *config.Config, logger *log.Logger) *State {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	draft := textinput.New()
	draft.Placeholder = "What needs doing?"
	draft.Prompt = ""
	draft.CharLimit = 200
	draft.Width = 30

	edit := textinput.New()
	edit.Prompt = ""
	edit.CharLimit = 200

	st := &State{
		Store:         s,
		Config:        cfg,
		Logger:        logger,
		Keymap:        NewKeymap(cfg.UI.VimMode),
		DraftInput:    draft,
		DraftPriority: store.MinPriority,
		DraftColor:    store.White,
		Focus:         FocusList,
		EditInput:     edit,
		CommandLine:   NewCommandLine(),
		ShowHints:     cfg.UI.ShowHints,
	}
	st.Drag.Reset()
	return st
}

// KeyboardCaptured reports whether a text field owns the keyboard, in
// which case navigation keys must not act on the list.
func (s *State) KeyboardCaptured() bool {
	return s.Focus == FocusDraft || s.EditingID != "" || s.CommandLine.Active
}

// IsEditing reports whether the task with the given ID is being text-edited.
func (s *State) IsEditing(id string) bool {
	return id != "" && s.EditingID == id
}

// IsEditingPriority reports whether the task's priority stepper is active.
func (s *State) IsEditingPriority(id string) bool {
	return id != "" && s.EditingPriorityID == id
}
