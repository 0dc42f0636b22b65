package state

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/todo-tui/internal/store"
)

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// Action is what a key press on the task list asks for.
type Action string

const (
	ActionNone         Action = ""
	ActionDown         Action = "down"
	ActionUp           Action = "up"
	ActionDelete       Action = "delete"
	ActionUndo         Action = "undo"
	ActionNewTask      Action = "new_task"
	ActionEdit         Action = "edit"
	ActionEditPriority Action = "edit_priority"
	ActionMoveDown     Action = "move_down"
	ActionMoveUp       Action = "move_up"
	ActionCopy         Action = "copy"
	ActionDeselect     Action = "deselect"
	ActionHelp         Action = "help"
	ActionToggleHints  Action = "toggle_hints"
	ActionQuit         Action = "quit"
	ActionSwatch       Action = "swatch"
	ActionCommand      Action = "command"
)

// Keymap contains all key bindings for the task list.
type Keymap struct {
	// Navigation
	Up   Key
	Down Key

	// Task actions
	Delete       Key
	Undo         Key
	NewTask      Key
	Edit         Key
	EditPriority Key
	MoveUp       Key
	MoveDown     Key
	Copy         Key
	Deselect     Key

	// Other
	Command Key
	Help    Key
	Hints   Key
	Quit    Key
}

// NewKeymap returns the key bindings. Vim mode binds j/k for navigation;
// the arrow keys always work.
func NewKeymap(vim bool) Keymap {
	km := Keymap{
		Up:   Key{Key: "up", Help: "select previous"},
		Down: Key{Key: "down", Help: "select next"},

		Delete:       Key{Key: "d", Help: "delete selected"},
		Undo:         Key{Key: "u", Help: "undo delete"},
		NewTask:      Key{Key: "a", Help: "new task"},
		Edit:         Key{Key: "e", Help: "edit text"},
		EditPriority: Key{Key: "p", Help: "edit priority"},
		MoveUp:       Key{Key: "K", Help: "move task up"},
		MoveDown:     Key{Key: "J", Help: "move task down"},
		Copy:         Key{Key: "y", Help: "copy selected"},
		Deselect:     Key{Key: "esc", Help: "clear selection"},

		Command: Key{Key: ":", Help: "command line"},
		Help:    Key{Key: "?", Help: "help"},
		Hints:   Key{Key: "f1", Help: "toggle hints"},
		Quit:    Key{Key: "q", Help: "quit"},
	}
	if vim {
		km.Up = Key{Key: "k", Help: "select previous"}
		km.Down = Key{Key: "j", Help: "select next"}
	}
	return km
}

// HandleKey maps a key press on the task list to an action. For
// ActionSwatch the second result is the preset index.
func (k Keymap) HandleKey(msg tea.KeyMsg) (Action, int) {
	key := msg.String()

	// Digits pick a preset swatch
	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(store.Presets) {
		return ActionSwatch, n - 1
	}

	switch key {
	case k.Up.Key, "up":
		return ActionUp, 0
	case k.Down.Key, "down":
		return ActionDown, 0
	case k.Delete.Key, "delete":
		return ActionDelete, 0
	case k.Undo.Key:
		return ActionUndo, 0
	case k.NewTask.Key, "i":
		return ActionNewTask, 0
	case k.Edit.Key:
		return ActionEdit, 0
	case k.EditPriority.Key:
		return ActionEditPriority, 0
	case k.MoveUp.Key:
		return ActionMoveUp, 0
	case k.MoveDown.Key:
		return ActionMoveDown, 0
	case k.Copy.Key:
		return ActionCopy, 0
	case k.Deselect.Key:
		return ActionDeselect, 0
	case k.Command.Key:
		return ActionCommand, 0
	case k.Help.Key:
		return ActionHelp, 0
	case k.Hints.Key:
		return ActionToggleHints, 0
	case k.Quit.Key:
		return ActionQuit, 0
	}

	return ActionNone, 0
}

// HelpItems returns a slice of key-description pairs for the help view.
func (k Keymap) HelpItems() [][]string {
	return [][]string{
		{"Navigation", ""},
		{k.Up.Key + "/" + k.Down.Key, "Select previous/next task"},
		{k.Deselect.Key, "Clear selection"},
		{"click", "Toggle selection"},
		{"", ""},
		{"Task Actions", ""},
		{k.NewTask.Key, "Focus new task field (enter adds)"},
		{"↑/↓ in field", "Draft priority"},
		{k.Edit.Key + " / double-click", "Edit text"},
		{k.EditPriority.Key + " / double-click", "Edit priority"},
		{k.Delete.Key, "Delete selected"},
		{k.Undo.Key, "Undo last delete"},
		{"1-" + strconv.Itoa(len(store.Presets)), "Color selected tasks"},
		{k.MoveUp.Key + "/" + k.MoveDown.Key + " / drag", "Reorder"},
		{k.Copy.Key, "Copy selected"},
		{"", ""},
		{"General", ""},
		{k.Command.Key, "Command line (:commands lists all)"},
		{k.Hints.Key, "Toggle hints"},
		{k.Help.Key, "Toggle help"},
		{k.Quit.Key, "Quit"},
	}
}
