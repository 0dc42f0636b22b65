package logic

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/todo-tui/internal/store"
)

// CommandHandlerFunc handles a command execution.
type CommandHandlerFunc func(h *Handler, args []string) tea.Cmd

// CommandDef defines a command.
type CommandDef struct {
	Name        string
	Aliases     []string
	Description string
	Handler     CommandHandlerFunc
}

// CommandRegistry holds all available commands, keyed by name and alias.
var CommandRegistry = map[string]CommandDef{}

func init() {
	registerCommands()
}

func registerCommands() {
	commands := []CommandDef{
		{
			Name:        "add",
			Aliases:     []string{"a", "new"},
			Description: "Add a task with the draft priority and color",
			Handler:     handleAddCommand,
		},
		{
			Name:        "delete",
			Aliases:     []string{"d", "del", "rm"},
			Description: "Delete the selected tasks",
			Handler:     handleDeleteCommand,
		},
		{
			Name:        "undo",
			Aliases:     []string{"u"},
			Description: "Restore the last deleted tasks",
			Handler:     handleUndoCommand,
		},
		{
			Name:        "color",
			Aliases:     []string{"c", "colour"},
			Description: "Color the selected tasks with a preset (1-7) or #rrggbb[aa]",
			Handler:     handleColorCommand,
		},
		{
			Name:        "priority",
			Aliases:     []string{"p", "prio"},
			Description: "Set the priority of the selected tasks (1-10)",
			Handler:     handlePriorityCommand,
		},
		{
			Name:        "sort",
			Aliases:     []string{"s"},
			Description: "Sort tasks by priority",
			Handler:     handleSortCommand,
		},
		{
			Name:        "write",
			Aliases:     []string{"w", "save"},
			Description: "Save tasks now",
			Handler:     handleWriteCommand,
		},
		{
			Name:        "wq",
			Aliases:     []string{"x"},
			Description: "Save and quit",
			Handler:     handleQuitCommand,
		},
		{
			Name:        "quit",
			Aliases:     []string{"q", "exit"},
			Description: "Quit application",
			Handler:     handleQuitCommand,
		},
		{
			Name:        "help",
			Aliases:     []string{"h", "?"},
			Description: "Show help",
			Handler:     handleHelpCommand,
		},
		{
			Name:        "commands",
			Aliases:     []string{"list", "ls"},
			Description: "List all available commands",
			Handler:     handleCommandsCommand,
		},
	}

	for _, cmd := range commands {
		CommandRegistry[cmd.Name] = cmd
		for _, alias := range cmd.Aliases {
			CommandRegistry[alias] = cmd
		}
	}
}

// Core Handlers

func handleAddCommand(h *Handler, args []string) tea.Cmd {
	if len(args) == 0 {
		return h.focusDraft()
	}

	text := strings.Join(args, " ")
	if h.Store.Add(text, h.DraftPriority, h.DraftColor) {
		h.setStatus("Task added")
	}
	return nil
}

func handleDeleteCommand(h *Handler, args []string) tea.Cmd {
	h.deleteSelected()
	return nil
}

func handleUndoCommand(h *Handler, args []string) tea.Cmd {
	h.undo()
	return nil
}

func handleColorCommand(h *Handler, args []string) tea.Cmd {
	usage := fmt.Sprintf("Usage: :color <1-%d|#rrggbb[aa]>", len(store.Presets))

	if len(args) == 1 && strings.HasPrefix(args[0], "#") {
		c, err := store.ParseHex(args[0])
		if err != nil {
			h.setError(usage)
			return nil
		}
		h.applyColor(c)
		h.setStatus("Color set to " + c.Hex())
		return nil
	}

	n, err := singleIntArg(args)
	if err != nil || n < 1 || n > len(store.Presets) {
		h.setError(usage)
		return nil
	}
	h.recolor(n - 1)
	return nil
}

func handlePriorityCommand(h *Handler, args []string) tea.Cmd {
	p, err := singleIntArg(args)
	if err != nil {
		h.setError(fmt.Sprintf("Usage: :priority <%d-%d>", store.MinPriority, store.MaxPriority))
		return nil
	}

	selected := h.Store.Selected()
	if len(selected) == 0 {
		h.setStatus("Nothing selected")
		return nil
	}
	for _, t := range selected {
		h.Store.SetPriority(t.ID, p)
	}
	h.Store.SortByPriority()
	h.ensureVisible(h.Store.FirstSelected())
	h.setStatus(fmt.Sprintf("Priority set to %d", store.ClampPriority(p)))
	return nil
}

func handleSortCommand(h *Handler, args []string) tea.Cmd {
	h.Store.SortByPriority()
	h.setStatus("Tasks sorted")
	return nil
}

func handleWriteCommand(h *Handler, args []string) tea.Cmd {
	h.Store.Save()
	h.setStatus("Saved")
	return nil
}

// handleQuitCommand serves both :q and :wq; the final save always runs on exit.
func handleQuitCommand(h *Handler, args []string) tea.Cmd {
	return h.quit()
}

func handleHelpCommand(h *Handler, args []string) tea.Cmd {
	h.ShowHelp = true
	return nil
}

func handleCommandsCommand(h *Handler, args []string) tea.Cmd {
	uniqueCmds := make(map[string]bool)
	var names []string

	// Collect unique command names
	for _, cmd := range CommandRegistry {
		if !uniqueCmds[cmd.Name] {
			uniqueCmds[cmd.Name] = true
			names = append(names, cmd.Name)
		}
	}

	sort.Strings(names)
	h.setStatus("Commands: " + strings.Join(names, ", "))
	return nil
}

// Helpers

func singleIntArg(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected one argument, got %d", len(args))
	}
	return strconv.Atoi(args[0])
}

func (h *Handler) openCommandLine() tea.Cmd {
	h.CommandLine.Active = true
	h.CommandLine.Input.Reset()
	h.CommandLine.Suggestions = nil
	h.CommandLine.HistoryCursor = -1
	return h.CommandLine.Input.Focus()
}

func (h *Handler) closeCommandLine() {
	h.CommandLine.Active = false
	h.CommandLine.Input.Blur()
	h.CommandLine.Input.Reset()
	h.CommandLine.Suggestions = nil
}

// handleCommandKey processes keys while the command line is open.
func (h *Handler) handleCommandKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		return h.executeCommand(h.CommandLine.Input.Value())
	case "esc":
		h.closeCommandLine()
		return nil
	case "tab":
		return h.autocompleteCommand()
	case "up":
		return h.commandHistoryPrev()
	case "down":
		return h.commandHistoryNext()
	case "backspace":
		// Backspace on an empty line closes it, as in vim
		if h.CommandLine.Input.Value() == "" {
			h.closeCommandLine()
			return nil
		}
	}

	var cmd tea.Cmd
	h.CommandLine.Input, cmd = h.CommandLine.Input.Update(msg)
	h.updateSuggestions()
	return cmd
}

func (h *Handler) executeCommand(input string) tea.Cmd {
	h.closeCommandLine()

	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	// Add to history
	if len(h.CommandLine.History) == 0 || h.CommandLine.History[len(h.CommandLine.History)-1] != input {
		h.CommandLine.History = append(h.CommandLine.History, input)
	}
	h.CommandLine.HistoryCursor = -1

	parts := strings.Fields(input)
	cmdName := strings.ToLower(parts[0])
	args := parts[1:]

	if cmdDef, ok := CommandRegistry[cmdName]; ok {
		h.Logger.Debug("Running command", "name", cmdDef.Name, "args", args)
		return cmdDef.Handler(h, args)
	}

	h.setError(fmt.Sprintf("Unknown command: %s", cmdName))
	return nil
}

// autocompleteCommand completes the command name to the shortest match.
func (h *Handler) autocompleteCommand() tea.Cmd {
	input := h.CommandLine.Input.Value()
	if input == "" || strings.Contains(input, " ") {
		return nil
	}

	var suggestions []string
	for name, def := range CommandRegistry {
		if name == def.Name && strings.HasPrefix(name, input) {
			suggestions = append(suggestions, name)
		}
	}
	if len(suggestions) == 0 {
		return nil
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if len(suggestions[i]) != len(suggestions[j]) {
			return len(suggestions[i]) < len(suggestions[j])
		}
		return suggestions[i] < suggestions[j]
	})
	h.CommandLine.Input.SetValue(suggestions[0] + " ")
	h.CommandLine.Input.CursorEnd()
	h.updateSuggestions()
	return nil
}

func (h *Handler) commandHistoryPrev() tea.Cmd {
	if len(h.CommandLine.History) == 0 {
		return nil
	}

	if h.CommandLine.HistoryCursor == -1 {
		h.CommandLine.HistoryCursor = len(h.CommandLine.History) - 1
	} else if h.CommandLine.HistoryCursor > 0 {
		h.CommandLine.HistoryCursor--
	}

	h.CommandLine.Input.SetValue(h.CommandLine.History[h.CommandLine.HistoryCursor])
	h.CommandLine.Input.CursorEnd()
	return nil
}

func (h *Handler) commandHistoryNext() tea.Cmd {
	if len(h.CommandLine.History) == 0 || h.CommandLine.HistoryCursor == -1 {
		return nil
	}

	if h.CommandLine.HistoryCursor < len(h.CommandLine.History)-1 {
		h.CommandLine.HistoryCursor++
		h.CommandLine.Input.SetValue(h.CommandLine.History[h.CommandLine.HistoryCursor])
		h.CommandLine.Input.CursorEnd()
	} else {
		h.CommandLine.HistoryCursor = -1
		h.CommandLine.Input.SetValue("")
	}
	return nil
}

// updateSuggestions lists command names matching what has been typed so far.
func (h *Handler) updateSuggestions() {
	input := h.CommandLine.Input.Value()
	parts := strings.Fields(input)
	if len(parts) != 1 || strings.HasSuffix(input, " ") {
		h.CommandLine.Suggestions = nil
		return
	}

	var matches []string
	for name, def := range CommandRegistry {
		if name == def.Name && strings.HasPrefix(name, parts[0]) {
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)

	// Limit suggestions
	if len(matches) > 5 {
		matches = matches[:5]
	}
	h.CommandLine.Suggestions = matches
}
