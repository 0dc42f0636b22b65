// Package main is the entry point for the todo-tui application.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/hy4ri/todo-tui/internal/config"
	"github.com/hy4ri/todo-tui/internal/platform"
	"github.com/hy4ri/todo-tui/internal/store"
	"github.com/hy4ri/todo-tui/internal/tui"
	"github.com/hy4ri/todo-tui/internal/tui/state"
)

const version = "0.1.0"

const helpText = `todo-tui - A single-window to-do list for the terminal

USAGE:
    todo-tui [OPTIONS]

OPTIONS:
    -h, --help        Show this help message
    -v, --version     Show version information
    --init            Create a template config file
    --data PATH       Use PATH as the task file
    --debug           Write debug output to the log file

FILES:
    Config file: <config dir>/todo-tui/config.yaml
    Task file:   <data dir>/todo-tui/tasks.json
    Log file:    <data dir>/todo-tui/todo-tui.log

KEYBINDINGS:
    Navigation:
        j/k         Select next/previous task
        Click       Toggle selection
        Esc         Clear selection

    Task Actions:
        a           Focus the new task field (Enter adds)
        e           Edit text (or double-click the task)
        p           Edit priority (or double-click the number)
        d           Delete selected tasks
        u           Undo last delete
        1-7         Color selected tasks
        J/K         Move task down/up (or drag it)
        y           Copy selected tasks

    Other:
        :           Command line (:w, :q, :commands)
        ?           Show help
        q           Quit

Tasks are saved every 30 seconds and on exit.
`

const configTemplate = `# todo-tui configuration

ui:
  # Bind j/k for navigation in addition to the arrow keys (default: true)
  vim_mode: true
  # Show the key hints line (default: true)
  show_hints: true

storage:
  # Task file location; empty uses the platform data directory
  # path: ""
  # Seconds between periodic saves (default: 30)
  autosave_seconds: 30

log:
  # debug, info, warn or error
  level: info
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Define flags
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		debug       bool
		dataPath    string
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.StringVar(&dataPath, "data", "", "Task file path")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	// Handle flags
	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("todo-tui version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	return runApp(dataPath, debug)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// session holds everything built before the TUI starts.
type session struct {
	store  *store.Store
	state  *state.State
	logger *log.Logger
	close  func()
}

// newSession resolves paths, config, logging and the task store. Nothing
// here is fatal: without user directories the app still starts, logging
// is discarded and the store falls back to dataPath or no file at all.
func newSession(dataPath string, debug bool) *session {
	paths, pathErr := platform.DefaultPaths()
	if pathErr != nil {
		paths = platform.Paths{}
	}

	// A broken config file should not keep the user from their tasks
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = config.DefaultConfig()
	}

	level := cfg.Log.Level
	if debug {
		level = "debug"
	}
	logger, closeLog := newLogger(paths.LogPath, level)

	if pathErr != nil {
		logger.Warn("User directories unavailable", "err", pathErr)
	}
	if cfgErr != nil {
		logger.Warn("Using default config", "err", cfgErr)
	}

	if dataPath == "" {
		dataPath = cfg.TasksPath(paths.TasksPath)
	}

	s := store.Open(store.Options{
		Path:             dataPath,
		AutosaveInterval: cfg.AutosaveInterval(),
		Logger:           logger,
	})
	logger.Info("Starting", "version", version, "tasks", s.Len(), "path", dataPath)

	return &session{
		store:  s,
		state:  state.New(s, cfg, logger),
		logger: logger,
		close:  closeLog,
	}
}

// runApp starts the main TUI application.
func runApp(dataPath string, debug bool) error {
	sess := newSession(dataPath, debug)
	defer sess.close()

	app := tui.NewApp(sess.state)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	_, runErr := p.Run()

	// Final save happens however the program ended
	sess.store.Save()

	if runErr != nil {
		return fmt.Errorf("failed to run TUI: %w", runErr)
	}
	return nil
}

// newLogger opens the log file. The terminal belongs to the TUI, so when the
// file can't be opened logging is discarded rather than sent to stderr.
func newLogger(path, level string) (*log.Logger, func()) {
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = log.InfoLevel
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if path != "" && os.MkdirAll(filepath.Dir(path), 0700) == nil {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600); err == nil {
			w = f
			closeFn = func() { f.Close() }
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Formatter:       log.LogfmtFormatter,
		Prefix:          "todo-tui",
	})
	return logger, closeFn
}
