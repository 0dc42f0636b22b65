package logic

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/hy4ri/todo-tui/internal/store"
)

func runCommand(h *Handler, line string) {
	h.Update(key(":"))
	typeText(h, line)
	h.Update(key("enter"))
}

func TestCommandRegistry_AliasesResolve(t *testing.T) {
	tests := []struct {
		alias string
		name  string
	}{
		{"q", "quit"},
		{"w", "write"},
		{"x", "wq"},
		{"rm", "delete"},
		{"p", "priority"},
		{"c", "color"},
	}

	for _, tt := range tests {
		def, ok := CommandRegistry[tt.alias]
		if !ok {
			t.Errorf("Alias %q not registered", tt.alias)
			continue
		}
		if def.Name != tt.name {
			t.Errorf("Alias %q: expected %q, got %q", tt.alias, tt.name, def.Name)
		}
	}
}

func TestCommand_OpenAndCapture(t *testing.T) {
	h, _ := newTestHandler(t, "A", "B")

	h.Update(key(":"))
	if !h.CommandLine.Active || !h.KeyboardCaptured() {
		t.Fatal("Expected the command line to capture the keyboard")
	}

	typeText(h, "jd")
	if h.Store.AnySelected() || h.Store.Len() != 2 {
		t.Error("Keys typed into the command line must not act on the list")
	}

	h.Update(key("esc"))
	if h.CommandLine.Active {
		t.Error("Expected esc to close the command line")
	}
}

func TestCommand_Add(t *testing.T) {
	h, _ := newTestHandler(t, "A")
	h.DraftPriority = 4
	h.DraftColor = store.LightBlue

	runCommand(h, "add Buy bread")

	i := slices.Index(taskTexts(h.Store), "Buy bread")
	if i < 0 {
		t.Fatalf("Expected task added, got %v", taskTexts(h.Store))
	}
	got, _ := h.Store.Task(i)
	if got.Priority != 4 || got.Color != store.LightBlue {
		t.Errorf("Expected draft priority and color, got %+v", got)
	}
}

func TestCommand_PriorityAndColor(t *testing.T) {
	h, _ := newTestHandler(t, "A", "B", "C")
	h.Store.ToggleSelected(2)

	runCommand(h, "priority 10")
	if got := taskTexts(h.Store); !slices.Equal(got, []string{"A", "C", "B"}) {
		t.Errorf("Expected [A C B], got %v", got)
	}

	runCommand(h, "color 5")
	if got, _ := h.Store.Task(1); got.Color != store.Presets[4] {
		t.Errorf("Expected preset 5 on C, got %v", got.Color)
	}

	runCommand(h, "color 99")
	if !strings.HasPrefix(h.StatusMsg, "Usage: :color") || !h.StatusErr {
		t.Errorf("Expected usage error, got %q", h.StatusMsg)
	}
}

func TestCommand_ColorHex(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    store.Color
		wantErr bool
	}{
		{"rgb", "color #ff8000", store.RGBA(255, 128, 0, 255), false},
		{"rgba", "c #0a141e80", store.RGBA(10, 20, 30, 128), false},
		{"uppercase", "color #ABCDEF", store.RGBA(171, 205, 239, 255), false},
		{"short form", "color #fff", store.Color{}, true},
		{"not hex", "color #zzzzzz", store.Color{}, true},
		{"too long", "color #ff00ff00ff", store.Color{}, true},
		{"extra arg", "color #ff8000 2", store.Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t, "A", "B")
			h.Store.ToggleSelected(1)
			before, _ := h.Store.Task(1)
			draft := h.DraftColor

			runCommand(h, tt.line)

			got, _ := h.Store.Task(1)
			if tt.wantErr {
				if !strings.HasPrefix(h.StatusMsg, "Usage: :color") || !h.StatusErr {
					t.Errorf("Expected usage error, got %q (err=%v)", h.StatusMsg, h.StatusErr)
				}
				if got.Color != before.Color || h.DraftColor != draft {
					t.Error("Malformed color must not change anything")
				}
				return
			}
			if got.Color != tt.want {
				t.Errorf("Expected selected task color %v, got %v", tt.want, got.Color)
			}
			if h.DraftColor != tt.want {
				t.Errorf("Expected draft color %v, got %v", tt.want, h.DraftColor)
			}
			if other, _ := h.Store.Task(0); other.Color == tt.want {
				t.Error("Unselected task must keep its color")
			}
			if h.StatusErr {
				t.Errorf("Unexpected error status %q", h.StatusMsg)
			}
		})
	}
}

func TestCommand_ColorHexThenAdd(t *testing.T) {
	h, _ := newTestHandler(t)

	runCommand(h, "color #123456")
	runCommand(h, "add Custom")

	if h.Store.Len() != 1 {
		t.Fatalf("Expected 1 task, got %d", h.Store.Len())
	}
	if got, _ := h.Store.Task(0); got.Color != store.RGBA(0x12, 0x34, 0x56, 255) {
		t.Errorf("Expected new task in the custom color, got %v", got.Color)
	}
}

func TestCommand_DeleteUndo(t *testing.T) {
	h, _ := newTestHandler(t, "A", "B")
	h.Store.ToggleSelected(0)

	runCommand(h, "d")
	if got := taskTexts(h.Store); !slices.Equal(got, []string{"B"}) {
		t.Fatalf("Expected [B], got %v", got)
	}
	runCommand(h, "undo")
	if h.Store.Len() != 2 {
		t.Errorf("Expected undo to restore, got %v", taskTexts(h.Store))
	}
}

func TestCommand_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	h, _ := newTestHandler(t)
	h.Store = store.New(store.Options{Path: path})
	h.Store.Add("A", 3, store.White)

	runCommand(h, "w")
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected file written, got %v", err)
	}
	if h.StatusMsg != "Saved" {
		t.Errorf("Unexpected status %q", h.StatusMsg)
	}
}

func TestCommand_Quit(t *testing.T) {
	h, _ := newTestHandler(t)
	h.Update(key(":"))
	typeText(h, "q")
	if cmd := h.Update(key("enter")); cmd == nil {
		t.Fatal("Expected quit command")
	}
	if !h.Quitting {
		t.Error("Expected Quitting")
	}
}

func TestCommand_Unknown(t *testing.T) {
	h, _ := newTestHandler(t)
	runCommand(h, "frobnicate now")
	if h.StatusMsg != "Unknown command: frobnicate" || !h.StatusErr {
		t.Errorf("Expected unknown command error, got %q (err=%v)", h.StatusMsg, h.StatusErr)
	}
}

func TestCommand_HistoryAndAutocomplete(t *testing.T) {
	h, _ := newTestHandler(t)
	runCommand(h, "sort")
	runCommand(h, "commands")

	h.Update(key(":"))
	h.Update(key("up"))
	if got := h.CommandLine.Input.Value(); got != "commands" {
		t.Errorf("Expected last command, got %q", got)
	}
	h.Update(key("up"))
	if got := h.CommandLine.Input.Value(); got != "sort" {
		t.Errorf("Expected earlier command, got %q", got)
	}
	h.Update(key("down"))
	h.Update(key("down"))
	if got := h.CommandLine.Input.Value(); got != "" {
		t.Errorf("Expected empty line past the newest entry, got %q", got)
	}

	typeText(h, "pri")
	if !slices.Equal(h.CommandLine.Suggestions, []string{"priority"}) {
		t.Errorf("Unexpected suggestions %v", h.CommandLine.Suggestions)
	}
	h.Update(tabKey())
	if got := h.CommandLine.Input.Value(); got != "priority " {
		t.Errorf("Expected completion, got %q", got)
	}
}
