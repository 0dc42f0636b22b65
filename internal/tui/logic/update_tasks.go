package logic

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/todo-tui/internal/store"
	"github.com/hy4ri/todo-tui/internal/tui/state"
)

// addDraft adds the drafted task. Blank text is rejected and the draft is
// left untouched.
func (h *Handler) addDraft() {
	if !h.Store.Add(h.DraftInput.Value(), h.DraftPriority, h.DraftColor) {
		return
	}
	h.DraftInput.Reset()
	h.setStatus("Task added")
}

// deleteSelected removes every selected task into the undo buffer.
func (h *Handler) deleteSelected() {
	n := h.Store.DeleteSelected()
	if n == 0 {
		h.setStatus("Nothing selected")
		return
	}
	h.dropStaleEdits()
	if n == 1 {
		h.setStatus("Deleted 1 task (u to undo)")
	} else {
		h.setStatus(fmt.Sprintf("Deleted %d tasks (u to undo)", n))
	}
}

// undo restores the most recent deletion.
func (h *Handler) undo() {
	n := len(h.Store.LastDeleted())
	if !h.Store.Undo() {
		h.setStatus("Nothing to undo")
		return
	}
	h.setStatus(fmt.Sprintf("Restored %d", n))
}

// recolor paints the selected tasks with preset i and makes it the color
// of the next added task.
func (h *Handler) recolor(i int) {
	if i < 0 || i >= len(store.Presets) {
		return
	}
	h.applyColor(store.Presets[i])
}

// applyColor makes c the draft color and paints the selected tasks with it.
func (h *Handler) applyColor(c store.Color) {
	h.DraftColor = c
	h.Store.Recolor(c)
}

// moveSelected shifts the first selected task by delta positions. The task
// keeps its selection, so repeated presses walk it along the list.
func (h *Handler) moveSelected(delta int) {
	from := h.Store.FirstSelected()
	if from < 0 {
		h.setStatus("Select a task first")
		return
	}
	if h.Store.Move(from, from+delta) {
		h.ensureVisible(from + delta)
	}
}

// copySelected writes the selected tasks' text to the clipboard, one per line.
func (h *Handler) copySelected() tea.Cmd {
	selected := h.Store.Selected()
	if len(selected) == 0 {
		h.setStatus("Nothing selected")
		return nil
	}

	lines := make([]string, 0, len(selected))
	for _, t := range selected {
		lines = append(lines, t.Text)
	}
	content := strings.Join(lines, "\n")
	write := h.WriteClipboard

	return func() tea.Msg {
		if err := write(content); err != nil {
			return statusMsg{msg: "Failed to copy: " + err.Error(), err: true}
		}
		if len(lines) == 1 {
			return statusMsg{msg: "Copied task"}
		}
		return statusMsg{msg: fmt.Sprintf("Copied %d tasks", len(lines))}
	}
}

// beginTextEdit opens the text editor on a task, committing any other edit.
func (h *Handler) beginTextEdit(id string) tea.Cmd {
	i := h.Store.IndexOf(id)
	if i < 0 {
		return nil
	}
	if h.EditingID != "" && h.EditingID != id {
		h.commitTextEdit()
	}
	h.blurDraft()

	t, _ := h.Store.Task(i)
	h.EditingID = id
	h.EditInput.SetValue(t.Text)
	h.EditInput.CursorEnd()
	return h.EditInput.Focus()
}

// commitTextEdit writes the editor contents back to the task. Blank text
// keeps the previous text.
func (h *Handler) commitTextEdit() {
	if h.EditingID == "" {
		return
	}
	id := h.EditingID
	h.EditingID = ""
	h.EditInput.Blur()
	if !h.Store.SetText(id, h.EditInput.Value()) {
		h.Logger.Debug("Edit discarded", "id", id)
	}
	h.EditInput.Reset()
}

// beginPriorityEdit opens the priority stepper on a task.
func (h *Handler) beginPriorityEdit(id string) {
	if h.EditingPriorityID != "" && h.EditingPriorityID != id {
		h.commitPriorityEdit()
	}
	if h.Store.IndexOf(id) < 0 {
		return
	}
	h.EditingPriorityID = id
}

// commitPriorityEdit closes the stepper. The list is re-sorted only now so
// the row does not jump away while it is being adjusted.
func (h *Handler) commitPriorityEdit() {
	if h.EditingPriorityID == "" {
		return
	}
	h.EditingPriorityID = ""
	h.Store.SortByPriority()
	h.ensureVisible(h.Store.FirstSelected())
}

func (h *Handler) stepPriority(delta int) {
	t, ok := h.Store.Task(h.Store.IndexOf(h.EditingPriorityID))
	if !ok {
		h.EditingPriorityID = ""
		return
	}
	h.Store.SetPriority(t.ID, t.Priority+delta)
}

func (h *Handler) setEditingPriority(p int) {
	if !h.Store.SetPriority(h.EditingPriorityID, p) {
		h.EditingPriorityID = ""
	}
}

func (h *Handler) stepDraftPriority(delta int) {
	h.DraftPriority = store.ClampPriority(h.DraftPriority + delta)
}

func (h *Handler) focusDraft() tea.Cmd {
	h.commitTextEdit()
	h.Focus = state.FocusDraft
	return h.DraftInput.Focus()
}

func (h *Handler) blurDraft() {
	h.Focus = state.FocusList
	h.DraftInput.Blur()
}

// dropStaleEdits closes editors whose task no longer exists.
func (h *Handler) dropStaleEdits() {
	if h.EditingID != "" && h.Store.IndexOf(h.EditingID) < 0 {
		h.EditingID = ""
		h.EditInput.Blur()
		h.EditInput.Reset()
	}
	if h.EditingPriorityID != "" && h.Store.IndexOf(h.EditingPriorityID) < 0 {
		h.EditingPriorityID = ""
	}
}

// quit commits open edits and asks the program to exit. The final save
// happens in main once the program returns.
func (h *Handler) quit() tea.Cmd {
	h.commitTextEdit()
	h.commitPriorityEdit()
	h.Quitting = true
	return tea.Quit
}
