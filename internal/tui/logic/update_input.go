package logic

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/todo-tui/internal/store"
	"github.com/hy4ri/todo-tui/internal/tui/state"
)

// handleKeyMsg routes a key press to whichever widget owns the keyboard.
func (h *Handler) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return h.quit()
	}

	if h.ShowHelp {
		switch msg.String() {
		case "esc", "?", "q":
			h.ShowHelp = false
		}
		return nil
	}

	// Text fields capture the keyboard
	if h.CommandLine.Active {
		return h.handleCommandKey(msg)
	}
	if h.EditingID != "" {
		return h.handleEditKey(msg)
	}
	if h.Focus == state.FocusDraft {
		return h.handleDraftKey(msg)
	}

	if h.EditingPriorityID != "" && h.handlePriorityKey(msg) {
		return nil
	}

	return h.handleListKey(msg)
}

// handleEditKey processes keys while a task's text is being edited.
func (h *Handler) handleEditKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "esc":
		h.commitTextEdit()
		return nil
	}

	var cmd tea.Cmd
	h.EditInput, cmd = h.EditInput.Update(msg)
	return cmd
}

// handleDraftKey processes keys while the new-task field has focus.
func (h *Handler) handleDraftKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		h.addDraft()
		return nil
	case "esc":
		h.blurDraft()
		return nil
	case "up":
		h.stepDraftPriority(1)
		return nil
	case "down":
		h.stepDraftPriority(-1)
		return nil
	}

	var cmd tea.Cmd
	h.DraftInput, cmd = h.DraftInput.Update(msg)
	return cmd
}

// handlePriorityKey drives the priority stepper. It returns false for keys
// the stepper does not use so they reach the list.
func (h *Handler) handlePriorityKey(msg tea.KeyMsg) bool {
	key := msg.String()
	switch key {
	case "enter", "esc":
		h.commitPriorityEdit()
		return true
	case "+", "=", "up", h.Keymap.Up.Key:
		h.stepPriority(1)
		return true
	case "-", "down", h.Keymap.Down.Key:
		h.stepPriority(-1)
		return true
	}

	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		p := int(key[0] - '0')
		if p == 0 {
			p = store.MaxPriority
		}
		h.setEditingPriority(p)
		return true
	}
	return false
}

// handleListKey processes navigation and task actions. It only runs when
// no text field holds focus.
func (h *Handler) handleListKey(msg tea.KeyMsg) tea.Cmd {
	action, n := h.Keymap.HandleKey(msg)

	switch action {
	case state.ActionDown:
		if h.Store.SelectNext() {
			h.ensureVisible(h.Store.FirstSelected())
		}
	case state.ActionUp:
		if h.Store.SelectPrev() {
			h.ensureVisible(h.Store.FirstSelected())
		}
	case state.ActionDelete:
		h.deleteSelected()
	case state.ActionUndo:
		h.undo()
	case state.ActionNewTask:
		return h.focusDraft()
	case state.ActionEdit:
		if t, ok := h.Store.Task(h.Store.FirstSelected()); ok {
			return h.beginTextEdit(t.ID)
		}
		h.setStatus("Select a task first")
	case state.ActionEditPriority:
		if t, ok := h.Store.Task(h.Store.FirstSelected()); ok {
			h.beginPriorityEdit(t.ID)
			return nil
		}
		h.setStatus("Select a task first")
	case state.ActionMoveDown:
		h.moveSelected(1)
	case state.ActionMoveUp:
		h.moveSelected(-1)
	case state.ActionCopy:
		return h.copySelected()
	case state.ActionDeselect:
		h.Store.ClearSelection()
	case state.ActionSwatch:
		h.recolor(n)
	case state.ActionCommand:
		return h.openCommandLine()
	case state.ActionHelp:
		h.ShowHelp = true
	case state.ActionToggleHints:
		h.ShowHints = !h.ShowHints
	case state.ActionQuit:
		return h.quit()
	}
	return nil
}

// handleMouseMsg processes mouse input. Presses only record where the
// gesture began; clicks and drops are decided on release.
func (h *Handler) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	if h.ShowHelp {
		if msg.Action == tea.MouseActionPress {
			h.ShowHelp = false
		}
		return nil
	}

	// Handle wheel scroll
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		var cmd tea.Cmd
		h.TaskViewport, cmd = h.TaskViewport.Update(msg)
		return cmd
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			h.handlePress(msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		h.handleMotion(msg.X, msg.Y)
	case tea.MouseActionRelease:
		return h.handleRelease(msg.X, msg.Y)
	}
	return nil
}

func (h *Handler) handlePress(x, y int) {
	region, _ := h.Layout.Hit(x, y)

	rev := h.Store.Revision()
	h.loseFocusOutside(region)
	if h.Store.Revision() != rev {
		// Committing an edit re-sorted the list under the pointer
		region = state.Region{}
	}

	h.Drag.Reset()
	h.Drag.Pressed = true
	h.Drag.Press = region
	h.Drag.PressX, h.Drag.PressY = x, y
	h.Drag.Revision = h.Store.Revision()
}

func (h *Handler) handleMotion(x, y int) {
	if !h.Drag.Pressed {
		return
	}

	if !h.Drag.Active() && h.Drag.Press.Kind == state.RegionTaskBody &&
		(x != h.Drag.PressX || y != h.Drag.PressY) {
		h.startDrag()
	}

	if h.Drag.Active() {
		h.Drag.Hover = state.NoIndex
		if region, ok := h.Layout.Hit(x, y); ok && h.isDropTarget(region) {
			h.Drag.Hover = region.Index
		}
	}
}

// isDropTarget reports whether a drag may end on region. A row being
// text-edited is not a target.
func (h *Handler) isDropTarget(region state.Region) bool {
	if region.Kind != state.RegionTaskBody {
		return false
	}
	t, ok := h.Store.Task(region.Index)
	return ok && !h.IsEditing(t.ID)
}

func (h *Handler) handleRelease(x, y int) tea.Cmd {
	if !h.Drag.Pressed {
		return nil
	}
	h.Drag.Pressed = false
	press := h.Drag.Press
	region, _ := h.Layout.Hit(x, y)

	if h.Drag.Active() {
		if h.isDropTarget(region) {
			h.Drag.Target = region.Index
		}
		return nil
	}

	stale := h.Drag.Revision != h.Store.Revision()
	h.Drag.Reset()
	if stale || !region.Same(press) {
		return nil
	}
	return h.handleClick(region)
}

// loseFocusOutside commits or blurs whatever had focus when the pointer
// goes down somewhere else.
func (h *Handler) loseFocusOutside(region state.Region) {
	taskID := ""
	if region.IsTask() {
		if t, ok := h.Store.Task(region.Index); ok {
			taskID = t.ID
		}
	}

	if h.EditingID != "" && !(region.Kind == state.RegionTaskBody && taskID == h.EditingID) {
		h.commitTextEdit()
	}
	if h.EditingPriorityID != "" && !(region.Kind == state.RegionTaskPriority && taskID == h.EditingPriorityID) {
		h.commitPriorityEdit()
	}
	if h.Focus == state.FocusDraft && region.Kind != state.RegionDraftInput {
		h.blurDraft()
	}
	if h.CommandLine.Active {
		h.closeCommandLine()
	}
}

// handleClick applies a completed click. A second click on the same region
// within DoubleClickInterval is a double-click; like any click it also
// toggles selection, so a double-click on a task leaves selection as it was.
func (h *Handler) handleClick(region state.Region) tea.Cmd {
	now := h.Now()
	double := region.Same(h.LastClick.Region) && now.Sub(h.LastClick.At) <= state.DoubleClickInterval
	if double {
		h.LastClick = state.Click{}
	} else {
		h.LastClick = state.Click{Region: region, At: now}
	}

	switch region.Kind {
	case state.RegionTaskBody:
		t, ok := h.Store.Task(region.Index)
		if !ok || h.IsEditing(t.ID) {
			return nil
		}
		h.Store.ToggleSelected(region.Index)
		if double {
			return h.beginTextEdit(t.ID)
		}
	case state.RegionTaskPriority:
		t, ok := h.Store.Task(region.Index)
		if !ok || !double {
			return nil
		}
		if h.IsEditingPriority(t.ID) {
			h.commitPriorityEdit()
		} else {
			h.beginPriorityEdit(t.ID)
		}
	case state.RegionSwatch:
		h.recolor(region.Index)
	case state.RegionDraftInput:
		return h.focusDraft()
	case state.RegionDraftPriorityDown:
		h.stepDraftPriority(-1)
	case state.RegionDraftPriorityUp:
		h.stepDraftPriority(1)
	case state.RegionAddButton:
		h.addDraft()
	case state.RegionDeleteButton:
		h.deleteSelected()
	}
	return nil
}
