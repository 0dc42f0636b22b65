package logic

import "fmt"

// resolveDrag finishes a drag once the button is up. The move only happens
// when the pointer was released over a task and the list has not changed
// since the drag began; the gesture is cleared either way.
func (h *Handler) resolveDrag() {
	d := h.Drag
	if !d.Active() || d.Pressed {
		return
	}
	h.Drag.Reset()

	if d.Target < 0 || d.Target == d.Source {
		return
	}
	if d.Revision != h.Store.Revision() {
		h.Logger.Debug("Drop discarded, list changed during drag", "from", d.Source, "to", d.Target)
		return
	}

	if h.Store.Move(d.Source, d.Target) {
		h.setStatus(fmt.Sprintf("Moved to position %d", d.Target+1))
		h.ensureVisible(d.Target)
	}
}

// startDrag begins a reorder from the pressed task. Tasks being text-edited
// can't be dragged, and a press made before the list changed is ignored.
func (h *Handler) startDrag() {
	i := h.Drag.Press.Index
	t, ok := h.Store.Task(i)
	if !ok || h.IsEditing(t.ID) || h.Drag.Revision != h.Store.Revision() {
		return
	}
	h.Drag.Source = i
	h.Drag.Hover = i
}
