package logic

// ensureVisible scrolls the task viewport so position i is on screen.
func (h *Handler) ensureVisible(i int) {
	if !h.ViewportReady || i < 0 {
		return
	}
	vp := &h.TaskViewport
	switch {
	case i < vp.YOffset:
		vp.YOffset = i
	case vp.Height > 0 && i >= vp.YOffset+vp.Height:
		vp.YOffset = i - vp.Height + 1
	}
}
