package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/todo-tui/internal/store"
	"github.com/hy4ri/todo-tui/internal/tui/state"
	"github.com/hy4ri/todo-tui/internal/tui/styles"
)

// Screen rows above the task list: title, blank, input row, blank,
// swatches, blank.
const (
	inputRow  = 2
	swatchRow = 4
	listTop   = 6
)

// Columns of a task row: selection marker, priority cell, gap, body.
const (
	priorityX0 = 1
	priorityX1 = 5
	bodyX0     = 6
)

// Renderer draws the window and records the clickable regions it drew
// into State.Layout, so the next mouse event is hit-tested against exactly
// what is on screen.
type Renderer struct {
	*state.State
}

func NewRenderer(s *state.State) *Renderer {
	return &Renderer{State: s}
}

func (r *Renderer) View() string {
	r.Layout.Reset()

	if r.Width == 0 || !r.ViewportReady {
		return "Loading..."
	}

	if r.ShowHelp {
		return r.renderHelp()
	}

	rows := []string{
		r.renderTitle(),
		"",
		r.renderInputRow(),
		"",
		r.renderSwatches(),
		"",
		r.renderTaskList(),
		"",
		r.renderFooter(),
		r.renderHints(),
	}
	return strings.Join(rows, "\n")
}

func (r *Renderer) renderTitle() string {
	title := styles.Title.Render("To-Do")
	n := r.Store.Len()
	stats := fmt.Sprintf("%d task", n)
	if n != 1 {
		stats += "s"
	}
	if sel := r.Store.SelectedCount(); sel > 0 {
		stats += fmt.Sprintf(", %d selected", sel)
	}
	return title + "  " + styles.StatusBarText.Render(stats)
}

// segments lays out a row left to right, recording a region for each
// segment that has a kind.
type segments struct {
	y   int
	x   int
	out strings.Builder
	l   *state.Layout
}

func (s *segments) add(text string) {
	s.out.WriteString(text)
	s.x += lipgloss.Width(text)
}

func (s *segments) region(kind state.RegionKind, index int, text string) {
	w := lipgloss.Width(text)
	s.l.Add(state.Region{Kind: kind, Index: index, X0: s.x, X1: s.x + w, Y0: s.y, Y1: s.y + 1})
	s.add(text)
}

func (r *Renderer) renderInputRow() string {
	row := &segments{y: inputRow, l: &r.Layout}

	row.add(styles.Label.Render("Task: "))

	inputStyle := styles.Input
	if r.Focus == state.FocusDraft {
		inputStyle = styles.InputFocused
	}
	field := inputStyle.Width(r.DraftInput.Width + 1).MaxWidth(r.DraftInput.Width + 1).Render(r.DraftInput.View())
	row.region(state.RegionDraftInput, 0, field)

	row.add(styles.Label.Render("  Priority: "))
	row.region(state.RegionDraftPriorityDown, 0, styles.Button.Render("-"))
	row.add(fmt.Sprintf(" %2d ", r.DraftPriority))
	row.region(state.RegionDraftPriorityUp, 0, styles.Button.Render("+"))

	row.add("  ")
	row.add(styles.SwatchStyle(r.DraftColor).Render("  "))
	row.add("  ")
	row.region(state.RegionAddButton, 0, styles.Button.Render("Add"))

	return row.out.String()
}

func (r *Renderer) renderSwatches() string {
	row := &segments{y: swatchRow, l: &r.Layout}
	row.add(styles.Label.Render("Color: "))

	for i, c := range store.Presets {
		mark := " "
		if c == r.DraftColor {
			mark = "*"
		}
		swatch := styles.TaskColorStyle(c).PaddingLeft(0).Render(fmt.Sprintf(" %d%s ", i+1, mark))
		row.region(state.RegionSwatch, i, swatch)
		row.add(" ")
	}

	return row.out.String()
}

// renderTaskList fills the viewport with one line per task and records the
// priority and body regions of the visible rows.
func (r *Renderer) renderTaskList() string {
	width := r.TaskViewport.Width
	tasks := r.Store.Tasks()

	if len(tasks) == 0 {
		r.TaskViewport.SetContent(styles.StatusBarText.Render("  No tasks yet. Press a to add one."))
		return r.TaskViewport.View()
	}

	lines := make([]string, len(tasks))
	for i, t := range tasks {
		lines[i] = r.renderTaskRow(i, t, width)
	}
	r.TaskViewport.SetContent(strings.Join(lines, "\n"))

	top := r.TaskViewport.YOffset
	for i := top; i < len(tasks) && i < top+r.TaskViewport.Height; i++ {
		y := listTop + i - top
		r.Layout.Add(state.Region{Kind: state.RegionTaskPriority, Index: i, X0: priorityX0, X1: priorityX1, Y0: y, Y1: y + 1})
		r.Layout.Add(state.Region{Kind: state.RegionTaskBody, Index: i, X0: bodyX0, X1: width, Y0: y, Y1: y + 1})
	}

	return r.TaskViewport.View()
}

func (r *Renderer) renderTaskRow(i int, t store.Task, width int) string {
	var b strings.Builder

	if t.Selected {
		b.WriteString(styles.TaskMarker.Render("▌"))
	} else {
		b.WriteString(" ")
	}

	if r.IsEditingPriority(t.ID) {
		b.WriteString(styles.TaskPriorityEditing.Render(fmt.Sprintf("[%2d]", t.Priority)))
	} else {
		b.WriteString(styles.TaskPriority.Render(fmt.Sprintf(" %2d ", t.Priority)))
	}
	b.WriteString(" ")

	bodyWidth := width - bodyX0
	if bodyWidth < 1 {
		return b.String()
	}

	body := styles.TaskColorStyle(t.Color).Width(bodyWidth).MaxWidth(bodyWidth)
	var text string
	if r.IsEditing(t.ID) {
		text = r.EditInput.View()
	} else {
		text = truncateString(t.Text, bodyWidth-1)
	}
	if t.Selected {
		body = body.Inherit(styles.TaskSelected)
	}
	if r.Drag.Active() && r.Drag.Hover == i && r.Drag.Hover != r.Drag.Source {
		body = body.Inherit(styles.TaskDropTarget)
	}
	b.WriteString(body.Render(text))

	return b.String()
}

func (r *Renderer) renderFooter() string {
	row := &segments{y: listTop + r.TaskViewport.Height + 1, l: &r.Layout}

	if r.Store.AnySelected() {
		row.region(state.RegionDeleteButton, 0, styles.Button.Render("Delete selected"))
	} else {
		row.add(styles.ButtonDisabled.Render("Delete selected"))
	}

	if r.StatusMsg != "" {
		row.add("  ")
		style := styles.StatusBarSuccess
		if r.StatusErr {
			style = styles.StatusBarError
		}
		row.add(style.Render(truncateString(r.StatusMsg, r.Width-row.x-2)))
	}

	return row.out.String()
}

func (r *Renderer) renderHints() string {
	if r.CommandLine.Active {
		return r.renderCommandLine()
	}
	if !r.ShowHints {
		return ""
	}

	var hints []struct{ key, desc string }
	switch {
	case r.EditingID != "":
		hints = []struct{ key, desc string }{{"enter/esc", "save"}}
	case r.Focus == state.FocusDraft:
		hints = []struct{ key, desc string }{{"enter", "add"}, {"↑/↓", "priority"}, {"esc", "leave field"}}
	case r.EditingPriorityID != "":
		hints = []struct{ key, desc string }{{"+/-", "step"}, {"1-9,0", "set"}, {"enter/esc", "done"}}
	default:
		k := r.Keymap
		hints = []struct{ key, desc string }{
			{k.Up.Key + "/" + k.Down.Key, "move"},
			{k.NewTask.Key, "add"},
			{k.Edit.Key, "edit"},
			{k.EditPriority.Key, "priority"},
			{k.Delete.Key, "delete"},
			{k.Undo.Key, "undo"},
			{k.Help.Key, "help"},
			{k.Quit.Key, "quit"},
		}
	}

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, styles.StatusBarKey.Render(h.key)+" "+styles.StatusBarText.Render(h.desc))
	}
	line := strings.Join(parts, "  ")
	if lipgloss.Width(line) > r.Width && r.Width > 0 {
		line = lipgloss.NewStyle().MaxWidth(r.Width).Render(line)
	}
	return line
}

// renderCommandLine renders the vim-style command line in place of the hints.
func (r *Renderer) renderCommandLine() string {
	line := styles.CommandPrompt.Render(":") + styles.CommandInput.Render(r.CommandLine.Input.View())

	if len(r.CommandLine.Suggestions) > 0 {
		line += "  " + styles.CommandSuggestion.Render(strings.Join(r.CommandLine.Suggestions, " "))
	}
	if lipgloss.Width(line) > r.Width && r.Width > 0 {
		line = lipgloss.NewStyle().MaxWidth(r.Width).Render(line)
	}
	return line
}
