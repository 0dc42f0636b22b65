package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/todo-tui/internal/tui/styles"
)

// renderHelp renders the keyboard shortcut overlay in two columns.
func (r *Renderer) renderHelp() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Keyboard Shortcuts"))
	b.WriteString("\n")

	// Column 1: Navigation, General
	// Column 2: Task Actions
	col1Sections := map[string]bool{
		"Navigation": true,
		"General":    true,
	}

	var col1Content, col2Content strings.Builder
	currentColumn := &col1Content

	keyStyle := styles.HelpKey.Width(22).Align(lipgloss.Right).PaddingRight(2)
	for _, item := range r.Keymap.HelpItems() {
		if len(item) < 2 {
			continue
		}
		key, desc := item[0], item[1]

		// Section header
		if desc == "" && key != "" {
			if col1Sections[key] {
				currentColumn = &col1Content
			} else {
				currentColumn = &col2Content
			}
			currentColumn.WriteString("\n" + styles.SectionHeader.Render(" "+key+" ") + "\n")
			continue
		}

		if key == "" && desc == "" {
			continue
		}

		currentColumn.WriteString(keyStyle.Render(key) + styles.HelpDesc.Render(desc) + "\n")
	}

	colWidth := r.Width / 2
	if colWidth > 50 {
		colWidth = 50
	}
	columnStyle := lipgloss.NewStyle().Width(colWidth).PaddingLeft(2).PaddingRight(2)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		columnStyle.Render(col1Content.String()),
		columnStyle.Render(col2Content.String()),
	))
	b.WriteString("\n\n")

	footer := styles.HelpDesc.Render("Press esc or ? to close")
	b.WriteString(lipgloss.NewStyle().Width(r.Width).Align(lipgloss.Center).Render(footer))

	return b.String()
}
