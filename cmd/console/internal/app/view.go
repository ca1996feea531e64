// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2026 Jared Redh. All rights reserved.

package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jredh-dev/missionexploit/internal/console"
)

// --- Styles ---

var (
	plainStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCCCCC"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#55AAFF"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF88")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFAA00"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4444")).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CC88FF")).
			Italic(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF88")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func styleFor(k console.Kind) lipgloss.Style {
	switch k {
	case console.Info:
		return infoStyle
	case console.Success:
		return successStyle
	case console.Warn:
		return warnStyle
	case console.Error:
		return errStyle
	case console.Hint:
		return hintStyle
	}
	return plainStyle
}

// View renders the full-screen terminal.
func (m Model) View() tea.View {
	if m.width == 0 {
		v := tea.NewView("loading...")
		v.AltScreen = true
		return v
	}

	// Reserve one row for the prompt.
	rows := m.height - 1
	if rows < 1 {
		rows = 1
	}
	lines := m.scroll
	if len(lines) > rows {
		lines = lines[len(lines)-rows:]
	}

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(styleFor(l.Kind).Render(l.Text))
		b.WriteString("\n")
	}
	if m.busy {
		b.WriteString(dimStyle.Render("..."))
	} else {
		b.WriteString(promptStyle.Render(console.Prompt(&m.session)))
		b.WriteString(m.input)
		b.WriteString("█")
	}

	v := tea.NewView(b.String())
	v.AltScreen = true
	return v
}
