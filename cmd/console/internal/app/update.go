// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2026 Jared Redh. All rights reserved.

package app

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/jredh-dev/missionexploit/internal/console"
)

// Init satisfies tea.Model. Returns nil (no initial commands).
func (m Model) Init() tea.Cmd {
	return nil
}

// Update is the bubbletea update function.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case execResultMsg:
		return m.handleExecResult(msg)
	}

	return m, nil
}

// --- Key Handling ---

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	k := msg.Key()

	if k.Code == 'c' && k.Mod == tea.ModCtrl {
		return m, tea.Quit
	}
	if m.busy {
		return m, nil
	}

	switch k.Code {
	case tea.KeyEnter:
		return m.submitLine()
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			r := []rune(m.input)
			m.input = string(r[:len(r)-1])
		}
	case tea.KeyUp:
		if m.histIdx > 0 {
			m.histIdx--
			m.input = m.session.History[m.histIdx]
		}
	case tea.KeyDown:
		switch {
		case m.histIdx < len(m.session.History)-1:
			m.histIdx++
			m.input = m.session.History[m.histIdx]
		case m.histIdx == len(m.session.History)-1:
			m.histIdx++
			m.input = ""
		}
	case tea.KeyEscape:
		m.input = ""
		m.histIdx = len(m.session.History)
	default:
		if k.Text != "" {
			m.input += k.Text
		}
	}
	return m, nil
}

func (m Model) submitLine() (tea.Model, tea.Cmd) {
	line := m.input
	m.input = ""
	m.appendLines(console.Line{Kind: console.Plain, Text: console.Prompt(&m.session) + line})

	if strings.TrimSpace(line) == "exit" {
		return m, tea.Quit
	}
	if strings.TrimSpace(line) == "" {
		return m, nil
	}

	m.busy = true
	return m, m.execute(line)
}

// execute runs line against a private copy of the session so the command can
// block on the network without racing the model.
func (m Model) execute(line string) tea.Cmd {
	con := m.con
	session := m.session.Clone()
	return func() tea.Msg {
		out := con.Execute(context.Background(), &session, line)
		return execResultMsg{session: session, out: out}
	}
}

func (m Model) handleExecResult(msg execResultMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	m.session = msg.session
	m.histIdx = len(m.session.History)
	if msg.out.Clear {
		m.scroll = nil
	}
	m.appendLines(msg.out.Lines...)
	return m, nil
}
