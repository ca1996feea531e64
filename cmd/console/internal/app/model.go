// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2026 Jared Redh. All rights reserved.

package app

import (
	"github.com/jredh-dev/missionexploit/internal/console"
)

// maxScrollback bounds the lines kept on screen.
const maxScrollback = 500

// Model is the root bubbletea model for the console.
// Exported so tests can construct and drive it directly.
type Model struct {
	con     *console.Console
	session console.Session

	width  int
	height int

	input   string
	histIdx int  // index into session.History while browsing; len(History) when not
	busy    bool // a command is running; input is ignored until it returns

	scroll []console.Line
}

// New creates a fresh Model around con.
func New(con *console.Console) Model {
	return Model{
		con:     con,
		session: console.NewSession(),
		scroll: []console.Line{
			{Kind: console.Success, Text: "Mission Exploit terminal"},
			{Kind: console.Info, Text: "Type 'help' for available commands."},
		},
	}
}

// Session returns a copy of the current session.
func (m Model) Session() console.Session {
	return m.session.Clone()
}

func (m *Model) appendLines(lines ...console.Line) {
	m.scroll = append(m.scroll, lines...)
	if len(m.scroll) > maxScrollback {
		m.scroll = m.scroll[len(m.scroll)-maxScrollback:]
	}
}
