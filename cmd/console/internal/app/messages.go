// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2026 Jared Redh. All rights reserved.

package app

import "github.com/jredh-dev/missionexploit/internal/console"

// execResultMsg carries the session as it stands after a command ran, plus
// what the command printed.
type execResultMsg struct {
	session console.Session
	out     console.Output
}
