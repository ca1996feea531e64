// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2026 Jared Redh. All rights reserved.

package main

import (
	"flag"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/jredh-dev/missionexploit/cmd/console/internal/app"
	"github.com/jredh-dev/missionexploit/internal/console"
)

// Build-time variables set via -ldflags.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	server := flag.String("server", envOr("EXPLOIT_URL", "http://localhost:3000"), "exploit service base URL")
	path := flag.String("path", app.DefaultSubmitPath, "submit route on the server")
	flag.Parse()

	if *showVersion {
		fmt.Printf("console %s (commit=%s, built=%s)\n", version, commit, buildDate)
		os.Exit(0)
	}

	con := console.New(app.NewClient(*server, *path))

	m := app.New(con)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "console: %v\n", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
