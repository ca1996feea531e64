// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2026 Jared Redh. All rights reserved.

// genhash prints the artifacts needed to deploy a new challenge variant:
// the transformed text, its UTF-16 code units, the digest and the env vars
// the exploit service reads.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jredh-dev/missionexploit/internal/challenge"
)

// Build-time variables set via -ldflags.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("genhash", flag.ContinueOnError)
	fs.SetOutput(stderr)
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintf(stdout, "genhash %s (commit=%s, built=%s)\n", version, commit, buildDate)
		return 0
	}

	if fs.NArg() == 0 || fs.Arg(0) == "" {
		fmt.Fprintln(stdout, `Usage: genhash "YOUR PLAINTEXT HERE"`)
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Example:")
		fmt.Fprintln(stdout, `genhash "IN FRONT OF FOUNTAIN"`)
		return 1
	}

	a := challenge.Generate(fs.Arg(0))

	fmt.Fprintln(stdout, "🔧 Challenge Hash Generator")
	fmt.Fprintln(stdout, "===========================")
	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "Original Plaintext: %q\n", a.Plaintext)
	fmt.Fprintf(stdout, "XORed Text (key=%d): %q\n", challenge.XorKey, a.Transformed)

	units := make([]string, len(a.Units))
	for i, u := range a.Units {
		units[i] = fmt.Sprint(u)
	}
	fmt.Fprintf(stdout, "XORed Bytes: [%s]\n", strings.Join(units, ", "))
	fmt.Fprintf(stdout, "MD5 Hash: %s\n", a.Digest)

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "🔧 Environment Variables:")
	fmt.Fprintf(stdout, "FLAG=%s\n", a.Flag())
	fmt.Fprintf(stdout, "MD5_XOR_HASH=%s\n", a.Digest)

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "✅ Verification Test:")
	if a.Verify() {
		fmt.Fprintln(stdout, "Hash matches: ✅ YES")
		return 0
	}
	fmt.Fprintln(stdout, "Hash matches: ❌ NO")
	return 1
}
