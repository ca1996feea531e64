// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2026 Jared Redh. All rights reserved.

// analyze tests candidate phrases against the intercepted hashes and reports
// which one reproduces the real meeting location.
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

// realHash is the one intercepted hash that is not a decoy.
const realHash = "Hash-Echo"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.SetOutput(stderr)
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintf(stdout, "analyze %s (commit=%s, built=%s)\n", version, commit, buildDate)
		return 0
	}

	// Extra positional args are tried after the built-in phrases.
	phrases := append(append([]string(nil), challenge.KnownPhrases...), fs.Args()...)

	fmt.Fprintln(stdout, "🕵️  CTF Hash Analysis Tool")
	fmt.Fprintln(stdout, "============================")
	fmt.Fprintln(stdout, "Analyzing intercepted hashes to find the real meeting location...")

	var location string
	for _, f := range challenge.Analyze(challenge.InterceptedHashes, phrases) {
		fmt.Fprintf(stdout, "\n🔍 Analyzing %s: %s\n", f.Hash.Name, f.Hash.Digest)
		fmt.Fprintln(stdout, "="+strings.Repeat("=", 50))
		if !f.Found {
			fmt.Fprintln(stdout, "❌ No match found with known test phrases")
			fmt.Fprintln(stdout, "   This hash likely contains different plaintext")
			continue
		}
		fmt.Fprintln(stdout, "✅ MATCH FOUND!")
		fmt.Fprintf(stdout, "   Plaintext: %q\n", f.Phrase)
		fmt.Fprintf(stdout, "   XOR result: %q\n", challenge.Transform(f.Phrase, challenge.XorKey))
		fmt.Fprintf(stdout, "   MD5: %s\n", challenge.TransformDigest(f.Phrase))
		if f.Hash.Name == realHash {
			location = f.Phrase
		}
	}

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "🎯 ANALYSIS SUMMARY")
	fmt.Fprintln(stdout, "===================")
	if location == "" {
		fmt.Fprintln(stdout, "❌ Real location not identified in current analysis")
		return 1
	}
	fmt.Fprintf(stdout, "✅ Real meeting location found: %q\n", location)
	fmt.Fprintf(stdout, "🏆 Submit this answer: submit %s\n", location)
	return 0
}
