// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2026 Jared Redh. All rights reserved.

package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun_FindsEcho(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run(nil, &out, &errOut); code != 0 {
		t.Fatalf("exit code = %d\n%s", code, out.String())
	}

	got := out.String()
	if n := strings.Count(got, "✅ MATCH FOUND!"); n != 1 {
		t.Errorf("matches = %d, want 1", n)
	}
	if n := strings.Count(got, "❌ No match found"); n != 4 {
		t.Errorf("misses = %d, want 4", n)
	}
	for _, want := range []string{
		"🔍 Analyzing Hash-Echo: 458f27e0d23c8113c52ab652dff24e6e",
		`Plaintext: "IN FRONT OF FOUNTAIN"`,
		"submit IN FRONT OF FOUNTAIN",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRun_Version(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"-version"}, &out, &errOut); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.HasPrefix(out.String(), "analyze dev") {
		t.Errorf("unexpected output: %s", out.String())
	}
}
