// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2026 Jared Redh. All rights reserved.

package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun_Fountain(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"IN FRONT OF FOUNTAIN"}, &out, &errOut)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut.String())
	}

	for _, want := range []string{
		`Original Plaintext: "IN FRONT OF FOUNTAIN"`,
		"XORed Text (key=77):",
		"XORed Bytes: [4, 3, 109,",
		"MD5 Hash: 458f27e0d23c8113c52ab652dff24e6e",
		"FLAG=flag{IN FRONT OF FOUNTAIN}",
		"MD5_XOR_HASH=458f27e0d23c8113c52ab652dff24e6e",
		"Hash matches: ✅ YES",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRun_NoArgs(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run(nil, &out, &errOut); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.HasPrefix(out.String(), "Usage: genhash") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestRun_Version(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"-version"}, &out, &errOut); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.HasPrefix(out.String(), "genhash dev") {
		t.Errorf("unexpected output: %s", out.String())
	}
}
