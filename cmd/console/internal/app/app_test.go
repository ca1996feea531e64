// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2026 Jared Redh. All rights reserved.

package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/jredh-dev/missionexploit/cmd/console/internal/app"
	"github.com/jredh-dev/missionexploit/internal/console"
)

// --- Fake submitter ---

type fakeSubmitter struct {
	got     []string
	verdict console.Verdict
	err     error
}

func (f *fakeSubmitter) Submit(_ context.Context, plaintext string) (console.Verdict, error) {
	f.got = append(f.got, plaintext)
	return f.verdict, f.err
}

// --- Test helpers ---

func mustModel(iface tea.Model) app.Model {
	return iface.(app.Model)
}

func typeText(m app.Model, s string) app.Model {
	for _, c := range s {
		next, _ := m.Update(tea.KeyPressMsg{Code: c, Text: string(c)})
		m = mustModel(next)
	}
	return m
}

func press(m app.Model, code rune) (app.Model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyPressMsg{Code: code})
	return mustModel(next), cmd
}

func setSize(m app.Model, w, h int) app.Model {
	next, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return mustModel(next)
}

// runCmd executes a tea.Cmd and dispatches the resulting message into the model.
func runCmd(m app.Model, cmd tea.Cmd) (app.Model, tea.Cmd) {
	if cmd == nil {
		return m, nil
	}
	next, nextCmd := m.Update(cmd())
	return mustModel(next), nextCmd
}

// run types line, presses enter and lets the command finish.
func run(m app.Model, line string) app.Model {
	m = typeText(m, line)
	m, cmd := press(m, tea.KeyEnter)
	m, _ = runCmd(m, cmd)
	return m
}

var ansi = regexp.MustCompile(`\x1b\[[0-9;:]*m`)

// plainView renders m and strips styling.
func plainView(m app.Model) string {
	return ansi.ReplaceAllString(m.View().Content, "")
}

func viewContains(t *testing.T, m app.Model, want string) {
	t.Helper()
	if got := plainView(m); !strings.Contains(got, want) {
		t.Errorf("view does not contain %q:\n%s", want, got)
	}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// --- Tests ---

func TestNew_InitialView(t *testing.T) {
	m := app.New(console.New(nil))
	v := m.View()
	if !v.AltScreen {
		t.Error("expected AltScreen enabled")
	}

	m = setSize(m, 80, 24)
	viewContains(t, m, "root@mission-exploit:/home/agent#")
	viewContains(t, m, "Type 'help'")
}

func TestExecute_Pwd(t *testing.T) {
	m := setSize(app.New(console.New(nil)), 100, 30)
	m = run(m, "pwd")
	viewContains(t, m, console.HomeDir)

	if got := m.Session().History; len(got) != 1 || got[0] != "pwd" {
		t.Errorf("history = %v, want [pwd]", got)
	}
}

func TestExecute_CdUpdatesPrompt(t *testing.T) {
	m := setSize(app.New(console.New(nil)), 100, 30)
	m = run(m, "cd /")
	if got := m.Session().Cwd; got != "/" {
		t.Fatalf("cwd = %q, want /", got)
	}
	viewContains(t, m, "root@mission-exploit:/#")
}

func TestExecute_BusyIgnoresInput(t *testing.T) {
	m := setSize(app.New(console.New(nil)), 100, 30)
	m = typeText(m, "pwd")
	m, cmd := press(m, tea.KeyEnter)
	if cmd == nil {
		t.Fatal("expected a command for non-empty input")
	}

	m = typeText(m, "xyz")
	viewContains(t, m, "...")

	m, _ = runCmd(m, cmd)
	viewContains(t, m, "root@mission-exploit:/home/agent# █")
}

func TestSubmit_Success(t *testing.T) {
	sub := &fakeSubmitter{verdict: console.Verdict{OK: true, Reward: "flag{TEST}", Message: "success"}}
	m := setSize(app.New(console.New(sub)), 100, 30)
	m = run(m, "submit IN FRONT OF FOUNTAIN")

	if len(sub.got) != 1 || sub.got[0] != "IN FRONT OF FOUNTAIN" {
		t.Fatalf("submitted %v", sub.got)
	}
	viewContains(t, m, "MISSION COMPLETE")
	viewContains(t, m, "flag{TEST}")
}

func TestSubmit_ConnectionError(t *testing.T) {
	sub := &fakeSubmitter{err: errors.New("refused")}
	m := setSize(app.New(console.New(sub)), 100, 30)
	m = run(m, "submit guess")
	viewContains(t, m, "Connection error. Is the server running?")
}

func TestClear(t *testing.T) {
	m := setSize(app.New(console.New(nil)), 100, 30)
	m = run(m, "whoami")
	m = run(m, "clear")
	if got := plainView(m); strings.Contains(got, "whoami") {
		t.Errorf("expected scrollback cleared, got:\n%s", got)
	}
}

func TestHistoryNavigation(t *testing.T) {
	m := setSize(app.New(console.New(nil)), 100, 30)
	m = run(m, "pwd")
	m = run(m, "whoami")

	m, _ = press(m, tea.KeyUp)
	viewContains(t, m, "# whoami█")
	m, _ = press(m, tea.KeyUp)
	viewContains(t, m, "# pwd█")
	m, _ = press(m, tea.KeyDown)
	viewContains(t, m, "# whoami█")
	m, _ = press(m, tea.KeyDown)
	viewContains(t, m, "/home/agent# █")
}

func TestBackspace(t *testing.T) {
	m := setSize(app.New(console.New(nil)), 100, 30)
	m = typeText(m, "pwdx")
	m, _ = press(m, tea.KeyBackspace)
	viewContains(t, m, "# pwd█")
}

func TestExitQuits(t *testing.T) {
	m := setSize(app.New(console.New(nil)), 100, 30)
	m = typeText(m, "exit")
	_, cmd := press(m, tea.KeyEnter)
	if !isQuit(cmd) {
		t.Error("expected exit to quit")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := app.New(console.New(nil))
	next, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	_ = mustModel(next)
	if !isQuit(cmd) {
		t.Error("expected ctrl+c to quit")
	}
}

// --- HTTP client ---

func TestClient_Submit(t *testing.T) {
	var gotPath, gotPlaintext string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotPlaintext = body["plaintext"]
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "success",
			"flag":    "flag{X}",
		})
	}))
	defer srv.Close()

	c := app.NewClient(srv.URL+"/", "")
	v, err := c.Submit(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if gotPath != app.DefaultSubmitPath {
		t.Errorf("path = %q, want %q", gotPath, app.DefaultSubmitPath)
	}
	if gotPlaintext != "hello" {
		t.Errorf("plaintext = %q", gotPlaintext)
	}
	if !v.OK || v.Reward != "flag{X}" || v.Message != "success" {
		t.Errorf("verdict = %+v", v)
	}
}

func TestClient_ServerErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"message":"server error occurred."}`))
	}))
	defer srv.Close()

	v, err := app.NewClient(srv.URL, ".netlify/functions/submit").Submit(context.Background(), "x")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if v.OK || v.Message != "server error occurred." {
		t.Errorf("verdict = %+v", v)
	}
}

func TestClient_NonJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>"))
	}))
	defer srv.Close()

	if _, err := app.NewClient(srv.URL, "").Submit(context.Background(), "x"); err == nil {
		t.Error("expected decode error")
	}
}
