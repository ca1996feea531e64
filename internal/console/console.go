// Package console implements the mission terminal: a line interpreter over a
// read-only file tree, with one command (submit) that reaches the server.
//
// A Console is built once and never changes. All per-player state lives in a
// Session that the caller owns and passes to every Execute call.
package console

import (
	"context"
	"sort"
	"strings"
	"time"
)

// Kind tags an output line so a front-end can style it.
type Kind int

const (
	Plain Kind = iota
	Info
	Success
	Warn
	Error
	Hint
)

// Line is a single line of console output.
type Line struct {
	Kind Kind
	Text string
}

// Output is the result of one command.
type Output struct {
	Lines []Line
	Clear bool // front-end should wipe the scrollback before printing Lines
}

func (o *Output) add(k Kind, text string) {
	o.Lines = append(o.Lines, Line{Kind: k, Text: text})
}

// Verdict is the server's answer to a submission.
type Verdict struct {
	OK      bool
	Reward  string
	Message string
}

// Submitter forwards a plaintext guess to the validator.
type Submitter interface {
	Submit(ctx context.Context, plaintext string) (Verdict, error)
}

// Session is the mutable state of one terminal.
type Session struct {
	Cwd       string
	HintIndex int
	History   []string
}

// NewSession returns a session positioned in the agent's home directory.
func NewSession() Session {
	return Session{Cwd: HomeDir}
}

// Clone returns a copy of s that shares no memory with it.
func (s Session) Clone() Session {
	s.History = append([]string(nil), s.History...)
	return s
}

// Handler runs a command. args are the words after the command name, split
// on single spaces, so they may contain empty strings.
type Handler func(ctx context.Context, s *Session, args []string) Output

// Command is an entry in the command table.
type Command struct {
	Name    string
	Usage   string
	Summary string
	Run     Handler
}

// Console dispatches input lines to commands.
type Console struct {
	commands  map[string]Command
	order     []string // help listing order
	submitter Submitter
	fs        *Node
	now       func() time.Time
}

// Option configures a Console.
type Option func(*Console)

// WithClock overrides the time source used by the date command.
func WithClock(now func() time.Time) Option {
	return func(c *Console) { c.now = now }
}

// New builds a console whose submit command uses sub.
func New(sub Submitter, opts ...Option) *Console {
	c := &Console{
		submitter: sub,
		fs:        newFileSystem(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.commands = make(map[string]Command)
	for _, cmd := range c.builtins() {
		c.commands[cmd.Name] = cmd
		c.order = append(c.order, cmd.Name)
	}
	return c
}

// Commands returns the command table sorted by name.
func (c *Console) Commands() []Command {
	out := make([]Command, 0, len(c.commands))
	for _, cmd := range c.commands {
		out = append(out, cmd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Execute runs one input line against s.
func (c *Console) Execute(ctx context.Context, s *Session, line string) Output {
	line = strings.TrimSpace(line)
	if line == "" {
		return Output{}
	}
	s.History = append(s.History, line)

	parts := strings.Split(line, " ")
	name, args := parts[0], parts[1:]

	cmd, ok := c.commands[name]
	if !ok {
		return Output{Lines: []Line{
			{Kind: Error, Text: name + ": command not found"},
			{Kind: Warn, Text: "Type 'help' for available commands."},
		}}
	}
	return cmd.Run(ctx, s, args)
}

// Prompt renders the shell prompt for s.
func Prompt(s *Session) string {
	return "root@mission-exploit:" + s.Cwd + "# "
}

// words drops the empty strings produced by repeated spaces.
func words(args []string) []string {
	out := args[:0:0]
	for _, a := range args {
		if a != "" {
			out = append(out, a)
		}
	}
	return out
}
