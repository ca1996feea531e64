package console

import (
	"context"
	"fmt"
	"path"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jredh-dev/missionexploit/internal/challenge"
)

func (c *Console) builtins() []Command {
	return []Command{
		{Name: "help", Usage: "help", Summary: "Show this help message", Run: c.help},
		{Name: "ls", Usage: "ls [-a|-la] [dir]", Summary: "List directory contents", Run: c.ls},
		{Name: "cat", Usage: "cat [file]", Summary: "Display file contents", Run: c.cat},
		{Name: "cd", Usage: "cd [dir]", Summary: "Change directory", Run: c.cd},
		{Name: "missionexploit", Usage: "missionexploit", Summary: "Access hash database", Run: c.missionExploit},
		{Name: "hint", Usage: "hint", Summary: "Get progressive hints", Run: c.hint},
		{Name: "submit", Usage: "submit [text]", Summary: "Submit plaintext answer", Run: c.submit},
		{Name: "hash", Usage: "hash [phrase]", Summary: "Generate MD5 hash for testing", Run: c.hash},
		{Name: "find", Usage: "find [name]", Summary: "Search file names", Run: c.find},
		{Name: "grep", Usage: "grep [pattern]", Summary: "Search file contents", Run: c.grep},
		{Name: "history", Usage: "history", Summary: "Show command history", Run: c.history},
		{Name: "clear", Usage: "clear", Summary: "Clear terminal", Run: c.clear},
		{Name: "pwd", Usage: "pwd", Summary: "Print working directory", Run: c.pwd},
		{Name: "whoami", Usage: "whoami", Summary: "Display current user", Run: c.whoami},
		{Name: "date", Usage: "date", Summary: "Display the date", Run: c.date},
		{Name: "uname", Usage: "uname", Summary: "Display system information", Run: c.uname},
		{Name: "echo", Usage: "echo [text]", Summary: "Display text", Run: c.echo},
	}
}

func (c *Console) help(_ context.Context, _ *Session, _ []string) Output {
	var out Output
	out.add(Success, "Available Commands:")
	out.add(Plain, "==================")
	out.add(Plain, "")
	for _, name := range c.order {
		cmd := c.commands[name]
		out.add(Plain, fmt.Sprintf("%-18s - %s", cmd.Usage, cmd.Summary))
	}
	out.add(Plain, "")
	out.add(Warn, "Mission: Find the plaintext that generates the target hash!")
	out.add(Warn, "Start: Run 'missionexploit' to begin your mission.")
	return out
}

func (c *Console) ls(_ context.Context, s *Session, args []string) Output {
	var out Output
	long, hidden := false, false
	target := s.Cwd
	for _, a := range words(args) {
		if strings.HasPrefix(a, "-") {
			long = long || strings.Contains(a, "l")
			hidden = hidden || strings.Contains(a, "a")
			continue
		}
		target = resolve(s.Cwd, a)
	}

	node, ok := c.fs.Lookup(target)
	if !ok || !node.IsDir() {
		out.add(Error, "Not a directory")
		return out
	}

	names := node.Names(hidden)
	if !long {
		out.add(Plain, strings.Join(names, "  "))
		return out
	}
	for _, name := range names {
		child := node.Children[name]
		mode, size := "-rw-r--r--", strconv.Itoa(utf8.RuneCountInString(child.Content))
		if child.IsDir() {
			mode, size = "drwxr-xr-x", "4096"
		}
		out.add(Plain, fmt.Sprintf("%s  1 root root  %8s Jan 15 10:24 %s", mode, size, name))
	}
	return out
}

func (c *Console) cat(_ context.Context, s *Session, args []string) Output {
	var out Output
	args = words(args)
	if len(args) == 0 {
		out.add(Error, "Usage: cat [filename]")
		return out
	}
	name := args[0]
	node, ok := c.fs.Lookup(resolve(s.Cwd, name))
	switch {
	case !ok:
		out.add(Error, "cat: "+name+": No such file or directory")
	case node.IsDir():
		out.add(Error, "cat: "+name+": Is a directory")
	default:
		for _, l := range strings.Split(node.Content, "\n") {
			out.add(Plain, l)
		}
	}
	return out
}

func (c *Console) cd(_ context.Context, s *Session, args []string) Output {
	var out Output
	args = words(args)
	if len(args) == 0 {
		s.Cwd = HomeDir
		return out
	}
	name := args[0]
	p := resolve(s.Cwd, name)
	node, ok := c.fs.Lookup(p)
	switch {
	case !ok:
		out.add(Error, "cd: "+name+": No such file or directory")
	case !node.IsDir():
		out.add(Error, "cd: "+name+": Not a directory")
	default:
		s.Cwd = p
	}
	return out
}

func (c *Console) missionExploit(_ context.Context, _ *Session, _ []string) Output {
	var out Output
	out.add(Success, "MISSION EXPLOIT PROTOCOL ACTIVATED")
	out.add(Success, "====================================")
	out.add(Plain, "")
	out.add(Info, "Hash database successfully accessed.")
	out.add(Warn, "Check hashes.txt for intercepted data.")
	out.add(Plain, "")
	out.add(Info, "Decode hashes to plaintext and submit for validation.")
	return out
}

func (c *Console) hint(_ context.Context, s *Session, _ []string) Output {
	var out Output
	if s.HintIndex >= len(hints) {
		out.add(Warn, "No more hints available.")
		return out
	}
	out.add(Hint, hints[s.HintIndex])
	s.HintIndex++
	return out
}

func (c *Console) submit(ctx context.Context, _ *Session, args []string) Output {
	var out Output
	if len(args) == 0 {
		out.add(Error, "Usage: submit [your_plaintext_answer]")
		out.add(Info, "Example: submit HELLO WORLD")
		return out
	}

	plaintext := strings.TrimSpace(strings.Join(args, " "))
	if plaintext == "" {
		out.add(Error, "Please provide a non-empty answer.")
		return out
	}

	out.add(Info, "Submitting: "+plaintext)
	out.add(Warn, "Validating with server...")

	if c.submitter == nil {
		out.add(Error, "Connection error. Is the server running?")
		return out
	}
	v, err := c.submitter.Submit(ctx, plaintext)
	if err != nil {
		out.add(Error, "Connection error. Is the server running?")
		return out
	}

	if v.OK {
		out.add(Success, "🎉 MISSION COMPLETE! 🎉")
		out.add(Success, "Flag: "+v.Reward)
		return out
	}
	out.add(Error, v.Message)
	out.add(Info, "Keep trying! Use 'hint' if you need help.")
	return out
}

func (c *Console) hash(_ context.Context, _ *Session, args []string) Output {
	var out Output
	if len(args) == 0 {
		out.add(Error, "Usage: hash [phrase]")
		out.add(Warn, "Generate MD5 hash for testing purposes")
		out.add(Warn, "Use this to verify your solutions!")
		return out
	}
	text := strings.Join(args, " ")
	out.add(Success, "Input: "+text)
	out.add(Success, "MD5:   "+challenge.Digest(text))
	out.add(Info, "Use this hash for comparison and testing.")
	return out
}

func (c *Console) find(_ context.Context, _ *Session, args []string) Output {
	var out Output
	args = words(args)
	if len(args) == 0 {
		out.add(Error, "Usage: find [filename]")
		return out
	}
	term := strings.ToLower(args[0])

	var results []string
	c.fs.Walk("/", func(p string, _ *Node) {
		if strings.Contains(strings.ToLower(path.Base(p)), term) {
			results = append(results, p)
		}
	})

	if len(results) == 0 {
		out.add(Warn, "No files found matching: "+args[0])
		return out
	}
	out.add(Success, fmt.Sprintf("Found %d file(s):", len(results)))
	for _, p := range results {
		out.add(Plain, "  "+p)
	}
	return out
}

func (c *Console) grep(_ context.Context, _ *Session, args []string) Output {
	var out Output
	args = words(args)
	if len(args) == 0 {
		out.add(Error, "Usage: grep [pattern]")
		return out
	}
	pattern := strings.ToLower(args[0])

	var results []string
	c.fs.Walk("/", func(p string, n *Node) {
		if n.IsDir() {
			return
		}
		for _, l := range strings.Split(n.Content, "\n") {
			if strings.Contains(strings.ToLower(l), pattern) {
				results = append(results, p+": "+strings.TrimSpace(l))
			}
		}
	})

	if len(results) == 0 {
		out.add(Warn, "No matches found for: "+pattern)
		return out
	}
	out.add(Success, fmt.Sprintf("Found %d match(es):", len(results)))
	for _, r := range results {
		out.add(Info, r)
	}
	return out
}

func (c *Console) history(_ context.Context, s *Session, _ []string) Output {
	var out Output
	for i, h := range s.History {
		out.add(Plain, fmt.Sprintf("%5d  %s", i+1, h))
	}
	return out
}

func (c *Console) clear(_ context.Context, _ *Session, _ []string) Output {
	return Output{Clear: true}
}

func (c *Console) pwd(_ context.Context, s *Session, _ []string) Output {
	return Output{Lines: []Line{{Kind: Plain, Text: s.Cwd}}}
}

func (c *Console) whoami(_ context.Context, _ *Session, _ []string) Output {
	return Output{Lines: []Line{{Kind: Plain, Text: "root"}}}
}

func (c *Console) date(_ context.Context, _ *Session, _ []string) Output {
	text := c.now().Format("Mon Jan 02 2006 15:04:05 GMT-0700 (MST)")
	return Output{Lines: []Line{{Kind: Plain, Text: text}}}
}

func (c *Console) uname(_ context.Context, _ *Session, _ []string) Output {
	return Output{Lines: []Line{{Kind: Plain, Text: unameText}}}
}

func (c *Console) echo(_ context.Context, _ *Session, args []string) Output {
	return Output{Lines: []Line{{Kind: Plain, Text: strings.Join(args, " ")}}}
}
