package console

import (
	"path"
	"sort"
	"strings"
)

// HomeDir is where every session starts and where a bare cd returns.
const HomeDir = "/home/agent"

// Node is an entry in the read-only file tree: a file when Children is nil,
// a directory otherwise.
type Node struct {
	Content  string
	Children map[string]*Node
}

// IsDir reports whether n is a directory.
func (n *Node) IsDir() bool { return n.Children != nil }

// Names returns the directory's entries in lexical order.
func (n *Node) Names(hidden bool) []string {
	names := make([]string, 0, len(n.Children))
	for name := range n.Children {
		if !hidden && strings.HasPrefix(name, ".") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup walks an absolute, cleaned path from n.
func (n *Node) Lookup(p string) (*Node, bool) {
	cur := n
	for _, seg := range strings.Split(strings.Trim(p, "/"), "/") {
		if seg == "" {
			continue
		}
		if !cur.IsDir() {
			return nil, false
		}
		next, ok := cur.Children[seg]
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Walk visits every node below n depth-first, in lexical order.
func (n *Node) Walk(base string, fn func(p string, node *Node)) {
	for _, name := range n.Names(true) {
		child := n.Children[name]
		p := path.Join(base, name)
		fn(p, child)
		if child.IsDir() {
			child.Walk(p, fn)
		}
	}
}

// resolve turns arg into an absolute path relative to cwd.
func resolve(cwd, arg string) string {
	if strings.HasPrefix(arg, "/") {
		return path.Clean(arg)
	}
	return path.Join(cwd, arg)
}

func dir(children map[string]*Node) *Node { return &Node{Children: children} }
func file(content string) *Node           { return &Node{Content: content} }

func newFileSystem() *Node {
	return dir(map[string]*Node{
		"home": dir(map[string]*Node{
			"agent": dir(map[string]*Node{
				".bash_history": file(bashHistory),
				"readme.txt":    file(readmeText),
				"intel.txt":     file(intelText),
				"methods.txt":   file(methodsText),
				"hashes.txt":    file(hashesText),
			}),
		}),
	})
}
