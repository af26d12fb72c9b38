// Package facade wraps github.com/smacker/go-tree-sitter so the rest of the
// analyzer never touches a *sitter.Node directly. It provides the
// capabilities the spec calls the "AST Facade": identifier/declaration
// resolution, function-like resolution, binding-pattern walking and JSX
// attribute access, all fail-soft (callers get empty results, never panics,
// on unresolved or malformed input).
package facade

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Node is a thin, file-scoped wrapper around a tree-sitter node. It never
// escapes a File's lifetime.
type Node struct {
	raw  *sitter.Node
	file *File
}

func wrap(n *sitter.Node, f *File) *Node {
	if n == nil {
		return nil
	}
	return &Node{raw: n, file: f}
}

// IsNil reports whether the wrapped node is absent — the facade's
// fail-soft idiom favors this over returning untyped nil *Node values.
func (n *Node) IsNil() bool { return n == nil || n.raw == nil }

func (n *Node) Type() string {
	if n.IsNil() {
		return ""
	}
	return n.raw.Type()
}

// Text returns the exact source text spanned by the node.
func (n *Node) Text() string {
	if n.IsNil() {
		return ""
	}
	return n.raw.Content(n.file.src)
}

func (n *Node) StartByte() uint32 {
	if n.IsNil() {
		return 0
	}
	return n.raw.StartByte()
}

func (n *Node) EndByte() uint32 {
	if n.IsNil() {
		return 0
	}
	return n.raw.EndByte()
}

// Line returns the 1-based source line of the node's start.
func (n *Node) Line() int {
	if n.IsNil() {
		return 0
	}
	return int(n.raw.StartPoint().Row) + 1
}

// Column returns the 0-based source column of the node's start.
func (n *Node) Column() int {
	if n.IsNil() {
		return 0
	}
	return int(n.raw.StartPoint().Column)
}

func (n *Node) Location() Location {
	if n.IsNil() {
		return Location{}
	}
	return Location{File: n.file.Path, Line: n.Line(), Column: n.Column()}
}

func (n *Node) Parent() *Node {
	if n.IsNil() {
		return nil
	}
	return wrap(n.raw.Parent(), n.file)
}

func (n *Node) ChildByFieldName(name string) *Node {
	if n.IsNil() {
		return nil
	}
	return wrap(n.raw.ChildByFieldName(name), n.file)
}

func (n *Node) ChildCount() int {
	if n.IsNil() {
		return 0
	}
	return int(n.raw.ChildCount())
}

func (n *Node) Child(i int) *Node {
	if n.IsNil() || i < 0 || i >= n.ChildCount() {
		return nil
	}
	return wrap(n.raw.Child(i), n.file)
}

// Children returns every child, named or anonymous (punctuation, keywords).
func (n *Node) Children() []*Node {
	if n.IsNil() {
		return nil
	}
	count := n.ChildCount()
	out := make([]*Node, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, n.Child(i))
	}
	return out
}

func (n *Node) NamedChildCount() int {
	if n.IsNil() {
		return 0
	}
	return int(n.raw.NamedChildCount())
}

func (n *Node) NamedChild(i int) *Node {
	if n.IsNil() || i < 0 || i >= n.NamedChildCount() {
		return nil
	}
	return wrap(n.raw.NamedChild(i), n.file)
}

// NamedChildren returns only the grammar-named children, skipping anonymous
// tokens like commas, braces and keywords.
func (n *Node) NamedChildren() []*Node {
	if n.IsNil() {
		return nil
	}
	count := n.NamedChildCount()
	out := make([]*Node, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, n.NamedChild(i))
	}
	return out
}

// Walk performs a pre-order traversal, calling visit for every node
// including the receiver. Returning false from visit skips the subtree.
func (n *Node) Walk(visit func(*Node) bool) {
	if n.IsNil() {
		return
	}
	if !visit(n) {
		return
	}
	for _, child := range n.Children() {
		child.Walk(visit)
	}
}

// File returns the owning file.
func (n *Node) File() *File {
	if n.IsNil() {
		return nil
	}
	return n.file
}
