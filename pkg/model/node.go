// Package model defines the tree node type shared by the parsers, the state
// engine, and the renderers.
//
// A document is a forest: an ordered slice of root nodes. Sibling order is
// source order and is never reordered by edits. Folders own an ordered
// Children slice (possibly empty); files never do.
package model

import "fmt"

// Kind distinguishes files from folders.
type Kind int

const (
	KindFile Kind = iota
	KindFolder
)

// String returns the lowercase label used in JSON output and debug logs.
func (k Kind) String() string {
	switch k {
	case KindFolder:
		return "folder"
	default:
		return "file"
	}
}

// MarshalJSON encodes the kind as its string label.
func (k Kind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// UnmarshalJSON decodes "file" or "folder".
func (k *Kind) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"file"`:
		*k = KindFile
	case `"folder"`:
		*k = KindFolder
	default:
		return fmt.Errorf("unknown node kind %s", data)
	}
	return nil
}

// Node is a single entry in the forest.
//
// Invariants (hold after every parse and every edit):
//   - IDs are pairwise distinct within a forest and never reused.
//   - Children is non-nil only for folders.
//   - Depth of a child is exactly its parent's depth plus one; roots sit at
//     depth 0.
type Node struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Kind     Kind    `json:"kind"`
	Children []*Node `json:"children,omitempty"`
	Expanded bool    `json:"expanded,omitempty"`
	Depth    int     `json:"depth"`
}

// IsFolder reports whether the node can carry children.
func (n *Node) IsFolder() bool {
	return n != nil && n.Kind == KindFolder
}

// Clone returns a deep copy of the node and its subtree.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	if n.Children != nil {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}
	return &c
}

// CloneForest deep-copies an entire forest.
func CloneForest(forest []*Node) []*Node {
	if forest == nil {
		return nil
	}
	out := make([]*Node, len(forest))
	for i, n := range forest {
		out[i] = n.Clone()
	}
	return out
}

// Walk visits every node depth-first in source order. Returning false from
// the visitor stops the walk.
func Walk(forest []*Node, visit func(*Node) bool) {
	var walk func(nodes []*Node) bool
	walk = func(nodes []*Node) bool {
		for _, n := range nodes {
			if n == nil {
				continue
			}
			if !visit(n) {
				return false
			}
			if !walk(n.Children) {
				return false
			}
		}
		return true
	}
	walk(forest)
}

// FindByID returns the node with the given id, or nil. Matching is exact;
// duplicate ids are a precondition violation and the first match wins.
func FindByID(forest []*Node, id string) *Node {
	var found *Node
	Walk(forest, func(n *Node) bool {
		if n.ID == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// Count returns the total number of nodes in the forest.
func Count(forest []*Node) int {
	total := 0
	Walk(forest, func(*Node) bool {
		total++
		return true
	})
	return total
}
