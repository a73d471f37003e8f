// Package model defines the hierarchical secrets model produced by import:
// a singly-owned tree of group and record nodes with per-record field bags,
// plus a recycle bin for trashed items.
package model

import (
	"github.com/google/uuid"
)

// Node is one element of the tree: either a group (with children) or a
// record (with a Fields bag). Each node has exactly one parent, except the
// roots owned by DatabaseModel. The parent pointer is non-owning and only
// used for display and detach.
type Node struct {
	ID    string
	Title string
	Icon  Icon

	group  bool
	parent *Node

	children []*Node
	// groupIndex maps child-group title to node, so find-or-create by
	// title is one lookup instead of a sibling rescan per insert.
	groupIndex map[string]*Node

	Fields *Fields
}

// NewGroup creates a detached group node.
func NewGroup(title string) *Node {
	return &Node{
		ID:         uuid.NewString(),
		Title:      title,
		Icon:       IconFolder,
		group:      true,
		groupIndex: make(map[string]*Node),
	}
}

// NewRecord creates a detached record node with an empty field bag.
func NewRecord(title string) *Node {
	return &Node{
		ID:     uuid.NewString(),
		Title:  title,
		Fields: NewFields(),
	}
}

// IsGroup reports whether the node is a group.
func (n *Node) IsGroup() bool { return n.group }

// Parent returns the owning group, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's children in insertion order.
func (n *Node) Children() []*Node { return n.children }

// AddChild attaches c under n. If c is already attached elsewhere it is
// detached first, so single ownership always holds.
func (n *Node) AddChild(c *Node) {
	if c.parent != nil {
		c.parent.removeChild(c)
	}
	c.parent = n
	n.children = append(n.children, c)
	if c.group {
		// First group with a given title wins the index slot; duplicate
		// titles can only appear if a caller bypasses ChildGroupByTitle.
		if _, ok := n.groupIndex[c.Title]; !ok {
			n.groupIndex[c.Title] = c
		}
	}
}

func (n *Node) removeChild(c *Node) {
	for i, ch := range n.children {
		if ch == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			break
		}
	}
	if c.group && n.groupIndex[c.Title] == c {
		delete(n.groupIndex, c.Title)
	}
	c.parent = nil
}

// ChildGroupByTitle returns the first child group with exactly the given
// title. Comparison is case-sensitive.
func (n *Node) ChildGroupByTitle(title string) (*Node, bool) {
	g, ok := n.groupIndex[title]
	return g, ok
}

// ChildGroups returns the node's child groups in insertion order.
func (n *Node) ChildGroups() []*Node {
	var out []*Node
	for _, c := range n.children {
		if c.group {
			out = append(out, c)
		}
	}
	return out
}

// Records returns the node's child records in insertion order.
func (n *Node) Records() []*Node {
	var out []*Node
	for _, c := range n.children {
		if !c.group {
			out = append(out, c)
		}
	}
	return out
}

// Walk visits n and all descendants depth-first in insertion order.
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, c := range n.children {
		c.Walk(visit)
	}
}

// DatabaseModel is the complete output of one import: a root group plus a
// recycle bin holding trashed records. The model is exclusively owned by
// the pipeline during construction and by the caller afterward.
type DatabaseModel struct {
	Root       *Node
	RecycleBin *Node
}

// NewDatabaseModel creates an empty model. The root group exists before
// any account, vault or category group is attached.
func NewDatabaseModel() *DatabaseModel {
	bin := NewGroup("Recycle Bin")
	bin.Icon = IconTrash
	return &DatabaseModel{
		Root:       NewGroup("Root"),
		RecycleBin: bin,
	}
}

// Recycle moves a node out of the normal tree into the recycle bin. The
// node keeps its fields; recycling an already recycled node is a no-op.
func (m *DatabaseModel) Recycle(n *Node) {
	if n.parent == m.RecycleBin {
		return
	}
	m.RecycleBin.AddChild(n)
}
