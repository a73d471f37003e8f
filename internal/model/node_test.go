package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabaseModel_RootAndBinExist(t *testing.T) {
	m := NewDatabaseModel()

	require.NotNil(t, m.Root)
	require.NotNil(t, m.RecycleBin)
	assert.True(t, m.Root.IsGroup())
	assert.True(t, m.RecycleBin.IsGroup())
	assert.Empty(t, m.Root.Children())
}

func TestAddChild_SetsParentAndOrder(t *testing.T) {
	root := NewGroup("root")
	a := NewGroup("a")
	b := NewRecord("b")

	root.AddChild(a)
	root.AddChild(b)

	require.Len(t, root.Children(), 2)
	assert.Same(t, a, root.Children()[0])
	assert.Same(t, b, root.Children()[1])
	assert.Same(t, root, a.Parent())
	assert.Same(t, root, b.Parent())
}

func TestAddChild_ReattachDetachesFromOldParent(t *testing.T) {
	p1 := NewGroup("p1")
	p2 := NewGroup("p2")
	r := NewRecord("r")

	p1.AddChild(r)
	p2.AddChild(r)

	assert.Empty(t, p1.Children())
	require.Len(t, p2.Children(), 1)
	assert.Same(t, p2, r.Parent())
}

func TestChildGroupByTitle_FirstMatchWins(t *testing.T) {
	root := NewGroup("root")
	g := NewGroup("Servers")
	root.AddChild(g)
	root.AddChild(NewRecord("Servers")) // records never match

	found, ok := root.ChildGroupByTitle("Servers")
	require.True(t, ok)
	assert.Same(t, g, found)

	_, ok = root.ChildGroupByTitle("servers") // case-sensitive
	assert.False(t, ok)
}

func TestRecycle_MovesNodeOutOfTree(t *testing.T) {
	m := NewDatabaseModel()
	r := NewRecord("trashed")
	m.Root.AddChild(r)

	m.Recycle(r)

	assert.Empty(t, m.Root.Children())
	require.Len(t, m.RecycleBin.Children(), 1)
	assert.Same(t, r, m.RecycleBin.Children()[0])

	// Recycling twice is a no-op.
	m.Recycle(r)
	assert.Len(t, m.RecycleBin.Children(), 1)
}

func TestWalk_VisitsDepthFirst(t *testing.T) {
	root := NewGroup("root")
	g := NewGroup("g")
	root.AddChild(g)
	g.AddChild(NewRecord("r1"))
	root.AddChild(NewRecord("r2"))

	var titles []string
	root.Walk(func(n *Node) { titles = append(titles, n.Title) })

	assert.Equal(t, []string{"root", "g", "r1", "r2"}, titles)
}
