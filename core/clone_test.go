package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lvlgraph/lvlgraph/core"
)

func TestCloneEmpty(t *testing.T) {
	g := core.NewUndirectedGraph()
	g.AddEdge("A", "B", 5)
	g.AddNode("C")

	clone := g.CloneEmpty()
	require.Equal(t, g.Nodes(), clone.Nodes(), "CloneEmpty keeps the node set")
	require.Empty(t, clone.Edges(), "CloneEmpty drops all edges")

	// Mutating the clone must not leak back.
	clone.AddEdge("C", "D", 1)
	require.False(t, g.HasNode("D"))
	require.Len(t, g.Edges(), 2)
}

func TestClone(t *testing.T) {
	g := core.NewUndirectedGraph()
	g.AddEdge("A", "B", 5)
	g.AddEdge("B", "C", 10)

	clone := g.Clone()
	require.Equal(t, g.Nodes(), clone.Nodes())
	require.ElementsMatch(t, g.Edges(), clone.Edges())

	// Independence: extending the clone leaves the original alone.
	clone.AddEdge("A", "B", 99)
	require.Len(t, g.Edges(), 4)
	require.Len(t, clone.Edges(), 6)
}
