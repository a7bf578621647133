package core_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lvlgraph/lvlgraph/core"
)

func TestErrNodeNotFoundMessage(t *testing.T) {
	require.EqualError(t, core.ErrNodeNotFound, "accessing a node that is not in the graph")
}

func TestErrNodeNotFoundMatching(t *testing.T) {
	// The sentinel must survive fmt wrapping and match via errors.Is.
	wrapped := fmt.Errorf("Neighbors(%q): %w", "ghost", core.ErrNodeNotFound)
	require.ErrorIs(t, wrapped, core.ErrNodeNotFound)
	require.False(t, errors.Is(wrapped, errors.New("accessing a node that is not in the graph")),
		"matching is by identity, not by message text")
}

func TestInsertionNeverErrors(t *testing.T) {
	// The capability-set operations are total: no input reaches the
	// sentinel, including re-adding nodes and looping edges.
	g := core.NewUndirectedGraph()
	g.AddEdge("a", "a", 0)
	g.AddEdge("", "b", -1) // the empty string is a valid label
	require.True(t, g.HasNode(""))
	require.False(t, g.AddNode("a"))
}
