package builder

import (
	"fmt"

	"github.com/lvlgraph/lvlgraph/core"
)

// Constructor names and parameter minima.
const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Path builds the simple path P_n: v0─v1─…─v(n-1), n ≥ 2.
// Edges are emitted as (i-1, i) for i = 1..n-1 in increasing order.
//
// Complexity: O(n) nodes + O(n-1) edges.
func Path(n int, opts ...Option) (*core.UndirectedGraph, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodPath, err)
	}
	if n < minPathNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
	}

	g := newNodes(n, cfg)
	for i := 1; i < n; i++ {
		g.AddEdge(cfg.idFn(i-1), cfg.idFn(i), cfg.weightFn(i-1, i))
	}

	return g, nil
}

// Cycle builds the simple cycle C_n, n ≥ 3: a Path plus the closing
// edge (n-1, 0), emitted last.
//
// Complexity: O(n) nodes + O(n) edges.
func Cycle(n int, opts ...Option) (*core.UndirectedGraph, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCycle, err)
	}
	if n < minCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewNodes)
	}

	g := newNodes(n, cfg)
	for i := 1; i < n; i++ {
		g.AddEdge(cfg.idFn(i-1), cfg.idFn(i), cfg.weightFn(i-1, i))
	}
	g.AddEdge(cfg.idFn(n-1), cfg.idFn(0), cfg.weightFn(n-1, 0))

	return g, nil
}

// Star builds a star with center at index 0 and n-1 leaves, n ≥ 2.
// Edges are emitted as (0, i) for i = 1..n-1 in increasing order.
//
// Complexity: O(n) nodes + O(n-1) edges.
func Star(n int, opts ...Option) (*core.UndirectedGraph, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodStar, err)
	}
	if n < minStarNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
	}

	g := newNodes(n, cfg)
	center := cfg.idFn(0)
	for i := 1; i < n; i++ {
		g.AddEdge(center, cfg.idFn(i), cfg.weightFn(0, i))
	}

	return g, nil
}

// Complete builds the complete simple graph K_n, n ≥ 1. Edges are
// emitted as (i, j) for all i < j, outer loop ascending in i.
// K_1 is a single isolated node.
//
// Complexity: O(n) nodes + O(n²) edges.
func Complete(n int, opts ...Option) (*core.UndirectedGraph, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodComplete, err)
	}
	if n < minCompleteNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewNodes)
	}

	g := newNodes(n, cfg)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.AddEdge(cfg.idFn(i), cfg.idFn(j), cfg.weightFn(i, j))
		}
	}

	return g, nil
}

// newNodes returns a graph pre-populated with n labeled nodes, in
// ascending index order, so topologies with isolated nodes (K_1) still
// report them.
func newNodes(n int, cfg config) *core.UndirectedGraph {
	g := core.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(cfg.idFn(i))
	}

	return g
}
