package core

import "sort"

// tableGraph carries the default behavior of the Graph capability set:
// every operation except the undirected AddEdge mirror lives here.
// Variants embed it and override what diverges.
type tableGraph struct {
	adj AdjacencyTable
}

// AddNode inserts id with an empty neighbor sequence if absent.
// Reports true on insertion, false if id already exists (no-op).
//
// Complexity: O(1)
func (t *tableGraph) AddNode(id string) bool {
	if _, exists := t.adj[id]; exists {
		return false
	}
	t.adj[id] = make([]Neighbor, 0)

	return true
}

// AddEdge appends the forward entry from → to after auto-adding any
// missing endpoint. This is the shared default; directed semantics.
//
// Complexity: O(1) amortized per edge insertion.
func (t *tableGraph) AddEdge(from, to string, weight int64) {
	t.AddNode(from)
	t.AddNode(to)

	t.adj[from] = append(t.adj[from], Neighbor{ID: to, Weight: weight})
}

// HasNode reports whether id is a key in the adjacency table.
//
// Complexity: O(1)
func (t *tableGraph) HasNode(id string) bool {
	_, ok := t.adj[id]
	return ok
}

// Nodes returns a snapshot of all node labels, sorted for
// deterministic iteration.
//
// Complexity: O(V·log V)
func (t *tableGraph) Nodes() []string {
	out := make([]string, 0, len(t.adj))
	for id := range t.adj {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Edges returns a flat slice with one Edge per adjacency entry.
// In undirected graphs each logical edge appears twice (once per
// direction). No defined order.
//
// Complexity: O(V+E)
func (t *tableGraph) Edges() []Edge {
	var out []Edge
	for from, nbrs := range t.adj {
		for _, nb := range nbrs {
			out = append(out, Edge{From: from, To: nb.ID, Weight: nb.Weight})
		}
	}

	return out
}

// AdjacencyTable returns a shallow copy of the storage map so the
// caller cannot add or drop nodes behind the graph's back. The
// neighbor slices are shared; treat the view as read-only.
//
// Complexity: O(V)
func (t *tableGraph) AdjacencyTable() AdjacencyTable {
	out := make(AdjacencyTable, len(t.adj))
	for id, nbrs := range t.adj {
		out[id] = nbrs
	}

	return out
}

// AdjacencyTableMutable returns the live storage map. Only for
// internal and advanced use.
func (t *tableGraph) AdjacencyTableMutable() AdjacencyTable {
	return t.adj
}

// UndirectedGraph is the adjacency-table graph in which every inserted
// edge is represented symmetrically in both endpoints' neighbor lists.
type UndirectedGraph struct {
	tableGraph
}

// Compile-time check that the realization covers the capability set.
var _ Graph = (*UndirectedGraph)(nil)

// NewUndirectedGraph constructs an empty UndirectedGraph.
//
// Complexity: O(1)
func NewUndirectedGraph() *UndirectedGraph {
	return &UndirectedGraph{tableGraph{adj: make(AdjacencyTable)}}
}

// AddEdge inserts one logical edge between from and to: the shared
// forward append plus the mirror entry to → from with the same weight.
// A self-loop (from == to) therefore stores two entries in the same
// list. This override is the single point of divergence from the
// default behavior.
//
// Complexity: O(1) amortized per edge insertion.
func (g *UndirectedGraph) AddEdge(from, to string, weight int64) {
	g.tableGraph.AddEdge(from, to, weight)

	g.adj[to] = append(g.adj[to], Neighbor{ID: from, Weight: weight})
}
