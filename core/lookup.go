package core

// This file holds the lookup-only queries. Unlike AddEdge they never
// auto-create, so they are the operations that can observe
// ErrNodeNotFound.

// Neighbors returns a copy of id's neighbor sequence in insertion
// order, or ErrNodeNotFound if id was never added.
//
// Complexity: O(d) where d is the length of id's neighbor list.
func (t *tableGraph) Neighbors(id string) ([]Neighbor, error) {
	nbrs, ok := t.adj[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	out := make([]Neighbor, len(nbrs))
	copy(out, nbrs)

	return out, nil
}

// Degree returns the length of id's neighbor sequence, or
// ErrNodeNotFound if id was never added. In an undirected graph a
// self-loop contributes two to the degree, matching its two stored
// entries.
//
// Complexity: O(1)
func (t *tableGraph) Degree(id string) (int, error) {
	nbrs, ok := t.adj[id]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return len(nbrs), nil
}

// NodeCount returns the number of nodes in the graph.
//
// Complexity: O(1)
func (t *tableGraph) NodeCount() int {
	return len(t.adj)
}

// EdgeCount returns the number of stored adjacency entries. For
// undirected graphs this is twice the number of logical edges.
//
// Complexity: O(V)
func (t *tableGraph) EdgeCount() int {
	var n int
	for _, nbrs := range t.adj {
		n += len(nbrs)
	}

	return n
}
