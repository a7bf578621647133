package core

// CloneEmpty returns a new UndirectedGraph with the same node set but
// no edges.
//
// Complexity: O(V)
func (g *UndirectedGraph) CloneEmpty() *UndirectedGraph {
	clone := NewUndirectedGraph()
	for id := range g.adj {
		clone.adj[id] = make([]Neighbor, 0)
	}

	return clone
}

// Clone returns a deep copy of the graph: same nodes, same neighbor
// sequences in the same order, backed by fresh slices. Neighbor is a
// value type, so the copies share nothing with the original.
//
// Complexity: O(V+E)
func (g *UndirectedGraph) Clone() *UndirectedGraph {
	clone := g.CloneEmpty()
	for id, nbrs := range g.adj {
		clone.adj[id] = append(clone.adj[id], nbrs...)
	}

	return clone
}
