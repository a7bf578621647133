package core

// This file declares the value types (Neighbor, Edge, AdjacencyTable)
// and the Graph capability set.

// Neighbor is a single adjacency entry: the neighbor's label and the
// weight of the connecting edge.
type Neighbor struct {
	// ID is the neighbor node's label.
	ID string

	// Weight is the cost of the edge leading to ID.
	Weight int64
}

// Edge is one directed adjacency entry as enumerated by Edges.
// From → To, with an int64 Weight.
// In an undirected graph every logical edge surfaces as two Edge
// values, one per direction; callers counting logical edges must
// halve.
type Edge struct {
	From   string
	To     string
	Weight int64
}

// AdjacencyTable maps a node label to its ordered neighbor sequence.
// It is the sole storage structure: a label is present in the graph
// iff it is a key here. Neighbor insertion order is preserved;
// iteration order over keys is the usual unspecified map order.
type AdjacencyTable map[string][]Neighbor

// Graph is the capability set shared by adjacency-table graphs.
//
// The default realization appends only the forward entry on AddEdge;
// UndirectedGraph overrides that one method to also append the mirror
// entry. Everything else is shared behavior.
type Graph interface {
	// AddNode inserts id with an empty neighbor sequence if absent.
	// Reports true if inserted, false if id was already present; the
	// false path has no side effects.
	AddNode(id string) bool

	// AddEdge ensures both endpoints exist (auto-adding any missing
	// one via AddNode) and appends the corresponding neighbor
	// entries. Not idempotent: repeated calls accumulate duplicate
	// entries.
	AddEdge(from, to string, weight int64)

	// HasNode reports whether id is a key in the adjacency table.
	// Pure query, no side effects.
	HasNode(id string) bool

	// Nodes returns a sorted snapshot of all node labels at call
	// time.
	Nodes() []string

	// Edges returns one Edge per adjacency entry, in no defined
	// order.
	Edges() []Edge

	// AdjacencyTable returns a read-only view of the storage: a
	// shallow copy of the map. Neighbor slices are shared with the
	// graph and must not be mutated through the view.
	AdjacencyTable() AdjacencyTable

	// AdjacencyTableMutable returns the live storage map. Only for
	// internal and advanced use; mutations bypass the graph's
	// invariants.
	AdjacencyTableMutable() AdjacencyTable
}
