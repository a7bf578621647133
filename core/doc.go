// Package core defines the central Graph capability set and its
// adjacency-table realization, UndirectedGraph.
//
// The Graph interface covers construction-adjacent storage access plus
// the insertion and enumeration operations: AddNode, AddEdge, HasNode,
// Nodes, Edges, AdjacencyTable, AdjacencyTableMutable. Shared default
// behavior lives on an unexported base type; UndirectedGraph embeds it
// and overrides exactly one method, AddEdge, to mirror every inserted
// edge into both endpoints' neighbor lists. A directed variant would
// embed the same base and keep the forward-only default.
//
// Storage model:
//
//   - AdjacencyTable maps a node label to its ordered neighbor list.
//   - A label is a key iff it was added, explicitly via AddNode or
//     implicitly as an AddEdge endpoint.
//   - Neighbor lists preserve insertion order and keep duplicates;
//     adding the same edge twice stores it twice.
//   - The table only grows. There is no node or edge removal.
//
// Errors:
//
//	ErrNodeNotFound — a lookup referenced a node that was never added.
//	Insertion operations auto-create missing endpoints and never return
//	it; only the lookup-only queries (Neighbors, Degree) can.
//
// Concurrency: none. Every operation is a single synchronous
// read-then-write step and instances are meant to be exclusively
// owned. If you must share a graph across goroutines, guard the whole
// instance with one sync.Mutex; there is nothing partial to protect at
// a finer grain.
package core
