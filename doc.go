// Package lvlgraph is a small in-memory playground for weighted graphs:
// a node/edge container backed by an adjacency table, supporting
// insertion and enumeration.
//
// What you get:
//
//   - Core primitives: add nodes & weighted edges, query membership,
//     enumerate nodes and edges
//   - A capability set (core.Graph) with one concrete realization,
//     core.UndirectedGraph, that mirrors every inserted edge
//   - Deterministic topology builders: Path, Cycle, Star, Complete
//
// Why lvlgraph?
//
//   - Beginner-friendly — minimal API, clear, intuitive naming
//   - Pure Go — no cgo, no hidden deps
//   - Honest contracts — every operation documents its complexity and
//     its edge cases (duplicate edges, self-loops, auto-created nodes)
//
// Everything is organized under two subpackages:
//
//	core/    — Graph capability set, UndirectedGraph, AdjacencyTable
//	builder/ — deterministic graph constructors for tests and demos
//
// Quick ASCII example:
//
//	    a───b
//	     ╲  │
//	      ╲ │
//	        c
//
//	three AddEdge calls produce three nodes and six directed entries
//	(each logical edge is stored once per direction).
//
//	go get github.com/lvlgraph/lvlgraph
package lvlgraph
