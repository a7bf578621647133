// Package builder provides deterministic constructors for classic
// undirected topologies: Path, Cycle, Star and Complete.
//
// Design contract:
//
//   - Determinism: nodes are added in ascending index order and edges
//     are emitted in a stable, documented order, so the same inputs and
//     options always produce identical graphs.
//   - Labels come from an IDFn (default "v0", "v1", …) and weights from
//     a WeightFn (default constant 1); both must be pure functions of
//     their indices.
//   - Safety: constructors never panic; invalid parameters return
//     sentinel errors (ErrTooFewNodes, ErrNilOption) wrapped with the
//     constructor name for context.
//
// The builders exist for tests, examples and demos: a one-liner that
// exercises the whole core capability set.
package builder
