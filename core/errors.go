package core

import "errors"

// ErrNodeNotFound indicates an operation referenced a node that is not
// a key in the adjacency table. The message is part of the contract,
// so it carries no package prefix.
//
// AddNode and AddEdge never return it: AddEdge auto-creates missing
// endpoints instead of rejecting them. Only lookup-only operations
// (Neighbors, Degree, and any future strict add-edge variant) signal
// this condition.
var ErrNodeNotFound = errors.New("accessing a node that is not in the graph")
