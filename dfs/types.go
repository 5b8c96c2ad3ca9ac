// Package dfs provides depth-first algorithms on directed core.Graph values.
//
// foliar uses TopologicalSort to read off the linear vertex order of a
// tetrahedron under an acyclic edge orientation: the source comes first and
// the sink last, and a directed cycle is reported as ErrCycleDetected.
package dfs

import "errors"

// Visitation states of a vertex.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrUndirected is returned when an undirected graph is passed.
	ErrUndirected = errors.New("dfs: graph must be directed")

	// ErrCycleDetected indicates that a directed cycle was encountered.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNeighborFetch indicates a failure to retrieve neighbors from the graph.
	ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")
)
