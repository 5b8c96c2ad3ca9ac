// Package core provides a small, thread-safe in-memory multigraph used as the
// combinatorial substrate of foliar: suture graphs, vertex-link 1-skeleta,
// the directed 1-skeleton of a single tetrahedron, and the support graphs of
// dual 1-cycles.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Parallel edges (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - An integer Tag on every edge, carrying the combinatorial label the
//     edge was built from (an edge class, a vertex class, a dual edge index).
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Atomic Edge.ID generation ("e1", "e2", ...)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Determinism:
//
//	Vertices(), Edges(), Neighbors() and NeighborIDs() return sorted slices, so
//	every traversal built on top of core is reproducible.
//
// Core Methods:
//
//	AddVertex(id string) error                               // O(1)
//	HasVertex(id string) bool                                // O(1)
//	AddEdge(from, to string, tag int) (edgeID string, error) // O(1)
//	HasEdge(from, to string) bool                            // O(1)
//	Neighbors(id string) ([]*Edge, error)                    // O(d log d)
//	NeighborIDs(id string) ([]string, error)                 // O(d log d)
//	Degree(id string) (int, error)                           // O(d)
//	Vertices() []string                                      // O(V log V)
//	Edges() []*Edge                                          // O(E log E)
//	InducedSubgraph(g, keep) *Graph                          // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID, ErrVertexNotFound, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
package core
