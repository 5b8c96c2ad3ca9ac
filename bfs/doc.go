// Package bfs provides breadth-first search over a core.Graph, returning visit
// order, depths, parent links and the tree edge used to reach every vertex.
//
// On top of the single-source walk it offers Components and IsConnected,
// which foliar uses for every connectivity certificate it issues: suture
// graph connectivity, the positive and negative halves of a vertex link, and
// the splitting of a suture 1-cycle into its connected components.
//
// Determinism
//
//	core.Neighbors returns edges sorted by Edge.ID and Vertices() is sorted,
//	so visit order, tree edges and component order are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E log E)
//   - Memory: O(V)
//
// Options
//
//   - WithContext(ctx):       cancellation.
//   - WithMaxDepth(d):        stop exploring beyond depth d (>0); 0 means no limit.
//   - WithFilterEdge(fn):     skip edges for which fn(curr, e)==false.
//   - WithOnVisit(fn):        hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors            if core.Neighbors fails for any vertex.
package bfs
