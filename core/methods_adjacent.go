// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, Degree) and adjacency helpers.
// Determinism:
//   - Neighbors() sorts by Edge.ID asc.
//   - NeighborIDs() returns unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.
//   - Helpers are called only under the muEdgeAdj write lock.

package core

import "sort"

// Neighbors returns all edges incident to id.
//
// Neighborhood policy:
//   - Directed edges: only outgoing edges (e.From == id).
//   - Undirected edges: every incident edge; self-loops appear once.
//
// Returns pointers to live catalog edges; treat them as read-only.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			e := g.edges[eid]
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the unique vertex IDs adjacent to id, sorted ascending.
// For directed graphs only out-neighbors are reported.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		if e.From == id {
			seen[e.To] = struct{}{}
		} else {
			seen[e.From] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for nid := range seen {
		out = append(out, nid)
	}
	sort.Strings(out)

	return out, nil
}

// Degree returns the number of edge endpoints at id. A self-loop counts twice.
// For directed graphs it is the out-degree.
func (g *Graph) Degree(id string) (int, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return 0, err
	}
	d := 0
	for _, e := range edges {
		d++
		if e.From == e.To && !e.Directed {
			d++
		}
	}

	return d, nil
}

// ensureAdjacency makes sure adjacencyList[from][to] exists.
// Caller must hold muEdgeAdj.
func ensureAdjacency(g *Graph, from, to string) {
	inner, ok := g.adjacencyList[from]
	if !ok {
		inner = make(map[string]map[string]struct{})
		g.adjacencyList[from] = inner
	}
	if _, ok = inner[to]; !ok {
		inner[to] = make(map[string]struct{})
	}
}
