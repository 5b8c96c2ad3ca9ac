package bfs

import "github.com/katalvlaran/foliar/core"

// Components partitions the vertices of g into connected components, ignoring
// edge direction only when the graph is undirected. Components are listed in
// order of their smallest vertex ID and every component lists vertices in BFS
// order from that seed.
//
// Time:   O(V + E log E).
// Memory: O(V).
func Components(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[string]bool, g.VertexCount())
	var comps [][]string
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v, opts...)
		if err != nil {
			return nil, err
		}
		for _, u := range res.Order {
			seen[u] = true
		}
		comps = append(comps, res.Order)
	}

	return comps, nil
}

// IsConnected reports whether g is nonempty and has exactly one component.
func IsConnected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	vs := g.Vertices()
	if len(vs) == 0 {
		return false, nil
	}
	res, err := BFS(g, vs[0])
	if err != nil {
		return false, err
	}

	return len(res.Order) == len(vs), nil
}
