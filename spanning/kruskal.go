package spanning

import (
	"sort"
	"strconv"

	"github.com/katalvlaran/foliar/core"
)

// Kruskal returns the edges of a minimum spanning tree of g.
//
// Error Conditions:
//   - ErrInvalidGraph : graph is nil or directed.
//   - ErrDisconnected : |V| > 1 and the eligible edges do not span g.
//
// Steps:
//  1. Validate; zero or one vertex gives an empty tree.
//  2. Collect eligible edges, skip self-loops, order by (weight, insertion).
//  3. Union-find with path compression and union by rank.
//  4. Stop once the tree has |V|-1 edges.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(g *core.Graph, opts ...Option) ([]*core.Edge, error) {
	if g == nil || g.Directed() {
		return nil, ErrInvalidGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	vertices := g.Vertices()
	if len(vertices) <= 1 {
		return []*core.Edge{}, nil
	}

	edges := make([]*core.Edge, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		if e.From == e.To || !o.Filter(e) {
			continue
		}
		edges = append(edges, e)
	}
	// Edge IDs are "e<n>"; compare n so that insertion order breaks ties.
	sort.SliceStable(edges, func(i, j int) bool {
		wi, wj := o.Weight(edges[i]), o.Weight(edges[j])
		if wi != wj {
			return wi < wj
		}
		return seq(edges[i]) < seq(edges[j])
	})

	parent := make(map[string]string, len(vertices))
	rank := make(map[string]int, len(vertices))
	for _, v := range vertices {
		parent[v] = v
	}
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}
	union := func(u, v string) {
		ru, rv := find(u), find(v)
		if rank[ru] < rank[rv] {
			parent[ru] = rv
			return
		}
		parent[rv] = ru
		if rank[ru] == rank[rv] {
			rank[ru]++
		}
	}

	tree := make([]*core.Edge, 0, len(vertices)-1)
	for _, e := range edges {
		if find(e.From) == find(e.To) {
			continue
		}
		union(e.From, e.To)
		tree = append(tree, e)
		if len(tree) == len(vertices)-1 {
			break
		}
	}
	if len(tree) < len(vertices)-1 {
		return nil, ErrDisconnected
	}

	return tree, nil
}

func seq(e *core.Edge) uint64 {
	n, err := strconv.ParseUint(e.ID[1:], 10, 64)
	if err != nil {
		return 0
	}

	return n
}
