package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/foliar/core"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

// WithCancelContext sets the cancellation context. A nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph
	ctx   context.Context
	state map[string]int
	order []string
}

// TopologicalSort computes a linear ordering of all vertices in g such that
// for every directed edge u→v, u appears before v. DFS roots are taken in
// sorted vertex order, so the result is deterministic.
//
// Errors: ErrGraphNil, ErrUndirected, ErrCycleDetected, ErrNeighborFetch, or
// the context error on cancellation.
//
// Complexity: O(V + E log E) time, O(V) memory.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirected
	}
	opts := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&opts)
	}

	verts := g.Vertices()
	s := &topoSorter{
		graph: g,
		ctx:   opts.ctx,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	for _, v := range verts {
		if s.state[v] == White {
			if err := s.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// reverse post-order
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

func (s *topoSorter) visit(id string) error {
	select {
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
	}
	switch s.state[id] {
	case Gray:
		return ErrCycleDetected
	case Black:
		return nil
	}
	s.state[id] = Gray

	neighbors, err := s.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	for _, e := range neighbors {
		if e.From != id {
			continue
		}
		if err = s.visit(e.To); err != nil {
			return err
		}
	}

	s.state[id] = Black
	s.order = append(s.order, id)

	return nil
}
