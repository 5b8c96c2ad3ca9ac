// Package spanning computes spanning trees of undirected core.Graph values by
// Kruskal's algorithm. Edges are ranked by a caller-supplied weight (the edge
// Tag by default) with ties broken by insertion order, so the tree is fully
// determined by the graph and the weight function.
package spanning

import (
	"errors"

	"github.com/katalvlaran/foliar/core"
)

// ErrInvalidGraph indicates a nil or directed graph.
var ErrInvalidGraph = errors.New("spanning: tree requires an undirected graph")

// ErrDisconnected indicates that the eligible edges do not connect all
// vertices, so no spanning tree exists.
var ErrDisconnected = errors.New("spanning: graph is disconnected")

// Options configures Kruskal.
//
// Fields:
//
//	Weight func(*core.Edge) int64: rank of an edge; lower is taken first.
//	Filter func(*core.Edge) bool: edges for which Filter is false are ignored.
type Options struct {
	Weight func(*core.Edge) int64
	Filter func(*core.Edge) bool
}

// Option configures Options.
type Option func(*Options)

// WithWeight ranks edges by fn instead of by Tag.
func WithWeight(fn func(*core.Edge) int64) Option {
	return func(o *Options) {
		if fn != nil {
			o.Weight = fn
		}
	}
}

// WithFilter restricts the tree to edges accepted by fn.
func WithFilter(fn func(*core.Edge) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Filter = fn
		}
	}
}

// DefaultOptions ranks by Tag and accepts every edge.
func DefaultOptions() Options {
	return Options{
		Weight: func(e *core.Edge) int64 { return int64(e.Tag) },
		Filter: func(*core.Edge) bool { return true },
	}
}
