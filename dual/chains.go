package dual

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/katalvlaran/foliar/bfs"
	"github.com/katalvlaran/foliar/core"
	"github.com/katalvlaran/foliar/matrix"
	"github.com/katalvlaran/foliar/spanning"
)

// OneCycle is an integer 1-cycle of the dual cellulation: a weight per dual
// edge with B1·w = 0.
type OneCycle struct {
	c *Cellulation
	w []int64
}

// OneCocycle is an integer 1-cocycle of the dual cellulation: a weight per
// dual edge with B2ᵀ·w = 0. Cycles of the link itself are exactly these.
type OneCocycle struct {
	c *Cellulation
	w []int64
}

// NewOneCycle checks w against B1 and wraps it. w is copied.
func NewOneCycle(c *Cellulation, w []int64) (OneCycle, error) {
	if len(w) != len(c.edges) {
		return OneCycle{}, fmt.Errorf("%w: %d weights for %d edges", ErrLength, len(w), len(c.edges))
	}
	b1, err := c.B1()
	if err != nil {
		return OneCycle{}, err
	}
	bd, err := b1.MulVec(w)
	if err != nil {
		return OneCycle{}, err
	}
	if !matrix.IsZeroVec(bd) {
		return OneCycle{}, fmt.Errorf("%w: boundary %v", ErrNotCycle, bd)
	}

	return OneCycle{c: c, w: append([]int64(nil), w...)}, nil
}

// NewOneCocycle checks w against B2ᵀ and wraps it. w is copied.
func NewOneCocycle(c *Cellulation, w []int64) (OneCocycle, error) {
	if len(w) != len(c.edges) {
		return OneCocycle{}, fmt.Errorf("%w: %d weights for %d edges", ErrLength, len(w), len(c.edges))
	}
	b2, err := c.B2()
	if err != nil {
		return OneCocycle{}, err
	}
	cob, err := b2.T().MulVec(w)
	if err != nil {
		return OneCocycle{}, err
	}
	if !matrix.IsZeroVec(cob) {
		return OneCocycle{}, fmt.Errorf("%w: coboundary %v", ErrNotCocycle, cob)
	}

	return OneCocycle{c: c, w: append([]int64(nil), w...)}, nil
}

// Weights returns a copy of the edge weights.
func (z OneCycle) Weights() []int64 { return append([]int64(nil), z.w...) }

// Cellulation returns the cellulation z lives on.
func (z OneCycle) Cellulation() *Cellulation { return z.c }

// IsZero reports whether every weight is zero.
func (z OneCycle) IsZero() bool { return matrix.IsZeroVec(z.w) }

// Weights returns a copy of the edge weights.
func (a OneCocycle) Weights() []int64 { return append([]int64(nil), a.w...) }

// Cellulation returns the cellulation a lives on.
func (a OneCocycle) Cellulation() *Cellulation { return a.c }

// Pair evaluates a on z (the integer dot product of their weights).
func (a OneCocycle) Pair(z OneCycle) (int64, error) {
	if a.c != z.c {
		return 0, ErrMismatch
	}

	return matrix.Dot(a.w, z.w)
}

type bases struct {
	once       sync.Once
	cohomology []OneCocycle
	homology   []OneCycle
	err        error
}

// CohomologyBasis returns 2g link cycles, read as dual cocycles, that form an
// integral basis of H¹. They are the fundamental cycles of the edges left
// over by a tree–cotree decomposition, closed up in the primal tree.
func (c *Cellulation) CohomologyBasis() ([]OneCocycle, error) {
	c.basis.once.Do(c.treeCotree)
	if c.basis.err != nil {
		return nil, c.basis.err
	}

	return append([]OneCocycle(nil), c.basis.cohomology...), nil
}

// HomologyBasis returns 2g dual cycles forming an integral basis of H₁: the
// same leftover edges closed up in the dual cotree.
func (c *Cellulation) HomologyBasis() ([]OneCycle, error) {
	c.basis.once.Do(c.treeCotree)
	if c.basis.err != nil {
		return nil, c.basis.err
	}

	return append([]OneCycle(nil), c.basis.homology...), nil
}

func vertexID(prefix byte, i int) string {
	return string(prefix) + strconv.Itoa(i)
}

func (c *Cellulation) treeCotree() {
	link := c.link
	primal := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	for p := range link.Vertices {
		if err := primal.AddVertex(vertexID('v', p)); err != nil {
			c.basis.err = err
			return
		}
	}
	for d, e := range link.Edges {
		if _, err := primal.AddEdge(vertexID('v', e.Tail), vertexID('v', e.Head), d); err != nil {
			c.basis.err = err
			return
		}
	}
	tree, err := spanning.Kruskal(primal)
	if err != nil {
		c.basis.err = fmt.Errorf("%w: primal tree: %v", ErrInvariant, err)
		return
	}
	inTree := make([]bool, len(c.edges))
	for _, e := range tree {
		inTree[e.Tag] = true
	}

	dualG := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	for i := 0; i < c.Vertices(); i++ {
		if err = dualG.AddVertex(vertexID('t', i)); err != nil {
			c.basis.err = err
			return
		}
	}
	for d, e := range c.edges {
		if _, err = dualG.AddEdge(vertexID('t', e.Tail), vertexID('t', e.Head), d); err != nil {
			c.basis.err = err
			return
		}
	}
	cotree, err := spanning.Kruskal(dualG, spanning.WithFilter(func(e *core.Edge) bool { return !inTree[e.Tag] }))
	if err != nil {
		c.basis.err = fmt.Errorf("%w: dual tree: %v", ErrInvariant, err)
		return
	}
	inCotree := make([]bool, len(c.edges))
	for _, e := range cotree {
		inCotree[e.Tag] = true
	}

	var extra []int
	for d := range c.edges {
		if !inTree[d] && !inCotree[d] {
			extra = append(extra, d)
		}
	}
	if len(extra) != 2*link.Genus() {
		c.basis.err = fmt.Errorf("%w: %d leftover edges on a genus %d surface", ErrInvariant, len(extra), link.Genus())
		return
	}

	primalTree, err := forest(primal, inTree)
	if err != nil {
		c.basis.err = err
		return
	}
	dualTree, err := forest(dualG, inCotree)
	if err != nil {
		c.basis.err = err
		return
	}
	for _, x := range extra {
		e := link.Edges[x]
		w, err := closeUp(primalTree, 'v', len(c.edges), x, e.Tail, e.Head)
		if err != nil {
			c.basis.err = err
			return
		}
		alpha, err := NewOneCocycle(c, w)
		if err != nil {
			c.basis.err = err
			return
		}
		c.basis.cohomology = append(c.basis.cohomology, alpha)

		de := c.edges[x]
		w, err = closeUp(dualTree, 't', len(c.edges), x, de.Tail, de.Head)
		if err != nil {
			c.basis.err = err
			return
		}
		a, err := NewOneCycle(c, w)
		if err != nil {
			c.basis.err = err
			return
		}
		c.basis.homology = append(c.basis.homology, a)
	}
}

// forest copies the vertices of g and the edges whose tag is marked.
func forest(g *core.Graph, keep []bool) (*core.Graph, error) {
	out := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	for _, v := range g.Vertices() {
		if err := out.AddVertex(v); err != nil {
			return nil, err
		}
	}
	for _, e := range g.Edges() {
		if e.Tag < 0 || e.Tag >= len(keep) {
			return nil, fmt.Errorf("%w: edge tag %d out of range", ErrInvariant, e.Tag)
		}
		if keep[e.Tag] {
			if _, err := out.AddEdge(e.From, e.To, e.Tag); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// closeUp returns edge x (tail→head) followed by the tree path from head
// back to tail, as a weight vector of length n.
func closeUp(tree *core.Graph, prefix byte, n, x, tail, head int) ([]int64, error) {
	w := make([]int64, n)
	w[x] = 1
	if tail == head {
		return w, nil
	}
	res, err := bfs.BFS(tree, vertexID(prefix, head))
	if err != nil {
		return nil, err
	}
	verts, err := res.PathTo(vertexID(prefix, tail))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvariant, err)
	}
	edges, err := res.EdgePathTo(vertexID(prefix, tail))
	if err != nil {
		return nil, err
	}
	for i, e := range edges {
		if e.From == verts[i] {
			w[e.Tag]++
		} else {
			w[e.Tag]--
		}
	}

	return w, nil
}
