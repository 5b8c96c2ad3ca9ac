// Package dual builds the dual cell structure of a triangulated closed
// oriented surface (a vertex link) and computes its integer homology.
//
// Dual vertex i is link triangle i. Dual edge d crosses link edge d and runs
// from the triangle where the link edge occurs positively to the triangle
// where it occurs negatively. Dual face p surrounds link vertex p; its
// boundary is listed anticlockwise, each dual edge tagged −1 where link edge
// d leaves p and +1 where it arrives.
//
// A Cellulation is immutable; its boundary matrices are computed once.
package dual

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/foliar/matrix"
	"github.com/katalvlaran/foliar/triangulation"
)

// Sentinel errors for the dual cellulation.
var (
	ErrNilLink    = errors.New("dual: link is nil")
	ErrInvariant  = errors.New("dual: invariant violated")
	ErrNotCycle   = errors.New("dual: chain is not a cycle")
	ErrNotCocycle = errors.New("dual: cochain is not a cocycle")
	ErrLength     = errors.New("dual: chain length does not match the cellulation")
	ErrMismatch   = errors.New("dual: chains belong to different cellulations")
)

// Edge is a dual edge between two dual vertices (link triangles).
type Edge struct {
	Tail, Head int
}

// Face is the dual face around one link vertex. Edges[i] is traversed with
// sign Signs[i].
type Face struct {
	Edges []int
	Signs []int
}

// Cellulation is the dual cell structure of a link surface.
type Cellulation struct {
	link  *triangulation.LinkSurface
	edges []Edge
	faces []Face

	once   sync.Once
	b1, b2 *matrix.Dense
	err    error

	basis bases
}

// New builds the dual cellulation of link.
func New(link *triangulation.LinkSurface) (*Cellulation, error) {
	if link == nil {
		return nil, ErrNilLink
	}
	c := &Cellulation{link: link}
	c.edges = make([]Edge, len(link.Edges))
	for d, e := range link.Edges {
		c.edges[d] = Edge{Tail: e.Pos.Triangle, Head: e.Neg.Triangle}
	}

	faces, err := walkFaces(link)
	if err != nil {
		return nil, err
	}
	c.faces = faces

	return c, nil
}

// walkFaces lists, for each link vertex, the link edges around it
// anticlockwise. At corner k of triangle i the walk records side k+2 (which
// ends at the vertex), crosses it and continues at the corner where that
// side's other occurrence starts.
func walkFaces(link *triangulation.LinkSurface) ([]Face, error) {
	type corner struct{ tri, k int }
	faces := make([]Face, len(link.Vertices))
	seen := make([][3]bool, len(link.Triangles))
	for i := range link.Triangles {
		for k := 0; k < 3; k++ {
			if seen[i][k] {
				continue
			}
			p := link.Corners[i][k]
			if len(faces[p].Edges) > 0 {
				return nil, fmt.Errorf("%w: link vertex %d is not a disc", ErrInvariant, p)
			}
			cur := corner{i, k}
			for !seen[cur.tri][cur.k] {
				seen[cur.tri][cur.k] = true
				side := (cur.k + 2) % 3
				d, s := link.SideEdge(cur.tri, side)
				faces[p].Edges = append(faces[p].Edges, d)
				faces[p].Signs = append(faces[p].Signs, s)
				other := link.Edges[d].Pos
				if s > 0 {
					other = link.Edges[d].Neg
				}
				cur = corner{other.Triangle, other.Side}
				if link.Corners[cur.tri][cur.k] != p {
					return nil, fmt.Errorf("%w: walk around link vertex %d left it", ErrInvariant, p)
				}
			}
			if cur != (corner{i, k}) {
				return nil, fmt.Errorf("%w: walk around link vertex %d did not close", ErrInvariant, p)
			}
		}
	}

	return faces, nil
}

// Link returns the surface this cellulation is dual to.
func (c *Cellulation) Link() *triangulation.LinkSurface { return c.link }

// Vertices returns the number of dual vertices.
func (c *Cellulation) Vertices() int { return len(c.link.Triangles) }

// Edges returns a copy of the dual edges.
func (c *Cellulation) Edges() []Edge { return append([]Edge(nil), c.edges...) }

// Faces returns a copy of the dual faces.
func (c *Cellulation) Faces() []Face {
	out := make([]Face, len(c.faces))
	for i, f := range c.faces {
		out[i] = Face{
			Edges: append([]int(nil), f.Edges...),
			Signs: append([]int(nil), f.Signs...),
		}
	}

	return out
}

// NumEdges returns the number of dual edges.
func (c *Cellulation) NumEdges() int { return len(c.edges) }

// NumFaces returns the number of dual faces.
func (c *Cellulation) NumFaces() int { return len(c.faces) }

// Euler returns V − E + F of the dual cellulation.
func (c *Cellulation) Euler() int { return c.Vertices() - len(c.edges) + len(c.faces) }

// B1 returns the (dual vertices × dual edges) boundary matrix.
func (c *Cellulation) B1() (*matrix.Dense, error) {
	c.build()
	if c.err != nil {
		return nil, c.err
	}

	return c.b1.Clone(), nil
}

// B2 returns the (dual edges × dual faces) boundary matrix.
func (c *Cellulation) B2() (*matrix.Dense, error) {
	c.build()
	if c.err != nil {
		return nil, c.err
	}

	return c.b2.Clone(), nil
}

func (c *Cellulation) build() {
	c.once.Do(func() {
		b1, err := matrix.NewDense(c.Vertices(), len(c.edges))
		if err != nil {
			c.err = err
			return
		}
		for d, e := range c.edges {
			if err = b1.Inc(e.Head, d, 1); err != nil {
				c.err = err
				return
			}
			if err = b1.Inc(e.Tail, d, -1); err != nil {
				c.err = err
				return
			}
		}

		b2, err := matrix.NewDense(len(c.edges), len(c.faces))
		if err != nil {
			c.err = err
			return
		}
		for p, f := range c.faces {
			for i, d := range f.Edges {
				if err = b2.Inc(d, p, int64(f.Signs[i])); err != nil {
					c.err = err
					return
				}
			}
		}
		c.b1, c.b2 = b1, b2
	})
}
