package taut

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/foliar/bfs"
	"github.com/katalvlaran/foliar/core"
	"github.com/katalvlaran/foliar/triangulation"
)

func faceID(f int) string { return "f" + strconv.Itoa(f) }

// SutureGraph returns the suture graph: one vertex "f<i>" per face class and,
// for every mixed corner, an edge tagged with its edge class between the two
// face classes of the tetrahedron that contain the corner. The graph is an
// undirected multigraph with loops and is shared; callers must not mutate it.
func (o *EdgeOrientation) SutureGraph() (*core.Graph, error) {
	o.sutureOnce.Do(func() {
		o.suture, o.sutureMixed, o.sutureErr = buildSutureGraph(o.tri, o.signs)
	})

	return o.suture, o.sutureErr
}

func buildSutureGraph(tri *triangulation.Triangulation, signs []int) (*core.Graph, int, error) {
	g := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	for f := 0; f < tri.NumFaces(); f++ {
		if err := g.AddVertex(faceID(f)); err != nil {
			return nil, 0, err
		}
	}

	mixed := 0
	for t := 0; t < tri.Size(); t++ {
		for _, p := range triangulation.Pairs() {
			a, b := p[0], p[1]
			if !IsMixed(tri, signs, t, a, b) {
				continue
			}
			mixed++
			c, d := otherSlots(a, b)
			e, _ := tri.Edge(t, a, b)
			if _, err := g.AddEdge(faceID(tri.Face(t, c)), faceID(tri.Face(t, d)), e); err != nil {
				return nil, 0, err
			}
		}
	}

	if g.VertexCount() != tri.NumFaces() {
		return nil, 0, fmt.Errorf("%w: suture graph has %d vertices for %d face classes",
			ErrInvariant, g.VertexCount(), tri.NumFaces())
	}
	if g.EdgeCount() != mixed {
		return nil, 0, fmt.Errorf("%w: suture graph has %d edges for %d mixed corners",
			ErrInvariant, g.EdgeCount(), mixed)
	}

	return g, mixed, nil
}

// otherSlots returns the two vertex slots not in {a, b}, in increasing order.
func otherSlots(a, b int) (int, int) {
	var rest [2]int
	i := 0
	for v := 0; v < 4; v++ {
		if v != a && v != b {
			rest[i] = v
			i++
		}
	}

	return rest[0], rest[1]
}

// NumSutures returns the number of sutures: the connected components of the
// suture graph for a closed orientation, the components of the suture cycle
// for an ideal one.
func (o *EdgeOrientation) NumSutures() (int, error) {
	if o.kind == Ideal {
		s, err := o.Sutures()
		return len(s), err
	}
	g, err := o.SutureGraph()
	if err != nil {
		return 0, err
	}
	comps, err := bfs.Components(g)
	if err != nil {
		return 0, err
	}

	return len(comps), nil
}

// GivesFoliation reports whether the orientation is taut.
//
// Closed: no super-long edge class and a connected suture graph. For
// one-vertex triangulations the link certificate is evaluated as well and a
// disagreement is an ErrInvariant.
//
// Ideal: no super-long edge class, at least one suture, and every suture
// has a nonzero slope.
func (o *EdgeOrientation) GivesFoliation() (bool, error) {
	if o.kind == Ideal {
		return o.idealGivesFoliation()
	}

	g, err := o.SutureGraph()
	if err != nil {
		return false, err
	}
	connected, err := bfs.IsConnected(g)
	if err != nil {
		return false, err
	}
	if o.tri.NumVertices() == 1 {
		cert, err := o.LinkCertificate()
		if err != nil {
			return false, err
		}
		if cert != connected {
			return false, fmt.Errorf("%w: link certificate %t, suture graph connected %t",
				ErrInvariant, cert, connected)
		}
	}

	return connected && len(o.SuperLongEdges()) == 0, nil
}

// LinkCertificate reports whether, in every vertex link, the link vertices
// where the edge points away and those where it points towards the vertex
// each span a connected subgraph of the link 1-skeleton. Closed only.
func (o *EdgeOrientation) LinkCertificate() (bool, error) {
	if err := o.require(Closed); err != nil {
		return false, err
	}
	for vc := 0; vc < o.tri.NumVertices(); vc++ {
		link, err := o.tri.Link(vc)
		if err != nil {
			return false, err
		}
		ok, err := linkSplitConnected(link, o.signs)
		if err != nil || !ok {
			return false, err
		}
	}

	return true, nil
}

func linkVertexID(v triangulation.LinkVertex) string {
	end := "tail"
	if v.End == 1 {
		end = "head"
	}

	return "e" + strconv.Itoa(v.Edge) + ":" + end
}

// positive reports whether the edge of link vertex v points away from the
// linked vertex.
func positive(v triangulation.LinkVertex, signs []int) bool {
	return (signs[v.Edge] > 0) == (v.End == 0)
}

func linkSplitConnected(link *triangulation.LinkSurface, signs []int) (bool, error) {
	g := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	pos := make(map[string]bool, len(link.Vertices))
	neg := make(map[string]bool, len(link.Vertices))
	for _, v := range link.Vertices {
		id := linkVertexID(v)
		if err := g.AddVertex(id); err != nil {
			return false, err
		}
		if positive(v, signs) {
			pos[id] = true
		} else {
			neg[id] = true
		}
	}
	for _, e := range link.Edges {
		from, to := linkVertexID(link.Vertices[e.Tail]), linkVertexID(link.Vertices[e.Head])
		if _, err := g.AddEdge(from, to, link.VertexClass); err != nil {
			return false, err
		}
	}

	for _, keep := range []map[string]bool{pos, neg} {
		ok, err := bfs.IsConnected(core.InducedSubgraph(g, keep))
		if err != nil || !ok {
			return false, err
		}
	}

	return true, nil
}
