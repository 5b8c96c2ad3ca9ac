package triangulation

import "fmt"

// LinkVertex is a vertex of a vertex link: the end of edge class Edge at the
// linked vertex. End is 0 when the vertex is the tail of the edge's baseline
// direction and 1 when it is the head.
type LinkVertex struct {
	Edge int
	End  int
}

// TetVertex identifies slot Vertex of tetrahedron Tet; it is the
// tetrahedron corner whose truncation is one link triangle.
type TetVertex struct {
	Tet, Vertex int
}

// Occurrence records a link edge appearing as side Side of triangle
// Triangle. Sign is +1 when the side runs tail→head of the link edge.
type Occurrence struct {
	Triangle, Side, Sign int
}

// LinkEdge is an edge of the link, with its positive and negative occurrence.
type LinkEdge struct {
	Tail, Head int
	Pos, Neg   Occurrence
}

// LinkSurface is the triangulated, oriented link of one vertex class.
//
// Triangle i is the truncation of corner Triangles[i]; its corners are the
// link vertices at VerticesOfFace[v] in order, and side k runs from corner k
// to corner k+1 inside the tetrahedron face opposite corner k+2.
type LinkSurface struct {
	tri         *Triangulation
	VertexClass int
	Triangles   []TetVertex
	Corners     [][3]int
	Vertices    []LinkVertex
	Edges       []LinkEdge

	sides [][3]sideRef
}

type sideRef struct{ edge, sign int }

// Link returns the link of vertex class v, computed once.
func (tr *Triangulation) Link(v int) (*LinkSurface, error) {
	if v < 0 || v >= tr.numVertices {
		return nil, fmt.Errorf("%w: vertex class %d", ErrOutOfRange, v)
	}
	tr.linkOnce[v].Do(func() {
		tr.links[v], tr.linkErr[v] = buildLink(tr, v)
	})

	return tr.links[v], tr.linkErr[v]
}

// VertexLinkGenus returns the genus of the link of vertex class v: 0 for a
// closed-manifold vertex, 1 for a torus cusp.
func (tr *Triangulation) VertexLinkGenus(v int) (int, error) {
	l, err := tr.Link(v)
	if err != nil {
		return 0, err
	}

	return l.Genus(), nil
}

// IsClosed reports whether every vertex link is a sphere.
func (tr *Triangulation) IsClosed() (bool, error) {
	for v := 0; v < tr.numVertices; v++ {
		g, err := tr.VertexLinkGenus(v)
		if err != nil {
			return false, err
		}
		if g != 0 {
			return false, nil
		}
	}

	return true, nil
}

// IsOneCusped reports whether there is a single vertex class and its link is
// a torus.
func (tr *Triangulation) IsOneCusped() (bool, error) {
	if tr.numVertices != 1 {
		return false, nil
	}
	g, err := tr.VertexLinkGenus(0)
	if err != nil {
		return false, err
	}

	return g == 1, nil
}

// LinkVertexAt returns the link vertex cut out of edge a→x at the slot a of
// tetrahedron t.
func (tr *Triangulation) LinkVertexAt(t, a, x int) LinkVertex {
	e, s := tr.Edge(t, a, x)
	if s > 0 {
		return LinkVertex{Edge: e, End: 0}
	}

	return LinkVertex{Edge: e, End: 1}
}

func buildLink(tr *Triangulation, vc int) (*LinkSurface, error) {
	l := &LinkSurface{tri: tr, VertexClass: vc}
	triIdx := make(map[TetVertex]int)
	for t := range tr.tets {
		for v := 0; v < 4; v++ {
			if tr.vertexOf[t][v] == vc {
				triIdx[TetVertex{t, v}] = len(l.Triangles)
				l.Triangles = append(l.Triangles, TetVertex{t, v})
			}
		}
	}

	vertIdx := make(map[LinkVertex]int)
	l.Corners = make([][3]int, len(l.Triangles))
	for i, tv := range l.Triangles {
		for k, x := range VerticesOfFace[tv.Vertex] {
			lv := tr.LinkVertexAt(tv.Tet, tv.Vertex, x)
			idx, ok := vertIdx[lv]
			if !ok {
				idx = len(l.Vertices)
				vertIdx[lv] = idx
				l.Vertices = append(l.Vertices, lv)
			}
			l.Corners[i][k] = idx
		}
	}

	l.sides = make([][3]sideRef, len(l.Triangles))
	done := make([][3]bool, len(l.Triangles))
	for i, tv := range l.Triangles {
		c := VerticesOfFace[tv.Vertex]
		for k := 0; k < 3; k++ {
			if done[i][k] {
				continue
			}
			x, y, z := c[k], c[(k+1)%3], c[(k+2)%3]
			u := tr.tets[tv.Tet].Neighbor[z]
			p := tr.tets[tv.Tet].Gluing[z]
			j, ok := triIdx[TetVertex{u, p[tv.Vertex]}]
			if !ok {
				return nil, fmt.Errorf("%w: link of vertex %d is not closed", ErrInvalidGluing, vc)
			}
			cc := VerticesOfFace[p[tv.Vertex]]
			kk := -1
			for m := 0; m < 3; m++ {
				if cc[m] == p[y] && cc[(m+1)%3] == p[x] {
					kk = m
				}
			}
			if kk < 0 {
				return nil, fmt.Errorf("%w: link of vertex %d, triangle %d side %d", ErrNonOrientable, vc, i, k)
			}
			eid := len(l.Edges)
			l.Edges = append(l.Edges, LinkEdge{
				Tail: l.Corners[i][k],
				Head: l.Corners[i][(k+1)%3],
				Pos:  Occurrence{Triangle: i, Side: k, Sign: 1},
				Neg:  Occurrence{Triangle: j, Side: kk, Sign: -1},
			})
			l.sides[i][k] = sideRef{eid, 1}
			l.sides[j][kk] = sideRef{eid, -1}
			done[i][k], done[j][kk] = true, true
		}
	}

	return l, nil
}

// EulerCharacteristic returns V − E + T.
func (l *LinkSurface) EulerCharacteristic() int {
	return len(l.Vertices) - len(l.Edges) + len(l.Triangles)
}

// Genus returns the genus of the (closed, oriented) link surface.
func (l *LinkSurface) Genus() int { return (2 - l.EulerCharacteristic()) / 2 }

// Triangulation returns the triangulation this link was cut from.
func (l *LinkSurface) Triangulation() *Triangulation { return l.tri }

// SideEdge returns the link edge along side k of triangle i and the sign of
// that occurrence.
func (l *LinkSurface) SideEdge(i, k int) (edge, sign int) {
	s := l.sides[i][k]
	return s.edge, s.sign
}

// SideFace returns the tetrahedron face containing side k of triangle i.
func (l *LinkSurface) SideFace(i, k int) Side {
	tv := l.Triangles[i]
	return Side{Tet: tv.Tet, Face: VerticesOfFace[tv.Vertex][(k+2)%3]}
}
