// Package triangulation models a closed or ideal 3-manifold triangulation:
// tetrahedra glued face to face by vertex permutations, partitioned into
// edge, face and vertex classes, together with the per-corner sign table,
// the integer boundary maps and the triangulated vertex links.
//
// Tetrahedra are reference-oriented so that the faces read anticlockwise
// from outside in the vertex order given by VerticesOfFace. Construction
// relabels tetrahedra (exchanging slots 2 and 3) until every gluing reverses
// orientation, and fails with ErrNonOrientable if that is impossible.
//
// A Triangulation is immutable after New returns and may be shared between
// goroutines. Lazily derived data (boundary matrices, vertex links) is
// computed once behind sync.Once.
package triangulation

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/foliar/matrix"
)

// Sentinel errors for triangulation construction and queries.
var (
	ErrEmpty         = errors.New("triangulation: no tetrahedra")
	ErrBoundary      = errors.New("triangulation: unglued face")
	ErrInvalidGluing = errors.New("triangulation: inconsistent gluing")
	ErrNonOrientable = errors.New("triangulation: not orientable")
	ErrReversedEdge  = errors.New("triangulation: edge identified with its reverse")
	ErrOutOfRange    = errors.New("triangulation: index out of range")
)

// NoNeighbor marks an unglued face in a Tet.
const NoNeighbor = -1

// VerticesOfFace lists, for the face opposite each vertex slot, its three
// vertices in anticlockwise order as seen from outside the tetrahedron.
var VerticesOfFace = [4][3]int{
	{1, 3, 2},
	{0, 2, 3},
	{0, 3, 1},
	{0, 1, 2},
}

// pairs enumerates the six edges of a tetrahedron in scan order.
var pairs = [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}

// Pairs returns the six vertex pairs of a tetrahedron in scan order.
func Pairs() [6][2]int { return pairs }

// Tet records the gluings of one tetrahedron. Face f is glued to face
// Gluing[f][f] of tetrahedron Neighbor[f], with vertex slot i mapped to
// Gluing[f][i].
type Tet struct {
	Neighbor [4]int
	Gluing   [4]Perm4
}

// Corner is an edge of a specific tetrahedron, with A < B.
type Corner struct {
	Tet, A, B int
}

// Side is one of the two tetrahedron faces making up a face class.
type Side struct {
	Tet, Face int
}

// Triangulation is an oriented, fully glued triangulation with its classes.
type Triangulation struct {
	tets    []Tet
	flipped []bool

	edgeOf      [][4][4]int
	signOf      [][4][4]int
	edgeCorners [][]Corner

	faceOf    [][4]int
	faceSides [][2]Side

	vertexOf    [][4]int
	numVertices int

	chainOnce sync.Once
	d1, d2    *matrix.Dense
	chainErr  error

	linkOnce []sync.Once
	links    []*LinkSurface
	linkErr  []error
}

// New validates the gluings, orients the tetrahedra and computes classes.
// The input slice is not retained.
func New(tets []Tet) (*Triangulation, error) {
	n := len(tets)
	if n == 0 {
		return nil, ErrEmpty
	}
	if err := validate(tets); err != nil {
		return nil, err
	}
	oriented, flipped, err := orient(tets)
	if err != nil {
		return nil, err
	}
	tr := &Triangulation{tets: oriented, flipped: flipped}
	if err = tr.buildEdges(); err != nil {
		return nil, err
	}
	tr.buildFaces()
	tr.buildVertices()
	tr.linkOnce = make([]sync.Once, tr.numVertices)
	tr.links = make([]*LinkSurface, tr.numVertices)
	tr.linkErr = make([]error, tr.numVertices)

	return tr, nil
}

func validate(tets []Tet) error {
	n := len(tets)
	for t, tet := range tets {
		for f := 0; f < 4; f++ {
			u := tet.Neighbor[f]
			if u == NoNeighbor {
				return fmt.Errorf("%w: tet %d face %d", ErrBoundary, t, f)
			}
			if u < 0 || u >= n {
				return fmt.Errorf("%w: tet %d face %d points to tet %d", ErrInvalidGluing, t, f, u)
			}
			p := tet.Gluing[f]
			if !p.Valid() {
				return fmt.Errorf("%w: tet %d face %d has gluing %v", ErrInvalidGluing, t, f, p)
			}
			g := p[f]
			if u == t && g == f {
				return fmt.Errorf("%w: tet %d face %d glued to itself", ErrInvalidGluing, t, f)
			}
			back := tets[u]
			if back.Neighbor[g] != t || back.Gluing[g] != p.Inverse() {
				return fmt.Errorf("%w: tet %d face %d and tet %d face %d disagree", ErrInvalidGluing, t, f, u, g)
			}
		}
	}

	return nil
}

// Size returns the number of tetrahedra.
func (tr *Triangulation) Size() int { return len(tr.tets) }

// Tet returns the (oriented) gluing record of tetrahedron t.
func (tr *Triangulation) Tet(t int) Tet { return tr.tets[t] }

// Neighbor returns the tetrahedron glued to face f of t.
func (tr *Triangulation) Neighbor(t, f int) int { return tr.tets[t].Neighbor[f] }

// Gluing returns the permutation gluing face f of t to its neighbor.
func (tr *Triangulation) Gluing(t, f int) Perm4 { return tr.tets[t].Gluing[f] }

// Relabeled reports whether tetrahedron t had slots 2 and 3 exchanged during
// orientation.
func (tr *Triangulation) Relabeled(t int) bool { return tr.flipped[t] }

// AnyRelabeled reports whether orientation changed any tetrahedron.
func (tr *Triangulation) AnyRelabeled() bool {
	for _, f := range tr.flipped {
		if f {
			return true
		}
	}

	return false
}

// NumEdges returns the number of edge classes.
func (tr *Triangulation) NumEdges() int { return len(tr.edgeCorners) }

// NumFaces returns the number of face classes.
func (tr *Triangulation) NumFaces() int { return len(tr.faceSides) }

// NumVertices returns the number of vertex classes.
func (tr *Triangulation) NumVertices() int { return tr.numVertices }

// Edge returns the edge class of the directed corner a→b of tetrahedron t and
// the sign of a→b against the class baseline direction.
func (tr *Triangulation) Edge(t, a, b int) (class, sign int) {
	return tr.edgeOf[t][a][b], tr.signOf[t][a][b]
}

// EdgeCorners returns every tetrahedron corner belonging to edge class e.
func (tr *Triangulation) EdgeCorners(e int) []Corner { return tr.edgeCorners[e] }

// EdgeDegree returns the number of corners of edge class e.
func (tr *Triangulation) EdgeDegree(e int) int { return len(tr.edgeCorners[e]) }

// Face returns the face class of the face opposite slot f in tetrahedron t.
func (tr *Triangulation) Face(t, f int) int { return tr.faceOf[t][f] }

// FaceSides returns the two sides of face class f; the first is the
// representative side used for orienting the face.
func (tr *Triangulation) FaceSides(f int) [2]Side { return tr.faceSides[f] }

// VertexOf returns the vertex class of slot v of tetrahedron t.
func (tr *Triangulation) VertexOf(t, v int) int { return tr.vertexOf[t][v] }
