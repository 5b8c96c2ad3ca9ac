package triangulation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/foliar/isosig"
	"github.com/katalvlaran/foliar/matrix"
	"github.com/katalvlaran/foliar/triangulation"
)

const (
	sigClosedA = "jLLvQPQcdfhghigiihshhgfifme"
	sigClosedB = "jLvLQAQbffghghiiieuaiikktuu"
	sigCusped  = "dLQbcccdero"
	sigFig8    = "cPcbbbiht"
	sigZ14     = "oLLvLMLPQQcacgikmkimjlnnnmnkjaaagnnnwkwkw"
)

func decode(t *testing.T, sig string) *triangulation.Triangulation {
	t.Helper()
	tr, err := isosig.Decode(sig)
	require.NoError(t, err)

	return tr
}

func TestPerm4(t *testing.T) {
	p, ok := triangulation.S4(0)
	require.True(t, ok)
	assert.Equal(t, triangulation.Identity, p)
	p, _ = triangulation.S4(1)
	assert.Equal(t, triangulation.Perm4{0, 1, 3, 2}, p)
	p, _ = triangulation.S4(6)
	assert.Equal(t, triangulation.Perm4{1, 0, 2, 3}, p)
	p, _ = triangulation.S4(23)
	assert.Equal(t, triangulation.Perm4{3, 2, 1, 0}, p)
	_, ok = triangulation.S4(24)
	assert.False(t, ok)

	odd := 0
	for i := 0; i < 24; i++ {
		q, _ := triangulation.S4(i)
		require.True(t, q.Valid())
		assert.Equal(t, triangulation.Identity, q.Compose(q.Inverse()))
		if q.Sign() < 0 {
			odd++
		}
	}
	assert.Equal(t, 12, odd)

	a := triangulation.Perm4{1, 2, 3, 0}
	b := triangulation.Perm4{0, 1, 3, 2}
	assert.Equal(t, triangulation.Perm4{1, 2, 0, 3}, a.Compose(b))
	assert.False(t, triangulation.Perm4{0, 0, 1, 2}.Valid())
}

func TestCounts(t *testing.T) {
	tests := []struct {
		sig                        string
		tets, edges, faces, verts  int
		genus                      int
	}{
		{sigClosedA, 9, 10, 18, 1, 0},
		{sigClosedB, 9, 10, 18, 1, 0},
		{sigZ14, 14, 15, 28, 1, 0},
		{sigCusped, 3, 3, 6, 1, 1},
		{sigFig8, 2, 2, 4, 1, 1},
	}
	for _, tc := range tests {
		t.Run(tc.sig, func(t *testing.T) {
			tr := decode(t, tc.sig)
			assert.Equal(t, tc.tets, tr.Size())
			assert.Equal(t, tc.edges, tr.NumEdges())
			assert.Equal(t, tc.faces, tr.NumFaces())
			assert.Equal(t, tc.verts, tr.NumVertices())
			g, err := tr.VertexLinkGenus(0)
			require.NoError(t, err)
			assert.Equal(t, tc.genus, g)

			closed, err := tr.IsClosed()
			require.NoError(t, err)
			assert.Equal(t, tc.genus == 0, closed)
			cusped, err := tr.IsOneCusped()
			require.NoError(t, err)
			assert.Equal(t, tc.genus == 1, cusped)
		})
	}
}

func TestOrientedGluings(t *testing.T) {
	for _, sig := range []string{sigClosedA, sigClosedB, sigCusped, sigFig8, sigZ14} {
		tr := decode(t, sig)
		for i := 0; i < tr.Size(); i++ {
			for f := 0; f < 4; f++ {
				p := tr.Gluing(i, f)
				u := tr.Neighbor(i, f)
				assert.Equal(t, -1, p.Sign(), "%s tet %d face %d", sig, i, f)
				assert.Equal(t, p.Inverse(), tr.Gluing(u, p[f]))
			}
		}
	}
}

func TestCornerTable(t *testing.T) {
	tr := decode(t, sigClosedA)
	total := 0
	for e := 0; e < tr.NumEdges(); e++ {
		corners := tr.EdgeCorners(e)
		assert.Equal(t, len(corners), tr.EdgeDegree(e))
		total += len(corners)
		for _, c := range corners {
			cls, s := tr.Edge(c.Tet, c.A, c.B)
			assert.Equal(t, e, cls)
			rc, rs := tr.Edge(c.Tet, c.B, c.A)
			assert.Equal(t, e, rc)
			assert.Equal(t, -s, rs)
		}
	}
	assert.Equal(t, 6*tr.Size(), total)

	// the first corner of class 0 is tet 0, edge 01, which sets the baseline
	cls, s := tr.Edge(0, 0, 1)
	assert.Equal(t, 0, cls)
	assert.Equal(t, 1, s)

	for i := 0; i < tr.Size(); i++ {
		for v := 0; v < 4; v++ {
			assert.Equal(t, 0, tr.VertexOf(i, v), "one-vertex triangulation")
		}
	}

	for f := 0; f < tr.NumFaces(); f++ {
		sides := tr.FaceSides(f)
		assert.Equal(t, f, tr.Face(sides[0].Tet, sides[0].Face))
		assert.Equal(t, f, tr.Face(sides[1].Tet, sides[1].Face))
	}
}

func TestBoundaryMatrices(t *testing.T) {
	tests := []struct {
		sig  string
		want []int64
	}{
		{sigClosedA, []int64{1, 1, 1, 1, 1, 1, 1, 1, 1, 5}},
		{sigZ14, []int64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 14}},
		{sigCusped, []int64{1, 1, 1}},
	}
	for _, tc := range tests {
		t.Run(tc.sig, func(t *testing.T) {
			tr := decode(t, tc.sig)
			d1, err := tr.BoundaryMatrix1()
			require.NoError(t, err)
			d2, err := tr.BoundaryMatrix2()
			require.NoError(t, err)
			assert.Equal(t, tr.NumVertices(), d1.Rows())
			assert.Equal(t, tr.NumEdges(), d2.Rows())
			assert.Equal(t, tr.NumFaces(), d2.Cols())

			prod, err := matrix.Mul(d1, d2)
			require.NoError(t, err)
			assert.True(t, prod.IsZero())

			facs, err := matrix.InvariantFactors(d2)
			require.NoError(t, err)
			assert.Equal(t, tc.want, facs)
		})
	}
}

func TestLinkSurface(t *testing.T) {
	tr := decode(t, sigClosedA)
	l, err := tr.Link(0)
	require.NoError(t, err)
	assert.Len(t, l.Triangles, 36)
	assert.Len(t, l.Vertices, 20)
	assert.Len(t, l.Edges, 54)
	assert.Equal(t, 2, l.EulerCharacteristic())
	assert.Equal(t, 0, l.Genus())

	for d, e := range l.Edges {
		ed, s := l.SideEdge(e.Pos.Triangle, e.Pos.Side)
		assert.Equal(t, d, ed)
		assert.Equal(t, 1, s)
		ed, s = l.SideEdge(e.Neg.Triangle, e.Neg.Side)
		assert.Equal(t, d, ed)
		assert.Equal(t, -1, s)
		pf := l.SideFace(e.Pos.Triangle, e.Pos.Side)
		nf := l.SideFace(e.Neg.Triangle, e.Neg.Side)
		assert.Equal(t, tr.Face(pf.Tet, pf.Face), tr.Face(nf.Tet, nf.Face))
	}

	again, err := tr.Link(0)
	require.NoError(t, err)
	assert.Same(t, l, again)

	_, err = tr.Link(3)
	assert.ErrorIs(t, err, triangulation.ErrOutOfRange)

	cusp := decode(t, sigCusped)
	cl, err := cusp.Link(0)
	require.NoError(t, err)
	assert.Len(t, cl.Triangles, 12)
	assert.Len(t, cl.Vertices, 6)
	assert.Len(t, cl.Edges, 18)
	assert.Equal(t, 0, cl.EulerCharacteristic())
}

func TestNew_Errors(t *testing.T) {
	_, err := triangulation.New(nil)
	assert.ErrorIs(t, err, triangulation.ErrEmpty)

	open := triangulation.Tet{Neighbor: [4]int{-1, -1, -1, -1}}
	_, err = triangulation.New([]triangulation.Tet{open})
	assert.ErrorIs(t, err, triangulation.ErrBoundary)

	even := triangulation.Perm4{1, 0, 3, 2}
	swap := triangulation.Perm4{0, 1, 3, 2}
	nonOrientable := triangulation.Tet{
		Neighbor: [4]int{0, 0, 0, 0},
		Gluing:   [4]triangulation.Perm4{even, even, swap, swap},
	}
	_, err = triangulation.New([]triangulation.Tet{nonOrientable})
	assert.ErrorIs(t, err, triangulation.ErrNonOrientable)

	broken := nonOrientable
	broken.Gluing[1] = triangulation.Identity
	_, err = triangulation.New([]triangulation.Tet{broken})
	assert.ErrorIs(t, err, triangulation.ErrInvalidGluing)
}
