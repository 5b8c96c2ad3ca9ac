package dual_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/foliar/dual"
	"github.com/katalvlaran/foliar/isosig"
	"github.com/katalvlaran/foliar/matrix"
)

func cellulation(t *testing.T, sig string) *dual.Cellulation {
	t.Helper()
	tr, err := isosig.Decode(sig)
	require.NoError(t, err)
	link, err := tr.Link(0)
	require.NoError(t, err)
	c, err := dual.New(link)
	require.NoError(t, err)

	return c
}

func TestCellulation_Sphere(t *testing.T) {
	c := cellulation(t, "jLLvQPQcdfhghigiihshhgfifme")
	assert.Equal(t, 36, c.Vertices())
	assert.Equal(t, 54, c.NumEdges())
	assert.Equal(t, 20, c.NumFaces())
	assert.Equal(t, 2, c.Euler())
	require.NoError(t, c.Check())

	h, err := c.Homology()
	require.NoError(t, err)
	assert.Equal(t, 0, h.Betti)
	assert.Empty(t, h.Torsion)

	basis, err := c.HomologyBasis()
	require.NoError(t, err)
	assert.Empty(t, basis)
}

func TestCellulation_Torus(t *testing.T) {
	for _, sig := range []string{"dLQbcccdero", "cPcbbbiht"} {
		t.Run(sig, func(t *testing.T) {
			c := cellulation(t, sig)
			assert.Equal(t, 0, c.Euler())
			require.NoError(t, c.Check())

			h, err := c.Homology()
			require.NoError(t, err)
			assert.Equal(t, 2, h.Betti)

			b1, err := c.B1()
			require.NoError(t, err)
			b2, err := c.B2()
			require.NoError(t, err)
			prod, err := matrix.Mul(b1, b2)
			require.NoError(t, err)
			assert.True(t, prod.IsZero())

			incidences := 0
			for _, f := range c.Faces() {
				require.Len(t, f.Signs, len(f.Edges))
				incidences += len(f.Edges)
			}
			assert.Equal(t, 2*c.NumEdges(), incidences)
		})
	}
}

func TestBases_PairToIdentity(t *testing.T) {
	c := cellulation(t, "dLQbcccdero")
	cob, err := c.CohomologyBasis()
	require.NoError(t, err)
	hom, err := c.HomologyBasis()
	require.NoError(t, err)
	require.Len(t, cob, 2)
	require.Len(t, hom, 2)
	for i, a := range cob {
		for j, z := range hom {
			v, err := a.Pair(z)
			require.NoError(t, err)
			want := int64(0)
			if i == j {
				want = 1
			}
			assert.Equal(t, want, v, "pair(%d,%d)", i, j)
		}
	}
}

func TestOneCycle_Validation(t *testing.T) {
	c := cellulation(t, "dLQbcccdero")
	_, err := dual.NewOneCycle(c, []int64{1})
	assert.ErrorIs(t, err, dual.ErrLength)
	_, err = dual.NewOneCocycle(c, []int64{1})
	assert.ErrorIs(t, err, dual.ErrLength)

	w := make([]int64, c.NumEdges())
	for d, e := range c.Edges() {
		if e.Tail != e.Head {
			w[d] = 1
			break
		}
	}
	_, err = dual.NewOneCycle(c, w)
	assert.ErrorIs(t, err, dual.ErrNotCycle)

	zero, err := dual.NewOneCycle(c, make([]int64, c.NumEdges()))
	require.NoError(t, err)
	assert.True(t, zero.IsZero())

	other := cellulation(t, "dLQbcccdero")
	cob, err := other.CohomologyBasis()
	require.NoError(t, err)
	_, err = cob[0].Pair(zero)
	assert.ErrorIs(t, err, dual.ErrMismatch)
}

func TestNew_NilLink(t *testing.T) {
	_, err := dual.New(nil)
	assert.ErrorIs(t, err, dual.ErrNilLink)
}
