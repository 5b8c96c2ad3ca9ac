package isosig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/foliar/isosig"
	"github.com/katalvlaran/foliar/triangulation"
)

func TestDecodeGluings_Fig8(t *testing.T) {
	tets, err := isosig.DecodeGluings("cPcbbbiht")
	require.NoError(t, err)
	require.Len(t, tets, 2)
	for i, tet := range tets {
		for f := 0; f < 4; f++ {
			u := tet.Neighbor[f]
			require.NotEqual(t, triangulation.NoNeighbor, u, "tet %d face %d", i, f)
			p := tet.Gluing[f]
			assert.True(t, p.Valid())
			assert.Equal(t, i, tets[u].Neighbor[p[f]])
			assert.Equal(t, p.Inverse(), tets[u].Gluing[p[f]])
		}
	}
	// the first action glues tet 0 face 0 to a new tetrahedron by the identity
	assert.Equal(t, 1, tets[0].Neighbor[0])
	assert.Equal(t, triangulation.Identity, tets[0].Gluing[0])
}

func TestDecode(t *testing.T) {
	tests := []struct {
		sig   string
		tets  int
		edges int
	}{
		{"cPcbbbiht", 2, 2},
		{"dLQbcccdero", 3, 3},
		{"dLQbccchhfo", 3, 3},
		{"jLvMLQQbfefgihhiixiptvvvgof", 9, 10},
		{"oLLvLMLPQQcacgikmkimjlnnnmnkjaaagnnnwkwkw", 14, 15},
	}
	for _, tc := range tests {
		t.Run(tc.sig, func(t *testing.T) {
			tr, err := isosig.Decode(tc.sig)
			require.NoError(t, err)
			assert.Equal(t, tc.tets, tr.Size())
			assert.Equal(t, tc.edges, tr.NumEdges())
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	for _, sig := range []string{"", "c", "cPcbbbih", "cPcbbbihtt", "cPc*bbiht", "a"} {
		_, err := isosig.DecodeGluings(sig)
		assert.ErrorIs(t, err, isosig.ErrSyntax, "signature %q", sig)
	}
}
