package dual

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/foliar/core"
)

func TestForest(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"a", "a"}} {
		_, err := g.AddEdge(e[0], e[1], g.EdgeCount())
		require.NoError(t, err)
	}

	f, err := forest(g, []bool{true, true, false, false})
	require.NoError(t, err)
	assert.Equal(t, 3, f.VertexCount())
	assert.Equal(t, 2, f.EdgeCount())
	assert.True(t, f.HasEdge("a", "b"))
	assert.False(t, f.HasEdge("c", "a"))

	_, err = forest(g, []bool{true, true})
	assert.ErrorIs(t, err, ErrInvariant)
}
