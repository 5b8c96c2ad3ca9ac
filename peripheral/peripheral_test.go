package peripheral_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/foliar/dual"
	"github.com/katalvlaran/foliar/isosig"
	"github.com/katalvlaran/foliar/peripheral"
	"github.com/katalvlaran/foliar/triangulation"
)

func cusp(t *testing.T, sig string) *dual.Cellulation {
	t.Helper()
	tr, err := isosig.Decode(sig)
	require.NoError(t, err)
	link, err := tr.Link(0)
	require.NoError(t, err)
	c, err := dual.New(link)
	require.NoError(t, err)

	return c
}

func TestNormalizeSlope(t *testing.T) {
	tests := []struct {
		m, l int64
		want peripheral.Slope
	}{
		{2, 4, peripheral.Slope{M: 1, L: 2}},
		{-3, 0, peripheral.Slope{M: 1, L: 0}},
		{3, -6, peripheral.Slope{M: -1, L: 2}},
		{0, -5, peripheral.Slope{M: 0, L: 1}},
		{0, 0, peripheral.Slope{}},
	}
	for _, tc := range tests {
		got := peripheral.NormalizeSlope(tc.m, tc.l)
		assert.Equal(t, tc.want, got, "(%d,%d)", tc.m, tc.l)
	}
	assert.True(t, peripheral.Slope{}.IsZero())
	assert.Equal(t, "(1,-2)", peripheral.Slope{M: 1, L: -2}.String())
}

func TestFind(t *testing.T) {
	for _, sig := range []string{"dLQbcccdero", "cPcbbbiht", "dLQbccchhfo"} {
		t.Run(sig, func(t *testing.T) {
			c := cusp(t, sig)
			f, err := peripheral.Find(c)
			require.NoError(t, err)
			assert.False(t, f.Meridian().IsZero())
			assert.False(t, f.Longitude().IsZero())

			s, err := f.Slope(f.Meridian())
			require.NoError(t, err)
			assert.Equal(t, peripheral.Slope{M: 1, L: 0}, s)
			s, err = f.Slope(f.Longitude())
			require.NoError(t, err)
			assert.Equal(t, peripheral.Slope{M: 0, L: 1}, s)

			v, err := f.MeridianDual().Pair(f.Longitude())
			require.NoError(t, err)
			assert.Zero(t, v)
			v, err = f.LongitudeDual().Pair(f.Longitude())
			require.NoError(t, err)
			assert.Equal(t, int64(1), v)

			again, err := peripheral.NewFraming(c, f.Meridian(), f.Longitude())
			require.NoError(t, err)
			assert.Equal(t, f.MeridianDual().Weights(), again.MeridianDual().Weights())
		})
	}
}

func TestNewFraming_NotUnimodular(t *testing.T) {
	c := cusp(t, "dLQbcccdero")
	f, err := peripheral.Find(c)
	require.NoError(t, err)
	_, err = peripheral.NewFraming(c, f.Longitude(), f.Longitude())
	assert.ErrorIs(t, err, peripheral.ErrInvariant)

	other := cusp(t, "dLQbcccdero")
	_, err = peripheral.NewFraming(other, f.Meridian(), f.Longitude())
	assert.ErrorIs(t, err, peripheral.ErrPrecondition)
}

func TestFind_SphereLink(t *testing.T) {
	c := cusp(t, "jLLvQPQcdfhghigiihshhgfifme")
	_, err := peripheral.Find(c)
	assert.ErrorIs(t, err, peripheral.ErrPrecondition)
}

// figureEight is the figure-eight knot complement with both tetrahedra
// already labelled so that every gluing reverses orientation; raw data
// written against it needs no relabelling.
func figureEight(t *testing.T) *dual.Cellulation {
	t.Helper()
	glue := [4]triangulation.Perm4{{0, 1, 3, 2}, {1, 3, 0, 2}, {1, 0, 2, 3}, {2, 0, 3, 1}}
	tr, err := triangulation.New([]triangulation.Tet{
		{Neighbor: [4]int{1, 1, 1, 1}, Gluing: glue},
		{Neighbor: [4]int{0, 0, 0, 0}, Gluing: glue},
	})
	require.NoError(t, err)
	require.False(t, tr.AnyRelabeled())
	link, err := tr.Link(0)
	require.NoError(t, err)
	c, err := dual.New(link)
	require.NoError(t, err)

	return c
}

// Curves on the figure-eight cusp in SnapPea's layout: entry 4*v+f counts
// the signed crossings of the side on face f of the cusp triangle at
// vertex v.
var (
	// Two arcs: tet 0 vertex 0 from face 1 to face 2, then tet 1 vertex 1
	// from face 2 to face 3, which is glued back to face 1 of tet 0.
	figureEightMeridian = [][]int{
		{0, -1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, -1, 1, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	// Eight arcs, once through every cusp triangle.
	figureEightLongitude = [][]int{
		{0, -1, 0, 1, 1, 0, -1, 0, -1, 1, 0, 0, 0, -1, 1, 0},
		{0, 0, 1, -1, -1, 0, 0, 1, 0, -1, 0, 1, 1, 0, -1, 0},
	}
)

func TestFromRawData_FigureEight(t *testing.T) {
	c := figureEight(t)
	for _, data := range [][][]int{figureEightMeridian, figureEightLongitude} {
		for tet, row := range data {
			for v := 0; v < 4; v++ {
				assert.Zero(t, row[4*v+v], "tet %d vertex %d", tet, v)
				assert.Zero(t, row[4*v]+row[4*v+1]+row[4*v+2]+row[4*v+3], "tet %d vertex %d", tet, v)
			}
		}
	}

	m, err := peripheral.FromRawData(c, figureEightMeridian)
	require.NoError(t, err)
	l, err := peripheral.FromRawData(c, figureEightLongitude)
	require.NoError(t, err)
	assert.False(t, m.IsZero())
	assert.False(t, l.IsZero())

	found, err := peripheral.Find(c)
	require.NoError(t, err)
	s, err := found.Slope(m)
	require.NoError(t, err)
	assert.Equal(t, peripheral.Slope{M: 1, L: 0}, s)
	s, err = found.Slope(l)
	require.NoError(t, err)
	assert.Equal(t, peripheral.Slope{M: 0, L: 1}, s)

	given, err := peripheral.NewFraming(c, m, l)
	require.NoError(t, err)
	s, err = given.Slope(found.Meridian())
	require.NoError(t, err)
	assert.Equal(t, peripheral.Slope{M: 1, L: 0}, s)
	s, err = given.Slope(found.Longitude())
	require.NoError(t, err)
	assert.Equal(t, peripheral.Slope{M: 0, L: 1}, s)
}

func TestRawData_RoundTrip(t *testing.T) {
	c := figureEight(t)
	m, err := peripheral.FromRawData(c, figureEightMeridian)
	require.NoError(t, err)
	raw, err := peripheral.ToRawData(m)
	require.NoError(t, err)
	assert.Equal(t, figureEightMeridian, raw)

	f, err := peripheral.Find(c)
	require.NoError(t, err)
	raw, err = peripheral.ToRawData(f.Longitude())
	require.NoError(t, err)
	back, err := peripheral.FromRawData(c, raw)
	require.NoError(t, err)
	assert.Equal(t, f.Longitude().Weights(), back.Weights())

	raw[0][0]++
	_, err = peripheral.FromRawData(c, raw)
	assert.ErrorIs(t, err, peripheral.ErrInvariant)

	_, err = peripheral.FromRawData(c, raw[:1])
	assert.ErrorIs(t, err, peripheral.ErrPrecondition)
}

func TestRawData_Relabeled(t *testing.T) {
	c := cusp(t, "dLQbcccdero")
	require.True(t, c.Link().Triangulation().AnyRelabeled())
	f, err := peripheral.Find(c)
	require.NoError(t, err)

	_, err = peripheral.ToRawData(f.Meridian())
	assert.ErrorIs(t, err, peripheral.ErrPrecondition)
	_, err = peripheral.FromRawData(c, figureEightMeridian)
	assert.ErrorIs(t, err, peripheral.ErrPrecondition)
}
