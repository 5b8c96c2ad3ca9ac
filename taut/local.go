package taut

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/foliar/core"
	"github.com/katalvlaran/foliar/dfs"
	"github.com/katalvlaran/foliar/triangulation"
)

// pointsAway reports whether the tetrahedron edge a–b of tetrahedron t is
// oriented a→b.
func pointsAway(tri *triangulation.Triangulation, signs []int, t, a, b int) bool {
	e, s := tri.Edge(t, a, b)

	return signs[e]*s > 0
}

// LocalStructure returns the local structure at vertex slot v of
// tetrahedron t.
func LocalStructure(tri *triangulation.Triangulation, signs []int, t, v int) Structure {
	var st Structure
	for b := 0; b < 4; b++ {
		if b == v {
			continue
		}
		if pointsAway(tri, signs, t, v, b) {
			st.Out++
		} else {
			st.In++
		}
	}

	return st
}

func (s Structure) extreme() bool { return s.Out == 0 || s.In == 0 }

// IsLong reports whether the tetrahedron edge a–b of tetrahedron t joins the
// source and the sink of t.
func IsLong(tri *triangulation.Triangulation, signs []int, t, a, b int) bool {
	return LocalStructure(tri, signs, t, a).extreme() && LocalStructure(tri, signs, t, b).extreme()
}

// IsMixed reports whether a–b is the first or the last edge of the linear
// order of t, the two corners whose faces meet in a suture.
func IsMixed(tri *triangulation.Triangulation, signs []int, t, a, b int) bool {
	x, y := LocalStructure(tri, signs, t, a), LocalStructure(tri, signs, t, b)
	if x.Out < y.Out {
		x, y = y, x
	}
	first, last := Structure{Out: 3}, Structure{In: 3}

	return (x == first && y.Out == 2) || (x.Out == 1 && y == last)
}

// IsCusp reports whether a–b joins vertices two apart in the linear order of
// t. Along such an edge the two faces of t are co-oriented alike, which is a
// cusp of the branched surface.
func IsCusp(tri *triangulation.Triangulation, signs []int, t, a, b int) bool {
	x, y := 3-LocalStructure(tri, signs, t, a).Out, 3-LocalStructure(tri, signs, t, b).Out
	if x > y {
		x, y = y, x
	}

	return (x == 0 && y == 2) || (x == 1 && y == 3)
}

// TetOrder returns the vertex slots of tetrahedron t from source to sink.
// The directed 1-skeleton of t is sorted topologically, so a directed cycle
// is reported rather than assumed away.
func TetOrder(tri *triangulation.Triangulation, signs []int, t int) ([4]int, error) {
	var order [4]int
	g := core.NewGraph(core.WithDirected(true))
	for _, p := range triangulation.Pairs() {
		from, to := p[0], p[1]
		if !pointsAway(tri, signs, t, from, to) {
			from, to = to, from
		}
		e, _ := tri.Edge(t, from, to)
		if _, err := g.AddEdge(strconv.Itoa(from), strconv.Itoa(to), e); err != nil {
			return order, err
		}
	}
	ids, err := dfs.TopologicalSort(g)
	if err != nil {
		return order, fmt.Errorf("%w: tetrahedron %d: %v", ErrInvariant, t, err)
	}
	if len(ids) != 4 {
		return order, fmt.Errorf("%w: tetrahedron %d sorted into %d vertices", ErrInvariant, t, len(ids))
	}
	for i, id := range ids {
		if order[i], err = strconv.Atoi(id); err != nil {
			return order, err
		}
		if got := LocalStructure(tri, signs, t, order[i]); got.Out != 3-i {
			return order, fmt.Errorf("%w: tetrahedron %d vertex %d is at position %d with out-degree %d",
				ErrInvariant, t, order[i], i, got.Out)
		}
	}

	return order, nil
}

// SuperLongEdges returns, in increasing order, the edge classes that are
// long in every tetrahedron they meet.
func SuperLongEdges(tri *triangulation.Triangulation, signs []int) []int {
	var out []int
	for e := 0; e < tri.NumEdges(); e++ {
		long := true
		for _, c := range tri.EdgeCorners(e) {
			if !IsLong(tri, signs, c.Tet, c.A, c.B) {
				long = false
				break
			}
		}
		if long {
			out = append(out, e)
		}
	}

	return out
}

// cuspCounts returns, per edge class, the number of its corners that are
// cusps.
func cuspCounts(tri *triangulation.Triangulation, signs []int) []int {
	counts := make([]int, tri.NumEdges())
	for e := range counts {
		for _, c := range tri.EdgeCorners(e) {
			if IsCusp(tri, signs, c.Tet, c.A, c.B) {
				counts[e]++
			}
		}
	}

	return counts
}
