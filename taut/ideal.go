package taut

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/foliar/bfs"
	"github.com/katalvlaran/foliar/core"
	"github.com/katalvlaran/foliar/dual"
	"github.com/katalvlaran/foliar/peripheral"
)

// LinkVertexSigns returns +1 for each cusp-link vertex whose edge points away
// from the cusp and −1 otherwise, indexed like the link's Vertices. Ideal
// only.
func (o *EdgeOrientation) LinkVertexSigns() ([]int, error) {
	if err := o.require(Ideal); err != nil {
		return nil, err
	}
	link := o.cell.Link()
	out := make([]int, len(link.Vertices))
	for p, v := range link.Vertices {
		out[p] = -1
		if positive(v, o.signs) {
			out[p] = 1
		}
	}

	return out, nil
}

// CornerSigns returns LinkVertexSigns read off per link-triangle corner.
func (o *EdgeOrientation) CornerSigns() ([][3]int, error) {
	s, err := o.LinkVertexSigns()
	if err != nil {
		return nil, err
	}
	link := o.cell.Link()
	out := make([][3]int, len(link.Triangles))
	for i, row := range link.Corners {
		for k, p := range row {
			out[i][k] = s[p]
		}
	}

	return out, nil
}

// sutureWeights collects the suture cycle on the dual cellulation. In every
// link triangle whose corners disagree, the suture crosses the two sides at
// the minority corner; the triangle records the side the suture leaves
// through, with the positive region on the suture's left. The weight is +1
// when that link edge ends at a positive vertex and −1 otherwise.
func (o *EdgeOrientation) sutureWeights() ([]int64, error) {
	s, err := o.LinkVertexSigns()
	if err != nil {
		return nil, err
	}
	link := o.cell.Link()
	w := make([]int64, len(link.Edges))
	for i, row := range link.Corners {
		sg := [3]int{s[row[0]], s[row[1]], s[row[2]]}
		if sg[0] == sg[1] && sg[1] == sg[2] {
			continue
		}
		m := minority(sg)
		for _, k := range [2]int{m, (m + 2) % 3} {
			d, side := link.SideEdge(i, k)
			val := -1
			if s[link.Edges[d].Head] > 0 {
				val = 1
			}
			if side == val {
				w[d] += int64(val)
			}
		}
	}

	// every link edge with disagreeing ends carries the suture exactly once
	for d, e := range link.Edges {
		var want int64
		if s[e.Tail] != s[e.Head] {
			want = -1
			if s[e.Head] > 0 {
				want = 1
			}
		}
		if w[d] != want {
			return nil, fmt.Errorf("%w: suture weight %d on dual edge %d, want %d", ErrInvariant, w[d], d, want)
		}
	}

	return w, nil
}

// minority returns the corner whose sign differs from the other two.
func minority(sg [3]int) int {
	switch {
	case sg[0] == sg[1]:
		return 2
	case sg[0] == sg[2]:
		return 1
	default:
		return 0
	}
}

// Sutures returns the sutures on the cusp torus as dual 1-cycles, one per
// connected component of the support of the suture cycle, ordered by their
// lowest dual edge. Ideal only.
func (o *EdgeOrientation) Sutures() ([]dual.OneCycle, error) {
	if err := o.require(Ideal); err != nil {
		return nil, err
	}
	o.idealOnce.Do(o.buildSutures)
	if o.idealErr != nil {
		return nil, o.idealErr
	}

	return append([]dual.OneCycle(nil), o.sutures...), nil
}

func (o *EdgeOrientation) buildSutures() {
	w, err := o.sutureWeights()
	if err != nil {
		o.idealErr = err
		return
	}
	if _, err = dual.NewOneCycle(o.cell, w); err != nil {
		if errors.Is(err, dual.ErrNotCycle) {
			err = fmt.Errorf("%w: suture chain: %v", ErrInvariant, err)
		}
		o.idealErr = err
		return
	}

	comps, err := supportComponents(o.cell, w)
	if err != nil {
		o.idealErr = err
		return
	}
	essential := 0
	for _, ds := range comps {
		part := make([]int64, len(w))
		for _, d := range ds {
			part[d] = w[d]
		}
		z, err := dual.NewOneCycle(o.cell, part)
		if err != nil {
			o.idealErr = fmt.Errorf("%w: suture component: %v", ErrInvariant, err)
			return
		}
		slope, err := o.framing.Slope(z)
		if err != nil {
			o.idealErr = err
			return
		}
		if !slope.IsZero() {
			essential++
		}
		o.sutures = append(o.sutures, z)
		o.slopes = append(o.slopes, slope)
	}
	if essential%2 != 0 {
		o.idealErr = fmt.Errorf("%w: %d essential sutures", ErrInvariant, essential)
	}
}

// supportComponents groups the dual edges in the support of w by connected
// component, each group sorted, groups ordered by their first edge.
func supportComponents(c *dual.Cellulation, w []int64) ([][]int, error) {
	g := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	id := func(i int) string { return "t" + strconv.Itoa(i) }
	edges := c.Edges()
	for d, x := range w {
		if x == 0 {
			continue
		}
		if _, err := g.AddEdge(id(edges[d].Tail), id(edges[d].Head), d); err != nil {
			return nil, err
		}
	}
	vcomps, err := bfs.Components(g)
	if err != nil {
		return nil, err
	}
	compOf := make(map[string]int, g.VertexCount())
	for i, vs := range vcomps {
		for _, v := range vs {
			compOf[v] = i
		}
	}

	groups := make([][]int, len(vcomps))
	for d, x := range w {
		if x != 0 {
			i := compOf[id(edges[d].Tail)]
			groups[i] = append(groups[i], d)
		}
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i][0] < groups[j][0] })

	return groups, nil
}

// Slope returns the normalized slope of s against the framing. Ideal only.
func (o *EdgeOrientation) Slope(s dual.OneCycle) (peripheral.Slope, error) {
	if err := o.require(Ideal); err != nil {
		return peripheral.Slope{}, err
	}

	return o.framing.Slope(s)
}

// SutureSlopes returns the slope of every suture, in Sutures order.
func (o *EdgeOrientation) SutureSlopes() ([]peripheral.Slope, error) {
	if _, err := o.Sutures(); err != nil {
		return nil, err
	}

	return append([]peripheral.Slope(nil), o.slopes...), nil
}

func (o *EdgeOrientation) idealGivesFoliation() (bool, error) {
	slopes, err := o.SutureSlopes()
	if err != nil {
		return false, err
	}
	if len(o.SuperLongEdges()) > 0 || len(slopes) == 0 {
		return false, nil
	}
	for _, s := range slopes {
		if s.IsZero() {
			return false, nil
		}
	}

	return true, nil
}

// DegeneracySlope returns the slope of the first suture of a taut ideal
// orientation. A non-taut orientation is an ErrPrecondition.
func (o *EdgeOrientation) DegeneracySlope() (peripheral.Slope, error) {
	if err := o.require(Ideal); err != nil {
		return peripheral.Slope{}, err
	}
	taut, err := o.GivesFoliation()
	if err != nil {
		return peripheral.Slope{}, err
	}
	if !taut {
		return peripheral.Slope{}, fmt.Errorf("%w: orientation does not give a foliation", ErrPrecondition)
	}

	return o.slopes[0], nil
}
