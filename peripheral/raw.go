package peripheral

import (
	"fmt"

	"github.com/katalvlaran/foliar/dual"
	"github.com/katalvlaran/foliar/triangulation"
)

// RawWidth is the number of entries per tetrahedron in raw peripheral data:
// entry 4·v+f is the signed number of times the curve crosses face f of the
// link triangle cut off vertex v.
const RawWidth = 16

// rawSlot returns the (tet, index) of the raw entry for one occurrence of a
// link edge.
func rawSlot(link *triangulation.LinkSurface, o triangulation.Occurrence) (int, int) {
	tv := link.Triangles[o.Triangle]
	side := link.SideFace(o.Triangle, o.Side)

	return tv.Tet, 4*tv.Vertex + side.Face
}

func checkLabels(c *dual.Cellulation) error {
	if c.Link().Triangulation().AnyRelabeled() {
		return fmt.Errorf("%w: raw data refers to the unoriented labeling", ErrPrecondition)
	}

	return nil
}

// FromRawData converts SnapPea-style raw peripheral curve data (one row of
// RawWidth entries per tetrahedron) into a dual 1-cycle. The weight on dual
// edge d is minus the raw entry at the positive occurrence of link edge d.
//
// Every tetrahedron must have kept its input labeling; otherwise the data
// cannot be read and ErrPrecondition is returned.
func FromRawData(c *dual.Cellulation, data [][]int) (dual.OneCycle, error) {
	if err := checkLabels(c); err != nil {
		return dual.OneCycle{}, err
	}
	link := c.Link()
	tri := link.Triangulation()
	if len(data) != tri.Size() {
		return dual.OneCycle{}, fmt.Errorf("%w: %d rows for %d tetrahedra", ErrPrecondition, len(data), tri.Size())
	}
	var total int64
	for t, row := range data {
		if len(row) != RawWidth {
			return dual.OneCycle{}, fmt.Errorf("%w: row %d has %d entries", ErrPrecondition, t, len(row))
		}
		for _, x := range row {
			total += abs64(int64(x))
		}
	}

	w := make([]int64, len(link.Edges))
	var sum int64
	for d, e := range link.Edges {
		t, i := rawSlot(link, e.Pos)
		w[d] = -int64(data[t][i])
		sum += abs64(w[d])
	}
	if 2*sum != total {
		return dual.OneCycle{}, fmt.Errorf("%w: raw data has weight %d, cycle has %d", ErrInvariant, total, 2*sum)
	}

	return dual.NewOneCycle(c, w)
}

// ToRawData is the inverse of FromRawData.
func ToRawData(z dual.OneCycle) ([][]int, error) {
	c := z.Cellulation()
	if c == nil {
		return nil, fmt.Errorf("%w: zero-value cycle", ErrPrecondition)
	}
	if err := checkLabels(c); err != nil {
		return nil, err
	}
	link := c.Link()
	data := make([][]int, link.Triangulation().Size())
	for t := range data {
		data[t] = make([]int, RawWidth)
	}
	for d, x := range z.Weights() {
		e := link.Edges[d]
		t, i := rawSlot(link, e.Pos)
		data[t][i] = -int(x)
		t, i = rawSlot(link, e.Neg)
		data[t][i] = int(x)
	}

	return data, nil
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}
