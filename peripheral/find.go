package peripheral

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/foliar/dual"
	"github.com/katalvlaran/foliar/matrix"
)

// Find computes a framing of the torus link dual to c without external curve
// data.
//
// The longitude is the primitive combination of the homology basis whose
// image in H₁(M;Q) vanishes. A dual edge maps to the face class it crosses,
// and images are reduced modulo the span of the images of the dual faces
// (the loops around the edge classes). The meridian is a complement of the
// longitude with determinant 1, shifted by multiples of the longitude to
// minimize its L1 weight (ties go to the smaller shift |k|, then to k).
func Find(c *dual.Cellulation) (*Framing, error) {
	link := c.Link()
	if link.Genus() != 1 {
		return nil, fmt.Errorf("%w: link has genus %d, want a torus", ErrPrecondition, link.Genus())
	}
	hom, err := c.HomologyBasis()
	if err != nil {
		return nil, err
	}
	if len(hom) != 2 {
		return nil, fmt.Errorf("%w: %d homology generators", ErrInvariant, len(hom))
	}
	a, b := hom[0].Weights(), hom[1].Weights()

	phi := faceMap(c)
	b2, err := c.B2()
	if err != nil {
		return nil, err
	}
	span := make([][]int64, b2.Cols())
	for p := range span {
		span[p] = phi(b2.Column(p))
	}
	res, err := matrix.Residuals(span, [][]int64{phi(a), phi(b)})
	if err != nil {
		return nil, err
	}

	p, q, err := longitudeCoefficients(res[0], res[1])
	if err != nil {
		return nil, err
	}
	lw := matrix.Combine(p, a, q, b)
	g, x, y := matrix.ExtGCD(q, -p)
	if g != 1 {
		return nil, fmt.Errorf("%w: longitude coefficients (%d,%d) are not coprime", ErrInvariant, p, q)
	}
	mw := shortest(matrix.Combine(x, a, y, b), lw)

	meridian, err := dual.NewOneCycle(c, mw)
	if err != nil {
		return nil, err
	}
	longitude, err := dual.NewOneCycle(c, lw)
	if err != nil {
		return nil, err
	}

	return NewFraming(c, meridian, longitude)
}

// faceMap returns the map from dual chains to face-class chains of the
// triangulation. Dual edge d crosses the face containing its positive side;
// the sign is +1 when that side is the face's representative.
func faceMap(c *dual.Cellulation) func([]int64) []int64 {
	link := c.Link()
	tri := link.Triangulation()
	face := make([]int, len(link.Edges))
	sign := make([]int64, len(link.Edges))
	for d, e := range link.Edges {
		side := link.SideFace(e.Pos.Triangle, e.Pos.Side)
		f := tri.Face(side.Tet, side.Face)
		face[d] = f
		sign[d] = -1
		if tri.FaceSides(f)[0] == side {
			sign[d] = 1
		}
	}

	return func(w []int64) []int64 {
		out := make([]int64, tri.NumFaces())
		for d, x := range w {
			if x != 0 {
				out[face[d]] += sign[d] * x
			}
		}
		return out
	}
}

// longitudeCoefficients returns coprime (p, q) with p·ra + q·rb = 0, where
// ra and rb are the residuals of the two homology generators.
func longitudeCoefficients(ra, rb []*big.Rat) (p, q int64, err error) {
	switch {
	case matrix.IsZeroRat(ra):
		return 1, 0, nil
	case matrix.IsZeroRat(rb):
		return 0, 1, nil
	}
	lam, ok := matrix.ParallelRatio(ra, rb)
	if !ok {
		return 0, 0, fmt.Errorf("%w: both generators survive in H1(M;Q)", ErrInvariant)
	}
	num, den := lam.Num(), lam.Denom()
	if !num.IsInt64() || !den.IsInt64() {
		return 0, 0, fmt.Errorf("%w: longitude ratio %s", matrix.ErrOverflow, lam.String())
	}
	p, q = -num.Int64(), den.Int64()
	g := matrix.GCD(p, q)

	return p / g, q / g, nil
}

// shortest returns m + k·l for the integer k minimizing (‖m + k·l‖₁, |k|, k).
// The L1 weight is convex in k with breakpoints at −m_i/l_i, so the minimum
// is attained at 0 or next to a breakpoint.
func shortest(m, l []int64) []int64 {
	cands := []int64{0}
	for i, li := range l {
		if li != 0 {
			k := matrix.FloorDiv(-m[i], li)
			cands = append(cands, k, k+1)
		}
	}
	weight := func(k int64) int64 {
		var s int64
		for i := range m {
			v := m[i] + k*l[i]
			if v < 0 {
				v = -v
			}
			s += v
		}
		return s
	}
	abs := func(k int64) int64 {
		if k < 0 {
			return -k
		}
		return k
	}

	best, bestW := cands[0], weight(cands[0])
	for _, k := range cands[1:] {
		w := weight(k)
		if w < bestW || (w == bestW && (abs(k) < abs(best) || (abs(k) == abs(best) && k < best))) {
			best, bestW = k, w
		}
	}

	return matrix.Combine(1, m, best, l)
}
