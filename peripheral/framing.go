package peripheral

import (
	"fmt"

	"github.com/katalvlaran/foliar/dual"
	"github.com/katalvlaran/foliar/matrix"
)

// Framing is a meridian/longitude basis of H₁ of a torus link together with
// the dual cocycles m*, l* that pair with it to the identity. Immutable.
type Framing struct {
	cell      *dual.Cellulation
	meridian  dual.OneCycle
	longitude dual.OneCycle
	mstar     dual.OneCocycle
	lstar     dual.OneCocycle
}

// NewFraming builds the dual cocycles for the basis (meridian, longitude).
//
// With α, β the integral cohomology basis of the cellulation, it forms
// A = [[α(m), β(m)], [α(l), β(l)]], requires |det A| = 1, and sets
// (m*, l*) = (A⁻¹)ᵀ[α; β]. The pairing matrix is then checked to be exactly
// the identity.
func NewFraming(c *dual.Cellulation, meridian, longitude dual.OneCycle) (*Framing, error) {
	if meridian.Cellulation() != c || longitude.Cellulation() != c {
		return nil, fmt.Errorf("%w: curves do not live on this cellulation", ErrPrecondition)
	}
	cob, err := c.CohomologyBasis()
	if err != nil {
		return nil, err
	}
	if len(cob) != 2 {
		return nil, fmt.Errorf("%w: link has %d cohomology generators, want 2", ErrPrecondition, len(cob))
	}
	alpha, beta := cob[0], cob[1]

	var a matrix.Mat2
	for i, z := range []dual.OneCycle{meridian, longitude} {
		if a[i][0], err = alpha.Pair(z); err != nil {
			return nil, err
		}
		if a[i][1], err = beta.Pair(z); err != nil {
			return nil, err
		}
	}
	inv, err := a.Inverse()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvariant, err)
	}

	aw, bw := alpha.Weights(), beta.Weights()
	mstar, err := dual.NewOneCocycle(c, matrix.Combine(inv[0][0], aw, inv[1][0], bw))
	if err != nil {
		return nil, err
	}
	lstar, err := dual.NewOneCocycle(c, matrix.Combine(inv[0][1], aw, inv[1][1], bw))
	if err != nil {
		return nil, err
	}

	f := &Framing{cell: c, meridian: meridian, longitude: longitude, mstar: mstar, lstar: lstar}
	for i, z := range []dual.OneCycle{meridian, longitude} {
		for j, co := range []dual.OneCocycle{mstar, lstar} {
			v, err := co.Pair(z)
			if err != nil {
				return nil, err
			}
			want := int64(0)
			if i == j {
				want = 1
			}
			if v != want {
				return nil, fmt.Errorf("%w: pairing (%d,%d) is %d", ErrInvariant, i, j, v)
			}
		}
	}

	return f, nil
}

// Cellulation returns the cellulation the framing lives on.
func (f *Framing) Cellulation() *dual.Cellulation { return f.cell }

// Meridian returns the meridian cycle.
func (f *Framing) Meridian() dual.OneCycle { return f.meridian }

// Longitude returns the longitude cycle.
func (f *Framing) Longitude() dual.OneCycle { return f.longitude }

// MeridianDual returns m*, which is 1 on the meridian and 0 on the longitude.
func (f *Framing) MeridianDual() dual.OneCocycle { return f.mstar }

// LongitudeDual returns l*, which is 0 on the meridian and 1 on the longitude.
func (f *Framing) LongitudeDual() dual.OneCocycle { return f.lstar }

// Slope returns the normalized class (m*(s), l*(s)) of the cycle s.
func (f *Framing) Slope(s dual.OneCycle) (Slope, error) {
	m, err := f.mstar.Pair(s)
	if err != nil {
		return Slope{}, err
	}
	l, err := f.lstar.Pair(s)
	if err != nil {
		return Slope{}, err
	}

	return NormalizeSlope(m, l), nil
}
