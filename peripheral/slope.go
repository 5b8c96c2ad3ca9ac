// Package peripheral frames the torus link of a one-cusped triangulation: it
// picks a meridian and a longitude among the dual 1-cycles of the link,
// computes the dual cocycles that read off slopes, and converts peripheral
// curves to and from SnapPea-style raw data.
package peripheral

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/foliar/matrix"
)

// Sentinel errors for peripheral framings.
var (
	ErrInvariant    = errors.New("peripheral: invariant violated")
	ErrPrecondition = errors.New("peripheral: precondition violated")
)

// Slope is a primitive class (M, L) in the meridian/longitude basis.
type Slope struct {
	M, L int64
}

// NormalizeSlope divides (m, l) by their gcd and fixes the sign so that
// l > 0, or l = 0 and m >= 0. (0, 0) stays (0, 0).
func NormalizeSlope(m, l int64) Slope {
	g := matrix.GCD(m, l)
	if g == 0 {
		return Slope{}
	}
	m, l = m/g, l/g
	if l < 0 || (l == 0 && m < 0) {
		m, l = -m, -l
	}

	return Slope{M: m, L: l}
}

// IsZero reports whether s is the zero class.
func (s Slope) IsZero() bool { return s.M == 0 && s.L == 0 }

func (s Slope) String() string { return fmt.Sprintf("(%d,%d)", s.M, s.L) }
