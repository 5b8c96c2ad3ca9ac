package dual

import (
	"fmt"

	"github.com/katalvlaran/foliar/matrix"
)

// Homology summarizes H₁ of the dual cellulation.
type Homology struct {
	Betti   int
	Torsion []int64
}

// Homology computes H₁ by Smith normal form: Betti = E − rank B1 − rank B2,
// torsion = invariant factors of B2 greater than 1.
func (c *Cellulation) Homology() (Homology, error) {
	b1, err := c.B1()
	if err != nil {
		return Homology{}, err
	}
	b2, err := c.B2()
	if err != nil {
		return Homology{}, err
	}
	r1, err := matrix.Rank(b1)
	if err != nil {
		return Homology{}, err
	}
	facs, err := matrix.InvariantFactors(b2)
	if err != nil {
		return Homology{}, err
	}
	h := Homology{Betti: len(c.edges) - r1 - len(facs), Torsion: []int64{}}
	for _, f := range facs {
		if f > 1 {
			h.Torsion = append(h.Torsion, f)
		}
	}

	return h, nil
}

// Check verifies B1·B2 = 0, χ(dual) = χ(link) and that H₁ of the dual is
// free of rank twice the genus of the link.
func (c *Cellulation) Check() error {
	b1, err := c.B1()
	if err != nil {
		return err
	}
	b2, err := c.B2()
	if err != nil {
		return err
	}
	prod, err := matrix.Mul(b1, b2)
	if err != nil {
		return err
	}
	if !prod.IsZero() {
		return fmt.Errorf("%w: B1·B2 != 0", ErrInvariant)
	}
	if c.Euler() != c.link.EulerCharacteristic() {
		return fmt.Errorf("%w: χ(dual) = %d, χ(link) = %d", ErrInvariant, c.Euler(), c.link.EulerCharacteristic())
	}
	h, err := c.Homology()
	if err != nil {
		return err
	}
	if h.Betti != 2*c.link.Genus() || len(h.Torsion) > 0 {
		return fmt.Errorf("%w: H1 has rank %d and torsion %v on a genus %d surface",
			ErrInvariant, h.Betti, h.Torsion, c.link.Genus())
	}

	return nil
}
