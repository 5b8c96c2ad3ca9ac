package triangulation

import "github.com/katalvlaran/foliar/matrix"

// BoundaryMatrix1 returns ∂1 as a (vertex classes × edge classes) matrix:
// column e is head − tail of the baseline direction of e.
func (tr *Triangulation) BoundaryMatrix1() (*matrix.Dense, error) {
	tr.buildChains()
	if tr.chainErr != nil {
		return nil, tr.chainErr
	}

	return tr.d1.Clone(), nil
}

// BoundaryMatrix2 returns ∂2 as an (edge classes × face classes) matrix. The
// boundary of face class f is read anticlockwise on its representative side.
func (tr *Triangulation) BoundaryMatrix2() (*matrix.Dense, error) {
	tr.buildChains()
	if tr.chainErr != nil {
		return nil, tr.chainErr
	}

	return tr.d2.Clone(), nil
}

func (tr *Triangulation) buildChains() {
	tr.chainOnce.Do(func() {
		d1, err := matrix.NewDense(tr.numVertices, tr.NumEdges())
		if err != nil {
			tr.chainErr = err
			return
		}
		for e, corners := range tr.edgeCorners {
			c := corners[0]
			tail, head := c.A, c.B
			if tr.signOf[c.Tet][c.A][c.B] < 0 {
				tail, head = head, tail
			}
			if err = d1.Inc(tr.vertexOf[c.Tet][head], e, 1); err != nil {
				tr.chainErr = err
				return
			}
			if err = d1.Inc(tr.vertexOf[c.Tet][tail], e, -1); err != nil {
				tr.chainErr = err
				return
			}
		}

		d2, err := matrix.NewDense(tr.NumEdges(), tr.NumFaces())
		if err != nil {
			tr.chainErr = err
			return
		}
		for f, sides := range tr.faceSides {
			rep := sides[0]
			vs := VerticesOfFace[rep.Face]
			for i := 0; i < 3; i++ {
				a, b := vs[i], vs[(i+1)%3]
				e, s := tr.Edge(rep.Tet, a, b)
				if err = d2.Inc(e, f, int64(s)); err != nil {
					tr.chainErr = err
					return
				}
			}
		}
		tr.d1, tr.d2 = d1, d2
	})
}
