package orient

import (
	"github.com/katalvlaran/foliar/triangulation"
)

// Clauses returns one clause per (tetrahedron, face). The face's corners are
// read in VerticesOfFace order; each literal is sign(t,a,b)·(edge(t,a,b)+1),
// so the clause is violated exactly when all three corners run the same way
// around the face.
func Clauses(tri *triangulation.Triangulation) [][]int {
	out := make([][]int, 0, 4*tri.Size())
	for t := 0; t < tri.Size(); t++ {
		for f := 0; f < 4; f++ {
			vs := triangulation.VerticesOfFace[f]
			clause := make([]int, 3)
			for i := 0; i < 3; i++ {
				e, s := tri.Edge(t, vs[i], vs[(i+1)%3])
				clause[i] = s * (e + 1)
			}
			out = append(out, clause)
		}
	}

	return out
}

// normalize drops repeated literals. ok is false when the clause contains a
// literal and its negation and therefore holds trivially.
func normalize(clause []int) (out []int, ok bool) {
	seen := make(map[int]bool, len(clause))
	for _, l := range clause {
		if seen[-l] {
			return nil, false
		}
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}

	return out, true
}

// CycleFree reports whether signs (±1 per edge class) leaves no face of any
// tetrahedron a directed 3-cycle. A vector of the wrong length or with an
// entry other than ±1 is not cycle-free.
func CycleFree(tri *triangulation.Triangulation, signs []int) bool {
	if tri == nil || len(signs) != tri.NumEdges() {
		return false
	}
	for _, s := range signs {
		if s != 1 && s != -1 {
			return false
		}
	}
	for t := 0; t < tri.Size(); t++ {
		for f := 0; f < 4; f++ {
			vs := triangulation.VerticesOfFace[f]
			forward := 0
			for i := 0; i < 3; i++ {
				e, s := tri.Edge(t, vs[i], vs[(i+1)%3])
				if s*signs[e] > 0 {
					forward++
				}
			}
			if forward == 0 || forward == 3 {
				return false
			}
		}
	}

	return true
}
