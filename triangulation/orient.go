package triangulation

import "fmt"

// orient chooses, by breadth-first search from tetrahedron 0, which
// tetrahedra to relabel by swap23 so that every gluing becomes odd. It
// returns the relabeled gluings and the relabel flags.
func orient(tets []Tet) ([]Tet, []bool, error) {
	n := len(tets)
	flip := make([]bool, n)
	seen := make([]bool, n)
	seen[0] = true
	relabel := func(t int) Perm4 {
		if flip[t] {
			return swap23
		}
		return Identity
	}

	queue := []int{0}
	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]
		pt := relabel(t)
		for f := 0; f < 4; f++ {
			u := tets[t].Neighbor[f]
			p := tets[t].Gluing[f]
			if !seen[u] {
				seen[u] = true
				flip[u] = p.Compose(pt).Sign() == 1
				queue = append(queue, u)
				continue
			}
			if relabel(u).Compose(p.Compose(pt)).Sign() != -1 {
				return nil, nil, fmt.Errorf("%w: gluing of tet %d face %d", ErrNonOrientable, t, f)
			}
		}
	}
	for t, ok := range seen {
		if !ok {
			return nil, nil, fmt.Errorf("%w: tet %d is not connected to tet 0", ErrInvalidGluing, t)
		}
	}

	out := make([]Tet, n)
	for t := 0; t < n; t++ {
		pt := relabel(t)
		for f := 0; f < 4; f++ {
			of := pt[f]
			u := tets[t].Neighbor[of]
			out[t].Neighbor[f] = u
			// relabel maps are involutions, so the same map converts back
			out[t].Gluing[f] = relabel(u).Compose(tets[t].Gluing[of].Compose(pt))
		}
	}

	return out, flip, nil
}
