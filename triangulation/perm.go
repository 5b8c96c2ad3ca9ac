package triangulation

// Perm4 is a permutation of the vertex slots {0,1,2,3}: p[i] is the image of i.
type Perm4 [4]int

// Identity is the identity permutation.
var Identity = Perm4{0, 1, 2, 3}

// swap23 relabels a tetrahedron by exchanging slots 2 and 3.
var swap23 = Perm4{0, 1, 3, 2}

// s4 lists all 24 permutations in lexicographic order of their image tuples.
var s4 = func() [24]Perm4 {
	var out [24]Perm4
	n := 0
	for a := 0; a < 4; a++ {
		for b := 0; b < 4; b++ {
			for c := 0; c < 4; c++ {
				d := 6 - a - b - c
				if a == b || a == c || b == c {
					continue
				}
				out[n] = Perm4{a, b, c, d}
				n++
			}
		}
	}

	return out
}()

// S4 returns the i-th permutation of S4 in lexicographic order (0123, 0132,
// 0213, ...). ok is false when i is out of range.
func S4(i int) (p Perm4, ok bool) {
	if i < 0 || i >= len(s4) {
		return Perm4{}, false
	}

	return s4[i], true
}

// Valid reports whether p is a bijection of {0,1,2,3}.
func (p Perm4) Valid() bool {
	var seen [4]bool
	for _, x := range p {
		if x < 0 || x > 3 || seen[x] {
			return false
		}
		seen[x] = true
	}

	return true
}

// Inverse returns p⁻¹.
func (p Perm4) Inverse() Perm4 {
	var q Perm4
	for i, x := range p {
		q[x] = i
	}

	return q
}

// Compose returns p∘q, the permutation i ↦ p[q[i]].
func (p Perm4) Compose(q Perm4) Perm4 {
	var r Perm4
	for i := range r {
		r[i] = p[q[i]]
	}

	return r
}

// Sign returns +1 for even permutations and -1 for odd ones.
func (p Perm4) Sign() int {
	s := 1
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			if p[i] > p[j] {
				s = -s
			}
		}
	}

	return s
}
