// Package isosig decodes Regina isomorphism signatures of 3-manifold
// triangulations into triangulation.Tet gluing records.
//
// Encoding, as read here:
//
//	chars        a–z, A–Z, 0–9, '+', '-' carry the values 0..63
//	header       n = first value; 63 escapes to a width w and n in w chars
//	face actions 2-bit codes, three per char: 0 boundary, 1 new tet, 2 join
//	join targets w chars each, little-endian base 64
//	join gluings one char each, an index into S4 in lexicographic order
package isosig

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/foliar/triangulation"
)

var (
	// ErrSyntax is returned for characters outside the signature alphabet or
	// a signature that ends early or has trailing characters.
	ErrSyntax = errors.New("isosig: malformed signature")

	// ErrInconsistent is returned when the decoded gluings contradict
	// themselves.
	ErrInconsistent = errors.New("isosig: inconsistent gluing data")
)

func value(c byte) (int, error) {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c - 'a'), nil
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 26, nil
	case c >= '0' && c <= '9':
		return int(c-'0') + 52, nil
	case c == '+':
		return 62, nil
	case c == '-':
		return 63, nil
	}

	return 0, fmt.Errorf("%w: bad character %q", ErrSyntax, c)
}

type reader struct {
	s   string
	pos int
}

func (r *reader) next() (int, error) {
	if r.pos >= len(r.s) {
		return 0, fmt.Errorf("%w: unexpected end at %d", ErrSyntax, r.pos)
	}
	v, err := value(r.s[r.pos])
	r.pos++

	return v, err
}

func (r *reader) wide(width int) (int, error) {
	out := 0
	for i := 0; i < width; i++ {
		v, err := r.next()
		if err != nil {
			return 0, err
		}
		out |= v << (6 * i)
	}

	return out, nil
}

// DecodeGluings returns the raw gluing records of a signature. Unglued faces
// carry triangulation.NoNeighbor.
func DecodeGluings(sig string) ([]triangulation.Tet, error) {
	r := &reader{s: sig}
	n, err := r.next()
	if err != nil {
		return nil, err
	}
	width := 1
	if n == 63 {
		if width, err = r.next(); err != nil {
			return nil, err
		}
		if n, err = r.wide(width); err != nil {
			return nil, err
		}
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: empty triangulation", ErrSyntax)
	}

	var actions []int
	faces, joins := 0, 0
	for faces < 4*n {
		v, err := r.next()
		if err != nil {
			return nil, err
		}
		for k := 0; k < 3; k++ {
			a := (v >> (2 * k)) & 3
			if faces == 4*n {
				if a != 0 {
					return nil, fmt.Errorf("%w: trailing face action", ErrSyntax)
				}
				continue
			}
			actions = append(actions, a)
			switch a {
			case 0:
				faces++
			case 1:
				faces += 2
			case 2:
				faces += 2
				joins++
			default:
				return nil, fmt.Errorf("%w: face action 3", ErrSyntax)
			}
		}
	}
	dest := make([]int, joins)
	for i := range dest {
		if dest[i], err = r.wide(width); err != nil {
			return nil, err
		}
	}
	perms := make([]triangulation.Perm4, joins)
	for i := range perms {
		v, err := r.next()
		if err != nil {
			return nil, err
		}
		p, ok := triangulation.S4(v)
		if !ok {
			return nil, fmt.Errorf("%w: gluing index %d", ErrSyntax, v)
		}
		perms[i] = p
	}
	if r.pos != len(sig) {
		return nil, fmt.Errorf("%w: %d trailing characters", ErrSyntax, len(sig)-r.pos)
	}

	tets := make([]triangulation.Tet, n)
	glued := make([][4]bool, n)
	for t := range tets {
		for f := 0; f < 4; f++ {
			tets[t].Neighbor[f] = triangulation.NoNeighbor
		}
	}
	ap, jp, nextTet := 0, 0, 1
	for t := 0; t < n; t++ {
		for f := 0; f < 4; f++ {
			if glued[t][f] {
				continue
			}
			if ap >= len(actions) {
				return nil, fmt.Errorf("%w: ran out of face actions", ErrInconsistent)
			}
			a := actions[ap]
			ap++
			switch a {
			case 0:
				glued[t][f] = true
			case 1:
				if nextTet >= n {
					return nil, fmt.Errorf("%w: too many new tetrahedra", ErrInconsistent)
				}
				u := nextTet
				nextTet++
				tets[t].Neighbor[f], tets[t].Gluing[f] = u, triangulation.Identity
				tets[u].Neighbor[f], tets[u].Gluing[f] = t, triangulation.Identity
				glued[t][f], glued[u][f] = true, true
			case 2:
				u, p := dest[jp], perms[jp]
				jp++
				if u < 0 || u >= n || glued[u][p[f]] || (u == t && p[f] == f) {
					return nil, fmt.Errorf("%w: join of tet %d face %d", ErrInconsistent, t, f)
				}
				tets[t].Neighbor[f], tets[t].Gluing[f] = u, p
				tets[u].Neighbor[p[f]], tets[u].Gluing[p[f]] = t, p.Inverse()
				glued[t][f], glued[u][p[f]] = true, true
			}
		}
	}

	return tets, nil
}

// Decode parses sig and builds an oriented triangulation from it.
func Decode(sig string) (*triangulation.Triangulation, error) {
	tets, err := DecodeGluings(sig)
	if err != nil {
		return nil, err
	}
	tr, err := triangulation.New(tets)
	if err != nil {
		return nil, fmt.Errorf("isosig %q: %w", sig, err)
	}

	return tr, nil
}
