package triangulation

import "fmt"

// buildEdges numbers edge classes by scanning tetrahedra and their six edges
// in order. The first corner of each class fixes the baseline direction
// (a→b with a<b is +1); signs propagate across shared faces.
func (tr *Triangulation) buildEdges() error {
	n := len(tr.tets)
	tr.edgeOf = make([][4][4]int, n)
	tr.signOf = make([][4][4]int, n)
	for t := range tr.edgeOf {
		for a := 0; a < 4; a++ {
			for b := 0; b < 4; b++ {
				tr.edgeOf[t][a][b] = -1
			}
		}
	}

	type key struct{ t, x, y int }
	for t := 0; t < n; t++ {
		for _, pr := range pairs {
			a, b := pr[0], pr[1]
			if tr.edgeOf[t][a][b] >= 0 {
				continue
			}
			idx := len(tr.edgeCorners)
			var corners []Corner
			tr.assignEdge(t, a, b, idx, 1)
			stack := []key{{t, a, b}}
			for len(stack) > 0 {
				k := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				corners = append(corners, Corner{Tet: k.t, A: min(k.x, k.y), B: max(k.x, k.y)})
				sg := tr.signOf[k.t][k.x][k.y]
				for f := 0; f < 4; f++ {
					if f == k.x || f == k.y {
						continue
					}
					u := tr.tets[k.t].Neighbor[f]
					p := tr.tets[k.t].Gluing[f]
					nx, ny := p[k.x], p[k.y]
					if tr.edgeOf[u][nx][ny] >= 0 {
						if tr.signOf[u][nx][ny] != sg {
							return fmt.Errorf("%w: class %d at tet %d", ErrReversedEdge, idx, u)
						}
						continue
					}
					tr.assignEdge(u, nx, ny, idx, sg)
					stack = append(stack, key{u, nx, ny})
				}
			}
			tr.edgeCorners = append(tr.edgeCorners, corners)
		}
	}

	return nil
}

func (tr *Triangulation) assignEdge(t, x, y, idx, sign int) {
	tr.edgeOf[t][x][y] = idx
	tr.edgeOf[t][y][x] = idx
	tr.signOf[t][x][y] = sign
	tr.signOf[t][y][x] = -sign
}

// buildFaces numbers face classes by scanning (tet, face) pairs. The side
// encountered first is the representative.
func (tr *Triangulation) buildFaces() {
	n := len(tr.tets)
	tr.faceOf = make([][4]int, n)
	for t := range tr.faceOf {
		tr.faceOf[t] = [4]int{-1, -1, -1, -1}
	}
	for t := 0; t < n; t++ {
		for f := 0; f < 4; f++ {
			if tr.faceOf[t][f] >= 0 {
				continue
			}
			u := tr.tets[t].Neighbor[f]
			g := tr.tets[t].Gluing[f][f]
			idx := len(tr.faceSides)
			tr.faceOf[t][f] = idx
			tr.faceOf[u][g] = idx
			tr.faceSides = append(tr.faceSides, [2]Side{{Tet: t, Face: f}, {Tet: u, Face: g}})
		}
	}
}

// buildVertices numbers vertex classes by flooding across faces.
func (tr *Triangulation) buildVertices() {
	n := len(tr.tets)
	tr.vertexOf = make([][4]int, n)
	for t := range tr.vertexOf {
		tr.vertexOf[t] = [4]int{-1, -1, -1, -1}
	}
	type slot struct{ t, v int }
	for t := 0; t < n; t++ {
		for v := 0; v < 4; v++ {
			if tr.vertexOf[t][v] >= 0 {
				continue
			}
			idx := tr.numVertices
			tr.numVertices++
			tr.vertexOf[t][v] = idx
			stack := []slot{{t, v}}
			for len(stack) > 0 {
				s := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				for f := 0; f < 4; f++ {
					if f == s.v {
						continue
					}
					u := tr.tets[s.t].Neighbor[f]
					w := tr.tets[s.t].Gluing[f][s.v]
					if tr.vertexOf[u][w] < 0 {
						tr.vertexOf[u][w] = idx
						stack = append(stack, slot{u, w})
					}
				}
			}
		}
	}
}
