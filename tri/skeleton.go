package tri

// edgePairs enumerates the six vertex pairs of a tetrahedron in the
// fixed order used to index edges 0..5, mirroring Regina's
// edgeNumber[][] convention.
var edgePairs = [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}

// edgeNumber[v1][v2] is the index into edgePairs of the edge {v1,v2}.
var edgeNumber = func() [4][4]int {
	var en [4][4]int
	for idx, p := range edgePairs {
		en[p[0]][p[1]] = idx
		en[p[1]][p[0]] = idx
	}
	return en
}()

// EdgeNumber returns the canonical 0..5 edge index for the vertex pair
// (v1, v2) of any tetrahedron.
func EdgeNumber(v1, v2 int) int { return edgeNumber[v1][v2] }

type edgeKey struct {
	tet  int
	edge int
}

// unionFind is a minimal disjoint-set structure, used here (rather than
// pulling in a general graph library) because the domain is a fixed,
// dense index space of at most 6*NTetrahedra elements and the only
// operation needed is union-by-index plus find — a textbook case for a
// hand-rolled union-find rather than an external dependency.
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(a, b int) {
	ra, rb := uf.find(a), uf.find(b)
	if ra != rb {
		uf.parent[ra] = rb
	}
}

// EdgeClasses partitions the 6*NTetrahedra tetrahedron-edge incidences
// into equivalence classes under face gluings, returning a slice
// indexed the same way (tet*6+edge) giving each incidence's class
// representative id. Two tetrahedron edges identified by a chain of
// gluings receive the same id.
func (tr *Triangulation) EdgeClasses() []int {
	n := len(tr.tets)
	uf := newUnionFind(n * 6)
	keyIdx := func(k edgeKey) int { return k.tet*6 + k.edge }

	for _, t := range tr.tets {
		for f := 0; f < 4; f++ {
			g := t.adj[f]
			if g == nil {
				continue
			}
			faceVerts := [3]int{}
			k := 0
			for v := 0; v < 4; v++ {
				if v != f {
					faceVerts[k] = v
					k++
				}
			}
			for i := 0; i < 3; i++ {
				for j := i + 1; j < 3; j++ {
					v1, v2 := faceVerts[i], faceVerts[j]
					e1 := EdgeNumber(v1, v2)
					e2 := EdgeNumber(g.Perm.At(v1), g.Perm.At(v2))
					uf.union(keyIdx(edgeKey{t.index, e1}), keyIdx(edgeKey{g.Tet.index, e2}))
				}
			}
		}
	}

	out := make([]int, n*6)
	for i := range out {
		out[i] = uf.find(i)
	}
	return out
}

// NEdges returns the number of distinct edge classes.
func (tr *Triangulation) NEdges() int {
	classes := tr.EdgeClasses()
	seen := map[int]bool{}
	for _, c := range classes {
		seen[c] = true
	}
	return len(seen)
}
