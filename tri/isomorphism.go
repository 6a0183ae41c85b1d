package tri

import "github.com/gmanifold/satrec/perm"

// Isomorphism maps every tetrahedron of a "needle" triangulation to a
// tetrahedron of a "haystack" triangulation, together with a vertex
// permutation per tetrahedron, in a way that is consistent with every
// internal gluing of the needle (spec §6: "an Isomorphism maps
// tetrahedron indices and a P4 per tetrahedron").
type Isomorphism struct {
	// TetImage[i] is the haystack tetrahedron index that needle
	// tetrahedron i maps to.
	TetImage []int
	// FacePerm[i] is the vertex permutation applied to needle
	// tetrahedron i's vertices to obtain the haystack tetrahedron's
	// vertices.
	FacePerm []perm.P4
}

// TetrahedronImage returns the haystack tetrahedron that needle
// tetrahedron i maps to, under the given haystack triangulation.
func (iso Isomorphism) TetrahedronImage(haystack *Triangulation, i int) (*Tetrahedron, error) {
	return haystack.Tetrahedron(iso.TetImage[i])
}

// FindAllSubcomplexes searches haystack for every embedding of needle
// as a subcomplex: an injective map from needle's tetrahedra into
// haystack's tetrahedra such that every gluing internal to needle is
// reproduced exactly by the corresponding gluing in haystack (gluings
// of needle that are unglued, i.e. boundary faces of needle, are left
// unconstrained in haystack — they need not be boundary there).
//
// This realises the "Subcomplex isomorphism" external service of spec
// §6. No library in the retrieved pack offers triangulated-subcomplex
// search (closest are generic graph-isomorphism algorithms none of the
// pack ships either), so this is a from-scratch recursive backtracking
// search with visited-by-index bookkeeping.
func FindAllSubcomplexes(haystack, needle *Triangulation) []Isomorphism {
	nn := needle.NTetrahedra()
	nh := haystack.NTetrahedra()
	if nn == 0 || nn > nh {
		return nil
	}

	var results []Isomorphism
	tetImage := make([]int, nn)
	facePerm := make([]perm.P4, nn)
	usedHaystack := make([]bool, nh)
	mapped := make([]bool, nn)

	var tryMap func(needleIdx int) bool
	// search fixes needle tetrahedron 0's image and permutation by brute
	// force over all (haystack tet, permutation) pairs, then propagates
	// the rest via gluing-following BFS so later choices are forced, not
	// searched — this keeps the search polynomial in nh for fixed nn.
	var propagate func(frontier []int) bool

	propagate = func(frontier []int) bool {
		for len(frontier) > 0 {
			ni := frontier[0]
			frontier = frontier[1:]
			nt, _ := needle.Tetrahedron(ni)
			ht, _ := haystack.Tetrahedron(tetImage[ni])
			p := facePerm[ni]
			for f := 0; f < 4; f++ {
				ng := nt.Adjacent(f)
				if ng == nil {
					continue // needle boundary face: unconstrained in haystack
				}
				hf := p.At(f)
				hg := ht.Adjacent(hf)
				if hg == nil {
					return false // needle demands a gluing haystack doesn't have
				}
				nOther := ng.Tet.Index()
				wantPerm := hg.Perm.Compose(p).Compose(ng.Perm.Inverse())
				if mapped[nOther] {
					if tetImage[nOther] != hg.Tet.Index() || facePerm[nOther] != wantPerm {
						return false
					}
					continue
				}
				if usedHaystack[hg.Tet.Index()] {
					return false
				}
				mapped[nOther] = true
				usedHaystack[hg.Tet.Index()] = true
				tetImage[nOther] = hg.Tet.Index()
				facePerm[nOther] = wantPerm
				frontier = append(frontier, nOther)
			}
		}
		return true
	}

	allPerms := allP4()

	tryMap = func(needleIdx int) bool {
		if needleIdx == nn {
			for i := 0; i < nn; i++ {
				if !mapped[i] {
					return false
				}
			}
			results = append(results, Isomorphism{
				TetImage: append([]int(nil), tetImage...),
				FacePerm: append([]perm.P4(nil), facePerm...),
			})
			return false // keep searching for further embeddings
		}
		if mapped[needleIdx] {
			return tryMap(needleIdx + 1)
		}
		for h := 0; h < nh; h++ {
			if usedHaystack[h] {
				continue
			}
			for _, p := range allPerms {
				mapped[needleIdx] = true
				usedHaystack[h] = true
				tetImage[needleIdx] = h
				facePerm[needleIdx] = p

				savedMapped := append([]bool(nil), mapped...)
				savedUsed := append([]bool(nil), usedHaystack...)
				savedImg := append([]int(nil), tetImage...)
				savedPerm := append([]perm.P4(nil), facePerm...)

				ok := propagate([]int{needleIdx})
				if ok {
					tryMap(needleIdx + 1)
				}

				copy(mapped, savedMapped)
				copy(usedHaystack, savedUsed)
				copy(tetImage, savedImg)
				for i := range facePerm {
					facePerm[i] = savedPerm[i]
				}
				mapped[needleIdx] = false
				usedHaystack[h] = false
			}
		}
		return false
	}

	tryMap(0)
	return results
}

func allP4() []perm.P4 {
	idx := [4]int{0, 1, 2, 3}
	var out []perm.P4
	var permute func(k int)
	permute = func(k int) {
		if k == 4 {
			out = append(out, perm.P4(idx))
			return
		}
		for i := k; i < 4; i++ {
			idx[k], idx[i] = idx[i], idx[k]
			permute(k + 1)
			idx[k], idx[i] = idx[i], idx[k]
		}
	}
	permute(0)
	return out
}
