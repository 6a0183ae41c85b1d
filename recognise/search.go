package recognise

import (
	"github.com/gmanifold/satrec/satblock"
	"github.com/gmanifold/satrec/satregion"
	"github.com/gmanifold/satrec/tri"
)

// candidateAnnuli enumerates every pair of (tetrahedron, face) in tr as a
// candidate saturated-annulus entry point.
//
// spec.md §6 lists "subcomplex isomorphism: find_all_subcomplexes" as a
// service the core *consumes* from the surrounding triangulation
// library, not one it implements itself. tri.FindAllSubcomplexes
// provides such a search, but the recognisers do not call it; this
// function stands in for that service instead: rather than searching for
// embeddings of each pre-built starter triangulation, it exhaustively
// tries every possible annulus of the host directly against
// satblock.TryIdentify, which is equivalent for the one- and
// few-tetrahedron block shapes this module recognises (every starter
// shape is itself discoverable by growing outward from a single
// entry annulus). Quadratic in the tetrahedron count, which spec §9
// notes is always small in practice.
func candidateAnnuli(tr *tri.Triangulation) []satblock.SatAnnulus {
	n := tr.NTetrahedra()
	type tf struct {
		idx, face int
	}
	all := make([]tf, 0, n*4)
	for i := 0; i < n; i++ {
		for f := 0; f < 4; f++ {
			all = append(all, tf{i, f})
		}
	}

	out := make([]satblock.SatAnnulus, 0, len(all)*len(all)/2)
	for a := 0; a < len(all); a++ {
		for b := a; b < len(all); b++ {
			if all[a] == all[b] {
				continue
			}
			ta, err := tr.Tetrahedron(all[a].idx)
			if err != nil {
				continue
			}
			tb, err := tr.Tetrahedron(all[b].idx)
			if err != nil {
				continue
			}
			out = append(out, satblock.New(ta, satblock.RolesForFace(all[a].face), tb, satblock.RolesForFace(all[b].face)))
		}
	}
	return out
}

// diagonalOrientations returns the three non-identity reflections of an
// exposed annulus (spec §4.5's "three possible diagonal orientations"
// tried when attaching a fresh block to an open boundary).
func diagonalOrientations(a satblock.SatAnnulus) []satblock.SatAnnulus {
	return []satblock.SatAnnulus{
		a.ReflectVertical(),
		a.ReflectHorizontal(),
		a.ReflectVertical().ReflectHorizontal(),
	}
}

// boundaryAnnuli returns every annulus across r's members that has no
// recorded adjacency, i.e. the region's genuine open boundary tori.
func boundaryAnnuli(r *satregion.SatRegion) []satblock.SatAnnulus {
	var out []satblock.SatAnnulus
	for _, member := range r.Members {
		for i, ann := range member.Block.Annuli {
			if i >= len(member.Block.Adj) || member.Block.Adj[i] == nil {
				out = append(out, ann)
			}
		}
	}
	return out
}

// preconditionsOK reports whether tr is eligible for any recogniser in
// this package: closed, valid and connected (spec §8 scenario (f): a
// disconnected triangulation must make every recogniser return false
// without attempting expansion).
func preconditionsOK(tr *tri.Triangulation) bool {
	return tr.IsValid() && tr.IsClosed() && tr.IsConnected()
}
