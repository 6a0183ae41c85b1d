package satblock

import "github.com/gmanifold/satrec/tri"

// TryIdentifyLayering tests whether annulus is one side of a single
// tetrahedron layered across it: the two hinge faces opposite the
// annulus are not glued to each other (that degenerate case belongs to
// Mobius/LST instead) and so expose a second, fresh boundary annulus on
// the far side of the same tetrahedron.
//
// regina's nsatblocktypes.h stubs NSatLayering out entirely (see
// TryIdentifyMobius's doc comment), so there is no upstream
// isBlockLayering to port; this is an original extension, and the
// layering package's boundary walker is what actually threads a chain
// of these blocks together against the recognition targets.
func TryIdentifyLayering(annulus SatAnnulus, avoid *TetSet) (*Block, bool) {
	if annulus.Tet[0] != annulus.Tet[1] {
		return nil, false
	}
	t := annulus.Tet[0]
	if avoid.Contains(t) {
		return nil, false
	}
	faceA, faceB := annulus.Roles[0].At(3), annulus.Roles[1].At(3)
	if faceA == faceB {
		return nil, false
	}
	var hinge [2]int
	k := 0
	for f := 0; f < 4; f++ {
		if f != faceA && f != faceB {
			hinge[k] = f
			k++
		}
	}
	if g := t.Adjacent(hinge[0]); g != nil && g.Tet == t {
		return nil, false
	}

	outAnnulus := New(t, RolesForFace(hinge[0]), t, RolesForFace(hinge[1]))
	claimed := []*tri.Tetrahedron{t}
	avoid.AddAll(claimed)

	return &Block{
		Kind:     KindLayering,
		Annuli:   []SatAnnulus{annulus, outAnnulus},
		Adj:      make([]*Adjacency, 2),
		Claim:    claimed,
		Layering: &LayeringParams{OverHorizontal: hinge[0] < hinge[1]},
	}, true
}
