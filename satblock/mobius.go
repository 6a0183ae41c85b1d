package satblock

import "github.com/gmanifold/satrec/tri"

// TryIdentifyMobius tests whether annulus bounds a one-tetrahedron
// Mobius-band block: the two faces opposite the annulus's faces glue
// directly to each other (as in the minimal layered solid torus). Any
// self-gluing that sends one hinge face onto the other is accepted,
// whatever it does to the annulus's vertices; under TryIdentify's
// dispatch order only the gluings TryIdentifyLST turns away reach here.
//
// regina's nsatblocktypes.h stubs NSatMobius out entirely (it is left
// as a forward-declared, body-less class in the retrieved source), so
// there is no upstream isBlockMobius to port; this identifier is an
// original extension built in the same "walk the two hinge faces"
// style as TryIdentifyLST, distinguishing the three possible
// diagonal positions by which annulus vertex (if any) the self-gluing
// permutation fixes.
func TryIdentifyMobius(annulus SatAnnulus, avoid *TetSet) (*Block, bool) {
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

	g0 := t.Adjacent(hinge[0])
	if g0 == nil || g0.Tet != t {
		return nil, false
	}
	if g0.Perm.At(hinge[0]) != hinge[1] {
		return nil, false
	}

	position := 2
	switch {
	case g0.Perm.At(faceA) == faceA:
		position = 0
	case g0.Perm.At(faceB) == faceB:
		position = 1
	}

	claimed := []*tri.Tetrahedron{t}
	avoid.AddAll(claimed)
	return &Block{
		Kind:   KindMobius,
		Annuli: []SatAnnulus{annulus},
		Adj:    make([]*Adjacency, 1),
		Claim:  claimed,
		Mobius: &MobiusParams{Position: position},
	}, true
}
