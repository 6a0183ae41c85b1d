package satblock

import "github.com/gmanifold/satrec/tri"

// TryIdentifyCube tests whether annulus begins a four-tetrahedron cube
// block: four tetrahedra glued in a cycle, each pair joined the same
// way a triangular-prism pair is joined, presenting four boundary
// annuli in cyclic order.
//
// regina's nsatblocktypes.h stubs NSatCube out entirely alongside
// NSatMobius/NSatReflector/NSatLayering (forward-declared, no body in
// the retrieved source). This identifier generalises
// TryIdentifyTriPrism's pairwise-join pattern from a 3-cycle to a
// 4-cycle, since no upstream isBlockCube exists to port from.
func TryIdentifyCube(annulus SatAnnulus, avoid *TetSet) (*Block, bool) {
	if annulus.Tet[0] == annulus.Tet[1] {
		return nil, false
	}
	if avoid.Contains(annulus.Tet[0]) || avoid.Contains(annulus.Tet[1]) {
		return nil, false
	}

	g0 := annulus.Tet[0].Adjacent(annulus.Roles[0].At(0))
	if g0 == nil || g0.Tet != annulus.Tet[1] {
		return nil, false
	}
	if g0.Perm.Compose(annulus.Roles[0]).Compose(swap12) != annulus.Roles[1] {
		return nil, false
	}

	claimed := []*tri.Tetrahedron{annulus.Tet[0], annulus.Tet[1]}
	seen := NewTetSet()
	seen.Add(annulus.Tet[0])
	seen.Add(annulus.Tet[1])
	annuli := []SatAnnulus{annulus}

	cur, curRoles := annulus.Tet[1], annulus.Roles[1]
	for step := 0; step < 2; step++ {
		adjGluing := cur.Adjacent(curRoles.At(1))
		if adjGluing == nil {
			return nil, false
		}
		next := adjGluing.Tet
		if next == annulus.Tet[0] || seen.Contains(next) || avoid.Contains(next) {
			return nil, false
		}
		// Unlike the one-off fan step that identifies the initial pair
		// (which checks against swap12), each
		// subsequent step around the cycle must expose a forward face
		// distinct from the one it arrived through; pairSwap (rather
		// than swap03) is what keeps At(1) moving instead of folding
		// back onto At(1) of the gluing just taken.
		nextRoles := adjGluing.Perm.Compose(curRoles).Compose(pairSwap)
		annuli = append(annuli, New(cur, curRoles.Compose(pairSwap), next, nextRoles))
		seen.Add(next)
		claimed = append(claimed, next)
		cur, curRoles = next, nextRoles
	}

	closeGluing := cur.Adjacent(curRoles.At(1))
	if closeGluing == nil || closeGluing.Tet != annulus.Tet[0] {
		return nil, false
	}
	closeRoles := closeGluing.Perm.Compose(curRoles).Compose(pairSwap)
	annuli = append(annuli, New(cur, curRoles.Compose(pairSwap), annulus.Tet[0], closeRoles))

	avoid.AddAll(claimed)
	return &Block{
		Kind:   KindCube,
		Annuli: annuli,
		Adj:    make([]*Adjacency, 4),
		Claim:  claimed,
	}, true
}
