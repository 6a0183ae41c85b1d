package satblock

import "github.com/gmanifold/satrec/tri"

// maxReflectorStripLength bounds the chain walk TryIdentifyReflectorStrip
// performs, matching the starter-set's enumeration of reflector strips
// of length 2 through 4 (spec §4.5's starter set).
const maxReflectorStripLength = 4

// TryIdentifyReflectorStrip recognises a cycle of two to four tetrahedra
// presenting one boundary annulus each, joined pairwise the same way
// TryIdentifyTriPrism/TryIdentifyCube join theirs and closing back onto
// the tetrahedron the walk started from. The `Twisted` flag records
// whether the closing gluing reproduces the starting annulus's role
// permutation exactly (untwisted) or not (twisted).
//
// A length-one reflector strip — a single tetrahedron whose two
// non-annulus faces glue directly to each other — is not a separate
// recognisable shape under this model: that exact configuration is
// already exhaustively classified by TryIdentifyLST's minimal-solid-torus
// base case or TryIdentifyMobius's half-twist case (see TryIdentifyLST's
// dispatch-disambiguation guard), so a length-one variant here would
// never be reached ahead of them and is omitted rather than left as dead
// code.
//
// regina's nsatblocktypes.h stubs NSatReflector out entirely (see
// TryIdentifyMobius's doc comment), so there is no upstream
// isBlockReflector to port; this is an original extension.
func TryIdentifyReflectorStrip(annulus SatAnnulus, avoid *TetSet) (*Block, bool) {
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

	for length := 2; length <= maxReflectorStripLength; length++ {
		adjGluing := cur.Adjacent(curRoles.At(1))
		if adjGluing == nil {
			return nil, false
		}
		next := adjGluing.Tet
		nextRoles := adjGluing.Perm.Compose(curRoles).Compose(pairSwap)

		if next == annulus.Tet[0] {
			twisted := nextRoles != annulus.Roles[0]
			annuli = append(annuli, New(cur, curRoles.Compose(pairSwap), next, nextRoles))
			avoid.AddAll(claimed)
			return &Block{
				Kind:           KindReflectorStrip,
				Annuli:         annuli,
				Adj:            make([]*Adjacency, len(annuli)),
				Claim:          claimed,
				ReflectorStrip: &ReflectorStripParams{Length: length, Twisted: twisted},
			}, true
		}
		if seen.Contains(next) || avoid.Contains(next) {
			return nil, false
		}
		annuli = append(annuli, New(cur, curRoles.Compose(pairSwap), next, nextRoles))
		seen.Add(next)
		claimed = append(claimed, next)
		cur, curRoles = next, nextRoles
	}
	return nil, false
}
