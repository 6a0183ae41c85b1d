package satblock

import (
	"github.com/gmanifold/satrec/perm"
	"github.com/gmanifold/satrec/tri"
)

var (
	swap12   = perm.Transposition(1, 2)
	swap03   = perm.Transposition(0, 3)
	permEven = perm.MustNew(1, 3, 0, 2)
	pairSwap = perm.MustNew(1, 0, 3, 2)
)

// TryIdentifyTriPrism tests whether annulus bounds a three-tetrahedron
// triangular-prism block, trying first the major-type pattern and then,
// failing that, the minor-type pattern (which is the major pattern seen
// through a vertical reflection). Grounded on
// nsatblocktypes.cpp::NSatTriPrism::isBlockTriPrism.
func TryIdentifyTriPrism(annulus SatAnnulus, avoid *TetSet) (*Block, bool) {
	if b, ok := tryIdentifyTriPrismMajor(annulus, avoid); ok {
		return b, true
	}
	alt := annulus.ReflectVertical()
	if b, ok := tryIdentifyTriPrismMajor(alt, avoid); ok {
		b.TriPrism.Major = false
		for i := range b.Annuli {
			b.Annuli[i] = b.Annuli[i].ReflectVertical()
		}
		return b, true
	}
	return nil, false
}

func tryIdentifyTriPrismMajor(annulus SatAnnulus, avoid *TetSet) (*Block, bool) {
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

	adjGluing := annulus.Tet[0].Adjacent(annulus.Roles[0].At(1))
	if adjGluing == nil {
		return nil, false
	}
	adj := adjGluing.Tet
	if adj == annulus.Tet[0] || adj == annulus.Tet[1] {
		return nil, false
	}
	if avoid.Contains(adj) {
		return nil, false
	}

	adjRoles := adjGluing.Perm.Compose(annulus.Roles[0]).Compose(swap03)

	g1 := annulus.Tet[1].Adjacent(annulus.Roles[1].At(1))
	if g1 == nil {
		return nil, false
	}
	if g1.Perm.Compose(annulus.Roles[1]).Compose(permEven) != adjRoles {
		return nil, false
	}

	ann1 := New(annulus.Tet[1], annulus.Roles[1].Compose(pairSwap), adj, adjRoles)
	ann2 := New(adj, adjRoles.Compose(pairSwap), annulus.Tet[0], annulus.Roles[0].Compose(pairSwap))

	claimed := []*tri.Tetrahedron{annulus.Tet[0], annulus.Tet[1], adj}
	avoid.AddAll(claimed)

	return &Block{
		Kind:     KindTriPrism,
		Annuli:   []SatAnnulus{annulus, ann1, ann2},
		Adj:      make([]*Adjacency, 3),
		Claim:    claimed,
		TriPrism: &TriPrismParams{Major: true},
	}, true
}
