package satblock

import "github.com/gmanifold/satrec/tri"

// TryIdentifyLST tests whether annulus bounds a layered solid torus: a
// single tetrahedron whose other two faces (the "hinge" pair opposite
// the annulus) either glue to each other directly (the minimal,
// one-tetrahedron solid torus) or layer onto a fresh tetrahedron,
// extending the torus by one layering at a time and advancing the
// meridinal-cut triple by the standard continued-fraction step (grounded
// on nsatblocktypes.cpp::NSatLST::isBlockLST / adjustSFS, whose
// meridinal-cut triple (cutsVert, cutsHoriz, cutsDiag) this mirrors; the
// layering recursion itself mirrors nlayeredsolidtorus.cpp's
// "drop the smallest, the new cut is the sum of the other two" rule).
func TryIdentifyLST(annulus SatAnnulus, avoid *TetSet) (*Block, bool) {
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

	claimed := []*tri.Tetrahedron{t}
	seen := NewTetSet()
	seen.Add(t)
	// cuts[0..2] track the meridinal intersection numbers with the three
	// edge classes of the current boundary torus, in the fixed order
	// (vertical, horizontal, diagonal) of the original annulus; they are
	// seeded at the values of the minimal one-tetrahedron solid torus.
	cuts := [3]int64{1, 1, 2}
	cur, faces := t, hinge

	const maxLayers = 128
	for layer := 0; ; layer++ {
		g0, g1 := cur.Adjacent(faces[0]), cur.Adjacent(faces[1])
		if g0 == nil || g1 == nil {
			return nil, false
		}
		if g0.Tet == cur && g1.Tet == cur {
			// Folds back on itself: chain terminates here, provided the
			// self-gluing does not fix one of the annulus's own boundary
			// vertices. A gluing that does fix one belongs to
			// TryIdentifyMobius instead (its half-twist signature); since
			// TryIdentify dispatches LST first, this guard keeps that
			// case from being swallowed here before Mobius ever runs.
			if layer == 0 && (g0.Perm.At(faceA) == faceA || g0.Perm.At(faceB) == faceB) {
				return nil, false
			}
			break
		}
		if g0.Tet != g1.Tet {
			return nil, false
		}
		if layer >= maxLayers {
			return nil, false
		}
		next := g0.Tet
		if seen.Contains(next) || avoid.Contains(next) {
			return nil, false
		}
		seen.Add(next)
		claimed = append(claimed, next)

		smallest := 0
		for i := 1; i < 3; i++ {
			if cuts[i] < cuts[smallest] {
				smallest = i
			}
		}
		cuts[smallest] = cuts[(smallest+1)%3] + cuts[(smallest+2)%3]

		// The next layering exposes a fresh pair of faces on the newly
		// attached tetrahedron: g0 and g1 each consume one face of next
		// (the faces their respective gluings land on), and the
		// remaining two faces become the hinge pair for the next step.
		arrived0 := g0.Perm.At(faces[0])
		arrived1 := g1.Perm.At(faces[1])
		var nf [2]int
		m := 0
		for f := 0; f < 4; f++ {
			if f != arrived0 && f != arrived1 {
				nf[m] = f
				m++
				if m == 2 {
					break
				}
			}
		}
		cur, faces = next, nf
	}

	avoid.AddAll(claimed)
	return &Block{
		Kind:   KindLST,
		Annuli: []SatAnnulus{annulus},
		Adj:    make([]*Adjacency, 1),
		Claim:  claimed,
		LST:    &LSTParams{CutsVert: cuts[0], CutsHoriz: cuts[1], CutsDiag: cuts[2]},
	}, true
}
