// Package layering implements the boundary-extension walker of
// spec.md §4.4: starting from a saturated torus boundary annulus, push
// through successive single-tetrahedron "layerings" (the same
// recognisable hinge pattern as satblock.TryIdentifyLayering) and track
// the 2×2 integer change of basis between the original boundary and the
// current one.
//
// Grounded on satblock.TryIdentifyLayering for the per-step recognition
// pattern (regina's own layering-walk code is absent from the retrieved
// nsatblocktypes.h, so both this package and TryIdentifyLayering are
// original extensions built in the same style) and on nsatregion.cpp's
// use of left-multiplied [1,1;0,1]/[1,0;1,1] matrices to track a
// boundary relation across a layering.
package layering

import (
	"github.com/gmanifold/satrec/matrix2"
	"github.com/gmanifold/satrec/satblock"
)

// overHorizontal and overDiagonal are the two boundary-relation updates
// a single layering step can apply, keyed by which pair of opposite
// faces the layering tetrahedron layers across (spec §4.4).
var (
	overHorizontal = matrix2.New(1, 1, 0, 1)
	overDiagonal   = matrix2.New(1, 0, 1, 1)
)

// Walker tracks a saturated torus boundary as it is pushed through a
// sequence of diagonal tetrahedron layerings.
type Walker struct {
	Current      satblock.SatAnnulus
	BoundaryReln matrix2.Matrix2
}

// New starts a walker at an already-built boundary annulus, with an
// identity boundary relation.
func New(entry satblock.SatAnnulus) Walker {
	return Walker{Current: entry, BoundaryReln: matrix2.Identity}
}

// ExtendOne pushes w's current boundary through to the tetrahedron on
// its other side (SwitchSides) and tests whether that tetrahedron
// presents the canonical single-tetrahedron layering pattern
// TryIdentifyLayering recognises. If so, it returns an advanced walker
// whose Current is the newly exposed annulus on that tetrahedron and
// whose BoundaryReln has been left-multiplied by the matrix for
// whichever diagonal was layered across. Returns w unchanged and false
// if the current boundary has nothing on its other side, or that
// tetrahedron is not a layering.
//
// Reuses TryIdentifyLayering itself (rather than re-deriving the hinge
// check here) so the walker and the one-shot block recogniser can never
// drift apart on what counts as a layering.
func (w Walker) ExtendOne() (Walker, bool) {
	if w.Current.MeetsBoundary() != 0 {
		return w, false
	}
	other := w.Current.SwitchSides()
	block, ok := satblock.TryIdentifyLayering(other, satblock.NewTetSet())
	if !ok {
		return w, false
	}
	outAnnulus := block.Annuli[1]
	step := overDiagonal
	if block.Layering.OverHorizontal {
		step = overHorizontal
	}
	return Walker{Current: outAnnulus, BoundaryReln: step.Mul(w.BoundaryReln)}, true
}

// Extend repeatedly applies ExtendOne while it succeeds, stopping early
// (without consuming that step) if the tetrahedron it would advance
// into is already a member of seen — the caller's signal that the walk
// has looped back into tetrahedra already claimed elsewhere (spec
// §4.4's failure semantics: the walker itself never owns a tet-set, so
// this check is the caller-supplied guard the spec describes). seen may
// be nil to walk unconditionally until the pattern no longer matches.
func (w Walker) Extend(seen *satblock.TetSet) (Walker, int) {
	steps := 0
	cur := w
	for {
		next, ok := cur.ExtendOne()
		if !ok {
			return cur, steps
		}
		if seen != nil && (seen.Contains(next.Current.Tet[0]) || seen.Contains(next.Current.Tet[1])) {
			return cur, steps
		}
		cur = next
		steps++
	}
}

// MatchesTop tests whether w's current top boundary is glued to bottom
// (up to the four SatAnnulus reflections), and if so returns the
// combined coordinate change: the IsJoined basis transform composed
// with the accumulated BoundaryReln (spec §4.4's layer_reln out
// parameter, returned here rather than written through a pointer, in
// keeping with this module's value-returning style throughout).
func (w Walker) MatchesTop(bottom satblock.SatAnnulus) (matrix2.Matrix2, bool) {
	basis, ok := w.Current.IsJoined(bottom)
	if !ok {
		return matrix2.Matrix2{}, false
	}
	return basis.Mul(w.BoundaryReln), true
}
