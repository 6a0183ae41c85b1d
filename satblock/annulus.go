// Package satblock implements the saturated-annulus and saturated-block
// abstractions of spec.md §3–§4.2: SatAnnulus (a pair of tetrahedron
// faces forming a saturated annulus), the SatBlock library (layered
// solid torus, triangular prism, cube, Mobius strip, reflector strip,
// single-tetrahedron layering), and the starter-block catalogue used to
// seed region expansion.
package satblock

import (
	"github.com/gmanifold/satrec/matrix2"
	"github.com/gmanifold/satrec/perm"
	"github.com/gmanifold/satrec/tri"
)

// vertSwap is the transposition (0 1) used throughout annulus
// reflection, matching Regina's NPerm(0,1).
var vertSwap = perm.Transposition(0, 1)

// SatAnnulus is a pair of tetrahedron faces meeting along a common edge,
// interpreted as a saturated annulus (spec §3). roles[i][0..2]
// identifies the three vertices of tet[i]'s face, in the order
// (vertical-start, vertical-end/horizontal-start, diagonal-end); the
// fourth image roles[i][3] is the vertex opposite the face.
type SatAnnulus struct {
	Tet   [2]*tri.Tetrahedron
	Roles [2]perm.P4
}

// New builds a SatAnnulus from explicit tetrahedra and role
// permutations.
func New(t0 *tri.Tetrahedron, r0 perm.P4, t1 *tri.Tetrahedron, r1 perm.P4) SatAnnulus {
	return SatAnnulus{Tet: [2]*tri.Tetrahedron{t0, t1}, Roles: [2]perm.P4{r0, r1}}
}

// MeetsBoundary counts how many of the annulus's two faces are boundary
// faces of the triangulation (0, 1, or 2).
func (a SatAnnulus) MeetsBoundary() int {
	n := 0
	if a.Tet[0].Adjacent(a.Roles[0].At(3)) == nil {
		n++
	}
	if a.Tet[1].Adjacent(a.Roles[1].At(3)) == nil {
		n++
	}
	return n
}

// SwitchSides returns the same annulus viewed from the other side: both
// faces are pushed through their gluings to the tetrahedra on the far
// side (spec §4.2, grounded on nsatannulus.cpp::switchSides).
//
// Precondition: MeetsBoundary() == 0.
func (a SatAnnulus) SwitchSides() SatAnnulus {
	var out SatAnnulus
	for i := 0; i < 2; i++ {
		face := a.Roles[i].At(3)
		g := a.Tet[i].Adjacent(face)
		out.Roles[i] = g.Perm.Compose(a.Roles[i])
		out.Tet[i] = g.Tet
	}
	return out
}

// ReflectVertical reverses the direction of the vertical fibres:
// roles[*][0] and roles[*][1] are swapped on both faces.
func (a SatAnnulus) ReflectVertical() SatAnnulus {
	return SatAnnulus{
		Tet:   a.Tet,
		Roles: [2]perm.P4{a.Roles[0].Compose(vertSwap), a.Roles[1].Compose(vertSwap)},
	}
}

// ReflectHorizontal performs a left-to-right reflection: the two faces
// swap roles (with a compensating vertical swap so the vertical
// direction of the fibres is preserved).
func (a SatAnnulus) ReflectHorizontal() SatAnnulus {
	return SatAnnulus{
		Tet:   [2]*tri.Tetrahedron{a.Tet[1], a.Tet[0]},
		Roles: [2]perm.P4{a.Roles[1].Compose(vertSwap), a.Roles[0].Compose(vertSwap)},
	}
}

// IsAdjacent tests whether `other`, viewed from its far side, coincides
// with a up to the four possible vertical/horizontal reflections, and
// if so reports which reflection applies (spec §3, grounded on
// nsatannulus.cpp::isAdjacent).
func (a SatAnnulus) IsAdjacent(other SatAnnulus) (refVert, refHoriz, ok bool) {
	if other.MeetsBoundary() != 0 {
		return false, false, false
	}
	opp := other.SwitchSides()

	if opp.Tet[0] == a.Tet[0] && opp.Tet[1] == a.Tet[1] {
		if opp.Roles[0] == a.Roles[0] && opp.Roles[1] == a.Roles[1] {
			return false, false, true
		}
		if opp.Roles[0] == a.Roles[0].Compose(vertSwap) && opp.Roles[1] == a.Roles[1].Compose(vertSwap) {
			return true, false, true
		}
	}
	if opp.Tet[0] == a.Tet[1] && opp.Tet[1] == a.Tet[0] {
		if opp.Roles[0] == a.Roles[1].Compose(vertSwap) && opp.Roles[1] == a.Roles[0].Compose(vertSwap) {
			return false, true, true
		}
		if opp.Roles[0] == a.Roles[1] && opp.Roles[1] == a.Roles[0] {
			return true, true, true
		}
	}
	return false, false, false
}

// IsJoined tests coincidence with `other` by delegating to IsAdjacent, so
// only the four vertical/horizontal reflections are recognised; no other
// vertex remapping is searched, and the returned matrix is always
// diagonal with entries ±1. If the annuli do coincide it reports the
// Matrix2 describing how the
// (fibre, base-curve) basis of other maps to that of a. This is the
// primitive the layering walker uses to test whether a layered-up
// boundary has reached a target annulus from the TxICore catalogue or
// another region (spec §4.4).
//
// The fibre/base-curve basis transform for the four reflection cases is
// the standard one used throughout this core: unreflected is the
// identity, a vertical reflection negates the fibre coordinate, a
// horizontal reflection negates the base-curve coordinate, and both
// together negate both.
func (a SatAnnulus) IsJoined(other SatAnnulus) (matrix2.Matrix2, bool) {
	refVert, refHoriz, ok := a.IsAdjacent(other)
	if !ok {
		return matrix2.Matrix2{}, false
	}
	m := matrix2.Identity
	if refVert {
		m.A = -m.A
	}
	if refHoriz {
		m.D = -m.D
	}
	return m, true
}
