// Package graphmanifold implements the graph-manifold wrappers of
// spec.md §4.6: GraphLoop, GraphPair and GraphTriple combine one or more
// SFSpace pieces with the integer matching matrices glued between their
// boundary tori, and each provides a Reduce that canonicalises the
// presentation so that two combinatorially different triangulations of
// the same manifold compare equal after reduction.
//
// Grounded on original_source/engine/engine/manifold/{ngraphloop,
// ngraphpair,ngraphtriple}.cpp. matrix2.Matrix2's Row2Add/Col1SubCol2/
// MaxAbs/CountZeroes/CountNegative/Less methods exist specifically to
// serve this package's reduce passes (see their doc comments).
package graphmanifold

import (
	"fmt"

	"github.com/gmanifold/satrec/matrix2"
	"github.com/gmanifold/satrec/sfspace"
)

// simpler is spec §4.6's strict weak ordering over matching matrices:
// smaller maximum absolute entry first, then more zero entries, then
// fewer negative entries, then lexicographic over (A,B,C,D).
func simpler(a, b matrix2.Matrix2) bool {
	if a.MaxAbs() != b.MaxAbs() {
		return a.MaxAbs() < b.MaxAbs()
	}
	if a.CountZeroes() != b.CountZeroes() {
		return a.CountZeroes() > b.CountZeroes()
	}
	if a.CountNegative() != b.CountNegative() {
		return a.CountNegative() < b.CountNegative()
	}
	return a.Less(b)
}

// twistMinimize repeatedly applies a one-argument compensating move
// while it strictly simplifies m, and returns the fixed point reached
// (spec §4.6's "bring to zero" style descent). Bounded by the matrix's
// own entries so it always terminates.
func twistMinimize(m matrix2.Matrix2, step func(matrix2.Matrix2) matrix2.Matrix2) matrix2.Matrix2 {
	for i := 0; i < 64; i++ {
		next := step(m)
		if !simpler(next, m) {
			return m
		}
		m = next
	}
	return m
}

// GraphLoop is spec §4.6's wrapper for a single SFS piece whose two
// boundary annuli are glued to each other via M (a self-glued graph
// manifold, "the source's NGraphLoop").
type GraphLoop struct {
	SFS sfspace.SFSpace
	M   matrix2.Matrix2
}

// Reduce canonicalises l: fixes the sign of M[0][1] when det M == +1 by
// inverting, then drives the obstruction and M[0][0] to zero via
// repeated twist compensation (spec §4.6's GraphLoop procedure, grounded
// on nngsfsloop.cpp::reduce).
func (l GraphLoop) Reduce() GraphLoop {
	out := l
	out.SFS = out.SFS.Reduce(false)

	if out.M.Det() == 1 && out.M.B < 0 {
		if inv, err := out.M.Inverse(); err == nil {
			out.M = inv
		}
	}

	for i := 0; i < 64 && out.M.B != 0; i++ {
		next := out.M.Col1SubCol2()
		if !simpler(next, out.M) {
			break
		}
		out.SFS = out.SFS.InsertFibre(1, -out.M.B)
		out.M = next
	}

	if out.M.B != 0 {
		out.M = twistMinimize(out.M, func(m matrix2.Matrix2) matrix2.Matrix2 {
			if m.A > 0 {
				return m.Row2Add(-1)
			}
			return m.Row2Add(1)
		})
	}

	return out
}

func (l GraphLoop) String() string {
	return fmt.Sprintf("GraphLoop(%s, %s)", l.SFS, l.M)
}

// GraphPair is spec §4.6's wrapper for two SFS pieces glued across a
// single torus via matching matrix M.
type GraphPair struct {
	SFS0, SFS1 sfspace.SFSpace
	M          matrix2.Matrix2
}

// reflect0 applies move 4: negate every fibre of SFS0, compensating by
// negating M's first column.
func (g GraphPair) reflect0() GraphPair {
	out := g
	out.SFS0 = g.SFS0.Reflect()
	out.M = matrix2.New(-g.M.A, g.M.B, -g.M.C, g.M.D)
	return out
}

// reflect1 is reflect0's dual: negate SFS1's fibres, compensating by
// negating M's second row.
func (g GraphPair) reflect1() GraphPair {
	out := g
	out.SFS1 = g.SFS1.Reflect()
	out.M = matrix2.New(g.M.A, g.M.B, -g.M.C, -g.M.D)
	return out
}

// swap applies move 5: swap the two pieces, inverting M.
func (g GraphPair) swap() GraphPair {
	out := GraphPair{SFS0: g.SFS1, SFS1: g.SFS0, M: g.M}
	if inv, err := g.M.Inverse(); err == nil {
		out.M = inv
	}
	return out
}

// negate applies move 3: a 180-degree rotation about the join.
func (g GraphPair) negate() GraphPair {
	out := g
	out.M = g.M.Negate()
	return out
}

// twistMinimized applies moves 1 and 2 (a (1,1) twist on either side,
// compensated on M) until neither improves M under simpler.
func (g GraphPair) twistMinimized() GraphPair {
	out := g
	for i := 0; i < 64; i++ {
		cand0 := out
		cand0.SFS0 = out.SFS0.InsertFibre(1, 1)
		cand0.M = out.M.Col1SubCol2()

		cand1 := out
		cand1.SFS1 = out.SFS1.InsertFibre(1, 1)
		cand1.M = out.M.Row2Add(1)

		switch {
		case simpler(cand0.M, out.M):
			out = cand0
		case simpler(cand1.M, out.M):
			out = cand1
		default:
			return out
		}
	}
	return out
}

// lessThan orders two fully-reduced candidates: first by simpler(M,M),
// then by lexicographic comparison of the SFSpace pair (spec §4.6's
// stated tie-break).
func (g GraphPair) lessThan(other GraphPair) bool {
	if simpler(g.M, other.M) != simpler(other.M, g.M) {
		return simpler(g.M, other.M)
	}
	if !g.SFS0.Equal(other.SFS0) {
		return g.SFS0.Less(other.SFS0)
	}
	return g.SFS1.Less(other.SFS1)
}

// Reduce canonicalises g: independently reduces both SFSpaces, then
// searches the 2x2x2x2 product of (reflect0, reflect1, swap, negate)
// candidates, twist-minimising each, and keeps the one that minimises M
// under simpler with the SFSpace pair as tie-break (spec §4.6).
func (g GraphPair) Reduce() GraphPair {
	base := GraphPair{SFS0: g.SFS0.Reduce(false), SFS1: g.SFS1.Reduce(false), M: g.M}

	best := base.twistMinimized()
	for _, r0 := range []bool{false, true} {
		for _, r1 := range []bool{false, true} {
			for _, sw := range []bool{false, true} {
				for _, neg := range []bool{false, true} {
					cand := base
					if r0 {
						cand = cand.reflect0()
					}
					if r1 {
						cand = cand.reflect1()
					}
					if sw {
						cand = cand.swap()
					}
					if neg {
						cand = cand.negate()
					}
					cand = cand.twistMinimized()
					if cand.lessThan(best) {
						best = cand
					}
				}
			}
		}
	}
	return best
}

func (g GraphPair) String() string {
	return fmt.Sprintf("GraphPair(%s, %s, %s)", g.SFS0, g.SFS1, g.M)
}

// GraphTriple is spec §4.6's wrapper for three SFS pieces: two end
// pieces (SFS0, SFS1) each glued to a shared central piece (SFSHub) via
// M01 and M21 respectively.
type GraphTriple struct {
	SFS0, SFSHub, SFS1 sfspace.SFSpace
	M01, M21           matrix2.Matrix2
}

// Reduce reduces each of the triple's three SFSpaces independently
// (spec §4.6: "GraphTriple: reduces each SFS independently").
func (g GraphTriple) Reduce() GraphTriple {
	return GraphTriple{
		SFS0:   g.SFS0.Reduce(false),
		SFSHub: g.SFSHub.Reduce(false),
		SFS1:   g.SFS1.Reduce(false),
		M01:    g.M01,
		M21:    g.M21,
	}
}

func (g GraphTriple) String() string {
	return fmt.Sprintf("GraphTriple(%s, %s, %s, %s, %s)", g.SFS0, g.SFSHub, g.SFS1, g.M01, g.M21)
}
