// Package txicore provides the small catalogue of hard-coded "thin
// I-bundle over the torus" (T×I) triangulations spec.md §4.7 calls for:
// each entry is a pre-built triangulation with two distinguished torus
// boundaries (upper and lower) and the 2×2 integer relations expressing
// boundary curves in terms of tetrahedron edges (BdryReln) and the
// lower boundary's curves in terms of the upper's (ParallelReln).
//
// Grounded directly on original_source/engine/engine/subcomplex/ntxicore.cpp:
// NTxIDiagonalCore(size, k)'s gluing sequence is ported verbatim below
// (same tetrahedron indices, same gluing permutations, translated from
// Regina's joinTo(face, other, gluing) to this module's symmetric
// Glue(t1, f1, t2, f2, gluing)), and NTxIParallelCore's six-tetrahedron
// hard-coded triangulation is ported the same way.
package txicore

import (
	"fmt"

	"github.com/gmanifold/satrec/matrix2"
	"github.com/gmanifold/satrec/perm"
	"github.com/gmanifold/satrec/satblock"
	"github.com/gmanifold/satrec/tri"
)

// Core is one catalogue entry: a T×I triangulation plus its boundary
// and parallel data (spec §4.7).
type Core struct {
	Name string
	Tri  *tri.Triangulation

	// Upper and Lower are the two torus-boundary annuli, each formed
	// from precisely two tetrahedron faces (spec's bdryTet/bdryRoles).
	Upper, Lower satblock.SatAnnulus

	// BdryReln[0] (upper) and BdryReln[1] (lower) express each
	// boundary's (alpha, beta) curves in terms of its two tetrahedron
	// edges; both have determinant +1 or -1.
	BdryReln [2]matrix2.Matrix2

	// ParallelReln expresses the lower alpha/beta curves in terms of
	// the upper ones.
	ParallelReln matrix2.Matrix2
}

func mustTet(tr *tri.Triangulation, i int) *tri.Tetrahedron {
	t, err := tr.Tetrahedron(i)
	if err != nil {
		panic(fmt.Sprintf("txicore: %v", err))
	}
	return t
}

func mustGlue(tr *tri.Triangulation, t1 *tri.Tetrahedron, f1 int, t2 *tri.Tetrahedron, f2 int, g perm.P4) {
	if err := tr.Glue(t1, f1, t2, f2, g); err != nil {
		panic(fmt.Sprintf("txicore: %v", err))
	}
}

// boundaryAnnulus builds the entry/exit annulus for tetrahedra a, b
// using face 3 of each, matching NTxICore's identity bdryRoles
// convention (every catalogue entry's boundary uses the tetrahedron's
// own "face 3" under its natural vertex numbering).
func boundaryAnnulus(a, b *tri.Tetrahedron) satblock.SatAnnulus {
	return satblock.New(a, perm.Identity, b, perm.Identity)
}

// TxIDiagonal builds the "diagonal" family of T×I cores (spec §4.7's
// TxIDiagonal(n, k) catalogue), ported from
// NTxIDiagonalCore::NTxIDiagonalCore. Valid for size >= 6 and
// 1 <= k <= size-5; the catalogue in spec §4.7 uses the nine pairs
// (6,1), (7,1), (8,1), (8,2), (9,1), (9,2), (10,1), (10,2), (10,3).
func TxIDiagonal(size, k int) Core {
	if size < 6 {
		panic(fmt.Sprintf("txicore: TxIDiagonal: size must be >= 6, got %d", size))
	}
	if k < 1 || k > size-5 {
		panic(fmt.Sprintf("txicore: TxIDiagonal: k must be in [1,%d], got %d", size-5, k))
	}

	tr := tri.NewTriangulation(size, tri.WithLabel(fmt.Sprintf("TxI diagonal T%d:%d", size, k)))
	t := make([]*tri.Tetrahedron, size)
	for i := 0; i < size; i++ {
		t[i] = mustTet(tr, i)
	}

	// Glue together the pairs of triangles in the central surface.
	mustGlue(tr, t[0], 0, t[1], 0, perm.MustNew(0, 2, 1, 3))
	mustGlue(tr, t[size-2], 0, t[size-1], 0, perm.MustNew(0, 2, 1, 3))

	// Glue together the long diagonal line of quads, and hook the ends
	// together using the first pair of triangles.
	mustGlue(tr, t[0], 1, t[3], 3, perm.MustNew(2, 3, 1, 0))
	for i := 3; i < size-3; i++ {
		mustGlue(tr, t[i], 0, t[i+1], 3, perm.Transposition(0, 3))
	}
	mustGlue(tr, t[size-3], 0, t[1], 1, perm.MustNew(1, 0, 2, 3))

	// Glue the quadrilateral and double-triangular bulges to their
	// horizontal neighbours.
	mustGlue(tr, t[1], 2, t[2], 2, perm.Identity)
	mustGlue(tr, t[2], 3, t[0], 2, perm.MustNew(1, 0, 3, 2))
	mustGlue(tr, t[size-1], 2, t[size-2-k], 1, perm.MustNew(3, 0, 1, 2))
	mustGlue(tr, t[size-2], 2, t[size-2-k], 2, perm.MustNew(0, 3, 2, 1))

	// Glue in the lower edge of each bulge.
	if k == size-5 {
		mustGlue(tr, t[2], 0, t[size-2], 1, perm.MustNew(1, 3, 2, 0))
	} else {
		mustGlue(tr, t[2], 0, t[3], 2, perm.MustNew(2, 1, 3, 0))
	}
	if k == 1 {
		mustGlue(tr, t[size-1], 1, t[2], 1, perm.MustNew(2, 1, 3, 0))
	} else {
		mustGlue(tr, t[size-1], 1, t[size-1-k], 2, perm.MustNew(3, 2, 0, 1))
	}

	// Glue in the lower edge of each quadrilateral.
	for i := 3; i <= size-3; i++ {
		if i == size-2-k {
			continue
		}
		switch {
		case i == size-3:
			mustGlue(tr, t[i], 1, t[2], 1, perm.MustNew(3, 1, 0, 2))
		case i == size-3-k:
			mustGlue(tr, t[i], 1, t[size-2], 1, perm.MustNew(0, 1, 3, 2))
		default:
			mustGlue(tr, t[i], 1, t[i+1], 2, perm.Transposition(1, 2))
		}
	}

	return Core{
		Name:         fmt.Sprintf("T%d:%d", size, k),
		Tri:          tr,
		Upper:        boundaryAnnulus(t[0], t[1]),
		Lower:        boundaryAnnulus(t[size-2], t[size-1]),
		BdryReln:     [2]matrix2.Matrix2{matrix2.New(1, 0, 0, 1), matrix2.New(-1, 0, 0, 1)},
		ParallelReln: matrix2.New(1, int64(size-6), 0, 1),
	}
}

// TxIParallel builds the six-tetrahedron T×I core whose upper and lower
// boundary curves are completely parallel (spec §4.7's TxIParallel;
// regina calls this T6* / NTxIParallelCore, "the fewest possible number
// of tetrahedra" for a T×I core).
func TxIParallel() Core {
	tr := tri.NewTriangulation(6, tri.WithLabel("TxI parallel T6*"))
	t := make([]*tri.Tetrahedron, 6)
	for i := 0; i < 6; i++ {
		t[i] = mustTet(tr, i)
	}

	mustGlue(tr, t[0], 0, t[1], 0, perm.Transposition(1, 2))
	mustGlue(tr, t[4], 0, t[5], 0, perm.Transposition(1, 2))
	mustGlue(tr, t[1], 2, t[2], 2, perm.Identity)
	mustGlue(tr, t[5], 2, t[3], 2, perm.Identity)
	mustGlue(tr, t[0], 2, t[2], 3, perm.MustNew(1, 0, 3, 2))
	mustGlue(tr, t[4], 2, t[3], 3, perm.MustNew(1, 0, 3, 2))
	mustGlue(tr, t[1], 1, t[3], 0, perm.MustNew(2, 0, 3, 1))
	mustGlue(tr, t[5], 1, t[2], 0, perm.MustNew(2, 0, 3, 1))
	mustGlue(tr, t[0], 1, t[3], 1, perm.Transposition(0, 3))
	mustGlue(tr, t[4], 1, t[2], 1, perm.Transposition(0, 3))

	return Core{
		Name:         "T6*",
		Tri:          tr,
		Upper:        boundaryAnnulus(t[0], t[1]),
		Lower:        boundaryAnnulus(t[4], t[5]),
		BdryReln:     [2]matrix2.Matrix2{matrix2.Identity, matrix2.Identity},
		ParallelReln: matrix2.Identity,
	}
}

// diagonalSpec is one (size, k) pair in the §4.7 catalogue.
type diagonalSpec struct{ size, k int }

var catalogueSpecs = []diagonalSpec{
	{6, 1}, {7, 1}, {8, 1}, {8, 2}, {9, 1}, {9, 2}, {10, 1}, {10, 2}, {10, 3},
}

// Catalogue returns every entry of the spec §4.7 catalogue: the nine
// TxIDiagonal(n,k) cores plus the one TxIParallel core.
func Catalogue() []Core {
	out := make([]Core, 0, len(catalogueSpecs)+1)
	for _, s := range catalogueSpecs {
		out = append(out, TxIDiagonal(s.size, s.k))
	}
	out = append(out, TxIParallel())
	return out
}
