package layering_test

import (
	"testing"

	"github.com/gmanifold/satrec/layering"
	"github.com/gmanifold/satrec/matrix2"
	"github.com/gmanifold/satrec/perm"
	"github.com/gmanifold/satrec/satblock"
	"github.com/gmanifold/satrec/tri"
	"github.com/stretchr/testify/require"
)

func TestNewStartsAtIdentity(t *testing.T) {
	tr := tri.NewTriangulation(1)
	t0, _ := tr.Tetrahedron(0)
	entry := satblock.New(t0, satblock.RolesForFace(3), t0, satblock.RolesForFace(2))
	w := layering.New(entry)
	require.Equal(t, matrix2.Identity, w.BoundaryReln)
	require.Equal(t, entry, w.Current)
}

// buildLayeredPair builds two tetrahedra t0, t1 where t0's faces 2 and 3
// (the boundary ExtendOne starts from) are each glued to a distinct
// face of t1, leaving t1's other two faces open — presenting exactly
// the single-tetrahedron layering pattern on t1 once the boundary is
// switched through.
func buildLayeredPair(t *testing.T) (*tri.Triangulation, satblock.SatAnnulus) {
	t.Helper()
	tr := tri.NewTriangulation(2)
	t0, err := tr.Tetrahedron(0)
	require.NoError(t, err)
	t1, err := tr.Tetrahedron(1)
	require.NoError(t, err)

	require.NoError(t, tr.Glue(t0, 2, t1, 0, perm.MustNew(3, 1, 0, 2)))
	require.NoError(t, tr.Glue(t0, 3, t1, 1, perm.MustNew(0, 3, 2, 1)))

	entry := satblock.New(t0, satblock.RolesForFace(2), t0, satblock.RolesForFace(3))
	return tr, entry
}

func TestExtendOneAdvancesAcrossALayering(t *testing.T) {
	_, entry := buildLayeredPair(t)
	w := layering.New(entry)

	next, ok := w.ExtendOne()
	require.True(t, ok)
	require.Equal(t, matrix2.New(1, 1, 0, 1), next.BoundaryReln)
	require.Equal(t, int64(1), next.BoundaryReln.Det())
}

func TestExtendOneFailsOnOpenBoundary(t *testing.T) {
	tr := tri.NewTriangulation(1)
	t0, _ := tr.Tetrahedron(0)
	entry := satblock.New(t0, satblock.RolesForFace(2), t0, satblock.RolesForFace(3))
	w := layering.New(entry)

	_, ok := w.ExtendOne()
	require.False(t, ok, "a boundary with unglued faces has nothing to switch through to")
}

func TestExtendStopsAtSeenTetrahedron(t *testing.T) {
	tr, entry := buildLayeredPair(t)
	t1, err := tr.Tetrahedron(1)
	require.NoError(t, err)
	w := layering.New(entry)

	seen := satblock.NewTetSet()
	seen.Add(t1)

	_, steps := w.Extend(seen)
	require.Equal(t, 0, steps, "the layering lands on t1, which is already in seen")
}

func TestExtendAdvancesWhenNotSeen(t *testing.T) {
	_, entry := buildLayeredPair(t)
	w := layering.New(entry)

	final, steps := w.Extend(nil)
	require.Equal(t, 1, steps, "t1's own two remaining faces are open, so the walk advances once and stops")
	require.Equal(t, matrix2.New(1, 1, 0, 1), final.BoundaryReln)
}

func TestMatchesTopDetectsClosure(t *testing.T) {
	tr := tri.NewTriangulation(1)
	t0, _ := tr.Tetrahedron(0)
	// The annulus's own two faces glue to each other, closing the
	// boundary back onto itself up to a horizontal reflection.
	require.NoError(t, tr.Glue(t0, 2, t0, 3, perm.MustNew(1, 0, 3, 2)))

	entry := satblock.New(t0, satblock.RolesForFace(2), t0, satblock.RolesForFace(3))
	w := layering.New(entry)

	m, ok := w.MatchesTop(entry)
	require.True(t, ok)
	require.Equal(t, matrix2.New(1, 0, 0, -1), m)
}
