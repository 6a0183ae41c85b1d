package satregion_test

import (
	"testing"

	"github.com/gmanifold/satrec/perm"
	"github.com/gmanifold/satrec/satblock"
	"github.com/gmanifold/satrec/satregion"
	"github.com/gmanifold/satrec/tri"
	"github.com/stretchr/testify/require"
)

// buildSelfContainedLST builds a single-tetrahedron layered-solid-torus
// block whose lone boundary annulus sits on the triangulation's actual
// boundary, so expansion should terminate immediately with a region of
// one member and zero internal adjacencies.
func buildSelfContainedLST(t *testing.T) (*tri.Triangulation, *satblock.Block, satblock.SatAnnulus) {
	t.Helper()
	tr := tri.NewTriangulation(1)
	t0, err := tr.Tetrahedron(0)
	require.NoError(t, err)
	require.NoError(t, tr.Glue(t0, 0, t0, 1, perm.MustNew(1, 0, 3, 2)))

	entry := satblock.New(t0, perm.MustNew(0, 1, 3, 2), t0, perm.Identity)
	block, ok := satblock.TryIdentifyLST(entry, satblock.NewTetSet())
	require.True(t, ok)
	return tr, block, entry
}

func TestNewSeedsSingleMemberRegion(t *testing.T) {
	tr, block, _ := buildSelfContainedLST(t)
	r := satregion.New(tr, block)
	require.Len(t, r.Members, 1)
	require.Equal(t, block.NAnnuli(), r.NBdryAnnuli)
	require.True(t, r.BaseOrientable)
	require.True(t, r.TwistsMatchOrientation)
}

func TestExpandOnBoundaryOnlyBlockStaysSingleMember(t *testing.T) {
	tr, block, _ := buildSelfContainedLST(t)
	r := satregion.New(tr, block)

	ok := r.Expand(satblock.NewTetSet(), true)
	require.True(t, ok)
	require.Len(t, r.Members, 1)
}

func TestExpandAcrossTriPrismStarterStaysBounded(t *testing.T) {
	starters := satblock.StarterSet()
	var triPrism satblock.Starter
	for _, s := range starters {
		if s.Block.Kind == satblock.KindTriPrism {
			triPrism = s
		}
	}
	require.NotNil(t, triPrism.Block)

	avoid := satblock.NewTetSet()
	avoid.AddAll(triPrism.Block.Claim)

	r := satregion.New(triPrism.Tri, triPrism.Block)
	ok := r.Expand(avoid, false)
	require.True(t, ok)
	require.Len(t, r.Members, 1)
	require.Equal(t, 3, r.NBdryAnnuli)
}

func TestCreateSFSFailsWhenTwistsMismatch(t *testing.T) {
	tr, block, _ := buildSelfContainedLST(t)
	r := satregion.New(tr, block)
	require.True(t, r.Expand(satblock.NewTetSet(), true))

	r.TwistsMatchOrientation = false
	_, ok := r.CreateSFS(0, 0)
	require.False(t, ok)
}

func TestCreateSFSInsertsLSTFibre(t *testing.T) {
	tr, block, _ := buildSelfContainedLST(t)
	r := satregion.New(tr, block)
	require.True(t, r.Expand(satblock.NewTetSet(), true))

	sfs, ok := r.CreateSFS(0, 0)
	require.True(t, ok)
	// The minimal LST's fibre has alpha 1, so InsertFibre folds its beta
	// into the obstruction instead of keeping an exceptional fibre.
	require.Empty(t, sfs.Fibres)
	require.Equal(t, block.LST.CutsHoriz, sfs.Obstruction)
}
