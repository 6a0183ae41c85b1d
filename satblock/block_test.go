package satblock_test

import (
	"testing"

	"github.com/gmanifold/satrec/perm"
	"github.com/gmanifold/satrec/satblock"
	"github.com/gmanifold/satrec/sfspace"
	"github.com/gmanifold/satrec/tri"
	"github.com/stretchr/testify/require"
)

func TestTetSet(t *testing.T) {
	tr := tri.NewTriangulation(3)
	t0, _ := tr.Tetrahedron(0)
	t1, _ := tr.Tetrahedron(1)

	s := satblock.NewTetSet()
	require.Equal(t, 0, s.Len())
	require.False(t, s.Contains(t0))

	s.Add(t0)
	require.True(t, s.Contains(t0))
	require.False(t, s.Contains(t1))
	require.Equal(t, 1, s.Len())

	clone := s.Clone()
	clone.Add(t1)
	require.Equal(t, 1, s.Len())
	require.Equal(t, 2, clone.Len())
}

func TestSatAnnulusSwitchSides(t *testing.T) {
	tr := tri.NewTriangulation(2)
	t0, _ := tr.Tetrahedron(0)
	t1, _ := tr.Tetrahedron(1)
	require.NoError(t, tr.Glue(t0, 3, t1, 3, perm.Identity))

	a := satblock.New(t0, perm.Identity, t1, perm.Identity)
	b := a.SwitchSides()
	require.Equal(t, t1, b.Tet[0])
	require.Equal(t, t0, b.Tet[1])
}

func TestSatAnnulusReflectVerticalInvolution(t *testing.T) {
	tr := tri.NewTriangulation(1)
	t0, _ := tr.Tetrahedron(0)
	a := satblock.New(t0, perm.Identity, t0, perm.MustNew(1, 0, 3, 2))
	require.Equal(t, a, a.ReflectVertical().ReflectVertical())
}

func TestStarterSetSelfIdentifies(t *testing.T) {
	for _, s := range satblock.StarterSet() {
		require.NotNil(t, s.Block)
		require.Equal(t, s.Block.NAnnuli(), len(s.Block.Annuli))

		avoid := satblock.NewTetSet()
		block, ok := satblock.TryIdentify(s.Entry, avoid)
		require.True(t, ok, "a starter triangulation failed to re-identify via the generic dispatcher")
		require.Equal(t, s.Block.Kind, block.Kind)
		require.Equal(t, s.Tri.NTetrahedra(), avoid.Len())
	}
}

func TestStarterSetCoversTriPrismCubeAndReflectorStrips(t *testing.T) {
	kinds := map[satblock.Kind]bool{}
	lengths := map[int]bool{}
	for _, s := range satblock.StarterSet() {
		kinds[s.Block.Kind] = true
		if s.Block.Kind == satblock.KindReflectorStrip {
			lengths[s.Block.ReflectorStrip.Length] = true
		}
	}
	require.True(t, kinds[satblock.KindTriPrism])
	require.True(t, kinds[satblock.KindCube])
	require.True(t, kinds[satblock.KindReflectorStrip])
	for l := 2; l <= 4; l++ {
		require.True(t, lengths[l], "missing reflector-strip starter of length %d", l)
	}
}

func TestTryIdentifyLSTMinimalSolidTorus(t *testing.T) {
	tr := tri.NewTriangulation(1)
	t0, _ := tr.Tetrahedron(0)
	// pairSwap-style self-gluing: swaps the hinge pair without fixing
	// either of the annulus's own boundary vertices.
	require.NoError(t, tr.Glue(t0, 0, t0, 1, perm.MustNew(1, 0, 3, 2)))

	entry := satblock.New(t0, perm.MustNew(0, 1, 3, 2), t0, perm.Identity)
	block, ok := satblock.TryIdentifyLST(entry, satblock.NewTetSet())
	require.True(t, ok)
	require.Equal(t, satblock.KindLST, block.Kind)
	require.Equal(t, int64(1), block.LST.CutsVert)
	require.Equal(t, int64(1), block.LST.CutsHoriz)
}

func TestTryIdentifyMobiusHalfTwist(t *testing.T) {
	tr := tri.NewTriangulation(1)
	t0, _ := tr.Tetrahedron(0)
	// Fixes annulus vertex 2: LST's dispatch guard defers this case to
	// Mobius rather than claiming it as a minimal solid torus.
	require.NoError(t, tr.Glue(t0, 0, t0, 1, perm.MustNew(1, 0, 2, 3)))

	entry := satblock.New(t0, perm.MustNew(0, 1, 3, 2), t0, perm.Identity)
	_, lstOK := satblock.TryIdentifyLST(entry, satblock.NewTetSet())
	require.False(t, lstOK, "a fixing self-gluing should be deferred to Mobius, not claimed by LST")

	block, ok := satblock.TryIdentifyMobius(entry, satblock.NewTetSet())
	require.True(t, ok)
	require.Equal(t, satblock.KindMobius, block.Kind)
}

func TestBlockAdjustSFSLSTInsertsFibre(t *testing.T) {
	b := &satblock.Block{Kind: satblock.KindLST, LST: &satblock.LSTParams{CutsVert: 3, CutsHoriz: 2}}
	s := b.AdjustSFS(sfspace.New(sfspace.O1, 0), false)
	require.Equal(t, []sfspace.Fibre{{Alpha: 3, Beta: 2}}, s.Fibres)
}

func TestBlockAdjustSFSTriPrismMajorVsMinor(t *testing.T) {
	major := &satblock.Block{Kind: satblock.KindTriPrism, TriPrism: &satblock.TriPrismParams{Major: true}}
	s := major.AdjustSFS(sfspace.New(sfspace.O1, 0), false)
	require.Equal(t, int64(1), s.Obstruction)
	require.Empty(t, s.Fibres)

	minor := &satblock.Block{Kind: satblock.KindTriPrism, TriPrism: &satblock.TriPrismParams{Major: false}}
	s = minor.AdjustSFS(sfspace.New(sfspace.O1, 0), false)
	// alpha==1 fibres are absorbed into the obstruction, never recorded.
	require.Empty(t, s.Fibres)
}

func TestBlockAdjustSFSCubeReflectorLayeringAreNoOps(t *testing.T) {
	base := sfspace.New(sfspace.O1, 0)
	for _, b := range []*satblock.Block{
		{Kind: satblock.KindCube},
		{Kind: satblock.KindReflectorStrip, ReflectorStrip: &satblock.ReflectorStripParams{Length: 3, Twisted: true}},
		{Kind: satblock.KindLayering, Layering: &satblock.LayeringParams{OverHorizontal: true}},
	} {
		s := b.AdjustSFS(base, false)
		require.Equal(t, base, s)
	}
}

func TestKindString(t *testing.T) {
	require.Equal(t, "TriPrism", satblock.KindTriPrism.String())
	require.Equal(t, "Cube", satblock.KindCube.String())
}
