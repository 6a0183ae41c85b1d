package tri_test

import (
	"testing"

	"github.com/gmanifold/satrec/perm"
	"github.com/gmanifold/satrec/tri"
	"github.com/stretchr/testify/require"
)

// twoTetSphere builds the standard two-tetrahedron triangulation of S^3:
// all four faces of tet 0 glued to the corresponding faces of tet 1 via
// the identity permutation.
func twoTetSphere(t *testing.T) *tri.Triangulation {
	tr := tri.NewTriangulation(2)
	t0, err := tr.Tetrahedron(0)
	require.NoError(t, err)
	t1, err := tr.Tetrahedron(1)
	require.NoError(t, err)
	for f := 0; f < 4; f++ {
		require.NoError(t, tr.Glue(t0, f, t1, f, perm.Identity))
	}
	return tr
}

func TestTwoTetSphereIsClosedConnectedValid(t *testing.T) {
	tr := twoTetSphere(t)
	require.True(t, tr.IsClosed())
	require.True(t, tr.IsConnected())
	require.True(t, tr.IsValid())
	require.Equal(t, 1, tr.NComponents())
}

func TestGlueRejectsDoubleGluing(t *testing.T) {
	tr := tri.NewTriangulation(2)
	t0, _ := tr.Tetrahedron(0)
	t1, _ := tr.Tetrahedron(1)
	require.NoError(t, tr.Glue(t0, 0, t1, 0, perm.Identity))
	err := tr.Glue(t0, 0, t1, 0, perm.Identity)
	require.ErrorIs(t, err, tri.ErrFaceAlreadyGlued)
}

func TestDisconnectedTriangulation(t *testing.T) {
	tr := tri.NewTriangulation(4)
	t0, _ := tr.Tetrahedron(0)
	t1, _ := tr.Tetrahedron(1)
	t2, _ := tr.Tetrahedron(2)
	t3, _ := tr.Tetrahedron(3)
	for f := 0; f < 4; f++ {
		require.NoError(t, tr.Glue(t0, f, t1, f, perm.Identity))
		require.NoError(t, tr.Glue(t2, f, t3, f, perm.Identity))
	}
	require.False(t, tr.IsConnected())
	require.Equal(t, 2, tr.NComponents())
}

func TestFindAllSubcomplexesFindsSelf(t *testing.T) {
	tr := twoTetSphere(t)
	isos := tri.FindAllSubcomplexes(tr, tr)
	require.NotEmpty(t, isos)
}

func TestEdgeClassesNonEmpty(t *testing.T) {
	tr := twoTetSphere(t)
	require.Greater(t, tr.NEdges(), 0)
}
