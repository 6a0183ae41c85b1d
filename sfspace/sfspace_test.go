package sfspace_test

import (
	"testing"

	"github.com/gmanifold/satrec/sfspace"
	"github.com/stretchr/testify/require"
)

func TestInsertFibreAbsorbsUnitAlpha(t *testing.T) {
	s := sfspace.New(sfspace.O1, 0)
	s = s.InsertFibre(1, 5)
	require.Empty(t, s.Fibres)
	require.Equal(t, int64(5), s.Obstruction)
}

func TestInsertFibreNormalisesBeta(t *testing.T) {
	s := sfspace.New(sfspace.O1, 0)
	s = s.InsertFibre(3, 7) // 7 = 2*3 + 1
	require.Equal(t, []sfspace.Fibre{{Alpha: 3, Beta: 1}}, s.Fibres)
	require.Equal(t, int64(2), s.Obstruction)
}

func TestInsertFibreNegativeBeta(t *testing.T) {
	s := sfspace.New(sfspace.O1, 0)
	s = s.InsertFibre(5, -2) // -2 = -1*5 + 3
	require.Equal(t, []sfspace.Fibre{{Alpha: 5, Beta: 3}}, s.Fibres)
	require.Equal(t, int64(-1), s.Obstruction)
}

func TestReduceIsIdempotent(t *testing.T) {
	s := sfspace.New(sfspace.O1, 0).InsertFibre(3, 1).InsertFibre(2, 1)
	r1 := s.Reduce(true)
	r2 := r1.Reduce(true)
	require.True(t, r1.Equal(r2))
}

func TestReduceSortsFibres(t *testing.T) {
	s := sfspace.New(sfspace.O1, 0).InsertFibre(5, 2).InsertFibre(2, 1).InsertFibre(3, 1)
	r := s.Reduce(false)
	require.Equal(t, int64(2), r.Fibres[0].Alpha)
	require.Equal(t, int64(3), r.Fibres[1].Alpha)
	require.Equal(t, int64(5), r.Fibres[2].Alpha)
}

func TestReflectNegatesObstructionAndFlipsO1O2(t *testing.T) {
	s := sfspace.New(sfspace.O1, 0).InsertFibre(3, 1)
	r := s.Reflect()
	require.Equal(t, sfspace.O2, r.BaseClass)
	require.Equal(t, int64(0), r.Obstruction)
	require.Equal(t, int64(2), r.Fibres[0].Beta)
}

func TestReduceMayReflectPicksSmaller(t *testing.T) {
	s := sfspace.New(sfspace.O1, 0).InsertFibre(5, 4)
	r := s.Reduce(true)
	require.True(t, !r.Reflect().Reduce(false).Less(r))
}

func TestFibreNegatingCollapsesAmbiguousRepresentatives(t *testing.T) {
	s := sfspace.New(sfspace.N2, 0).InsertFibre(5, 4)
	r := s.Reduce(false)
	require.Equal(t, int64(1), r.Fibres[0].Beta) // min(4, 5-4) == 1
}

func TestObstructionGaugedToZeroWithBoundary(t *testing.T) {
	s := sfspace.New(sfspace.O1, 0).InsertFibre(1, 7).InsertPuncture(false)
	r := s.Reduce(false)
	require.Equal(t, int64(0), r.Obstruction)
}

func TestLessIsStrictWeakOrdering(t *testing.T) {
	a := sfspace.New(sfspace.O1, 0).InsertFibre(2, 1)
	b := sfspace.New(sfspace.O1, 0).InsertFibre(3, 1)
	require.True(t, a.Less(b))
	require.False(t, b.Less(a))
	require.False(t, a.Less(a))
}

func TestHomologyDimensions(t *testing.T) {
	s := sfspace.New(sfspace.O1, 1).InsertFibre(2, 1).InsertFibre(3, 1).AddReflector(1, false)
	_, free := s.Homology()
	require.GreaterOrEqual(t, free, 0)
}

func TestHomologyOfSimplePrismSFS(t *testing.T) {
	s := sfspace.New(sfspace.O1, 0).InsertFibre(1, 1)
	torsion, free := s.Homology()
	require.Empty(t, torsion)
	require.GreaterOrEqual(t, free, 0)
}
