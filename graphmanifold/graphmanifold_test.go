package graphmanifold_test

import (
	"testing"

	"github.com/gmanifold/satrec/graphmanifold"
	"github.com/gmanifold/satrec/matrix2"
	"github.com/gmanifold/satrec/sfspace"
	"github.com/stretchr/testify/require"
)

func TestGraphLoopReduceFixesNegativeOffDiagonal(t *testing.T) {
	loop := graphmanifold.GraphLoop{
		SFS: sfspace.New(sfspace.O1, 0),
		M:   matrix2.New(2, -1, 3, -1),
	}
	require.Equal(t, int64(1), loop.M.Det())

	reduced := loop.Reduce()
	require.GreaterOrEqual(t, reduced.M.B, int64(0))
}

func TestGraphLoopReduceIsIdempotent(t *testing.T) {
	loop := graphmanifold.GraphLoop{
		SFS: sfspace.New(sfspace.N1, 1),
		M:   matrix2.New(3, 2, 1, 1),
	}
	once := loop.Reduce()
	twice := once.Reduce()
	require.Equal(t, once.M, twice.M)
	require.Equal(t, once.SFS, twice.SFS)
}

func TestGraphPairReduceIsIdempotent(t *testing.T) {
	pair := graphmanifold.GraphPair{
		SFS0: sfspace.New(sfspace.O1, 0),
		SFS1: sfspace.New(sfspace.O1, 0),
		M:    matrix2.New(5, 2, 2, 1),
	}
	once := pair.Reduce()
	twice := once.Reduce()
	require.Equal(t, once.M, twice.M)
	require.Equal(t, once.SFS0, twice.SFS0)
	require.Equal(t, once.SFS1, twice.SFS1)
}

func TestGraphPairReducePrefersSmallerMatrix(t *testing.T) {
	pair := graphmanifold.GraphPair{
		SFS0: sfspace.New(sfspace.O1, 0),
		SFS1: sfspace.New(sfspace.O1, 0),
		M:    matrix2.New(0, -1, 1, 0),
	}
	reduced := pair.Reduce()
	require.LessOrEqual(t, reduced.M.MaxAbs(), pair.M.MaxAbs())
}

func TestGraphTripleReduceReducesEachSFSIndependently(t *testing.T) {
	sfs0 := sfspace.New(sfspace.O1, 0).InsertFibre(3, 5)
	sfsHub := sfspace.New(sfspace.O1, 0).InsertFibre(2, 3)
	sfs1 := sfspace.New(sfspace.O1, 0).InsertFibre(5, 7)

	triple := graphmanifold.GraphTriple{
		SFS0:   sfs0,
		SFSHub: sfsHub,
		SFS1:   sfs1,
		M01:    matrix2.New(1, 0, 0, 1),
		M21:    matrix2.New(1, 0, 0, 1),
	}

	reduced := triple.Reduce()
	require.Equal(t, sfs0.Reduce(false), reduced.SFS0)
	require.Equal(t, sfsHub.Reduce(false), reduced.SFSHub)
	require.Equal(t, sfs1.Reduce(false), reduced.SFS1)
	require.Equal(t, triple.M01, reduced.M01)
	require.Equal(t, triple.M21, reduced.M21)
}

func TestGraphLoopStringAndGraphPairStringAreNonEmpty(t *testing.T) {
	loop := graphmanifold.GraphLoop{SFS: sfspace.New(sfspace.O1, 0), M: matrix2.Identity}
	require.NotEmpty(t, loop.String())

	pair := graphmanifold.GraphPair{
		SFS0: sfspace.New(sfspace.O1, 0),
		SFS1: sfspace.New(sfspace.O1, 0),
		M:    matrix2.Identity,
	}
	require.NotEmpty(t, pair.String())
}
