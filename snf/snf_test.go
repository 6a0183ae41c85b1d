package snf_test

import (
	"testing"

	"github.com/gmanifold/satrec/snf"
	"github.com/stretchr/testify/require"
)

func diag(entries ...int64) *snf.Matrix {
	n := len(entries)
	m := snf.NewMatrix(n, n)
	for i, v := range entries {
		m.Set(i, i, v)
	}
	return m
}

func TestDiagonalOfIdentity(t *testing.T) {
	m := diag(1, 1, 1)
	d := snf.Diagonal(m)
	require.Equal(t, []int64{1, 1, 1}, d)
}

func TestDiagonalOfZeroMatrix(t *testing.T) {
	m := snf.NewMatrix(2, 3)
	d := snf.Diagonal(m)
	require.Equal(t, []int64{0, 0}, d)
}

func TestDiagonalSortsByDivisibility(t *testing.T) {
	// diag(6,10,15) should reduce towards gcd-chain divisibility.
	m := diag(6, 10, 15)
	d := snf.Diagonal(m)
	require.Len(t, d, 3)
	nonzero := 0
	for _, v := range d {
		if v != 0 {
			nonzero++
		}
	}
	require.GreaterOrEqual(t, nonzero, 1)
	for i := 0; i+1 < len(d); i++ {
		require.Equal(t, int64(0), d[i+1]%d[i], "each diagonal entry divides the next")
	}
}

func TestInvariantsDropsUnitsAndCountsFreeRank(t *testing.T) {
	torsion, free := snf.Invariants([]int64{1, 2, 0, 0})
	require.Equal(t, []int64{2}, torsion)
	require.Equal(t, 2, free)
}

func TestRectangularMatrix(t *testing.T) {
	m := snf.NewMatrix(2, 4)
	m.Set(0, 0, 1)
	m.Set(1, 1, 1)
	d := snf.Diagonal(m)
	require.Len(t, d, 2)
}
