package matrix2_test

import (
	"testing"

	"github.com/gmanifold/satrec/matrix2"
	"github.com/stretchr/testify/require"
)

func TestInverseRoundTrip(t *testing.T) {
	m := matrix2.New(0, 1, 1, 0)
	inv, err := m.Inverse()
	require.NoError(t, err)
	require.Equal(t, matrix2.Identity, m.Mul(inv))
	require.Equal(t, matrix2.Identity, inv.Mul(m))
}

func TestInverseSingular(t *testing.T) {
	m := matrix2.New(1, 1, 2, 2)
	_, err := m.Inverse()
	require.ErrorIs(t, err, matrix2.ErrSingular)
}

func TestDetPreservedUnderNegate(t *testing.T) {
	m := matrix2.New(2, 1, 1, 1)
	require.Equal(t, m.Det(), m.Negate().Det())
}

func TestRequireUnimodularPanics(t *testing.T) {
	require.Panics(t, func() { matrix2.New(1, 1, 1, 1).RequireUnimodular() })
	require.NotPanics(t, func() { matrix2.New(1, 0, 0, -1).RequireUnimodular() })
}

func TestSimplerOrderingHelpers(t *testing.T) {
	m1 := matrix2.New(0, 1, 1, 0)
	m2 := matrix2.New(1, 1, 1, 0)
	require.True(t, m1.MaxAbs() <= m2.MaxAbs())
	require.Equal(t, 2, m1.CountZeroes())
	require.Equal(t, 0, m1.CountNegative())
}
