package perm_test

import (
	"testing"

	"github.com/gmanifold/satrec/perm"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsNonBijection(t *testing.T) {
	_, err := perm.New(0, 0, 1, 2)
	require.Error(t, err)
}

func TestComposeAndInverse(t *testing.T) {
	p := perm.MustNew(1, 2, 0, 3)
	q := perm.MustNew(0, 1, 3, 2)

	pq := p.Compose(q)
	for i := 0; i < 4; i++ {
		require.Equal(t, p.At(q.At(i)), pq.At(i))
	}

	id := p.Compose(p.Inverse())
	require.Equal(t, perm.Identity, id)
}

func TestTransposition(t *testing.T) {
	tr := perm.Transposition(0, 1)
	require.Equal(t, perm.MustNew(1, 0, 2, 3), tr)
	require.Equal(t, tr, tr.Inverse())
}

func TestSign(t *testing.T) {
	require.Equal(t, 1, perm.Identity.Sign())
	require.Equal(t, -1, perm.Transposition(0, 1).Sign())
	require.Equal(t, 1, perm.MustNew(1, 2, 0, 3).Sign()) // 3-cycle
}

func TestString(t *testing.T) {
	require.Equal(t, "0123", perm.Identity.String())
}
