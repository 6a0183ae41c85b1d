package txicore_test

import (
	"fmt"
	"testing"

	"github.com/gmanifold/satrec/txicore"
	"github.com/stretchr/testify/require"
)

func TestCatalogueHasTenEntries(t *testing.T) {
	cat := txicore.Catalogue()
	require.Len(t, cat, 10)
}

func TestDiagonalCoresHaveExpectedSizeAndBoundary(t *testing.T) {
	cases := []struct{ size, k int }{
		{6, 1}, {7, 1}, {8, 1}, {8, 2}, {9, 1}, {9, 2}, {10, 1}, {10, 2}, {10, 3},
	}
	for _, c := range cases {
		c := c
		t.Run(fmt.Sprintf("%d:%d", c.size, c.k), func(t *testing.T) {
			core := txicore.TxIDiagonal(c.size, c.k)
			require.Equal(t, fmt.Sprintf("T%d:%d", c.size, c.k), core.Name)
			require.Equal(t, 2, core.Upper.MeetsBoundary(), "upper boundary must sit on two genuinely unglued faces")
			require.Equal(t, 2, core.Lower.MeetsBoundary(), "lower boundary must sit on two genuinely unglued faces")

			for _, reln := range core.BdryReln {
				det := reln.Det()
				require.True(t, det == 1 || det == -1, "boundary relation must be unimodular, got det %d", det)
			}
			require.True(t, core.ParallelReln.Det() == 1 || core.ParallelReln.Det() == -1)
		})
	}
}

func TestDiagonalParallelRelnTracksSize(t *testing.T) {
	core := txicore.TxIDiagonal(9, 2)
	require.Equal(t, int64(3), core.ParallelReln.B, "parallel relation's shift term is size-6")
}

func TestDiagonalRejectsOutOfRangeK(t *testing.T) {
	require.Panics(t, func() { txicore.TxIDiagonal(6, 2) })
	require.Panics(t, func() { txicore.TxIDiagonal(6, -1) })
	require.Panics(t, func() { txicore.TxIDiagonal(5, 0) })
}

func TestParallelCoreHasSixTetrahedraAndParallelBoundaries(t *testing.T) {
	core := txicore.TxIParallel()
	require.Equal(t, "T6*", core.Name)
	require.Equal(t, 2, core.Upper.MeetsBoundary())
	require.Equal(t, 2, core.Lower.MeetsBoundary())
	require.Equal(t, int64(1), core.BdryReln[0].Det())
	require.Equal(t, int64(1), core.BdryReln[1].Det())
	require.Equal(t, int64(1), core.ParallelReln.Det())
}
