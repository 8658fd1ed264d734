package sparse_test

import (
	"testing"

	"github.com/Bri9k/cusplibrary/space"
	"github.com/Bri9k/cusplibrary/sparse"
	"github.com/stretchr/testify/require"
)

func TestNewCooFromTripletsRejectsDuplicates(t *testing.T) {
	_, err := sparse.NewCooFromTriplets(2, 2, []int{0, 0}, []int{0, 0}, []float64{1, 2})
	require.ErrorIs(t, err, sparse.ErrDuplicateEntry)
}

func TestNewCooFromTripletsSortsAndMarksStrict(t *testing.T) {
	coo, err := sparse.NewCooFromTriplets(2, 2, []int{1, 0}, []int{0, 1}, []float64{5, 6})
	require.NoError(t, err)
	require.True(t, coo.IsSortedStrict())
	require.Equal(t, []int{0, 1}, coo.RowIndices().Raw())
}

func TestNewCooFromSortedTripletsAcceptsSorted(t *testing.T) {
	coo, err := sparse.NewCooFromSortedTriplets(2, 2, []int{0, 1}, []int{1, 0}, []float64{5, 6})
	require.NoError(t, err)
	require.True(t, coo.IsSortedStrict())
}

func TestNewCooFromSortedTripletsRejectsOutOfOrder(t *testing.T) {
	_, err := sparse.NewCooFromSortedTriplets(2, 2, []int{1, 0}, []int{0, 1}, []float64{5, 6})
	require.ErrorIs(t, err, sparse.ErrUnsortedCOO)
}

func TestCooSwapExchangesContent(t *testing.T) {
	a, err := sparse.NewCooFromTriplets(2, 2, []int{0}, []int{0}, []float64{1})
	require.NoError(t, err)
	b, err := sparse.NewCooFromTriplets(3, 3, []int{1}, []int{1}, []float64{2})
	require.NoError(t, err)

	a.Swap(b)
	require.Equal(t, 3, a.Rows())
	require.Equal(t, 2, b.Rows())
}

func TestCsrValidateInvariantsRejectsBadOffsets(t *testing.T) {
	csr, err := sparse.NewCsr(space.Host, 2, 2, 1)
	require.NoError(t, err)
	csr.RowOffsets().Raw()[0] = 1 // should be 0
	require.Error(t, csr.ValidateInvariants())
}

func TestDiaStrideBelowRowsRejected(t *testing.T) {
	_, err := sparse.NewDia(space.Host, 4, 4, 1, 2)
	require.ErrorIs(t, err, sparse.ErrInvalidDimensions)
}

func TestEllSlotsStartSentinel(t *testing.T) {
	ell, err := sparse.NewEll(space.Host, 3, 3, 2, 3)
	require.NoError(t, err)
	col, err := ell.SlotColumn(0, 0)
	require.NoError(t, err)
	require.Equal(t, sparse.SentinelColumn, col)
}

func TestHybRejectsShapeMismatch(t *testing.T) {
	ell, err := sparse.NewEll(space.Host, 2, 2, 1, 2)
	require.NoError(t, err)
	coo, err := sparse.NewCoo(space.Host, 3, 3, 0)
	require.NoError(t, err)
	_, err = sparse.NewHyb(ell, coo)
	require.ErrorIs(t, err, sparse.ErrShapeMismatch)
}

func TestHybResizeRebuildsBothPortions(t *testing.T) {
	ell, err := sparse.NewEll(space.Host, 2, 2, 1, 2)
	require.NoError(t, err)
	coo, err := sparse.NewCoo(space.Host, 2, 2, 0)
	require.NoError(t, err)
	hyb, err := sparse.NewHyb(ell, coo)
	require.NoError(t, err)

	require.NoError(t, hyb.Resize(4, 4, 2, 4))
	require.Equal(t, 4, hyb.Rows())
	require.Equal(t, 4, hyb.Cols())
	require.Equal(t, 2, hyb.Ell().MaxPerRow())
	require.Equal(t, 0, hyb.Coo().NumEntries())
}

func TestCloneIsIndependent(t *testing.T) {
	coo, err := sparse.NewCooFromTriplets(2, 2, []int{0}, []int{0}, []float64{7})
	require.NoError(t, err)
	clone := coo.Clone(space.Host)
	require.NoError(t, clone.Values().Set(0, 99))
	v, _ := coo.Values().At(0)
	require.Equal(t, 7.0, v)
}
