package sparse_test

import (
	"testing"

	"github.com/Bri9k/cusplibrary/array1d"
	"github.com/Bri9k/cusplibrary/space"
	"github.com/Bri9k/cusplibrary/sparse"
	"github.com/stretchr/testify/require"
)

// fourByThree builds the [[10,0,20],[0,0,0],[0,0,30],[40,50,60]] fixture.
func fourByThree(t *testing.T) *sparse.Coo {
	coo, err := sparse.NewCooFromTriplets(4, 3,
		[]int{0, 0, 2, 3, 3, 3},
		[]int{0, 2, 2, 0, 1, 2},
		[]float64{10, 20, 30, 40, 50, 60},
	)
	require.NoError(t, err)

	return coo
}

func spmvOnes3(t *testing.T, m sparse.Matrix) []float64 {
	x := array1d.NewFromSlice(space.Host, []float64{1, 1, 1})
	y, err := array1d.NewSized(space.Host, 4)
	require.NoError(t, err)
	require.NoError(t, sparse.SpMV(m, x, y))

	return y.Raw()
}

func TestSpmvCooFourByThree(t *testing.T) {
	coo := fourByThree(t)
	require.Equal(t, []float64{30, 0, 30, 150}, spmvOnes3(t, coo))
}

func TestSpmvAcrossFormatsAgree(t *testing.T) {
	coo := fourByThree(t)

	csr := &sparse.Csr{}
	require.NoError(t, sparse.Convert(csr, coo))
	require.Equal(t, []float64{30, 0, 30, 150}, spmvOnes3(t, csr))

	ell := &sparse.Ell{}
	require.NoError(t, sparse.Convert(ell, coo))
	require.Equal(t, []float64{30, 0, 30, 150}, spmvOnes3(t, ell))

	hyb := &sparse.Hyb{}
	require.NoError(t, sparse.Convert(hyb, coo))
	require.Equal(t, []float64{30, 0, 30, 150}, spmvOnes3(t, hyb))
}

func TestSpmvDiaDiagonal(t *testing.T) {
	coo, err := sparse.NewCooFromTriplets(4, 4,
		[]int{0, 1, 2, 3},
		[]int{0, 1, 2, 3},
		[]float64{1, 2, 3, 4},
	)
	require.NoError(t, err)

	dia := &sparse.Dia{}
	require.NoError(t, sparse.Convert(dia, coo))

	x := array1d.NewFromSlice(space.Host, []float64{1, 1, 1, 1})
	y, err := array1d.NewSized(space.Host, 4)
	require.NoError(t, err)
	require.NoError(t, sparse.SpMV(dia, x, y))
	require.Equal(t, []float64{1, 2, 3, 4}, y.Raw())
}

func TestConvertBidiagonalToDia(t *testing.T) {
	var rows, cols []int
	var vals []float64
	for i := 0; i < 5; i++ {
		rows = append(rows, i)
		cols = append(cols, i)
		vals = append(vals, 1)
		if i < 4 {
			rows = append(rows, i)
			cols = append(cols, i+1)
			vals = append(vals, 1)
		}
	}
	coo, err := sparse.NewCooFromTriplets(5, 5, rows, cols, vals)
	require.NoError(t, err)

	dia := &sparse.Dia{}
	require.NoError(t, sparse.Convert(dia, coo))
	require.Equal(t, 2, dia.NumDiagonals())

	csr := &sparse.Csr{}
	require.NoError(t, sparse.Convert(csr, coo))
	ell := &sparse.Ell{}
	require.NoError(t, sparse.Convert(ell, csr))
	require.Equal(t, 2, ell.MaxPerRow())
}

func TestConvertPathologicalRowLengthRefusesEll(t *testing.T) {
	n := 1001
	rows := make([]int, 0, n)
	cols := make([]int, 0, n)
	vals := make([]float64, 0, n)
	for c := 0; c < 1000; c++ {
		rows = append(rows, 0)
		cols = append(cols, c)
		vals = append(vals, 1)
	}
	for r := 1; r < 1000; r++ {
		rows = append(rows, r)
		cols = append(cols, 0)
		vals = append(vals, 1)
	}
	coo, err := sparse.NewCooFromTriplets(1000, 1000, rows, cols, vals)
	require.NoError(t, err)

	ell := &sparse.Ell{}
	err = sparse.Convert(ell, coo)
	require.Error(t, err)
	require.ErrorIs(t, err, sparse.ErrFormatConversionTooRagged)
}

func TestSpmvEllAccumulatesPastLeadingSentinel(t *testing.T) {
	// Slot 0 of row 0 is left sentinel; slot 1 holds a real entry. SetSlot
	// gives no ordering guarantee, so SpMV must still pick up slot 1.
	ell, err := sparse.NewEll(space.Host, 1, 2, 2, 1)
	require.NoError(t, err)
	require.NoError(t, ell.SetSlot(1, 0, 1, 5))

	x := array1d.NewFromSlice(space.Host, []float64{1, 1})
	y, err := array1d.NewSized(space.Host, 1)
	require.NoError(t, err)
	require.NoError(t, sparse.SpMV(ell, x, y))

	v, _ := y.At(0)
	require.Equal(t, 5.0, v)
}

func TestSpmvRejectsShapeMismatch(t *testing.T) {
	coo := fourByThree(t)
	x := array1d.NewFromSlice(space.Host, []float64{1, 1})
	y, err := array1d.NewSized(space.Host, 4)
	require.NoError(t, err)
	require.ErrorIs(t, sparse.SpMV(coo, x, y), sparse.ErrShapeMismatch)
}

func TestSpmvRejectsAliasing(t *testing.T) {
	coo, err := sparse.NewCooFromTriplets(2, 2, []int{0, 1}, []int{0, 1}, []float64{1, 1})
	require.NoError(t, err)
	x, err := array1d.NewSized(space.Host, 2)
	require.NoError(t, err)
	require.ErrorIs(t, sparse.SpMV(coo, x, x), sparse.ErrAliasing)
}
