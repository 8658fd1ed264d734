package blas1_test

import (
	"math"
	"testing"

	"github.com/Bri9k/cusplibrary/array1d"
	"github.com/Bri9k/cusplibrary/blas1"
	"github.com/Bri9k/cusplibrary/space"
	"github.com/stretchr/testify/require"
)

func TestFill(t *testing.T) {
	a, err := array1d.NewSized(space.Host, 3)
	require.NoError(t, err)
	blas1.Fill(a, 5)
	for i := 0; i < a.Len(); i++ {
		v, _ := a.At(i)
		require.Equal(t, 5.0, v)
	}
}

func TestCopyShapeMismatch(t *testing.T) {
	a := array1d.NewFromSlice(space.Host, []float64{1, 2})
	b := array1d.NewFromSlice(space.Host, []float64{1, 2, 3})
	require.ErrorIs(t, blas1.Copy(a, b), blas1.ErrShapeMismatch)
}

func TestAxpy(t *testing.T) {
	x := array1d.NewFromSlice(space.Host, []float64{1, 2, 3})
	y := array1d.NewFromSlice(space.Host, []float64{10, 10, 10})
	require.NoError(t, blas1.Axpy(2.0, x, y))
	v0, _ := y.At(0)
	v1, _ := y.At(1)
	v2, _ := y.At(2)
	require.Equal(t, 12.0, v0)
	require.Equal(t, 14.0, v1)
	require.Equal(t, 16.0, v2)
}

func TestAxpby(t *testing.T) {
	x := array1d.NewFromSlice(space.Host, []float64{1, 1, 1})
	y := array1d.NewFromSlice(space.Host, []float64{2, 2, 2})
	out, err := array1d.NewSized(space.Host, 3)
	require.NoError(t, err)

	require.NoError(t, blas1.Axpby(x, y, out, 1.0, -1.0))
	for i := 0; i < 3; i++ {
		v, _ := out.At(i)
		require.Equal(t, -1.0, v)
	}
}

func TestAxpbyRejectsOutAliasingOperand(t *testing.T) {
	x := array1d.NewFromSlice(space.Host, []float64{1, 1})
	y := array1d.NewFromSlice(space.Host, []float64{2, 2})

	require.ErrorIs(t, blas1.Axpby(x, y, x, 1, -1), blas1.ErrAliasing)
	require.ErrorIs(t, blas1.Axpby(x, y, y, 1, -1), blas1.ErrAliasing)
}

func TestAxpbypcz(t *testing.T) {
	x := array1d.NewFromSlice(space.Host, []float64{1})
	y := array1d.NewFromSlice(space.Host, []float64{2})
	z := array1d.NewFromSlice(space.Host, []float64{3})
	out, err := array1d.NewSized(space.Host, 1)
	require.NoError(t, err)

	require.NoError(t, blas1.Axpbypcz(x, y, z, out, 1, 2, 3))
	v, _ := out.At(0)
	require.Equal(t, 1.0+2*2.0+3*3.0, v)
}

func TestAxpbypczAliasesOutputWithOperand(t *testing.T) {
	x := array1d.NewFromSlice(space.Host, []float64{1, 1})
	y := array1d.NewFromSlice(space.Host, []float64{2, 2})
	z := array1d.NewFromSlice(space.Host, []float64{3, 3})

	// out aliases y, matching bicgstab's p <- r + beta*(p - omega*AMp).
	require.NoError(t, blas1.Axpbypcz(x, y, z, y, 1, 2, 3))
	v, _ := y.At(0)
	require.Equal(t, 1.0+2*2.0+3*3.0, v)
}

func TestDotc(t *testing.T) {
	x := array1d.NewFromSlice(space.Host, []float64{1, 2, 3})
	y := array1d.NewFromSlice(space.Host, []float64{4, 5, 6})
	d, err := blas1.Dotc(x, y)
	require.NoError(t, err)
	require.Equal(t, 32.0, d)
}

func TestNrm2(t *testing.T) {
	x := array1d.NewFromSlice(space.Host, []float64{3, 4})
	require.Equal(t, 5.0, blas1.Nrm2(x))
}

func TestIsFinite(t *testing.T) {
	ok := array1d.NewFromSlice(space.Host, []float64{1, 2})
	bad := array1d.NewFromSlice(space.Host, []float64{1, math.NaN()})
	require.True(t, blas1.IsFinite(ok))
	require.False(t, blas1.IsFinite(bad))
}
