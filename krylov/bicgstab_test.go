package krylov_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/Bri9k/cusplibrary/array1d"
	"github.com/Bri9k/cusplibrary/blas1"
	"github.com/Bri9k/cusplibrary/krylov"
	"github.com/Bri9k/cusplibrary/space"
	"github.com/Bri9k/cusplibrary/sparse"
	"github.com/Bri9k/cusplibrary/stopping"
	"github.com/stretchr/testify/require"
)

// stepPreconditioner answers the k-th Apply call (1-based) with a fixed
// override function, letting a test dictate mp/ms directly instead of
// deriving a breakdown condition from a closed-form solve.
type stepPreconditioner struct {
	calls int
	steps []func(in, out *array1d.Array) error
}

func (p *stepPreconditioner) Apply(in, out *array1d.Array) error {
	p.calls++
	step := p.steps[len(p.steps)-1]
	if p.calls-1 < len(p.steps) {
		step = p.steps[p.calls-1]
	}

	return step(in, out)
}

func zeroOut(_, out *array1d.Array) error {
	blas1.Fill(out, 0)

	return nil
}

func copyIn(in, out *array1d.Array) error {
	return blas1.Copy(out, in)
}

func constantOut(vals []float64) func(in, out *array1d.Array) error {
	return func(_, out *array1d.Array) error {
		for i, v := range vals {
			if err := out.Set(i, v); err != nil {
				return err
			}
		}

		return nil
	}
}

func identityCsr(n int) *sparse.Csr {
	csr, err := sparse.NewCsr(space.Host, n, n, n)
	if err != nil {
		panic(err)
	}
	ro := csr.RowOffsets().Raw()
	ci := csr.ColIndices().Raw()
	vals := csr.Values().Raw()
	for i := 0; i < n; i++ {
		ro[i] = i
		ci[i] = i
		vals[i] = 1
	}
	ro[n] = n

	return csr
}

func TestBicgstabIdentityConvergesImmediately(t *testing.T) {
	A := identityCsr(4)
	b := array1d.NewFromSlice(space.Host, []float64{1, 2, 3, 4})
	x, err := array1d.NewSized(space.Host, 4)
	require.NoError(t, err)

	var log bytes.Buffer
	require.NoError(t, krylov.Bicgstab(A, x, b, krylov.WithVerbose(&log)))

	for i, want := range []float64{1, 2, 3, 4} {
		v, _ := x.At(i)
		require.InDelta(t, want, v, 1e-9)
	}
	require.Contains(t, log.String(), "converged")
}

func laplacian1D(n int) *sparse.Coo {
	var rows, cols []int
	var vals []float64
	for i := 0; i < n; i++ {
		rows = append(rows, i)
		cols = append(cols, i)
		vals = append(vals, 2)
		if i > 0 {
			rows = append(rows, i)
			cols = append(cols, i-1)
			vals = append(vals, -1)
		}
		if i < n-1 {
			rows = append(rows, i)
			cols = append(cols, i+1)
			vals = append(vals, -1)
		}
	}
	coo, err := sparse.NewCooFromTriplets(n, n, rows, cols, vals)
	if err != nil {
		panic(err)
	}

	return coo
}

func TestBicgstabTridiagonalLaplacian(t *testing.T) {
	n := 10
	A := laplacian1D(n)
	csr := &sparse.Csr{}
	require.NoError(t, sparse.Convert(csr, A))

	bRaw := make([]float64, n)
	for i := range bRaw {
		bRaw[i] = 1
	}
	b := array1d.NewFromSlice(space.Host, bRaw)
	x, err := array1d.NewSized(space.Host, n)
	require.NoError(t, err)

	require.NoError(t, krylov.Bicgstab(csr, x, b, krylov.WithStoppingCriteria(
		stopping.NewRelativeResidual(1e-10, 200),
	)))

	y, err := array1d.NewSized(space.Host, n)
	require.NoError(t, err)
	require.NoError(t, sparse.SpMV(csr, x, y))
	for i := 0; i < n; i++ {
		vy, _ := y.At(i)
		require.InDelta(t, bRaw[i], vy, 1e-6)
	}
}

// laplacian2D builds the n x n 5-point-stencil Laplacian of a side*side
// grid (n = side*side): 4 on the diagonal, -1 to each in-grid
// up/down/left/right neighbor.
func laplacian2D(side int) *sparse.Coo {
	n := side * side
	idx := func(i, j int) int { return i*side + j }

	var rows, cols []int
	var vals []float64
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			r := idx(i, j)
			rows = append(rows, r)
			cols = append(cols, r)
			vals = append(vals, 4)
			if i > 0 {
				rows = append(rows, r)
				cols = append(cols, idx(i-1, j))
				vals = append(vals, -1)
			}
			if i < side-1 {
				rows = append(rows, r)
				cols = append(cols, idx(i+1, j))
				vals = append(vals, -1)
			}
			if j > 0 {
				rows = append(rows, r)
				cols = append(cols, idx(i, j-1))
				vals = append(vals, -1)
			}
			if j < side-1 {
				rows = append(rows, r)
				cols = append(cols, idx(i, j+1))
				vals = append(vals, -1)
			}
		}
	}
	coo, err := sparse.NewCooFromTriplets(n, n, rows, cols, vals)
	if err != nil {
		panic(err)
	}

	return coo
}

func TestBicgstab2DLaplacianConvergesWithinIterationBudget(t *testing.T) {
	side := 64
	n := side * side
	csr := &sparse.Csr{}
	require.NoError(t, sparse.Convert(csr, laplacian2D(side)))

	bRaw := make([]float64, n)
	for i := range bRaw {
		bRaw[i] = 1
	}
	b := array1d.NewFromSlice(space.Host, bRaw)
	x, err := array1d.NewSized(space.Host, n)
	require.NoError(t, err)

	require.NoError(t, krylov.Bicgstab(csr, x, b, krylov.WithStoppingCriteria(
		stopping.NewRelativeResidual(1e-6, 200),
	)))

	y, err := array1d.NewSized(space.Host, n)
	require.NoError(t, err)
	require.NoError(t, sparse.SpMV(csr, x, y))

	var residualSq, bNormSq float64
	for i := 0; i < n; i++ {
		vy, _ := y.At(i)
		d := bRaw[i] - vy
		residualSq += d * d
		bNormSq += bRaw[i] * bRaw[i]
	}
	require.Less(t, residualSq, 1e-12*bNormSq)
}

func TestBicgstabAlphaBreakdown(t *testing.T) {
	// An Apply that always returns the zero vector forces amp = A*0 = 0,
	// zeroing rStarDotAmp (alpha's denominator) on the very first call.
	A := identityCsr(2)
	b := array1d.NewFromSlice(space.Host, []float64{1, 2})
	x, err := array1d.NewSized(space.Host, 2)
	require.NoError(t, err)

	precond := &stepPreconditioner{steps: []func(in, out *array1d.Array) error{zeroOut}}
	err = krylov.Bicgstab(A, x, b, krylov.WithPreconditioner(precond))

	var breakdown *krylov.BreakdownError
	require.ErrorAs(t, err, &breakdown)
	require.Equal(t, "alpha", breakdown.Stage)
	require.Equal(t, 0, breakdown.Iteration)
}

func TestBicgstabOmegaBreakdown(t *testing.T) {
	// With A = I and an identity first Apply, alpha = 1 and s = r - amp = 0
	// exactly. A second Apply that also returns zero then forces ams = 0,
	// zeroing amsDotAms (omega's denominator).
	A := identityCsr(2)
	b := array1d.NewFromSlice(space.Host, []float64{1, 2})
	x, err := array1d.NewSized(space.Host, 2)
	require.NoError(t, err)

	precond := &stepPreconditioner{steps: []func(in, out *array1d.Array) error{copyIn, zeroOut}}
	err = krylov.Bicgstab(A, x, b, krylov.WithPreconditioner(precond))

	var breakdown *krylov.BreakdownError
	require.ErrorAs(t, err, &breakdown)
	require.Equal(t, "omega", breakdown.Stage)
	require.Equal(t, 0, breakdown.Iteration)
}

func TestBicgstabBetaBreakdown(t *testing.T) {
	// As above, A = I and an identity first Apply drive s to exactly 0. A
	// second Apply returning a fixed nonzero vector gives ams != 0 (no
	// omega breakdown), but amsDotS = dot(ams, s) = dot(ams, 0) = 0, so
	// omega itself comes out 0 and the beta-stage division is refused.
	A := identityCsr(2)
	b := array1d.NewFromSlice(space.Host, []float64{1, 2})
	x, err := array1d.NewSized(space.Host, 2)
	require.NoError(t, err)

	precond := &stepPreconditioner{steps: []func(in, out *array1d.Array) error{
		copyIn, constantOut([]float64{1, 0}),
	}}
	err = krylov.Bicgstab(A, x, b, krylov.WithPreconditioner(precond))

	var breakdown *krylov.BreakdownError
	require.ErrorAs(t, err, &breakdown)
	require.Equal(t, "beta", breakdown.Stage)
	require.Equal(t, 0, breakdown.Iteration)
}

func TestBicgstabDetectsDivergedResidual(t *testing.T) {
	// An Apply returning +Inf poisons mp, amp and ams; omega = Inf/Inf comes
	// out NaN, and the r-update carries it into r, long before any
	// stopping.Criteria comparison would notice.
	A := identityCsr(2)
	b := array1d.NewFromSlice(space.Host, []float64{1, 2})
	x, err := array1d.NewSized(space.Host, 2)
	require.NoError(t, err)

	precond := &stepPreconditioner{steps: []func(in, out *array1d.Array) error{
		constantOut([]float64{math.Inf(1), math.Inf(1)}),
	}}
	err = krylov.Bicgstab(A, x, b, krylov.WithPreconditioner(precond))
	require.ErrorIs(t, err, krylov.ErrDiverged)
}

func TestBicgstabRejectsNonSquare(t *testing.T) {
	csr, err := sparse.NewCsr(space.Host, 2, 3, 0)
	require.NoError(t, err)
	x, _ := array1d.NewSized(space.Host, 3)
	b, _ := array1d.NewSized(space.Host, 2)
	require.ErrorIs(t, krylov.Bicgstab(csr, x, b), krylov.ErrNotSquare)
}
