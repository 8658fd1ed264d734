package krylov

import (
	"fmt"

	"github.com/Bri9k/cusplibrary/array1d"
	"github.com/Bri9k/cusplibrary/blas1"
	"github.com/Bri9k/cusplibrary/space"
	"github.com/Bri9k/cusplibrary/sparse"
)

// Bicgstab solves Ax = b for x in place using the stabilized biconjugate-
// gradient method. A must be square; x is both the initial guess on entry
// and the solution on return; b is read-only. All three operands must
// reside in the same memory space.
//
// Returns *BreakdownError if a recurrence denominator vanishes, or any
// error a SpMV/BLAS-1 call below it returns. A nil return means the
// configured stopping.Criteria reported convergence, or the iteration
// limit was reached — callers that need to distinguish those two outcomes
// should inspect the residual norm themselves (Nrm2 of r after the call
// is not retained here; re-run with WithVerbose to observe it, or compute
// ||b - A*x|| directly).
func Bicgstab(A sparse.Matrix, x, b *array1d.Array, opts ...Option) error {
	if A.Rows() != A.Cols() {
		return ErrNotSquare
	}
	n := A.Rows()
	if x.Len() != n || b.Len() != n {
		return ErrShapeMismatch
	}
	if x.Space() != b.Space() || x.Space() != A.Space() {
		return sparse.ErrMemorySpaceMismatch
	}

	o := gatherOptions(opts...)
	sp := A.Space()

	y, err := array1d.NewSized(sp, n)
	if err != nil {
		return err
	}
	p, err := array1d.NewSized(sp, n)
	if err != nil {
		return err
	}
	r, err := array1d.NewSized(sp, n)
	if err != nil {
		return err
	}
	rStar, err := array1d.NewSized(sp, n)
	if err != nil {
		return err
	}
	s, err := array1d.NewSized(sp, n)
	if err != nil {
		return err
	}
	mp, err := array1d.NewSized(sp, n)
	if err != nil {
		return err
	}
	amp, err := array1d.NewSized(sp, n)
	if err != nil {
		return err
	}
	ms, err := array1d.NewSized(sp, n)
	if err != nil {
		return err
	}
	ams, err := array1d.NewSized(sp, n)
	if err != nil {
		return err
	}

	if err := o.criteria.Initialize(x, b); err != nil {
		return fmt.Errorf("krylov.Bicgstab: %w", err)
	}

	spmv := sparse.SpMV
	if sp == space.Device {
		spmv = sparse.SpMVDevice
	}

	blas1.Fill(y, 0)
	if err := spmv(A, x, y); err != nil {
		return fmt.Errorf("krylov.Bicgstab: %w", err)
	}
	// r <- b - A*x
	if err := blas1.Axpby(b, y, r, 1, -1); err != nil {
		return fmt.Errorf("krylov.Bicgstab: %w", err)
	}
	if err := blas1.Copy(p, r); err != nil {
		return err
	}
	if err := blas1.Copy(rStar, r); err != nil {
		return err
	}

	if !blas1.IsFinite(r) {
		return fmt.Errorf("krylov.Bicgstab: %w", ErrDiverged)
	}
	rNorm := blas1.Nrm2(r)
	rDotRStarOld, err := blas1.Dotc(rStar, r)
	if err != nil {
		return err
	}

	if o.verbose != nil {
		fmt.Fprintf(o.verbose, "bicgstab: initial residual norm %g\n", rNorm)
	}

	iteration := 0
	for {
		if o.criteria.HasConverged(rNorm) {
			if o.verbose != nil {
				fmt.Fprintf(o.verbose, "bicgstab: converged in %d iterations (residual %g)\n", iteration, rNorm)
			}

			return nil
		}
		if o.criteria.HasReachedIterationLimit(iteration) {
			if o.verbose != nil {
				fmt.Fprintf(o.verbose, "bicgstab: failed to converge within %d iterations (residual %g)\n", iteration, rNorm)
			}

			return nil
		}

		if err := o.preconditioner.Apply(p, mp); err != nil {
			return fmt.Errorf("krylov.Bicgstab: %w", err)
		}
		blas1.Fill(amp, 0)
		if err := spmv(A, mp, amp); err != nil {
			return fmt.Errorf("krylov.Bicgstab: %w", err)
		}

		rStarDotAmp, err := blas1.Dotc(rStar, amp)
		if err != nil {
			return err
		}
		if rStarDotAmp == 0 {
			return &BreakdownError{Stage: "alpha", Iteration: iteration}
		}
		alpha := rDotRStarOld / rStarDotAmp

		// s <- r - alpha*AMp
		if err := blas1.Axpby(r, amp, s, 1, -alpha); err != nil {
			return err
		}

		if err := o.preconditioner.Apply(s, ms); err != nil {
			return fmt.Errorf("krylov.Bicgstab: %w", err)
		}
		blas1.Fill(ams, 0)
		if err := spmv(A, ms, ams); err != nil {
			return fmt.Errorf("krylov.Bicgstab: %w", err)
		}

		amsDotAms, err := blas1.Dotc(ams, ams)
		if err != nil {
			return err
		}
		if amsDotAms == 0 {
			return &BreakdownError{Stage: "omega", Iteration: iteration}
		}
		amsDotS, err := blas1.Dotc(ams, s)
		if err != nil {
			return err
		}
		omega := amsDotS / amsDotAms

		// x <- x + alpha*Mp + omega*Ms
		if err := blas1.Axpbypcz(x, mp, ms, x, 1, alpha, omega); err != nil {
			return err
		}
		// r <- s - omega*AMs
		if err := blas1.Axpby(s, ams, r, 1, -omega); err != nil {
			return err
		}

		rDotRStarNew, err := blas1.Dotc(rStar, r)
		if err != nil {
			return err
		}
		if rDotRStarOld == 0 || omega == 0 {
			return &BreakdownError{Stage: "beta", Iteration: iteration}
		}
		beta := (rDotRStarNew / rDotRStarOld) * (alpha / omega)
		rDotRStarOld = rDotRStarNew

		// p <- r + beta*(p - omega*AMp)
		if err := blas1.Axpbypcz(r, p, amp, p, 1, beta, -beta*omega); err != nil {
			return err
		}

		if !blas1.IsFinite(r) {
			return fmt.Errorf("krylov.Bicgstab: %w", ErrDiverged)
		}
		rNorm = blas1.Nrm2(r)
		iteration++
	}
}
