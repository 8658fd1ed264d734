// Package blas1: the seven BLAS-1 primitives BiCGstab is built on.
//
// Implementation:
//   - Stage 1: validate operand shapes/spaces with the shared checkers.
//   - Stage 2: wrap the backing []float64 as a blas64.Vector (Inc=1, dense).
//   - Stage 3: delegate the reduction/elementwise work to gonum's blas64
//     (Fill, Axpbypcz and IsFinite are plain per-element loops).
//
// Every operation here requires its operands to reside in the same
// space.Space; space is checked, never coerced.
package blas1

import (
	"fmt"
	"math"

	"github.com/Bri9k/cusplibrary/array1d"
	"gonum.org/v1/gonum/blas/blas64"
)

func vec(a *array1d.Array) blas64.Vector {
	return blas64.Vector{N: a.Len(), Data: a.Raw(), Inc: 1}
}

// sameBacking reports whether a and b share the same backing array, the
// aliasing hazard that a multi-step blas64 composition cannot tolerate.
func sameBacking(a, b *array1d.Array) bool {
	ar, br := a.Raw(), b.Raw()

	return len(ar) > 0 && len(br) > 0 && &ar[0] == &br[0]
}

// checkConformable validates that operands share both length and space.
func checkConformable(op string, arrs ...*array1d.Array) error {
	if len(arrs) == 0 {
		return nil
	}
	n := arrs[0].Len()
	sp := arrs[0].Space()
	for _, a := range arrs[1:] {
		if a.Len() != n {
			return fmt.Errorf("blas1.%s: %w", op, ErrShapeMismatch)
		}
		if a.Space() != sp {
			return fmt.Errorf("blas1.%s: %w", op, ErrMemorySpaceMismatch)
		}
	}

	return nil
}

// Fill sets every element of a to v.
// Complexity: O(n).
func Fill(a *array1d.Array, v float64) {
	data := a.Raw()
	for i := range data {
		data[i] = v
	}
}

// Copy sets dst ← src. dst and src must be conformable.
// Complexity: O(n).
func Copy(dst, src *array1d.Array) error {
	if err := checkConformable("Copy", dst, src); err != nil {
		return err
	}
	blas64.Copy(vec(src), vec(dst))

	return nil
}

// Axpy computes y ← alpha*x + y in place. x and y must be conformable.
// Complexity: O(n).
func Axpy(alpha float64, x, y *array1d.Array) error {
	if err := checkConformable("Axpy", x, y); err != nil {
		return err
	}
	blas64.Axpy(alpha, vec(x), vec(y))

	return nil
}

// Axpby computes out ← alpha*x + beta*y via blas64.Copy+Scal+Axpy, like
// this package's other non-fused primitives. out must be conformable with
// x and y and must not alias either of them: Copy(y, out) runs first, so
// an out that aliases x would have x's values clobbered before the
// following Axpy reads them. Callers needing output/input aliasing (the
// BiCGstab p-recurrence) use Axpbypcz instead.
// Complexity: O(n).
func Axpby(x, y, out *array1d.Array, alpha, beta float64) error {
	if err := checkConformable("Axpby", x, y, out); err != nil {
		return err
	}
	if sameBacking(out, x) || sameBacking(out, y) {
		return fmt.Errorf("blas1.Axpby: %w", ErrAliasing)
	}
	blas64.Copy(vec(y), vec(out))
	blas64.Scal(beta, vec(out))
	blas64.Axpy(alpha, vec(x), vec(out))

	return nil
}

// Axpbypcz computes out ← alpha*x + beta*y + gamma*z, the fused triple-axpy
// BiCGstab's x-update and p-recurrence rely on. Unlike Axpby, out may alias
// any of x, y, z. All four operands must be conformable.
// Complexity: O(n).
func Axpbypcz(x, y, z, out *array1d.Array, alpha, beta, gamma float64) error {
	if err := checkConformable("Axpbypcz", x, y, z, out); err != nil {
		return err
	}
	xd, yd, zd, od := x.Raw(), y.Raw(), z.Raw(), out.Raw()
	for i := range od {
		od[i] = alpha*xd[i] + beta*yd[i] + gamma*zd[i]
	}

	return nil
}

// Dotc computes the conjugated inner product (x, y). Value is real-valued
// in this module, so Dotc reduces to the ordinary real dot product; the
// name is kept to mirror the conventional blas::dotc naming used by the
// BiCGstab recurrence that calls it.
// Complexity: O(n).
func Dotc(x, y *array1d.Array) (float64, error) {
	if err := checkConformable("Dotc", x, y); err != nil {
		return 0, err
	}

	return blas64.Dot(vec(x), vec(y)), nil
}

// Nrm2 computes the Euclidean norm ||x||_2.
// Complexity: O(n).
func Nrm2(x *array1d.Array) float64 {
	return blas64.Nrm2(vec(x))
}

// IsFinite reports whether every element of a is finite. krylov.Bicgstab
// calls this on the residual after every update to detect divergence
// before it reaches a stopping.Criteria comparison.
// Complexity: O(n).
func IsFinite(a *array1d.Array) bool {
	for _, v := range a.Raw() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
