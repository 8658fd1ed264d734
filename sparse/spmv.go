// Package sparse: SpMV, the dense-vector multiply every format implements
// with its own memory-access pattern.
//
// Every kernel shares the same contract: y := A*x, with A, x and y resident
// in the same space, |x| = A.Cols(), |y| = A.Rows(), and x/y not aliasing
// the same backing array. SpMV walks rows in a single goroutine; SpMVDevice
// is the Device-space entry point, which partitions CSR and ELL rows across
// a worker pool.
package sparse

import (
	"fmt"

	"github.com/Bri9k/cusplibrary/array1d"
)

// SpMV computes y := A*x using the kernel appropriate to A's concrete
// format. A, x and y must share one space (Host or Device), and x and y
// must be correctly shaped and non-aliasing; A may be any format. SpMV
// always runs the sequential kernel; it does not call SpMVDevice.
func SpMV(A Matrix, x, y *array1d.Array) error {
	if x.Raw() != nil && y.Raw() != nil && len(x.Raw()) > 0 && len(y.Raw()) > 0 && &x.Raw()[0] == &y.Raw()[0] {
		return ErrAliasing
	}
	if x.Space() != y.Space() || x.Space() != A.Space() {
		return ErrMemorySpaceMismatch
	}
	if err := checkSpmvShapes(A.Rows(), A.Cols(), x.Len(), y.Len()); err != nil {
		return err
	}

	switch m := A.(type) {
	case *Coo:
		return spmvCoo(m, x, y)
	case *Csr:
		return spmvCsr(m, x, y)
	case *Dia:
		return spmvDia(m, x, y)
	case *Ell:
		return spmvEll(m, x, y)
	case *Hyb:
		return spmvHyb(m, x, y)
	default:
		return fmt.Errorf("sparse.SpMV: %w", ErrUnsupportedConversion)
	}
}
