// Package blas1 provides the seven BLAS-1 primitives every Krylov solver in
// this module is built from: fill, copy, axpy, axpby, axpbypcz, dotc, and
// nrm2 over array1d.Array operands.
//
// The reductions (Dot, Nrm2) and Copy/Axpy/Axpby delegate to gonum's
// blas64 package, composing Copy+Scal+Axpy where more than one blas64 call
// is needed. Axpbypcz alone is a fused per-element loop rather than a
// blas64 composition: BiCGstab's p-recurrence calls it with the output
// aliasing one of the inputs, which a multi-step blas64 composition cannot
// tolerate.
package blas1
