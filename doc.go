// Package cusplibrary is a sparse-matrix and iterative-solver toolkit:
// five sparse-matrix container formats (COO, CSR, ELL, DIA, HYB), lossless
// and density-gated conversion between them, per-format SpMV kernels on
// host and device memory spaces, and a preconditioned BiCGstab Krylov
// solver for non-symmetric linear systems.
//
// Package layout:
//
//	space/    — the Host/Device memory-space tag and its Allocator binding.
//	array1d/  — the resizable float64/int buffer every container owns.
//	blas1/    — fill, copy, axpy, axpby, axpbypcz, dotc, nrm2.
//	sparse/   — Coo, Csr, Dia, Ell, Hyb; Convert; SpMV/SpMVDevice.
//	stopping/ — convergence policies consulted by iterative solvers.
//	krylov/   — Bicgstab and its Preconditioner interface.
package cusplibrary
