// Package krylov implements Bicgstab, the stabilized biconjugate-gradient
// method for non-symmetric linear systems Ax = b.
//
// Implementation mirrors the classical unpreconditioned/preconditioned
// BiCGstab recurrence: two SpMV calls per iteration (one against the
// preconditioned search direction p, one against the preconditioned
// correction s), with alpha and omega chosen to minimize the residual
// along each half-step. The default IdentityPreconditioner recovers the
// unpreconditioned method; WithPreconditioner panics on a nil one.
package krylov
