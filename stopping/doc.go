// Package stopping defines the convergence policy a Krylov solver consults
// every iteration: whether the current residual is small enough to stop,
// and whether the iteration budget has run out regardless.
//
// Implementation note: Initialize captures ||b|| once, up front, rather
// than recomputing it on every call to HasConverged —
// the relative-residual policy needs it as a fixed denominator for the
// life of the solve.
package stopping
