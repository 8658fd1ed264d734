// Package sparse implements the sparse-matrix runtime: the five container
// formats (COO, CSR, ELL, DIA, HYB), the conversions between them, and the
// per-format SpMV kernels, host and device.
//
// The sparse package provides:
//
//   - Coo, Csr, Ell, Dia, Hyb — the five formats, each a shape record plus
//     owned index/value arrays, composed rather than inherited.
//   - Convert(dst, src) — the hub-and-spoke conversion graph, with Coo and
//     Csr as hubs.
//   - SpMV(A, x, y) — y ← A·x, dispatching on A's concrete format, with
//     A, x and y required to share one space.Space; SpMVDevice is the
//     worker-pool variant for Device operands.
//   - FormatConversionError, carrying the reason a density/bandedness
//     threshold was violated.
//
// A format's zero value owns no arrays and is usable only as a Convert
// destination (resident in space.Host); otherwise use the New* constructors. Once
// constructed, a format owns its arrays exclusively — no aliasing between
// two containers is permitted.
package sparse
