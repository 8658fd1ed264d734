// Package sparse: the common Matrix interface every format satisfies.
package sparse

import "github.com/Bri9k/cusplibrary/space"

// Matrix is the shape-level capability shared by every sparse-matrix
// format. Format-specific storage (index/value arrays) is reached through
// the concrete type, not through this interface — Convert and SpMV type-
// switch on the concrete type to pick the right kernel, matching Design
// Note 1's "closed set of tagged variants ... dispatch table per
// operation".
type Matrix interface {
	Rows() int
	Cols() int
	NumEntries() int
	Space() space.Space
}

var (
	_ Matrix = (*Coo)(nil)
	_ Matrix = (*Csr)(nil)
	_ Matrix = (*Dia)(nil)
	_ Matrix = (*Ell)(nil)
	_ Matrix = (*Hyb)(nil)
)
