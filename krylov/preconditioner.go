package krylov

import (
	"github.com/Bri9k/cusplibrary/array1d"
	"github.com/Bri9k/cusplibrary/blas1"
)

// Preconditioner applies an approximation M^-1 to a vector, the "M" in the
// preconditioned recurrences x += alpha*M*p + omega*M*s. Apply must not
// alias in and out.
type Preconditioner interface {
	Apply(in, out *array1d.Array) error
}

// IdentityPreconditioner is the M = I preconditioner: Apply copies in to
// out unchanged, recovering the unpreconditioned method.
type IdentityPreconditioner struct{}

// Apply copies in into out.
func (IdentityPreconditioner) Apply(in, out *array1d.Array) error {
	return blas1.Copy(out, in)
}
