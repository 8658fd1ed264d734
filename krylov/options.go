// Package krylov: functional configuration for Bicgstab.
package krylov

import (
	"io"

	"github.com/Bri9k/cusplibrary/stopping"
)

const (
	panicNilCriteria       = "krylov: WithStoppingCriteria: criteria must not be nil"
	panicNilPreconditioner = "krylov: WithPreconditioner: preconditioner must not be nil"
	panicNilWriter         = "krylov: WithVerbose: writer must not be nil"
)

// Option configures a Bicgstab solve.
type Option func(*options)

type options struct {
	criteria       stopping.Criteria
	preconditioner Preconditioner
	verbose        io.Writer
}

// WithStoppingCriteria overrides the default stopping.RelativeResidual
// policy. Panics if criteria is nil.
func WithStoppingCriteria(criteria stopping.Criteria) Option {
	if criteria == nil {
		panic(panicNilCriteria)
	}

	return func(o *options) { o.criteria = criteria }
}

// WithPreconditioner overrides the default IdentityPreconditioner. Panics
// if preconditioner is nil.
func WithPreconditioner(preconditioner Preconditioner) Option {
	if preconditioner == nil {
		panic(panicNilPreconditioner)
	}

	return func(o *options) { o.preconditioner = preconditioner }
}

// WithVerbose directs per-iteration progress logging to w. Panics if w is
// nil.
func WithVerbose(w io.Writer) Option {
	if w == nil {
		panic(panicNilWriter)
	}

	return func(o *options) { o.verbose = w }
}

func gatherOptions(opts ...Option) options {
	o := options{
		criteria:       stopping.NewRelativeResidual(stopping.DefaultTolerance, stopping.DefaultMaxIterations),
		preconditioner: IdentityPreconditioner{},
	}
	for _, set := range opts {
		set(&o)
	}

	return o
}
