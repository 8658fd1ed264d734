package stopping

import (
	"fmt"

	"github.com/Bri9k/cusplibrary/array1d"
	"github.com/Bri9k/cusplibrary/blas1"
)

// Criteria decides, on every iteration of an iterative solver, whether to
// stop. Initialize is called once before the first iteration; HasConverged
// and HasReachedIterationLimit are consulted at the top of every
// subsequent iteration.
type Criteria interface {
	// Initialize captures whatever state the policy needs from the
	// right-hand side b (and, for policies that need it, the initial
	// guess x) before the first residual norm is known.
	Initialize(x, b *array1d.Array) error

	// HasConverged reports whether residualNorm (the caller's ||r||)
	// satisfies this policy's convergence test.
	HasConverged(residualNorm float64) bool

	// HasReachedIterationLimit reports whether iteration (0-based, the
	// count of iterations already completed) has exhausted this policy's
	// budget.
	HasReachedIterationLimit(iteration int) bool
}

// DefaultTolerance is the relative-residual tolerance RelativeResidual uses
// when constructed with NewRelativeResidual's zero value for tol.
const DefaultTolerance = 1e-6

// DefaultMaxIterations bounds the iteration count RelativeResidual permits
// when constructed with NewRelativeResidual's zero value for maxIterations.
const DefaultMaxIterations = 500

// RelativeResidual stops when ||r|| / ||b|| < tolerance, or after
// maxIterations iterations, whichever comes first. When b is the zero
// vector, the ratio is replaced by the absolute residual norm to avoid a
// 0/0 comparison.
type RelativeResidual struct {
	tolerance     float64
	maxIterations int
	bNorm         float64
}

// NewRelativeResidual constructs a RelativeResidual policy. A tolerance <=
// 0 or a maxIterations <= 0 is replaced by DefaultTolerance /
// DefaultMaxIterations respectively.
func NewRelativeResidual(tolerance float64, maxIterations int) *RelativeResidual {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}

	return &RelativeResidual{tolerance: tolerance, maxIterations: maxIterations}
}

// Initialize records ||b|| as the denominator future HasConverged calls
// divide by.
func (c *RelativeResidual) Initialize(x, b *array1d.Array) error {
	if x.Space() != b.Space() {
		return fmt.Errorf("stopping.RelativeResidual.Initialize: %w", ErrSpaceMismatch)
	}
	c.bNorm = blas1.Nrm2(b)

	return nil
}

// HasConverged reports whether residualNorm / ||b|| < tolerance (or,
// when ||b|| is zero, whether residualNorm itself is below tolerance).
func (c *RelativeResidual) HasConverged(residualNorm float64) bool {
	if c.bNorm == 0 {
		return residualNorm < c.tolerance
	}

	return residualNorm/c.bNorm < c.tolerance
}

// HasReachedIterationLimit reports whether iteration has reached the
// configured budget.
func (c *RelativeResidual) HasReachedIterationLimit(iteration int) bool {
	return iteration >= c.maxIterations
}
