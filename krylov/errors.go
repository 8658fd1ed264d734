package krylov

import (
	"errors"
	"fmt"
)

var (
	// ErrNotSquare indicates A.Rows() != A.Cols(); BiCGstab is only defined
	// for square systems.
	ErrNotSquare = errors.New("krylov: matrix must be square")

	// ErrShapeMismatch indicates x or b does not have length A.Rows().
	ErrShapeMismatch = errors.New("krylov: x/b length must equal A.Rows()")

	// ErrDiverged indicates the residual vector picked up a NaN or Inf
	// component, past the point where any stopping.Criteria comparison is
	// meaningful.
	ErrDiverged = errors.New("krylov: residual diverged to a non-finite value")
)

// BreakdownError reports that the BiCGstab recurrence hit a zero
// denominator and cannot continue. Stage names the step that broke down
// ("alpha", "omega", or "beta"); Iteration is the 0-based iteration count
// at the time of breakdown.
type BreakdownError struct {
	Stage     string
	Iteration int
}

// Error implements the error interface.
func (e *BreakdownError) Error() string {
	return fmt.Sprintf("krylov: bicgstab breakdown at %s (iteration %d)", e.Stage, e.Iteration)
}
