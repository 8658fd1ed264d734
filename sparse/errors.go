// Package sparse: sentinel error set. Every algorithm in this package MUST
// return these sentinels (wrapped with context via fmt.Errorf("...: %w", ...)
// at the call site); tests MUST match them with errors.Is. Panics are
// reserved for programmer errors (invalid enum values internal to this
// package), never for user-triggered conditions.
package sparse

import "errors"

var (
	// ErrShapeMismatch indicates incompatible dimensions between operands
	// of SpMV or conversion.
	ErrShapeMismatch = errors.New("sparse: shape mismatch")

	// ErrMemorySpaceMismatch indicates operands of SpMV are not co-resident.
	ErrMemorySpaceMismatch = errors.New("sparse: memory space mismatch")

	// ErrAliasing indicates x and y alias the same backing buffer in a call
	// to SpMV, which is disallowed.
	ErrAliasing = errors.New("sparse: x and y must not alias")

	// ErrInvalidDimensions indicates a negative or otherwise nonsensical
	// shape was requested from a constructor or Resize.
	ErrInvalidDimensions = errors.New("sparse: invalid dimensions")

	// ErrUnsortedCOO indicates COO entries passed to
	// NewCooFromSortedTriplets were not in strictly increasing
	// lexicographic (row, column) order.
	ErrUnsortedCOO = errors.New("sparse: COO entries out of order")

	// ErrDuplicateEntry indicates two entries share the same (row, column)
	// coordinate, violating the no-duplicates invariant of §3.
	ErrDuplicateEntry = errors.New("sparse: duplicate (row, column) entry")

	// ErrIndexOutOfBounds indicates a row or column index lies outside the
	// matrix's declared shape.
	ErrIndexOutOfBounds = errors.New("sparse: index out of bounds")

	// ErrFormatConversionNotBanded signals DIA conversion was refused
	// because the input has too many distinct diagonals relative to its
	// shape to benefit from diagonal storage.
	ErrFormatConversionNotBanded = errors.New("sparse: matrix is not banded enough for DIA")

	// ErrFormatConversionTooRagged signals ELL conversion was refused
	// because the maximum row length is too large relative to the average,
	// which would cause pathological padding.
	ErrFormatConversionTooRagged = errors.New("sparse: row-length distribution too ragged for ELL")

	// ErrUnsupportedConversion indicates the (src, dst) format pair has no
	// defined conversion path.
	ErrUnsupportedConversion = errors.New("sparse: unsupported format conversion")
)

// FormatConversionError wraps one of the two conversion-refusal sentinels
// above with the measurement that triggered the refusal, so callers can log
// or tune thresholds without re-deriving the statistic.
type FormatConversionError struct {
	// Reason is ErrFormatConversionNotBanded or ErrFormatConversionTooRagged.
	Reason error

	// Measured is the statistic that exceeded the threshold (distinct
	// diagonal count for DIA, max-row-length for ELL).
	Measured float64

	// Threshold is the configured limit that was exceeded.
	Threshold float64
}

// Error implements the error interface.
func (e *FormatConversionError) Error() string {
	return e.Reason.Error()
}

// Unwrap lets errors.Is(err, ErrFormatConversionNotBanded) and similar match
// through the wrapper.
func (e *FormatConversionError) Unwrap() error {
	return e.Reason
}
