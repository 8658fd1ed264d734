// Package array1d: sentinel error set.
package array1d

import "errors"

var (
	// ErrOutOfRange indicates that an index passed to At/Set lies outside
	// [0, Len()).
	ErrOutOfRange = errors.New("array1d: index out of range")

	// ErrNegativeLength indicates a negative length was requested from a
	// constructor or Resize.
	ErrNegativeLength = errors.New("array1d: negative length")
)
