// Package array1d: Array construction and element access.
//
// Purpose:
//   - Provide a contiguous, resizable float64 buffer parameterized by a
//     space.Space tag.
//   - Guarantee safety at the public surface: At/Set return errors instead
//     of panicking on bad indices.
//   - Centralize cross-space transfer in one place (CopyTo) so sparse
//     formats never reach into allocator details directly.
//
// Complexity quicksheet:
//   - New/NewSized: O(n); At/Set: O(1); Resize: O(n); Swap: O(1); CopyTo: O(n).
package array1d

import (
	"fmt"

	"github.com/Bri9k/cusplibrary/space"
)

// Array is a one-dimensional, contiguous buffer of float64 resident in a
// single space.Space. It owns its backing slice exclusively; no aliasing
// between two Arrays is permitted once construction returns.
type Array struct {
	space space.Space
	data  []float64
}

// New returns an empty Array (length 0) resident in sp.
// Complexity: O(1).
func New(sp space.Space) *Array {
	return &Array{space: sp, data: space.AllocatorFor(sp).Alloc(0)}
}

// NewSized returns a zero-valued Array of length n resident in sp.
// Returns ErrNegativeLength if n < 0.
// Complexity: O(n).
func NewSized(sp space.Space, n int) (*Array, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}

	return &Array{space: sp, data: space.AllocatorFor(sp).Alloc(n)}, nil
}

// NewFromSlice copies src into a fresh Array resident in sp. src may itself
// have originated in any space; this is the "range construct from iterators
// of possibly-different space", specialized to Go slices.
// Complexity: O(len(src)).
func NewFromSlice(sp space.Space, src []float64) *Array {
	dst := space.AllocatorFor(sp).Alloc(len(src))
	copy(dst, src)

	return &Array{space: sp, data: dst}
}

// Space reports the residence of the buffer.
func (a *Array) Space() space.Space { return a.space }

// Len reports the current logical length.
// Complexity: O(1).
func (a *Array) Len() int { return len(a.data) }

// Raw exposes the backing slice for kernels that need direct access
// (SpMV, BLAS-1). Callers in the same space may read/write through it;
// callers must not retain it past a Resize or Swap, which may reallocate.
func (a *Array) Raw() []float64 { return a.data }

// At returns the value at index i, or ErrOutOfRange.
// Complexity: O(1).
func (a *Array) At(i int) (float64, error) {
	if i < 0 || i >= len(a.data) {
		return 0, fmt.Errorf("array1d.At(%d): %w", i, ErrOutOfRange)
	}

	return a.data[i], nil
}

// Set stores v at index i, or returns ErrOutOfRange.
// Complexity: O(1).
func (a *Array) Set(i int, v float64) error {
	if i < 0 || i >= len(a.data) {
		return fmt.Errorf("array1d.Set(%d): %w", i, ErrOutOfRange)
	}
	a.data[i] = v

	return nil
}

// Resize changes the logical length to n, preserving no content: the
// backing slice may be reallocated, and any previously read Raw() pointer
// must be treated as invalid afterward. Returns ErrNegativeLength if n < 0.
// Complexity: O(n).
func (a *Array) Resize(n int) error {
	if n < 0 {
		return ErrNegativeLength
	}
	a.data = space.AllocatorFor(a.space).Alloc(n)

	return nil
}

// Swap exchanges ownership of the backing slice (and space tag) between a
// and other in O(1) — no data is copied.
func (a *Array) Swap(other *Array) {
	a.space, other.space = other.space, a.space
	a.data, other.data = other.data, a.data
}

// Clone returns a deep, independent copy resident in the same space.
// Complexity: O(n).
func (a *Array) Clone() *Array {
	return NewFromSlice(a.space, a.data)
}

// CopyTo returns a deep copy of a resident in dstSpace. When dstSpace equals
// a.Space() this degenerates to an ordinary copy; otherwise it performs the
// single bulk cross-space transfer that every sparse format's copy
// constructor defers to.
// Complexity: O(n).
func (a *Array) CopyTo(dstSpace space.Space) *Array {
	return &Array{space: dstSpace, data: space.AllocatorFor(dstSpace).Transfer(a.data)}
}
