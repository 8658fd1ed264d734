// Package array1d: IntArray, the index-typed counterpart of Array.
//
// Every sparse-matrix format stores both value arrays (float64) and index
// arrays (row offsets, column indices, diagonal offsets). The C++ reference
// templates array1d on IndexType and ValueType identically; since this
// This module fixes Index = int; IntArray is a second concrete
// instantiation of the same array1d<T,Space> shape rather than a generic
// type — consistent with the "closed set of tagged variants" re-design.
package array1d

import (
	"fmt"

	"github.com/Bri9k/cusplibrary/space"
)

// IntArray is the index-typed analogue of Array: a contiguous, resizable
// buffer of int resident in a single space.Space.
type IntArray struct {
	space space.Space
	data  []int
}

// NewIntSized returns a zero-valued IntArray of length n resident in sp.
// Complexity: O(n).
func NewIntSized(sp space.Space, n int) (*IntArray, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}

	return &IntArray{space: sp, data: make([]int, n)}, nil
}

// NewIntFromSlice copies src into a fresh IntArray resident in sp.
// Complexity: O(len(src)).
func NewIntFromSlice(sp space.Space, src []int) *IntArray {
	dst := make([]int, len(src))
	copy(dst, src)

	return &IntArray{space: sp, data: dst}
}

// Space reports the residence of the buffer.
func (a *IntArray) Space() space.Space { return a.space }

// Len reports the current logical length.
func (a *IntArray) Len() int { return len(a.data) }

// Raw exposes the backing slice directly for kernels.
func (a *IntArray) Raw() []int { return a.data }

// At returns the value at index i, or ErrOutOfRange.
func (a *IntArray) At(i int) (int, error) {
	if i < 0 || i >= len(a.data) {
		return 0, fmt.Errorf("array1d.IntArray.At(%d): %w", i, ErrOutOfRange)
	}

	return a.data[i], nil
}

// Set stores v at index i, or returns ErrOutOfRange.
func (a *IntArray) Set(i int, v int) error {
	if i < 0 || i >= len(a.data) {
		return fmt.Errorf("array1d.IntArray.Set(%d): %w", i, ErrOutOfRange)
	}
	a.data[i] = v

	return nil
}

// Resize changes the logical length to n, preserving no content.
func (a *IntArray) Resize(n int) error {
	if n < 0 {
		return ErrNegativeLength
	}
	a.data = make([]int, n)

	return nil
}

// Swap exchanges ownership of the backing slice (and space tag) in O(1).
func (a *IntArray) Swap(other *IntArray) {
	a.space, other.space = other.space, a.space
	a.data, other.data = other.data, a.data
}

// Clone returns a deep, independent copy resident in the same space.
func (a *IntArray) Clone() *IntArray {
	return NewIntFromSlice(a.space, a.data)
}

// CopyTo returns a deep copy of a resident in dstSpace.
func (a *IntArray) CopyTo(dstSpace space.Space) *IntArray {
	return NewIntFromSlice(dstSpace, a.data)
}
