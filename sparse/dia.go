// Package sparse: Dia, the diagonal format.
//
// Storage: diagonalOffsets[D] and a dense stride x D values matrix, column-
// major over diagonals (column k holds diagonal diagonalOffsets[k]).
// Invariants: offsets unique and sorted; stride >= num_rows; off-matrix
// padding positions carry an explicit zero and are ignored by SpMV.
package sparse

import (
	"fmt"

	"github.com/Bri9k/cusplibrary/array1d"
	"github.com/Bri9k/cusplibrary/space"
)

// Dia is the diagonal sparse-matrix format.
type Dia struct {
	shape
	sp       space.Space
	offsets  *array1d.IntArray // length D, unique & sorted
	values   *array1d.Array    // length stride*D, column-major
	stride   int               // leading dimension, >= rows
	numDiags int               // D
}

// NewDia allocates a zero-valued Dia with numDiags diagonals and the given
// stride (must be >= rows). num_entries is tracked as stride*numDiags per
// num_entries may exceed the true nonzero count due to padding.
func NewDia(sp space.Space, rows, cols, numDiags, stride int) (*Dia, error) {
	if stride < rows {
		return nil, fmt.Errorf("sparse.NewDia: stride %d < rows %d: %w", stride, rows, ErrInvalidDimensions)
	}
	if err := validateShape(rows, cols, stride*numDiags); err != nil {
		return nil, err
	}
	off, err := array1d.NewIntSized(sp, numDiags)
	if err != nil {
		return nil, err
	}
	val, err := array1d.NewSized(sp, stride*numDiags)
	if err != nil {
		return nil, err
	}

	return &Dia{
		shape:    shape{rows: rows, cols: cols, entries: stride * numDiags},
		sp:       sp,
		offsets:  off,
		values:   val,
		stride:   stride,
		numDiags: numDiags,
	}, nil
}

// Space reports the residence of this matrix's arrays.
func (m *Dia) Space() space.Space { return m.sp }

// Offsets exposes the diagonal-offset array.
func (m *Dia) Offsets() *array1d.IntArray { return m.offsets }

// Values exposes the column-major value matrix.
func (m *Dia) Values() *array1d.Array { return m.values }

// Stride returns the leading dimension of the value matrix.
func (m *Dia) Stride() int { return m.stride }

// NumDiagonals returns D, the number of stored diagonals.
func (m *Dia) NumDiagonals() int { return m.numDiags }

// At returns the stored value for diagonal k at row i (column-major offset
// k*stride + i), or ErrIndexOutOfBounds.
func (m *Dia) At(k, i int) (float64, error) {
	if k < 0 || k >= m.numDiags || i < 0 || i >= m.stride {
		return 0, fmt.Errorf("sparse.Dia.At(%d,%d): %w", k, i, ErrIndexOutOfBounds)
	}

	return m.values.At(k*m.stride + i)
}

// Set stores v for diagonal k at row i.
func (m *Dia) Set(k, i int, v float64) error {
	if k < 0 || k >= m.numDiags || i < 0 || i >= m.stride {
		return fmt.Errorf("sparse.Dia.Set(%d,%d): %w", k, i, ErrIndexOutOfBounds)
	}

	return m.values.Set(k*m.stride+i, v)
}

// Resize reallocates to rows x cols with numDiags diagonals and the given
// stride (must be >= rows), preserving no content: offsets and values come
// back zero-filled.
func (m *Dia) Resize(rows, cols, numDiags, stride int) error {
	if stride < rows {
		return fmt.Errorf("sparse.Dia.Resize: stride %d < rows %d: %w", stride, rows, ErrInvalidDimensions)
	}
	if err := validateShape(rows, cols, stride*numDiags); err != nil {
		return err
	}
	off, err := array1d.NewIntSized(m.sp, numDiags)
	if err != nil {
		return err
	}
	val, err := array1d.NewSized(m.sp, stride*numDiags)
	if err != nil {
		return err
	}
	m.shape = shape{rows: rows, cols: cols, entries: stride * numDiags}
	m.offsets, m.values, m.stride, m.numDiags = off, val, stride, numDiags

	return nil
}

// Swap exchanges ownership of two Dia instances in O(1).
func (m *Dia) Swap(other *Dia) {
	m.shape, other.shape = other.shape, m.shape
	m.sp, other.sp = other.sp, m.sp
	m.stride, other.stride = other.stride, m.stride
	m.numDiags, other.numDiags = other.numDiags, m.numDiags
	m.offsets.Swap(other.offsets)
	m.values.Swap(other.values)
}

// Clone returns a deep, independent copy resident in dstSpace.
func (m *Dia) Clone(dstSpace space.Space) *Dia {
	return &Dia{
		shape:    m.shape,
		sp:       dstSpace,
		offsets:  m.offsets.CopyTo(dstSpace),
		values:   m.values.CopyTo(dstSpace),
		stride:   m.stride,
		numDiags: m.numDiags,
	}
}
