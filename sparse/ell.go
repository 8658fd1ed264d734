// Package sparse: Ell, the ELLPACK format.
//
// Storage: a fixed maximum of E entries per row, colIndices[stride*E] and
// values[stride*E], column-major. Invariants: stride >= num_rows; rows with
// fewer than E nonzeros padded with SentinelColumn and value 0.
package sparse

import (
	"fmt"

	"github.com/Bri9k/cusplibrary/array1d"
	"github.com/Bri9k/cusplibrary/space"
)

// SentinelColumn marks an unused ELL slot.
const SentinelColumn = -1

// Ell is the ELLPACK sparse-matrix format.
type Ell struct {
	shape
	sp          space.Space
	colIndices  *array1d.IntArray // length stride*E, column-major
	values      *array1d.Array    // length stride*E, column-major
	stride      int               // leading dimension, >= rows
	maxPerRow   int               // E
}

// NewEll allocates an Ell with capacity maxPerRow slots per row and the
// given stride (must be >= rows). All slots start sentinel/zero.
func NewEll(sp space.Space, rows, cols, maxPerRow, stride int) (*Ell, error) {
	if stride < rows {
		return nil, fmt.Errorf("sparse.NewEll: stride %d < rows %d: %w", stride, rows, ErrInvalidDimensions)
	}
	if err := validateShape(rows, cols, stride*maxPerRow); err != nil {
		return nil, err
	}
	ci, err := array1d.NewIntSized(sp, stride*maxPerRow)
	if err != nil {
		return nil, err
	}
	val, err := array1d.NewSized(sp, stride*maxPerRow)
	if err != nil {
		return nil, err
	}
	for i := range ci.Raw() {
		ci.Raw()[i] = SentinelColumn
	}

	return &Ell{
		shape:     shape{rows: rows, cols: cols, entries: stride * maxPerRow},
		sp:        sp,
		colIndices: ci,
		values:    val,
		stride:    stride,
		maxPerRow: maxPerRow,
	}, nil
}

// Space reports the residence of this matrix's arrays.
func (m *Ell) Space() space.Space { return m.sp }

// ColIndices exposes the column-major column-index matrix.
func (m *Ell) ColIndices() *array1d.IntArray { return m.colIndices }

// Values exposes the column-major value matrix.
func (m *Ell) Values() *array1d.Array { return m.values }

// Stride returns the leading dimension of the value/index matrices.
func (m *Ell) Stride() int { return m.stride }

// MaxPerRow returns E, the fixed per-row slot capacity.
func (m *Ell) MaxPerRow() int { return m.maxPerRow }

// SlotColumn returns the column stored in slot k of row i, or
// SentinelColumn if the slot is unused.
func (m *Ell) SlotColumn(k, i int) (int, error) {
	if k < 0 || k >= m.maxPerRow || i < 0 || i >= m.stride {
		return 0, fmt.Errorf("sparse.Ell.SlotColumn(%d,%d): %w", k, i, ErrIndexOutOfBounds)
	}

	return m.colIndices.At(k*m.stride + i)
}

// SetSlot stores (col, val) in slot k of row i.
func (m *Ell) SetSlot(k, i, col int, val float64) error {
	if k < 0 || k >= m.maxPerRow || i < 0 || i >= m.stride {
		return fmt.Errorf("sparse.Ell.SetSlot(%d,%d): %w", k, i, ErrIndexOutOfBounds)
	}
	if err := m.colIndices.Set(k*m.stride+i, col); err != nil {
		return err
	}

	return m.values.Set(k*m.stride+i, val)
}

// Resize reallocates to a new shape/capacity, preserving no content.
func (m *Ell) Resize(rows, cols, maxPerRow, stride int) error {
	fresh, err := NewEll(m.sp, rows, cols, maxPerRow, stride)
	if err != nil {
		return err
	}
	*m = *fresh

	return nil
}

// Swap exchanges ownership of two Ell instances in O(1).
func (m *Ell) Swap(other *Ell) {
	m.shape, other.shape = other.shape, m.shape
	m.sp, other.sp = other.sp, m.sp
	m.stride, other.stride = other.stride, m.stride
	m.maxPerRow, other.maxPerRow = other.maxPerRow, m.maxPerRow
	m.colIndices.Swap(other.colIndices)
	m.values.Swap(other.values)
}

// Clone returns a deep, independent copy resident in dstSpace.
func (m *Ell) Clone(dstSpace space.Space) *Ell {
	return &Ell{
		shape:      m.shape,
		sp:         dstSpace,
		colIndices: m.colIndices.CopyTo(dstSpace),
		values:     m.values.CopyTo(dstSpace),
		stride:     m.stride,
		maxPerRow:  m.maxPerRow,
	}
}
