// Package sparse: Csr, the compressed-sparse-row format and the second of
// the two conversion hubs.
//
// Storage: rowOffsets[num_rows+1], colIndices[num_entries], values[num_entries].
// Invariants: rowOffsets[0]=0, rowOffsets[num_rows]=num_entries, monotone
// non-decreasing; within each row, columns strictly increasing; no
// duplicates.
package sparse

import (
	"fmt"

	"github.com/Bri9k/cusplibrary/array1d"
	"github.com/Bri9k/cusplibrary/space"
)

// Csr is the compressed-sparse-row format.
type Csr struct {
	shape
	sp         space.Space
	rowOffsets *array1d.IntArray
	colIndices *array1d.IntArray
	values     *array1d.Array
}

// NewCsr allocates an empty-valued Csr: rowOffsets sized num_rows+1 (zeroed,
// so callers must populate it before use), colIndices/values sized
// num_entries.
func NewCsr(sp space.Space, rows, cols, entries int) (*Csr, error) {
	if err := validateShape(rows, cols, entries); err != nil {
		return nil, err
	}
	ro, err := array1d.NewIntSized(sp, rows+1)
	if err != nil {
		return nil, err
	}
	ci, err := array1d.NewIntSized(sp, entries)
	if err != nil {
		return nil, err
	}
	val, err := array1d.NewSized(sp, entries)
	if err != nil {
		return nil, err
	}

	return &Csr{
		shape:      shape{rows: rows, cols: cols, entries: entries},
		sp:         sp,
		rowOffsets: ro,
		colIndices: ci,
		values:     val,
	}, nil
}

// Space reports the residence of this matrix's arrays.
func (m *Csr) Space() space.Space { return m.sp }

// RowOffsets exposes the row-offset array for kernels and conversions.
func (m *Csr) RowOffsets() *array1d.IntArray { return m.rowOffsets }

// ColIndices exposes the column-index array for kernels and conversions.
func (m *Csr) ColIndices() *array1d.IntArray { return m.colIndices }

// Values exposes the value array for kernels and conversions.
func (m *Csr) Values() *array1d.Array { return m.values }

// Resize reallocates all arrays to the new shape, preserving no content.
func (m *Csr) Resize(rows, cols, entries int) error {
	if err := validateShape(rows, cols, entries); err != nil {
		return err
	}
	ro, err := array1d.NewIntSized(m.sp, rows+1)
	if err != nil {
		return err
	}
	ci, err := array1d.NewIntSized(m.sp, entries)
	if err != nil {
		return err
	}
	val, err := array1d.NewSized(m.sp, entries)
	if err != nil {
		return err
	}
	m.shape = shape{rows: rows, cols: cols, entries: entries}
	m.rowOffsets, m.colIndices, m.values = ro, ci, val

	return nil
}

// Swap exchanges ownership of two Csr instances in O(1).
func (m *Csr) Swap(other *Csr) {
	m.shape, other.shape = other.shape, m.shape
	m.sp, other.sp = other.sp, m.sp
	m.rowOffsets.Swap(other.rowOffsets)
	m.colIndices.Swap(other.colIndices)
	m.values.Swap(other.values)
}

// Clone returns a deep, independent copy resident in dstSpace.
func (m *Csr) Clone(dstSpace space.Space) *Csr {
	return &Csr{
		shape:      m.shape,
		sp:         dstSpace,
		rowOffsets: m.rowOffsets.CopyTo(dstSpace),
		colIndices: m.colIndices.CopyTo(dstSpace),
		values:     m.values.CopyTo(dstSpace),
	}
}

// ValidateInvariants checks the CSR monotonicity invariant:
// rowOffsets is non-decreasing and its last element equals num_entries.
func (m *Csr) ValidateInvariants() error {
	ro := m.rowOffsets.Raw()
	if len(ro) != m.rows+1 {
		return fmt.Errorf("sparse.Csr: rowOffsets has length %d, want %d: %w", len(ro), m.rows+1, ErrShapeMismatch)
	}
	if ro[0] != 0 {
		return fmt.Errorf("sparse.Csr: rowOffsets[0]=%d, want 0: %w", ro[0], ErrInvalidDimensions)
	}
	if ro[m.rows] != m.entries {
		return fmt.Errorf("sparse.Csr: rowOffsets[%d]=%d, want %d: %w", m.rows, ro[m.rows], m.entries, ErrInvalidDimensions)
	}
	for i := 1; i < len(ro); i++ {
		if ro[i] < ro[i-1] {
			return fmt.Errorf("sparse.Csr: rowOffsets not monotone at %d: %w", i, ErrInvalidDimensions)
		}
	}

	return nil
}
