// Package sparse: Coo, the coordinate format and one of the two conversion
// hubs.
//
// Storage: parallel arrays rowIndices[K], colIndices[K], values[K] where
// K = num_entries. Invariants enforced by NewCooFromTriplets and
// NewCooFromSortedTriplets: entries sorted lexicographically by (row,
// column); no duplicate (row, column) pairs; all indices in bounds. NewCoo
// and Resize return zero-filled arrays that do not satisfy these
// invariants until the caller populates them.
package sparse

import (
	"fmt"
	"sort"

	"github.com/Bri9k/cusplibrary/array1d"
	"github.com/Bri9k/cusplibrary/space"
)

// Coo is the coordinate sparse-matrix format.
type Coo struct {
	shape
	sp         space.Space
	rowIndices *array1d.IntArray
	colIndices *array1d.IntArray
	values     *array1d.Array
}

// NewCoo allocates an empty-valued Coo of the given shape. All three arrays
// are sized num_entries and zero-filled; callers populate entries through
// RowIndices/ColIndices/Values, or construct from triplets with
// NewCooFromTriplets (any order) or NewCooFromSortedTriplets (sorted data).
func NewCoo(sp space.Space, rows, cols, entries int) (*Coo, error) {
	if err := validateShape(rows, cols, entries); err != nil {
		return nil, err
	}
	ri, err := array1d.NewIntSized(sp, entries)
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

	return &Coo{
		shape:      shape{rows: rows, cols: cols, entries: entries},
		sp:         sp,
		rowIndices: ri,
		colIndices: ci,
		values:     val,
	}, nil
}

// NewCooFromTriplets builds a Coo from parallel (row, col, value) slices on
// the host, sorting them into canonical order and rejecting duplicates.
// This is the common construction path for hand-written test fixtures and
// for data arriving in arbitrary order. Callers that already hold
// lexicographically sorted triplets should use NewCooFromSortedTriplets
// instead, to skip the O(n log n) sort.
func NewCooFromTriplets(rows, cols int, rowIdx, colIdx []int, vals []float64) (*Coo, error) {
	if len(rowIdx) != len(colIdx) || len(rowIdx) != len(vals) {
		return nil, fmt.Errorf("sparse.NewCooFromTriplets: mismatched slice lengths: %w", ErrShapeMismatch)
	}
	n := len(rowIdx)
	for k := 0; k < n; k++ {
		if err := checkIndexBounds("NewCooFromTriplets", rows, cols, rowIdx[k], colIdx[k]); err != nil {
			return nil, err
		}
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if rowIdx[ia] != rowIdx[ib] {
			return rowIdx[ia] < rowIdx[ib]
		}

		return colIdx[ia] < colIdx[ib]
	})

	sortedRows := make([]int, n)
	sortedCols := make([]int, n)
	sortedVals := make([]float64, n)
	for i, k := range order {
		sortedRows[i] = rowIdx[k]
		sortedCols[i] = colIdx[k]
		sortedVals[i] = vals[k]
	}
	for i := 1; i < n; i++ {
		if sortedRows[i] == sortedRows[i-1] && sortedCols[i] == sortedCols[i-1] {
			return nil, fmt.Errorf("sparse.NewCooFromTriplets: row=%d col=%d: %w", sortedRows[i], sortedCols[i], ErrDuplicateEntry)
		}
	}

	return &Coo{
		shape:      shape{rows: rows, cols: cols, entries: n},
		sp:         space.Host,
		rowIndices: array1d.NewIntFromSlice(space.Host, sortedRows),
		colIndices: array1d.NewIntFromSlice(space.Host, sortedCols),
		values:     array1d.NewFromSlice(space.Host, sortedVals),
	}, nil
}

// NewCooFromSortedTriplets builds a Coo from parallel (row, col, value)
// slices already in strictly increasing lexicographic (row, column) order,
// validating that invariant instead of re-sorting. Returns ErrUnsortedCOO
// at the first out-of-order or duplicate pair found.
func NewCooFromSortedTriplets(rows, cols int, rowIdx, colIdx []int, vals []float64) (*Coo, error) {
	if len(rowIdx) != len(colIdx) || len(rowIdx) != len(vals) {
		return nil, fmt.Errorf("sparse.NewCooFromSortedTriplets: mismatched slice lengths: %w", ErrShapeMismatch)
	}
	n := len(rowIdx)
	for k := 0; k < n; k++ {
		if err := checkIndexBounds("NewCooFromSortedTriplets", rows, cols, rowIdx[k], colIdx[k]); err != nil {
			return nil, err
		}
		if k > 0 && (rowIdx[k] < rowIdx[k-1] || (rowIdx[k] == rowIdx[k-1] && colIdx[k] <= colIdx[k-1])) {
			return nil, fmt.Errorf("sparse.NewCooFromSortedTriplets: entry %d out of order: %w", k, ErrUnsortedCOO)
		}
	}

	return &Coo{
		shape:      shape{rows: rows, cols: cols, entries: n},
		sp:         space.Host,
		rowIndices: array1d.NewIntFromSlice(space.Host, rowIdx),
		colIndices: array1d.NewIntFromSlice(space.Host, colIdx),
		values:     array1d.NewFromSlice(space.Host, vals),
	}, nil
}

// Space reports the residence of this matrix's arrays.
func (m *Coo) Space() space.Space { return m.sp }

// RowIndices exposes the row-index array for kernels and conversions.
func (m *Coo) RowIndices() *array1d.IntArray { return m.rowIndices }

// ColIndices exposes the column-index array for kernels and conversions.
func (m *Coo) ColIndices() *array1d.IntArray { return m.colIndices }

// Values exposes the value array for kernels and conversions.
func (m *Coo) Values() *array1d.Array { return m.values }

// Resize reallocates all three arrays to the new shape, preserving no
// content.
func (m *Coo) Resize(rows, cols, entries int) error {
	if err := validateShape(rows, cols, entries); err != nil {
		return err
	}
	ri, err := array1d.NewIntSized(m.sp, entries)
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
	m.rowIndices, m.colIndices, m.values = ri, ci, val

	return nil
}

// Swap exchanges ownership of two Coo instances in O(1).
func (m *Coo) Swap(other *Coo) {
	m.shape, other.shape = other.shape, m.shape
	m.sp, other.sp = other.sp, m.sp
	m.rowIndices.Swap(other.rowIndices)
	m.colIndices.Swap(other.colIndices)
	m.values.Swap(other.values)
}

// Clone returns a deep, independent copy resident in dstSpace (possibly
// different from m.Space(), triggering the bulk cross-space transfer of
// array1d.Array.CopyTo / IntArray.CopyTo).
func (m *Coo) Clone(dstSpace space.Space) *Coo {
	return &Coo{
		shape:      m.shape,
		sp:         dstSpace,
		rowIndices: m.rowIndices.CopyTo(dstSpace),
		colIndices: m.colIndices.CopyTo(dstSpace),
		values:     m.values.CopyTo(dstSpace),
	}
}

// IsSortedStrict reports whether (rowIndices, colIndices) is lexicographically
// strictly increasing, the invariant every successful triplet construction
// establishes.
func (m *Coo) IsSortedStrict() bool {
	rows, cols := m.rowIndices.Raw(), m.colIndices.Raw()
	for i := 1; i < len(rows); i++ {
		if rows[i] < rows[i-1] || (rows[i] == rows[i-1] && cols[i] <= cols[i-1]) {
			return false
		}
	}

	return true
}
