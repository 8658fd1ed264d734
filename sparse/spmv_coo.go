package sparse

import "github.com/Bri9k/cusplibrary/array1d"

// spmvCoo walks the coordinate list once, accumulating into y. y is zeroed
// first; COO imposes no ordering requirement on accumulation since every
// (row, col) pair is visited exactly once.
func spmvCoo(m *Coo, x, y *array1d.Array) error {
	yr := y.Raw()
	for i := range yr {
		yr[i] = 0
	}
	xr := x.Raw()
	rowIdx := m.RowIndices().Raw()
	colIdx := m.ColIndices().Raw()
	vals := m.Values().Raw()

	for k := range rowIdx {
		yr[rowIdx[k]] += vals[k] * xr[colIdx[k]]
	}

	return nil
}
