package sparse

import "github.com/Bri9k/cusplibrary/array1d"

// spmvCsr is the scalar CSR kernel: one dot product per row, each computed
// by a single thread of control over that row's contiguous run of
// (colIndices, values). This is the "CSR scalar" kernel; a "CSR vector"
// kernel assigning a warp per row has no meaningful host analogue and is
// left to SpMVDevice's row-partitioned worker pool.
func spmvCsr(m *Csr, x, y *array1d.Array) error {
	xr := x.Raw()
	yr := y.Raw()
	rowOff := m.RowOffsets().Raw()
	colIdx := m.ColIndices().Raw()
	vals := m.Values().Raw()

	for r := 0; r < m.Rows(); r++ {
		var sum float64
		for k := rowOff[r]; k < rowOff[r+1]; k++ {
			sum += vals[k] * xr[colIdx[k]]
		}
		yr[r] = sum
	}

	return nil
}
