package sparse

import "github.com/Bri9k/cusplibrary/array1d"

// spmvEll walks E slots per row, skipping SentinelColumn padding. Every
// slot is visited regardless of position: SetSlot carries no ordering
// invariant, so a sentinel does not imply the rest of the row is sentinel
// too.
func spmvEll(m *Ell, x, y *array1d.Array) error {
	xr := x.Raw()
	yr := y.Raw()
	colIdx := m.ColIndices().Raw()
	vals := m.Values().Raw()
	stride := m.Stride()

	for r := 0; r < m.Rows(); r++ {
		var sum float64
		for k := 0; k < m.MaxPerRow(); k++ {
			col := colIdx[k*stride+r]
			if col == SentinelColumn {
				continue
			}
			sum += vals[k*stride+r] * xr[col]
		}
		yr[r] = sum
	}

	return nil
}
