package sparse

import "github.com/Bri9k/cusplibrary/array1d"

// spmvHyb runs the ELL kernel to seed y, then accumulates the COO tail on
// top — the two portions partition the nonzero set, so no entry is
// double-counted.
func spmvHyb(m *Hyb, x, y *array1d.Array) error {
	if err := spmvEll(m.Ell(), x, y); err != nil {
		return err
	}

	xr := x.Raw()
	yr := y.Raw()
	coo := m.Coo()
	rowIdx := coo.RowIndices().Raw()
	colIdx := coo.ColIndices().Raw()
	vals := coo.Values().Raw()

	for k := range rowIdx {
		yr[rowIdx[k]] += vals[k] * xr[colIdx[k]]
	}

	return nil
}
