package sparse

import "github.com/Bri9k/cusplibrary/array1d"

// spmvDia walks every stored diagonal across its full row range, skipping
// the positions that fall outside the true matrix (the structural padding
// every DIA instance carries at its band edges).
func spmvDia(m *Dia, x, y *array1d.Array) error {
	xr := x.Raw()
	yr := y.Raw()
	for i := range yr {
		yr[i] = 0
	}
	offsets := m.Offsets().Raw()
	rows, cols := m.Rows(), m.Cols()

	for k, off := range offsets {
		rowStart, rowEnd := 0, rows
		if off < 0 {
			rowStart = -off
		} else if off > 0 && cols-off < rows {
			rowEnd = cols - off
		}
		for r := rowStart; r < rowEnd; r++ {
			c := r + off
			if c < 0 || c >= cols {
				continue
			}
			v, err := m.At(k, r)
			if err != nil {
				return err
			}
			yr[r] += v * xr[c]
		}
	}

	return nil
}
