// Package sparse: the eight concrete conversion kernels Convert dispatches
// to. Each kernel takes one format and produces another, operating entirely
// on the host regardless of the input's declared space (conversion always
// stages through host memory since the index bookkeeping is scalar and
// branchy); the result is cloned into the caller's space by convert.go.
package sparse

import (
	"sort"

	"github.com/Bri9k/cusplibrary/space"
	"gonum.org/v1/gonum/floats"
)

// ---------- COO <-> CSR (always lossless) ----------

func cooToCsr(coo *Coo) (*Csr, error) {
	rows, cols, n := coo.Rows(), coo.Cols(), coo.NumEntries()
	csr, err := NewCsr(space.Host, rows, cols, n)
	if err != nil {
		return nil, err
	}
	rowOff := csr.RowOffsets().Raw()
	colIdx := csr.ColIndices().Raw()
	vals := csr.Values().Raw()

	srcRows := coo.RowIndices().Raw()
	srcCols := coo.ColIndices().Raw()
	srcVals := coo.Values().Raw()

	for k := 0; k < n; k++ {
		rowOff[srcRows[k]+1]++
	}
	for r := 0; r < rows; r++ {
		rowOff[r+1] += rowOff[r]
	}
	copy(colIdx, srcCols)
	copy(vals, srcVals)

	return csr, nil
}

func csrToCoo(csr *Csr) (*Coo, error) {
	rows, cols, n := csr.Rows(), csr.Cols(), csr.NumEntries()
	coo, err := NewCoo(space.Host, rows, cols, n)
	if err != nil {
		return nil, err
	}
	rowOff := csr.RowOffsets().Raw()
	srcCols := csr.ColIndices().Raw()
	srcVals := csr.Values().Raw()

	rowIdx := coo.RowIndices().Raw()
	colIdx := coo.ColIndices().Raw()
	vals := coo.Values().Raw()

	for r := 0; r < rows; r++ {
		for k := rowOff[r]; k < rowOff[r+1]; k++ {
			rowIdx[k] = r
		}
	}
	copy(colIdx, srcCols)
	copy(vals, srcVals)

	return coo, nil
}

// ---------- COO <-> DIA (bandedness-gated) ----------

func cooToDia(coo *Coo, o convertOptions) (*Dia, error) {
	rows, cols := coo.Rows(), coo.Cols()
	rowIdx := coo.RowIndices().Raw()
	colIdx := coo.ColIndices().Raw()
	vals := coo.Values().Raw()

	offsetSet := make(map[int]struct{})
	for k := range rowIdx {
		offsetSet[colIdx[k]-rowIdx[k]] = struct{}{}
	}
	numDiags := len(offsetSet)

	threshold := o.diaDiagonalRatio * float64(rows+cols)
	if float64(numDiags) > threshold {
		return nil, &FormatConversionError{
			Reason:    ErrFormatConversionNotBanded,
			Measured:  float64(numDiags),
			Threshold: threshold,
		}
	}

	offsets := make([]int, 0, numDiags)
	for off := range offsetSet {
		offsets = append(offsets, off)
	}
	sort.Ints(offsets)
	offsetIndex := make(map[int]int, numDiags)
	for i, off := range offsets {
		offsetIndex[off] = i
	}

	dia, err := NewDia(space.Host, rows, cols, numDiags, rows)
	if err != nil {
		return nil, err
	}
	copy(dia.Offsets().Raw(), offsets)

	for k := range rowIdx {
		r, c := rowIdx[k], colIdx[k]
		diagCol := offsetIndex[c-r]
		if err := dia.Set(diagCol, r, vals[k]); err != nil {
			return nil, err
		}
	}

	return dia, nil
}

func diaToCoo(dia *Dia) (*Coo, error) {
	rows, cols := dia.Rows(), dia.Cols()
	offsets := dia.Offsets().Raw()

	var rowIdx, colIdx []int
	var vals []float64
	for k, off := range offsets {
		for r := 0; r < rows; r++ {
			c := r + off
			if c < 0 || c >= cols {
				continue
			}
			v, err := dia.At(k, r)
			if err != nil {
				return nil, err
			}
			if v == 0 {
				// Padding and an explicit stored zero are indistinguishable
				// in DIA storage; both are dropped on the way back to COO.
				continue
			}
			rowIdx = append(rowIdx, r)
			colIdx = append(colIdx, c)
			vals = append(vals, v)
		}
	}

	return NewCooFromTriplets(rows, cols, rowIdx, colIdx, vals)
}

// ---------- COO <-> ELL (raggedness-gated) ----------

func cooToEll(coo *Coo, o convertOptions) (*Ell, error) {
	rows, cols, n := coo.Rows(), coo.Cols(), coo.NumEntries()
	rowIdx := coo.RowIndices().Raw()
	colIdx := coo.ColIndices().Raw()
	vals := coo.Values().Raw()

	rowLenF := make([]float64, rows)
	for k := 0; k < n; k++ {
		rowLenF[rowIdx[k]]++
	}
	maxRowLen := 0
	if rows > 0 {
		maxRowLen = int(floats.Max(rowLenF))
	}
	avgRowLen := 0.0
	if rows > 0 {
		avgRowLen = floats.Sum(rowLenF) / float64(rows)
	}
	threshold := o.ellRowLengthRatio * avgRowLen
	if avgRowLen > 0 && float64(maxRowLen) > threshold {
		return nil, &FormatConversionError{
			Reason:    ErrFormatConversionTooRagged,
			Measured:  float64(maxRowLen),
			Threshold: threshold,
		}
	}

	ell, err := NewEll(space.Host, rows, cols, maxRowLen, rows)
	if err != nil {
		return nil, err
	}

	slot := make([]int, rows)
	for k := 0; k < n; k++ {
		r := rowIdx[k]
		if err := ell.SetSlot(slot[r], r, colIdx[k], vals[k]); err != nil {
			return nil, err
		}
		slot[r]++
	}

	return ell, nil
}

func ellToCoo(ell *Ell) (*Coo, error) {
	rows, cols := ell.Rows(), ell.Cols()

	var rowIdx, colIdx []int
	var vals []float64
	for r := 0; r < rows; r++ {
		for k := 0; k < ell.MaxPerRow(); k++ {
			col, err := ell.SlotColumn(k, r)
			if err != nil {
				return nil, err
			}
			if col == SentinelColumn {
				continue
			}
			v, err := ell.Values().At(k*ell.Stride() + r)
			if err != nil {
				return nil, err
			}
			rowIdx = append(rowIdx, r)
			colIdx = append(colIdx, col)
			vals = append(vals, v)
		}
	}

	return NewCooFromTriplets(rows, cols, rowIdx, colIdx, vals)
}

// ---------- COO <-> HYB (never refused) ----------

func cooToHyb(coo *Coo, o convertOptions) (*Hyb, error) {
	rows, cols, n := coo.Rows(), coo.Cols(), coo.NumEntries()
	rowIdx := coo.RowIndices().Raw()
	colIdx := coo.ColIndices().Raw()
	vals := coo.Values().Raw()

	rowLen := make([]int, rows)
	for k := 0; k < n; k++ {
		rowLen[rowIdx[k]]++
	}
	maxRowLen := 0
	for _, l := range rowLen {
		if l > maxRowLen {
			maxRowLen = l
		}
	}

	// Smallest E, from 0 up to maxRowLen, such that the ELL portion covers
	// at least hybEllFraction of all stored entries.
	e := 0
	for e < maxRowLen {
		covered := 0
		for _, l := range rowLen {
			if l < e {
				covered += l
			} else {
				covered += e
			}
		}
		if n == 0 || float64(covered)/float64(n) >= o.hybEllFraction {
			break
		}
		e++
	}
	if n == 0 {
		e = 0
	}

	ell, err := NewEll(space.Host, rows, cols, e, rows)
	if err != nil {
		return nil, err
	}

	var cooRows, cooCols []int
	var cooVals []float64

	slot := make([]int, rows)
	for k := 0; k < n; k++ {
		r, c, v := rowIdx[k], colIdx[k], vals[k]
		if slot[r] < e {
			if err := ell.SetSlot(slot[r], r, c, v); err != nil {
				return nil, err
			}
			slot[r]++
		} else {
			cooRows = append(cooRows, r)
			cooCols = append(cooCols, c)
			cooVals = append(cooVals, v)
		}
	}

	cooTail, err := NewCooFromTriplets(rows, cols, cooRows, cooCols, cooVals)
	if err != nil {
		return nil, err
	}

	return NewHyb(ell, cooTail)
}

func hybToCoo(hyb *Hyb) (*Coo, error) {
	ellCoo, err := ellToCoo(hyb.Ell())
	if err != nil {
		return nil, err
	}

	rows, cols := hyb.Rows(), hyb.Cols()
	rowIdx := append(append([]int{}, ellCoo.RowIndices().Raw()...), hyb.Coo().RowIndices().Raw()...)
	colIdx := append(append([]int{}, ellCoo.ColIndices().Raw()...), hyb.Coo().ColIndices().Raw()...)
	vals := append(append([]float64{}, ellCoo.Values().Raw()...), hyb.Coo().Values().Raw()...)

	return NewCooFromTriplets(rows, cols, rowIdx, colIdx, vals)
}
