// Package sparse: Hyb, the hybrid ELL+COO format.
//
// Storage: an Ell portion holding the first E nonzeros of every row, and a
// Coo portion holding the overflow. Invariants: the combined structure
// equals the true sparse matrix exactly; neither portion's storage is
// shared with the other.
package sparse

import (
	"github.com/Bri9k/cusplibrary/space"
)

// Hyb is the hybrid ELLPACK+COO sparse-matrix format.
type Hyb struct {
	shape
	sp  space.Space
	ell *Ell
	coo *Coo // overflow tail, ordered by row
}

// NewHyb composes an Ell and Coo portion into a Hyb. The two portions must
// already share rows/cols; num_entries is the sum of both portions' stored
// slots.
func NewHyb(ell *Ell, coo *Coo) (*Hyb, error) {
	if ell.Rows() != coo.Rows() || ell.Cols() != coo.Cols() {
		return nil, ErrShapeMismatch
	}
	if ell.Space() != coo.Space() {
		return nil, ErrMemorySpaceMismatch
	}

	return &Hyb{
		shape: shape{rows: ell.Rows(), cols: ell.Cols(), entries: ell.NumEntries() + coo.NumEntries()},
		sp:    ell.Space(),
		ell:   ell,
		coo:   coo,
	}, nil
}

// Space reports the residence of this matrix's arrays.
func (m *Hyb) Space() space.Space { return m.sp }

// Resize reallocates both portions to a fresh shape, preserving no content.
// The ELL portion is rebuilt with maxPerRow/stride as given; the COO
// portion starts empty (zero entries), since a resized Hyb has no
// determined split between its ELL and overflow portions until entries are
// written again.
func (m *Hyb) Resize(rows, cols, maxPerRow, stride int) error {
	ell, err := NewEll(m.sp, rows, cols, maxPerRow, stride)
	if err != nil {
		return err
	}
	coo, err := NewCoo(m.sp, rows, cols, 0)
	if err != nil {
		return err
	}
	fresh, err := NewHyb(ell, coo)
	if err != nil {
		return err
	}
	*m = *fresh

	return nil
}

// Ell exposes the ELL portion.
func (m *Hyb) Ell() *Ell { return m.ell }

// Coo exposes the COO overflow portion.
func (m *Hyb) Coo() *Coo { return m.coo }

// Swap exchanges ownership of two Hyb instances in O(1): the two embedded
// pointers are exchanged, not the containers they point to.
func (m *Hyb) Swap(other *Hyb) {
	m.shape, other.shape = other.shape, m.shape
	m.sp, other.sp = other.sp, m.sp
	m.ell, other.ell = other.ell, m.ell
	m.coo, other.coo = other.coo, m.coo
}

// Clone returns a deep, independent copy resident in dstSpace.
func (m *Hyb) Clone(dstSpace space.Space) *Hyb {
	return &Hyb{
		shape: m.shape,
		sp:    dstSpace,
		ell:   m.ell.Clone(dstSpace),
		coo:   m.coo.Clone(dstSpace),
	}
}
