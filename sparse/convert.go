// Package sparse: Convert, the all-pairs conversion dispatcher.
//
// Implementation:
//   - Coo and Csr are the two hubs; converting between them is a direct
//     O(nnz) prefix-sum/expansion (cooToCsr / csrToCoo).
//   - Every other format (Dia, Ell, Hyb) converts to/from Coo directly
//     (cooToDia/diaToCoo, etc.); a conversion between two non-hub formats,
//     or from/to Csr, is routed transitively through the Coo hub.
//   - Same-format conversion is a deep, possibly cross-space copy — never
//     routed through a hub.
//
// Convert populates dst in place (dst must be a non-nil pointer to one of
// the five concrete format types); src is read-only.
package sparse

import "fmt"

// Convert populates dst to represent the same sparse matrix as src,
// regardless of dst/src's concrete formats. dst's memory space, read from
// dst before dispatch, is preserved: the result always ends up resident in
// whatever space dst was constructed with, not in src's or the host
// intermediate's space. It returns *FormatConversionError (wrapping
// ErrFormatConversionNotBanded or ErrFormatConversionTooRagged) when the
// destination format's density or bandedness requirement is violated, or
// ErrUnsupportedConversion if dst is not one of the five known concrete
// types.
func Convert(dst, src Matrix, opts ...ConvertOption) error {
	o := gatherConvertOptions(opts...)

	switch d := dst.(type) {
	case *Coo:
		targetSpace := d.Space()
		coo, err := toCOO(src)
		if err != nil {
			return fmt.Errorf("sparse.Convert(->COO): %w", err)
		}
		*d = *coo.Clone(targetSpace)

		return nil
	case *Csr:
		targetSpace := d.Space()
		csr, err := toCSR(src)
		if err != nil {
			return fmt.Errorf("sparse.Convert(->CSR): %w", err)
		}
		*d = *csr.Clone(targetSpace)

		return nil
	case *Dia:
		targetSpace := d.Space()
		dia, err := toDIA(src, o)
		if err != nil {
			return fmt.Errorf("sparse.Convert(->DIA): %w", err)
		}
		*d = *dia.Clone(targetSpace)

		return nil
	case *Ell:
		targetSpace := d.Space()
		ell, err := toELL(src, o)
		if err != nil {
			return fmt.Errorf("sparse.Convert(->ELL): %w", err)
		}
		*d = *ell.Clone(targetSpace)

		return nil
	case *Hyb:
		targetSpace := d.Space()
		hyb, err := toHYB(src, o)
		if err != nil {
			return fmt.Errorf("sparse.Convert(->HYB): %w", err)
		}
		*d = *hyb.Clone(targetSpace)

		return nil
	default:
		return ErrUnsupportedConversion
	}
}

// ---------- hub routing ----------

func toCOO(src Matrix) (*Coo, error) {
	switch s := src.(type) {
	case *Coo:
		return s.Clone(s.Space()), nil
	case *Csr:
		return csrToCoo(s)
	case *Dia:
		return diaToCoo(s)
	case *Ell:
		return ellToCoo(s)
	case *Hyb:
		return hybToCoo(s)
	default:
		return nil, ErrUnsupportedConversion
	}
}

func toCSR(src Matrix) (*Csr, error) {
	if s, ok := src.(*Csr); ok {
		return s.Clone(s.Space()), nil
	}
	coo, err := toCOO(src)
	if err != nil {
		return nil, err
	}

	return cooToCsr(coo)
}

func toDIA(src Matrix, o convertOptions) (*Dia, error) {
	if s, ok := src.(*Dia); ok {
		return s.Clone(s.Space()), nil
	}
	coo, err := toCOO(src)
	if err != nil {
		return nil, err
	}

	return cooToDia(coo, o)
}

func toELL(src Matrix, o convertOptions) (*Ell, error) {
	if s, ok := src.(*Ell); ok {
		return s.Clone(s.Space()), nil
	}
	coo, err := toCOO(src)
	if err != nil {
		return nil, err
	}

	return cooToEll(coo, o)
}

func toHYB(src Matrix, o convertOptions) (*Hyb, error) {
	if s, ok := src.(*Hyb); ok {
		return s.Clone(s.Space()), nil
	}
	coo, err := toCOO(src)
	if err != nil {
		return nil, err
	}

	return cooToHyb(coo, o)
}
