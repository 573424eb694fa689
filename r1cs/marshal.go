package r1cs

import (
	"io"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Binary layout, fixed and mirrored between WriteTo and ReadFrom:
//
//	[matrix A][matrix B][matrix C]
//	[ANumNonZero][BNumNonZero][CNumNonZero]
//	[NumInstanceVariables][NumWitnessVariables][NumConstraints]
//
// where each matrix is encoded as a uint64 row count followed by, per row, a
// uint64 term count and the terms as (coefficient, column) pairs. All
// integers are big-endian uint64; coefficients are 32-byte canonical
// fr elements. The compressed/raw mode is threaded through for consistency
// with the rest of the container even though no curve point lives here.

// WriteTo writes the binary encoding of the matrices to w using compressed
// point encoding for the container mode. It returns the number of bytes
// written.
func (m *Matrices) WriteTo(w io.Writer) (int64, error) {
	return m.writeTo(w, false)
}

// WriteRawTo writes the binary encoding of the matrices to w using
// uncompressed point encoding for the container mode.
func (m *Matrices) WriteRawTo(w io.Writer) (int64, error) {
	return m.writeTo(w, true)
}

func (m *Matrices) writeTo(w io.Writer, raw bool) (int64, error) {
	var enc *curve.Encoder
	if raw {
		enc = curve.NewEncoder(w, curve.RawEncoding())
	} else {
		enc = curve.NewEncoder(w)
	}

	for _, mat := range [][]LinearCombination{m.A, m.B, m.C} {
		if err := encodeMatrix(enc, mat); err != nil {
			return enc.BytesWritten(), err
		}
	}

	toEncode := []any{
		m.ANumNonZero,
		m.BNumNonZero,
		m.CNumNonZero,
		m.NumInstanceVariables,
		m.NumWitnessVariables,
		m.NumConstraints,
	}
	for _, v := range toEncode {
		if err := enc.Encode(v); err != nil {
			return enc.BytesWritten(), err
		}
	}
	return enc.BytesWritten(), nil
}

// ReadFrom reads the binary encoding of the matrices from r, reconstructing
// every field in the same order WriteTo emitted it. No cross-validation
// between the decoded counters and the actual row contents is performed.
func (m *Matrices) ReadFrom(r io.Reader) (int64, error) {
	dec := curve.NewDecoder(r)

	var err error
	if m.A, err = decodeMatrix(dec); err != nil {
		return dec.BytesRead(), err
	}
	if m.B, err = decodeMatrix(dec); err != nil {
		return dec.BytesRead(), err
	}
	if m.C, err = decodeMatrix(dec); err != nil {
		return dec.BytesRead(), err
	}

	toDecode := []any{
		&m.ANumNonZero,
		&m.BNumNonZero,
		&m.CNumNonZero,
		&m.NumInstanceVariables,
		&m.NumWitnessVariables,
		&m.NumConstraints,
	}
	for _, v := range toDecode {
		if err := dec.Decode(v); err != nil {
			return dec.BytesRead(), err
		}
	}
	return dec.BytesRead(), nil
}

// BinarySize returns the exact number of bytes WriteTo (raw=false) or
// WriteRawTo (raw=true) would produce, without encoding anything.
func (m *Matrices) BinarySize(raw bool) int64 {
	_ = raw // no curve point in this layout; both modes share the size
	const termSize = fr.Bytes + 8
	size := int64(0)
	for _, mat := range [][]LinearCombination{m.A, m.B, m.C} {
		size += 8 // row count
		for _, row := range mat {
			size += 8 // term count
			size += int64(len(row)) * termSize
		}
	}
	size += 6 * 8 // scalar counters
	return size
}

func encodeMatrix(enc *curve.Encoder, rows []LinearCombination) error {
	if err := enc.Encode(uint64(len(rows))); err != nil {
		return err
	}
	for _, row := range rows {
		if err := enc.Encode(uint64(len(row))); err != nil {
			return err
		}
		for i := range row {
			if err := enc.Encode(&row[i].Coeff); err != nil {
				return err
			}
			if err := enc.Encode(row[i].Column); err != nil {
				return err
			}
		}
	}
	return nil
}

func decodeMatrix(dec *curve.Decoder) ([]LinearCombination, error) {
	var nbRows uint64
	if err := dec.Decode(&nbRows); err != nil {
		return nil, err
	}
	if nbRows == 0 {
		// keep empty matrices nil so a round trip is exact
		return nil, nil
	}
	rows := make([]LinearCombination, 0, nbRows)
	for i := uint64(0); i < nbRows; i++ {
		var nbTerms uint64
		if err := dec.Decode(&nbTerms); err != nil {
			return nil, err
		}
		row := make(LinearCombination, nbTerms)
		for j := uint64(0); j < nbTerms; j++ {
			if err := dec.Decode(&row[j].Coeff); err != nil {
				return nil, err
			}
			if err := dec.Decode(&row[j].Column); err != nil {
				return nil, err
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
