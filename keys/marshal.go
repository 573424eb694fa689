package keys

import (
	"io"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
)

// Field order, mirrored between every encode and decode path:
// verifying key first (alpha_g1, beta_g2, gamma_g2, delta_g2, gamma_abc_g1),
// then beta_g1, delta_g1 and the query vectors a, b_g1, b_g2, h, l.
// Point vectors carry the uint32 length prefix of the bn254 encoder.

// WriteTo writes the binary encoding of the verifying key to w with point
// compression. Use WriteRawTo for the uncompressed form.
func (vk *VerifyingKey) WriteTo(w io.Writer) (int64, error) {
	return vk.writeTo(w, false)
}

// WriteRawTo writes the binary encoding of the verifying key to w without
// point compression.
func (vk *VerifyingKey) WriteRawTo(w io.Writer) (int64, error) {
	return vk.writeTo(w, true)
}

func (vk *VerifyingKey) writeTo(w io.Writer, raw bool) (int64, error) {
	var enc *curve.Encoder
	if raw {
		enc = curve.NewEncoder(w, curve.RawEncoding())
	} else {
		enc = curve.NewEncoder(w)
	}
	toEncode := []any{
		&vk.AlphaG1,
		&vk.BetaG2,
		&vk.GammaG2,
		&vk.DeltaG2,
		vk.GammaABCG1,
	}
	for _, v := range toEncode {
		if err := enc.Encode(v); err != nil {
			return enc.BytesWritten(), err
		}
	}
	return enc.BytesWritten(), nil
}

// ReadFrom reads the verifying key from r. Points go through the decoder's
// subgroup checks; a malformed stream surfaces as an io error, an invalid
// point as a validation error.
func (vk *VerifyingKey) ReadFrom(r io.Reader) (int64, error) {
	return vk.readFrom(r)
}

// UnsafeReadFrom reads the verifying key from r skipping the subgroup
// checks. Call Check afterwards to validate the points explicitly.
func (vk *VerifyingKey) UnsafeReadFrom(r io.Reader) (int64, error) {
	return vk.readFrom(r, curve.NoSubgroupChecks())
}

func (vk *VerifyingKey) readFrom(r io.Reader, opts ...func(*curve.Decoder)) (int64, error) {
	dec := curve.NewDecoder(r, opts...)
	toDecode := []any{
		&vk.AlphaG1,
		&vk.BetaG2,
		&vk.GammaG2,
		&vk.DeltaG2,
		&vk.GammaABCG1,
	}
	for _, v := range toDecode {
		if err := dec.Decode(v); err != nil {
			return dec.BytesRead(), err
		}
	}
	return dec.BytesRead(), nil
}

// BinarySize returns the exact encoded byte length of the verifying key for
// the given mode without encoding it.
func (vk *VerifyingKey) BinarySize(raw bool) int64 {
	g1, g2 := pointSizes(raw)
	size := g1 + 3*g2                        // alpha, beta, gamma, delta
	size += 4 + int64(len(vk.GammaABCG1))*g1 // uint32 prefix + vector
	return size
}

// WriteTo writes the binary encoding of the proving key to w with point
// compression.
func (pk *ProvingKey) WriteTo(w io.Writer) (int64, error) {
	return pk.writeTo(w, false)
}

// WriteRawTo writes the binary encoding of the proving key to w without
// point compression.
func (pk *ProvingKey) WriteRawTo(w io.Writer) (int64, error) {
	return pk.writeTo(w, true)
}

func (pk *ProvingKey) writeTo(w io.Writer, raw bool) (int64, error) {
	n, err := pk.VK.writeTo(w, raw)
	if err != nil {
		return n, err
	}
	var enc *curve.Encoder
	if raw {
		enc = curve.NewEncoder(w, curve.RawEncoding())
	} else {
		enc = curve.NewEncoder(w)
	}
	toEncode := []any{
		&pk.BetaG1,
		&pk.DeltaG1,
		pk.AQuery,
		pk.BG1Query,
		pk.BG2Query,
		pk.HQuery,
		pk.LQuery,
	}
	for _, v := range toEncode {
		if err := enc.Encode(v); err != nil {
			return n + enc.BytesWritten(), err
		}
	}
	return n + enc.BytesWritten(), nil
}

// ReadFrom reads the proving key from r with subgroup checks enabled.
func (pk *ProvingKey) ReadFrom(r io.Reader) (int64, error) {
	return pk.readFrom(r)
}

// UnsafeReadFrom reads the proving key from r skipping the subgroup checks;
// pair it with Check for explicit validation.
func (pk *ProvingKey) UnsafeReadFrom(r io.Reader) (int64, error) {
	return pk.readFrom(r, curve.NoSubgroupChecks())
}

func (pk *ProvingKey) readFrom(r io.Reader, opts ...func(*curve.Decoder)) (int64, error) {
	n, err := pk.VK.readFrom(r, opts...)
	if err != nil {
		return n, err
	}
	dec := curve.NewDecoder(r, opts...)
	toDecode := []any{
		&pk.BetaG1,
		&pk.DeltaG1,
		&pk.AQuery,
		&pk.BG1Query,
		&pk.BG2Query,
		&pk.HQuery,
		&pk.LQuery,
	}
	for _, v := range toDecode {
		if err := dec.Decode(v); err != nil {
			return n + dec.BytesRead(), err
		}
	}
	return n + dec.BytesRead(), nil
}

// BinarySize returns the exact encoded byte length of the proving key for
// the given mode without encoding it.
func (pk *ProvingKey) BinarySize(raw bool) int64 {
	g1, g2 := pointSizes(raw)
	size := pk.VK.BinarySize(raw)
	size += 2 * g1 // beta_g1, delta_g1
	for _, v := range [][]curve.G1Affine{pk.AQuery, pk.BG1Query, pk.HQuery, pk.LQuery} {
		size += 4 + int64(len(v))*g1
	}
	size += 4 + int64(len(pk.BG2Query))*g2
	return size
}

func pointSizes(raw bool) (g1, g2 int64) {
	if raw {
		return curve.SizeOfG1AffineUncompressed, curve.SizeOfG2AffineUncompressed
	}
	return curve.SizeOfG1AffineCompressed, curve.SizeOfG2AffineCompressed
}
