package zkey

import (
	"io"

	"github.com/vocdoni/zkey-bridge/keys"
	"github.com/vocdoni/zkey-bridge/r1cs"
)

// Bundle is the canonical container for a converted zkey: the constraint
// matrices and the proving key as one serializable value. A Bundle only
// exists as the result of a successful conversion (or a decode of one) and
// is immutable once constructed.
//
// The binary encoding is the matrices field followed by the proving-key
// field, each in its own fixed field order; a single mode flag selects
// compressed or uncompressed point encoding for the whole container.
type Bundle struct {
	matrices r1cs.Matrices
	pk       keys.ProvingKey
}

// NewBundle converts the compiler export and wraps the result. The export
// is consumed, as in Convert.
func NewBundle(e Export) (*Bundle, error) {
	matrices, pk, err := Convert(e)
	if err != nil {
		return nil, err
	}
	return &Bundle{matrices: *matrices, pk: *pk}, nil
}

// BundleFromParts wraps an already converted pair. Both values are moved
// into the bundle.
func BundleFromParts(matrices *r1cs.Matrices, pk *keys.ProvingKey) *Bundle {
	return &Bundle{matrices: *matrices, pk: *pk}
}

// Matrices returns a reference to the constraint matrices without
// transferring ownership.
func (b *Bundle) Matrices() *r1cs.Matrices {
	return &b.matrices
}

// ProvingKey returns a reference to the proving key without transferring
// ownership.
func (b *Bundle) ProvingKey() *keys.ProvingKey {
	return &b.pk
}

// Inner returns the underlying (matrices, proving key) pair, moving both
// out of the bundle.
func (b *Bundle) Inner() (r1cs.Matrices, keys.ProvingKey) {
	return b.matrices, b.pk
}

// WriteTo writes the container to w with point compression: matrices first,
// then the proving key.
func (b *Bundle) WriteTo(w io.Writer) (int64, error) {
	n, err := b.matrices.WriteTo(w)
	if err != nil {
		return n, err
	}
	m, err := b.pk.WriteTo(w)
	return n + m, err
}

// WriteRawTo writes the container to w without point compression.
func (b *Bundle) WriteRawTo(w io.Writer) (int64, error) {
	n, err := b.matrices.WriteRawTo(w)
	if err != nil {
		return n, err
	}
	m, err := b.pk.WriteRawTo(w)
	return n + m, err
}

// ReadFrom reads the container from r with subgroup checks enabled.
func (b *Bundle) ReadFrom(r io.Reader) (int64, error) {
	n, err := b.matrices.ReadFrom(r)
	if err != nil {
		return n, err
	}
	m, err := b.pk.ReadFrom(r)
	return n + m, err
}

// UnsafeReadFrom reads the container from r without validating the decoded
// points; call Check to validate explicitly.
func (b *Bundle) UnsafeReadFrom(r io.Reader) (int64, error) {
	n, err := b.matrices.ReadFrom(r)
	if err != nil {
		return n, err
	}
	m, err := b.pk.UnsafeReadFrom(r)
	return n + m, err
}

// BinarySize returns the exact encoded byte length of the container for the
// given mode without encoding it.
func (b *Bundle) BinarySize(raw bool) int64 {
	return b.matrices.BinarySize(raw) + b.pk.BinarySize(raw)
}

// Check validates both constituents structurally. Stored counters are not
// cross-checked against the actual matrix lengths; an inconsistency between
// them is not invalid at this layer.
func (b *Bundle) Check() error {
	if err := b.matrices.Check(); err != nil {
		return err
	}
	return b.pk.Check()
}
