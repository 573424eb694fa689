package zkey

import (
	"bytes"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestBundleRoundTrip(t *testing.T) {
	c := qt.New(t)

	bundle, err := NewBundle(sampleExport(2, 8))
	c.Assert(err, qt.IsNil)

	for _, tc := range []struct {
		name string
		raw  bool
	}{
		{name: "compressed", raw: false},
		{name: "uncompressed", raw: true},
	} {
		c.Run(tc.name, func(c *qt.C) {
			var buf bytes.Buffer
			var n int64
			var err error
			if tc.raw {
				n, err = bundle.WriteRawTo(&buf)
			} else {
				n, err = bundle.WriteTo(&buf)
			}
			c.Assert(err, qt.IsNil)
			c.Assert(n, qt.Equals, int64(buf.Len()))
			c.Assert(n, qt.Equals, bundle.BinarySize(tc.raw))

			var decoded Bundle
			read, err := decoded.ReadFrom(bytes.NewReader(buf.Bytes()))
			c.Assert(err, qt.IsNil)
			c.Assert(read, qt.Equals, n)
			c.Assert(decoded.Matrices(), qt.DeepEquals, bundle.Matrices())
			c.Assert(decoded.ProvingKey(), qt.DeepEquals, bundle.ProvingKey())
			c.Assert(decoded.Check(), qt.IsNil)

			var unsafeDecoded Bundle
			_, err = unsafeDecoded.UnsafeReadFrom(bytes.NewReader(buf.Bytes()))
			c.Assert(err, qt.IsNil)
			c.Assert(unsafeDecoded.Matrices(), qt.DeepEquals, bundle.Matrices())
			c.Assert(unsafeDecoded.ProvingKey(), qt.DeepEquals, bundle.ProvingKey())
		})
	}
}

func TestBundleAccessors(t *testing.T) {
	c := qt.New(t)

	e := sampleExport(2, 8)
	matrices, pk, err := Convert(sampleExport(2, 8))
	c.Assert(err, qt.IsNil)

	bundle, err := NewBundle(e)
	c.Assert(err, qt.IsNil)

	c.Assert(bundle.Matrices(), qt.DeepEquals, matrices)
	c.Assert(bundle.ProvingKey(), qt.DeepEquals, pk)

	gotMatrices, gotPK := bundle.Inner()
	c.Assert(&gotMatrices, qt.DeepEquals, matrices)
	c.Assert(&gotPK, qt.DeepEquals, pk)

	rebuilt := BundleFromParts(matrices, pk)
	c.Assert(rebuilt.Matrices(), qt.DeepEquals, bundle.Matrices())
	c.Assert(rebuilt.ProvingKey(), qt.DeepEquals, bundle.ProvingKey())
}

func TestBundleDecodeTruncated(t *testing.T) {
	c := qt.New(t)

	bundle, err := NewBundle(sampleExport(1, 5))
	c.Assert(err, qt.IsNil)

	var buf bytes.Buffer
	_, err = bundle.WriteTo(&buf)
	c.Assert(err, qt.IsNil)

	data := buf.Bytes()
	for _, cut := range []int{0, 10, len(data) / 2, len(data) - 1} {
		var decoded Bundle
		_, err := decoded.ReadFrom(bytes.NewReader(data[:cut]))
		c.Assert(err, qt.IsNotNil, qt.Commentf("prefix of %d bytes decoded successfully", cut))
	}
}

func TestNewBundleInvalidExport(t *testing.T) {
	c := qt.New(t)

	e := sampleExport(4, 10)
	e.AQuery = e.AQuery[:2]
	_, err := NewBundle(e)
	c.Assert(err, qt.ErrorIs, ErrInvalidInput)
}
