package keys

import (
	"bytes"
	"math/big"
	"testing"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	qt "github.com/frankban/quicktest"
)

// samplePK builds a deterministic proving key out of small scalar multiples
// of the group generators.
func samplePK(nbInstance, nbWitness int) *ProvingKey {
	_, _, g1, g2 := curve.Generators()

	g1Mult := func(k int64) curve.G1Affine {
		var p curve.G1Affine
		p.ScalarMultiplication(&g1, big.NewInt(k))
		return p
	}
	g2Mult := func(k int64) curve.G2Affine {
		var p curve.G2Affine
		p.ScalarMultiplication(&g2, big.NewInt(k))
		return p
	}
	g1Vec := func(n int, offset int64) []curve.G1Affine {
		v := make([]curve.G1Affine, n)
		for i := range v {
			v[i] = g1Mult(offset + int64(i) + 1)
		}
		return v
	}
	g2Vec := func(n int, offset int64) []curve.G2Affine {
		v := make([]curve.G2Affine, n)
		for i := range v {
			v[i] = g2Mult(offset + int64(i) + 1)
		}
		return v
	}

	nbWires := nbInstance + nbWitness
	return &ProvingKey{
		VK: VerifyingKey{
			AlphaG1:    g1Mult(3),
			BetaG2:     g2Mult(5),
			GammaG2:    g2Mult(7),
			DeltaG2:    g2Mult(11),
			GammaABCG1: g1Vec(nbInstance, 100),
		},
		BetaG1:   g1Mult(5),
		DeltaG1:  g1Mult(11),
		AQuery:   g1Vec(nbWires, 200),
		BG1Query: g1Vec(nbWires, 300),
		BG2Query: g2Vec(nbWires, 400),
		HQuery:   g1Vec(nbWires-1, 500),
		LQuery:   g1Vec(nbWitness, 600),
	}
}

func TestVerifyingKeyRoundTrip(t *testing.T) {
	c := qt.New(t)

	vk := &samplePK(3, 4).VK

	c.Run("compressed", func(c *qt.C) {
		var buf bytes.Buffer
		n, err := vk.WriteTo(&buf)
		c.Assert(err, qt.IsNil)
		c.Assert(n, qt.Equals, int64(buf.Len()))
		c.Assert(n, qt.Equals, vk.BinarySize(false))

		var decoded VerifyingKey
		read, err := decoded.ReadFrom(&buf)
		c.Assert(err, qt.IsNil)
		c.Assert(read, qt.Equals, n)
		c.Assert(&decoded, qt.DeepEquals, vk)
	})

	c.Run("uncompressed", func(c *qt.C) {
		var buf bytes.Buffer
		n, err := vk.WriteRawTo(&buf)
		c.Assert(err, qt.IsNil)
		c.Assert(n, qt.Equals, int64(buf.Len()))
		c.Assert(n, qt.Equals, vk.BinarySize(true))

		var decoded VerifyingKey
		read, err := decoded.ReadFrom(&buf)
		c.Assert(err, qt.IsNil)
		c.Assert(read, qt.Equals, n)
		c.Assert(&decoded, qt.DeepEquals, vk)
	})
}

func TestProvingKeyRoundTrip(t *testing.T) {
	c := qt.New(t)

	pk := samplePK(2, 5)

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
				n, err = pk.WriteRawTo(&buf)
			} else {
				n, err = pk.WriteTo(&buf)
			}
			c.Assert(err, qt.IsNil)
			c.Assert(n, qt.Equals, int64(buf.Len()))
			c.Assert(n, qt.Equals, pk.BinarySize(tc.raw))

			var decoded ProvingKey
			read, err := decoded.ReadFrom(bytes.NewReader(buf.Bytes()))
			c.Assert(err, qt.IsNil)
			c.Assert(read, qt.Equals, n)
			c.Assert(&decoded, qt.DeepEquals, pk)

			// The unchecked path decodes the same value; Check then
			// validates it explicitly.
			var unsafeDecoded ProvingKey
			_, err = unsafeDecoded.UnsafeReadFrom(bytes.NewReader(buf.Bytes()))
			c.Assert(err, qt.IsNil)
			c.Assert(&unsafeDecoded, qt.DeepEquals, pk)
			c.Assert(unsafeDecoded.Check(), qt.IsNil)
		})
	}
}

func TestProvingKeyDecodeTruncated(t *testing.T) {
	c := qt.New(t)

	pk := samplePK(2, 3)
	var buf bytes.Buffer
	_, err := pk.WriteTo(&buf)
	c.Assert(err, qt.IsNil)

	data := buf.Bytes()
	for _, cut := range []int{0, 16, len(data) / 3, len(data) - 1} {
		var decoded ProvingKey
		_, err := decoded.ReadFrom(bytes.NewReader(data[:cut]))
		c.Assert(err, qt.IsNotNil, qt.Commentf("prefix of %d bytes decoded successfully", cut))
	}
}

func TestCheckRejectsInvalidPoint(t *testing.T) {
	c := qt.New(t)

	pk := samplePK(2, 3)
	c.Assert(pk.Check(), qt.IsNil)

	// A point with a valid-looking X but corrupted Y is off-curve.
	pk.AQuery[1].Y.SetUint64(1)
	c.Assert(pk.Check(), qt.IsNotNil)
}
