package solidity

import (
	"bytes"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	groth16_bn254 "github.com/consensys/gnark/backend/groth16/bn254"
	qt "github.com/frankban/quicktest"
	"github.com/vocdoni/zkey-bridge/keys"
)

// generatorVK builds a verifying key out of the group generators, so every
// constant in the rendered contract has a known value.
func generatorVK() *keys.VerifyingKey {
	_, _, g1, g2 := curve.Generators()
	var twoG1 curve.G1Affine
	twoG1.ScalarMultiplication(&g1, big.NewInt(2))

	return &keys.VerifyingKey{
		AlphaG1:    g1,
		BetaG2:     g2,
		GammaG2:    g2,
		DeltaG2:    g2,
		GammaABCG1: []curve.G1Affine{g1, twoG1},
	}
}

func TestProject(t *testing.T) {
	c := qt.New(t)

	c.Run("negates beta, gamma and delta", func(c *qt.C) {
		vk := generatorVK()
		ctx, err := Project(vk, DefaultVerifierConfig())
		c.Assert(err, qt.IsNil)

		var neg curve.G2Affine
		neg.Neg(&vk.BetaG2)
		c.Assert(ctx.BetaNeg, qt.Equals, neg)
		c.Assert(ctx.GammaNeg, qt.Equals, neg)
		c.Assert(ctx.DeltaNeg, qt.Equals, neg)
		c.Assert(ctx.NumPublic(), qt.Equals, 1)
	})

	c.Run("pure", func(c *qt.C) {
		vk := generatorVK()
		want := generatorVK()

		first, err := Project(vk, DefaultVerifierConfig())
		c.Assert(err, qt.IsNil)
		second, err := Project(vk, DefaultVerifierConfig())
		c.Assert(err, qt.IsNil)
		c.Assert(first, qt.DeepEquals, second)

		// The source key must not have been touched.
		c.Assert(vk, qt.DeepEquals, want)

		// Mutating the source after projection must not leak into the
		// context.
		vk.GammaABCG1[0].X.SetUint64(99)
		c.Assert(first.VK.GammaABCG1[0].X.IsOne(), qt.IsTrue)
	})

	c.Run("empty commitment vector fails", func(c *qt.C) {
		_, err := Project(&keys.VerifyingKey{}, DefaultVerifierConfig())
		c.Assert(err, qt.IsNotNil)
	})
}

func TestRenderGolden(t *testing.T) {
	c := qt.New(t)

	ctx, err := Project(generatorVK(), DefaultVerifierConfig())
	c.Assert(err, qt.IsNil)

	var buf bytes.Buffer
	c.Assert(ctx.Render(&buf), qt.IsNil)

	want, err := os.ReadFile(filepath.Join("testdata", "verifier.sol"))
	c.Assert(err, qt.IsNil)
	c.Assert(buf.String(), qt.Equals, string(want))
}

func TestRenderDeterministic(t *testing.T) {
	c := qt.New(t)

	ctx, err := Project(generatorVK(), DefaultVerifierConfig())
	c.Assert(err, qt.IsNil)

	var first, second bytes.Buffer
	c.Assert(ctx.Render(&first), qt.IsNil)
	c.Assert(ctx.Render(&second), qt.IsNil)
	c.Assert(first.String(), qt.Equals, second.String())
}

func TestRenderPragmaVersion(t *testing.T) {
	c := qt.New(t)

	ctx, err := Project(generatorVK(), VerifierConfig{PragmaVersion: ">=0.8.4"})
	c.Assert(err, qt.IsNil)

	var buf bytes.Buffer
	c.Assert(ctx.Render(&buf), qt.IsNil)
	c.Assert(bytes.Contains(buf.Bytes(), []byte("pragma solidity >=0.8.4;")), qt.IsTrue)
}

func TestProofCalldata(t *testing.T) {
	c := qt.New(t)

	_, _, g1, g2 := curve.Generators()
	proof := &groth16_bn254.Proof{Ar: g1, Bs: g2, Krs: g1}

	calldata, err := NewProofCalldata(proof)
	c.Assert(err, qt.IsNil)

	c.Assert(calldata.Ar[0].String(), qt.Equals, g1.X.String())
	c.Assert(calldata.Ar[1].String(), qt.Equals, g1.Y.String())
	// The precompile wants Fp2 coefficients big endian, so A1 leads.
	c.Assert(calldata.Bs[0][0].String(), qt.Equals, g2.X.A1.String())
	c.Assert(calldata.Bs[0][1].String(), qt.Equals, g2.X.A0.String())
	c.Assert(calldata.Bs[1][0].String(), qt.Equals, g2.Y.A1.String())
	c.Assert(calldata.Bs[1][1].String(), qt.Equals, g2.Y.A0.String())

	encoded, err := calldata.ABIEncode()
	c.Assert(err, qt.IsNil)
	c.Assert(len(encoded), qt.Equals, 8*32)

	c.Assert(calldata.String(), qt.Contains, `"Ar"`)
}
