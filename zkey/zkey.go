// Package zkey converts the flat proving-key export of the circom compiler
// into the generic constraint-matrices plus proving-key pair, and bundles
// the converted pair into a single serializable container.
//
// The conversion is a pure rearrangement: no point or scalar is transformed,
// and the witness index order of every query vector is preserved verbatim.
package zkey

import (
	"errors"
	"fmt"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/vocdoni/zkey-bridge/keys"
	"github.com/vocdoni/zkey-bridge/r1cs"
)

// ErrInvalidInput reports a malformed compiler export, detected before any
// arithmetic that could underflow.
var ErrInvalidInput = errors.New("invalid zkey export")

// Export is the proving-key export of the circom compiler, as produced by
// snarkjs during the trusted setup. NPublic counts the public signals
// without the implicit constant-one wire. The parser producing this record
// lives outside this module; Export is its stable output contract.
type Export struct {
	NPublic        int
	NumConstraints uint64

	AMatrix []r1cs.LinearCombination
	BMatrix []r1cs.LinearCombination

	AlphaG1 curve.G1Affine
	BetaG1  curve.G1Affine
	BetaG2  curve.G2Affine
	GammaG2 curve.G2Affine
	DeltaG1 curve.G1Affine
	DeltaG2 curve.G2Affine

	// IC is the instance-commitment vector, one point per instance
	// variable including the constant wire.
	IC []curve.G1Affine

	AQuery   []curve.G1Affine
	BG1Query []curve.G1Affine
	BG2Query []curve.G2Affine
	HQuery   []curve.G1Affine
	LQuery   []curve.G1Affine
}

// Convert maps the compiler export into the generic (constraint matrices,
// proving key) pair. It consumes the export: matrix rows and query vectors
// are moved, not copied, so the export must not be used afterwards.
//
// The C matrix is always empty on this path: the compiler's export format
// folds the third matrix into the A/B pair and never materializes it.
func Convert(e Export) (*r1cs.Matrices, *keys.ProvingKey, error) {
	if e.NPublic < 0 {
		return nil, nil, fmt.Errorf("%w: negative public input count %d", ErrInvalidInput, e.NPublic)
	}
	// Guard the witness count subtraction; a short a_query would underflow.
	if len(e.AQuery) < e.NPublic+1 {
		return nil, nil, fmt.Errorf("%w: a_query has %d entries, need at least n_public+1 = %d",
			ErrInvalidInput, len(e.AQuery), e.NPublic+1)
	}

	matrices := &r1cs.Matrices{
		A: e.AMatrix,
		B: e.BMatrix,
		C: nil,

		ANumNonZero: uint64(len(e.AMatrix)),
		BNumNonZero: uint64(len(e.BMatrix)),
		CNumNonZero: 0,

		NumInstanceVariables: uint64(e.NPublic) + 1,
		NumWitnessVariables:  uint64(len(e.AQuery) - e.NPublic - 1),
		NumConstraints:       e.NumConstraints,
	}

	pk := &keys.ProvingKey{
		VK: keys.VerifyingKey{
			AlphaG1:    e.AlphaG1,
			BetaG2:     e.BetaG2,
			GammaG2:    e.GammaG2,
			DeltaG2:    e.DeltaG2,
			GammaABCG1: e.IC,
		},
		BetaG1:   e.BetaG1,
		DeltaG1:  e.DeltaG1,
		AQuery:   e.AQuery,
		BG1Query: e.BG1Query,
		BG2Query: e.BG2Query,
		HQuery:   e.HQuery,
		LQuery:   e.LQuery,
	}
	return matrices, pk, nil
}
